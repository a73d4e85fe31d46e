package lookahead

import "testing"

// litsFromInts converts signed DIMACS-style integers into Lits, mirroring
// IntToLit so tests read like CNF.
func litsFromInts(ints ...int) []Lit {
	lits := make([]Lit, len(ints))
	for i, v := range ints {
		lits[i] = IntToLit(v)
	}
	return lits
}

func clausesFromInts(rows ...[]int) [][]Lit {
	out := make([][]Lit, len(rows))
	for i, row := range rows {
		out[i] = litsFromInts(row...)
	}
	return out
}

func newTestEngine(nbVars int, rows ...[]int) *Engine {
	return New(nbVars, clausesFromInts(rows...), DefaultConfig())
}

func TestNewSeedsUnitsBinariesAndLongClauses(t *testing.T) {
	e := newTestEngine(4,
		[]int{1},
		[]int{2, 3},
		[]int{1, 2, 3, 4},
	)
	if e.inconsistent {
		t.Fatalf("engine should not be inconsistent from consistent seed clauses")
	}
	if !e.cells.isTrue(IntToLit(1)) {
		t.Errorf("unit clause [1] should have assigned var 1 true")
	}
	if len(e.binary[IntToLit(-2)]) != 1 || e.binary[IntToLit(-2)][0] != IntToLit(3) {
		t.Errorf("binary clause [2 3] should register ¬2 => 3, got %v", e.binary[IntToLit(-2)])
	}
	if len(e.clauses) != 1 {
		t.Errorf("expected exactly one long clause retained, got %d", len(e.clauses))
	}
}

func TestPropagateUnitChain(t *testing.T) {
	e := newTestEngine(3,
		[]int{1, 2},
		[]int{-2, 3},
	)
	e.assign(IntToLit(-1))
	e.propagate()
	if e.inconsistent {
		t.Fatalf("unexpected conflict propagating a satisfiable chain")
	}
	if !e.cells.isTrue(IntToLit(2)) {
		t.Errorf("¬1 with clause (1∨2) should force 2 true")
	}
	if !e.cells.isTrue(IntToLit(3)) {
		t.Errorf("2 with clause (¬2∨3) should force 3 true")
	}
}

func TestPropagateDetectsConflict(t *testing.T) {
	e := newTestEngine(1, []int{1})
	e.assign(IntToLit(-1))
	if !e.inconsistent {
		t.Fatalf("assigning the negation of an already-true unit should conflict")
	}
}

func TestPushPopRestoresState(t *testing.T) {
	e := newTestEngine(3,
		[]int{1, 2},
		[]int{-2, 3},
	)
	freeBefore := e.freevars.size()

	e.push(IntToLit(-1), realLevel(1))
	if e.inconsistent {
		t.Fatalf("unexpected conflict on push")
	}
	if !e.cells.isTrue(IntToLit(2)) || !e.cells.isTrue(IntToLit(3)) {
		t.Fatalf("push should have propagated the chain")
	}

	e.pop()
	if e.inconsistent {
		t.Fatalf("pop should clear inconsistency bookkeeping")
	}
	for _, v := range []Var{0, 1, 2} {
		l := v.Lit()
		if !e.cells.isUndef(l) {
			t.Errorf("var %d should be undef after pop, cells[%d]=%v", v, l, e.cells[l])
		}
	}
	if e.freevars.size() != freeBefore {
		t.Errorf("pop should restore free-variable count: got %d, want %d", e.freevars.size(), freeBefore)
	}
}

func TestSearchTrivialUnsat(t *testing.T) {
	e := newTestEngine(1,
		[]int{1},
		[]int{-1},
	)
	status, err := e.Search()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != Unsat {
		t.Errorf("expected Unsat for a direct unit contradiction, got %v", status)
	}
}

func TestSearchSmallSatFormula(t *testing.T) {
	// (a∨b) ∧ (¬a∨b) ∧ (a∨¬b): satisfied only by a=b=true.
	e := newTestEngine(2,
		[]int{1, 2},
		[]int{-1, 2},
		[]int{1, -2},
	)
	status, err := e.Search()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != Sat {
		t.Fatalf("expected Sat, got %v", status)
	}
	model := e.GetModel()
	if model[0] != True || model[1] != True {
		t.Errorf("expected a=b=true, got %v", model)
	}
}

func TestSearchPigeonholeIsUnsat(t *testing.T) {
	// 2 pigeons, 1 hole: p1, p2 both in the only hole, plus the
	// exclusion clause that they can't share it.
	e := newTestEngine(2,
		[]int{1},
		[]int{2},
		[]int{-1, -2},
	)
	status, err := e.Search()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != Unsat {
		t.Errorf("expected Unsat, got %v", status)
	}
}

func TestGetModelReflectsCurrentAssignment(t *testing.T) {
	e := newTestEngine(2, []int{1})
	e.assign(IntToLit(-2))
	m := e.GetModel()
	if m[0] != True {
		t.Errorf("var 1 should read True, got %v", m[0])
	}
	if m[1] != False {
		t.Errorf("var 2 should read False, got %v", m[1])
	}
}
