package lookahead

import "testing"

func TestAddBinaryIsSymmetric(t *testing.T) {
	e := newTestEngine(2)
	a, b := IntToLit(1), IntToLit(2)
	e.addBinary(a, b)

	found := false
	for _, k := range e.binary[a.Negation()] {
		if k == b {
			found = true
		}
	}
	if !found {
		t.Errorf("expected ¬a => b in adjacency, got %v", e.binary[a.Negation()])
	}
	found = false
	for _, k := range e.binary[b.Negation()] {
		if k == a {
			found = true
		}
	}
	if !found {
		t.Errorf("expected ¬b => a in adjacency, got %v", e.binary[b.Negation()])
	}
}

func TestAddBinaryRejectsTautology(t *testing.T) {
	e := newTestEngine(1)
	a := IntToLit(1)
	before := e.stats.AddBinary
	e.addBinary(a, a.Negation())
	if e.stats.AddBinary != before {
		t.Errorf("a tautological binary (a ∨ ¬a) should not be recorded")
	}
}

func TestDelBinaryUndoesAddBinary(t *testing.T) {
	e := newTestEngine(2)
	a, b := IntToLit(1), IntToLit(2)
	e.addBinary(a, b)
	lenBefore := len(e.binary[a.Negation()])

	e.delBinary(int(a.Negation()))

	if len(e.binary[a.Negation()]) != lenBefore-1 {
		t.Errorf("delBinary should remove one entry from a.Negation()'s adjacency")
	}
	if len(e.binary[b.Negation()]) != 0 {
		t.Errorf("delBinary should also remove the mirrored entry from b.Negation()'s adjacency, got %v", e.binary[b.Negation()])
	}
}

func TestPushPopRestoresBinaryTrail(t *testing.T) {
	e := newTestEngine(3, []int{1, 2})
	binBefore := len(e.binary[IntToLit(-2)])

	e.push(IntToLit(3), realLevel(1))
	e.tryAddBinary(IntToLit(-3), IntToLit(2))
	e.pop()

	if len(e.binary[IntToLit(-2)]) != binBefore {
		t.Errorf("pop should roll back binaries synthesized since the checkpoint, got len=%d want=%d",
			len(e.binary[IntToLit(-2)]), binBefore)
	}
}
