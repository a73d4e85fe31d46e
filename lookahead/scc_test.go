package lookahead

import "testing"

func TestSCCFindsEquivalence(t *testing.T) {
	// a => b and b => a, i.e. a <=> b.
	e := newTestEngine(2,
		[]int{-1, 2},
		[]int{-2, 1},
	)
	groups, roots, eliminable, err := e.SCC()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.inconsistent {
		t.Fatalf("a consistent equivalence should not be flagged inconsistent")
	}
	found := false
	for _, g := range groups {
		if len(g) < 2 {
			t.Errorf("collectSCCGroups should only report groups with more than one member, got %v", g)
		}
		for _, l := range g {
			if l.Var() == Var(0) || l.Var() == Var(1) {
				found = true
			}
		}
	}
	if !found {
		t.Errorf("expected vars 1 and 2 to appear in some equivalence group, got %v", groups)
	}
	if len(eliminable) != 1 {
		t.Errorf("a<=>b should yield exactly one eliminable variable, got %v", eliminable)
	} else if _, ok := roots[eliminable[0]]; !ok {
		t.Errorf("eliminable variable %v should have a root entry, got %v", eliminable[0], roots)
	}
}

func TestSCCIsIdempotent(t *testing.T) {
	e := newTestEngine(2,
		[]int{-1, 2},
		[]int{-2, 1},
	)
	g1, _, _, err := e.SCC()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g2, _, _, err := e.SCC()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(g1) != len(g2) {
		t.Errorf("running SCC twice in a row should report the same number of groups, got %d then %d", len(g1), len(g2))
	}
}

func TestSCCNoEquivalenceForUnrelatedVars(t *testing.T) {
	e := newTestEngine(2, []int{1, 2})
	groups, roots, eliminable, err := e.SCC()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 0 {
		t.Errorf("two vars linked by only one binary clause share no equivalence, got %v", groups)
	}
	if len(eliminable) != 0 || len(roots) != 0 {
		t.Errorf("unrelated vars should yield no eliminable variables, got eliminable=%v roots=%v", eliminable, roots)
	}
}
