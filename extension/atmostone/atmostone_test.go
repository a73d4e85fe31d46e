package atmostone

import (
	"testing"

	"github.com/crillab/lookaheadsat/lookahead"
)

func TestAtMostOneForcesOthersFalse(t *testing.T) {
	e := lookahead.New(3, [][]lookahead.Lit{
		{lookahead.IntToLit(1)},
	}, lookahead.DefaultConfig())
	New(e, 1, 2, 3)

	status, err := e.Search()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != lookahead.Sat {
		t.Fatalf("expected Sat, got %v", status)
	}
	model := e.GetModel()
	if model[0] != lookahead.True {
		t.Fatalf("var 1 should be true, got %v", model[0])
	}
	if model[1] != lookahead.False || model[2] != lookahead.False {
		t.Errorf("at-most-one should force vars 2 and 3 false once var 1 is true, got %v", model)
	}
}

func TestAtMostOneDetectsConflict(t *testing.T) {
	e := lookahead.New(2, [][]lookahead.Lit{
		{lookahead.IntToLit(1)},
		{lookahead.IntToLit(2)},
	}, lookahead.DefaultConfig())
	New(e, 1, 2)

	status, err := e.Search()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != lookahead.Unsat {
		t.Errorf("both var 1 and var 2 forced true should conflict with at-most-one, got %v", status)
	}
}
