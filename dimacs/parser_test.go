package dimacs

import (
	"strings"
	"testing"

	"github.com/crillab/lookaheadsat/lookahead"
)

func TestParseSimpleCNF(t *testing.T) {
	const cnf = `c a trivial formula
p cnf 3 2
1 -2 0
2 3 0
`
	pb, err := Parse(strings.NewReader(cnf))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pb.NbVars != 3 {
		t.Errorf("expected 3 vars, got %d", pb.NbVars)
	}
	if len(pb.Clauses) != 2 {
		t.Fatalf("expected 2 clauses, got %d", len(pb.Clauses))
	}
	want0 := []lookahead.Lit{lookahead.IntToLit(1), lookahead.IntToLit(-2)}
	for i, l := range want0 {
		if pb.Clauses[0][i] != l {
			t.Errorf("clause 0 lit %d: got %v want %v", i, pb.Clauses[0][i], l)
		}
	}
}

func TestParseRejectsOutOfRangeLiteral(t *testing.T) {
	const cnf = "p cnf 2 1\n3 0\n"
	if _, err := Parse(strings.NewReader(cnf)); err == nil {
		t.Errorf("expected an error for a literal referencing an undeclared variable")
	}
}

func TestParseUnitClause(t *testing.T) {
	const cnf = "p cnf 1 1\n-1 0\n"
	pb, err := Parse(strings.NewReader(cnf))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pb.Clauses) != 1 || len(pb.Clauses[0]) != 1 || pb.Clauses[0][0] != lookahead.IntToLit(-1) {
		t.Errorf("expected a single unit clause [-1], got %v", pb.Clauses)
	}
}
