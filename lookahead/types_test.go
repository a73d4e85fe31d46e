package lookahead

import "testing"

func TestIntLitRoundTrip(t *testing.T) {
	for _, v := range []int{1, -1, 2, -2, 42, -42} {
		l := IntToLit(v)
		if got := l.Int(); got != v {
			t.Errorf("IntToLit(%d).Int() = %d, want %d", v, got, v)
		}
	}
}

func TestNegationIsInvolution(t *testing.T) {
	l := IntToLit(7)
	if l.Negation().Negation() != l {
		t.Errorf("double negation should return the original literal")
	}
	if l.Negation() == l {
		t.Errorf("a literal should never equal its own negation")
	}
}

func TestVarLitRoundTrip(t *testing.T) {
	v := IntToVar(5)
	if v.Lit().Var() != v {
		t.Errorf("v.Lit().Var() should round-trip to v, got %v want %v", v.Lit().Var(), v)
	}
	if !v.Lit().IsPos() {
		t.Errorf("v.Lit() should always be the positive polarity")
	}
	if v.SignedLit(true).IsPos() {
		t.Errorf("SignedLit(true) should be the negative polarity")
	}
}

func TestStatusString(t *testing.T) {
	cases := map[Status]string{Sat: "SAT", Unsat: "UNSAT", Undef: "UNDEF"}
	for status, want := range cases {
		if got := status.String(); got != want {
			t.Errorf("Status(%d).String() = %q, want %q", status, got, want)
		}
	}
}
