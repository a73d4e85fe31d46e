package lookahead

// Lazy epoch stamps: rather than re-zeroing a per-literal/per-variable
// array before every pass, each pass bumps a global epoch counter and
// compares against it; only on the rare wraparound of the counter does
// the backing array get a real reset. bstamp is shared between the
// transitive-closure scan (tc1.go) and the SCC candidate-membership
// check (scc.go).

func (e *Engine) incBstamp() {
	e.bstampID++
	if e.bstampID == 0 {
		e.bstampID++
		for i := range e.bstamp {
			e.bstamp[i] = 0
		}
	}
}

func (e *Engine) setBstamp(l Lit) { e.bstamp[l] = e.bstampID }

func (e *Engine) isStamped(l Lit) bool { return e.bstamp[l] == e.bstampID }

// incIstamp bumps the double-lookahead "already tried on this pass" flag
// epoch.
func (e *Engine) incIstamp() {
	e.istampID++
	if e.istampID == 0 {
		e.istampID++
		for i := range e.lits {
			e.lits[i].doubleLookahead = 0
		}
	}
}

func (e *Engine) dlEnabled(l Lit) bool { return e.lits[l].doubleLookahead != e.istampID }

func (e *Engine) dlDisable(l Lit) { e.lits[l].doubleLookahead = e.istampID }
