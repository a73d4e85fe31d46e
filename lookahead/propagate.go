package lookahead

// setConflict marks the engine inconsistent; kept as a named call site so
// every place a clause/binary/ternary finds itself fully falsified reads
// the same way.
func (e *Engine) setConflict() { e.inconsistent = true }

// propagateBinary pushes every literal directly implied by l (l's binary
// adjacency list) onto the trail via propagated, stopping early once a
// conflict is found.
func (e *Engine) propagateBinary(l Lit) {
	for _, k := range e.binary[l] {
		e.propagated(k)
		if e.inconsistent {
			return
		}
	}
}

// propagateTernary handles one ternary-clause watch entry triggered by a
// becoming false. a is the literal whose negation currently indexes this
// watch list (i.e. a is the literal that just got falsified); b, c are
// the clause's other two literals. It reports whether the clause should
// remain watched at a's slot.
func (e *Engine) propagateTernary(a, b, c Lit) (keep bool) {
	if e.cells.isTrue(b) || e.cells.isTrue(c) {
		return true
	}
	switch {
	case e.cells.isFalse(b):
		if e.cells.isFalse(c) {
			e.setConflict()
			return true
		}
		e.propagated(c)
		return true
	case e.cells.isFalse(c):
		e.propagated(b)
		return true
	}
	// b and c are both still undef: the clause has degenerated into an
	// effective binary b∨c. Only worth freezing into the formula while
	// genuinely searching -- a hypothetical probe must not mutate shared
	// clause state. A lookahead1 probe instead folds the pair's combined
	// pre-selection weight into the running weighted-new-binary score;
	// lookahead2 suppresses this too, same as every other side effect.
	switch e.mode {
	case modeSearching:
		e.detachTernary(a, b, c)
		e.tryAddBinary(b, c)
		return false
	case modeLookahead1:
		e.wnbScore += e.heur[b] * e.heur[c]
	}
	return true
}

// propagateClause handles one long-clause watch entry triggered by l
// becoming true, i.e. by the clause's watched literal ¬l becoming false.
// It reports whether the entry should stay at l's slot
// (false means it migrated to a different literal's watch list, or was
// retired entirely).
func (e *Engine) propagateClause(l Lit, w *watched) (keep bool) {
	c := w.clause
	if e.cells.isTrue(w.lit1) {
		return true
	}
	otherIdx := 0
	if c.Get(0) == l.Negation() {
		otherIdx = 1
	}
	other := c.Get(otherIdx)
	if e.cells.isTrue(other) {
		w.lit1 = other
		return true
	}
	falsifiedIdx := 1 - otherIdx
	for i := 2; i < c.Len(); i++ {
		lit := c.Get(i)
		if !e.cells.isFalse(lit) {
			c.Swap(falsifiedIdx, i)
			if e.mode == modeLookahead1 {
				// The clause got shorter without being satisfied or
				// falsified: a non-zero floor so a probe that only ever
				// triggers reductions like this is never mistaken for one
				// with literally no effect (the autarky signal in
				// updateWNB).
				e.wnbScore += 0.001
			}
			if e.clauseHasOnlyTwoLive(c) {
				switch e.mode {
				case modeSearching:
					e.retiredClauses = append(e.retiredClauses, c)
					e.watches[other.Negation()] = eraseClauseWatch(e.watches[other.Negation()], c)
					e.tryAddBinary(other, lit)
					return false
				case modeLookahead1:
					e.wnbScore += e.heur[other] * e.heur[lit]
				}
			}
			e.watches[lit.Negation()] = append(e.watches[lit.Negation()], watched{kind: watchClause, clause: c, lit1: other})
			return false
		}
	}
	if e.cells.isFalse(other) {
		e.setConflict()
		return true
	}
	e.propagated(other)
	return true
}

// clauseHasOnlyTwoLive reports whether every literal of c beyond its two
// watched slots is already false -- i.e. c has degenerated to the
// effective binary held by those two slots, the long-clause analogue of
// a ternary clause's both-undef case.
func (e *Engine) clauseHasOnlyTwoLive(c *Clause) bool {
	for i := 2; i < c.Len(); i++ {
		if !e.cells.isFalse(c.Get(i)) {
			return false
		}
	}
	return true
}

// propagateClauses walks l's ternary/long-clause/external watch list,
// compacting it in place as entries migrate or get retired.
func (e *Engine) propagateClauses(l Lit) {
	ws := e.watches[l]
	j := 0
	for i := 0; i < len(ws); i++ {
		w := ws[i]
		keep := true
		switch w.kind {
		case watchTernary:
			keep = e.propagateTernary(l.Negation(), w.lit1, w.lit2)
		case watchClause:
			keep = e.propagateClause(l, &w)
		case watchExternal:
			if e.ext != nil {
				keep = e.ext.Propagate(l, w.extID)
			}
		}
		if keep {
			ws[j] = w
			j++
		}
		if e.inconsistent {
			for ; i+1 < len(ws); i++ {
				ws[j] = ws[i+1]
				j++
			}
			break
		}
	}
	e.watches[l] = ws[:j]
}

// propagate drains the propagation queue from qhead to the end of the
// trail, running binary propagation before clause propagation for each
// literal (binaries are by far the cheaper check and prune the most).
func (e *Engine) propagate() {
	for e.qhead < len(e.trail) && !e.inconsistent {
		l := e.trail[e.qhead]
		e.qhead++
		e.propagateBinary(l)
		if e.inconsistent {
			return
		}
		e.propagateClauses(l)
	}
}
