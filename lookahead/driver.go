package lookahead

// initWNB opens a light checkpoint over the trail and propagation queue
// only, used to bracket one round of computeWNB probing. Unlike push, it
// never touches the binary trail or retired-clause stacks: those
// mutations (synthesized binaries, ternary-to-binary conversions) made
// while genuinely searching between probes are meant to survive.
func (e *Engine) initWNB() {
	e.wnbTrailLim = append(e.wnbTrailLim, len(e.trail))
	e.wnbQheadLim = append(e.wnbQheadLim, e.qhead)
}

// resetWNB pops the checkpoint initWNB opened, undoing every assignment
// made since then and reinserting the corresponding variables into the
// free set.
func (e *Engine) resetWNB() {
	last := len(e.wnbTrailLim) - 1
	oldSz := e.wnbTrailLim[last]
	e.wnbTrailLim = e.wnbTrailLim[:last]
	e.setUndefAll(oldSz)

	lastQ := len(e.wnbQheadLim) - 1
	e.qhead = e.wnbQheadLim[lastQ]
	e.wnbQheadLim = e.wnbQheadLim[:lastQ]
}

// pushLookahead1 opens a single-probe hypothesis: lit is assumed true at
// level and propagated, with every literal that binary or clause
// propagation forces collected onto the windfall stack for popLookahead1 to convert into
// binaries, and every ternary/long-clause reduction folded into
// wnbScore, the probe's weighted-new-binary total.
func (e *Engine) pushLookahead1(lit Lit, level Level) {
	e.mode = modeLookahead1
	e.wstack = e.wstack[:0]
	e.wnbScore = 0
	e.withLevel(level, func() {
		e.assign(lit)
		e.propagate()
	})
}

// popLookahead1 closes a probe opened by pushLookahead1. If the probe did
// not conflict, every literal on the windfall stack is a sound
// consequence of lit under the real formula (not just under the
// hypothesis), so ¬lit∨w is recorded as a permanent binary clause for
// each one. It restores modeSearching either way; it does not touch the
// trail -- the probe's assignments stay in place until either committed
// (by a later unit derivation) or stripped by resetWNB.
func (e *Engine) popLookahead1(lit Lit) {
	if !e.inconsistent {
		for _, w := range e.wstack {
			if w == lit {
				continue
			}
			e.addBinary(lit.Negation(), w)
			e.stats.WindfallBinaries++
		}
	}
	e.mode = modeSearching
}

// pushLookahead2/popLookahead2 bracket a nested probe opened during
// double lookahead. Side effects beyond the assignment itself are fully
// suppressed (mode.go), and the trail is always unwound on pop: a nested
// probe's only observable output is whether it conflicted.
func (e *Engine) pushLookahead2(lit Lit, level Level) {
	e.mode = modeLookahead2
	e.dl2TrailLim = append(e.dl2TrailLim, len(e.trail))
	e.dl2QheadLim = append(e.dl2QheadLim, e.qhead)
	e.withLevel(level, func() {
		e.assign(lit)
		e.propagate()
	})
}

func (e *Engine) popLookahead2() (conflicted bool) {
	conflicted = e.inconsistent

	last := len(e.dl2TrailLim) - 1
	oldSz := e.dl2TrailLim[last]
	e.dl2TrailLim = e.dl2TrailLim[:last]
	e.setUndefAll(oldSz)

	lastQ := len(e.dl2QheadLim) - 1
	e.qhead = e.dl2QheadLim[lastQ]
	e.dl2QheadLim = e.dl2QheadLim[:lastQ]

	e.inconsistent = false
	e.mode = modeLookahead1
	return conflicted
}

// doDouble runs a bounded number of nested probes while an outer lookahead1
// probe is open: it walks the free variables in free-set order and probes
// at most DLMaxIterations unassigned ones. The istamp epoch behind
// dlEnabled/dlDisable is bumped on entry, so every variable is eligible
// again on each call. Each nested probe assumes a candidate's negation;
// if that conflicts, the candidate itself is forced true in the outer
// probe's own hypothetical context, deepening its pruning power beyond
// what single lookahead would find. A nested probe that does not conflict
// is simply discarded. It does nothing at the root or at the first
// decision level: it only runs when scopeLvl() > 1.
func (e *Engine) doDouble(outerLevel Level) {
	if e.config.DLMaxIterations <= 0 || e.scopeLvl() <= 1 {
		return
	}
	e.incIstamp()
	nested := outerLevel + 1
	tries := 0
	for _, v := range e.freevars.items {
		if tries >= e.config.DLMaxIterations {
			break
		}
		l := v.Lit()
		if e.cells.isFixed(l) || !e.dlEnabled(l) {
			continue
		}
		e.dlDisable(l)
		tries++
		e.pushLookahead2(l.Negation(), nested)
		conflicted := e.popLookahead2()
		if conflicted {
			e.stats.DoubleLookaheadPropagations++
			e.assign(l)
			e.propagate()
			if e.inconsistent {
				return
			}
		}
	}
	e.stats.DoubleLookaheadRounds++
}

// resetWNBEntry seeds entry's wnb score from its forest parent's score
// (the parent's entry.lit already folded in everything implied along the
// path to the root), so siblings sharing a parent don't re-earn credit
// for propagation the parent probe already accounted for.
func (e *Engine) resetWNBEntry(entry *lookaheadEntry) {
	p := e.getParent(entry.rep)
	if p == NullLit {
		e.lits[entry.lit].wnb = 0
		return
	}
	e.lits[entry.lit].wnb = e.lits[p].wnb
}

// updateWNB folds a successful probe's weighted-new-binary score into
// entry's running wnb total. When the probe contributed nothing at all
// (sum==0: no clause was reduced and no new binary discovered), it also
// resolves the zero-weight branch: wnb(l)==0 means the whole chain back
// to the lookahead-forest root produced nothing either, so l is an
// autarky and is committed permanently; wnb(l)>0 with a forest parent
// already fixed at a higher stamp means l behaves just like that parent
// under further probing, so the engine learns their equivalence as a
// binary instead. It reports whether it committed a permanent fact, in
// which case the caller must restart the pass.
func (e *Engine) updateWNB(entry *lookaheadEntry, sum float64) bool {
	e.lits[entry.lit].wnb += sum
	if sum != 0 {
		return false
	}
	lit := entry.lit
	if e.lits[lit].wnb == 0 {
		e.resetWNB()
		e.stats.AutarkyPropagations++
		e.assign(lit)
		e.propagate()
		e.initWNB()
		return true
	}
	p := e.getParent(entry.rep)
	if p != NullLit && e.cells.isFixed(p) && e.cells.levelOf(p) > e.cells.levelOf(lit) {
		e.stats.AutarkyEquivalences++
		e.addBinary(lit.Negation(), p)
	}
	return false
}

// computeWNB runs one full pre-selection pass: probe every entry of the
// lookahead table, deriving units from conflicting probes and re-running
// the round whenever a unit was found (since it may fix entries visited
// earlier in this same pass). It returns false if a derived unit turned
// out to directly conflict with the formula, meaning the current node is
// UNSAT. doDouble never runs on a pass's first sweep: units found that
// early would make its extra propagation throwaway work, so first gates
// it off until one full sweep has come back clean, then lets exactly one
// further, now-stable sweep spend the extra effort.
func (e *Engine) computeWNB() bool {
	e.initWNB()
	change := true
	first := true
	for change {
		change = false
		for i := range e.lookaheadTable {
			entry := &e.lookaheadTable[i]
			lit := entry.lit
			if e.cells.isFixedAt(lit, probeLevelBase+Level(entry.offset)) {
				continue
			}
			e.resetWNBEntry(entry)
			probeLevel := probeLevelBase + Level(entry.offset)
			e.pushLookahead1(lit, probeLevel)
			if !e.inconsistent {
				if e.wnbScore > e.deltaTrigger {
					if !first {
						e.doDouble(probeLevel)
					}
				} else {
					e.deltaTrigger *= e.config.DeltaRho
				}
			}
			unsat := e.inconsistent
			probeScore := e.wnbScore
			e.popLookahead1(lit)
			if unsat {
				e.inconsistent = false
				e.resetWNB()
				e.assign(lit.Negation())
				e.propagate()
				if e.inconsistent {
					return false
				}
				e.initWNB()
				change = true
				continue
			}
			if e.updateWNB(entry, probeScore) {
				if e.inconsistent {
					return false
				}
				change = true
				continue
			}
		}
		if first && !change {
			first = false
			change = true
		}
	}
	e.resetWNB()
	return true
}

// mixDiff combines a variable's two polarity scores into one ranking
// value: it rewards variables where both polarities promise a large
// windfall (the product term) as well as those where either one alone
// does (the sum term).
func mixDiff(a, b float64) float64 {
	return 1024*a*b + a + b
}

// selectLiteral scans every pre-selected candidate, scores each variable
// by mixDiff of its two polarities' wnb, and returns the literal (the
// smaller-wnb polarity of the best-scoring variable -- the branch
// expected to finish faster is taken first) that should become the next
// decision. Ties are broken by reservoir sampling so the choice does not
// silently favor whichever candidate happened to sort first. It returns
// NullLit if there were no candidates to rank.
func (e *Engine) selectLiteral() Lit {
	found := false
	var bestVar Var
	var bestScore float64
	bestPos := true
	count := 0
	for _, c := range e.candidates {
		v := c.v
		pos := v.Lit()
		neg := pos.Negation()
		a, b := e.lits[pos].wnb, e.lits[neg].wnb
		score := mixDiff(a, b)
		switch {
		case !found || score > bestScore:
			found, bestScore, bestVar, bestPos, count = true, score, v, a < b, 1
		case score == bestScore:
			count++
			if e.nextRand()%uint64(count) == 0 {
				bestVar, bestPos = v, a < b
			}
		}
	}
	if !found {
		return NullLit
	}
	if bestPos {
		return bestVar.Lit()
	}
	return bestVar.Lit().Negation()
}

// checkAutarky would detect a satisfying partial assignment touching only
// already-fixed variables (an autarky), letting the search commit to it
// without branching further. It is conservative and always reports none
// found; the candidate and watch-list scans a faithful implementation
// needs are expensive enough relative to how rarely they pay off that
// this engine does not attempt it.
func (e *Engine) checkAutarky() bool {
	return false
}
