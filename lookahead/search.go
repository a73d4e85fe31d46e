package lookahead

// realLevel maps a top-level decision depth to the Level used to stamp
// its assignments, always strictly above CFixedTruth so every permanent
// decision outranks every hypothetical lookahead probe regardless of
// how deep the probe's own offset ladder runs.
func realLevel(depth int) Level { return CFixedTruth + Level(depth) }

// Search runs the engine to completion: at each node it pre-selects
// candidates, runs one lookahead pass to score them and possibly derive
// forced units, and branches on the best-scoring literal, backtracking
// whenever a branch (or a unit it derived) conflicts, or leaves nothing to
// branch on without every clause being satisfied. It returns Sat once
// every clause is satisfied, Unsat once backtracking exhausts the root,
// or Undef with a non-nil error if checkpoint() aborted the run.
func (e *Engine) Search() (Status, error) {
	defer e.enterExtScope().close()
	var trail []Lit
	for {
		if err := e.checkpoint(); err != nil {
			return Undef, err
		}
		e.preSelect()
		if e.inconsistent {
			if !e.backtrack(&trail) {
				return Unsat, nil
			}
			continue
		}
		if len(e.lookaheadTable) == 0 {
			if e.isSat() {
				return Sat, nil
			}
			e.inconsistent = true
			if !e.backtrack(&trail) {
				return Unsat, nil
			}
			continue
		}
		if !e.computeWNB() {
			if !e.backtrack(&trail) {
				return Unsat, nil
			}
			continue
		}
		if e.checkAutarky() {
			continue
		}
		lit := e.selectLiteral()
		if lit == NullLit {
			if e.isSat() {
				return Sat, nil
			}
			e.inconsistent = true
			if !e.backtrack(&trail) {
				return Unsat, nil
			}
			continue
		}
		e.stats.Decisions++
		trail = append(trail, lit)
		e.push(lit, realLevel(len(trail)))
		if e.inconsistent {
			if !e.backtrack(&trail) {
				return Unsat, nil
			}
		}
	}
}

// Simplify runs a single pre-selection and lookahead pass at the current
// level (typically the root) without branching, asserting any unit
// literals it derives along the way. It is meant to be called once by a
// host CDCL solver before its own search begins, to absorb lookahead's
// unit-finding power without paying for full search. It returns Unsat if
// the pass found a direct contradiction, Sat if the formula became fully
// satisfied as a byproduct, or Undef (the common case) if neither.
func (e *Engine) Simplify() (Status, error) {
	if err := e.checkpoint(); err != nil {
		return Undef, err
	}
	defer e.enterExtScope().close()
	e.preSelect()
	if e.inconsistent {
		return Unsat, nil
	}
	if len(e.lookaheadTable) == 0 {
		if e.isSat() {
			return Sat, nil
		}
		return Undef, nil
	}
	if !e.computeWNB() {
		return Unsat, nil
	}
	if e.isSat() {
		return Sat, nil
	}
	return Undef, nil
}

// collectSCCGroups gathers every literal settled by a completed Tarjan
// pass into its representative's group, keeping only non-trivial
// components (equivalences a host solver could act on).
func (e *Engine) collectSCCGroups() [][]Lit {
	groups := make(map[Lit][]Lit)
	for _, c := range e.candidates {
		for _, l := range [2]Lit{c.v.Lit(), c.v.Lit().Negation()} {
			if e.getRank(l) != rankSettled {
				continue
			}
			p := e.getParent(l)
			groups[p] = append(groups[p], l)
		}
	}
	result := make([][]Lit, 0, len(groups))
	for _, members := range groups {
		if len(members) > 1 {
			result = append(result, members)
		}
	}
	return result
}

// SCC decomposes the current binary implication graph over every free
// variable into strongly connected components. It returns three views of
// that decomposition: groups, each component with more than one member
// (a class of literals the binary graph proves equivalent); roots, the
// canonicalized get_root representative for every eliminable variable;
// and eliminable, the variables roots covers -- the set a host solver
// could safely substitute away in favor of their root literal. All three
// come back nil if decomposing the graph itself revealed a contradiction
// (some component contains both a literal and its negation).
func (e *Engine) SCC() (groups [][]Lit, roots EquivalenceMap, eliminable []Var, err error) {
	if err := e.checkpoint(); err != nil {
		return nil, nil, nil, err
	}
	defer e.enterExtScope().close()
	saved := e.candidates
	e.candidates = e.candidates[:0]
	for _, v := range e.freevars.items {
		e.candidates = append(e.candidates, candidate{v: v})
	}
	e.getSCCAll()
	if !e.inconsistent {
		groups = e.collectSCCGroups()
		roots, eliminable = e.collectEquivalences()
	}
	e.candidates = saved
	return groups, roots, eliminable, nil
}

// SelectLookahead runs one pre-selection and lookahead pass under a
// temporary set of assumptions, restricted to vars if non-empty, and
// returns the literal the engine would branch on -- without committing to
// it. Every assumption is popped before returning, and with it every
// assignment and binary made on top of it. With no assumptions nothing is
// popped: units the lookahead pass derives and the windfall binaries it
// learns stay in the engine. It returns
// NullLit if the assumptions conflicted, if pre-selection found nothing
// to branch on, or if the lookahead pass itself derived a contradiction.
func (e *Engine) SelectLookahead(assumptions []Lit, vars []Var) (Lit, error) {
	if err := e.checkpoint(); err != nil {
		return NullLit, err
	}
	defer e.enterExtScope().close()
	base := len(e.trailLim)
	defer func() {
		for len(e.trailLim) > base {
			e.pop()
		}
	}()

	for _, a := range assumptions {
		e.push(a, realLevel(len(e.trailLim)+1))
		if e.inconsistent {
			return NullLit, nil
		}
	}

	if len(vars) > 0 {
		e.selectVars = make(map[Var]bool, len(vars))
		defer func() { e.selectVars = nil }()
		for _, v := range vars {
			e.selectVars[v] = true
		}
	}

	e.preSelect()
	if e.inconsistent || len(e.lookaheadTable) == 0 {
		return NullLit, nil
	}
	if !e.computeWNB() {
		return NullLit, nil
	}
	return e.selectLiteral(), nil
}

// GetModel reads off the current total assignment as one TriState per
// variable. Call it only once Search has returned Sat.
func (e *Engine) GetModel() []TriState {
	m := make([]TriState, e.nbVars)
	for v := 0; v < e.nbVars; v++ {
		l := Var(v).Lit()
		switch {
		case e.cells.isTrue(l):
			m[v] = True
		case e.cells.isFalse(l):
			m[v] = False
		default:
			m[v] = Indet
		}
	}
	return m
}
