package lookahead

// dfsRecord is the per-literal bookkeeping used by the iterative Tarjan
// SCC pass and, afterward, repurposed to describe the lookahead forest.
type dfsRecord struct {
	rank   uint32 // 0 = unvisited; rankSettled once finalized
	low    Lit    // low-link literal while the DFS is active
	parent Lit
	link   Lit
	height uint32
	child  Lit
	vcomp  Lit
}

// rankSettled marks a literal whose SCC has been fully determined,
// standing in for the original's UINT_MAX sentinel.
const rankSettled = ^uint32(0)

func (e *Engine) getRank(l Lit) uint32    { return e.dfs[l].rank }
func (e *Engine) setRank(l Lit, r uint32) { e.dfs[l].rank = r }
func (e *Engine) getMin(l Lit) Lit        { return e.dfs[l].low }
func (e *Engine) setMin(l Lit, m Lit)     { e.dfs[l].low = m }
func (e *Engine) getParent(l Lit) Lit     { return e.dfs[l].parent }
func (e *Engine) setParent(l Lit, p Lit)  { e.dfs[l].parent = p }
func (e *Engine) getLink(l Lit) Lit       { return e.dfs[l].link }
func (e *Engine) setLink(l Lit, k Lit)    { e.dfs[l].link = k }
func (e *Engine) getHeight(l Lit) uint32 {
	if l == NullLit {
		return 0
	}
	return e.dfs[l].height
}
func (e *Engine) setHeight(l Lit, h uint32) { e.dfs[l].height = h }
func (e *Engine) getVcomp(l Lit) Lit        { return e.dfs[l].vcomp }
func (e *Engine) setVcomp(l Lit, v Lit)     { e.dfs[l].vcomp = v }
func (e *Engine) getRating(l Lit) float64   { return e.rating[l.Var()] }

func (e *Engine) getChild(u Lit) Lit {
	if u == NullLit {
		return e.rootChild
	}
	return e.dfs[u].child
}
func (e *Engine) setChild(v, u Lit) {
	if v == NullLit {
		e.rootChild = u
	} else {
		e.dfs[v].child = u
	}
}

func (e *Engine) addArc(from, to Lit) { e.arcs[from] = append(e.arcs[from], to) }
func (e *Engine) hasArc(v Lit) bool   { return len(e.arcs[v]) > 0 }
func (e *Engine) popArc(v Lit) Lit {
	last := len(e.arcs[v]) - 1
	u := e.arcs[v][last]
	e.arcs[v] = e.arcs[v][:last]
	return u
}

// initDfsInfo resets v's DFS bookkeeping and stamps it, marking it as a
// member of the current candidate set for initArcs' membership test.
func (e *Engine) initDfsInfo(l Lit) {
	e.dfs[l] = dfsRecord{low: NullLit, parent: NullLit, link: NullLit, child: NullLit, vcomp: NullLit}
	e.setBstamp(l)
}

// initArcs builds the reversed-implication arc graph used by the DFS:
// for each implication l => u with u a later-indexed candidate, it adds
// both ¬u => ¬l and u => l, a symmetry trick that stores each underlying
// binary edge exactly once while still letting the DFS walk both
// directions of the implication graph.
func (e *Engine) initArcs(l Lit) {
	for _, u := range e.binary[l] {
		if int(u) > int(l) && e.isStamped(u) {
			e.addArc(l.Negation(), u.Negation())
			e.addArc(u, l)
		}
	}
}

func (e *Engine) initSCC() {
	e.incBstamp()
	for _, c := range e.candidates {
		lit := c.v.Lit()
		e.initDfsInfo(lit)
		e.initDfsInfo(lit.Negation())
	}
	for _, c := range e.candidates {
		lit := c.v.Lit()
		e.initArcs(lit)
		e.initArcs(lit.Negation())
	}
	e.rankCounter = 0
	e.active = NullLit
	e.settled = NullLit
}

// getSCCAll runs the iterative Tarjan DFS over every candidate literal
// (and its negation) that has not yet been visited.
func (e *Engine) getSCCAll() {
	e.initSCC()
	for _, c := range e.candidates {
		if e.inconsistent {
			break
		}
		lit := c.v.Lit()
		if e.getRank(lit) == 0 {
			e.getSCC(lit)
		}
		if e.getRank(lit.Negation()) == 0 {
			e.getSCC(lit.Negation())
		}
	}
}

func (e *Engine) activateSCC(l Lit) {
	e.rankCounter++
	e.setRank(l, e.rankCounter)
	e.setLink(l, e.active)
	e.setMin(l, l)
	e.active = l
}

// getSCC is the iterative Tarjan DFS body, walking arcs instead of
// recursing so stack depth stays bounded on large formulas.
func (e *Engine) getSCC(v Lit) {
	e.setParent(v, NullLit)
	e.activateSCC(v)
	for v != NullLit && !e.inconsistent {
		ll := e.getMin(v)
		if e.hasArc(v) {
			u := e.popArc(v)
			if r := e.getRank(u); r > 0 {
				if r < e.getRank(ll) {
					e.setMin(v, u)
				}
			} else {
				e.setParent(u, v)
				v = u
				e.activateSCC(v)
			}
		} else {
			u := e.getParent(v)
			if v == ll {
				e.foundSCC(v)
			} else if e.getRank(ll) < e.getRank(e.getMin(u)) {
				e.setMin(u, ll)
			}
			v = u
		}
	}
}

// foundSCC closes out the SCC rooted at v: every member between v and
// the top of the active stack is assigned v as parent and spliced onto
// the settled list, the highest-rated member becomes the representative
// (vcomp), and a member equal to ¬v signals a contradiction.
func (e *Engine) foundSCC(v Lit) {
	t := e.active
	e.active = e.getLink(v)
	best := v
	bestRating := e.getRating(v)
	e.setRank(v, rankSettled)
	head := t
	e.setLink(v, e.settled)
	e.settled = head
	for t != v {
		if t == v.Negation() {
			e.inconsistent = true
			return
		}
		e.setRank(t, rankSettled)
		e.setParent(t, v)
		if r := e.getRating(t); r > bestRating {
			best, bestRating = t, r
		}
		t = e.getLink(t)
	}
	e.setParent(v, v)
	e.setVcomp(v, best)
	if e.getRank(v.Negation()) == rankSettled {
		e.setVcomp(v, e.getVcomp(e.getParent(v.Negation())).Negation())
	}
}

// findHeights assigns a height to every node: members of the same SCC
// share a height, and the settled list is walked in the topological
// order foundSCC produced (class members together, the
// representative last). For each member u, the literals v with v => u are
// read off ¬u's binary adjacency (a clause u ∨ k there gives ¬k => u),
// skipping same-class targets.
func (e *Engine) findHeights() {
	e.rootChild = NullLit
	pp := NullLit
	h := uint32(0)
	var w Lit
	for u := e.settled; u != NullLit; {
		uu := e.getLink(u)
		p := e.getParent(u)
		if p != pp {
			h = 0
			w = NullLit
			pp = p
		}
		for _, k := range e.binary[u.Negation()] {
			v := k.Negation()
			pv := e.getParent(v)
			if pv == NullLit || pv == p {
				continue
			}
			if hh := e.getHeight(pv); hh >= h {
				h = hh + 1
				w = pv
			}
		}
		if p == u {
			v := e.getChild(w)
			e.setHeight(u, h)
			e.setChild(u, NullLit)
			e.setLink(u, v)
			e.setChild(w, u)
		}
		u = uu
	}
}

// lookaheadEntry is one row of the lookahead table: a probe literal and
// the truth-level offset its probe should open at. rep is the forest
// node (SCC representative literal) this entry was built from, used to
// look up the entry's forest-parent representative for wnb inheritance
// in the lookahead driver without overloading the DFS parent field's
// meaning by literal identity.
type lookaheadEntry struct {
	lit    Lit
	offset int
	rep    Lit
}

// constructLookaheadTable flattens the forest findHeights built into a
// pre-order traversal, assigning each representative's probe offset as
// twice its post-order position (so siblings interleave cleanly under
// the truth-level ladder) and threading each node's forest-parent
// representative for wnb inheritance in the lookahead driver.
func (e *Engine) constructLookaheadTable() {
	e.lookaheadTable = e.lookaheadTable[:0]
	u := e.getChild(NullLit)
	v := NullLit
	offset := 0
	for u != NullLit {
		e.setRank(u, uint32(len(e.lookaheadTable)))
		e.lookaheadTable = append(e.lookaheadTable, lookaheadEntry{lit: e.getVcomp(u), rep: u})
		if e.getChild(u) != NullLit {
			e.setParent(u, v)
			v = u
			u = e.getChild(u)
		} else {
			for {
				e.lookaheadTable[e.getRank(u)].offset = offset
				offset += 2
				if v == NullLit {
					e.setParent(u, NullLit)
				} else {
					e.setParent(u, e.getVcomp(v))
				}
				u = e.getLink(u)
				if u == NullLit && v != NullLit {
					u = v
					v = e.getParent(u)
				} else {
					break
				}
			}
		}
	}
}

// EquivalenceMap maps an eliminable variable to the canonical literal a
// host solver should substitute it for.
type EquivalenceMap map[Var]Lit

// getRoot resolves v's canonical equivalence representative. foundSCC
// leaves every class member's parent pointing at the SCC's discovery
// node, not at a single path-compressed root, so this follows one extra
// hop: r1 is v's own SCC root, r2 is the root of r1's (positive)
// variable's own class. Preference goes to the larger variable index; if
// r2 wins (its variable index is larger than r1's), it is negated when r1
// is a negative literal, so a class's representative orientation stays the same regardless
// of which member you start resolving from.
func (e *Engine) getRoot(v Var) Lit {
	r1 := e.getParent(v.Lit())
	r2 := e.getParent(r1.Var().Lit())
	if r1.Var() >= r2.Var() {
		return r1
	}
	if !r1.IsPos() {
		return r2.Negation()
	}
	return r2
}

// collectEquivalences walks every candidate variable through getRoot,
// building the canonicalized root map and eliminable-variable list a
// host solver could substitute away. A variable is eliminable only when
// its root names a genuinely different variable -- a self-root means it
// is already its own class's representative, nothing to eliminate. Once
// a root is accepted, its own parent pointers are pinned to itself (and
// its negation to itself) so the class has a single stable
// representative from here on.
func (e *Engine) collectEquivalences() (EquivalenceMap, []Var) {
	roots := make(EquivalenceMap)
	var eliminable []Var
	for _, c := range e.candidates {
		v := c.v
		p := e.getRoot(v)
		if p == NullLit || p.Var() == v {
			continue
		}
		eliminable = append(eliminable, v)
		roots[v] = p
		e.setParent(p, p)
		e.setParent(p.Negation(), p.Negation())
	}
	return roots, eliminable
}

// preSelect runs one full pre-selection pass from the current decision
// level: choose candidates, decompose the binary implication graph into
// SCCs, assign heights, and build the lookahead table.
func (e *Engine) preSelect() {
	e.lookaheadTable = e.lookaheadTable[:0]
	if e.selectCandidates(e.scopeLvl()) {
		e.getSCCAll()
		if e.inconsistent {
			return
		}
		e.findHeights()
		e.constructLookaheadTable()
	}
}
