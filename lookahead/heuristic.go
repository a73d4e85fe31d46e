package lookahead

// candidate is a free variable together with its rating, reset on every
// pre-selection pass.
type candidate struct {
	v      Var
	rating float64
}

// ensureH grows the set of per-level H-score tables up to level,
// allocating a fresh zeroed table per new level exactly like ensure_H.
func (e *Engine) ensureH(level int) {
	for len(e.H) <= level {
		e.H = append(e.H, make([]float64, e.nbVars*2))
	}
}

// initPreSelection computes (or reuses) the H-score table for the
// current decision level, following the original's three regimes: the
// root gets two full fixpoint sweeps, shallow levels get one incremental
// sweep from the previous level's table, and deep levels are clamped to
// reuse the table at MaxHLevel.
func (e *Engine) initPreSelection(level int) {
	max := e.config.MaxHLevel
	switch {
	case level <= 1:
		e.ensureH(2)
		e.hScores(e.H[0], e.H[1])
		for j := 0; j < 2; j++ {
			for i := 0; i < 2; i++ {
				e.hScores(e.H[i+1], e.H[(i+2)%3])
			}
		}
		e.heur = e.H[1]
	case level < max:
		e.ensureH(level)
		e.hScores(e.H[level-1], e.H[level])
		e.heur = e.H[level]
	default:
		e.ensureH(max)
		e.hScores(e.H[max-1], e.H[max])
		e.heur = e.H[max]
	}
}

// hScores runs one fixpoint step: hp[l] is recomputed from h via
// lScore, normalized so the sum of H over free literals stays near
// 2*|free|, and rating[v] = H(v)*H(¬v) is refreshed alongside it.
func (e *Engine) hScores(h, hp []float64) {
	sum := 0.0
	for _, v := range e.freevars.items {
		l := v.Lit()
		sum += h[l] + h[l.Negation()]
	}
	if sum == 0 {
		sum = 0.0001
	}
	factor := 2 * float64(e.freevars.size()) / sum
	sqfactor := factor * factor
	afactor := factor * e.config.Alpha
	for _, v := range e.freevars.items {
		l := v.Lit()
		pos := e.lScore(l, h, afactor, sqfactor)
		neg := e.lScore(l.Negation(), h, afactor, sqfactor)
		hp[l] = pos
		hp[l.Negation()] = neg
		e.rating[v] = pos * neg
	}
}

// lScore approximates the number of new clauses reachable from l being
// true: a linear term over l's binary-implied literals, plus a quadratic
// term over each non-binary clause watched on ¬l (approximated, for long
// clauses, by the product of two of its other literals).
func (e *Engine) lScore(l Lit, h []float64, afactor, sqfactor float64) float64 {
	sum, tsum := 0.0, 0.0
	for _, k := range e.binary[l] {
		if e.cells.isUndef(k) {
			sum += h[k]
		}
	}
	for _, w := range e.watches[l] {
		switch w.kind {
		case watchTernary:
			tsum += h[w.lit1] * h[w.lit2]
		case watchClause:
			c := w.clause
			if c.Get(0) == l.Negation() {
				tsum += h[c.Get(1)] * h[c.Get(2)]
			} else {
				tsum += h[c.Get(0)] * h[c.Get(2)]
			}
		}
	}
	v := 0.1 + afactor*sum + sqfactor*tsum
	if v > e.config.MaxScore {
		return e.config.MaxScore
	}
	return v
}

// initCandidates populates e.candidates with every free variable that
// passes the prefix filter (or every free variable, in "newbies" mode, or
// exactly the caller-restricted set when SelectLookahead scoped one).
func (e *Engine) initCandidates(newbies bool) float64 {
	e.candidates = e.candidates[:0]
	sum := 0.0
	for _, v := range e.freevars.items {
		switch {
		case len(e.selectVars) > 0:
			if e.selectVars[v] {
				e.candidates = append(e.candidates, candidate{v, e.rating[v]})
				sum += e.rating[v]
			}
		case newbies || e.activePrefix(v):
			e.candidates = append(e.candidates, candidate{v, e.rating[v]})
			sum += e.rating[v]
		}
	}
	return sum
}

// sift the candidate heap (max-heap on rating) back into shape after
// replacing its root, used both while shrinking to the 2x-target window
// and while sifting down to the exact target count.
func (e *Engine) siftDown(j int) {
	i := j
	c := e.candidates[j]
	for k := 2*j + 1; k < len(e.candidates); i, k = k, 2*k+1 {
		if k+1 < len(e.candidates) && e.candidates[k].rating < e.candidates[k+1].rating {
			k++
		}
		if c.rating <= e.candidates[k].rating {
			break
		}
		e.candidates[i] = e.candidates[k]
	}
	if i > j {
		e.candidates[i] = c
	}
}

// selectCandidates computes the target candidate count for the level,
// then trims the raw candidate
// set down to it via a mean-cut pass followed by a heap-sift. It returns
// false when the candidate set came up empty because the formula is
// fully satisfied.
func (e *Engine) selectCandidates(level int) bool {
	e.initPreSelection(level)
	levelCand := e.config.LevelCand
	if f := e.freevars.size() / 50; f > levelCand {
		levelCand = f
	}
	maxNumCand := e.freevars.size()
	if level != 0 {
		maxNumCand = levelCand / level
	}
	if maxNumCand < e.config.MinCutoff {
		maxNumCand = e.config.MinCutoff
	}

	var sum float64
	newbies := false
	for {
		sum = e.initCandidates(newbies)
		if len(e.candidates) > 0 {
			break
		}
		if e.isSat() {
			return false
		}
		newbies = true
	}

	progress := true
	for progress && len(e.candidates) >= maxNumCand*2 {
		progress = false
		mean := sum / (float64(len(e.candidates)) + 0.0001)
		sum = 0
		for i := 0; i < len(e.candidates) && len(e.candidates) >= maxNumCand*2; i++ {
			if e.candidates[i].rating >= mean {
				sum += e.candidates[i].rating
			} else {
				last := len(e.candidates) - 1
				e.candidates[i] = e.candidates[last]
				e.candidates = e.candidates[:last]
				i--
				progress = true
			}
		}
	}

	if len(e.candidates) > maxNumCand {
		for j := len(e.candidates) / 2; j > 0; {
			j--
			e.siftDown(j)
		}
		for {
			last := len(e.candidates) - 1
			e.candidates[0] = e.candidates[last]
			e.candidates = e.candidates[:last]
			if len(e.candidates) == maxNumCand {
				break
			}
			e.siftDown(0)
		}
	}
	return true
}

// isUnsat reports whether some clause is entirely falsified under the
// current assignment.
func (e *Engine) isUnsat() bool {
	for _, c := range e.clauses {
		j := 0
		for j < c.Len() && e.cells.isFalse(c.Get(j)) {
			j++
		}
		if j == c.Len() {
			return true
		}
	}
	return false
}

// isSat reports whether every binary and every long clause is already
// satisfied by the current (possibly partial) assignment; used to short
// circuit pre-selection once the free-variable candidate pool is empty.
// It does not scan ternary watches directly: propagate would already
// have raised inconsistent on a falsified ternary, so by the time
// freevars is empty and the engine is still consistent, every ternary is
// necessarily satisfied too.
func (e *Engine) isSat() bool {
	for _, v := range e.freevars.items {
		l := v.Lit()
		for _, k := range e.binary[l] {
			if !e.cells.isTrue(k) {
				return false
			}
		}
		nl := l.Negation()
		for _, k := range e.binary[nl] {
			if !e.cells.isTrue(k) {
				return false
			}
		}
	}
	for _, c := range e.clauses {
		j := 0
		for j < c.Len() && !e.cells.isTrue(c.Get(j)) {
			j++
		}
		if j == c.Len() {
			return false
		}
	}
	return true
}
