package lookahead

// setBstamps stamps l and every literal l directly implies (its binary
// adjacency list), so that a later isStamped(k) check tells the caller
// "¬l ∨ k is already known" without walking the list again.
func (e *Engine) setBstamps(l Lit) {
	e.incBstamp()
	e.setBstamp(l)
	for _, k := range e.binary[l] {
		e.setBstamp(k)
	}
}

// addTC1 adds the one-step transitive closure of u∨v: for every w with
// ¬v ∨ w already present, u∨v together with ¬v∨w implies u∨w, so it is
// added directly (bounded by Config.TC1Limit). If ¬v∨w's own complement,
// u∨¬w, is already implied (¬w is stamped, meaning u∨¬w is known because
// every implicant of ¬u is stamped), u∨v∨¬w∨w collapses and u is unit.
// Precondes: every implicant of ¬u is already stamped (setBstamps(¬u)).
// Returns false if it derived a unit (and thus never reached add_binary).
func (e *Engine) addTC1(u, v Lit) bool {
	for _, w := range e.binary[v] {
		if e.cells.isFixed(w) {
			continue
		}
		if e.isStamped(w.Negation()) {
			e.assign(u)
			return false
		}
		if e.numTC1 < e.config.TC1Limit {
			e.numTC1++
			e.addBinary(u, w)
		}
	}
	return true
}

// tryAddBinary is the main entry point for dynamically synthesizing a
// binary clause discovered because a ternary or long clause shrank to two
// live literals. It may instead derive a unit literal from the transitive
// closure of the existing binary graph, in which case no new clause is
// added at all.
func (e *Engine) tryAddBinary(u, v Lit) {
	e.setBstamps(u.Negation())
	if e.isStamped(v.Negation()) {
		e.assign(u)
		return
	}
	if e.isStamped(v) {
		return
	}
	if !e.addTC1(u, v) {
		return
	}
	e.setBstamps(v.Negation())
	if e.isStamped(u.Negation()) {
		e.assign(v)
		return
	}
	if !e.addTC1(v, u) {
		return
	}
	e.updatePrefix(u)
	e.updatePrefix(v)
	e.addBinary(u, v)
}
