package lookahead

// watchKind distinguishes the three watch-entry shapes a literal's watch
// list can hold. Binary clauses are never watched here: they live in the
// binary adjacency lists (binary.go) and are propagated in their own
// phase.
type watchKind byte

const (
	watchTernary watchKind = iota
	watchClause
	watchExternal
)

// watched is a single entry of a literal's watch list.
type watched struct {
	kind watchKind

	// ternary: lit1, lit2 are the clause's other two literals.
	lit1, lit2 Lit

	// long clause: clause is the watched clause; lit1 doubles as the
	// cached blocking literal (see Clause.blockingLiteral).
	clause *Clause

	// external constraint: extID identifies the opaque constraint for
	// the Extension callback.
	extID int
}

// ternaryLits is a retired ternary clause, kept verbatim so it can be
// reattached on backtrack.
type ternaryLits struct{ a, b, c Lit }

// attachTernary registers watched.kind==watchTernary entries for each of
// the three literals of a ternary clause, each entry carrying the other
// two literals.
func (e *Engine) attachTernary(a, b, c Lit) {
	e.stats.AddTernary++
	e.watches[a.Negation()] = append(e.watches[a.Negation()], watched{kind: watchTernary, lit1: b, lit2: c})
	e.watches[b.Negation()] = append(e.watches[b.Negation()], watched{kind: watchTernary, lit1: a, lit2: c})
	e.watches[c.Negation()] = append(e.watches[c.Negation()], watched{kind: watchTernary, lit1: a, lit2: b})
}

// detachTernary retires a ternary clause during propagation. The entry
// under ¬a is left for the caller to drop in place (it is being compacted
// away as part of the same watch-list walk); the other two watch lists
// are compacted here.
func (e *Engine) detachTernary(a, b, c Lit) {
	e.stats.DelTernary++
	e.retiredTernary = append(e.retiredTernary, ternaryLits{a, b, c})
	e.watches[b.Negation()] = eraseTernaryWatch(e.watches[b.Negation()], a, c)
	e.watches[c.Negation()] = eraseTernaryWatch(e.watches[c.Negation()], a, b)
}

func eraseTernaryWatch(list []watched, x, y Lit) []watched {
	for i, w := range list {
		if w.kind == watchTernary && ((w.lit1 == x && w.lit2 == y) || (w.lit1 == y && w.lit2 == x)) {
			last := len(list) - 1
			list[i] = list[last]
			return list[:last]
		}
	}
	return list
}

// attachClause registers a long (>=4 literal) clause on the watch lists
// of its first two literals, using a blocking literal cached at attach
// time. Ternary clauses never reach this function; see attachAny.
func (e *Engine) attachClause(c *Clause) {
	block := c.blockingLiteral()
	e.watches[c.Get(0).Negation()] = append(e.watches[c.Get(0).Negation()], watched{kind: watchClause, clause: c, lit1: block})
	e.watches[c.Get(1).Negation()] = append(e.watches[c.Get(1).Negation()], watched{kind: watchClause, clause: c, lit1: block})
}

// attachAny dispatches to attachTernary or attachClause depending on
// clause length.
func (e *Engine) attachAny(c *Clause) {
	if c.Len() == 3 {
		e.attachTernary(c.Get(0), c.Get(1), c.Get(2))
	} else {
		e.attachClause(c)
	}
}

// detachClause retires a long clause during propagation.
func (e *Engine) detachClause(c *Clause) {
	e.retiredClauses = append(e.retiredClauses, c)
	e.watches[c.Get(0).Negation()] = eraseClauseWatch(e.watches[c.Get(0).Negation()], c)
	e.watches[c.Get(1).Negation()] = eraseClauseWatch(e.watches[c.Get(1).Negation()], c)
}

func eraseClauseWatch(list []watched, target *Clause) []watched {
	for i, w := range list {
		if w.kind == watchClause && w.clause == target {
			last := len(list) - 1
			list[i] = list[last]
			return list[:last]
		}
	}
	return list
}
