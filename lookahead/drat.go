package lookahead

// DratSink receives proof obligations for every clause, binary, or unit
// commit made while the engine is in searching mode. A nil sink (the
// default) disables proof emission; Config.DRAT gates whether the engine
// even attempts to call a configured sink.
type DratSink interface {
	// AddClause records a learned/native clause as satisfied by the
	// current set of assumptions.
	AddClause(lits []Lit)
	// AddBinary records a dynamically synthesized binary clause.
	AddBinary(l1, l2 Lit)
	// AddUnit records a literal assigned as a unit while searching.
	AddUnit(lit Lit)
}

// dratAssign is called at every assign() that lands while in searching
// mode: it reports the literal so the sink can reconstruct the clause
// that justifies it.
func (e *Engine) dratAssign(l Lit) {
	if e.drat == nil || !e.config.DRAT || e.mode != modeSearching {
		return
	}
	e.drat.AddUnit(l)
}
