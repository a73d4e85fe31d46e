package lookahead

// Extension is the opaque hook reserved for a host solver to plug in
// constraint types the core engine does not natively
// understand (cardinality, XOR, pseudo-Boolean, ...). The engine treats
// an Extension purely as a black box: it forwards propagation events for
// literals the extension asked to watch, and tells it when lookahead
// context is entered or left so it can, if it wants to, run its own
// lookahead-style reasoning via the engine handle it is given.
type Extension interface {
	// Propagate is called when lit has just become true and was
	// registered against constraintID via WatchExternal. It returns keep:
	// true leaves the watch on lit's watch list, so it fires again the next
	// time lit becomes true; false removes it, and pop does not put it
	// back. If Propagate detects
	// a conflict, it must call Engine.SetInconsistent before returning.
	Propagate(lit Lit, constraintID int) (keep bool)
	// SetLookahead is called with the engine handle at entry to every
	// public operation that toggles lookahead context, and with nil at
	// exit.
	SetLookahead(engine *Engine)
}

// WatchExternal registers an external constraint watch on lit: whenever
// lit becomes true during propagation, ext.Propagate(lit, constraintID)
// will be invoked.
func (e *Engine) WatchExternal(lit Lit, constraintID int) {
	e.watches[lit] = append(e.watches[lit], watched{kind: watchExternal, extID: constraintID})
}

// SetInconsistent lets an Extension flag a conflict discovered inside its
// own Propagate callback; the engine treats it identically to a native
// conflict.
func (e *Engine) SetInconsistent() { e.inconsistent = true }

// AssignExternal lets an Extension assert lit as a consequence of its own
// reasoning, exactly as a binary or ternary clause would during ordinary
// propagation. It returns false if lit's negation was already true, in
// which case the engine is already marked inconsistent and the extension
// need not also call SetInconsistent.
func (e *Engine) AssignExternal(lit Lit) bool {
	e.assign(lit)
	return !e.inconsistent
}

type scopedExt struct{ e *Engine }

func (e *Engine) enterExtScope() scopedExt {
	if e.ext != nil {
		e.ext.SetLookahead(e)
	}
	return scopedExt{e}
}

func (s scopedExt) close() {
	if s.e.ext != nil {
		s.e.ext.SetLookahead(nil)
	}
}
