// Package atmostone implements a single cardinality constraint -- at most
// one of a set of literals may be true -- as a lookahead.Extension, rather
// than as native clauses the engine's core watch lists would have to
// carry.
package atmostone

import "github.com/crillab/lookaheadsat/lookahead"

// Constraint enforces that at most one of its literals is ever true.
type Constraint struct {
	lits   []lookahead.Lit
	engine *lookahead.Engine
}

// New builds a Constraint over the given signed DIMACS literals, registers
// it with e as e's Extension, and watches each literal so the engine
// notifies it the moment one becomes true.
func New(e *lookahead.Engine, ints ...int) *Constraint {
	c := &Constraint{lits: make([]lookahead.Lit, len(ints))}
	for i, v := range ints {
		c.lits[i] = lookahead.IntToLit(v)
	}
	for i, l := range c.lits {
		e.WatchExternal(l, i)
	}
	// A literal the engine already made true (a unit clause propagated in
	// lookahead.New) never reaches Propagate, so its consequences are
	// asserted here.
	model := e.GetModel()
	for i, l := range c.lits {
		if val := model[l.Var()]; val == lookahead.Indet || (val == lookahead.True) != l.IsPos() {
			continue
		}
		for j, o := range c.lits {
			if j != i && o != l {
				e.AssignExternal(o.Negation())
			}
		}
	}
	e.SetExtension(c)
	return c
}

// SetLookahead implements lookahead.Extension.
func (c *Constraint) SetLookahead(e *lookahead.Engine) { c.engine = e }

// Propagate implements lookahead.Extension: once one watched literal
// becomes true, every other literal in the constraint is forced false.
func (c *Constraint) Propagate(lit lookahead.Lit, constraintID int) bool {
	if c.engine == nil {
		return true
	}
	for i, l := range c.lits {
		if i == constraintID || l == lit {
			continue
		}
		if !c.engine.AssignExternal(l.Negation()) {
			return true
		}
	}
	return true
}
