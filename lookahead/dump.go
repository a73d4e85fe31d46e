package lookahead

import (
	"fmt"
	"io"
)

// Dump writes a DIMACS-flavored snapshot of the engine's current state to
// w: a "v" line with the partial model's signed literals, the live
// binary implication graph, and the accumulated statistics. It is meant
// for interactive debugging, not machine parsing, and only runs anything
// when Verbose is set.
func (e *Engine) Dump(w io.Writer) {
	if !e.Verbose {
		return
	}
	e.dumpModel(w)
	e.dumpBinary(w)
	e.dumpStats(w)
}

func (e *Engine) dumpModel(w io.Writer) {
	fmt.Fprint(w, "v ")
	for v := 0; v < e.nbVars; v++ {
		l := Var(v).Lit()
		switch {
		case e.cells.isTrue(l):
			fmt.Fprintf(w, "%d ", v+1)
		case e.cells.isFalse(l):
			fmt.Fprintf(w, "%d ", -(v + 1))
		}
	}
	fmt.Fprintln(w)
}

func (e *Engine) dumpBinary(w io.Writer) {
	for l := 0; l < e.nbVars*2; l++ {
		lit := Lit(l)
		for _, k := range e.binary[lit] {
			fmt.Fprintf(w, "c binary %d %d\n", lit.Negation().Int(), k.Int())
		}
	}
}

func (e *Engine) dumpStats(w io.Writer) {
	s := e.stats
	fmt.Fprintf(w, "c decisions %d propagations %d addBinary %d delBinary %d windfalls %d doubleLookaheadRounds %d\n",
		s.Decisions, s.Propagations, s.AddBinary, s.DelBinary, s.WindfallBinaries, s.DoubleLookaheadRounds)
}
