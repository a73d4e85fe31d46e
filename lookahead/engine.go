package lookahead

import (
	"log"
)

// litInfo is per-literal scratch state rebuilt on every lookahead pass:
// the running weighted-new-binaries score used to rank candidates, and
// the double-lookahead "already probed this round" stamp.
type litInfo struct {
	wnb             float64
	parent          Lit
	doubleLookahead uint32
}

// Engine is a lookahead-style satisfiability search over a CNF formula.
// It owns the binary implication graph, the ternary and long clause
// watch lists, the truth-level stamped assignment, and every piece of
// pre-selection/lookahead scratch state needed to pick the next decision
// literal. An Engine is not safe for concurrent use; callers needing
// parallelism should run independent Engines over independent
// sub-problems.
type Engine struct {
	nbVars int

	cells    cells
	freevars *freeSet

	binary  [][]Lit
	watches [][]watched
	clauses []*Clause

	retiredClauses    []*Clause
	retiredClauseLim  []int
	retiredTernary    []ternaryLits
	retiredTernaryLim []int

	trail    []Lit
	trailLim []int

	binaryTrail    []int
	binaryTrailLim []int

	qhead    int
	qheadLim []int

	numTC1    int
	numTC1Lim []int

	level        Level
	mode         mode
	inconsistent bool

	prefix  uint64
	vprefix []prefixEntry

	bstampID uint32
	bstamp   []uint32
	istampID uint32

	H      [][]float64
	heur   []float64
	rating []float64

	candidates []candidate

	dfs         []dfsRecord
	arcs        [][]Lit
	rankCounter uint32
	active      Lit
	settled     Lit
	rootChild   Lit

	lookaheadTable []lookaheadEntry

	lits         []litInfo
	wstack       []Lit
	wnbScore     float64
	deltaTrigger float64

	wnbTrailLim []int
	wnbQheadLim []int

	dl2TrailLim []int
	dl2QheadLim []int

	rngState uint64

	selectVars map[Var]bool

	ext  Extension
	drat DratSink

	config Config
	stats  Stats
	limits Limits

	Verbose bool
	Logger  *log.Logger
}

// New allocates an Engine for a formula over nbVars variables, seeded
// with the given clauses. Clauses of length 1 are recorded as immediate
// units, length 2 as binaries, length 3 as watched ternaries, and longer
// clauses as watched long clauses. Config zero value is invalid; pass
// DefaultConfig() or a variant of it.
func New(nbVars int, clauses [][]Lit, cfg Config) *Engine {
	e := &Engine{
		nbVars:   nbVars,
		cells:    newCells(nbVars),
		freevars: newFreeSet(nbVars),
		binary:   make([][]Lit, nbVars*2),
		watches:  make([][]watched, nbVars*2),
		arcs:     make([][]Lit, nbVars*2),
		dfs:      make([]dfsRecord, nbVars*2),
		bstamp:   make([]uint32, nbVars*2),
		lits:     make([]litInfo, nbVars*2),
		vprefix:  make([]prefixEntry, nbVars),
		rating:   make([]float64, nbVars),
		config:   cfg,
		level:    CFixedTruth,
		active:   NullLit,
		settled:  NullLit,
		rootChild: NullLit,
		rngState:     0x9e3779b97f4a7c15,
		deltaTrigger: cfg.DLSuccess,
		Logger:       log.Default(),
	}
	for _, c := range clauses {
		e.addClause(c)
	}
	e.propagate()
	return e
}

// addClause installs one initial clause, dispatching on its length.
func (e *Engine) addClause(lits []Lit) {
	switch len(lits) {
	case 0:
		e.inconsistent = true
	case 1:
		e.assign(lits[0])
	case 2:
		e.addBinary(lits[0], lits[1])
	case 3:
		e.attachTernary(lits[0], lits[1], lits[2])
	default:
		c := newClauseFromInts(lits)
		e.clauses = append(e.clauses, c)
		e.attachClause(c)
	}
}

// nextRand returns the next value of a small xorshift generator used only
// to break ties when selecting among literals with equal wnb scores.
func (e *Engine) nextRand() uint64 {
	x := e.rngState
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	e.rngState = x
	return x
}

// Stats returns a copy of the counters accumulated so far.
func (e *Engine) Stats() Stats { return e.stats }

// SetExtension installs (or clears, with nil) the host solver's opaque
// constraint hook.
func (e *Engine) SetExtension(ext Extension) { e.ext = ext }

// SetDratSink installs (or clears, with nil) the proof-obligation sink.
func (e *Engine) SetDratSink(d DratSink) { e.drat = d }

// SetLimits installs the cancellation/memory ceiling polled by
// checkpoint().
func (e *Engine) SetLimits(l Limits) { e.limits = l }

// NVars returns the number of variables the engine was built with.
func (e *Engine) NVars() int { return e.nbVars }
