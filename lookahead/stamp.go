package lookahead

// Level is a truth level: the depth in a ladder where levels below
// CFixedTruth are hypothetical (single or double lookahead probes), and
// CFixedTruth and above are permanent decisions of the top-level search.
type Level int64

// CFixedTruth is the boundary between hypothetical and permanent
// assignments. It is chosen far larger than any realistic lookahead
// nesting depth, so that probes at every lookahead/double-lookahead depth
// still land strictly below it.
const CFixedTruth Level = 1 << 40

// probeLevelBase is the smallest level a lookahead probe is ever stamped
// at. constructLookaheadTable numbers its entries from offset 0, but a
// stamp of exactly 0 is indistinguishable from unassigned (isUndef), so
// every probe level is this base plus its table offset rather than the
// raw offset.
const probeLevelBase Level = 1

// stamp is the per-literal-index cell: a single signed integer that
// encodes both the current truth value and
// the level at which it was set. A cell of 0 means undef; a positive
// value L means the corresponding literal is true at level L; a negative
// value -L means it is false at level L (i.e. its negation is true at L).
//
// Cells are indexed by literal, not by variable: cell[l] and cell[¬l] are
// always exact negatives of one another once assigned, which is what
// lets isTrue/isFalse be O(1) without a branch on polarity.
type stamp = int64

// cells holds one stamp per literal index (2*nbVars entries).
type cells []stamp

func newCells(nbVars int) cells {
	return make(cells, nbVars*2)
}

func (c cells) isUndef(l Lit) bool { return c[l] == 0 }

func (c cells) isTrue(l Lit) bool { return c[l] > 0 }

func (c cells) isFalse(l Lit) bool { return c[l] < 0 }

// isFixed reports whether l is assigned at all, at any level.
func (c cells) isFixed(l Lit) bool { return c[l] != 0 }

// isFixedAt reports whether l (in either polarity) is already settled at
// a level at or above level, i.e. it is "fixed" from the point of view of
// a probe opened at level: there is no need to hypothesize about it since
// its value was settled by an outer, less hypothetical context (a higher
// stamp means a context closer to, or at, the permanent top-level search).
func (c cells) isFixedAt(l Lit, level Level) bool {
	v := c[l]
	if v == 0 {
		return false
	}
	if v < 0 {
		v = -v
	}
	return Level(v) >= level
}

// levelOf returns the absolute level at which l's variable was stamped,
// or 0 if unassigned.
func (c cells) levelOf(l Lit) Level {
	v := c[l]
	if v < 0 {
		v = -v
	}
	return Level(v)
}

func (c cells) setTrue(l Lit, level Level) {
	c[l] = int64(level)
	c[l.Negation()] = -int64(level)
}

func (c cells) setUndef(l Lit) {
	c[l] = 0
	c[l.Negation()] = 0
}
