package lookahead

// Clause is a disjunction of at least four literals, kept in the
// engine's clauses slice. The first two slots are the watched literals
// (see watch.go); the remaining slots are unordered. Binary clauses never
// become a Clause: they live in the binary-adjacency lists (binary.go).
// Ternary clauses are not represented as a Clause either; they are
// stored inline in watch lists (see watch.go's ternaryWatch).
type Clause struct {
	lits []Lit
}

// newClauseFromInts copies lits into a freshly allocated clause.
func newClauseFromInts(lits []Lit) *Clause {
	cp := make([]Lit, len(lits))
	copy(cp, lits)
	return &Clause{lits: cp}
}

// Len returns the number of literals still in the clause.
func (c *Clause) Len() int { return len(c.lits) }

// Get returns the ith literal.
func (c *Clause) Get(i int) Lit { return c.lits[i] }

// Set overwrites the ith literal.
func (c *Clause) Set(i int, l Lit) { c.lits[i] = l }

// Swap exchanges the ith and jth literals, used to move a newly found
// non-false literal into the watched slots.
func (c *Clause) Swap(i, j int) { c.lits[i], c.lits[j] = c.lits[j], c.lits[i] }

// blockingLiteral picks the literal cached alongside a long-clause watch,
// chosen as c[size/4] at attach time: its truth lets the watcher skip
// re-examining the clause without touching the watched slots at all.
func (c *Clause) blockingLiteral() Lit {
	return c.lits[len(c.lits)/4]
}
