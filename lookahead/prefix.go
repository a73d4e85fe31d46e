package lookahead

// prefixEntry caches, for one variable, the branch prefix and its length
// the last time that variable was found to still be worth considering as
// a pre-selection candidate.
type prefixEntry struct {
	prefix uint32
	length uint32
}

// flipPrefix sets the bit of the current 64-bit branch prefix at the
// current depth and clears every bit above it, used by the search supervisor when backtracking to a
// sibling branch so the prefix remains a unique path signature.
func (e *Engine) flipPrefix() {
	if len(e.trailLim) < 64 {
		mask := uint64(1) << uint(len(e.trailLim))
		e.prefix = mask | (e.prefix & (mask - 1))
	}
}

// prunePrefix truncates the prefix to the bits below the current depth.
// Nothing in the engine calls it: pop leaves the prefix as it is.
func (e *Engine) prunePrefix() {
	if len(e.trailLim) < 64 {
		e.prefix &= (uint64(1) << uint(len(e.trailLim))) - 1
	}
}

// updatePrefix refreshes v's cached prefix if the branch changed since
// v's cache was last written, so a later activePrefix check against a
// stale cache does not wrongly suppress v as a candidate.
func (e *Engine) updatePrefix(l Lit) {
	v := l.Var()
	p := e.vprefix[v]
	mask := uint32((uint64(1) << uint(min32(31, p.length))) - 1)
	if uint64(p.length) >= uint64(len(e.trailLim)) || (p.prefix&mask) != (uint32(e.prefix)&mask) {
		e.vprefix[v] = prefixEntry{prefix: uint32(e.prefix), length: uint32(len(e.trailLim))}
	}
}

// activePrefix reports whether v's cached branch prefix is still
// consistent with the current branch, i.e. whether v remains eligible as
// a pre-selection candidate without having to recompute its rating from
// scratch.
func (e *Engine) activePrefix(v Var) bool {
	lvl := uint32(len(e.trailLim))
	p := e.vprefix[v]
	if p.length > lvl {
		return false
	}
	if p.length == lvl || p.length >= 31 {
		return uint32(e.prefix) == p.prefix
	}
	mask := (uint32(1) << p.length) - 1
	return (uint32(e.prefix) & mask) == (p.prefix & mask)
}

func min32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}
