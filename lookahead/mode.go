package lookahead

// mode selects which side effects the propagation engine performs while
// walking watch lists. The propagation loop itself never branches on
// mode beyond the handful of conditional blocks this enum gates -- there
// is exactly one propagate() implementation.
type mode byte

const (
	// modeSearching is real top-level search: clause reductions are
	// permanent, dynamic binaries get synthesized, DRAT lines are
	// emitted, and free variables leave the free set.
	modeSearching mode = iota
	// modeLookahead1 is a single-probe hypothesis: reductions accumulate
	// weighted-new-binary score instead of mutating the clause database,
	// and forced literals are collected onto the windfall stack.
	modeLookahead1
	// modeLookahead2 is a nested probe opened during double lookahead:
	// side effects are suppressed entirely beyond the assignment itself.
	modeLookahead2
)

func (m mode) String() string {
	switch m {
	case modeSearching:
		return "searching"
	case modeLookahead1:
		return "lookahead1"
	case modeLookahead2:
		return "lookahead2"
	default:
		return "unknown"
	}
}
