package lookahead

// Stats are statistics accumulated during Search/Simplify/SCC. They are
// provided for information purposes only; formatting and reporting them
// is left to the caller.
type Stats struct {
	AddBinary                  int
	DelBinary                  int
	AddTernary                 int
	DelTernary                 int
	Propagations               int
	Decisions                  int
	WindfallBinaries           int
	AutarkyPropagations        int
	AutarkyEquivalences        int
	DoubleLookaheadRounds      int
	DoubleLookaheadPropagations int
}
