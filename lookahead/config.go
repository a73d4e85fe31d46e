package lookahead

// Config gathers the engine's tunable parameters as exported fields: the
// engine is meant to be embedded and tuned by a host CDCL solver, so its
// knobs are caller-visible configuration rather than hardcoded constants.
type Config struct {
	// LevelCand is the target number of candidates per lookahead level,
	// before dividing by the current level.
	LevelCand int
	// MinCutoff is the minimum number of candidates ever kept, regardless
	// of LevelCand/level.
	MinCutoff int
	// MaxHLevel bounds how many distinct H-score tables are kept; deeper
	// decision levels reuse the table at MaxHLevel.
	MaxHLevel int
	// Alpha weights the binary contribution against the squared ternary
	// contribution in the H-score fixpoint (l_score).
	Alpha float64
	// MaxScore clamps any single H-score.
	MaxScore float64
	// TC1Limit bounds how many binaries a single try_add_binary call may
	// dynamically synthesize via one-step transitive closure.
	TC1Limit int
	// DLSuccess seeds the weighted-new-binary score threshold
	// (Engine.deltaTrigger) a single-lookahead probe must clear before the engine bothers deepening it with a double
	// lookahead.
	DLSuccess float64
	// DLMaxIterations bounds how many nested probes a single double
	// lookahead round may run.
	DLMaxIterations int
	// DeltaRho decays the double-lookahead threshold whenever a probe
	// fails to clear it, so double lookahead broadens its reach once plain
	// lookahead stops finding much.
	DeltaRho float64
	// DRAT enables emission of proof lines for clause/binary/unit commits
	// made while in searching mode.
	DRAT bool
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() Config {
	return Config{
		LevelCand:       600,
		MinCutoff:       30,
		MaxHLevel:       50,
		Alpha:           0.15,
		MaxScore:        1e4,
		TC1Limit:        10000,
		DLSuccess:       1.0,
		DLMaxIterations: 3,
		DeltaRho:        0.9,
		DRAT:            false,
	}
}
