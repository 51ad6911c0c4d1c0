package sumgrid

// Board dimensions are fixed constants: the game is balanced around a single
// grid size and tile value range.
const (
	// Cols is the number of columns in the grid.
	Cols = 9
	// Rows is the number of rows in the grid. Row 0 is the top row; a row
	// injection that finds it occupied ends the session.
	Rows = 12
	// InitialRows is the number of populated rows at session start,
	// counted from the bottom of the grid.
	InitialRows = 4
	// MaxValue is the highest tile value. Tile values are uniform in
	// [1, MaxValue].
	MaxValue = 9
)

// Mode selects how the grid grows during a session.
type Mode string

const (
	// ModeClassic injects a new bottom row after every successful clear.
	ModeClassic Mode = "classic"
	// ModeTime injects a new bottom row when the round timer expires.
	// Clears only reset the timer, they never grow the grid.
	ModeTime Mode = "time"
)

// Rules holds the tunable session parameters. Zero or invalid fields are
// replaced with defaults when the engine is created.
type Rules struct {
	// TimeLimitSecs is the round length in time mode.
	TimeLimitSecs int
	// ScorePerTile is awarded for each tile of a cleared selection.
	ScorePerTile int
	// Targets is the candidate set for round targets. All members must be
	// positive: an empty selection sums to zero and must never match.
	Targets []int
}

// DefaultRules returns the standard session parameters.
func DefaultRules() Rules {
	return Rules{
		TimeLimitSecs: 20,
		ScorePerTile:  10,
		Targets:       []int{10, 12, 15, 18, 20, 25},
	}
}

// sanitize replaces invalid rule values with defaults so a bad config file
// can never produce an unwinnable or crashing session.
func (r Rules) sanitize() Rules {
	def := DefaultRules()

	if r.TimeLimitSecs <= 0 {
		r.TimeLimitSecs = def.TimeLimitSecs
	}
	if r.ScorePerTile <= 0 {
		r.ScorePerTile = def.ScorePerTile
	}

	targets := make([]int, 0, len(r.Targets))
	for _, t := range r.Targets {
		if t > 0 {
			targets = append(targets, t)
		}
	}
	if len(targets) == 0 {
		targets = def.Targets
	}
	r.Targets = targets

	return r
}
