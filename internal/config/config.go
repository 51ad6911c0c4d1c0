// Package config provides YAML-based rules configuration and difficulty
// presets for the sumrush platform.
package config

// SumgridConfig contains the tunable parameters of a Sum Rush session.
// Grid dimensions are deliberately not configurable; the game is balanced
// around a single board size.
type SumgridConfig struct {
	Rules SumgridRules `yaml:"rules"`
}

// SumgridRules defines the session parameters.
type SumgridRules struct {
	// TimeLimitSecs is the round length for time attack mode.
	TimeLimitSecs int `yaml:"time_limit_secs"`
	// ScorePerTile is awarded per tile of a cleared selection.
	ScorePerTile int `yaml:"score_per_tile"`
	// Targets is the candidate set for round targets. Members must be
	// positive; invalid entries are dropped by the engine.
	Targets []int `yaml:"targets"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	// DifficultyFixed keeps the config file's values untouched.
	DifficultyFixed DifficultyPreset = "fixed"
)

// presetRules maps presets to their rule overrides. Easier presets use
// smaller targets (reachable with fewer tiles) and a longer round timer.
var presetRules = map[DifficultyPreset]SumgridRules{
	DifficultyEasy: {
		TimeLimitSecs: 30,
		ScorePerTile:  10,
		Targets:       []int{5, 6, 8, 10, 12},
	},
	DifficultyNormal: {
		TimeLimitSecs: 20,
		ScorePerTile:  10,
		Targets:       []int{10, 12, 15, 18, 20, 25},
	},
	DifficultyHard: {
		TimeLimitSecs: 12,
		ScorePerTile:  10,
		Targets:       []int{15, 18, 20, 25, 27, 30},
	},
}

// ApplySumgridPreset overrides the config's rules with the preset's values.
// Unknown or fixed presets leave the config untouched.
func ApplySumgridPreset(cfg *SumgridConfig, preset DifficultyPreset) {
	rules, ok := presetRules[preset]
	if !ok {
		return
	}
	cfg.Rules = rules
}
