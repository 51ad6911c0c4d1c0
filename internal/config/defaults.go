package config

import (
	_ "embed"
)

//go:embed defaults/sumgrid.yaml
var defaultSumgridYAML []byte

// DefaultSumgridConfig returns the default Sum Rush configuration.
func DefaultSumgridConfig() SumgridConfig {
	return SumgridConfig{
		Rules: SumgridRules{
			TimeLimitSecs: 20,
			ScorePerTile:  10,
			Targets:       []int{10, 12, 15, 18, 20, 25},
		},
	}
}
