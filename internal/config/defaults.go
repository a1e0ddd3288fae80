package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the built-in configuration used when no YAML
// can be read: a 4x4 board with six colors, the engine's own defaults.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: BoardConfig{
			Rows:    4,
			Columns: 4,
			Colors:  []string{"cyan", "magenta", "red", "green", "yellow", "blue"},
		},
		Rules: RulesConfig{
			Strict:          true,
			Strategy:        "lookahead",
			Executor:        "direct",
			MaxDealAttempts: 1000,
			Refill:          "gravity",
			Hints:           true,
		},
		Animation: AnimationConfig{
			FadeTicks: 8,
		},
		Difficulty: DifficultyConfig{
			Enabled: false,
			Progression: ProgressionConfig{
				Type: "none",
			},
		},
		Campaign: []LevelConfig{
			{Name: "Warm Up", Rows: 5, Columns: 5, Colors: 4, TargetScore: 30, Moves: 15},
			{Name: "Full Spread", Rows: 6, Columns: 6, Colors: 6, TargetScore: 60, Moves: 25},
		},
	}
}
