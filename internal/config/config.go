// Package config provides YAML configuration loading and difficulty
// management for the match-3 game.
package config

import "fmt"

// Match3Config is the whole of match3.yaml.
type Match3Config struct {
	Board      BoardConfig      `yaml:"board"`
	Rules      RulesConfig      `yaml:"rules"`
	Animation  AnimationConfig  `yaml:"animation"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Campaign   []LevelConfig    `yaml:"campaign"`
}

// BoardConfig sets the grid shape and the palette.
type BoardConfig struct {
	Rows    int      `yaml:"rows"`
	Columns int      `yaml:"columns"`
	Colors  []string `yaml:"colors"`
}

// RulesConfig holds the rule switches of the board engine.
type RulesConfig struct {
	Strict          bool   `yaml:"strict"`            // reject deals that already contain a match
	Strategy        string `yaml:"strategy"`          // "lookahead" or "rescan"
	Executor        string `yaml:"executor"`          // "direct" or "reorder"
	MaxDealAttempts int    `yaml:"max_deal_attempts"` // per deal round
	Refill          string `yaml:"refill"`            // "gravity" or "inplace"
	Hints           bool   `yaml:"hints"`             // allow the hint key
}

// AnimationConfig controls the fade of cleared tiles.
type AnimationConfig struct {
	FadeTicks int `yaml:"fade_ticks"` // ticks a cleared tile stays dimmed
}

// LevelConfig is one campaign level.
type LevelConfig struct {
	Name        string `yaml:"name"`
	Rows        int    `yaml:"rows"`
	Columns     int    `yaml:"columns"`
	Colors      int    `yaml:"colors"` // how many palette colors are in play
	TargetScore int    `yaml:"target_score"`
	Moves       int    `yaml:"moves"` // move budget
}

// DifficultyConfig defines how the endless game gets harder.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines what drives difficulty up.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "moves", or "none"
	MaxAt int    `yaml:"max_at"` // score or moves at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	MinColors     int     `yaml:"min_colors"`     // colors in play at difficulty 0
	MoveReduction float64 `yaml:"move_reduction"` // share of a campaign move budget removed at difficulty 1
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name is normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset adjusts cfg for a difficulty preset. Fixed turns progression
// off and keeps the configured palette; the others start the progression
// at the preset's level.
func ApplyPreset(cfg *Match3Config, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Rules.Hints = true
		cfg.Animation.FadeTicks = max(cfg.Animation.FadeTicks, 12)
	case DifficultyHard:
		cfg.Rules.Hints = false
	}
}
