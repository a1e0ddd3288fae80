package config

import "math"

// DifficultyManager computes the endless-mode parameters from progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0, 1),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty in [0, 1] after score points and moves
// swaps. Disabled progression stays at the initial level.
func (d *DifficultyManager) Level(score, moves int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "moves":
		progress = float64(moves) / maxAt
	default:
		return d.initialLevel
	}
	progress = clampF(progress, 0, 1)
	return d.initialLevel + progress*(1-d.initialLevel)
}

// Colors returns how many of total palette colors are in play. It grows
// from min_colors at level 0 to total at level 1. A zero min_colors keeps
// the whole palette.
func (d *DifficultyManager) Colors(total, score, moves int) int {
	lo := d.cfg.Scaling.MinColors
	if lo <= 0 || lo >= total {
		return total
	}
	level := d.Level(score, moves)
	n := lo + int(math.Round(level*float64(total-lo)))
	return min(max(n, 2), total)
}

// MoveBudget shrinks a campaign move budget by move_reduction at the
// initial level. The budget never drops below one move.
func (d *DifficultyManager) MoveBudget(base int) int {
	if !d.cfg.Enabled {
		return base
	}
	cut := clampF(d.cfg.Scaling.MoveReduction, 0, 1) * d.initialLevel
	return max(1, int(math.Round(float64(base)*(1-cut))))
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
