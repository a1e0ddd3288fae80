package match3

import (
	"fmt"

	"github.com/vovakirdan/match3/internal/config"
)

// Levels returns the campaign as configured by match3.yaml and the current
// difficulty preset.
func Levels() []config.LevelConfig {
	return loadConfig().Campaign
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(Levels())
}

// LevelNames returns the names of all campaign levels. Unnamed levels are
// called by their grid size.
func LevelNames() []string {
	levels := Levels()
	names := make([]string, len(levels))
	for i, lvl := range levels {
		names[i] = levelName(lvl)
	}
	return names
}

func levelName(lvl config.LevelConfig) string {
	if lvl.Name != "" {
		return lvl.Name
	}
	return fmt.Sprintf("%dx%d", lvl.Rows, lvl.Columns)
}

// Level returns the campaign level being played.
func (g *Game) Level() (config.LevelConfig, bool) {
	if g.mode != ModeCampaign || g.levelIndex >= len(g.cfg.Campaign) {
		return config.LevelConfig{}, false
	}
	return g.cfg.Campaign[g.levelIndex], true
}
