package match3

import (
	"github.com/vovakirdan/match3/internal/board"
	"github.com/vovakirdan/match3/internal/config"
	"github.com/vovakirdan/match3/internal/core"
)

// boardOptions returns the engine options for r. Cascades are settled by
// the game tick, never inside TakeStep.
func boardOptions(r config.RulesConfig) []board.Option {
	return append(r.BoardOptions(), board.WithAutoSettle(false))
}

// tileColors maps palette names to screen colors. Names the screen does not
// know take the next unused tile color.
func tileColors(p board.Palette) []core.Color {
	colors := make([]core.Color, len(p))
	used := make(map[core.Color]bool, len(p))
	for i, name := range p {
		if c, ok := core.ColorByName(name); ok && !used[c] {
			colors[i] = c
			used[c] = true
		}
	}
	next := 0
	for i := range colors {
		if colors[i] != core.ColorDefault {
			continue
		}
		for next < len(core.TileColors) && used[core.TileColors[next]] {
			next++
		}
		if next == len(core.TileColors) {
			colors[i] = core.ColorWhite
			continue
		}
		colors[i] = core.TileColors[next]
		used[colors[i]] = true
	}
	return colors
}

// tileGlyphs give each color its own shape so the board reads without color.
var tileGlyphs = []rune{'●', '▲', '■', '◆', '★', '♥', '♣', '♠', '✚', '◎', '▼', '✖'}

func tileGlyph(c board.Color) rune {
	return tileGlyphs[int(c)%len(tileGlyphs)]
}
