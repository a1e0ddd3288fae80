package core

import "strings"

// Color is a foreground color for a screen cell. The platform maps it to
// an ANSI code when rendering.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorPurple
	ColorPink
	ColorBrown
	ColorGray
)

var colorNames = map[string]Color{
	"red":     ColorRed,
	"green":   ColorGreen,
	"yellow":  ColorYellow,
	"blue":    ColorBlue,
	"magenta": ColorMagenta,
	"cyan":    ColorCyan,
	"white":   ColorWhite,
	"orange":  ColorOrange,
	"purple":  ColorPurple,
	"pink":    ColorPink,
	"brown":   ColorBrown,
	"gray":    ColorGray,
	"grey":    ColorGray,
}

// ColorByName looks up a color by its palette name, case-insensitively.
func ColorByName(name string) (Color, bool) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// TileColors lists the colors that can stand for a tile, in the order used
// when a palette name is not known.
var TileColors = []Color{
	ColorCyan, ColorMagenta, ColorRed, ColorGreen, ColorYellow, ColorBlue,
	ColorOrange, ColorPurple, ColorPink, ColorBrown, ColorWhite,
}
