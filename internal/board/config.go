package board

import (
	"errors"
	"fmt"
)

// Color is an index into the board's Palette. Only equality is meaningful.
type Color uint8

// Palette is the ordered list of color names a board deals from.
type Palette []string

// DefaultPalette is used when no palette is configured.
func DefaultPalette() Palette {
	return Palette{"cyan", "magenta", "red", "green", "yellow", "blue"}
}

// Len returns the number of colors in the palette.
func (p Palette) Len() int {
	return len(p)
}

// Name returns the configured name of c, or "" if c is not in the palette.
func (p Palette) Name(c Color) string {
	if int(c) >= len(p) {
		return ""
	}
	return p[c]
}

// Contains reports whether c belongs to the palette.
func (p Palette) Contains(c Color) bool {
	return int(c) < len(p)
}

// Distinct reports whether every color name appears once.
func (p Palette) Distinct() bool {
	seen := make(map[string]bool, len(p))
	for _, name := range p {
		if seen[name] {
			return false
		}
		seen[name] = true
	}
	return true
}

// Default grid dimensions, applied when a configured value is below 2.
const (
	DefaultRows    = 4
	DefaultColumns = 4
	MinDimension   = 2
	MaxDimension   = 32
	MaxPalette     = 256
)

// ErrInvalidConfig is returned when a configuration cannot describe a board.
var ErrInvalidConfig = errors.New("board: invalid config")

// Config is read once when a board is created.
type Config struct {
	Rows    int
	Columns int
	Palette Palette
}

// DefaultConfig returns a 4x4 board with the six default colors.
func DefaultConfig() Config {
	return Config{
		Rows:    DefaultRows,
		Columns: DefaultColumns,
		Palette: DefaultPalette(),
	}
}

// Normalize fills absent values with defaults: dimensions below 2 become 4,
// an empty palette becomes the default palette.
func (c Config) Normalize() Config {
	if c.Rows < MinDimension {
		c.Rows = DefaultRows
	}
	if c.Columns < MinDimension {
		c.Columns = DefaultColumns
	}
	if len(c.Palette) == 0 {
		c.Palette = DefaultPalette()
	}
	return c
}

// Validate checks that c describes a playable board.
func (c Config) Validate() error {
	if c.Rows < MinDimension || c.Columns < MinDimension {
		return fmt.Errorf("%w: grid %dx%d is smaller than %dx%d", ErrInvalidConfig, c.Rows, c.Columns, MinDimension, MinDimension)
	}
	if c.Rows > MaxDimension || c.Columns > MaxDimension {
		return fmt.Errorf("%w: grid %dx%d is larger than %dx%d", ErrInvalidConfig, c.Rows, c.Columns, MaxDimension, MaxDimension)
	}
	if len(c.Palette) < 2 {
		return fmt.Errorf("%w: palette needs at least 2 colors, got %d", ErrInvalidConfig, len(c.Palette))
	}
	if len(c.Palette) > MaxPalette {
		return fmt.Errorf("%w: palette has %d colors, max is %d", ErrInvalidConfig, len(c.Palette), MaxPalette)
	}
	if !c.Palette.Distinct() {
		return fmt.Errorf("%w: palette colors must be distinct", ErrInvalidConfig)
	}
	return nil
}

// Dims returns the grid shape of c.
func (c Config) Dims() Dims {
	return Dims{Rows: c.Rows, Columns: c.Columns}
}
