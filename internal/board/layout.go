package board

import (
	"fmt"
	"strings"
)

// FromLayout builds a board from rows of letters without dealing. Letter A
// is color 0, B is color 1 and so on; a lowercase letter is an invisible
// cell of that color. The palette is named after the letters used, with at
// least two entries. src is only consulted by Refill and NewGame.
func FromLayout(layout []string, src Source, opts ...Option) (*Board, error) {
	if len(layout) == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrInvalidConfig)
	}
	cols := len(layout[0])
	var cells []Cell
	maxColor := 1
	for r, line := range layout {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: layout row %d has %d cells, want %d", ErrInvalidConfig, r, len(line), cols)
		}
		for _, ch := range line {
			cell, ok := parseCell(ch)
			if !ok {
				return nil, fmt.Errorf("%w: layout row %d: bad cell %q", ErrInvalidConfig, r, ch)
			}
			maxColor = max(maxColor, int(cell.Color))
			cells = append(cells, cell)
		}
	}

	palette := make(Palette, maxColor+1)
	for i := range palette {
		palette[i] = string(rune('A' + i))
	}
	b, err := newBoard(Config{Rows: len(layout), Columns: cols, Palette: palette}, src, opts...)
	if err != nil {
		return nil, err
	}
	if b.dims.Rows != len(layout) || b.dims.Columns != cols {
		return nil, fmt.Errorf("%w: layout %dx%d is smaller than %dx%d", ErrInvalidConfig, len(layout), cols, MinDimension, MinDimension)
	}
	b.cells = cells
	return b, nil
}

func parseCell(ch rune) (Cell, bool) {
	switch {
	case ch >= 'A' && ch <= 'Z':
		return Cell{Color: Color(ch - 'A'), Visible: true}, true
	case ch >= 'a' && ch <= 'z':
		return Cell{Color: Color(ch - 'a')}, true
	}
	return Cell{}, false
}

// Layout renders the board in the form FromLayout reads. Colors past Z are
// written as '?'.
func (b *Board) Layout() []string {
	out := make([]string, 0, b.dims.Rows)
	var sb strings.Builder
	for i, c := range b.cells {
		ch := '?'
		if c.Color < 26 {
			ch = rune('A' + c.Color)
			if !c.Visible {
				ch = rune('a' + c.Color)
			}
		}
		sb.WriteRune(ch)
		if (i+1)%b.dims.Columns == 0 {
			out = append(out, sb.String())
			sb.Reset()
		}
	}
	if sb.Len() > 0 {
		out = append(out, sb.String())
	}
	return out
}

// String returns Layout joined by newlines.
func (b *Board) String() string {
	return strings.Join(b.Layout(), "\n")
}
