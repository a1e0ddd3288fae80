// Package board implements the match-3 rules engine: a rectangular grid of
// colored cells, swap legality, run detection, cascade clearing with scoring,
// deadlock detection and board dealing.
//
// The package has no dependencies outside the standard library. Views observe
// the board through events (see Observer) and read cells through the
// accessors; they never mutate cells directly.
package board

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned when an index or (row, column) pair lies outside
// the grid. It is a contract violation by the caller; no state is mutated.
var ErrOutOfBounds = errors.New("board: out of bounds")

// Dims describes the grid shape. Cells are stored in row-major order:
// index = row*Columns + column.
type Dims struct {
	Rows    int
	Columns int
}

// Len returns the number of cells in the grid.
func (d Dims) Len() int {
	return d.Rows * d.Columns
}

// InBounds reports whether index addresses a cell of the grid.
func (d Dims) InBounds(index int) bool {
	return index >= 0 && index < d.Len()
}

// Row returns the row of index, or -1 if index is out of bounds.
func (d Dims) Row(index int) int {
	if !d.InBounds(index) {
		return -1
	}
	return index / d.Columns
}

// Column returns the column of index, or -1 if index is out of bounds.
func (d Dims) Column(index int) int {
	if !d.InBounds(index) {
		return -1
	}
	return index % d.Columns
}

// ToRowCol converts a flat index to its (row, column) position.
func (d Dims) ToRowCol(index int) (row, col int, err error) {
	if !d.InBounds(index) {
		return -1, -1, fmt.Errorf("%w: index %d not in [0, %d)", ErrOutOfBounds, index, d.Len())
	}
	return index / d.Columns, index % d.Columns, nil
}

// ToIndex converts a (row, column) position to a flat index.
func (d Dims) ToIndex(row, col int) (int, error) {
	if row < 0 || row >= d.Rows || col < 0 || col >= d.Columns {
		return -1, fmt.Errorf("%w: position (%d,%d) outside %dx%d grid", ErrOutOfBounds, row, col, d.Rows, d.Columns)
	}
	return row*d.Columns + col, nil
}

// Adjacent reports whether a and b are orthogonal neighbours: same column
// and one row apart, or same row and one column apart.
func (d Dims) Adjacent(a, b int) bool {
	if a == b || !d.InBounds(a) || !d.InBounds(b) {
		return false
	}
	dr := abs(d.Row(a) - d.Row(b))
	dc := abs(d.Column(a) - d.Column(b))
	return (dr == 1 && dc == 0) || (dr == 0 && dc == 1)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
