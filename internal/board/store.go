package board

import "fmt"

// Cell is one tile of the grid. Visible is false while a matched cell is
// fading out and waiting to be refilled.
type Cell struct {
	Color   Color
	Visible bool
}

// Len returns the number of cells currently stored.
func (b *Board) Len() int {
	return len(b.cells)
}

// Cell returns the cell at index.
func (b *Board) Cell(index int) (Cell, error) {
	if index < 0 || index >= len(b.cells) {
		return Cell{}, fmt.Errorf("%w: index %d not in [0, %d)", ErrOutOfBounds, index, len(b.cells))
	}
	return b.cells[index], nil
}

// Color returns the color at index.
func (b *Board) Color(index int) (Color, error) {
	c, err := b.Cell(index)
	return c.Color, err
}

// Visible returns the visibility of the cell at index.
func (b *Board) Visible(index int) (bool, error) {
	c, err := b.Cell(index)
	return c.Visible, err
}

// Cells returns a copy of the ordered cell sequence.
func (b *Board) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// setColor stores c at index and raises CellChanged if the value changed.
func (b *Board) setColor(index int, c Color) bool {
	cell := &b.cells[index]
	if cell.Color == c {
		return false
	}
	cell.Color = c
	b.emit(CellChanged{Index: index, Cell: *cell})
	return true
}

// setVisible stores v at index and raises CellChanged if the value changed.
func (b *Board) setVisible(index int, v bool) bool {
	cell := &b.cells[index]
	if cell.Visible == v {
		return false
	}
	cell.Visible = v
	b.emit(CellChanged{Index: index, Cell: *cell})
	return true
}

// exchange swaps the cells at i and j in place.
func (b *Board) exchange(i, j int) {
	if i == j {
		return
	}
	b.cells[i], b.cells[j] = b.cells[j], b.cells[i]
	if b.cells[i] != b.cells[j] {
		b.emit(CellChanged{Index: i, Cell: b.cells[i]})
		b.emit(CellChanged{Index: j, Cell: b.cells[j]})
	}
}

// move relocates the cell at src so that it ends up at dst; the cells in
// between shift one position towards src. It returns false and does nothing
// when src == dst or either index is out of range.
func (b *Board) move(src, dst int) bool {
	n := len(b.cells)
	if src == dst || src < 0 || src >= n || dst < 0 || dst >= n {
		return false
	}
	moving := b.cells[src]
	if src < dst {
		copy(b.cells[src:dst], b.cells[src+1:dst+1])
	} else {
		copy(b.cells[dst+1:src+1], b.cells[dst:src])
	}
	b.cells[dst] = moving
	b.emit(CellMoved{From: src, To: dst})
	return true
}

// Remove deletes the cell at index. It is an administrative operation: the
// board stops accepting steps until the next NewGame restores the grid.
func (b *Board) Remove(index int) error {
	if index < 0 || index >= len(b.cells) {
		return fmt.Errorf("%w: index %d not in [0, %d)", ErrOutOfBounds, index, len(b.cells))
	}
	b.cells = append(b.cells[:index], b.cells[index+1:]...)
	b.edited = true
	b.emit(CellRemoved{Index: index})
	return nil
}
