package board

import "fmt"

// Strategy decides whether swapping two adjacent cells produces a match.
// Implementations are read-only: they never modify cells.
type Strategy interface {
	Name() string
	// Legal reports whether swapping a and b in cells puts a or b in a run.
	// Callers guarantee that a and b are adjacent and in bounds.
	Legal(d Dims, cells []Cell, a, b int) bool
}

// Rescan copies the cells, swaps the pair in the copy and runs FindRuns.
// The swap is legal when one of the runs found passes through a or b.
type Rescan struct{}

// Name returns "rescan".
func (Rescan) Name() string { return "rescan" }

// Legal implements Strategy.
func (Rescan) Legal(d Dims, cells []Cell, a, b int) bool {
	swapped := make([]Cell, len(cells))
	copy(swapped, cells)
	swapped[a], swapped[b] = swapped[b], swapped[a]
	for _, run := range FindRuns(d, swapped) {
		for _, i := range run.Indices {
			if i == a || i == b {
				return true
			}
		}
	}
	return false
}

// Lookahead walks outward from each swapped position along its row and its
// column, reading the swapped colors in place of the stored ones, and
// measures the run that position would sit in.
type Lookahead struct{}

// Name returns "lookahead".
func (Lookahead) Name() string { return "lookahead" }

// Legal implements Strategy.
func (Lookahead) Legal(d Dims, cells []Cell, a, b int) bool {
	colorAt := func(i int) Color {
		switch i {
		case a:
			return cells[b].Color
		case b:
			return cells[a].Color
		}
		return cells[i].Color
	}
	return runThrough(d, a, colorAt) || runThrough(d, b, colorAt)
}

// runThrough reports whether the cell at i would lie in a run along its row
// or its column.
func runThrough(d Dims, i int, colorAt func(int) Color) bool {
	row, col := d.Row(i), d.Column(i)
	c := colorAt(i)

	length := 1
	for k := col - 1; k >= 0 && colorAt(row*d.Columns+k) == c; k-- {
		length++
	}
	for k := col + 1; k < d.Columns && colorAt(row*d.Columns+k) == c; k++ {
		length++
	}
	if length >= MinRun {
		return true
	}

	length = 1
	for k := row - 1; k >= 0 && colorAt(k*d.Columns+col) == c; k-- {
		length++
	}
	for k := row + 1; k < d.Rows && colorAt(k*d.Columns+col) == c; k++ {
		length++
	}
	return length >= MinRun
}

// StrategyByName returns the strategy called name.
func StrategyByName(name string) (Strategy, error) {
	switch name {
	case "", "lookahead":
		return Lookahead{}, nil
	case "rescan":
		return Rescan{}, nil
	default:
		return nil, fmt.Errorf("board: unknown strategy %q", name)
	}
}

// IsLegalSwap reports whether swapping a and b is a legal move: both in
// bounds, distinct, orthogonally adjacent, and forming a run through one of
// the two cells. Runs elsewhere on the board do not make a swap legal.
// It never mutates the board.
func (b *Board) IsLegalSwap(first, second int) bool {
	if b.edited || !b.dims.Adjacent(first, second) {
		return false
	}
	return b.strategy.Legal(b.dims, b.cells, first, second)
}
