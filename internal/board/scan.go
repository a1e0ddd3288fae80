package board

// MinRun is the shortest line of equal colors that counts as a match.
const MinRun = 3

// Axis tells whether a run lies along a row or a column.
type Axis int

const (
	AxisRow Axis = iota
	AxisColumn
)

// String returns "row" or "column".
func (a Axis) String() string {
	if a == AxisColumn {
		return "column"
	}
	return "row"
}

// Run is a maximal sequence of at least MinRun same-colored cells,
// contiguous along one row or one column. Indices are in scan order.
type Run struct {
	Axis    Axis
	Color   Color
	Indices []int
}

// Len returns the number of cells in the run.
func (r Run) Len() int {
	return len(r.Indices)
}

// FindRuns scans every row left to right, then every column top to bottom,
// and returns all runs in that order. Only colors are compared; visibility
// is ignored. A cells slice that does not hold d.Len() entries has no runs.
func FindRuns(d Dims, cells []Cell) []Run {
	if len(cells) != d.Len() {
		return nil
	}
	var runs []Run
	for row := 0; row < d.Rows; row++ {
		runs = scanLine(runs, cells, AxisRow, row*d.Columns, 1, d.Columns)
	}
	for col := 0; col < d.Columns; col++ {
		runs = scanLine(runs, cells, AxisColumn, col, d.Columns, d.Rows)
	}
	return runs
}

// scanLine groups the n cells starting at start, step apart, into runs of
// equal color and appends those of length >= MinRun to runs.
func scanLine(runs []Run, cells []Cell, axis Axis, start, step, n int) []Run {
	runStart := 0
	for i := 1; i <= n; i++ {
		if i < n && cells[start+i*step].Color == cells[start+runStart*step].Color {
			continue
		}
		if length := i - runStart; length >= MinRun {
			indices := make([]int, length)
			for k := range indices {
				indices[k] = start + (runStart+k)*step
			}
			runs = append(runs, Run{
				Axis:    axis,
				Color:   cells[start+runStart*step].Color,
				Indices: indices,
			})
		}
		runStart = i
	}
	return runs
}

// HasRun reports whether FindRuns would return at least one run.
func HasRun(d Dims, cells []Cell) bool {
	if len(cells) != d.Len() {
		return false
	}
	stored := func(i int) Color { return cells[i].Color }
	for row := 0; row < d.Rows; row++ {
		if lineHasRun(row*d.Columns, 1, d.Columns, stored) {
			return true
		}
	}
	for col := 0; col < d.Columns; col++ {
		if lineHasRun(col, d.Columns, d.Rows, stored) {
			return true
		}
	}
	return false
}

// lineHasRun walks a line through colorAt and reports whether it contains
// MinRun equal colors in a row.
func lineHasRun(start, step, n int, colorAt func(int) Color) bool {
	length := 1
	prev := colorAt(start)
	for i := 1; i < n; i++ {
		c := colorAt(start + i*step)
		if c == prev {
			length++
			if length >= MinRun {
				return true
			}
			continue
		}
		prev = c
		length = 1
	}
	return false
}

// MatchedIndices returns the union of the indices of runs, each index once,
// in first-seen order.
func MatchedIndices(runs []Run) []int {
	seen := make(map[int]bool)
	var out []int
	for _, r := range runs {
		for _, i := range r.Indices {
			if !seen[i] {
				seen[i] = true
				out = append(out, i)
			}
		}
	}
	return out
}
