package board

// ResolveMatches clears every run on the board and returns the number of
// cells it hid. Each cell scores once per run it belongs to, so a cell at
// the crossing of a row run and a column run scores 2 but is hidden once.
//
// If a run reaches a cell that was already invisible when the call started,
// clearing stops there: a cascade in progress is never cleared twice.
// Matched is raised when anything was cleared. After Remove nothing is
// cleared until the next NewGame.
func (b *Board) ResolveMatches() int {
	return b.clearRuns(true)
}

// SolveAll clears every run currently on the board in one pass. Unlike
// ResolveMatches it skips cells that are already invisible instead of
// stopping, so it can be used to flush a half-finished cascade.
func (b *Board) SolveAll() int {
	return b.clearRuns(false)
}

func (b *Board) clearRuns(guard bool) int {
	if b.edited {
		return 0
	}
	runs := FindRuns(b.dims, b.cells)
	if len(runs) == 0 {
		return 0
	}

	hidden := make([]bool, len(b.cells))
	for i, c := range b.cells {
		hidden[i] = !c.Visible
	}

	cleared := 0
	scored := 0
clear:
	for _, run := range runs {
		for _, i := range run.Indices {
			if hidden[i] {
				if guard {
					break clear
				}
				continue
			}
			if b.setVisible(i, false) {
				cleared++
			}
			scored++
		}
	}

	if scored > 0 {
		b.score += scored
		b.emit(Matched{Cleared: cleared, Points: scored, Score: b.score})
	}
	return cleared
}

// RevealAll makes every cell visible again without recoloring it.
func (b *Board) RevealAll() {
	for i := range b.cells {
		b.setVisible(i, true)
	}
}

// Collapse lifts every invisible cell to the top of its column through a
// chain of vertical swaps. Visible cells keep their relative order and end
// up resting on the bottom of the column. It does nothing after Remove.
func (b *Board) Collapse() {
	if b.edited {
		return
	}
	cols := b.dims.Columns
	seq := sequence{b}
	for i := range b.cells {
		if b.cells[i].Visible {
			continue
		}
		for at := i; at >= cols; at -= cols {
			b.executor.Swap(seq, b.dims, at-cols, at)
		}
	}
}

// Refill gives every invisible cell a fresh random color and shows it. It
// returns the number of cells refilled.
func (b *Board) Refill() int {
	n := 0
	for i := range b.cells {
		if b.cells[i].Visible {
			continue
		}
		b.setColor(i, b.randomColor())
		b.setVisible(i, true)
		n++
	}
	return n
}

func (b *Board) randomColor() Color {
	return Color(b.src.Intn(len(b.palette)))
}
