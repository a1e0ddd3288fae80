package board

// Swap is an unordered pair of adjacent cells, A < B.
type Swap struct {
	A int
	B int
}

// HasLegalMove reports whether any adjacent pair would produce a run when
// swapped. Horizontal pairs are tried first, then vertical ones, each
// unordered pair once; the search stops at the first hit. It always uses
// lookahead, whatever strategy the board validates steps with.
func (b *Board) HasLegalMove() bool {
	found := false
	b.eachLegal(func(Swap) bool {
		found = true
		return false
	})
	return found
}

// LegalMoves lists every legal swap in search order.
func (b *Board) LegalMoves() []Swap {
	var moves []Swap
	b.eachLegal(func(s Swap) bool {
		moves = append(moves, s)
		return true
	})
	return moves
}

// Hint returns the first legal swap, if any.
func (b *Board) Hint() (Swap, bool) {
	var hint Swap
	found := false
	b.eachLegal(func(s Swap) bool {
		hint, found = s, true
		return false
	})
	return hint, found
}

// eachLegal calls yield for each legal swap until it returns false.
func (b *Board) eachLegal(yield func(Swap) bool) {
	if b.edited {
		return
	}
	var look Lookahead
	rows, cols := b.dims.Rows, b.dims.Columns
	for row := range rows {
		for col := 0; col+1 < cols; col++ {
			i := row*cols + col
			if look.Legal(b.dims, b.cells, i, i+1) && !yield(Swap{A: i, B: i + 1}) {
				return
			}
		}
	}
	for i := 0; i+cols < len(b.cells); i++ {
		if look.Legal(b.dims, b.cells, i, i+cols) && !yield(Swap{A: i, B: i + cols}) {
			return
		}
	}
}
