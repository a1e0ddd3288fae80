package board

import (
	"errors"
	"fmt"
)

// ErrUnsolvableDeal is returned when no deal with a legal move was found.
// The board then holds the last attempt and is deadlocked.
var ErrUnsolvableDeal = errors.New("board: no solvable deal found")

// NewGame deals a fresh board and resets the score. A deal is accepted when
// it has a legal move and, in strict mode, no run of its own. After
// MaxDealAttempts strict failures the no-run constraint is dropped for a
// second round of the same size; only if that fails too is
// ErrUnsolvableDeal returned. Dealt reports how many attempts it took.
//
// NewGame also restores a board shrunk by Remove.
func (b *Board) NewGame() error {
	if b.edited || len(b.cells) != b.dims.Len() {
		b.cells = make([]Cell, b.dims.Len())
		b.edited = false
	}
	b.score = 0

	attempts := 0
	rounds := []bool{b.opts.Strict}
	if b.opts.Strict {
		rounds = append(rounds, false)
	}
	for _, strict := range rounds {
		for range b.opts.MaxDealAttempts {
			attempts++
			b.deal()
			if b.acceptable(strict) {
				b.emit(Dealt{Attempts: attempts, Relaxed: b.opts.Strict && !strict})
				return nil
			}
		}
	}
	return fmt.Errorf("%w: %dx%d grid with %d colors after %d attempts",
		ErrUnsolvableDeal, b.dims.Rows, b.dims.Columns, len(b.palette), attempts)
}

// deal fills every cell with a random color and shows it.
func (b *Board) deal() {
	for i := range b.cells {
		b.setColor(i, b.randomColor())
		b.setVisible(i, true)
	}
}

func (b *Board) acceptable(strict bool) bool {
	if strict && HasRun(b.dims, b.cells) {
		return false
	}
	return b.HasLegalMove()
}
