package board

import "fmt"

// Reorderer is an ordered sequence that can only relocate one element at a
// time: Move takes the element at src out and reinserts it at dst.
type Reorderer interface {
	Move(src, dst int) bool
}

// Sequence is a Reorderer that can also exchange two elements in place.
type Sequence interface {
	Reorderer
	Exchange(i, j int)
}

// Executor carries out an accepted swap of two adjacent cells.
type Executor interface {
	Name() string
	Swap(s Sequence, d Dims, a, b int)
}

// DirectSwap exchanges the two cells in place.
type DirectSwap struct{}

// Name returns "direct".
func (DirectSwap) Name() string { return "direct" }

// Swap implements Executor.
func (DirectSwap) Swap(s Sequence, _ Dims, a, b int) {
	s.Exchange(a, b)
}

// ReorderSwap exchanges two cells using only single-element relocations,
// for views whose list model has no swap primitive. Every intermediate
// state is a permutation of the same cells.
type ReorderSwap struct{}

// Name returns "reorder".
func (ReorderSwap) Name() string { return "reorder" }

// Swap implements Executor.
func (ReorderSwap) Swap(s Sequence, d Dims, a, b int) {
	Transpose(s, d, a, b)
}

// Transpose swaps the adjacent elements a and b of r with relocations only.
// Horizontal neighbours take three relocations of the right element onto
// the left one, each flipping the pair. Vertical neighbours take two: the
// upper element drops to the lower slot, then the lower element, which
// shifted up by one, jumps to the upper slot and restores the run between.
// It panics if a and b are not adjacent.
func Transpose(r Reorderer, d Dims, a, b int) {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	switch hi - lo {
	case 1:
		for range 3 {
			r.Move(hi, lo)
		}
	case d.Columns:
		r.Move(lo, hi)
		r.Move(hi-1, lo)
	default:
		panic(fmt.Sprintf("board: transpose of non-adjacent cells %d and %d", a, b))
	}
}

// ExecutorByName returns the executor called name.
func ExecutorByName(name string) (Executor, error) {
	switch name {
	case "", "direct":
		return DirectSwap{}, nil
	case "reorder":
		return ReorderSwap{}, nil
	default:
		return nil, fmt.Errorf("board: unknown executor %q", name)
	}
}

// sequence exposes the board's cell store to executors.
type sequence struct {
	b *Board
}

func (s sequence) Move(src, dst int) bool { return s.b.move(src, dst) }
func (s sequence) Exchange(i, j int)      { s.b.exchange(i, j) }

// executeSwap performs an accepted swap and raises Moved.
func (b *Board) executeSwap(first, second int) {
	b.executor.Swap(sequence{b}, b.dims, first, second)
	b.emit(Moved{A: first, B: second})
}
