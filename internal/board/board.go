package board

import (
	"errors"
	"fmt"
)

// ErrBoardEdited is returned by TakeStep after Remove shrank the grid.
var ErrBoardEdited = errors.New("board: cells were removed, start a new game")

// Source supplies uniform random integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Default limits.
const (
	DefaultMaxDealAttempts  = 1000
	DefaultMaxCascadeRounds = 64
)

// Options are the rule switches of a board.
type Options struct {
	// Strict rejects deals that already contain a run.
	Strict bool
	// Strategy decides swap legality for TakeStep and IsLegalSwap.
	Strategy Strategy
	// Executor performs accepted swaps.
	Executor Executor
	// AutoSettle collapses, refills and re-resolves inside TakeStep until
	// the board holds no invisible cell. Without it the caller drives the
	// cascade with Settle, typically once per finished fade.
	AutoSettle bool
	// Gravity makes cleared cells fall: survivors drop, fresh cells enter
	// at the top. Without it cleared cells are recolored in place.
	Gravity bool

	MaxDealAttempts  int
	MaxCascadeRounds int
}

// DefaultOptions returns strict dealing, lookahead validation, direct swaps
// and gravity refill.
func DefaultOptions() Options {
	return Options{
		Strict:           true,
		Strategy:         Lookahead{},
		Executor:         DirectSwap{},
		Gravity:          true,
		MaxDealAttempts:  DefaultMaxDealAttempts,
		MaxCascadeRounds: DefaultMaxCascadeRounds,
	}
}

// Option adjusts Options.
type Option func(*Options)

// WithStrict toggles the no-free-matches deal constraint.
func WithStrict(strict bool) Option {
	return func(o *Options) { o.Strict = strict }
}

// WithStrategy selects the legality strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithExecutor selects the swap executor.
func WithExecutor(e Executor) Option {
	return func(o *Options) { o.Executor = e }
}

// WithAutoSettle makes TakeStep run the whole cascade.
func WithAutoSettle(auto bool) Option {
	return func(o *Options) { o.AutoSettle = auto }
}

// WithGravity toggles falling refill.
func WithGravity(gravity bool) Option {
	return func(o *Options) { o.Gravity = gravity }
}

// WithMaxDealAttempts bounds each deal round.
func WithMaxDealAttempts(n int) Option {
	return func(o *Options) { o.MaxDealAttempts = n }
}

// WithMaxCascadeRounds bounds the settle loop of AutoSettle.
func WithMaxCascadeRounds(n int) Option {
	return func(o *Options) { o.MaxCascadeRounds = n }
}

// Board is the match-3 state machine. It is not safe for concurrent use;
// callers serialize every operation.
type Board struct {
	dims     Dims
	palette  Palette
	cells    []Cell
	score    int
	src      Source
	strategy Strategy
	executor Executor
	opts     Options
	edited   bool

	observers []subscription
	nextSubID int
}

// New creates a board from cfg and deals the first game. Missing dimensions
// and palette fall back to the defaults. If no solvable deal is found the
// board is still returned, together with ErrUnsolvableDeal.
func New(cfg Config, src Source, opts ...Option) (*Board, error) {
	b, err := newBoard(cfg, src, opts...)
	if err != nil {
		return nil, err
	}
	return b, b.NewGame()
}

func newBoard(cfg Config, src Source, opts ...Option) (*Board, error) {
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Strategy == nil {
		o.Strategy = Lookahead{}
	}
	if o.Executor == nil {
		o.Executor = DirectSwap{}
	}
	if o.MaxDealAttempts <= 0 {
		o.MaxDealAttempts = DefaultMaxDealAttempts
	}
	if o.MaxCascadeRounds <= 0 {
		o.MaxCascadeRounds = DefaultMaxCascadeRounds
	}

	dims := cfg.Dims()
	return &Board{
		dims:     dims,
		palette:  append(Palette(nil), cfg.Palette...),
		cells:    make([]Cell, dims.Len()),
		src:      src,
		strategy: o.Strategy,
		executor: o.Executor,
		opts:     o,
	}, nil
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.dims.Rows }

// Columns returns the number of columns.
func (b *Board) Columns() int { return b.dims.Columns }

// Dims returns the grid shape.
func (b *Board) Dims() Dims { return b.dims }

// Palette returns a copy of the configured palette.
func (b *Board) Palette() Palette { return append(Palette(nil), b.palette...) }

// Score returns the score of the current game.
func (b *Board) Score() int { return b.score }

// Options returns the rule switches the board was built with.
func (b *Board) Options() Options { return b.opts }

// Stable reports whether every cell is visible, i.e. no cascade is pending.
func (b *Board) Stable() bool {
	for _, c := range b.cells {
		if !c.Visible {
			return false
		}
	}
	return true
}

// TakeStep validates and plays one swap. It returns an error wrapping
// ErrOutOfBounds for indices outside the grid and ErrBoardEdited after
// Remove; neither mutates the board. An illegal swap, or any swap while a
// cascade is pending, returns false without mutation or events.
//
// An accepted swap is executed (Moved), its matches are cleared and scored
// (Matched), and once the board is stable a deadlock raises NoLegalMoves.
func (b *Board) TakeStep(first, second int) (bool, error) {
	n := len(b.cells)
	if first < 0 || first >= n || second < 0 || second >= n {
		return false, fmt.Errorf("%w: step (%d, %d) on %d cells", ErrOutOfBounds, first, second, n)
	}
	if b.edited {
		return false, ErrBoardEdited
	}
	if !b.Stable() || !b.IsLegalSwap(first, second) {
		return false, nil
	}

	b.executeSwap(first, second)
	b.ResolveMatches()
	if b.opts.AutoSettle {
		b.settleAll()
	}
	b.checkDeadlock()
	return true, nil
}

// Settle advances a pending cascade by one round: cleared cells are
// collapsed and refilled, then the new arrangement is resolved. It returns
// the number of cells the round cleared. On a stable board it does nothing.
func (b *Board) Settle() int {
	if b.edited || b.Stable() {
		return 0
	}
	if b.opts.Gravity {
		b.Collapse()
	}
	b.Refill()
	cleared := b.ResolveMatches()
	b.checkDeadlock()
	return cleared
}

// settleAll runs Settle until the board is stable. If the round limit is
// hit, the last cleared cells are refilled without resolving again.
func (b *Board) settleAll() {
	for range b.opts.MaxCascadeRounds {
		if b.Stable() {
			return
		}
		if b.opts.Gravity {
			b.Collapse()
		}
		b.Refill()
		b.ResolveMatches()
	}
	if !b.Stable() {
		b.Refill()
	}
}

// checkDeadlock raises NoLegalMoves on a stable board without a legal swap.
func (b *Board) checkDeadlock() {
	if b.Stable() && !b.HasLegalMove() {
		b.emit(NoLegalMoves{Score: b.score})
	}
}

// Snapshot is a copy of the board state.
type Snapshot struct {
	Rows    int
	Columns int
	Cells   []Cell
	Score   int
	Stable  bool
	Edited  bool
}

// Snapshot returns the current board state.
func (b *Board) Snapshot() Snapshot {
	return Snapshot{
		Rows:    b.dims.Rows,
		Columns: b.dims.Columns,
		Cells:   b.Cells(),
		Score:   b.score,
		Stable:  b.Stable(),
		Edited:  b.edited,
	}
}
