package board

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	b, err := New(Config{}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	assert.Equal(t, DefaultRows, b.Rows())
	assert.Equal(t, DefaultColumns, b.Columns())
	assert.Equal(t, 16, b.Len())
	assert.Equal(t, DefaultPalette(), b.Palette())
	assert.Equal(t, "lookahead", b.Options().Strategy.Name())
	assert.Equal(t, "direct", b.Options().Executor.Name())
}

func TestNewSmallDimensionsFallBack(t *testing.T) {
	b, err := New(Config{Rows: 1, Columns: 6}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, 4, b.Rows())
	assert.Equal(t, 6, b.Columns())
}

func TestNewRejectsBadConfig(t *testing.T) {
	src := rand.New(rand.NewSource(1))
	tests := []struct {
		name string
		cfg  Config
	}{
		{"single color", Config{Rows: 4, Columns: 4, Palette: Palette{"red"}}},
		{"duplicate colors", Config{Rows: 4, Columns: 4, Palette: Palette{"red", "red", "blue"}}},
		{"too many rows", Config{Rows: MaxDimension + 1, Columns: 4, Palette: DefaultPalette()}},
		{"too many columns", Config{Rows: 4, Columns: MaxDimension * 1000, Palette: DefaultPalette()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg, src)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	_, err := New(DefaultConfig(), nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestTakeStepOutOfBounds(t *testing.T) {
	b := mustLayout(t, []string{"AACB", "BBAC", "CCBA", "ABCB"})
	before := b.Cells()

	for _, pair := range [][2]int{{-1, 0}, {15, 16}, {2, 99}} {
		ok, err := b.TakeStep(pair[0], pair[1])
		assert.ErrorIs(t, err, ErrOutOfBounds)
		assert.False(t, ok)
	}
	assert.Equal(t, before, b.Cells())
}

func TestTakeStepIgnoredWhileCascadePending(t *testing.T) {
	b := mustLayout(t, []string{
		"AACB",
		"BBAC",
		"CCBA",
		"ABCB",
	})
	ok, err := b.TakeStep(2, 6)
	require.NoError(t, err)
	require.True(t, ok)
	require.False(t, b.Stable())

	before := b.Cells()
	ok, err = b.TakeStep(10, 11)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, before, b.Cells())
}

// deadlockLayout: swapping 2 and 5 completes row 0. Refilled in place with
// E, C, D the board has no legal move left.
var deadlockLayout = []string{
	"AAE",
	"BCA",
	"DBD",
}

func TestTakeStepRaisesNoLegalMovesWhenSettled(t *testing.T) {
	b, err := FromLayout(deadlockLayout, &scripted{vals: []int{4, 2, 3}},
		WithAutoSettle(true), WithGravity(false))
	require.NoError(t, err)
	rec := &recorder{}
	b.Subscribe(rec)

	ok, err := b.TakeStep(2, 5)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, []string{"ECD", "BCE", "DBD"}, b.Layout())
	assert.True(t, b.Stable())
	assert.False(t, b.HasLegalMove())
	assert.Equal(t, []NoLegalMoves{{Score: 3}}, eventsOf[NoLegalMoves](rec))
}

func TestSettleRaisesNoLegalMoves(t *testing.T) {
	b, err := FromLayout(deadlockLayout, &scripted{vals: []int{4, 2, 3}}, WithGravity(false))
	require.NoError(t, err)
	rec := &recorder{}
	b.Subscribe(rec)

	ok, err := b.TakeStep(2, 5)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, eventsOf[NoLegalMoves](rec))
	assert.Equal(t, []string{"aaa", "BCE", "DBD"}, b.Layout())

	assert.Zero(t, b.Settle())
	assert.True(t, b.Stable())
	assert.Equal(t, []NoLegalMoves{{Score: 3}}, eventsOf[NoLegalMoves](rec))

	// Settling a stable board does nothing.
	rec.reset()
	assert.Zero(t, b.Settle())
	assert.Empty(t, rec.events)
}

func TestAutoSettleLeavesStableBoard(t *testing.T) {
	for seed := range int64(20) {
		b := mustLayout(t, []string{
			"AACB",
			"BBAC",
			"CCBA",
			"ABCB",
		}, WithAutoSettle(true))
		b.src = rand.New(rand.NewSource(seed))

		ok, err := b.TakeStep(2, 6)
		require.NoError(t, err)
		require.True(t, ok)
		assert.True(t, b.Stable())
		assert.Empty(t, FindRuns(b.Dims(), b.Cells()), "seed %d\n%s", seed, b)
		assert.GreaterOrEqual(t, b.Score(), 3)
	}
}

func TestRandomPlayKeepsInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	b, err := New(Config{Rows: 6, Columns: 6, Palette: Palette{"a", "b", "c", "d", "e"}}, rng,
		WithAutoSettle(true), WithStrategy(Rescan{}))
	require.NoError(t, err)

	deadlocks := 0
	b.Subscribe(ObserverFunc(func(e Event) {
		if _, ok := e.(NoLegalMoves); ok {
			deadlocks++
		}
	}))

	for step := range 300 {
		moves := b.LegalMoves()
		if len(moves) == 0 {
			require.Positive(t, deadlocks, "deadlock at step %d was not signalled", step)
			require.NoError(t, b.NewGame())
			deadlocks = 0
			continue
		}
		m := moves[rng.Intn(len(moves))]
		score := b.Score()

		ok, err := b.TakeStep(m.B, m.A)
		require.NoError(t, err)
		require.True(t, ok, "step %d: listed move %v rejected", step, m)

		require.Greater(t, b.Score(), score)
		require.Len(t, b.Cells(), 36)
		require.True(t, b.Stable())
		for _, c := range b.Cells() {
			require.True(t, b.Palette().Contains(c.Color))
		}
	}
}

func TestHintAndLegalMoves(t *testing.T) {
	b := mustLayout(t, []string{
		"AACB",
		"BBAC",
		"CCBA",
		"ABCB",
	})

	moves := b.LegalMoves()
	require.NotEmpty(t, moves)
	assert.Contains(t, moves, Swap{A: 2, B: 6})
	for _, m := range moves {
		assert.True(t, b.IsLegalSwap(m.A, m.B), "move %v", m)
	}

	hint, ok := b.Hint()
	require.True(t, ok)
	assert.Equal(t, moves[0], hint)
	assert.True(t, b.HasLegalMove())
}

func TestHasLegalMoveMatchesExhaustiveSearch(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	var rescan Rescan
	for range 300 {
		b := mustLayout(t, randomLayout(rng, 2+rng.Intn(4), 2+rng.Intn(4), 3+rng.Intn(3), 0))
		want := false
		for _, p := range adjacentPairs(b.Dims()) {
			if rescan.Legal(b.Dims(), b.Cells(), p[0], p[1]) {
				want = true
				break
			}
		}
		require.Equal(t, want, b.HasLegalMove(), "board\n%s", b)
		_, hinted := b.Hint()
		require.Equal(t, want, hinted)
	}
}

func TestRemove(t *testing.T) {
	b, err := New(DefaultConfig(), rand.New(rand.NewSource(4)))
	require.NoError(t, err)
	rec := &recorder{}
	b.Subscribe(rec)

	require.NoError(t, b.Remove(3))
	assert.Equal(t, 15, b.Len())
	assert.Equal(t, []CellRemoved{{Index: 3}}, eventsOf[CellRemoved](rec))
	assert.ErrorIs(t, b.Remove(15), ErrOutOfBounds)

	_, err = b.TakeStep(0, 1)
	assert.ErrorIs(t, err, ErrBoardEdited)
	assert.False(t, b.IsLegalSwap(0, 1))
	assert.False(t, b.HasLegalMove())
	assert.True(t, b.Snapshot().Edited)

	require.NoError(t, b.NewGame())
	assert.Equal(t, 16, b.Len())
	assert.False(t, b.Snapshot().Edited)
}

func TestRemoveStopsCascades(t *testing.T) {
	layout := []string{
		"AAAB",
		"BCDA",
		"CDAB",
	}

	b := mustLayout(t, layout)
	require.NoError(t, b.Remove(0))
	assert.Zero(t, b.ResolveMatches())
	assert.Zero(t, b.Score())

	b = mustLayout(t, layout)
	require.NoError(t, b.Remove(11))
	assert.Zero(t, b.SolveAll())
	b.Collapse()
	assert.Equal(t, 11, b.Len())
	assert.Zero(t, b.Settle())

	require.NoError(t, b.NewGame())
	assert.Equal(t, 12, b.Len())
}

func TestCellAccessors(t *testing.T) {
	b := mustLayout(t, []string{"AbC", "DEf"})

	c, err := b.Color(1)
	require.NoError(t, err)
	assert.Equal(t, Color(1), c)

	v, err := b.Visible(1)
	require.NoError(t, err)
	assert.False(t, v)

	_, err = b.Cell(6)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = b.Visible(-1)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestSubscribeAndUnsubscribe(t *testing.T) {
	b := mustLayout(t, []string{"BAB", "AAA", "BAB"})
	first, second := &recorder{}, &recorder{}
	unsubscribe := b.Subscribe(first)
	b.Subscribe(second)

	unsubscribe()
	b.ResolveMatches()

	assert.Empty(t, first.events)
	assert.NotEmpty(t, second.events)
}

func TestSnapshot(t *testing.T) {
	b := mustLayout(t, []string{"AbC", "DEf"})
	s := b.Snapshot()

	assert.Equal(t, 2, s.Rows)
	assert.Equal(t, 3, s.Columns)
	assert.Equal(t, b.Cells(), s.Cells)
	assert.False(t, s.Stable)

	// The snapshot does not alias the board.
	s.Cells[0].Color = 5
	c, _ := b.Color(0)
	assert.Equal(t, Color(0), c)
}

func TestFromLayoutErrors(t *testing.T) {
	src := rand.New(rand.NewSource(1))
	for name, layout := range map[string][]string{
		"empty":      nil,
		"ragged":     {"ABC", "AB"},
		"bad cell":   {"AB", "A?"},
		"one row":    {"ABC"},
		"one column": {"A", "B"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := FromLayout(layout, src)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
