package board

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameProducesValidDeals(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		strict bool
	}{
		{"default strict", DefaultConfig(), true},
		{"default relaxed", DefaultConfig(), false},
		{"wide three colors", Config{Rows: 3, Columns: 7, Palette: Palette{"r", "g", "b"}}, true},
		{"tall four colors", Config{Rows: 8, Columns: 3, Palette: Palette{"r", "g", "b", "y"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := range int64(30) {
				b, err := New(tt.cfg, rand.New(rand.NewSource(seed)), WithStrict(tt.strict))
				require.NoError(t, err)

				assert.True(t, b.HasLegalMove(), "seed %d\n%s", seed, b)
				if tt.strict {
					assert.Empty(t, FindRuns(b.Dims(), b.Cells()), "seed %d\n%s", seed, b)
				}
				assert.Zero(t, b.Score())
				assert.True(t, b.Stable())
				assert.Len(t, b.Cells(), tt.cfg.Rows*tt.cfg.Columns)
				for _, c := range b.Cells() {
					require.True(t, b.Palette().Contains(c.Color))
				}
			}
		})
	}
}

func TestNewGameEmitsDealt(t *testing.T) {
	b, err := New(DefaultConfig(), rand.New(rand.NewSource(9)))
	require.NoError(t, err)
	rec := &recorder{}
	b.Subscribe(rec)

	require.NoError(t, b.NewGame())

	dealt := eventsOf[Dealt](rec)
	require.Len(t, dealt, 1)
	assert.Positive(t, dealt[0].Attempts)
	assert.False(t, dealt[0].Relaxed)
}

func TestNewGameRelaxesAfterStrictRound(t *testing.T) {
	// A source stuck on one color only deals uniform boards: every one has
	// runs, and every swap keeps them.
	b, err := newBoard(DefaultConfig(), &scripted{vals: []int{0}}, WithMaxDealAttempts(5))
	require.NoError(t, err)
	rec := &recorder{}
	b.Subscribe(rec)

	require.NoError(t, b.NewGame())

	assert.Equal(t, []Dealt{{Attempts: 6, Relaxed: true}}, eventsOf[Dealt](rec))
	assert.True(t, b.HasLegalMove())
}

func TestNewGameUnsolvable(t *testing.T) {
	// No line of a 2x2 grid is long enough for a run.
	cfg := Config{Rows: 2, Columns: 2, Palette: Palette{"a", "b"}}
	b, err := New(cfg, rand.New(rand.NewSource(1)), WithMaxDealAttempts(10))
	assert.ErrorIs(t, err, ErrUnsolvableDeal)
	require.NotNil(t, b)
	assert.Len(t, b.Cells(), 4)
	assert.False(t, b.HasLegalMove())
}

func TestNewGameResetsScore(t *testing.T) {
	b := mustLayout(t, []string{
		"AACB",
		"BBAC",
		"CCBA",
		"ABCB",
	})
	ok, err := b.TakeStep(2, 6)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 3, b.Score())

	require.NoError(t, b.NewGame())
	assert.Zero(t, b.Score())
	assert.True(t, b.Stable())
}
