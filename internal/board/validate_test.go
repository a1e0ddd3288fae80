package board

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var strategies = []Strategy{Rescan{}, Lookahead{}}

func TestScenarioHorizontalSwapWithoutRun(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.Name(), func(t *testing.T) {
			b := mustLayout(t, []string{
				"AABC",
				"BCAB",
				"CABA",
				"ABCC",
			}, WithStrategy(s))
			before := b.Cells()
			rec := &recorder{}
			b.Subscribe(rec)

			assert.False(t, b.IsLegalSwap(1, 2))
			ok, err := b.TakeStep(1, 2)
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Equal(t, before, b.Cells())
			assert.Empty(t, rec.events)
			assert.Zero(t, b.Score())
		})
	}
}

func TestScenarioVerticalSwapWithoutRun(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.Name(), func(t *testing.T) {
			// Row 1 already holds BBB; it does not pass through 3 or 7.
			b := mustLayout(t, []string{
				"AACC",
				"BBBA",
				"CACB",
				"ACAC",
			}, WithStrategy(s))
			before := b.Cells()

			assert.False(t, b.IsLegalSwap(3, 7))
			ok, err := b.TakeStep(3, 7)
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Equal(t, before, b.Cells())
		})
	}
}

func TestScenarioVerticalSwapClearsRow(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.Name(), func(t *testing.T) {
			b := mustLayout(t, []string{
				"AACB",
				"BBAC",
				"CCBA",
				"ABCB",
			}, WithStrategy(s))
			rec := &recorder{}
			b.Subscribe(rec)

			assert.True(t, b.IsLegalSwap(2, 6))
			ok, err := b.TakeStep(2, 6)
			require.NoError(t, err)
			require.True(t, ok)

			assert.Equal(t, 3, b.Score())
			assert.Equal(t, []string{
				"aaaB",
				"BBCC",
				"CCBA",
				"ABCB",
			}, b.Layout())

			assert.Equal(t, []Moved{{A: 2, B: 6}}, eventsOf[Moved](rec))
			assert.Equal(t, []Matched{{Cleared: 3, Points: 3, Score: 3}}, eventsOf[Matched](rec))
			assert.Empty(t, eventsOf[NoLegalMoves](rec))
		})
	}
}

func TestIsLegalSwapRejectsNonAdjacent(t *testing.T) {
	// Swapping 0 and 2 would complete a row, but they are not neighbours.
	b := mustLayout(t, []string{
		"ABAA",
		"BCBC",
		"CACB",
	})
	for _, pair := range [][2]int{{0, 2}, {0, 0}, {3, 4}, {0, 5}, {-1, 0}, {11, 12}} {
		assert.False(t, b.IsLegalSwap(pair[0], pair[1]), "pair %v", pair)
	}
	assert.True(t, b.IsLegalSwap(0, 1))
	assert.True(t, b.IsLegalSwap(1, 0))
}

func TestIsLegalSwapIsReadOnly(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for range 20 {
		b := mustLayout(t, randomLayout(rng, 5, 5, 3, 6))
		before := b.Cells()
		for _, p := range adjacentPairs(b.Dims()) {
			first := b.IsLegalSwap(p[0], p[1])
			for range 3 {
				require.Equal(t, first, b.IsLegalSwap(p[0], p[1]))
				require.Equal(t, first, b.IsLegalSwap(p[1], p[0]))
			}
		}
		require.Equal(t, before, b.Cells())
	}
}

func TestStrategiesAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	var rescan Rescan
	var look Lookahead
	checked, legal := 0, 0
	for range 500 {
		rows := 2 + rng.Intn(6)
		cols := 2 + rng.Intn(6)
		colors := 2 + rng.Intn(3)
		b := mustLayout(t, randomLayout(rng, rows, cols, colors, 5))
		cells := b.Cells()
		for _, p := range adjacentPairs(b.Dims()) {
			want := rescan.Legal(b.Dims(), cells, p[0], p[1])
			got := look.Legal(b.Dims(), cells, p[0], p[1])
			require.Equal(t, want, got, "board\n%s\npair %v", b, p)
			checked++
			if want {
				legal++
			}
		}
		require.Equal(t, cells, b.Cells())
	}
	// Both verdicts must have been exercised.
	assert.Positive(t, legal)
	assert.Less(t, legal, checked)
}

func TestLegalityMatchesScannerOnRunFreeBoards(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for range 300 {
		b := mustLayout(t, randomLayout(rng, 4, 5, 4, 0))
		if HasRun(b.Dims(), b.Cells()) {
			continue
		}
		for _, p := range adjacentPairs(b.Dims()) {
			swapped := b.Cells()
			swapped[p[0]], swapped[p[1]] = swapped[p[1]], swapped[p[0]]
			require.Equal(t, HasRun(b.Dims(), swapped), b.IsLegalSwap(p[0], p[1]))
		}
	}
}

func TestStrategyByName(t *testing.T) {
	for name, want := range map[string]string{"": "lookahead", "lookahead": "lookahead", "rescan": "rescan"} {
		s, err := StrategyByName(name)
		require.NoError(t, err)
		assert.Equal(t, want, s.Name())
	}
	_, err := StrategyByName("guess")
	assert.Error(t, err)
}
