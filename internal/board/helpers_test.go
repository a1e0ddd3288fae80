package board

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// scripted returns vals in order, wrapping around, reduced modulo n.
type scripted struct {
	vals []int
	pos  int
}

func (s *scripted) Intn(n int) int {
	v := s.vals[s.pos%len(s.vals)]
	s.pos++
	return v % n
}

type recorder struct {
	events []Event
}

func (r *recorder) OnEvent(e Event) {
	r.events = append(r.events, e)
}

func (r *recorder) reset() {
	r.events = nil
}

func eventsOf[T Event](r *recorder) []T {
	var out []T
	for _, e := range r.events {
		if ev, ok := e.(T); ok {
			out = append(out, ev)
		}
	}
	return out
}

func mustLayout(t *testing.T, layout []string, opts ...Option) *Board {
	t.Helper()
	b, err := FromLayout(layout, rand.New(rand.NewSource(1)), opts...)
	require.NoError(t, err)
	return b
}

// randomLayout draws a rows x cols layout over colors letters; about one
// cell in hiddenOneIn is invisible (0 disables hiding).
func randomLayout(rng *rand.Rand, rows, cols, colors, hiddenOneIn int) []string {
	layout := make([]string, rows)
	for r := range layout {
		var sb strings.Builder
		for range cols {
			ch := byte('A' + rng.Intn(colors))
			if hiddenOneIn > 0 && rng.Intn(hiddenOneIn) == 0 {
				ch += 'a' - 'A'
			}
			sb.WriteByte(ch)
		}
		layout[r] = sb.String()
	}
	return layout
}

// adjacentPairs lists every unordered pair of neighbours of d.
func adjacentPairs(d Dims) [][2]int {
	var pairs [][2]int
	for i := range d.Len() {
		if d.Column(i)+1 < d.Columns {
			pairs = append(pairs, [2]int{i, i + 1})
		}
		if i+d.Columns < d.Len() {
			pairs = append(pairs, [2]int{i, i + d.Columns})
		}
	}
	return pairs
}

func colorCounts(cells []Cell) map[Color]int {
	counts := make(map[Color]int)
	for _, c := range cells {
		counts[c.Color]++
	}
	return counts
}
