package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindRuns(t *testing.T) {
	tests := []struct {
		name   string
		layout []string
		want   []Run
	}{
		{
			name:   "none",
			layout: []string{"ABAB", "BABA", "ABAB"},
			want:   nil,
		},
		{
			name:   "row run at line end",
			layout: []string{"ABBB", "BACA", "ABAB"},
			want:   []Run{{Axis: AxisRow, Color: 1, Indices: []int{1, 2, 3}}},
		},
		{
			name:   "row of four",
			layout: []string{"CCCC", "ABAB", "BABA"},
			want:   []Run{{Axis: AxisRow, Color: 2, Indices: []int{0, 1, 2, 3}}},
		},
		{
			name:   "column run",
			layout: []string{"ABC", "ACB", "ABC"},
			want:   []Run{{Axis: AxisColumn, Color: 0, Indices: []int{0, 3, 6}}},
		},
		{
			name:   "rows before columns",
			layout: []string{"BAB", "AAA", "BAB"},
			want: []Run{
				{Axis: AxisRow, Color: 0, Indices: []int{3, 4, 5}},
				{Axis: AxisColumn, Color: 0, Indices: []int{1, 4, 7}},
			},
		},
		{
			name:   "two runs in one row",
			layout: []string{"AAABBB", "BABABA", "ABABAB"},
			want: []Run{
				{Axis: AxisRow, Color: 0, Indices: []int{0, 1, 2}},
				{Axis: AxisRow, Color: 1, Indices: []int{3, 4, 5}},
			},
		},
		{
			name:   "visibility is ignored",
			layout: []string{"aAa", "BCB", "CBC"},
			want:   []Run{{Axis: AxisRow, Color: 0, Indices: []int{0, 1, 2}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustLayout(t, tt.layout)
			got := FindRuns(b.Dims(), b.Cells())
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.want) > 0, HasRun(b.Dims(), b.Cells()))
		})
	}
}

func TestMatchedIndices(t *testing.T) {
	b := mustLayout(t, []string{"BAB", "AAA", "BAB"})
	runs := FindRuns(b.Dims(), b.Cells())
	require.Len(t, runs, 2)
	assert.Equal(t, []int{3, 4, 5, 1, 7}, MatchedIndices(runs))
}

func TestAxisString(t *testing.T) {
	assert.Equal(t, "row", AxisRow.String())
	assert.Equal(t, "column", AxisColumn.String())
}

func TestFindRunsIgnoresShortCells(t *testing.T) {
	d := Dims{Rows: 3, Columns: 3}
	cells := make([]Cell, 8)
	assert.Empty(t, FindRuns(d, cells))
	assert.False(t, HasRun(d, cells))
}
