package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimsAddressing(t *testing.T) {
	d := Dims{Rows: 3, Columns: 4}

	tests := []struct {
		index, row, col int
	}{
		{0, 0, 0},
		{3, 0, 3},
		{4, 1, 0},
		{7, 1, 3},
		{11, 2, 3},
	}
	for _, tt := range tests {
		row, col, err := d.ToRowCol(tt.index)
		require.NoError(t, err)
		assert.Equal(t, tt.row, row, "row of %d", tt.index)
		assert.Equal(t, tt.col, col, "column of %d", tt.index)

		index, err := d.ToIndex(tt.row, tt.col)
		require.NoError(t, err)
		assert.Equal(t, tt.index, index)

		assert.Equal(t, tt.row, d.Row(tt.index))
		assert.Equal(t, tt.col, d.Column(tt.index))
	}
}

func TestDimsOutOfBounds(t *testing.T) {
	d := Dims{Rows: 3, Columns: 4}

	for _, index := range []int{-1, 12, 100} {
		_, _, err := d.ToRowCol(index)
		assert.ErrorIs(t, err, ErrOutOfBounds, "index %d", index)
		assert.Equal(t, -1, d.Row(index))
		assert.Equal(t, -1, d.Column(index))
	}

	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 4}} {
		_, err := d.ToIndex(pos[0], pos[1])
		assert.ErrorIs(t, err, ErrOutOfBounds, "position %v", pos)
	}
}

func TestDimsAdjacent(t *testing.T) {
	d := Dims{Rows: 4, Columns: 4}

	tests := []struct {
		name string
		a, b int
		want bool
	}{
		{"horizontal", 1, 2, true},
		{"horizontal reversed", 2, 1, true},
		{"vertical", 2, 6, true},
		{"vertical reversed", 6, 2, true},
		{"same cell", 5, 5, false},
		{"two apart", 0, 2, false},
		{"diagonal", 0, 5, false},
		{"row wrap", 3, 4, false},
		{"two rows apart", 1, 9, false},
		{"out of range", 15, 16, false},
		{"negative", -1, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Adjacent(tt.a, tt.b))
		})
	}
}
