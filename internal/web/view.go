package web

import "github.com/vovakirdan/match3/internal/board"

// CellView is one cell on the wire. Color is the palette name.
type CellView struct {
	Color   string `json:"color"`
	Visible bool   `json:"visible"`
}

// BoardView is the JSON form of a hosted board.
type BoardView struct {
	ID      string     `json:"id"`
	Rows    int        `json:"rows"`
	Columns int        `json:"columns"`
	Palette []string   `json:"palette"`
	Cells   []CellView `json:"cells"`
	Layout  []string   `json:"layout"`
	Score   int        `json:"score"`
	Steps   int        `json:"steps"`
	Stable  bool       `json:"stable"`
	NoMoves bool       `json:"noMoves"`
}

func newBoardView(id string, b *board.Board, noMoves bool, steps int) BoardView {
	palette := b.Palette()
	cells := b.Cells()
	out := make([]CellView, len(cells))
	for i, c := range cells {
		out[i] = CellView{Color: palette.Name(c.Color), Visible: c.Visible}
	}
	return BoardView{
		ID:      id,
		Rows:    b.Rows(),
		Columns: b.Columns(),
		Palette: palette,
		Cells:   out,
		Layout:  b.Layout(),
		Score:   b.Score(),
		Steps:   steps,
		Stable:  b.Stable(),
		NoMoves: noMoves,
	}
}

// HintView is the response of the hint endpoint.
type HintView struct {
	Found  bool `json:"found"`
	First  int  `json:"first"`
	Second int  `json:"second"`
}

// SwapRequest is the body of the swap endpoint.
type SwapRequest struct {
	First  int `json:"first"`
	Second int `json:"second"`
}

type errorView struct {
	Error string `json:"error"`
}
