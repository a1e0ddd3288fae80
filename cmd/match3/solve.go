package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/match3/internal/board"
)

var (
	flagSolveRows    int
	flagSolveColumns int
	flagSolveColors  int
	flagSolveLoose   bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Deal a board and print its legal moves",
	Long: `Deal one board with the configured rules, print it, list every
legal swap, then clear all runs on it at once and print the result.
Upper-case letters are tiles, lower-case letters are cleared tiles.

Examples:
  match3 solve --rows 6 --columns 6 --seed 42
  match3 solve --colors 3 --loose`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().IntVar(&flagSolveRows, "rows", 0, "Rows (0 = configured)")
	solveCmd.Flags().IntVar(&flagSolveColumns, "columns", 0, "Columns (0 = configured)")
	solveCmd.Flags().IntVar(&flagSolveColors, "colors", 0, "Colors in play (0 = all configured)")
	solveCmd.Flags().BoolVar(&flagSolveLoose, "loose", false, "Allow runs in the deal")
}

func runSolve(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	rows, cols, colors := cfg.Board.Rows, cfg.Board.Columns, len(cfg.Board.Colors)
	if flagSolveRows > 0 {
		rows = flagSolveRows
	}
	if flagSolveColumns > 0 {
		cols = flagSolveColumns
	}
	if flagSolveColors > 0 {
		colors = flagSolveColors
	}
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := cfg.Rules.BoardOptions()
	if flagSolveLoose {
		opts = append(opts, board.WithStrict(false))
	}
	b, err := board.New(board.Config{Rows: rows, Columns: cols, Palette: cfg.Board.Palette(colors)}, rand.New(rand.NewSource(seed)), opts...)
	if b == nil {
		return err
	}
	if errors.Is(err, board.ErrUnsolvableDeal) {
		logger.Warn("no solvable deal found, showing the last attempt", "seed", seed)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Board %dx%d, seed %d\n", b.Rows(), b.Columns(), seed)
	for i, name := range b.Palette() {
		fmt.Fprintf(out, "  %c = %s\n", 'A'+i, name)
	}
	fmt.Fprintln(out)
	printLayout(out, b)

	moves := b.LegalMoves()
	fmt.Fprintf(out, "\n%d legal swaps:\n", len(moves))
	d := b.Dims()
	for _, m := range moves {
		fmt.Fprintf(out, "  (%d,%d) <-> (%d,%d)\n", d.Row(m.A), d.Column(m.A), d.Row(m.B), d.Column(m.B))
	}

	cleared := b.SolveAll()
	fmt.Fprintf(out, "\nSolve all: %d cells cleared, score %d\n", cleared, b.Score())
	if cleared > 0 {
		printLayout(out, b)
	}
	return nil
}

func printLayout(w io.Writer, b *board.Board) {
	for _, row := range b.Layout() {
		fmt.Fprintf(w, "  %s\n", strings.Join(strings.Split(row, ""), " "))
	}
}
