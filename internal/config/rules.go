package config

import "github.com/vovakirdan/match3/internal/board"

// BoardOptions turns the rules section into engine options. Names were
// checked by Validate, so lookup failures keep the engine default.
func (r RulesConfig) BoardOptions() []board.Option {
	opts := []board.Option{
		board.WithStrict(r.Strict),
		board.WithGravity(r.Refill != "inplace"),
		board.WithMaxDealAttempts(r.MaxDealAttempts),
	}
	if s, err := board.StrategyByName(r.Strategy); err == nil {
		opts = append(opts, board.WithStrategy(s))
	}
	if e, err := board.ExecutorByName(r.Executor); err == nil {
		opts = append(opts, board.WithExecutor(e))
	}
	return opts
}

// Palette returns the first n configured colors, at least two of them.
func (b BoardConfig) Palette(n int) board.Palette {
	n = min(max(n, 2), len(b.Colors))
	return append(board.Palette(nil), b.Colors[:n]...)
}
