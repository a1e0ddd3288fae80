package config

import (
	"fmt"

	"github.com/vovakirdan/match3/internal/board"
)

// ValidationError describes why a configuration was rejected.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Normalize fills absent values the way the board engine does: dimensions
// below 2 become 4, an empty palette becomes the default six colors, and
// unset rule and animation values take their defaults.
func (c *Match3Config) Normalize() {
	def := DefaultMatch3Config()
	if c.Board.Rows < 2 {
		c.Board.Rows = def.Board.Rows
	}
	if c.Board.Columns < 2 {
		c.Board.Columns = def.Board.Columns
	}
	if len(c.Board.Colors) == 0 {
		c.Board.Colors = def.Board.Colors
	}
	if c.Rules.Strategy == "" {
		c.Rules.Strategy = def.Rules.Strategy
	}
	if c.Rules.Executor == "" {
		c.Rules.Executor = def.Rules.Executor
	}
	if c.Rules.Refill == "" {
		c.Rules.Refill = def.Rules.Refill
	}
	if c.Rules.MaxDealAttempts <= 0 {
		c.Rules.MaxDealAttempts = def.Rules.MaxDealAttempts
	}
	if c.Animation.FadeTicks <= 0 {
		c.Animation.FadeTicks = def.Animation.FadeTicks
	}
}

// Validate checks a normalized configuration.
func (c Match3Config) Validate() error {
	seen := make(map[string]bool, len(c.Board.Colors))
	for _, name := range c.Board.Colors {
		if seen[name] {
			return ValidationError{
				Code:    "DUPLICATE_COLOR",
				Message: fmt.Sprintf("color %q is listed twice", name),
			}
		}
		seen[name] = true
	}
	if len(c.Board.Colors) < 2 {
		return ValidationError{
			Code:    "PALETTE_TOO_SMALL",
			Message: fmt.Sprintf("need at least 2 colors, got %d", len(c.Board.Colors)),
		}
	}

	if c.Board.Rows > board.MaxDimension || c.Board.Columns > board.MaxDimension {
		return ValidationError{
			Code:    "BOARD_TOO_LARGE",
			Message: fmt.Sprintf("grid %dx%d is larger than %dx%d", c.Board.Rows, c.Board.Columns, board.MaxDimension, board.MaxDimension),
		}
	}

	switch c.Rules.Strategy {
	case "lookahead", "rescan":
	default:
		return ValidationError{Code: "UNKNOWN_STRATEGY", Message: fmt.Sprintf("strategy %q", c.Rules.Strategy)}
	}
	switch c.Rules.Executor {
	case "direct", "reorder":
	default:
		return ValidationError{Code: "UNKNOWN_EXECUTOR", Message: fmt.Sprintf("executor %q", c.Rules.Executor)}
	}
	switch c.Rules.Refill {
	case "gravity", "inplace":
	default:
		return ValidationError{Code: "UNKNOWN_REFILL", Message: fmt.Sprintf("refill %q", c.Rules.Refill)}
	}

	if s := c.Difficulty.Scaling.MinColors; s != 0 && (s < 2 || s > len(c.Board.Colors)) {
		return ValidationError{
			Code:    "BAD_MIN_COLORS",
			Message: fmt.Sprintf("min_colors %d outside [2, %d]", s, len(c.Board.Colors)),
		}
	}

	for i, l := range c.Campaign {
		if l.Rows < 2 || l.Columns < 2 {
			return ValidationError{
				Code:    "BAD_LEVEL",
				Message: fmt.Sprintf("level %d: grid %dx%d is smaller than 2x2", i+1, l.Rows, l.Columns),
			}
		}
		if l.Rows > board.MaxDimension || l.Columns > board.MaxDimension {
			return ValidationError{
				Code:    "BAD_LEVEL",
				Message: fmt.Sprintf("level %d: grid %dx%d is larger than %dx%d", i+1, l.Rows, l.Columns, board.MaxDimension, board.MaxDimension),
			}
		}
		if l.Colors < 2 || l.Colors > len(c.Board.Colors) {
			return ValidationError{
				Code:    "BAD_LEVEL",
				Message: fmt.Sprintf("level %d: colors %d outside [2, %d]", i+1, l.Colors, len(c.Board.Colors)),
			}
		}
		if l.TargetScore <= 0 || l.Moves <= 0 {
			return ValidationError{
				Code:    "BAD_LEVEL",
				Message: fmt.Sprintf("level %d: target and moves must be positive", i+1),
			}
		}
	}
	return nil
}
