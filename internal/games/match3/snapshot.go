package match3

import "github.com/vovakirdan/match3/internal/board"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateCascading    GameStateType = "cascading"
	StateNoMoves      GameStateType = "no_moves"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      string
	Level     int // 1-based, 0 in the endless game
	Target    int
	Score     int
	Moves     int
	MovesLeft int
	Shuffles  int
	Cursor    int
	Selected  int
	Board     board.Snapshot
	Layout    []string
	State     GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	case g.fade > 0:
		state = StateCascading
	case g.stuck:
		state = StateNoMoves
	}

	return Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Level:     g.State().Level,
		Target:    g.target,
		Score:     g.Score(),
		Moves:     g.moves,
		MovesLeft: g.movesLeft,
		Shuffles:  g.shuffles,
		Cursor:    g.cursor,
		Selected:  g.selected,
		Board:     g.board.Snapshot(),
		Layout:    g.board.Layout(),
		State:     state,
	}
}
