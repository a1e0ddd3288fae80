package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/match3/internal/core"
	"github.com/vovakirdan/match3/internal/games/match3"
	"github.com/vovakirdan/match3/internal/platform/tui"
	"github.com/vovakirdan/match3/internal/registry"
	"github.com/vovakirdan/match3/internal/storage"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game mode",
	Long: `Start playing the specified mode. The campaign opens a level
selector unless --level is given.

Controls:
  Arrows/WASD/hjkl - Move the cursor
  Space/Enter      - Pick up a tile, then pick a neighbour to swap
  Esc              - Drop the picked tile
  ?                - Show a hint
  N                - New deal when no swap is left
  P                - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Fewer colors, more moves, hints and slow fades
  normal - The configured game with gentle progression
  hard   - More colors sooner, tighter move budgets, no hints
  fixed  - No progression, stays at the configured palette

Examples:
  match3 play match3
  match3 play match3_campaign --level 3
  match3 play match3 --difficulty easy
  match3 play match3 --config ./match3.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign level to start at (1-based)")
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. Play continues without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// chooseMode runs the campaign selector for the campaign game. It returns
// the game to create, or "" if the player backed out.
func chooseMode(gameID string, cfg core.RuntimeConfig) (string, error) {
	if gameID != match3.IDCampaign {
		return gameID, nil
	}
	if flagLevel > 0 {
		match3.SetStartLevel(flagLevel)
		return gameID, nil
	}

	selection, err := tui.RunModeSelector(cfg)
	if err != nil || selection == nil {
		return "", err
	}
	if selection.Level > 0 {
		match3.SetStartLevel(selection.Level)
	}
	return selection.GameID(), nil
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'match3 list' to see available games.")
		os.Exit(1)
	}
	if flagLevel < 0 || flagLevel > match3.LevelCount() {
		fmt.Fprintf(os.Stderr, "Error: level %d not in 1..%d\n", flagLevel, match3.LevelCount())
		os.Exit(1)
	}

	cfg := runtimeConfig()
	gameID, err := chooseMode(gameID, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if gameID == "" {
		return
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	runErr := tui.Run(game, store, cfg)
	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
