// match3 is a terminal match-3 game with a campaign, an endless mode, an SSH
// server for remote play and an HTTP API for board sessions.
//
// Usage:
//
//	match3 list              - List game modes
//	match3 play <game>       - Play a mode
//	match3 menu              - Pick a mode interactively
//	match3 serve             - Start SSH server for remote play
//	match3 scores <game>     - Show high scores
//	match3 api               - Start the HTTP API
//	match3 solve             - Deal a board and print its moves
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible deals
//	--db <path>           - Set database path (default: ~/.match3/scores.db)
//	--config <path>       - Use a custom match3.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/match3/internal/config"
	"github.com/vovakirdan/match3/internal/core"
	"github.com/vovakirdan/match3/internal/games/match3"
	"github.com/vovakirdan/match3/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "match3",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Match-3 in your terminal",
	Long: `Swap adjacent tiles to line up three or more of a color. Matched
tiles fade out, the tiles above fall into the gaps and new ones drop in.

Available commands:
  list     - Show the game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  api      - Serve boards over HTTP
  solve    - Print a dealt board and its legal moves

Examples:
  match3 play match3_campaign
  match3 play match3 --difficulty hard
  match3 serve --ssh :2222
  match3 api --http :8080`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
		match3.SetConfigPath(flagConfig)
		match3.SetDifficultyPreset(flagDifficulty)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom match3.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(solveCmd)
}

// loadConfig reads match3.yaml with the global flags applied. A broken
// --config file is reported and the defaults are used.
func loadConfig() config.Match3Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Warn("using default configuration", "error", err)
		cfg = config.DefaultMatch3Config()
	}
	if flagDifficulty != "" {
		if preset, err := config.ParsePreset(flagDifficulty); err == nil {
			config.ApplyPreset(&cfg, preset)
		}
	}
	return cfg
}
