// Package match3 puts the board engine behind the registry game interface: a
// cursor and a picked-up tile turn key presses into swaps, cleared tiles
// fade for a few ticks before the cascade settles, and the campaign adds
// per-level targets and move budgets.
package match3

import (
	"errors"
	"math/rand"
	"sync"

	"github.com/vovakirdan/match3/internal/board"
	"github.com/vovakirdan/match3/internal/config"
	"github.com/vovakirdan/match3/internal/core"
	"github.com/vovakirdan/match3/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeEndless  Mode = "endless"
	ModeCampaign Mode = "campaign"
)

// Registry IDs.
const (
	IDEndless  = "match3"
	IDCampaign = "match3_campaign"
)

const (
	shufflesPerBoard  = 3 // new deals allowed per game or level
	levelClearSeconds = 2
)

var (
	settingsMu         sync.Mutex
	configPath         string
	difficultyPreset   config.DifficultyPreset
	selectedStartLevel int
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names and the
// empty string keep the configured difficulty.
func SetDifficultyPreset(preset string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	difficultyPreset = ""
	if preset == "" {
		return
	}
	if p, err := config.ParsePreset(preset); err == nil {
		difficultyPreset = p
	}
}

// SetStartLevel sets the 1-based campaign level the next campaign game
// starts at. 0 means the first level. It is consumed by the next Reset.
func SetStartLevel(level int) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	selectedStartLevel = level
}

func takeStartLevel() int {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	level := selectedStartLevel
	selectedStartLevel = 0
	return level
}

// loadConfig reads match3.yaml and applies the preset. A broken custom file
// falls back to the built-in defaults.
func loadConfig() config.Match3Config {
	settingsMu.Lock()
	path, preset := configPath, difficultyPreset
	settingsMu.Unlock()

	cfg, err := config.Load(path)
	if err != nil {
		cfg = config.DefaultMatch3Config()
	}
	if preset != "" {
		config.ApplyPreset(&cfg, preset)
	}
	if len(cfg.Campaign) == 0 {
		cfg.Campaign = config.DefaultMatch3Config().Campaign
	}
	return cfg
}

// Game is a match-3 game in either mode.
type Game struct {
	mode       Mode
	cfg        config.Match3Config
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	tick       uint64
	tickRate   int

	board       *board.Board
	unsubscribe func()
	tiles       []core.Color // screen color per palette color

	cursor   int
	selected int // picked-up tile, -1 when none
	hint     *board.Swap
	fade     int // ticks until the next cascade round
	rejected bool

	banked     int // points from boards already replaced
	levelStart int // Score() when the current level began
	moves      int
	chain      int // cascade rounds scored by the last swap
	lastGain   int
	shuffles   int
	stuck      bool
	unsolvable bool

	levelIndex int
	movesLeft  int
	target     int

	screenW int
	screenH int

	gameOver        bool
	levelCleared    bool
	levelClearTicks int
	won             bool
	paused          bool
	tooSmall        bool
}

// New creates an endless game.
func New() *Game {
	return &Game{mode: ModeEndless, selected: -1}
}

// NewCampaign creates a campaign game.
func NewCampaign() *Game {
	return &Game{mode: ModeCampaign, selected: -1}
}

func init() {
	registry.Register(IDEndless, func() registry.Game {
		return New()
	})
	registry.Register(IDCampaign, func() registry.Game {
		return NewCampaign()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeCampaign {
		return IDCampaign
	}
	return IDEndless
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeCampaign {
		return "Match-3 (Campaign)"
	}
	return "Match-3"
}

// Description returns a one-line summary for listings.
func (g *Game) Description() string {
	if g.mode == ModeCampaign {
		return "Reach each level's target score within its move budget"
	}
	return "Swap neighbouring tiles to line up three or more"
}

// Mode returns the game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Board exposes the current board.
func (g *Game) Board() *board.Board {
	return g.board
}

// Reset starts a new game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.cfg = loadConfig()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tickRate = max(rc.TickRate, 1)
	g.tick = 0
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH

	if g.unsubscribe != nil {
		g.unsubscribe()
		g.unsubscribe = nil
	}
	g.board = nil
	g.cursor = 0
	g.banked = 0
	g.levelStart = 0
	g.moves = 0
	g.shuffles = shufflesPerBoard
	g.gameOver = false
	g.levelCleared = false
	g.levelClearTicks = 0
	g.won = false
	g.paused = false

	g.levelIndex = 0
	if g.mode == ModeCampaign {
		if start := takeStartLevel(); start > 0 && start <= len(g.cfg.Campaign) {
			g.levelIndex = start - 1
		}
	}
	g.loadLevel()
}

// loadLevel deals the board for the current level, or for the endless game
// at the current difficulty.
func (g *Game) loadLevel() {
	rows, cols := g.cfg.Board.Rows, g.cfg.Board.Columns
	colors := g.difficulty.Colors(len(g.cfg.Board.Colors), g.Score(), g.moves)
	g.target, g.movesLeft = 0, 0

	if g.mode == ModeCampaign {
		lvl := g.cfg.Campaign[g.levelIndex]
		rows, cols, colors = lvl.Rows, lvl.Columns, lvl.Colors
		g.target = lvl.TargetScore
		g.movesLeft = g.difficulty.MoveBudget(lvl.Moves)
	}
	g.deal(rows, cols, colors)
}

// deal replaces the board. The previous board's score is banked.
func (g *Game) deal(rows, cols, colors int) {
	if g.board != nil {
		g.banked += g.board.Score()
	}

	palette := g.cfg.Board.Palette(colors)
	b, err := board.New(board.Config{Rows: rows, Columns: cols, Palette: palette}, g.rng, boardOptions(g.cfg.Rules)...)
	if errors.Is(err, board.ErrInvalidConfig) {
		b, err = board.New(board.DefaultConfig(), g.rng, boardOptions(g.cfg.Rules)...)
	}

	g.attach(b, err)
}

// attach makes b the board in play. err is what dealing it returned.
func (g *Game) attach(b *board.Board, err error) {
	if g.unsubscribe != nil {
		g.unsubscribe()
	}
	g.board = b
	g.unsubscribe = b.Subscribe(board.ObserverFunc(g.onEvent))
	g.tiles = tileColors(b.Palette())
	g.afterDeal(err)
	g.checkScreenSize()
}

func (g *Game) afterDeal(err error) {
	g.unsolvable = errors.Is(err, board.ErrUnsolvableDeal)
	g.stuck = g.unsolvable
	g.cursor = min(g.cursor, g.board.Len()-1)
	g.selected = -1
	g.hint = nil
	g.fade = 0
	g.rejected = false
	if g.stuck && g.shuffles == 0 {
		g.gameOver = true
	}
}

// redeal spends a shuffle on a new board of the same level. In the endless
// game the palette follows the difficulty, so the board is rebuilt when the
// color count changes.
func (g *Game) redeal() {
	if g.shuffles == 0 {
		return
	}
	g.shuffles--

	if g.mode == ModeEndless {
		colors := g.difficulty.Colors(len(g.cfg.Board.Colors), g.Score(), g.moves)
		if colors != g.board.Palette().Len() {
			g.deal(g.cfg.Board.Rows, g.cfg.Board.Columns, colors)
			return
		}
	}
	g.banked += g.board.Score()
	g.afterDeal(g.board.NewGame())
}

func (g *Game) onEvent(e board.Event) {
	switch e := e.(type) {
	case board.Matched:
		g.chain++
		g.lastGain += e.Points
	case board.NoLegalMoves:
		g.stuck = true
	case board.Dealt:
		g.stuck = false
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= levelClearSeconds*g.tickRate {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	// Restart after game over is handled by the platform.
	if g.gameOver || g.won {
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	// Cleared tiles are fading; swaps wait for the cascade.
	if g.fade > 0 {
		g.fade--
		if g.fade == 0 {
			g.settle()
		}
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionNewDeal):
		g.redeal()
	case in.Has(core.ActionHint):
		g.showHint()
	case in.Has(core.ActionBack):
		g.selected = -1
	case in.Has(core.ActionSelect):
		g.selectCell()
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(in core.InputFrame) {
	d := g.board.Dims()
	row, col := d.Row(g.cursor), d.Column(g.cursor)
	switch {
	case in.Has(core.ActionUp):
		row--
	case in.Has(core.ActionDown):
		row++
	case in.Has(core.ActionLeft):
		col--
	case in.Has(core.ActionRight):
		col++
	default:
		return
	}
	row = core.Clamp(row, 0, d.Rows-1)
	col = core.Clamp(col, 0, d.Columns-1)
	if i, err := d.ToIndex(row, col); err == nil {
		g.cursor = i
	}
}

// selectCell picks up the tile under the cursor, drops it, or swaps it
// with the one picked up before.
func (g *Game) selectCell() {
	g.rejected = false
	switch {
	case g.selected < 0:
		g.selected = g.cursor
	case g.selected == g.cursor:
		g.selected = -1
	case !g.board.Dims().Adjacent(g.selected, g.cursor):
		g.selected = g.cursor
	default:
		g.trySwap(g.selected, g.cursor)
	}
}

func (g *Game) trySwap(a, b int) {
	g.chain, g.lastGain = 0, 0
	g.selected = -1

	ok, err := g.board.TakeStep(a, b)
	if err != nil || !ok {
		g.rejected = true
		return
	}

	g.moves++
	g.hint = nil
	if g.mode == ModeCampaign {
		g.movesLeft--
	}
	if g.board.Stable() {
		g.afterMove()
		return
	}
	g.fade = g.cfg.Animation.FadeTicks
}

// settle runs one cascade round and keeps fading while the new
// arrangement still matches.
func (g *Game) settle() {
	g.board.Settle()
	if !g.board.Stable() {
		g.fade = g.cfg.Animation.FadeTicks
		return
	}
	g.afterMove()
}

// afterMove checks the end conditions once the board is stable again.
func (g *Game) afterMove() {
	if g.mode == ModeCampaign {
		if g.LevelScore() >= g.target {
			g.levelCleared = true
			g.levelClearTicks = 0
			return
		}
		if g.movesLeft <= 0 {
			g.gameOver = true
			return
		}
	}
	if g.stuck && g.shuffles == 0 {
		g.gameOver = true
	}
}

func (g *Game) showHint() {
	if !g.cfg.Rules.Hints {
		return
	}
	if s, ok := g.board.Hint(); ok {
		g.hint = &s
		g.cursor = s.A
	}
}

// advanceLevel moves to the next campaign level, or finishes the campaign.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0

	if g.levelIndex >= len(g.cfg.Campaign)-1 {
		g.won = true
		return
	}

	g.levelIndex++
	g.levelStart = g.Score()
	g.shuffles = shufflesPerBoard
	g.cursor = 0
	g.loadLevel()
}

// Score returns the total score of this game.
func (g *Game) Score() int {
	if g.board == nil {
		return g.banked
	}
	return g.banked + g.board.Score()
}

// LevelScore returns the points scored on the current campaign level.
func (g *Game) LevelScore() int {
	return g.Score() - g.levelStart
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	level := 0
	if g.mode == ModeCampaign {
		level = g.levelIndex + 1
	}
	return core.GameState{
		Score:    g.Score(),
		Moves:    g.moves,
		Level:    level,
		GameOver: g.gameOver || g.won,
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
}
