package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/match3/internal/core"
	"github.com/vovakirdan/match3/internal/games/match3"
	"github.com/vovakirdan/match3/internal/storage"
)

// stubGame is a scripted game: Step reports whatever state is set on it.
type stubGame struct {
	state   core.GameState
	resets  int
	steps   int
	inputs  []core.InputFrame
	resized [][2]int
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "STUB BOARD") }
func (g *stubGame) Resize(width, height int) { g.resized = append(g.resized, [2]int{width, height}) }
func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	// The runner reuses its frame, so keep a copy.
	seen := core.NewInputFrame()
	for a := range in.Actions {
		seen.Set(a)
	}
	g.inputs = append(g.inputs, seen)
	return core.StepResult{State: g.state}
}

func testStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestNewModelSessionID(t *testing.T) {
	cfg := core.DefaultConfig()

	m := NewModel(&stubGame{}, nil, cfg, "")
	if len(m.sessionID) != 36 {
		t.Errorf("generated session ID %q is not a UUID", m.sessionID)
	}
	if m.screen.Height() != cfg.ScreenH-1 {
		t.Errorf("game screen height = %d, expected %d", m.screen.Height(), cfg.ScreenH-1)
	}

	m = NewModel(&stubGame{}, nil, cfg, "ssh-1")
	if m.sessionID != "ssh-1" {
		t.Errorf("session ID = %q, expected ssh-1", m.sessionID)
	}
}

func TestKeysReachGameOnTick(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, nil, core.DefaultConfig(), "")
	m.Init()

	m = update(t, m, keyMsg("right"))
	m = update(t, m, keyMsg("space"))
	m = update(t, m, TickMsg{})

	if game.resets != 1 || game.steps != 1 {
		t.Fatalf("resets=%d steps=%d, expected 1 and 1", game.resets, game.steps)
	}
	in := game.inputs[0]
	if !in.Has(core.ActionRight) || !in.Has(core.ActionSelect) {
		t.Error("tick input should carry right and select")
	}

	update(t, m, TickMsg{})
	if game.inputs[1].Has(core.ActionSelect) {
		t.Error("input frame not cleared after the tick")
	}
}

func TestQuitSavesScore(t *testing.T) {
	store := testStore(t)
	game := &stubGame{state: core.GameState{Score: 42, Moves: 7, Level: 2}}
	m := NewModel(game, store, core.DefaultConfig(), "session-a")
	m.Init()

	m = update(t, m, TickMsg{})
	m = update(t, m, keyMsg("q"))
	if !m.IsQuitting() {
		t.Fatal("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}

	results, err := store.SessionResults("session-a")
	if err != nil {
		t.Fatalf("SessionResults: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("saved %d results, expected 1", len(results))
	}
	r := results[0]
	if r.GameID != "stub" || r.Score != 42 || r.Moves != 7 || r.Level != 2 {
		t.Errorf("saved %+v", r)
	}
}

func TestGameOverSavesOnce(t *testing.T) {
	store := testStore(t)
	game := &stubGame{state: core.GameState{Score: 5, GameOver: true}}
	m := NewModel(game, store, core.DefaultConfig(), "session-b")
	m.Init()

	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})
	update(t, m, keyMsg("q"))

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 1 {
		t.Errorf("saved %d results, expected 1", len(scores))
	}
}

func TestZeroScoreIsNotSaved(t *testing.T) {
	store := testStore(t)
	game := &stubGame{state: core.GameState{GameOver: true}}
	m := NewModel(game, store, core.DefaultConfig(), "")
	m.Init()
	update(t, m, TickMsg{})

	if high, _ := store.HighScore("stub"); high != 0 {
		t.Errorf("high score = %d, expected nothing saved", high)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	game := &stubGame{state: core.GameState{Score: 3, GameOver: true}}
	m := NewModel(game, nil, core.DefaultConfig(), "")
	m.Init()
	m = update(t, m, TickMsg{})

	game.state = core.GameState{}
	m = update(t, m, keyMsg("r"))
	m = update(t, m, TickMsg{})

	if game.resets != 2 {
		t.Errorf("resets = %d, expected 2", game.resets)
	}
	if m.scoreSaved {
		t.Error("restart should allow the next game to be saved")
	}
}

func TestResizeKeepsGame(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, nil, core.DefaultConfig(), "")
	m.Init()

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if game.resets != 1 {
		t.Errorf("resizable game was reset %d times", game.resets)
	}
	if len(game.resized) != 1 || game.resized[0] != [2]int{100, 39} {
		t.Errorf("resized = %v, expected [[100 39]]", game.resized)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestEmbeddedBackToMenu(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, nil, core.DefaultConfig(), "")
	m.embedded = true
	m.Init()

	// Back while playing belongs to the game.
	m = update(t, m, TickMsg{})
	m = update(t, m, keyMsg("esc"))
	if m.BackToMenu() {
		t.Fatal("esc during play should not leave the game")
	}

	game.state.Paused = true
	m = update(t, m, TickMsg{})
	m = update(t, m, keyMsg("esc"))
	if !m.BackToMenu() {
		t.Error("esc while paused should return to the menu")
	}
}

func TestViewShowsGameAndHelp(t *testing.T) {
	m := NewModel(&stubGame{}, nil, core.DefaultConfig(), "")
	m.Init()

	view := m.View()
	if !strings.Contains(view, "STUB BOARD") {
		t.Error("view lacks the game screen")
	}
	if !strings.Contains(view, "hint") || !strings.Contains(view, "new deal") {
		t.Error("view lacks the key help")
	}
}

func TestModeSelector(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	m := NewModeModel(80, 24)
	press := func(name string) {
		next, _ := m.Update(keyMsg(name))
		m = next.(ModeModel)
	}

	press("down")
	press("enter")
	sel := m.Selected()
	if sel == nil || sel.Mode != match3.ModeEndless || sel.GameID() != match3.IDEndless {
		t.Fatalf("selection = %+v, expected endless", sel)
	}

	m = NewModeModel(80, 24)
	press("down")
	press("down")
	press("enter")
	if m.Selected() != nil {
		t.Fatal("level list should open before a selection")
	}
	press("down")
	press("enter")
	sel = m.Selected()
	if sel == nil || sel.Mode != match3.ModeCampaign || sel.Level != 2 || sel.GameID() != match3.IDCampaign {
		t.Errorf("selection = %+v, expected campaign level 2", sel)
	}

	m = NewModeModel(80, 24)
	press("esc")
	if !m.WantsBack() || m.Selected() != nil {
		t.Error("esc should back out without a selection")
	}
}

func TestSessionFlow(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	s := NewSessionModel(nil, core.DefaultConfig())
	if s.SessionID() == "" {
		t.Fatal("session has no ID")
	}
	send := func(msg tea.Msg) {
		next, _ := s.Update(msg)
		s = next.(SessionModel)
	}

	send(keyMsg("tab"))
	if s.screen != screenScores {
		t.Fatalf("tab should open the scoreboard, screen = %v", s.screen)
	}
	send(keyMsg("esc"))
	if s.screen != screenMenu {
		t.Fatalf("esc should return to the menu, screen = %v", s.screen)
	}

	send(keyMsg("enter"))
	if s.screen != screenGame || s.game == nil {
		t.Fatalf("enter should start a game, screen = %v", s.screen)
	}
	if s.game.sessionID != s.SessionID() {
		t.Error("game does not share the session ID")
	}
	if !strings.Contains(s.View(), "Score") {
		t.Error("game view lacks the HUD")
	}

	send(keyMsg("p"))
	send(TickMsg{})
	send(keyMsg("esc"))
	if s.screen != screenMenu || s.game != nil {
		t.Fatalf("esc while paused should return to the menu, screen = %v", s.screen)
	}

	send(keyMsg("q"))
	if !s.quitting {
		t.Error("q on the menu should end the session")
	}
}
