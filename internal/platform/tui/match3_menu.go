package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/match3/internal/core"
	"github.com/vovakirdan/match3/internal/games/match3"
)

// Selection holds what the player picked before a game starts.
type Selection struct {
	Mode  match3.Mode
	Level int // 0 = from the first level, otherwise 1-based
}

// GameID returns the registry ID that plays the selection.
func (s Selection) GameID() string {
	if s.Mode == match3.ModeCampaign {
		return match3.IDCampaign
	}
	return match3.IDEndless
}

const modeOptions = 3 // Campaign, Endless, Select Level

// ModeModel lets the player choose a mode and a starting level.
type ModeModel struct {
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     Selection
	choosing      bool
	quitting      bool
	back          bool

	names   []string
	targets []int
	moves   []int
}

// NewModeModel creates a mode selector listing the configured campaign.
func NewModeModel(width, height int) ModeModel {
	levels := match3.Levels()
	m := ModeModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
		names:     match3.LevelNames(),
		targets:   make([]int, len(levels)),
		moves:     make([]int, len(levels)),
	}
	for i, lvl := range levels {
		m.targets[i] = lvl.TargetScore
		m.moves[i] = lvl.Moves
	}
	return m
}

// Init initializes the model.
func (m ModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelSelectKey(action)
		}
		return m.handleModeSelectKey(action)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m ModeModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = min(m.cursor+1, modeOptions-1)
	case MenuActionSelect:
		switch m.cursor {
		case 0:
			m.choosing = false
			m.selection = Selection{Mode: match3.ModeCampaign}
			return m, tea.Quit
		case 1:
			m.choosing = false
			m.selection = Selection{Mode: match3.ModeEndless}
			return m, tea.Quit
		case 2:
			if len(m.names) > 0 {
				m.inLevelSelect = true
				m.levelCursor = 0
			}
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

func (m ModeModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.levelCursor = max(m.levelCursor-1, 0)
	case MenuActionDown:
		m.levelCursor = min(m.levelCursor+1, len(m.names)-1)
	case MenuActionSelect:
		m.choosing = false
		m.selection = Selection{Mode: match3.ModeCampaign, Level: m.levelCursor + 1}
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}
	return m, nil
}

// View renders the mode or level list.
func (m ModeModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewModeSelect()
}

func (m ModeModel) viewModeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("M A T C H - 3"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	modes := []string{
		fmt.Sprintf("Campaign (%d levels)", len(m.names)),
		"Endless Mode",
		"Select Level...",
	}
	for i, mode := range modes {
		line := "  " + mode
		if i == m.cursor {
			line = menuPickStyle.Render("> " + mode)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))
	return b.String()
}

func (m ModeModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("SELECT LEVEL"), m.width))
	b.WriteString("\n\n")

	for i, name := range m.names {
		line := fmt.Sprintf("%2d. %-12s target %-5d moves %d", i+1, name, m.targets[i], m.moves[i])
		if i == m.levelCursor {
			line = menuPickStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))
	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m ModeModel) Selected() *Selection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m ModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m ModeModel) WantsBack() bool {
	return m.back
}

// RunModeSelector runs the mode selection. A nil selection means the player
// backed out or quit.
func RunModeSelector(cfg core.RuntimeConfig) (*Selection, error) {
	p := tea.NewProgram(NewModeModel(cfg.ScreenW, cfg.ScreenH), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(ModeModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}
	return m.Selected(), nil
}
