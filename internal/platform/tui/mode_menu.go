package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akarpov/snaketui/internal/config"
	"github.com/akarpov/snaketui/internal/core"
)

// ModeSelection holds the user's choices from the mode menu.
type ModeSelection struct {
	GameID     string // "snake" or "snake_wrap"
	Difficulty config.DifficultyPreset
}

// ModeMenuModel lets users choose boundary behavior and difficulty.
type ModeMenuModel struct {
	cursor       int
	diffCursor   int
	inDiffSelect bool
	width        int
	height       int
	keyMapper    *KeyMapper
	selection    ModeSelection
	choosing     bool
	quitting     bool
	back         bool
}

var difficulties = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

// NewModeMenuModel creates a new mode selection model.
func NewModeMenuModel(width, height int) ModeMenuModel {
	return ModeMenuModel{
		cursor:     0,
		diffCursor: 1, // Normal
		width:      width,
		height:     height,
		keyMapper:  NewKeyMapper(),
		choosing:   true,
	}
}

// Init initializes the model.
func (m ModeMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ModeMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m ModeMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inDiffSelect {
		return m.handleDiffSelectKey(action)
	}
	return m.handleModeSelectKey(action)
}

func (m ModeMenuModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < 1 { // 2 options: Walled, Wrap-Around
			m.cursor++
		}
	case MenuActionSelect:
		if m.cursor == 0 {
			m.selection.GameID = "snake"
		} else {
			m.selection.GameID = "snake_wrap"
		}
		m.inDiffSelect = true
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m ModeMenuModel) handleDiffSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.diffCursor > 0 {
			m.diffCursor--
		}
	case MenuActionDown:
		if m.diffCursor < len(difficulties)-1 {
			m.diffCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection.Difficulty = difficulties[m.diffCursor]
		return m, tea.Quit
	case MenuActionBack:
		m.inDiffSelect = false
	}

	return m, nil
}

// View renders the mode/difficulty selection.
func (m ModeMenuModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inDiffSelect {
		return m.viewDiffSelect()
	}
	return m.viewModeSelect()
}

func (m ModeMenuModel) viewModeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("S N A K E", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select boundary behavior:", m.width))
	b.WriteString("\n\n")

	modes := []string{
		"Walled (edges end the game)",
		"Wrap-Around (edges teleport)",
	}

	for i, mode := range modes {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, mode), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m ModeMenuModel) viewDiffSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT DIFFICULTY", m.width))
	b.WriteString("\n\n")

	for i, diff := range difficulties {
		cursor := "  "
		if i == m.diffCursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%s", cursor, diff)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m ModeMenuModel) Selected() *ModeSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m ModeMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m ModeMenuModel) WantsBack() bool {
	return m.back
}

// RunModeSelector runs the boundary/difficulty selection and returns the selection.
// A nil selection means the user backed out or quit. The configured default
// boundary mode preselects the cursor.
func RunModeSelector(cfg core.RuntimeConfig) (*ModeSelection, core.RuntimeConfig, error) {
	model := NewModeMenuModel(cfg.ScreenW, cfg.ScreenH)
	if snakeCfg, err := config.LoadSnake(""); err == nil && snakeCfg.Board.DefaultMode == "wrap" {
		model.cursor = 1
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(ModeMenuModel)
	if !ok {
		return nil, cfg, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
