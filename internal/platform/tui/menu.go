package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-hotcold/internal/config"
	"github.com/vovakirdan/tui-hotcold/internal/core"
	"github.com/vovakirdan/tui-hotcold/internal/registry"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel lets the player choose the game mode and the starting tier.
type MenuModel struct {
	modes      []registry.GameInfo
	modeCursor int
	tiers      []string
	cursor     int // Tier index; len(tiers) is Quit
	width      int
	height     int
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	hasRounds  bool
	quitting   bool
	selected   bool
	openRounds bool
}

// NewMenuModel creates a new menu model. hasRounds enables the session
// rounds table.
func NewMenuModel(gameCfg config.HotColdConfig, cfg core.RuntimeConfig, hasRounds bool) MenuModel {
	ladder := config.NewLadder(gameCfg.Tiers)
	tiers := make([]string, ladder.Len())
	for i := range tiers {
		tier := ladder.Tier(i + 1)
		budget := "no limit"
		if tier.Budget > 0 {
			budget = fmt.Sprintf("%d moves", tier.Budget)
		}
		tiers[i] = fmt.Sprintf("%-8s  radius %-3d step %-3d %s", ladder.Name(i+1), tier.Radius, tier.Step, budget)
	}

	cursor := 0
	if cfg.StartTier > 0 {
		cursor = ladder.Clamp(cfg.StartTier) - 1
	}

	return MenuModel{
		modes:     registry.List(),
		tiers:     tiers,
		cursor:    cursor,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		hasRounds: hasRounds,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.tiers) {
			m.cursor++
		}

	case MenuActionLeft:
		if len(m.modes) > 0 {
			m.modeCursor = (m.modeCursor + len(m.modes) - 1) % len(m.modes)
		}

	case MenuActionRight:
		if len(m.modes) > 0 {
			m.modeCursor = (m.modeCursor + 1) % len(m.modes)
		}

	case MenuActionSelect:
		if m.cursor == len(m.tiers) {
			m.quitting = true
			return m, tea.Quit
		}
		if len(m.modes) > 0 {
			m.selected = true
			return m, tea.Quit
		}

	case MenuActionRounds:
		if m.hasRounds {
			m.openRounds = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected || m.openRounds {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("H O T  /  C O L D"), m.width))
	b.WriteString("\n\n")

	mode := "no games registered"
	if len(m.modes) > 0 {
		mode = fmt.Sprintf("<  %s  >", m.modes[m.modeCursor].Title)
	}
	b.WriteString(centerText(mode, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuDimStyle.Render("Starting level"), m.width))
	b.WriteString("\n\n")

	for i, line := range append(m.tiers, "Quit") {
		line = fitText(line, m.width-2)
		if i == m.cursor {
			b.WriteString(centerText(menuCursorStyle.Render("> "+line), m.width))
		} else {
			b.WriteString(centerText("  "+line, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Level  |  Left/Right: Mode  |  Enter: Play  |  Q: Quit"
	if m.hasRounds {
		controls = "Up/Down: Level  |  Left/Right: Mode  |  Enter: Play  |  Tab: Rounds  |  Q: Quit"
	}
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selection returns the chosen game id and 1-based starting tier.
func (m MenuModel) Selection() (gameID string, tier int, ok bool) {
	if !m.selected || len(m.modes) == 0 {
		return "", 0, false
	}
	return m.modes[m.modeCursor].ID, m.cursor + 1, true
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsRounds returns true if user asked for the rounds table.
func (m MenuModel) WantsRounds() bool {
	return m.openRounds
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. Styled text is measured
// without its escape sequences.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// fitText truncates plain text to width display cells.
func fitText(text string, width int) string {
	if width <= 0 || runewidth.StringWidth(text) <= width {
		return text
	}
	return runewidth.Truncate(text, width, "…")
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID      string
	Tier        int
	Config      core.RuntimeConfig
	WantsRounds bool
	Quit        bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(gameCfg config.HotColdConfig, cfg core.RuntimeConfig, hasRounds bool) (MenuResult, error) {
	model := NewMenuModel(gameCfg, cfg, hasRounds)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsRounds():
		result.WantsRounds = true
	case m.IsQuitting():
		result.Quit = true
	default:
		id, tier, ok := m.Selection()
		if !ok {
			result.Quit = true
			break
		}
		result.GameID = id
		result.Tier = tier
	}
	return result, nil
}
