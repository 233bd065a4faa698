package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hotcold/internal/config"
	"github.com/vovakirdan/tui-hotcold/internal/core"
)

// RoundsKeyMap defines the key bindings for the rounds table.
type RoundsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RoundsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RoundsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Back, k.Quit}}
}

// DefaultRoundsKeyMap returns default key bindings.
func DefaultRoundsKeyMap() RoundsKeyMap {
	return RoundsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "tab"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RoundsModel shows the rounds finished in this session. Nothing is kept
// after the process exits.
type RoundsModel struct {
	rounds    []core.RoundResult
	ladder    *config.Ladder
	table     table.Model
	help      help.Model
	keys      RoundsKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewRoundsModel creates a new rounds table model.
func NewRoundsModel(rounds []core.RoundResult, gameCfg config.HotColdConfig, width, height int) RoundsModel {
	m := RoundsModel{
		rounds: rounds,
		ladder: config.NewLadder(gameCfg.Tiers),
		help:   help.New(),
		keys:   DefaultRoundsKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table sized to the window.
func (m *RoundsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Level", Width: 10},
		{Title: "Moves", Width: 7},
		{Title: "Budget", Width: 8},
		{Title: "Outcome", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(core.Max(m.height-8, 3)), // Leave room for title, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table, latest round first.
func (m *RoundsModel) updateTableRows() {
	rows := make([]table.Row, 0, len(m.rounds))
	for i := len(m.rounds) - 1; i >= 0; i-- {
		r := m.rounds[i]
		budget := "-"
		if r.Budget > 0 {
			budget = fmt.Sprintf("%d", r.Budget)
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			m.ladder.Name(r.Tier),
			fmt.Sprintf("%d", r.Moves),
			budget,
			outcomeLabel(r.Outcome),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func outcomeLabel(outcome string) string {
	switch outcome {
	case "tier_up":
		return "level up"
	case "stay":
		return "retry"
	case "complete":
		return "cleared"
	default:
		return outcome
	}
}

// Init initializes the rounds model.
func (m RoundsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the rounds table.
func (m RoundsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the rounds table.
func (m RoundsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText(fmt.Sprintf("ROUNDS THIS SESSION (%d)", len(m.rounds)), m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	content := m.table.View()
	if len(m.rounds) == 0 {
		content = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4).
			Render("No targets found yet.")
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableStyle.Render(content)))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m RoundsModel) IsGoingBack() bool {
	return m.goingBack
}

// RunRounds runs the rounds table screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunRounds(rounds []core.RoundResult, gameCfg config.HotColdConfig, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewRoundsModel(rounds, gameCfg, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(RoundsModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
