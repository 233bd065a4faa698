package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-hotcold/internal/core"
	"github.com/vovakirdan/tui-hotcold/internal/registry"
)

// noticeTicks is how long a status notice stays in the footer.
const noticeTicks = 45

// Sound plays the game's audio. *audio.Jukebox implements it.
type Sound interface {
	StartMusic()
	StopMusic()
	Celebrate()
}

type silence struct{}

func (silence) StartMusic() {}
func (silence) StopMusic()  {}
func (silence) Celebrate()  {}

// Options carries the collaborators of a game session.
// Zero values mean no logging, no sound and glyphs detected from the locale.
type Options struct {
	Logger *log.Logger
	Sound  Sound
	Glyphs *Glyphs
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	help       help.Model
	logger     *log.Logger
	sound      Sound
	glyphs     Glyphs

	status  core.Status
	rounds  []core.RoundResult
	roundID string
	notice  string
	noticeT int

	err      error
	quitting bool
	back     bool
}

// NewModel creates a new Bubble Tea model for a game that has been Reset.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sound := opts.Sound
	if sound == nil {
		sound = silence{}
	}
	glyphs := DetectGlyphs()
	if opts.Glyphs != nil {
		glyphs = *opts.Glyphs
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 1)),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       h,
		logger:     logger,
		sound:      sound,
		glyphs:     glyphs,
		status:     game.Status(),
		roundID:    uuid.NewString(),
	}
}

// Init starts the music and the tick loop.
func (m Model) Init() tea.Cmd {
	m.sound.StartMusic()
	m.logger.Info("round started", "round", m.roundID, "game", m.game.ID(), "tier", m.status.Tier)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Game keys are collected into the
// input frame and applied on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()
	switch {
	case key.Matches(msg, keys.Copy):
		m.copyScreen()
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	quit := m.keyMapper.MapKeyToFrame(msg, &m.inputFrame)
	back := m.inputFrame.Has(core.ActionBack)
	if !quit && !back {
		return m, nil
	}

	// Input collected during this tick is still applied before leaving.
	m = m.advance()
	if m.err != nil {
		return m, tea.Quit
	}
	m.sound.StopMusic()
	if quit {
		m.quitting = true
		m.logger.Info("quit", "round", m.roundID, "moves", m.status.Moves)
	} else {
		m.back = true
	}
	return m, tea.Quit
}

// handleResize processes window resize events. The game draws in arena
// coordinates, so only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m = m.advance()
	if m.err != nil {
		return m, tea.Quit
	}

	// A completed game accepts no more input; the loop can rest.
	if m.status.Complete {
		return m, nil
	}
	return m, tickCmd(m.config.TickRate)
}

// advance steps the game once with the collected input frame.
func (m Model) advance() Model {
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	if result.Err != nil {
		m.logger.Error("cannot continue", "round", m.roundID, "error", result.Err)
		m.err = result.Err
		m.quitting = true
		m.sound.StopMusic()
		return m
	}
	m.status = result.Status

	if result.Round != nil {
		m.rounds = append(m.rounds, *result.Round)
		m.logger.Info("target found",
			"round", m.roundID,
			"tier", result.Round.Tier,
			"moves", result.Round.Moves,
			"budget", result.Round.Budget,
			"outcome", result.Round.Outcome,
		)
	}

	switch result.Cue {
	case core.CueTierUp, core.CueRetry, core.CueRoundStart:
		m.roundID = uuid.NewString()
		m.logger.Info("round started", "round", m.roundID, "tier", m.status.Tier, "cue", result.Cue)
	case core.CueComplete:
		m.logger.Info("all tiers cleared", "round", m.roundID, "rounds", len(m.rounds))
		m.sound.StopMusic()
		m.sound.Celebrate()
	}

	if m.noticeT > 0 {
		m.noticeT--
		if m.noticeT == 0 {
			m.notice = ""
		}
	}
	return m
}

// copyScreen copies the current frame as plain text to the clipboard.
func (m *Model) copyScreen() {
	m.game.Render(m.screen)
	text := m.glyphs.MapString(m.screen.String())

	if err := clipboard.WriteAll(text); err != nil {
		m.logger.Warn("failed to copy screen to clipboard", "error", err)
		m.setNotice(fmt.Sprintf("Copy failed: %v", err))
		return
	}
	m.logger.Debug("copied screen to clipboard", "bytes", len(text))
	m.setNotice("Screen copied to clipboard")
}

func (m *Model) setNotice(text string) {
	m.notice = text
	m.noticeT = noticeTicks
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}
	if m.status.Complete {
		return m.celebrationView()
	}

	m.game.Render(m.screen)

	footerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	footer := m.help.View(m.keyMapper.Keys())
	if m.notice != "" {
		footer = m.notice
	}
	if m.help.ShowAll {
		// Full help spans several lines; keep the total height.
		lines := strings.Count(footer, "\n")
		return trimLines(RenderScreen(m.screen, m.glyphs), lines) + "\n" + footerStyle.Render(m.glyphs.MapString(footer))
	}
	return RenderScreen(m.screen, m.glyphs) + "\n" + footerStyle.Render(m.glyphs.MapString(footer))
}

// celebrationView is shown once every tier has been cleared.
func (m Model) celebrationView() string {
	star := m.glyphs.MapString("★")
	total := 0
	for _, r := range m.rounds {
		total += r.Moves
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")).
		Render(fmt.Sprintf("%s  YOU FOUND THEM ALL  %s", star, star))
	body := fmt.Sprintf("%d rounds, %d moves in total", len(m.rounds), total)
	hint := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("esc: menu  q: quit")

	border := lipgloss.RoundedBorder()
	if m.glyphs.ASCII() {
		border = asciiBorder
	}
	box := lipgloss.NewStyle().
		Border(border).
		BorderForeground(lipgloss.Color("10")).
		Padding(1, 4).
		Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center, title, "", body, "", hint))

	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, box)
}

var asciiBorder = lipgloss.Border{
	Top:         "-",
	Bottom:      "-",
	Left:        "|",
	Right:       "|",
	TopLeft:     "+",
	TopRight:    "+",
	BottomLeft:  "+",
	BottomRight: "+",
}

// trimLines drops n lines from the end of s.
func trimLines(s string, n int) string {
	if n <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	if n >= len(lines) {
		return ""
	}
	return strings.Join(lines[:len(lines)-n], "\n")
}

// Result reports how a game session ended.
type Result struct {
	Rounds []core.RoundResult
	Status core.Status
	Config core.RuntimeConfig // May have been updated by resize
	Back   bool               // Player asked for the menu
}

// Run resets the game and runs it until the player quits or goes back.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (Result, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := game.Reset(cfg); err != nil {
		return Result{Config: cfg}, err
	}
	if opts.Logger != nil {
		opts.Logger.Info("game started", "game", game.ID(), "seed", cfg.Seed, "tier", game.Status().Tier)
	}

	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return Result{Config: cfg}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return Result{Config: cfg}, nil
	}

	result := Result{
		Rounds: m.rounds,
		Status: m.status,
		Config: m.config,
		Back:   m.back,
	}
	return result, m.err
}
