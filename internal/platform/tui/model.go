package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsim/internal/config"
	"github.com/vovakirdan/gridsim/internal/host"
	"github.com/vovakirdan/gridsim/internal/render"
	"github.com/vovakirdan/gridsim/internal/sim"
	"github.com/vovakirdan/gridsim/internal/storage"
)

// RunSaver records finished runs.
type RunSaver interface {
	SaveRun(run storage.RunEntry) (int64, error)
}

// Options configures a terminal session.
type Options struct {
	Scenario string           // ID used for the HUD and run history
	Title    string           // display name, defaults to Scenario
	Factory  func() sim.State // builds the initial state, also used on restart
	Config   config.Config
	Store    RunSaver    // optional
	Logger   *log.Logger // optional
}

// Model is the Bubble Tea model for running a scenario.
type Model struct {
	scenario string
	title    string
	factory  func() sim.State

	state     sim.State
	drawCalls []int

	pending  sim.Vector2 // host-space input for the next frame
	tickRate int

	keys   KeyMap
	help   help.Model
	theme  Theme
	store  RunSaver
	logger *log.Logger

	width    int
	height   int
	saved    bool // whether the current run has been recorded
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given scenario.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	title := opts.Title
	if title == "" {
		title = opts.Scenario
	}

	h := help.New()
	h.ShowAll = false

	state := opts.Factory()
	return Model{
		scenario:  opts.Scenario,
		title:     title,
		factory:   opts.Factory,
		state:     state,
		drawCalls: state.Draw(),
		tickRate:  opts.Config.TickRate,
		keys:      NewKeyMap(opts.Config.Keys),
		help:      h,
		theme:     DefaultTheme(),
		store:     opts.Store,
		logger:    logger,
	}
}

// State returns the current simulation state.
func (m Model) State() sim.State {
	return m.state
}

// Init starts the frame clock.
func (m Model) Init() tea.Cmd {
	m.logger.Info("run started", "scenario", m.scenario, "tick_rate", m.tickRate)
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.finish("quit")
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.finish("restart")
		m.restart()
		return m, nil
	}

	// Last movement key before a tick wins.
	if dir, ok := m.keys.Direction(msg); ok {
		m.pending = dir
	}
	return m, nil
}

// handleTick advances the simulation by one frame unless the run is over.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.Over() {
		return m, tickCmd(m.tickRate)
	}

	before := m.state.Summary()
	out := sim.GameLoop(host.FromHostInput(m.pending), m.state)
	m.state = out.State
	m.drawCalls = out.DrawCalls
	m.pending = sim.Vector2{}

	after := m.state.Summary()
	if before.PlayerAlive && !after.PlayerAlive {
		m.logger.Debug("player died", "frame", after.Frame)
	}
	if after.EnemiesDefeated > before.EnemiesDefeated {
		m.logger.Debug("enemy defeated", "frame", after.Frame, "left", after.EnemiesLeft())
	}

	if after.Over() {
		if after.PlayerAlive {
			m.finish("victory")
		} else {
			m.finish("defeat")
		}
	}

	return m, tickCmd(m.tickRate)
}

// Over reports whether the current run has ended.
func (m Model) Over() bool {
	return m.state.Summary().Over()
}

func (m *Model) restart() {
	m.state = m.factory()
	m.drawCalls = m.state.Draw()
	m.pending = sim.Vector2{}
	m.saved = false
	m.logger.Info("run restarted", "scenario", m.scenario)
}

// finish records the current run once. Runs with no frames are not recorded.
func (m *Model) finish(reason string) {
	if m.saved || m.state.Frame == 0 {
		return
	}
	m.saved = true

	sum := m.state.Summary()
	m.logger.Info("run ended",
		"scenario", m.scenario,
		"reason", reason,
		"frames", sum.Frame,
		"survived", sum.PlayerAlive,
		"enemies_defeated", sum.EnemiesDefeated,
		"enemies_total", sum.EnemiesTotal,
	)

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRun(storage.RunFromSummary(m.scenario, sum)); err != nil {
		m.logger.Warn("cannot save run", "scenario", m.scenario, "err", err)
	}
}

// View renders the current frame, HUD and help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	parts := []string{m.renderHUD()}

	canvas, err := render.Rasterize(m.drawCalls, sim.TileSize, m.state.Grid.Width, m.state.Grid.Height)
	if err != nil {
		parts = append(parts, m.theme.HUDDanger.Render(err.Error()))
	} else {
		parts = append(parts, RenderCanvas(canvas))
	}

	if m.Over() {
		parts = append(parts, m.renderOverlay())
	}

	parts = append(parts, m.theme.Help.Render(m.help.View(m.keys)))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderHUD renders the status line above the grid.
func (m Model) renderHUD() string {
	sum := m.state.Summary()
	sep := m.theme.HUDSeparator.Render(" | ")

	health := m.theme.HUDValue.Render(fmt.Sprintf("%d", sum.PlayerHealth))
	if sum.PlayerHealth <= sim.DefaultHealth/3 {
		health = m.theme.HUDDanger.Render(fmt.Sprintf("%d", sum.PlayerHealth))
	}

	fields := []string{
		m.theme.HUDTitle.Render(strings.ToUpper(m.title)),
		m.theme.HUDLabel.Render("Frame ") + m.theme.HUDValue.Render(fmt.Sprintf("%d", sum.Frame)),
		m.theme.HUDLabel.Render("HP ") + health,
		m.theme.HUDLabel.Render("Enemies ") + m.theme.HUDValue.Render(fmt.Sprintf("%d/%d", sum.EnemiesLeft(), sum.EnemiesTotal)),
	}
	return strings.Join(fields, sep)
}

// renderOverlay renders the end-of-run box.
func (m Model) renderOverlay() string {
	sum := m.state.Summary()

	headline := m.theme.OverlayWin.Render("VICTORY")
	if !sum.PlayerAlive {
		headline = m.theme.OverlayLose.Render("DEFEATED")
	}
	detail := m.theme.OverlayText.Render(fmt.Sprintf(
		"%d frames, %d/%d enemies defeated\npress %s to restart",
		sum.Frame, sum.EnemiesDefeated, sum.EnemiesTotal, m.keys.Restart.Help().Key,
	))
	return m.theme.OverlayBorder.Render(lipgloss.JoinVertical(lipgloss.Center, headline, detail))
}

// Run starts the Bubble Tea program for a scenario.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
