package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spacey-invader/internal/core"
	"github.com/vovakirdan/spacey-invader/internal/invaders"
	"github.com/vovakirdan/spacey-invader/internal/logging"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

const defaultHoldTime = 160 * time.Millisecond

// Options configures the terminal frontend.
type Options struct {
	Keys          KeyMap
	HoldTime      time.Duration // How long a press counts as held
	ScreenshotDir string        // Empty disables screenshots
	Logger        *log.Logger
}

// Model is the Bubble Tea model running one game session.
type Model struct {
	game   *invaders.Game
	screen *core.Screen
	config core.RuntimeConfig
	opts   Options

	help     help.Model
	held     *heldKeys
	oneShot  core.InputFrame // Pause and restart, consumed by the next tick
	fps      *fpsMeter
	lastTick time.Time
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *invaders.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if len(opts.Keys.Quit.Keys()) == 0 {
		opts.Keys = DefaultKeyMap()
	}
	if opts.HoldTime <= 0 {
		opts.HoldTime = defaultHoldTime
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, screenRows(cfg.ScreenH)),
		config:  cfg,
		opts:    opts,
		help:    h,
		held:    newHeldKeys(opts.HoldTime),
		oneShot: core.NewInputFrame(),
		fps:     &fpsMeter{},
	}
}

// screenRows leaves the last terminal row for the help line.
func screenRows(height int) int {
	return core.Max(height-1, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.opts.Logger.Info("session started", "seed", m.config.Seed, "tick_rate", m.config.TickRate)

	// Start the tick loop
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
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.opts.Keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.opts.Keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		s := m.game.State()
		m.opts.Logger.Info("session ended", "score", s.Score, "ticks", s.Tick)
		return m, tea.Quit
	case core.ActionPause, core.ActionRestart:
		m.oneShot.Set(action)
		m.held.Reset()
	case core.ActionNone:
	default:
		m.held.Press(action, time.Now())
	}

	return m, nil
}

// handleResize processes window resize events. The playfield keeps its
// size in game units, so the session survives a resize.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, screenRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the game by the real time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := time.Second / time.Duration(m.config.TickRate)
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	in := m.oneShot.Clone()
	m.held.Apply(now, &in)
	m.oneShot.Clear()

	m.game.SetFPS(m.fps.Frame(now))
	m.game.Step(in, elapsed)

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	if m.opts.ScreenshotDir == "" {
		return
	}
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		m.opts.Logger.Error("screenshot failed", "err", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(m.opts.ScreenshotDir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Error("screenshot failed", "err", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.opts.Keys))
}

// Run starts the Bubble Tea program for the given game.
func Run(game *invaders.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
