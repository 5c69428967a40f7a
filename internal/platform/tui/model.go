package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var (
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	tooSmallStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
)

// screenshotKey saves the current frame as text.
var screenshotKey = key.NewBinding(
	key.WithKeys("ctrl+s"),
	key.WithHelp("ctrl+s", "screenshot"),
)

// Model is the Bubble Tea model that displays a game and forwards input.
// The game advances on its own clock; the model only redraws at the
// refresh rate.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	mapper   *KeyMapper
	help     help.Model
	logger   *log.Logger
	start    []core.Command // replayed after every Reset
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game. The start
// commands are sent to the game right after it is reset, e.g. to skip the
// mode menu.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger, start ...core.Command) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.Default()
	}

	keys := DefaultKeyMap()
	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		keys:   keys,
		mapper: NewKeyMapper(keys),
		help:   help.New(),
		logger: logger,
		start:  start,
	}
}

// Init resets the game and starts the refresh loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	for _, cmd := range m.start {
		m.game.Handle(cmd)
	}
	return refreshCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case RefreshMsg:
		return m, refreshCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, screenshotKey):
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		}
		return m, nil
	}

	cmd := m.mapper.MapKey(msg)
	switch cmd.Kind {
	case core.CmdQuit:
		m.quitting = true
		m.game.Close()
		return m, tea.Quit
	case core.CmdNone:
		return m, nil
	}

	// Turns arrive on every keypress; only log the rest.
	if !cmd.IsTurn() {
		m.logger.Debug("command", "kind", cmd.Kind, "mode", cmd.Mode)
	}
	m.game.Handle(cmd)
	return m, nil
}

// saveScreenshot writes the current frame to ~/.snake/screenshots.
func (m Model) saveScreenshot() error {
	Rasterize(m.game.Frame(), m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("tui: screenshot: %w", err)
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("tui: screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("tui: screenshot: %w", err)
	}
	m.logger.Info("screenshot saved", "path", path)
	return nil
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	frame := m.game.Frame()
	helpView := helpStyle.Render(m.help.View(m.keys))

	w, h := FrameSize(frame.Grid)
	needH := h + lipgloss.Height(helpView)
	if m.config.ScreenW > 0 && (m.config.ScreenW < w || m.config.ScreenH < needH) {
		return tooSmallView(w, needH, m.config.ScreenW, m.config.ScreenH)
	}

	Rasterize(frame, m.screen)
	return RenderScreen(m.screen) + "\n" + helpView
}

func tooSmallView(needW, needH, haveW, haveH int) string {
	var b strings.Builder
	b.WriteString(tooSmallStyle.Render("Window too small"))
	fmt.Fprintf(&b, "\nneed %dx%d, have %dx%d", needW, needH, haveW, haveH)
	b.WriteString("\nResize the terminal or use a smaller grid (--config)")
	return b.String()
}

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger, start ...core.Command) error {
	model := NewModel(game, cfg, logger, start...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	game.Close()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
