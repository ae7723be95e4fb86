package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/audio"
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// Options configures a Model.
type Options struct {
	Config config.Config
	Screen core.RuntimeConfig // Initial terminal size; TickRate is taken from Config
	Logger *log.Logger        // Nil discards
	Sound  pong.SoundSink     // Nil silences bounces

	// ScreenshotDir receives ctrl+s dumps. Empty uses ~/.pong/screenshots.
	ScreenshotDir string

	// Remote disables the keys that act on the host machine
	// (screenshots and suspend).
	Remote bool
}

// Model is the Bubble Tea model hosting one pong table.
type Model struct {
	game    *pong.Game
	screen  *core.Screen
	clock   *pong.FrameClock
	hold    *HoldTracker
	keys    KeyMap
	help    help.Model
	config  core.RuntimeConfig
	display config.DisplayConfig
	logger  *log.Logger
	shotDir string

	pending  core.Intent // Launch/reset/quit requests queued for the next frame
	quitting bool
}

// NewModel creates a new Bubble Tea model with a fresh idle table.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	shotDir := opts.ScreenshotDir
	if shotDir == "" && config.DataDir() != "" {
		shotDir = filepath.Join(config.DataDir(), "screenshots")
	}
	if opts.Remote {
		shotDir = ""
	}

	rc := opts.Screen
	rc.TickRate = opts.Config.Display.TickRate
	if rc.TickRate <= 0 {
		rc.TickRate = core.DefaultConfig().TickRate
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		game:    pong.New(opts.Sound),
		clock:   &pong.FrameClock{},
		hold:    NewHoldTracker(opts.Config.Controls.HoldWindow()),
		keys:    DefaultKeyMap(),
		help:    h,
		config:  rc,
		display: opts.Config.Display,
		logger:  logger,
		shotDir: shotDir,
	}
	if opts.Remote {
		m.keys.Screenshot.SetEnabled(false)
		m.keys.Suspend.SetEnabled(false)
	}
	m.screen = core.NewScreen(rc.ScreenW, m.fieldHeight(rc.ScreenH))
	m.help.Width = rc.ScreenW
	return m
}

// Game returns the hosted table.
func (m Model) Game() *pong.Game {
	return m.game
}

// Screen returns the playfield buffer as of the last View.
func (m Model) Screen() *core.Screen {
	return m.screen
}

// fieldHeight is the terminal height left for the playfield.
func (m Model) fieldHeight(total int) int {
	if m.display.ShowHelp {
		total--
	}
	return max(total, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("table ready", "tick_rate", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case tea.BlurMsg:
		// Releases never arrive while unfocused.
		m.hold.Clear()

	case tea.ResumeMsg:
		// Do not integrate the time spent suspended.
		m.clock.Restart()
		m.hold.Clear()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.pending.Quit = true
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
	case key.Matches(msg, m.keys.Suspend):
		return m, tea.Suspend
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.P1Up):
		m.hold.Press(core.Player1, core.DirUp, now)
	case key.Matches(msg, m.keys.P1Down):
		m.hold.Press(core.Player1, core.DirDown, now)
	case key.Matches(msg, m.keys.P2Up):
		m.hold.Press(core.Player2, core.DirUp, now)
	case key.Matches(msg, m.keys.P2Down):
		m.hold.Press(core.Player2, core.DirDown, now)
	case key.Matches(msg, m.keys.Launch):
		m.pending.Launch = true
	case key.Matches(msg, m.keys.Reset):
		m.pending.Reset = true
	}
	return m, nil
}

// handleResize processes window resize events.
// The table lives in world units, so a resize only rescales the drawing.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, m.fieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	in := m.pending
	if in.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	in.Paddle1 = m.hold.Direction(core.Player1, now)
	in.Paddle2 = m.hold.Direction(core.Player2, now)

	res := m.game.Step(in, m.clock.Tick(now))

	m.hold.EndFrame()
	m.pending = core.Intent{}
	m.logStep(res)

	return m, tickCmd(m.config.TickRate)
}

// logStep records rally transitions.
func (m Model) logStep(res pong.StepResult) {
	frame := m.game.Frame()
	if res.WasReset {
		m.logger.Info("table reset", "frame", frame)
	}
	if res.Launched {
		m.logger.Info("ball served", "frame", frame)
	}
	if res.Bounces() > 0 {
		m.logger.Debug("bounce", "frame", frame, "paddle", res.PaddleHits, "wall", res.WallBounces)
	}
	if res.RallyEnded {
		s := m.game.State()
		m.logger.Info("rally ended", "frame", frame, "x", fmt.Sprintf("%.2f", s.Ball.X), "y", fmt.Sprintf("%.2f", s.Ball.Y))
	}
}

// saveScreenshot saves the current playfield to a file.
func (m *Model) saveScreenshot() {
	if m.shotDir == "" {
		return
	}
	pong.RenderSnapshot(m.screen, m.game.Snapshot(), m.display.ShowNet)

	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(m.shotDir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("pong_%s_%d.txt", timestamp, m.game.Frame()))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	pong.RenderSnapshot(m.screen, m.game.Snapshot(), m.display.ShowNet)
	out := RenderScreen(m.screen)

	if m.display.ShowHelp {
		out += "\n" + footerStyle.Render(m.help.View(m.keys))
	}
	return out
}

// newSound picks the bounce sink for a terminal writing to w.
// The returned function releases it.
func newSound(enabled bool, w io.Writer) (pong.SoundSink, func()) {
	if !enabled || w == nil {
		return audio.Nop{}, func() {}
	}
	bell := audio.NewBell(w, audio.DefaultBuffer)
	return bell, func() { _ = bell.Close() }
}

// Run plays a local table in the current terminal until the user quits.
func Run(cfg config.Config, logger *log.Logger, screen core.RuntimeConfig) error {
	sound, release := newSound(cfg.Audio.Bell, os.Stdout)
	defer release()

	model := NewModel(Options{
		Config: cfg,
		Screen: screen,
		Logger: logger,
		Sound:  sound,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),   // Use alternate screen buffer
		tea.WithReportFocus(), // Release paddles when the terminal loses focus
	)

	_, err := p.Run()
	return err
}
