package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/typeracer/internal/core"
	"github.com/vovakirdan/typeracer/internal/racer"
)

// helpHeight is the number of rows below the playfield used by the help line.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures a Model.
type Options struct {
	Sink          *SessionSink // Receives finished sessions; may be nil
	Logger        *log.Logger
	ScreenshotDir string // Empty disables ctrl+s
}

// Model is the Bubble Tea model running one typing racer game.
type Model struct {
	game       *racer.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	opts       Options
	logger     *log.Logger
	state      racer.State
	quitting   bool
}

// NewModel creates a model for the game and resets it for the given screen.
func NewModel(game *racer.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	fieldH := max(cfg.ScreenH-helpHeight, 1)
	game.Reset(core.RuntimeConfig{
		ScreenW:  cfg.ScreenW,
		ScreenH:  fieldH,
		TickRate: cfg.TickRate,
		Seed:     cfg.Seed,
	})

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, fieldH),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		opts:       opts,
		logger:     logger,
		state:      game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues keyboard input for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}
	m.keyMapper.MapKeyToFrame(msg, &m.inputFrame)
	return m, nil
}

// handleResize keeps the game running; words keep their positions.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	fieldH := max(msg.Height-helpHeight, 1)
	m.screen.Resize(msg.Width, fieldH)
	m.game.Resize(msg.Width, fieldH)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step with the input gathered since the last one.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	if result.State != m.state {
		m.logger.Debug("state changed", "from", m.state, "to", result.State)
		m.state = result.State
	}
	m.logEvents(result.Events)

	if result.Report != nil {
		m.opts.Sink.Flush(context.Background(), *result.Report)
	}

	if result.Quit {
		m.quit()
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

func (m Model) logEvents(events []racer.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case racer.EventMatch:
			m.logger.Debug("word typed", "word", ev.Word, "points", ev.Points)
		case racer.EventMiss:
			m.logger.Debug("miss", "input", ev.Word)
		case racer.EventLifeLost:
			m.logger.Debug("word escaped", "word", ev.Word, "lives", ev.Value)
		case racer.EventWave:
			m.logger.Debug("wave spawned", "size", ev.Value)
		case racer.EventGameOver:
			m.logger.Info("game over", "score", ev.Value)
		default:
			m.logger.Debug(ev.Kind.String())
		}
	}
}

// quit stores the high score before the program exits.
func (m *Model) quit() {
	m.quitting = true
	m.saveHighScore()
}

func (m Model) saveHighScore() {
	saved, err := m.game.Quit()
	if err != nil {
		m.logger.Warn("could not save high score", "error", err)
		return
	}
	if saved {
		m.logger.Info("new high score", "score", m.game.HighScore())
	}
}

// Close finishes the game after the program has stopped, whether or not the
// player quit: an unfinished session is flushed and the high score saved.
// Disconnected SSH clients and signals end the program without a quit key.
func (m Model) Close() {
	if r := m.game.Abandon(); r != nil {
		m.logger.Info("session abandoned", "score", r.TotalScore)
		m.opts.Sink.Flush(context.Background(), *r)
	}
	m.saveHighScore()
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	if m.opts.ScreenshotDir == "" {
		return
	}
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot dir", "error", err)
		return
	}

	filename := fmt.Sprintf("typeracer_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(m.opts.ScreenshotDir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the game and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	helpLine := helpStyle.Render(m.help.View(stateHelp{keys: m.keyMapper.Keys(), state: m.game.State()}))
	return RenderScreen(m.screen) + "\n" + helpLine
}

// Game returns the running game.
func (m Model) Game() *racer.Game {
	return m.game
}

// Run starts the Bubble Tea program with the given model.
func Run(model Model) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks on the pause overlay buttons
	)

	_, err := p.Run()
	model.Close()
	return err
}
