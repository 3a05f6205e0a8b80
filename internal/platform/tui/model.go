package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/loop"
	"github.com/vovakirdan/skyhop/internal/registry"
	"github.com/vovakirdan/skyhop/internal/storage"
)

// ConfigReloadMsg is sent when the watched config file changes on disk.
type ConfigReloadMsg struct {
	Path string
}

// GameOptions configures a terminal game session.
type GameOptions struct {
	Cols, Rows int // Terminal size in cells
	TickRate   int
	Seed       int64 // 0 = time-based
	Terminal   config.TerminalConfig
	Player     string
	Store      *storage.Store
	Logger     *log.Logger
	Standalone bool // Quit the program instead of returning to a menu
}

// worldConfig sizes the pixel world so that it exactly covers the terminal.
func (o GameOptions) worldConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		WorldW:   int(float64(o.Cols) * o.Terminal.CellWidth),
		WorldH:   int(float64(o.Rows) * o.Terminal.CellHeight),
		TickRate: o.TickRate,
		Seed:     o.Seed,
	}
}

// GameModel is the Bubble Tea model that runs one game mode in the terminal.
// Ticks stop once the player dies and resume on restart.
type GameModel struct {
	runner     *loop.Runner
	screen     *core.Screen
	keys       *keyHold
	keyMapper  *KeyMapper
	opts       GameOptions
	logger     *log.Logger
	saved      bool // Whether the current run has been recorded
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model and starts the first run.
func NewGameModel(game registry.Game, opts GameOptions) GameModel {
	if opts.Terminal.CellWidth <= 0 || opts.Terminal.CellHeight <= 0 {
		opts.Terminal = config.DefaultSkyhopConfig().Terminal
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen := core.NewScreen(opts.Cols, opts.Rows)
	canvas := core.NewCellCanvas(screen, opts.Terminal.CellWidth, opts.Terminal.CellHeight)

	return GameModel{
		runner:    loop.New(game, canvas, opts.worldConfig(), loop.WithLogger(logger)),
		screen:    screen,
		keys:      newKeyHold(opts.Terminal.HoldTicks),
		keyMapper: NewKeyMapper(),
		opts:      opts,
		logger:    logger,
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.opts.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case ConfigReloadMsg:
		m.logger.Info("config changed, restarting run", "path", msg.Path)
		return m.restart()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionJump, core.ActionLeft, core.ActionRight:
		m.keys.Press(action)

	case core.ActionRestart:
		if !m.runner.Running() {
			return m.restart()
		}

	case core.ActionBack:
		if !m.runner.Running() {
			m.backToMenu = true
			if m.opts.Standalone {
				m.quitting = true
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

// handleResize resizes the screen and restarts the run in the new world size.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.opts.Cols && msg.Height == m.opts.Rows {
		return m, nil
	}
	m.opts.Cols = msg.Width
	m.opts.Rows = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// A finished run keeps its final frame until the player restarts.
	if !m.runner.Running() {
		m.runner.Redraw()
		return m, nil
	}
	m.runner.Restart(m.opts.worldConfig())
	return m, nil
}

// handleTick steps the simulation with this tick's held keys.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.runner.Frame(m.keys.Frame()) {
		return m, tickCmd(m.opts.TickRate)
	}

	// Game over: record the run and stop ticking.
	m.saveRun()
	m.keys.Reset()
	return m, nil
}

// restart begins a new run, scheduling ticks again if the previous run had ended.
func (m GameModel) restart() (tea.Model, tea.Cmd) {
	wasRunning := m.runner.Running()
	m.saveRun()

	rc := m.opts.worldConfig()
	rc.Seed = 0 // Fresh layout for every new run
	m.runner.Restart(rc)
	m.keys.Reset()
	m.saved = false

	if wasRunning {
		return m, nil
	}
	return m, tickCmd(m.opts.TickRate)
}

// saveRun records the current run once. Runs without any height are skipped.
func (m *GameModel) saveRun() {
	if m.saved {
		return
	}
	m.saved = true

	state := m.runner.State()
	if m.opts.Store == nil || state.Score <= 0 {
		return
	}

	run := storage.Run{
		GameID:   m.runner.Game().ID(),
		Player:   m.opts.Player,
		Score:    state.Score,
		Ticks:    state.Tick,
		PowerUps: state.PowerUps,
	}
	if _, err := m.opts.Store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "err", err)
		return
	}
	m.logger.Info("run saved", "game", run.GameID, "player", run.Player, "score", run.Score)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".skyhop", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.runner.Game().ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen)
}

// State returns the current game state.
func (m GameModel) State() core.GameState {
	return m.runner.State()
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for the given game. When
// watchPath is set, edits to that config file restart the run with the new
// tuning.
func Run(game registry.Game, opts GameOptions, watchPath string) error {
	opts.Standalone = true
	model := NewGameModel(game, opts)

	p := tea.NewProgram(model, tea.WithAltScreen())

	if watchPath != "" {
		w, err := config.Watch(watchPath)
		if err != nil {
			return fmt.Errorf("tui: %w", err)
		}
		defer w.Close()
		go forwardConfigEvents(w, p, model.logger)
	}

	_, err := p.Run()
	return err
}

// forwardConfigEvents relays watcher events into the program until the watcher closes.
func forwardConfigEvents(w *config.Watcher, p *tea.Program, logger *log.Logger) {
	for {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return
			}
			p.Send(ConfigReloadMsg{Path: path})
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logger.Warn("config watch error", "err", err)
		}
	}
}
