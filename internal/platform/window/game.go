package window

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/loop"
	"github.com/vovakirdan/skyhop/internal/registry"
	"github.com/vovakirdan/skyhop/internal/storage"
)

// Options configures the window frontend.
type Options struct {
	Width, Height int // World and window size in pixels
	Seed          int64
	Player        string
	Store         *storage.Store
	Logger        *log.Logger
}

// keyBindings lists the keys that hold each game action.
var keyBindings = map[core.Action][]ebiten.Key{
	core.ActionJump:  {ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp},
	core.ActionLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	core.ActionRight: {ebiten.KeyD, ebiten.KeyArrowRight},
}

// inputFrom builds this tick's input snapshot from a key-state query.
func inputFrom(pressed func(ebiten.Key) bool) core.InputFrame {
	f := core.NewInputFrame()
	for action, keys := range keyBindings {
		for _, k := range keys {
			if pressed(k) {
				f.Set(action)
				break
			}
		}
	}
	return f
}

// Game adapts a loop.Runner to ebiten.Game.
type Game struct {
	runner *loop.Runner
	canvas *Canvas
	opts   Options
	logger *log.Logger
	saved  bool
}

// NewGame starts a run of game sized to the window.
func NewGame(game registry.Game, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	canvas := NewCanvas(float64(opts.Width), float64(opts.Height))
	rc := core.RuntimeConfig{
		WorldW:   opts.Width,
		WorldH:   opts.Height,
		TickRate: 60,
		Seed:     opts.Seed,
	}
	return &Game{
		runner: loop.New(game, canvas, rc, loop.WithLogger(logger)),
		canvas: canvas,
		opts:   opts,
		logger: logger,
	}
}

// Update advances one tick. Keys are polled as held state every tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.saveRun()
		return ebiten.Termination
	}

	if !g.runner.Running() {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.restart()
		}
		return nil
	}

	if !g.runner.Frame(inputFrom(ebiten.IsKeyPressed)) {
		g.saveRun()
	}
	return nil
}

// Draw replays the last rendered frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Replay(screen)
}

// Layout keeps the logical screen equal to the world size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.opts.Width, g.opts.Height
}

func (g *Game) restart() {
	rc := g.runner.Runtime()
	rc.Seed = 0
	g.runner.Restart(rc)
	g.saved = false
}

// saveRun records the current run once.
func (g *Game) saveRun() {
	if g.saved {
		return
	}
	g.saved = true

	state := g.runner.State()
	if g.opts.Store == nil || state.Score <= 0 {
		return
	}
	_, err := g.opts.Store.SaveRun(storage.Run{
		GameID:   g.runner.Game().ID(),
		Player:   g.opts.Player,
		Score:    state.Score,
		Ticks:    state.Tick,
		PowerUps: state.PowerUps,
	})
	if err != nil {
		g.logger.Warn("could not save run", "err", err)
	}
}

// Run opens a window and plays game until it is closed.
func Run(game registry.Game, opts Options) error {
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// One simulation tick per displayed frame.
	ebiten.SetTPS(ebiten.SyncWithFPS)

	g := NewGame(game, opts)
	err := ebiten.RunGame(g)
	g.saveRun()
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
