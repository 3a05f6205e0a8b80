// Package loop drives a registered game one tick at a time. Every frontend
// (terminal, window, SSH, headless) owns a Runner and feeds it input frames.
package loop

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/registry"
)

// Runner steps a game and renders every stepped tick onto a surface.
// Once the game is over it stops asking for further ticks.
type Runner struct {
	game    registry.Game
	dst     core.Surface
	runtime core.RuntimeConfig
	running bool
	logger  *log.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger for run lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// New resets the game for a fresh run and draws its first frame.
// A zero seed is replaced by a time-based one.
func New(game registry.Game, dst core.Surface, runtime core.RuntimeConfig, opts ...Option) *Runner {
	r := &Runner{
		game:   game,
		dst:    dst,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.Restart(runtime)
	return r
}

// Restart begins a new run with the given runtime config.
func (r *Runner) Restart(runtime core.RuntimeConfig) {
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	r.runtime = runtime
	r.game.Reset(runtime)
	r.running = true
	r.game.Render(r.dst)

	r.logger.Debug("run started",
		"game", r.game.ID(),
		"seed", runtime.Seed,
		"world", [2]int{runtime.WorldW, runtime.WorldH})
}

// Frame advances one tick with the given input and draws the result.
// It reports whether another tick should be scheduled. The tick on which the
// player dies is still drawn; after that Frame does nothing.
func (r *Runner) Frame(in core.InputFrame) bool {
	if !r.running {
		return false
	}

	res := r.game.Step(in)
	r.game.Render(r.dst)

	if res.State.GameOver {
		r.running = false
		r.logger.Debug("run ended",
			"game", r.game.ID(),
			"score", res.State.Score,
			"ticks", res.State.Tick)
	}
	return r.running
}

// Redraw renders the current state again without stepping.
func (r *Runner) Redraw() {
	r.game.Render(r.dst)
}

// Running reports whether the current run is still in progress.
func (r *Runner) Running() bool {
	return r.running
}

// State returns the game's current state.
func (r *Runner) State() core.GameState {
	return r.game.State()
}

// Ticks returns how many ticks the current run has stepped.
func (r *Runner) Ticks() int {
	return r.game.State().Tick
}

// Game returns the game being driven.
func (r *Runner) Game() registry.Game {
	return r.game
}

// Runtime returns the runtime config of the current run, including its seed.
func (r *Runner) Runtime() core.RuntimeConfig {
	return r.runtime
}
