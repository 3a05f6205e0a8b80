// Package skyhop implements a vertical platform jumper: the player climbs a
// ladder of platforms, dodges sliding obstacles and collects power-ups while
// the world scrolls down beneath them.
package skyhop

import (
	"fmt"
	"io"
	"math/rand"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/registry"
)

const (
	// GameID is the bounded mode: the generated ladder is all there is.
	GameID = "skyhop"
	// EndlessID recycles platforms that scroll off the bottom.
	EndlessID = "skyhop_endless"
)

// HUD layout in world pixels.
const (
	hudMargin    = 8.0
	hudLine      = 18.0
	glyphAdvance = 7.0 // Approximate text advance used to center banners
)

// Game implements registry.Game for both play modes.
type Game struct {
	endless  bool
	world    WorldState
	cfg      config.SkyhopConfig
	override *config.SkyhopConfig // Fixed config that bypasses file loading
	rng      *rand.Rand
	runtime  core.RuntimeConfig
	prevJump bool // Jump state of the previous input frame
	logger   *log.Logger
}

var (
	configPath string
	preset     = config.PresetClassic
	logger     = log.New(io.Discard)
)

// SetConfigPath sets the custom config path used on every Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetPreset sets the physics preset applied on every Reset.
func SetPreset(p config.Preset) {
	preset = p
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates a bounded game.
func New() *Game {
	return &Game{logger: logger}
}

// NewEndless creates a game that keeps generating platforms as the player climbs.
func NewEndless() *Game {
	return &Game{endless: true, logger: logger}
}

// NewWithConfig creates a game that always uses cfg instead of loading config files.
func NewWithConfig(cfg config.SkyhopConfig, endless bool) *Game {
	return &Game{endless: endless, override: &cfg, logger: logger}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.endless {
		return EndlessID
	}
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.endless {
		return "Skyhop Endless"
	}
	return "Skyhop"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.world = NewWorld(float64(runtime.WorldW), float64(runtime.WorldH), &g.cfg)
	GeneratePlatforms(&g.world, &g.cfg, g.rng)
	GeneratePowerUps(&g.world, &g.cfg, g.rng)
	g.prevJump = false

	g.logger.Debug("world generated",
		"mode", g.ID(),
		"seed", runtime.Seed,
		"platforms", len(g.world.Platforms),
		"obstacles", len(g.world.Obstacles),
		"powerups", len(g.world.PowerUps))
}

// loadConfig reads the tuning for a new run. The CLI rejects a bad custom
// file up front, so a failure here is a watched file that broke mid-session
// and the run continues on the defaults.
func (g *Game) loadConfig() config.SkyhopConfig {
	if g.override != nil {
		return *g.override
	}
	cfg, err := config.LoadSkyhop(configPath)
	if err != nil {
		g.logger.Warn("using default config", "err", err)
		cfg = config.DefaultSkyhopConfig()
	}
	config.ApplyPreset(&cfg, preset)
	return cfg
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	w := &g.world
	if !w.Player.IsAlive {
		return core.StepResult{State: g.State()}
	}
	w.Tick++

	jump := in.Has(core.ActionJump)
	handleJumpInput(&w.Player, jump, g.prevJump)
	g.prevJump = jump

	applyGravity(&w.Player)
	landOnPlatforms(w)

	if moveObstacles(w, g.cfg.Obstacles) {
		g.logger.Info("game over", "mode", g.ID(), "height", g.score(), "tick", w.Tick)
	}

	for _, t := range collectPowerUps(w, g.cfg.Physics) {
		g.logger.Debug("power-up collected", "type", t, "tick", w.Tick)
	}

	Scroll(w, g.cfg.Scroll)
	updateJumpHold(&w.Player, g.cfg.Physics)
	moveHorizontal(w, in.Has(core.ActionLeft), in.Has(core.ActionRight), g.cfg.Physics)
	handleWalls(w, jump, g.cfg.Physics)

	if g.endless {
		if n := recyclePlatforms(w, &g.cfg, g.rng); n > 0 {
			g.logger.Debug("platforms recycled", "count", n, "tick", w.Tick)
		}
	}

	return core.StepResult{State: g.State()}
}

// score is the climbed height in tenths of a scroll pixel.
func (g *Game) score() int {
	return int(g.world.Climbed / 10)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score(),
		GameOver: !g.world.Player.IsAlive,
		Tick:     g.world.Tick,
		PowerUps: g.world.Collected,
	}
}

// World returns a deep copy of the world. Later ticks do not change it.
func (g *Game) World() WorldState {
	w := g.world
	w.Platforms = slices.Clone(w.Platforms)
	w.Obstacles = slices.Clone(w.Obstacles)
	w.PowerUps = slices.Clone(w.PowerUps)
	return w
}

// Config returns the configuration in effect since the last Reset.
func (g *Game) Config() config.SkyhopConfig {
	return g.cfg
}

// Render draws the world onto dst.
func (g *Game) Render(dst core.Surface) {
	dst.Clear()
	w := &g.world
	viewW, viewH := dst.Size()
	view := core.NewBox(0, 0, viewW, viewH)

	for _, p := range w.Platforms {
		if b := p.Box(); b.Intersects(view) {
			dst.FillRect(b.X, b.Y, b.W, b.H, core.ColorGreen)
		}
	}
	for _, o := range w.Obstacles {
		if b := o.Box(); b.Intersects(view) {
			dst.FillRect(b.X, b.Y, b.W, b.H, core.ColorRed)
		}
	}
	for _, pu := range w.PowerUps {
		r := pu.Size / 2
		dst.FillCircle(pu.X+r, pu.Y+r, r, pu.Type.Color())
	}
	if w.Player.IsAlive {
		p := w.Player
		dst.FillRect(p.X, p.Y, p.Width, p.Height, core.ColorBlue)
	}

	g.renderHUD(dst)
	if !w.Player.IsAlive {
		g.renderGameOver(dst, viewW, viewH)
	}
}

func (g *Game) renderHUD(dst core.Surface) {
	p := g.world.Player
	dst.DrawText(hudMargin, hudMargin, fmt.Sprintf("Height: %d", g.score()), core.ColorBrightWhite)

	var boosts string
	if p.JumpStrength != g.cfg.Physics.JumpStrength {
		boosts += " [JUMP+]"
	}
	if p.SpeedBoost {
		boosts += " [SPEED+]"
	}
	if boosts != "" {
		dst.DrawText(hudMargin, hudMargin+hudLine, "Power-ups:"+boosts, core.ColorYellow)
	}
	if g.endless {
		dst.DrawText(hudMargin, hudMargin+2*hudLine, "Endless", core.ColorGray)
	}
}

func (g *Game) renderGameOver(dst core.Surface, viewW, viewH float64) {
	lines := []struct {
		text  string
		color core.Color
	}{
		{"GAME OVER", core.ColorRed},
		{fmt.Sprintf("Height: %d", g.score()), core.ColorBrightWhite},
		{"Press R to restart", core.ColorGray},
	}
	y := viewH/2 - hudLine*float64(len(lines))/2
	for _, l := range lines {
		x := (viewW - float64(len(l.text))*glyphAdvance) / 2
		dst.DrawText(x, y, l.text, l.color)
		y += hudLine
	}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
	registry.Register(EndlessID, func() registry.Game {
		return NewEndless()
	})
}
