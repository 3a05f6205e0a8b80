package loop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/skyhop/internal/core"
)

// stubGame dies after a fixed number of steps and counts its calls.
type stubGame struct {
	dieAt   int
	tick    int
	resets  int
	renders int
	seed    int64
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(rc core.RuntimeConfig) {
	g.resets++
	g.tick = 0
	g.seed = rc.Seed
}

func (g *stubGame) Step(core.InputFrame) core.StepResult {
	if g.tick < g.dieAt {
		g.tick++
	}
	return core.StepResult{State: g.State()}
}

func (g *stubGame) Render(dst core.Surface) {
	g.renders++
	dst.Clear()
}

func (g *stubGame) State() core.GameState {
	return core.GameState{Tick: g.tick, Score: g.tick * 2, GameOver: g.tick >= g.dieAt}
}

func newStubRunner(dieAt int) (*Runner, *stubGame) {
	g := &stubGame{dieAt: dieAt}
	screen := core.NewScreen(10, 5)
	rc := core.RuntimeConfig{WorldW: 80, WorldH: 80, TickRate: 60, Seed: 9}
	return New(g, core.NewCellCanvas(screen, 8, 16), rc), g
}

func TestNewResetsAndDraws(t *testing.T) {
	r, g := newStubRunner(3)

	assert.Equal(t, 1, g.resets)
	assert.Equal(t, 1, g.renders)
	assert.Equal(t, int64(9), g.seed)
	assert.True(t, r.Running())
	assert.Zero(t, r.Ticks())
}

func TestFrameStopsAfterDeath(t *testing.T) {
	r, g := newStubRunner(3)
	in := core.NewInputFrame()

	assert.True(t, r.Frame(in))
	assert.True(t, r.Frame(in))
	// The death tick is stepped and drawn, but no further tick is requested.
	assert.False(t, r.Frame(in))
	assert.Equal(t, 4, g.renders)
	assert.False(t, r.Running())
	assert.True(t, r.State().GameOver)

	assert.False(t, r.Frame(in))
	assert.Equal(t, 4, g.renders)
	assert.Equal(t, 3, r.Ticks())
}

func TestRestart(t *testing.T) {
	r, g := newStubRunner(1)
	require.False(t, r.Frame(core.NewInputFrame()))

	r.Restart(core.RuntimeConfig{WorldW: 80, WorldH: 80, Seed: 0})

	assert.True(t, r.Running())
	assert.Equal(t, 2, g.resets)
	assert.NotZero(t, g.seed, "zero seed should be replaced")
	assert.Equal(t, g.seed, r.Runtime().Seed)
	assert.Zero(t, r.Ticks())
}

func TestRedrawDoesNotStep(t *testing.T) {
	r, g := newStubRunner(5)
	r.Redraw()
	assert.Equal(t, 2, g.renders)
	assert.Zero(t, r.Ticks())
}
