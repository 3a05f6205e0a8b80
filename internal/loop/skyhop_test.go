package loop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/games/skyhop"
)

// A scripted player either dies or keeps climbing; either way the runner
// keeps the horizontal clamp and stops requesting ticks after death.
func TestRunnerDrivesSkyhop(t *testing.T) {
	g := skyhop.NewWithConfig(config.DefaultSkyhopConfig(), false)
	screen := core.NewScreen(120, 45)
	rc := core.RuntimeConfig{WorldW: 960, WorldH: 720, TickRate: 60, Seed: 3}
	r := New(g, core.NewCellCanvas(screen, 8, 16), rc)

	for i := 0; i < 2000 && r.Running(); i++ {
		in := core.NewInputFrame()
		if i%2 == 0 {
			in.Set(core.ActionRight)
		}
		if i%45 == 0 {
			in.Set(core.ActionJump)
		}
		r.Frame(in)

		p := g.World().Player
		require.GreaterOrEqual(t, p.X, 0.0)
		require.LessOrEqual(t, p.X+p.Width, 960.0)
		require.LessOrEqual(t, p.JumpCount, 2)
	}

	if !r.Running() {
		ticks := r.Ticks()
		assert.False(t, r.Frame(core.NewInputFrame()))
		assert.Equal(t, ticks, r.Ticks())
		assert.Contains(t, screen.String(), "GAME OVER")
	}
}
