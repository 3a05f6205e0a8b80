package skyhop

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

const (
	testW = 960.0
	testH = 720.0
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{WorldW: int(testW), WorldH: int(testH), TickRate: 60, Seed: seed}
}

// newTestGame returns a reset game using the built-in defaults.
func newTestGame(t *testing.T, endless bool) *Game {
	t.Helper()
	cfg := config.DefaultSkyhopConfig()
	require.NoError(t, cfg.Validate())
	g := NewWithConfig(cfg, endless)
	g.Reset(testRuntime(42))
	return g
}

// emptyWorld returns a world with only the player, far from every edge.
func emptyWorld() (WorldState, config.SkyhopConfig) {
	cfg := config.DefaultSkyhopConfig()
	w := NewWorld(testW, testH, &cfg)
	w.Player.X = 400
	w.Player.Y = 500
	return w, cfg
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}
