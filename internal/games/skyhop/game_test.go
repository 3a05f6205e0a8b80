package skyhop

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/registry"
)

// isolate strips the world down to the player and the given platforms.
func isolate(g *Game, platforms ...Platform) {
	g.world.Platforms = platforms
	g.world.Obstacles = nil
	g.world.PowerUps = nil
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{GameID, EndlessID} {
		g, err := registry.Create(id)
		require.NoError(t, err)
		assert.Equal(t, id, g.ID())
	}
}

func TestResetSpawnsPlayer(t *testing.T) {
	g := newTestGame(t, false)
	p := g.World().Player
	assert.Equal(t, 50.0, p.X)
	assert.Equal(t, testH-100, p.Y)
	assert.True(t, p.IsAlive)
	assert.Equal(t, -12.0, p.JumpStrength)
	assert.Equal(t, core.GameState{}, g.State())
}

func TestStepJumpFromRest(t *testing.T) {
	g := newTestGame(t, false)
	isolate(g, Platform{X: 380, Y: 550, W: 100, H: 20})
	g.world.Player.X = 400
	g.world.Player.Y = 500

	res := g.Step(frame(core.ActionJump))

	p := g.World().Player
	assert.InDelta(t, 488.8, p.Y, 1e-9)
	assert.InDelta(t, -11.6, p.DY, 1e-9)
	assert.Equal(t, 1, p.JumpCount)
	assert.True(t, p.IsJumping)
	assert.Equal(t, 1, res.State.Tick)
	assert.False(t, res.State.GameOver)
}

func TestStepDoubleJumpLimit(t *testing.T) {
	g := newTestGame(t, false)
	isolate(g, Platform{X: 380, Y: 550, W: 100, H: 20})
	g.world.Player.X = 400
	g.world.Player.Y = 500

	none := frame()
	jump := frame(core.ActionJump)
	for _, in := range []core.InputFrame{jump, none, jump, none, jump, jump} {
		g.Step(in)
	}
	assert.Equal(t, 2, g.World().Player.JumpCount)
}

func TestStepDeathStopsSimulation(t *testing.T) {
	g := newTestGame(t, false)
	plat := Platform{X: 380, Y: 550, W: 100, H: 20}
	isolate(g, plat)
	g.world.Player.X = 400
	g.world.Player.Y = 500 // Resting on plat

	res := g.Step(frame())
	require.False(t, res.State.GameOver)
	require.Equal(t, 500.0, g.World().Player.Y)
	require.Zero(t, g.World().Player.DY)

	g.world.Obstacles = []Obstacle{{X: 400, Y: plat.Y - 10, W: 50, H: 20, Direction: 1}}
	res = g.Step(frame())
	require.True(t, res.State.GameOver)
	assert.Equal(t, 2, res.State.Tick)
	assert.Equal(t, 500.0, g.World().Player.Y)

	before := g.World()
	res = g.Step(frame(core.ActionJump, core.ActionRight))
	assert.Equal(t, before, g.World())
	assert.Equal(t, 2, res.State.Tick)
}

func TestWorldSnapshotIsIndependent(t *testing.T) {
	g := newTestGame(t, false)
	isolate(g)
	g.world.Player.X = 400
	g.world.Player.Y = 500
	g.world.PowerUps = []PowerUp{
		{X: 410, Y: 540, Size: 20, Type: PowerUpSpeedBoost},
		{X: 10, Y: 10, Size: 20, Type: PowerUpDoubleJump, Platform: 3},
	}

	snap := g.World()
	g.Step(frame())

	require.Len(t, g.World().PowerUps, 1)
	require.Len(t, snap.PowerUps, 2)
	assert.Equal(t, PowerUpSpeedBoost, snap.PowerUps[0].Type)
	assert.Equal(t, 410.0, snap.PowerUps[0].X)
}

func TestStepScrollsAndScores(t *testing.T) {
	g := newTestGame(t, false)
	isolate(g, Platform{X: 800, Y: 100, W: 100, H: 20})
	g.world.Player.Y = 300

	g.Step(frame())

	w := g.World()
	assert.InDelta(t, 305.8, w.Player.Y, 1e-9)
	assert.Equal(t, 105.0, w.Platforms[0].Y)
	assert.Equal(t, 5.0, w.Climbed)

	g.world.Climbed = 123
	assert.Equal(t, 12, g.State().Score)
}

func TestScroll(t *testing.T) {
	w, cfg := emptyWorld()
	w.Platforms = []Platform{{Y: 100}}
	w.Obstacles = []Obstacle{{Y: 80}}
	w.PowerUps = []PowerUp{{Y: 80}}

	w.Player.Y = 360 // Exactly on the line: no scroll
	assert.False(t, Scroll(&w, cfg.Scroll))

	w.Player.Y = 359
	assert.True(t, Scroll(&w, cfg.Scroll))
	assert.Equal(t, 364.0, w.Player.Y)
	assert.Equal(t, 105.0, w.Platforms[0].Y)
	assert.Equal(t, 85.0, w.Obstacles[0].Y)
	assert.Equal(t, 85.0, w.PowerUps[0].Y)
	assert.Equal(t, 5.0, w.Climbed)

	w.Player.Y = 100
	w.Player.IsAlive = false
	assert.False(t, Scroll(&w, cfg.Scroll))
}

func TestBoundedModeKeepsFallenPlatforms(t *testing.T) {
	g := newTestGame(t, false)
	g.world.Obstacles = nil
	g.world.Platforms[0].Y = testH + 10

	g.Step(frame())
	assert.Equal(t, testH+10, g.World().Platforms[0].Y)
}

func TestEndlessRecyclesPlatforms(t *testing.T) {
	g := newTestGame(t, true)
	g.world.Platforms[0].Y = testH + 10
	g.world.PowerUps = g.world.PowerUps[1:] // Drop the power-up of platform 0

	moved := recyclePlatforms(&g.world, &g.cfg, g.rng)
	require.Equal(t, 1, moved)

	w := g.World()
	top := testH - 9*150 - 20
	plat := w.Platforms[0]
	assert.Equal(t, top-150, plat.Y)
	assert.GreaterOrEqual(t, plat.X, 0.0)
	assert.LessOrEqual(t, plat.X, testW-100)

	assert.Len(t, w.Platforms, 10)
	assert.Len(t, w.Obstacles, 5)
	for _, o := range w.Obstacles {
		if o.Platform == 0 {
			assert.Equal(t, plat.Y-20, o.Y)
			assert.GreaterOrEqual(t, o.X, plat.X)
		}
	}

	require.Len(t, w.PowerUps, 4)
	respawned := w.PowerUps[3]
	assert.Equal(t, 0, respawned.Platform)
	assert.Equal(t, plat.Y-20, respawned.Y)

	assert.Zero(t, recyclePlatforms(&g.world, &g.cfg, g.rng))
}

func TestEndlessMovesUncollectedPowerUp(t *testing.T) {
	g := newTestGame(t, true)
	g.world.Platforms[0].Y = testH + 30
	require.Equal(t, 0, g.world.PowerUps[0].Platform)
	kind := g.world.PowerUps[0].Type
	g.world.PowerUps[0].Y = testH + 10 // Still sitting on the fallen platform

	require.Equal(t, 1, recyclePlatforms(&g.world, &g.cfg, g.rng))

	w := g.World()
	plat := w.Platforms[0]
	require.Len(t, w.PowerUps, 4)
	var onZero []PowerUp
	for _, pu := range w.PowerUps {
		if pu.Platform == 0 {
			onZero = append(onZero, pu)
		}
	}
	require.Len(t, onZero, 1)
	pu := onZero[0]
	assert.Equal(t, kind, pu.Type)
	assert.Equal(t, plat.Y-pu.Size, pu.Y)
	assert.Equal(t, plat.X+plat.W/2-pu.Size/2, pu.X)
	assert.Less(t, pu.Y, 0.0)
}

func TestDeterministicRun(t *testing.T) {
	run := func() WorldState {
		g := newTestGame(t, true)
		for i := 0; i < 600; i++ {
			in := frame(core.ActionRight)
			if i%40 < 10 {
				in.Set(core.ActionJump)
			}
			if i%200 > 150 {
				in = frame(core.ActionLeft)
			}
			g.Step(in)
		}
		return g.World()
	}
	assert.Equal(t, run(), run())
}

func TestResetRestoresInitialWorld(t *testing.T) {
	fresh := newTestGame(t, false)
	g := newTestGame(t, false)
	for i := 0; i < 50; i++ {
		g.Step(frame(core.ActionRight, core.ActionJump))
	}
	g.Reset(testRuntime(42))
	assert.Equal(t, fresh.World(), g.World())
	assert.Equal(t, core.GameState{}, g.State())
}

type drawOp struct {
	kind  string
	color core.Color
	text  string
}

type recordSurface struct {
	w, h float64
	ops  []drawOp
}

func (s *recordSurface) Size() (float64, float64) { return s.w, s.h }
func (s *recordSurface) Clear()                   { s.ops = nil }
func (s *recordSurface) FillRect(_, _, _, _ float64, c core.Color) {
	s.ops = append(s.ops, drawOp{kind: "rect", color: c})
}
func (s *recordSurface) FillCircle(_, _, _ float64, c core.Color) {
	s.ops = append(s.ops, drawOp{kind: "circle", color: c})
}
func (s *recordSurface) DrawText(_, _ float64, text string, c core.Color) {
	s.ops = append(s.ops, drawOp{kind: "text", color: c, text: text})
}

func (s *recordSurface) count(kind string, c core.Color) int {
	n := 0
	for _, op := range s.ops {
		if op.kind == kind && op.color == c {
			n++
		}
	}
	return n
}

func (s *recordSurface) text() string {
	var b strings.Builder
	for _, op := range s.ops {
		if op.kind == "text" {
			b.WriteString(op.text)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func TestRender(t *testing.T) {
	g := newTestGame(t, false)
	s := &recordSurface{w: testW, h: testH}

	g.Render(s)

	// Platforms 0..4 and the obstacles on platforms 0, 2 and 4 are on screen.
	assert.Equal(t, 5, s.count("rect", core.ColorGreen))
	assert.Equal(t, 3, s.count("rect", core.ColorRed))
	assert.Equal(t, 1, s.count("rect", core.ColorBlue))
	circles := s.count("circle", core.ColorPurple) + s.count("circle", core.ColorYellow)
	assert.Equal(t, 4, circles)
	assert.Contains(t, s.text(), "Height: 0")
	assert.NotContains(t, s.text(), "GAME OVER")

	g.world.Player.IsAlive = false
	g.Render(s)
	assert.Zero(t, s.count("rect", core.ColorBlue))
	assert.Contains(t, s.text(), "GAME OVER")
}

func TestRenderOntoCells(t *testing.T) {
	g := newTestGame(t, false)
	screen := core.NewScreen(120, 45)
	g.Render(core.NewCellCanvas(screen, 8, 16))

	cell := screen.GetCell(7, 40)
	assert.Equal(t, core.GlyphBlock, cell.Rune)
	assert.Equal(t, core.ColorBlue, cell.Color)
	assert.Contains(t, screen.String(), "Height: 0")
}
