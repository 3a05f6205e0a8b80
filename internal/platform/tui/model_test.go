package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/storage"
)

// scriptedGame dies after dieAt steps and records the inputs it saw.
type scriptedGame struct {
	dieAt  int
	tick   int
	inputs []core.InputFrame
}

func (g *scriptedGame) ID() string              { return "scripted" }
func (g *scriptedGame) Title() string           { return "Scripted" }
func (g *scriptedGame) Render(dst core.Surface) { dst.Clear() }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.tick = 0
	g.inputs = nil
}

func (g *scriptedGame) State() core.GameState {
	return core.GameState{Score: g.tick * 10, Tick: g.tick, GameOver: g.tick >= g.dieAt}
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in)
	if g.tick < g.dieAt {
		g.tick++
	}
	return core.StepResult{State: g.State()}
}

func newTestModel(t *testing.T, g *scriptedGame) (GameModel, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	m := NewGameModel(g, GameOptions{
		Cols:     40,
		Rows:     12,
		TickRate: 60,
		Seed:     1,
		Terminal: config.DefaultSkyhopConfig().Terminal,
		Player:   "tester",
		Store:    store,
	})
	return m, store
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

func TestGameModelStopsTickingAfterDeath(t *testing.T) {
	g := &scriptedGame{dieAt: 3}
	m, store := newTestModel(t, g)

	var cmd tea.Cmd
	for i := 0; i < 2; i++ {
		m, cmd = update(t, m, TickMsg{})
		if cmd == nil {
			t.Fatalf("tick %d: expected next tick to be scheduled", i)
		}
	}
	m, cmd = update(t, m, TickMsg{})
	if cmd != nil {
		t.Error("no tick should be scheduled after death")
	}
	if !m.State().GameOver {
		t.Error("expected game over")
	}

	runs, err := store.TopRuns("scripted", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Score != 30 || runs[0].Player != "tester" {
		t.Fatalf("runs = %+v, want one run of 30 by tester", runs)
	}

	// Quitting after death must not record the run twice.
	_, cmd = update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if n, _ := store.RunCount("scripted"); n != 1 {
		t.Errorf("run count = %d, want 1", n)
	}
}

func TestGameModelRestart(t *testing.T) {
	g := &scriptedGame{dieAt: 1}
	m, _ := newTestModel(t, g)

	m, _ = update(t, m, TickMsg{})
	if !m.State().GameOver {
		t.Fatal("expected game over")
	}

	m, cmd := update(t, m, runeKey('r'))
	if cmd == nil {
		t.Fatal("restart should schedule ticks again")
	}
	if m.State().GameOver || m.State().Tick != 0 {
		t.Errorf("state after restart = %+v", m.State())
	}
}

func TestGameModelRestartIgnoredWhileRunning(t *testing.T) {
	g := &scriptedGame{dieAt: 10}
	m, _ := newTestModel(t, g)

	m, _ = update(t, m, TickMsg{})
	m, cmd := update(t, m, runeKey('r'))
	if cmd != nil {
		t.Error("restart during a run should do nothing")
	}
	if m.State().Tick != 1 {
		t.Errorf("tick = %d, want 1", m.State().Tick)
	}
}

func TestGameModelHoldsKeysAcrossTicks(t *testing.T) {
	g := &scriptedGame{dieAt: 100}
	m, _ := newTestModel(t, g)
	hold := config.DefaultSkyhopConfig().Terminal.HoldTicks

	m, _ = update(t, m, runeKey('d'))
	for i := 0; i < hold+1; i++ {
		m, _ = update(t, m, TickMsg{})
	}

	for i, in := range g.inputs {
		want := i < hold
		if in.Has(core.ActionRight) != want {
			t.Errorf("tick %d: right held = %v, want %v", i, !want, want)
		}
	}
}

func TestGameModelConfigReloadKeepsSingleTickLoop(t *testing.T) {
	g := &scriptedGame{dieAt: 10}
	m, _ := newTestModel(t, g)

	m, _ = update(t, m, TickMsg{})
	_, cmd := update(t, m, ConfigReloadMsg{Path: "skyhop.yaml"})
	if cmd != nil {
		t.Error("reload during a run must not start a second tick loop")
	}
}

func TestGameModelBackAfterDeath(t *testing.T) {
	g := &scriptedGame{dieAt: 1}
	m, _ := newTestModel(t, g)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("back is ignored during a run")
	}

	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("expected back to menu after death")
	}
}
