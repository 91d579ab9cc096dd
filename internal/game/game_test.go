package game

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-ballpit/internal/config"
	"github.com/vovakirdan/tui-ballpit/internal/core"
	"github.com/vovakirdan/tui-ballpit/internal/sim"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     42,
	}
}

// pinDefaultConfig points the loader at a missing file so Reset falls
// back to DefaultConfig regardless of what is in ~/.ballpit on the
// machine running the tests.
func pinDefaultConfig(t *testing.T) {
	t.Helper()
	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	t.Cleanup(func() {
		SetConfigPath("")
		SetPreset(config.PresetNormal)
	})
}

func TestResetSpawnsInitialGrid(t *testing.T) {
	pinDefaultConfig(t)

	g := New()
	g.Reset(testConfig())

	want := config.DefaultConfig().Balls.InitialCount
	if g.world.ActiveCount() != want {
		t.Errorf("ActiveCount after Reset = %d, want %d", g.world.ActiveCount(), want)
	}
	if g.world.InventoryCount() != 0 {
		t.Errorf("InventoryCount after Reset = %d, want 0", g.world.InventoryCount())
	}

	for _, b := range g.world.Balls() {
		if b.X < 0 || b.X > float64(g.arenaW) || b.Y < 0 || b.Y > float64(g.arenaH) {
			t.Errorf("ball %d spawned outside the arena at (%v, %v)", b.ID, b.X, b.Y)
		}
	}
}

func TestDeterministicReset(t *testing.T) {
	pinDefaultConfig(t)

	g1 := New()
	g1.Reset(testConfig())
	g2 := New()
	g2.Reset(testConfig())

	b1 := g1.world.Balls()
	b2 := g2.world.Balls()
	if len(b1) != len(b2) {
		t.Fatalf("ball counts differ: %d vs %d", len(b1), len(b2))
	}
	for i := range b1 {
		if b1[i] != b2[i] {
			t.Errorf("ball %d differs between same-seed resets:\n%+v\nvs\n%+v", i, b1[i], b2[i])
		}
	}
}

func TestCustomConfigTakesEffect(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ballpit.yaml")
	content := []byte(`
balls:
  initial_count: 3
  default_radius: 1.0
  min_radius: 1.0
  max_radius: 1.5
physics:
  gravity: 0.006
  friction: 0.985
  bounce_damping: 0.8
  flick_factor: 0.1
colors:
  min_value: 50
  max_value: 255
  min_brightness: 0.4
  max_brightness: 0.9
zones:
  delete_height: 2
  inventory_offset_x: 9
  inventory_offset_y: 3
  inventory_radius: 3.5
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(testConfig())

	if g.world.ActiveCount() != 3 {
		t.Errorf("ActiveCount with custom config = %d, want 3", g.world.ActiveCount())
	}
}

func TestAddBallAction(t *testing.T) {
	pinDefaultConfig(t)

	g := New()
	g.Reset(testConfig())
	before := g.world.ActiveCount()

	in := core.NewInputFrame()
	in.Set(core.ActionAddBall)
	g.Step(in)

	if g.world.ActiveCount() != before+1 {
		t.Errorf("ActiveCount after add = %d, want %d", g.world.ActiveCount(), before+1)
	}
}

// dragToTarget drags the top-most ball onto the inventory target
// through three input frames: press, motion, release. Returns the
// release step result.
func dragToTarget(g *Game) core.StepResult {
	balls := g.world.Balls()
	top := balls[len(balls)-1]

	press := core.NewInputFrame()
	press.Pointer = core.Pointer{X: int(top.X), Y: int(top.Y) + arenaTop, Press: true}
	g.Step(press)

	target, _ := g.world.InventoryTarget()
	tx, ty := int(target.X), int(target.Y)+arenaTop

	motion := core.NewInputFrame()
	motion.Pointer = core.Pointer{X: tx, Y: ty, Motion: true}
	g.Step(motion)

	release := core.NewInputFrame()
	release.Pointer = core.Pointer{X: tx, Y: ty, Release: true}
	return g.Step(release)
}

func TestCatchScoring(t *testing.T) {
	pinDefaultConfig(t)

	g := New()
	g.Reset(testConfig())
	before := g.world.ActiveCount()

	res := dragToTarget(g)

	if len(res.Catches) != 1 {
		t.Fatalf("release step reported %d catches, want 1", len(res.Catches))
	}
	if g.world.InventoryCount() != 1 {
		t.Errorf("InventoryCount after catch = %d, want 1", g.world.InventoryCount())
	}
	if g.world.ActiveCount() != before-1 {
		t.Errorf("ActiveCount after catch = %d, want %d", g.world.ActiveCount(), before-1)
	}

	catch := res.Catches[0]
	if catch.Quality < 0 || catch.Quality > 1 {
		t.Errorf("catch quality = %v, want within [0, 1]", catch.Quality)
	}

	slot := g.world.Inventory()[0]
	if catch.Quality != slot.Quality {
		t.Errorf("catch quality %v does not match stored slot quality %v", catch.Quality, slot.Quality)
	}

	wantScore := int(math.Round(catch.Quality * 100))
	if g.score != wantScore {
		t.Errorf("score after catch = %d, want %d", g.score, wantScore)
	}
}

func TestEjectDigit(t *testing.T) {
	pinDefaultConfig(t)

	g := New()
	g.Reset(testConfig())
	dragToTarget(g)

	active := g.world.ActiveCount()

	in := core.NewInputFrame()
	in.EjectSlot = 1
	g.Step(in)

	if g.world.InventoryCount() != 0 {
		t.Errorf("InventoryCount after eject = %d, want 0", g.world.InventoryCount())
	}
	if g.world.ActiveCount() != active+1 {
		t.Errorf("ActiveCount after eject = %d, want %d", g.world.ActiveCount(), active+1)
	}
}

func TestRestartAction(t *testing.T) {
	pinDefaultConfig(t)

	g := New()
	g.Reset(testConfig())
	dragToTarget(g)

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in)

	if g.score != 0 {
		t.Errorf("score after restart = %d, want 0", g.score)
	}
	want := config.DefaultConfig().Balls.InitialCount
	if g.world.ActiveCount() != want {
		t.Errorf("ActiveCount after restart = %d, want %d", g.world.ActiveCount(), want)
	}
	if g.world.InventoryCount() != 0 {
		t.Errorf("InventoryCount after restart = %d, want 0", g.world.InventoryCount())
	}
}

func TestPauseFreezesWorld(t *testing.T) {
	pinDefaultConfig(t)

	g := New()
	g.Reset(testConfig())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	if !g.State().Paused {
		t.Fatal("pause action should set the paused state")
	}

	before := g.world.Balls()
	g.Step(core.NewInputFrame())
	after := g.world.Balls()

	for i := range before {
		if before[i] != after[i] {
			t.Fatal("paused step should not move balls")
		}
	}

	// Unpause, now balls move again.
	g.Step(pause.Clone())
	moved := false
	g.Step(core.NewInputFrame())
	for i, b := range g.world.Balls() {
		if b != after[i] {
			moved = true
			break
		}
	}
	if !moved {
		t.Error("unpaused step should move balls")
	}
}

func TestZeroGParams(t *testing.T) {
	pinDefaultConfig(t)

	g := NewZeroG()
	g.Reset(testConfig())

	params := g.world.Params()
	if params.Gravity != 0 {
		t.Errorf("zero-g gravity = %v, want 0", params.Gravity)
	}
	if params.Friction != zeroGFriction {
		t.Errorf("zero-g friction = %v, want %v", params.Friction, zeroGFriction)
	}

	if g.ID() != "ballpit_zerog" {
		t.Errorf("zero-g ID = %q, want ballpit_zerog", g.ID())
	}
}

func TestTooSmallScreen(t *testing.T) {
	pinDefaultConfig(t)

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 6, TickRate: 60, Seed: 1})

	if !g.State().Paused {
		t.Error("too-small screen should report paused")
	}

	// Stepping and rendering must not panic.
	g.Step(core.NewInputFrame())
	s := core.NewScreen(20, 6)
	g.Render(s)

	if !strings.Contains(s.String(), "small") {
		t.Error("too-small render should show a resize hint")
	}
}

func TestRenderShowsChrome(t *testing.T) {
	pinDefaultConfig(t)

	cfg := testConfig()
	g := New()
	g.Reset(cfg)

	s := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(s)
	out := s.String()

	if !strings.Contains(out, "Ball Pit") {
		t.Error("render should include the title in the HUD")
	}
	if !strings.Contains(out, "DELETE ZONE") {
		t.Error("render should label the delete zone")
	}
	if !strings.Contains(out, "Eject") {
		t.Error("render should include the help line")
	}
	if !strings.ContainsRune(out, ballFill) {
		t.Error("render should draw at least one ball")
	}

	// The delete band sits at the bottom of the arena.
	zone := g.world.DeleteZone()
	zoneRow := s.Row(arenaTop + int(zone.Y))
	if !strings.ContainsRune(zoneRow, zoneFill) {
		t.Errorf("delete zone row should be shaded, got %q", zoneRow)
	}
}

func TestDraggedBallSkipsPhysics(t *testing.T) {
	pinDefaultConfig(t)

	g := New()
	g.Reset(testConfig())

	balls := g.world.Balls()
	top := balls[len(balls)-1]

	press := core.NewInputFrame()
	press.Pointer = core.Pointer{X: int(top.X), Y: int(top.Y) + arenaTop, Press: true}
	g.Step(press)

	id, ok := g.world.Dragging()
	if !ok {
		t.Fatal("press on a ball should start a drag")
	}
	if id != top.ID {
		t.Errorf("dragged id = %d, want top-most ball %d", id, top.ID)
	}

	// A dragged ball holds its position through physics steps.
	var grabbed sim.BallView
	for _, b := range g.world.Balls() {
		if b.ID == id {
			grabbed = b
		}
	}
	g.Step(core.NewInputFrame())
	for _, b := range g.world.Balls() {
		if b.ID == id && (b.X != grabbed.X || b.Y != grabbed.Y) {
			t.Error("dragged ball should not move during physics steps")
		}
	}
}
