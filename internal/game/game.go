// Package game adapts the ball-pit simulation to the platform Game
// contract: it owns a sim.World, feeds it input frames, keeps the
// session score, and renders snapshots to the screen buffer.
package game

import (
	"math"

	"github.com/vovakirdan/tui-ballpit/internal/config"
	"github.com/vovakirdan/tui-ballpit/internal/core"
	"github.com/vovakirdan/tui-ballpit/internal/registry"
	"github.com/vovakirdan/tui-ballpit/internal/sim"
)

// Mode represents the pit variant.
type Mode string

const (
	ModeClassic Mode = "ballpit"
	ModeZeroG   Mode = "ballpit_zerog"
)

// Screen layout: row 0 is the HUD, the last row is the help line, and
// everything between is the arena. World coordinates are arena-local,
// one unit per cell.
const (
	hudRow   = 0
	arenaTop = 1

	minScreenW = 40
	minScreenH = 12
)

// Initial grid placement, scaled for terminal cells.
const (
	gridSpacingX = 6.0
	gridTopY     = 4.0
	gridRowStep  = 3.0
)

// zeroGFriction keeps ejected and flicked balls gliding in the zero-g
// variant. Gravity is off, so friction is the only thing slowing them.
const zeroGFriction = 0.996

// Game implements the ball pit for the platform.
type Game struct {
	mode Mode

	world   *sim.World
	rtCfg   core.RuntimeConfig
	fileCfg config.Config
	tick    uint64

	score    int
	restarts int
	paused   bool
	tooSmall bool

	arenaW int
	arenaH int
}

// Package-level variables for config, set by the CLI before the game starts.
var (
	configPath string
	preset     = config.PresetNormal
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetPreset selects the physics preset applied over the loaded config.
func SetPreset(p config.Preset) {
	preset = p
}

// New creates a classic ball pit.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewZeroG creates a zero-gravity ball pit.
func NewZeroG() *Game {
	return &Game{mode: ModeZeroG}
}

func init() {
	registry.Register(string(ModeClassic), func() registry.Game {
		return New()
	})
	registry.Register(string(ModeZeroG), func() registry.Game {
		return NewZeroG()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeZeroG {
		return "Ball Pit (Zero-G)"
	}
	return "Ball Pit"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rtCfg = cfg
	g.tick = 0
	g.score = 0
	g.restarts = 0
	g.paused = false

	g.arenaW = core.Max(cfg.ScreenW, 1)
	g.arenaH = core.Max(cfg.ScreenH-2, 1)
	g.tooSmall = cfg.ScreenW < minScreenW || cfg.ScreenH < minScreenH

	fileCfg, err := config.Load(configPath)
	if err != nil {
		fileCfg = config.DefaultConfig()
	}
	config.ApplyPreset(&fileCfg, preset)
	g.fileCfg = fileCfg

	g.initWorld()
}

// initWorld builds a fresh world and spawns the starting grid.
func (g *Game) initWorld() {
	params := paramsFromConfig(g.fileCfg)
	if g.mode == ModeZeroG {
		params.Gravity = 0
		params.Friction = zeroGFriction
	}

	// Mixing the restart count into the seed gives every in-session
	// restart a fresh layout while keeping replays deterministic.
	seed := g.rtCfg.Seed + int64(g.restarts)
	g.world = sim.New(float64(g.arenaW), float64(g.arenaH), params, seed)
	g.spawnGrid(g.fileCfg.Balls.InitialCount)
}

// spawnGrid drops the initial balls in a centered grid: columns spread
// around the arena middle, rows banded by index.
func (g *Game) spawnGrid(n int) {
	cx := float64(g.arenaW) / 2
	for i := 0; i < n; i++ {
		r := g.world.RandomRadius()
		x := cx + float64(i-n/2)*gridSpacingX
		x = core.ClampF(x, r, float64(g.arenaW)-r)
		y := gridTopY + float64(i%3)*gridRowStep
		g.world.Spawn(x, y, r)
	}
}

// paramsFromConfig maps the YAML config onto engine constants. Spawn and
// eject band margins keep their engine defaults; they are internal
// tuning, not user-facing knobs.
func paramsFromConfig(cfg config.Config) sim.Params {
	p := sim.DefaultParams()
	p.Gravity = cfg.Physics.Gravity
	p.Friction = cfg.Physics.Friction
	p.BounceDamping = cfg.Physics.BounceDamping
	p.FlickFactor = cfg.Physics.FlickFactor
	p.DefaultRadius = cfg.Balls.DefaultRadius
	p.MinRadius = cfg.Balls.MinRadius
	p.MaxRadius = cfg.Balls.MaxRadius
	p.SpawnSpeed = cfg.Balls.SpawnSpeed
	p.EjectSpeed = cfg.Balls.EjectSpeed
	p.MinColorValue = cfg.Colors.MinValue
	p.MaxColorValue = cfg.Colors.MaxValue
	p.MinBrightness = cfg.Colors.MinBrightness
	p.MaxBrightness = cfg.Colors.MaxBrightness
	p.DeleteZoneHeight = cfg.Zones.DeleteHeight
	p.InventoryOffsetX = cfg.Zones.InventoryOffsetX
	p.InventoryOffsetY = cfg.Zones.InventoryOffsetY
	p.InventoryRadius = cfg.Zones.InventoryRadius
	return p
}

// arena returns the arena region in screen cells.
func (g *Game) arena() core.Rect {
	return core.NewRect(0, arenaTop, g.arenaW, g.arenaH)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.restarts++
		g.score = 0
		g.initWorld()
		return core.StepResult{State: g.State()}
	}

	var catches []core.CatchEvent

	// Pointer events, mapped from screen cells to arena coordinates.
	if in.Pointer.Any() {
		px := float64(in.Pointer.X)
		py := float64(in.Pointer.Y - arenaTop)
		switch {
		case in.Pointer.Press:
			if g.arena().Contains(in.Pointer.X, in.Pointer.Y) {
				g.world.BeginDrag(px, py)
			}
		case in.Pointer.Motion:
			g.world.UpdateDrag(px, py)
		case in.Pointer.Release:
			if g.world.EndDrag(px, py) == sim.DropStored {
				catches = append(catches, g.scoreCatch())
			}
		}
	}

	if in.Has(core.ActionAddBall) {
		g.world.SpawnRandom()
	}

	if in.EjectSlot > 0 {
		g.world.Eject(in.EjectSlot - 1)
	}

	g.world.Step(1)

	return core.StepResult{
		State:   g.State(),
		Catches: catches,
	}
}

// scoreCatch awards points for the ball that just landed in the
// inventory (always the newest slot) and builds its catch event.
func (g *Game) scoreCatch() core.CatchEvent {
	slots := g.world.Inventory()
	last := slots[len(slots)-1]
	g.score += int(math.Round(last.Quality * 100))
	return core.CatchEvent{
		Color:   core.RGB(last.Color.R, last.Color.G, last.Color.B),
		Quality: last.Quality,
	}
}

// State returns the current game state. The pit is a sandbox: there is
// no game over, only the running score.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: false,
		Paused:   g.paused || g.tooSmall,
	}
}
