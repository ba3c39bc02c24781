package invaders

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/spacey-invader/internal/core"
)

// GameState is the summary a frontend needs after each step.
type GameState struct {
	Score       uint32
	Health      float64
	PlayerAlive bool
	Paused      bool
	Tick        uint64
}

// Game adapts a World to the frontends: it owns a game clock that only
// runs while unpaused, and handles pause and restart requests.
type Game struct {
	opts    Options
	hudRows int
	config  core.RuntimeConfig

	world  *World
	clock  *ManualClock
	paused bool
	fps    float64
}

// NewGame creates a game. opts.Clock and opts.Rand are replaced on every
// Reset; the other options are kept.
func NewGame(opts Options, hudRows int) *Game {
	if hudRows < 1 {
		hudRows = 1
	}
	return &Game{opts: opts, hudRows: hudRows}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Spacey Invader"
}

// Reset starts a new session seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.clock = &ManualClock{}
	g.paused = false

	if cv, ok := g.opts.Visuals.(ClearableVisuals); ok {
		cv.Clear()
	}

	opts := g.opts
	opts.Clock = g.clock
	opts.Rand = rand.New(rand.NewSource(cfg.Seed))
	if cfg.TickRate > 0 {
		opts.TickRate = cfg.TickRate
	}
	g.world = NewWorld(opts)
}

// Step advances game time by elapsed and runs one tick, unless paused.
func (g *Game) Step(in core.InputFrame, elapsed time.Duration) GameState {
	if g.world == nil {
		g.Reset(g.config)
	}

	if in.Has(core.ActionRestart) {
		g.world.log.Info("session restarted", "score", g.world.state.Score)
		g.Reset(g.config)
		return g.State()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.State()
	}

	g.clock.Advance(elapsed)
	g.world.Tick(in)
	return g.State()
}

// State returns the current game state.
func (g *Game) State() GameState {
	if g.world == nil {
		return GameState{}
	}
	o := g.world.Overlay()
	return GameState{
		Score:       o.Score,
		Health:      o.Health,
		PlayerAlive: o.PlayerAlive,
		Paused:      g.paused,
		Tick:        g.world.stats.Ticks,
	}
}

// World returns the running world.
func (g *Game) World() *World {
	return g.world
}

// SetFPS records the frame rate measured by the platform for the overlay.
func (g *Game) SetFPS(fps float64) {
	g.fps = fps
}

// FPS returns the last frame rate reported by the platform.
func (g *Game) FPS() float64 {
	return g.fps
}
