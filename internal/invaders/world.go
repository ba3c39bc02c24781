// Package invaders implements the Spacey Invader simulation: an entity
// store, and the per-tick phases that spawn, move, collide and animate
// entities over it. It knows nothing about terminals or windows; platforms
// drive it through Tick and observe it through Visuals and the store.
package invaders

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spacey-invader/internal/config"
	"github.com/vovakirdan/spacey-invader/internal/core"
	"github.com/vovakirdan/spacey-invader/internal/logging"
)

// Options configures a World. Zero fields take defaults.
type Options struct {
	Width     float64 // Playfield width (default 600)
	Height    float64 // Playfield height (default 800)
	TickRate  int     // Fixed ticks per second (default 60)
	GameSpeed float64 // Velocity scale (default 500)

	Rand    Rand        // Default: math/rand seeded with Seed
	Seed    int64       // Used only when Rand is nil
	Clock   Clock       // Default: a SystemClock
	Visuals Visuals     // Default: NopVisuals
	Logger  *log.Logger // Default: discard
}

// DefaultOptions returns options matching the default configuration.
func DefaultOptions() Options {
	return OptionsFromConfig(config.DefaultInvadersConfig())
}

// OptionsFromConfig copies the playfield and timing values from cfg.
func OptionsFromConfig(cfg config.InvadersConfig) Options {
	return Options{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		TickRate:  cfg.Timing.TickRate,
		GameSpeed: cfg.Timing.GameSpeed,
	}
}

func (o Options) withDefaults() Options {
	def := config.DefaultInvadersConfig()
	if o.Width <= 0 {
		o.Width = def.Window.Width
	}
	if o.Height <= 0 {
		o.Height = def.Window.Height
	}
	if o.TickRate <= 0 {
		o.TickRate = def.Timing.TickRate
	}
	if o.GameSpeed <= 0 {
		o.GameSpeed = def.Timing.GameSpeed
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(o.Seed))
	}
	if o.Clock == nil {
		o.Clock = NewSystemClock()
	}
	if o.Visuals == nil {
		o.Visuals = NopVisuals{}
	}
	if o.Logger == nil {
		o.Logger = logging.Discard()
	}
	return o
}

// TickReport summarizes what happened during one tick.
type TickReport struct {
	EnemiesSpawned int
	EnemiesRemoved int
	Kills          int
	PlayerDeaths   int
	PlayerSpawned  bool
	BulletsFired   int
	Explosions     int
}

// Stats accumulates TickReports over a session.
type Stats struct {
	Ticks          uint64
	EnemiesSpawned int
	EnemiesRemoved int
	Kills          int
	PlayerDeaths   int
	PlayerSpawns   int
	BulletsFired   int
	Explosions     int
	BestScore      uint32
	Violations     int
}

func (s *Stats) add(r TickReport) {
	s.Ticks++
	s.EnemiesSpawned += r.EnemiesSpawned
	s.EnemiesRemoved += r.EnemiesRemoved
	s.Kills += r.Kills
	s.PlayerDeaths += r.PlayerDeaths
	s.BulletsFired += r.BulletsFired
	s.Explosions += r.Explosions
	if r.PlayerSpawned {
		s.PlayerSpawns++
	}
}

// World is one simulation session.
type World struct {
	opts    Options
	rng     Rand
	clock   Clock
	visuals Visuals
	log     *log.Logger

	store  *Store
	state  State
	player Handle

	enemySpawn  Timer
	playerSpawn Timer
	fire        EdgeDetector

	now    time.Duration
	report TickReport
	stats  Stats

	// Scratch slices reused by the collision phase
	enemies       []target
	playerBullets []target
	enemyBullets  []target
}

// NewWorld creates an empty world. The player appears on the first spawn
// check, half a second of game time in.
func NewWorld(opts Options) *World {
	opts = opts.withDefaults()
	return &World{
		opts:        opts,
		rng:         opts.Rand,
		clock:       opts.Clock,
		visuals:     opts.Visuals,
		log:         opts.Logger,
		store:       NewStore(),
		enemySpawn:  NewTimer(EnemySpawnInterval),
		playerSpawn: NewTimer(PlayerSpawnCheck),
	}
}

// Tick runs one fixed simulation step: spawn, move, collide, explode,
// animate, then apply every removal recorded during the tick.
func (w *World) Tick(in core.InputFrame) TickReport {
	now := w.clock.Now()
	var dt time.Duration
	if now > w.now {
		dt = now - w.now
	}
	w.now = now
	w.report = TickReport{}

	w.runSpawner(in, dt)
	w.runMovement()
	w.runCollisions()
	w.runExplosions(dt)
	w.runAnimation(dt)
	w.flush()

	w.stats.add(w.report)
	if w.state.Score > w.stats.BestScore {
		w.stats.BestScore = w.state.Score
	}
	return w.report
}

// step is the distance scale applied to velocities each tick.
func (w *World) step() float64 {
	return w.opts.GameSpeed / float64(w.opts.TickRate)
}

// spawn creates an entity and announces renderable ones to the platform.
func (w *World) spawn(e Entity) Handle {
	h := w.store.Create(e)
	if e.Kind.Renderable() {
		w.visuals.SpawnVisual(h, e.Kind, e.Pos, e.Scale, e.Sheet)
	}
	return h
}

// despawn records the removal of h once, keeping the enemy count and the
// player handle in step with the store.
func (w *World) despawn(h Handle) bool {
	e, ok := w.store.Get(h)
	if !ok || !w.store.Destroy(h) {
		return false
	}
	switch e.Kind {
	case KindEnemy:
		if !w.state.EnemyRemoved() {
			w.invariant("enemy count underflow", "handle", h)
		}
		w.report.EnemiesRemoved++
	case KindPlayer:
		if w.player == h {
			w.player = Handle{}
		}
	}
	return true
}

func (w *World) requestExplosion(pos core.Vec2, scale float64) {
	w.store.Create(newExplosionRequest(pos, scale))
}

func (w *World) flush() {
	w.store.Flush(func(h Handle, e *Entity) {
		if e.Kind.Renderable() {
			w.visuals.DespawnVisual(h)
		}
	})
}

// Store returns the entity store. Platforms read it to draw; they must not
// create or destroy entities.
func (w *World) Store() *Store {
	return w.store
}

// State returns a copy of the shared game state.
func (w *World) State() State {
	return w.state
}

// Stats returns the accumulated session statistics.
func (w *World) Stats() Stats {
	return w.stats
}

// Now returns the game time of the last tick.
func (w *World) Now() time.Duration {
	return w.now
}

// Bounds returns the playfield width and height.
func (w *World) Bounds() (width, height float64) {
	return w.opts.Width, w.opts.Height
}

// Player returns the live player entity, if any.
func (w *World) Player() (Handle, *Entity, bool) {
	e, ok := w.store.Get(w.player)
	if !ok {
		return Handle{}, nil, false
	}
	return w.player, e, true
}

// Overlay returns the values shown as overlay text.
func (w *World) Overlay() Overlay {
	o := Overlay{Score: w.state.Score}
	if _, p, ok := w.Player(); ok {
		o.PlayerAlive = true
		o.Health = p.Health
	}
	return o
}
