package invaders

import (
	"time"

	"github.com/vovakirdan/spacey-invader/internal/core"
)

// Clock reports game time since the session started.
type Clock interface {
	Now() time.Duration
}

// Rand is the random source used for spawn positions and enemy fire.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// ManualClock is a Clock advanced explicitly by its owner.
type ManualClock struct {
	now time.Duration
}

// Now returns the current game time.
func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward by d. Negative values are ignored.
func (c *ManualClock) Advance(d time.Duration) {
	if d > 0 {
		c.now += d
	}
}

// Set jumps the clock to t.
func (c *ManualClock) Set(t time.Duration) {
	c.now = t
}

// SystemClock reports wall time since it was created.
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a clock starting at zero now.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now returns the wall time elapsed since creation.
func (c *SystemClock) Now() time.Duration {
	return time.Since(c.start)
}

// Visuals is the platform side of the simulation. The World calls it when
// renderable entities appear, disappear or change animation frame.
type Visuals interface {
	SpawnVisual(h Handle, kind Kind, pos core.Vec2, scale float64, sheet SheetID)
	DespawnVisual(h Handle)
	SetSpriteFrame(h Handle, frame int)
}

// ClearableVisuals is a Visuals that keeps per-entity state. Game clears it
// whenever a new session starts.
type ClearableVisuals interface {
	Visuals
	Clear()
}

// NopVisuals ignores every call. Frontends that draw straight from the
// store use it.
type NopVisuals struct{}

func (NopVisuals) SpawnVisual(Handle, Kind, core.Vec2, float64, SheetID) {}
func (NopVisuals) DespawnVisual(Handle)                                  {}
func (NopVisuals) SetSpriteFrame(Handle, int)                            {}

// EdgeDetector turns a level signal into rising edges.
type EdgeDetector struct {
	prev bool
}

// Rising reports whether level is high now and was low on the previous call.
func (d *EdgeDetector) Rising(level bool) bool {
	rising := level && !d.prev
	d.prev = level
	return rising
}
