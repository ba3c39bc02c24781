package invaders

import "github.com/vovakirdan/spacey-invader/internal/core"

// Autopilot produces deterministic input from the world state: it steers
// under the lowest enemy still above the ship and taps fire on a fixed
// period. The headless
// simulation and long-running tests use it in place of a keyboard.
type Autopilot struct {
	FireEvery int     // Ticks per fire press; the button is held for half of it
	DeadZone  float64 // Horizontal distance considered "lined up"
	tick      int
}

// NewAutopilot creates an autopilot with the default cadence.
func NewAutopilot() *Autopilot {
	return &Autopilot{FireEvery: 20, DeadZone: 8}
}

// Next returns the input for the coming tick.
func (a *Autopilot) Next(w *World) core.InputFrame {
	in := core.NewInputFrame()
	if a.FireEvery > 1 && a.tick%a.FireEvery < a.FireEvery/2 {
		in.Set(core.ActionFire)
	}
	a.tick++

	_, p, ok := w.Player()
	if !ok {
		return in
	}

	var (
		target core.Vec2
		found  bool
	)
	w.Store().EachKind(KindEnemy, func(_ Handle, e *Entity) {
		if e.Pos.Y <= p.Pos.Y {
			return
		}
		if !found || e.Pos.Y < target.Y {
			target = e.Pos
			found = true
		}
	})
	if !found {
		return in
	}

	switch dx := target.X - p.Pos.X; {
	case dx < -a.DeadZone:
		in.Set(core.ActionLeft)
	case dx > a.DeadZone:
		in.Set(core.ActionRight)
	}
	return in
}
