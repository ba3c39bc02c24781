package invaders

import "time"

// runAnimation cycles sprite frames of ships. Purely cosmetic.
func (w *World) runAnimation(dt time.Duration) {
	w.store.Each(HasAnimation, func(h Handle, e *Entity) {
		if e.Kind == KindExplosion || e.Frames <= 0 {
			return
		}
		if e.AnimTimer.Tick(dt) == 0 {
			return
		}
		e.Frame = (e.Frame + 1) % e.Frames
		w.visuals.SetSpriteFrame(h, e.Frame)
	})
}
