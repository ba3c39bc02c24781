package invaders

import "time"

// runExplosions advances live explosions on their own cadence, then turns
// this tick's explosion requests into explosions starting at frame 0.
func (w *World) runExplosions(dt time.Duration) {
	w.store.Each(HasExplosion, func(h Handle, e *Entity) {
		if e.FrameTimer.Tick(dt) == 0 {
			return
		}
		e.Frame++
		if e.Frame >= ExplosionFrames {
			w.despawn(h)
			return
		}
		w.visuals.SetSpriteFrame(h, e.Frame)
	})

	w.store.Each(HasRequest, func(h Handle, e *Entity) {
		w.spawn(newExplosion(e.Pos, e.Scale))
		w.despawn(h)
		w.report.Explosions++
	})
}
