package invaders

import "github.com/vovakirdan/spacey-invader/internal/core"

// runMovement integrates every moving entity by one fixed step and culls
// those that left the playfield.
func (w *World) runMovement() {
	step := w.step()
	halfW := w.opts.Width / 2
	h := w.opts.Height

	w.store.Each(HasPosition|HasVelocity, func(handle Handle, e *Entity) {
		e.Pos = e.Pos.Add(e.Vel.Scale(step))

		switch e.Kind {
		case KindPlayer:
			margin := SheetCell.X / 2
			e.Pos.X = core.ClampF(e.Pos.X, -halfW+margin, halfW-margin)
		case KindEnemy:
			if e.Pos.Y < -h {
				w.despawn(handle)
			}
		case KindBullet:
			if e.AutoDespawn && (e.Pos.Y > h-BulletCeilingMargin || e.Pos.Y < -h/2) {
				w.despawn(handle)
			}
		}
	})
}
