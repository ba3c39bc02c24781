package invaders

type target struct {
	h Handle
	e *Entity
}

func (t target) hits(o target) bool {
	return t.e.Box().Overlaps(o.e.Box())
}

// collect sorts live collidables into the scratch slices.
func (w *World) collect() {
	w.enemies = w.enemies[:0]
	w.playerBullets = w.playerBullets[:0]
	w.enemyBullets = w.enemyBullets[:0]

	w.store.Each(HasPosition|HasSize, func(h Handle, e *Entity) {
		switch {
		case e.Kind == KindEnemy:
			w.enemies = append(w.enemies, target{h, e})
		case e.Kind == KindBullet && e.Origin == FromPlayer:
			w.playerBullets = append(w.playerBullets, target{h, e})
		case e.Kind == KindBullet && e.Origin == FromEnemy:
			w.enemyBullets = append(w.enemyBullets, target{h, e})
		}
	})
}

// removed reports whether t was despawned earlier in this tick.
func (w *World) removed(t target) bool {
	return w.store.Removed(t.h)
}

// runCollisions evaluates the four collision passes in fixed order.
// Every pass skips entities already despawned this tick.
func (w *World) runCollisions() {
	w.collect()
	w.enemyBulletsVsPlayer()
	w.enemiesVsPlayer()
	w.playerBulletsVsEnemyBullets()
	w.playerBulletsVsEnemies()
}

func (w *World) livePlayer() (target, bool) {
	h, e, ok := w.Player()
	return target{h, e}, ok
}

// damagePlayer removes one health point and runs the death sequence when
// it reaches zero. It returns true if the player died.
func (w *World) damagePlayer(p target) bool {
	p.e.Health--
	if p.e.Health > 0 {
		return false
	}
	p.e.Health = 0

	w.requestExplosion(p.e.Pos, LargeExplosion)
	w.despawn(p.h)
	w.state.PlayerDied(w.now)
	w.report.PlayerDeaths++
	w.log.Info("player destroyed", "t", w.now, "handle", p.h)
	return true
}

func (w *World) enemyBulletsVsPlayer() {
	p, ok := w.livePlayer()
	if !ok {
		return
	}
	for _, b := range w.enemyBullets {
		if w.removed(b) || !b.hits(p) {
			continue
		}
		w.requestExplosion(b.e.Pos, SmallExplosion)
		w.despawn(b.h)
		if w.damagePlayer(p) {
			return
		}
	}
}

func (w *World) enemiesVsPlayer() {
	p, ok := w.livePlayer()
	if !ok {
		return
	}
	for _, en := range w.enemies {
		if w.removed(en) || !en.hits(p) {
			continue
		}
		w.despawn(en.h)
		w.requestExplosion(en.e.Pos, LargeExplosion)
		if w.damagePlayer(p) {
			return
		}
	}
}

func (w *World) playerBulletsVsEnemyBullets() {
	for _, pb := range w.playerBullets {
		if w.removed(pb) {
			continue
		}
		for _, eb := range w.enemyBullets {
			if w.removed(eb) || !pb.hits(eb) {
				continue
			}
			w.requestExplosion(eb.e.Pos, SmallExplosion)
			w.despawn(pb.h)
			w.despawn(eb.h)
			break
		}
	}
}

// playerBulletsVsEnemies lets each player bullet damage at most one enemy.
// A bullet that only wounds is consumed; a bullet that kills flies on.
func (w *World) playerBulletsVsEnemies() {
	for _, pb := range w.playerBullets {
		if w.removed(pb) {
			continue
		}
		for _, en := range w.enemies {
			if w.removed(en) || !pb.hits(en) {
				continue
			}

			en.e.Health--
			if en.e.Health <= 0 {
				en.e.Health = 0
				w.requestExplosion(en.e.Pos, LargeExplosion)
				w.despawn(en.h)
				w.state.EnemyKilled()
				w.report.Kills++
				break
			}

			w.requestExplosion(pb.e.Pos, SmallExplosion)
			w.despawn(pb.h)
			break
		}
	}
}
