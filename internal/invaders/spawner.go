package invaders

import (
	"time"

	"github.com/vovakirdan/spacey-invader/internal/core"
)

// runSpawner creates enemies and the player on their timers, applies player
// input, and fires bullets. It never fails; unmet preconditions skip work.
func (w *World) runSpawner(in core.InputFrame, dt time.Duration) {
	for i, n := 0, w.enemySpawn.Tick(dt); i < n; i++ {
		w.trySpawnEnemy()
	}
	for i, n := 0, w.playerSpawn.Tick(dt); i < n; i++ {
		w.trySpawnPlayer()
	}
	w.applyPlayerInput(in)
	w.enemyFire()
}

func (w *World) trySpawnEnemy() {
	if w.state.EnemyCount >= MaxEnemies {
		return
	}
	lo := -w.opts.Width/2 + EnemySpawnMargin
	hi := w.opts.Width/2 - EnemySpawnMargin
	x := lo + w.rng.Float64()*(hi-lo)

	w.spawn(newEnemy(vec(x, w.opts.Height)))
	w.state.EnemySpawned()
	w.report.EnemiesSpawned++
}

func (w *World) trySpawnPlayer() {
	if !w.state.Player.CanRespawn(w.now, PlayerRespawnDelay) {
		return
	}
	if w.store.Alive(w.player) {
		w.invariant("player spawn while a player is live", "handle", w.player)
		w.state.Player.Spawned()
		return
	}

	w.player = w.spawn(newPlayer(vec(0, -w.opts.Height/2+PlayerBottomOffset)))
	w.state.Player.Spawned()
	w.report.PlayerSpawned = true
	w.log.Debug("player spawned", "handle", w.player, "t", w.now)
}

// applyPlayerInput steers the player and fires on the rising edge of the
// fire level. The edge is tracked even while no player is live, so holding
// fire through a respawn does not shoot.
func (w *World) applyPlayerInput(in core.InputFrame) {
	firing := w.fire.Rising(in.Has(core.ActionFire))

	_, p, ok := w.Player()
	if !ok {
		return
	}

	switch {
	case in.Has(core.ActionLeft):
		p.Vel.X = -1
	case in.Has(core.ActionRight):
		p.Vel.X = 1
	default:
		p.Vel.X = 0
	}

	if firing {
		w.spawn(newBullet(vec(p.Pos.X, p.Pos.Y+PlayerMuzzleOffset), FromPlayer))
		w.report.BulletsFired++
	}
}

// enemyFire rolls once per tick; on success every live enemy fires.
func (w *World) enemyFire() {
	if w.rng.Float64() >= EnemyFireChance {
		return
	}
	w.store.EachKind(KindEnemy, func(_ Handle, e *Entity) {
		w.spawn(newBullet(vec(e.Pos.X, e.Pos.Y+EnemyMuzzleOffset), FromEnemy))
		w.report.BulletsFired++
	})
}
