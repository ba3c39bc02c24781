package invaders

import (
	"testing"
	"time"
)

func TestSingleDeathSequence(t *testing.T) {
	w, clk, _ := testWorld(nil)
	p := spawnPlayer(w, clk)
	p.Health = 1

	placeBullet(w, 0, -295, FromEnemy)
	second := placeBullet(w, 2, -295, FromEnemy)
	enemy := placeEnemy(w, 0, -290)

	r := advance(w, clk, frame)
	if r.PlayerDeaths != 1 {
		t.Fatalf("PlayerDeaths = %d, expected 1", r.PlayerDeaths)
	}
	if p.Health != 0 {
		t.Errorf("health = %v, expected 0", p.Health)
	}
	if _, _, ok := w.Player(); ok {
		t.Error("player should be gone")
	}
	if r.Explosions != 2 {
		t.Errorf("explosions = %d, expected one small and one large", r.Explosions)
	}
	if !w.Store().Alive(second) || !w.Store().Alive(enemy) {
		t.Error("collisions after the death should not be processed")
	}
	st := w.State()
	if st.Player.Alive || !st.Player.HasDied || st.Score != 0 {
		t.Errorf("state after death = %+v", st)
	}
}

func TestRespawnAfterDelay(t *testing.T) {
	w, clk, _ := testWorld(nil)
	p := spawnPlayer(w, clk)
	p.Health = 1
	placeBullet(w, 0, -295, FromEnemy)
	advance(w, clk, frame)
	death := w.State().Player.LastDeath

	for w.Now() < death+PlayerRespawnDelay {
		advance(w, clk, 100*time.Millisecond)
		if w.Now() <= death+PlayerRespawnDelay {
			if _, _, ok := w.Player(); ok {
				t.Fatalf("player respawned at %v, death at %v", w.Now(), death)
			}
		}
	}
	for i := 0; i < 10; i++ {
		advance(w, clk, 100*time.Millisecond)
	}
	_, np, ok := w.Player()
	if !ok {
		t.Fatal("player should respawn after the delay")
	}
	if np.Health != PlayerHealth {
		t.Errorf("respawned health = %v", np.Health)
	}
	if w.Stats().PlayerSpawns != 2 {
		t.Errorf("PlayerSpawns = %d, expected 2", w.Stats().PlayerSpawns)
	}
}

func TestEnemyRamsPlayer(t *testing.T) {
	w, clk, _ := testWorld(nil)
	p := spawnPlayer(w, clk)
	enemy := placeEnemy(w, 10, -280)

	r := advance(w, clk, frame)
	if w.Store().Alive(enemy) {
		t.Error("enemy should be destroyed by the collision")
	}
	if p.Health != PlayerHealth-1 {
		t.Errorf("player health = %v, expected 4", p.Health)
	}
	// One more enemy entered at the top on the spawn tick.
	if r.EnemiesRemoved != 1 || w.State().EnemyCount != 1 {
		t.Errorf("EnemiesRemoved=%d EnemyCount=%d", r.EnemiesRemoved, w.State().EnemyCount)
	}
	if w.State().Score != 0 {
		t.Error("ramming does not score")
	}
}

func TestKillScoresOnce(t *testing.T) {
	w, clk, _ := testWorld(nil)
	enemy := placeEnemy(w, 0, 0)
	first := placeBullet(w, 0, -10, FromPlayer)
	second := placeBullet(w, 4, -10, FromPlayer)

	r := advance(w, clk, 0)
	if r.Kills != 1 || w.State().Score != 1 {
		t.Errorf("kills=%d score=%d, expected 1 and 1", r.Kills, w.State().Score)
	}
	if w.Store().Alive(enemy) {
		t.Error("enemy should be dead after two hits")
	}
	if w.Store().Alive(first) {
		t.Error("wounding bullet should be consumed")
	}
	if !w.Store().Alive(second) {
		t.Error("killing bullet should fly on")
	}

	advance(w, clk, 0)
	if w.State().Score != 1 {
		t.Errorf("score = %d after another tick, expected 1", w.State().Score)
	}
}

func TestWoundingBulletHitsOneEnemy(t *testing.T) {
	w, clk, _ := testWorld(nil)
	a := placeEnemy(w, 0, 0)
	b := placeEnemy(w, 10, 0)
	placeBullet(w, 5, -10, FromPlayer)

	advance(w, clk, 0)
	ea, _ := w.Store().Get(a)
	eb, _ := w.Store().Get(b)
	if ea.Health+eb.Health != 2*EnemyHealth-1 {
		t.Errorf("health a=%v b=%v, expected exactly one wounded", ea.Health, eb.Health)
	}
	if countBullets(w, FromPlayer) != 0 {
		t.Error("wounding bullet should be consumed")
	}
}

func TestBulletsCancel(t *testing.T) {
	w, clk, _ := testWorld(nil)
	pb := placeBullet(w, 0, 0, FromPlayer)
	placeBullet(w, 0, 10, FromEnemy)
	placeBullet(w, 3, 12, FromEnemy)

	r := advance(w, clk, 0)
	if w.Store().Alive(pb) {
		t.Error("player bullet should be consumed")
	}
	if countBullets(w, FromEnemy) != 1 {
		t.Errorf("%d enemy bullets left, expected 1", countBullets(w, FromEnemy))
	}
	if r.Explosions != 1 {
		t.Errorf("explosions = %d, expected 1", r.Explosions)
	}
}

func TestDespawnOnce(t *testing.T) {
	w, _, vis := testWorld(nil)
	h := placeEnemy(w, 0, 0)

	if !w.despawn(h) {
		t.Fatal("first despawn should succeed")
	}
	if w.despawn(h) {
		t.Error("second despawn should be a no-op")
	}
	if w.State().EnemyCount != 0 {
		t.Errorf("EnemyCount = %d, expected 0", w.State().EnemyCount)
	}
	w.flush()
	if len(vis.despawned) != 1 {
		t.Errorf("DespawnVisual called %d times, expected 1", len(vis.despawned))
	}
	if w.Stats().Violations != 0 {
		t.Errorf("unexpected violations: %d", w.Stats().Violations)
	}
}
