package invaders

import "time"

// PlayerState tracks whether the player ship is in play and when it last died.
type PlayerState struct {
	Alive     bool
	HasDied   bool          // False until the first death, and again after each respawn
	LastDeath time.Duration // Game time of the last death; meaningful only if HasDied
}

// Killed transitions Alive -> Dead at game time now.
func (p *PlayerState) Killed(now time.Duration) {
	p.Alive = false
	p.HasDied = true
	p.LastDeath = now
}

// Spawned transitions Dead -> Alive and forgets the last death.
func (p *PlayerState) Spawned() {
	p.Alive = true
	p.HasDied = false
	p.LastDeath = 0
}

// CanRespawn reports whether a new player may be spawned at game time now.
func (p PlayerState) CanRespawn(now, delay time.Duration) bool {
	if p.Alive {
		return false
	}
	return !p.HasDied || now > p.LastDeath+delay
}

// State is the process-wide game state shared by every phase of a tick.
type State struct {
	Player     PlayerState
	Score      uint32
	EnemyCount uint32
}

// EnemySpawned records a new enemy.
func (s *State) EnemySpawned() {
	s.EnemyCount++
}

// EnemyRemoved records an enemy leaving play. It returns false, leaving the
// count at zero, if there was no enemy to remove.
func (s *State) EnemyRemoved() bool {
	if s.EnemyCount == 0 {
		return false
	}
	s.EnemyCount--
	return true
}

// EnemyKilled records an enemy destroyed by the player.
func (s *State) EnemyKilled() {
	s.Score++
}

// PlayerDied resets the score and marks the player dead at game time now.
func (s *State) PlayerDied(now time.Duration) {
	s.Score = 0
	s.Player.Killed(now)
}
