package invaders

import "time"

// Gameplay rules. These are fixed; only the window, timing and frontend
// values come from configuration.

// Spawning
const (
	MaxEnemies         = 15
	EnemySpawnInterval = 500 * time.Millisecond
	EnemySpawnMargin   = 20.0 // Keeps spawned enemies away from the side walls
	PlayerSpawnCheck   = 500 * time.Millisecond
	PlayerRespawnDelay = 2 * time.Second
	PlayerBottomOffset = 100.0 // Player spawns this far above the bottom edge
	EnemyFireChance    = 1.0 / 100.0
	EnemyMuzzleOffset  = -25.0
	PlayerMuzzleOffset = 50.0
)

// Health
const (
	PlayerHealth = 5.0
	EnemyHealth  = 2.0
)

// Velocities, in units per tick before the game-speed scale
var (
	EnemyVelocity        = vec(0, -0.3)
	EnemyBulletVelocity  = vec(0, -1)
	PlayerBulletVelocity = vec(0, 1)
)

// Sizes
var (
	PlayerSize = vec(32, 32)
	EnemySize  = vec(64, 64)
	BulletSize = vec(10, 10)
	SheetCell  = vec(64, 64) // One cell of every sprite sheet
)

// Playfield bounds, relative to the window size
const (
	BulletCeilingMargin = 400.0 // Bullets above Height-400 are culled
)

// Animation
const (
	AnimationInterval = 100 * time.Millisecond
	ExplosionInterval = 50 * time.Millisecond
	ShipFrames        = 4  // Player and enemy sheets: 1 column x 4 rows
	ExplosionFrames   = 16 // Explosion sheet: 1 column x 16 rows
)

// Explosion scales
const (
	SmallExplosion = 0.5
	LargeExplosion = 1.5
)
