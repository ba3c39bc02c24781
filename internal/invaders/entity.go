package invaders

import (
	"github.com/vovakirdan/spacey-invader/internal/core"
)

// Kind identifies what an entity is.
type Kind uint8

const (
	KindNone Kind = iota
	KindPlayer
	KindEnemy
	KindBullet
	KindExplosionRequest
	KindExplosion
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindBullet:
		return "bullet"
	case KindExplosionRequest:
		return "explosion-request"
	case KindExplosion:
		return "explosion"
	default:
		return "none"
	}
}

// Renderable reports whether the platform draws entities of this kind.
func (k Kind) Renderable() bool {
	return k == KindPlayer || k == KindEnemy || k == KindBullet || k == KindExplosion
}

// Origin tags who fired a bullet.
type Origin uint8

const (
	FromPlayer Origin = iota + 1
	FromEnemy
)

// Mask is the set of attributes an entity carries.
type Mask uint16

const (
	HasPosition Mask = 1 << iota
	HasVelocity
	HasSize
	HasHealth
	HasAnimation
	HasBullet
	HasExplosion
	HasRequest
	HasSpawnPosition
)

// SheetID names a sprite sheet known to the platform.
type SheetID uint8

const (
	SheetNone SheetID = iota
	SheetPlayer
	SheetEnemy
	SheetExplosion
	SheetPlayerBullet
	SheetEnemyBullet
)

// Entity holds every attribute an entity may carry. Mask says which ones
// are meaningful.
type Entity struct {
	Kind Kind
	Mask Mask

	Pos      core.Vec2
	Vel      core.Vec2
	Size     core.Vec2
	Scale    float64
	Health   float64
	SpawnPos core.Vec2

	Origin      Origin
	AutoDespawn bool

	Sheet      SheetID
	Frame      int
	Frames     int
	AnimTimer  Timer
	FrameTimer Timer // Explosion cadence
}

// Has reports whether the entity carries every attribute in m.
func (e *Entity) Has(m Mask) bool {
	return e.Mask&m == m
}

// Box returns the entity's collision box.
func (e *Entity) Box() core.Box {
	return core.NewBox(e.Pos, e.Size, e.Scale)
}

func vec(x, y float64) core.Vec2 {
	return core.Vec2{X: x, Y: y}
}

func newPlayer(pos core.Vec2) Entity {
	return Entity{
		Kind:      KindPlayer,
		Mask:      HasPosition | HasVelocity | HasSize | HasHealth | HasAnimation,
		Pos:       pos,
		Size:      PlayerSize,
		Scale:     1,
		Health:    PlayerHealth,
		Sheet:     SheetPlayer,
		Frames:    ShipFrames,
		AnimTimer: NewTimer(AnimationInterval),
	}
}

func newEnemy(pos core.Vec2) Entity {
	return Entity{
		Kind:      KindEnemy,
		Mask:      HasPosition | HasVelocity | HasSize | HasHealth | HasAnimation | HasSpawnPosition,
		Pos:       pos,
		Vel:       EnemyVelocity,
		Size:      EnemySize,
		Scale:     1,
		Health:    EnemyHealth,
		SpawnPos:  pos,
		Sheet:     SheetEnemy,
		Frames:    ShipFrames,
		AnimTimer: NewTimer(AnimationInterval),
	}
}

func newBullet(pos core.Vec2, origin Origin) Entity {
	e := Entity{
		Kind:        KindBullet,
		Mask:        HasPosition | HasVelocity | HasSize | HasBullet,
		Pos:         pos,
		Size:        BulletSize,
		Scale:       1,
		Origin:      origin,
		AutoDespawn: true,
	}
	if origin == FromPlayer {
		e.Vel = PlayerBulletVelocity
		e.Sheet = SheetPlayerBullet
	} else {
		e.Vel = EnemyBulletVelocity
		e.Sheet = SheetEnemyBullet
	}
	return e
}

func newExplosionRequest(pos core.Vec2, scale float64) Entity {
	return Entity{
		Kind:  KindExplosionRequest,
		Mask:  HasPosition | HasRequest,
		Pos:   pos,
		Scale: scale,
	}
}

func newExplosion(pos core.Vec2, scale float64) Entity {
	return Entity{
		Kind:       KindExplosion,
		Mask:       HasPosition | HasExplosion,
		Pos:        pos,
		Size:       SheetCell,
		Scale:      scale,
		Sheet:      SheetExplosion,
		Frames:     ExplosionFrames,
		FrameTimer: NewTimer(ExplosionInterval),
	}
}
