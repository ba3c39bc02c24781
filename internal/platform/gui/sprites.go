package gui

import (
	"sort"

	"github.com/vovakirdan/spacey-invader/internal/core"
	"github.com/vovakirdan/spacey-invader/internal/invaders"
)

// Sprite is the window-side view of one renderable entity.
type Sprite struct {
	Kind  invaders.Kind
	Sheet invaders.SheetID
	Scale float64
	Frame int
	Pos   core.Vec2 // Position at spawn; Draw follows the live entity
}

// Sprites is the sprite table the simulation maintains through the
// invaders.Visuals callbacks.
type Sprites struct {
	byHandle map[invaders.Handle]*Sprite
}

// NewSprites creates an empty sprite table.
func NewSprites() *Sprites {
	return &Sprites{byHandle: make(map[invaders.Handle]*Sprite)}
}

// SpawnVisual adds a sprite for a new entity.
func (s *Sprites) SpawnVisual(h invaders.Handle, kind invaders.Kind, pos core.Vec2, scale float64, sheet invaders.SheetID) {
	s.byHandle[h] = &Sprite{Kind: kind, Sheet: sheet, Scale: scale, Pos: pos}
}

// DespawnVisual removes the sprite of a destroyed entity.
func (s *Sprites) DespawnVisual(h invaders.Handle) {
	delete(s.byHandle, h)
}

// SetSpriteFrame selects the sheet row drawn for an entity.
func (s *Sprites) SetSpriteFrame(h invaders.Handle, frame int) {
	if sp, ok := s.byHandle[h]; ok {
		sp.Frame = frame
	}
}

// Clear drops every sprite.
func (s *Sprites) Clear() {
	clear(s.byHandle)
}

// Len returns the number of sprites.
func (s *Sprites) Len() int {
	return len(s.byHandle)
}

// Get returns the sprite for h.
func (s *Sprites) Get(h invaders.Handle) (*Sprite, bool) {
	sp, ok := s.byHandle[h]
	return sp, ok
}

// drawOrder lists sprites bottom to top: bullets, ships, then explosions.
// Ties keep handle order so frames do not flicker.
func (s *Sprites) drawOrder() []invaders.Handle {
	hs := make([]invaders.Handle, 0, len(s.byHandle))
	for h := range s.byHandle {
		hs = append(hs, h)
	}
	sort.Slice(hs, func(i, j int) bool {
		li, lj := layer(s.byHandle[hs[i]].Kind), layer(s.byHandle[hs[j]].Kind)
		if li != lj {
			return li < lj
		}
		return hs[i].Index < hs[j].Index
	})
	return hs
}

func layer(k invaders.Kind) int {
	switch k {
	case invaders.KindBullet:
		return 0
	case invaders.KindEnemy, invaders.KindPlayer:
		return 1
	default:
		return 2
	}
}
