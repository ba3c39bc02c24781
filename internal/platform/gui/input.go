package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/spacey-invader/internal/core"
)

// keyReader abstracts ebiten's keyboard state.
type keyReader struct {
	pressed     func(ebiten.Key) bool
	justPressed func(ebiten.Key) bool
}

func ebitenKeys() keyReader {
	return keyReader{
		pressed:     ebiten.IsKeyPressed,
		justPressed: inpututil.IsKeyJustPressed,
	}
}

func (k keyReader) any(fn func(ebiten.Key) bool, keys ...ebiten.Key) bool {
	for _, key := range keys {
		if fn(key) {
			return true
		}
	}
	return false
}

// frame samples the keyboard. Steering and fire are levels; pause and
// restart fire once per press.
func (k keyReader) frame() (core.InputFrame, bool) {
	in := core.NewInputFrame()

	if k.any(k.justPressed, ebiten.KeyQ) {
		return in, true
	}
	if k.any(k.pressed, ebiten.KeyArrowLeft, ebiten.KeyA) {
		in.Set(core.ActionLeft)
	}
	if k.any(k.pressed, ebiten.KeyArrowRight, ebiten.KeyD) {
		in.Set(core.ActionRight)
	}
	if k.any(k.pressed, ebiten.KeySpace) {
		in.Set(core.ActionFire)
	}
	if k.any(k.justPressed, ebiten.KeyP, ebiten.KeyEscape) {
		in.Set(core.ActionPause)
	}
	if k.any(k.justPressed, ebiten.KeyR) {
		in.Set(core.ActionRestart)
	}
	return in, false
}
