package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/spacey-invader/internal/core"
)

func TestHeldKeysWindow(t *testing.T) {
	h := newHeldKeys(160 * time.Millisecond)
	t0 := time.Unix(0, 0)

	h.Press(core.ActionFire, t0)

	in := core.NewInputFrame()
	h.Apply(t0.Add(100*time.Millisecond), &in)
	if !in.Has(core.ActionFire) {
		t.Error("press should be held within the window")
	}

	in = core.NewInputFrame()
	h.Apply(t0.Add(200*time.Millisecond), &in)
	if in.Has(core.ActionFire) {
		t.Error("press should be released after the window")
	}
}

func TestHeldKeysOppositeDirection(t *testing.T) {
	h := newHeldKeys(time.Second)
	t0 := time.Unix(0, 0)

	h.Press(core.ActionLeft, t0)
	h.Press(core.ActionRight, t0.Add(10*time.Millisecond))

	in := core.NewInputFrame()
	h.Apply(t0.Add(20*time.Millisecond), &in)
	if in.Has(core.ActionLeft) || !in.Has(core.ActionRight) {
		t.Errorf("expected only right held, got %v", in.Actions)
	}

	h.Reset()
	in = core.NewInputFrame()
	h.Apply(t0.Add(30*time.Millisecond), &in)
	if len(in.Actions) != 0 {
		t.Errorf("Reset should release everything, got %v", in.Actions)
	}
}

func TestFPSMeter(t *testing.T) {
	var f fpsMeter
	t0 := time.Unix(0, 0)
	var fps float64
	for i := 0; i <= 60; i++ {
		fps = f.Frame(t0.Add(time.Duration(i) * time.Second / 60))
	}
	if fps < 59 || fps > 62 {
		t.Errorf("fps = %v, expected about 60", fps)
	}
}
