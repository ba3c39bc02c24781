package tui

import (
	"time"

	"github.com/vovakirdan/spacey-invader/internal/core"
)

// heldKeys emulates key levels on a terminal, which only reports presses.
// A press counts as held until the hold window passes without a repeat;
// the keyboard's auto-repeat keeps a held key alive.
type heldKeys struct {
	hold time.Duration
	last map[core.Action]time.Time
}

func newHeldKeys(hold time.Duration) *heldKeys {
	return &heldKeys{
		hold: hold,
		last: make(map[core.Action]time.Time),
	}
}

// Press records a press at now. Steering one way releases the other.
func (h *heldKeys) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		delete(h.last, core.ActionRight)
	case core.ActionRight:
		delete(h.last, core.ActionLeft)
	}
	h.last[a] = now
}

// Apply sets every action still held at now on frame.
func (h *heldKeys) Apply(now time.Time, frame *core.InputFrame) {
	for a, t := range h.last {
		if now.Sub(t) < h.hold {
			frame.Set(a)
			continue
		}
		delete(h.last, a)
	}
}

// Reset releases every key.
func (h *heldKeys) Reset() {
	clear(h.last)
}
