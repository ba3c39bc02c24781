package invaders

import (
	"testing"
	"time"
)

func TestTimerTick(t *testing.T) {
	tests := []struct {
		name     string
		steps    []time.Duration
		expected int
		left     time.Duration
	}{
		{"below interval", []time.Duration{400 * time.Millisecond}, 0, 400 * time.Millisecond},
		{"exact interval", []time.Duration{500 * time.Millisecond}, 1, 0},
		{"carries remainder", []time.Duration{300 * time.Millisecond, 300 * time.Millisecond}, 1, 100 * time.Millisecond},
		{"large jump", []time.Duration{2600 * time.Millisecond}, 5, 100 * time.Millisecond},
		{"zero and negative ignored", []time.Duration{0, -time.Second}, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			timer := NewTimer(500 * time.Millisecond)
			total := 0
			for _, d := range tc.steps {
				total += timer.Tick(d)
			}
			if total != tc.expected {
				t.Errorf("fired %d times, expected %d", total, tc.expected)
			}
			if timer.Elapsed() != tc.left {
				t.Errorf("Elapsed() = %v, expected %v", timer.Elapsed(), tc.left)
			}
		})
	}
}

func TestTimerReset(t *testing.T) {
	timer := NewTimer(time.Second)
	timer.Tick(900 * time.Millisecond)
	timer.Reset()
	if timer.Tick(200*time.Millisecond) != 0 {
		t.Error("Reset should drop accumulated time")
	}
}

func TestTimerZeroInterval(t *testing.T) {
	var timer Timer
	if timer.Tick(time.Second) != 0 {
		t.Error("a timer without an interval should never fire")
	}
}
