package invaders

import (
	"fmt"
	"strconv"
)

// Overlay holds the values drawn as overlay text each tick.
type Overlay struct {
	Score       uint32
	Health      float64
	PlayerAlive bool
}

// ScoreText formats the score.
func (o Overlay) ScoreText() string {
	return strconv.FormatUint(uint64(o.Score), 10)
}

// HealthText formats health as a whole number; zero is shown as "0".
func (o Overlay) HealthText() string {
	if o.Health <= 0 {
		return "0"
	}
	return strconv.FormatUint(uint64(o.Health), 10)
}

// FPSText formats a frame rate measured by the platform.
func FPSText(fps float64) string {
	return fmt.Sprintf("%.2f", fps)
}
