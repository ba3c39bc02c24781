package invaders

import "fmt"

// invariant reports a broken internal invariant. Builds tagged "invariants"
// panic; other builds log a warning and let the caller clamp.
func (w *World) invariant(msg string, keyvals ...any) {
	w.stats.Violations++
	if strictInvariants {
		panic(fmt.Sprintf("invaders: invariant violated: %s %v", msg, keyvals))
	}
	w.log.Warn("invariant violated: "+msg, keyvals...)
}
