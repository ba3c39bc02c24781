// Package core provides fundamental types and utilities shared by the
// simulation and the platform layers. It contains no external dependencies
// (especially no Bubble Tea or ebiten) to keep game logic pure and testable.
package core

import "math"

// Vec2 is a point or direction in playfield units.
// The playfield origin is the window center, with Y growing upward.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Box is an axis-aligned bounding box described by its center and full size.
type Box struct {
	Center Vec2
	Size   Vec2
}

// NewBox creates a box centered on c whose size is size scaled by scale.
func NewBox(c Vec2, size Vec2, scale float64) Box {
	return Box{Center: c, Size: size.Scale(scale)}
}

// Overlaps reports whether two boxes intersect on both axes.
// Boxes that only touch along an edge do not overlap.
func (b Box) Overlaps(o Box) bool {
	if math.Abs(b.Center.X-o.Center.X) >= (b.Size.X+o.Size.X)/2 {
		return false
	}
	if math.Abs(b.Center.Y-o.Center.Y) >= (b.Size.Y+o.Size.Y)/2 {
		return false
	}
	return true
}

// Rect represents an integer rectangle on the character screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
