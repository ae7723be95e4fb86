// Package core provides fundamental types and utilities for the pong platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a point or direction in playfield units. The z component is
// implicitly zero.
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

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Box is an axis-aligned rectangle described by its center and size.
// Zero width or height is allowed: such a box behaves as a line barrier.
type Box struct {
	Center Vec2
	W, H   float64
}

// NewBox creates a box centered at c with the given dimensions.
func NewBox(c Vec2, w, h float64) Box {
	return Box{Center: c, W: w, H: h}
}

// Overlaps returns true if this box overlaps another.
func (b Box) Overlaps(other Box) bool {
	return Overlaps(b.Center, other.Center, b.W, other.W, b.H, other.H)
}

// Overlaps tests two centered rectangles for overlap.
// Both the horizontal and vertical gaps must be strictly negative, so boxes
// that only touch along an edge do not collide.
func Overlaps(centerA, centerB Vec2, widthA, widthB, heightA, heightB float64) bool {
	xGap := math.Abs(centerA.X-centerB.X) - (widthA+widthB)/2
	yGap := math.Abs(centerA.Y-centerB.Y) - (heightA+heightB)/2
	return xGap < 0 && yGap < 0
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
