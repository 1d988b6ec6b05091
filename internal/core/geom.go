// Package core provides fundamental types and utilities for the runner platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Point is a position in virtual-pixel world coordinates.
type Point struct {
	X, Y int
}

// Rect represents an axis-aligned bounding box used for collision detection
// and draw regions. Position is the top-left corner.
type Rect struct {
	Position Point
	W, H     int
}

// NewRect creates a rectangle from its top-left corner and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{Position: Point{X: x, Y: y}, W: w, H: h}
}

// X returns the x-coordinate of the left edge.
func (r Rect) X() int {
	return r.Position.X
}

// Y returns the y-coordinate of the top edge.
func (r Rect) Y() int {
	return r.Position.Y
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.Position.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Position.Y + r.H
}

// SetX moves the rectangle horizontally to the given left edge.
func (r *Rect) SetX(x int) {
	r.Position.X = x
}

// Intersects returns true if this rectangle overlaps with another.
// Edges that merely touch do not count as an overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X() < other.Right() &&
		r.Right() > other.X() &&
		r.Y() < other.Bottom() &&
		r.Bottom() > other.Y()
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
