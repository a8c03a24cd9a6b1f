// Package core provides the primitives every arcade game is built from:
// geometry and collision, moving bodies, checked grids, the frame driver,
// input latching, timed phases and the screen buffer.
// It has no external dependencies (especially no Bubble Tea) so game logic
// stays pure and testable.
package core

import "math"

// Vec is a 2D vector used for positions and velocities.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Box is an axis-aligned bounding box in world units.
type Box struct {
	Left, Top, Right, Bottom float64
}

// BoxAt builds a box from its top-left corner and size.
func BoxAt(x, y, w, h float64) Box {
	return Box{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Overlaps reports whether two boxes share interior area.
// Comparisons are strict: boxes that only touch along an edge do not overlap.
func (b Box) Overlaps(o Box) bool {
	return b.Left < o.Right && b.Right > o.Left && b.Top < o.Bottom && b.Bottom > o.Top
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the box.
func (b Box) Height() float64 {
	return b.Bottom - b.Top
}

// Circle is a disc used for radius collision.
type Circle struct {
	X, Y, R float64
}

// Touches reports whether the distance between centers is at most the sum of radii.
func (c Circle) Touches(o Circle) bool {
	dx := c.X - o.X
	dy := c.Y - o.Y
	reach := c.R + o.R
	return dx*dx+dy*dy <= reach*reach
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Vec) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Rect is an integer rectangle in screen cells, used for drawing and
// cell-level collision.
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

// Intersects returns true if this rectangle overlaps with another.
// Adjacent rectangles do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.Box().Overlaps(other.Box())
}

// Box converts the rectangle to world units.
func (r Rect) Box() Box {
	return BoxAt(float64(r.X), float64(r.Y), float64(r.W), float64(r.H))
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
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
