// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea or Ebiten)
// to keep game logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned bounding box used for collision detection.
// Coordinates are float64 so entities can move by fractions of a cell or pixel.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// CenterX returns the horizontal center.
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as an overlap.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// TouchesHorizontalEdge reports whether r touches or crosses the left
// or right edge of a field that spans [0, width].
func (r Rect) TouchesHorizontalEdge(width float64) bool {
	return r.Right() >= width || r.X <= 0
}

// AtMidBottom returns a copy of r moved so that its bottom edge sits on
// y = bottom and it is horizontally centered on a field of the given width.
func (r Rect) AtMidBottom(width, bottom float64) Rect {
	r.X = (width - r.W) / 2
	r.Y = bottom - r.H
	return r
}

// Cells returns the integer cell rectangle covered by r, for rendering
// onto a character grid.
func (r Rect) Cells() (x, y, w, h int) {
	x = int(math.Floor(r.X))
	y = int(math.Floor(r.Y))
	w = int(math.Ceil(r.Right())) - x
	h = int(math.Ceil(r.Bottom())) - y
	return x, y, w, h
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
