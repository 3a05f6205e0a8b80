// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea or Ebitengine)
// to keep game logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned rectangle in cell coordinates.
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

// Box is an axis-aligned rectangle in world (pixel) coordinates.
type Box struct {
	X, Y float64
	W, H float64
}

// NewBox creates a new box with the given position and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Intersects returns true if this box overlaps with another.
// Edges are half-open, so boxes that only touch do not intersect.
func (b Box) Intersects(other Box) bool {
	if b.X >= other.Right() || other.X >= b.Right() {
		return false
	}
	if b.Y >= other.Bottom() || other.Y >= b.Bottom() {
		return false
	}
	return true
}

// ToCells converts a pixel box into the cell rectangle that covers it on a grid
// of cellW x cellH pixel cells. Edges are rounded to the nearest cell boundary
// and the result is at least one cell in each direction.
func (b Box) ToCells(cellW, cellH float64) Rect {
	x0 := int(math.Round(b.X / cellW))
	y0 := int(math.Round(b.Y / cellH))
	x1 := int(math.Round(b.Right() / cellW))
	y1 := int(math.Round(b.Bottom() / cellH))
	return NewRect(x0, y0, Max(x1-x0, 1), Max(y1-y0, 1))
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
