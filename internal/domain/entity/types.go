package entity

import "math"

// Rect is an axis-aligned rectangle in world pixels.
// X, Y is the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Overlaps reports whether r and o intersect.
// Rectangles that merely touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X && r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Inflate grows the rectangle by dx and dy while keeping its center fixed.
func (r Rect) Inflate(dx, dy float64) Rect {
	return Rect{
		X: r.X - dx/2,
		Y: r.Y - dy/2,
		W: r.W + dx,
		H: r.H + dy,
	}
}

// CenterDistance returns the Euclidean distance between the centers of r and o.
func (r Rect) CenterDistance(o Rect) float64 {
	dx := (r.X + r.W/2) - (o.X + o.W/2)
	dy := (r.Y + r.H/2) - (o.Y + o.H/2)
	return math.Hypot(dx, dy)
}
