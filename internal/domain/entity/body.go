package entity

import "math"

// Body is the physical part shared by every moving entity.
//
// X, Y is the bottom-center anchor of the collision box: landing and
// ground checks reduce to comparing Y against a platform top.
type Body struct {
	X, Y   float64 // bottom-center anchor
	W, H   float64 // collision box size
	VX, VY float64 // pixels per tick

	OnGround    bool
	WasOnGround bool
	FacingRight bool
}

// Box returns the collision box in world coordinates.
func (b *Body) Box() Rect {
	return Rect{X: b.X - b.W/2, Y: b.Y - b.H, W: b.W, H: b.H}
}

// Top returns the Y coordinate of the top edge of the collision box.
func (b *Body) Top() float64 {
	return b.Y - b.H
}

// SetTop moves the body so that its top edge sits at y.
func (b *Body) SetTop(y float64) {
	b.Y = y + b.H
}

// SetBottom moves the body so that its bottom edge sits at y.
func (b *Body) SetBottom(y float64) {
	b.Y = y
}

// SetLeft moves the body so that its left edge sits at x.
func (b *Body) SetLeft(x float64) {
	b.X = x + b.W/2
}

// SetRight moves the body so that its right edge sits at x.
func (b *Body) SetRight(x float64) {
	b.X = x - b.W/2
}

// DistanceTo returns the Euclidean distance between the anchors of b and o.
func (b *Body) DistanceTo(o *Body) float64 {
	return math.Hypot(b.X-o.X, b.Y-o.Y)
}
