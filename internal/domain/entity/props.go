package entity

// Decoration is a purely visual animated prop (torches, banners).
type Decoration struct {
	X, Y float64
	Anim Animator
}

// NewDecoration creates a looping decoration of the given kind with
// the given frame count.
func NewDecoration(x, y float64, kind string, frames int, rate float64) *Decoration {
	return &Decoration{
		X: x,
		Y: y,
		Anim: Animator{
			Right:       FrameSet{kind: frameNames(kind, frames)},
			DefaultRate: rate,
			State:       kind,
			FacingRight: true,
		},
	}
}

// Update advances the decoration's looping animation by one tick.
func (d *Decoration) Update() {
	d.Anim.Advance()
}

// Collectible is a pickup that adds to the score when touched.
type Collectible struct {
	X, Y      float64
	W, H      float64
	Value     int
	Collected bool
	Anim      Animator
}

// NewCollectible creates a coin-style pickup at the given top-left
// position.
func NewCollectible(x, y float64, value int) *Collectible {
	return &Collectible{
		X: x, Y: y,
		W: 16, H: 16,
		Value: value,
		Anim: Animator{
			Right:       FrameSet{"spin": frameNames("coin", 8)},
			DefaultRate: 6,
			State:       "spin",
			FacingRight: true,
		},
	}
}

// Box returns the pickup's collision rectangle.
func (c *Collectible) Box() Rect {
	return Rect{X: c.X, Y: c.Y, W: c.W, H: c.H}
}

// Update advances the pickup's looping animation by one tick.
func (c *Collectible) Update() {
	c.Anim.Advance()
}

// Trap is a static hazard region. Touching it is lethal unless the
// player is mid-dash.
type Trap struct {
	Box Rect
}

// Door teleports the player to its destination anchor when used.
type Door struct {
	Box          Rect
	DestX, DestY float64
}
