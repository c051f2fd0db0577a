// Package system holds the per-tick simulation systems: physics,
// player control, enemy behavior, combat resolution and level
// construction. Systems are plain structs carrying their tuning;
// entities carry state.
package system

import (
	"github.com/ravenkeep/darkcastle/internal/domain/entity"
	"github.com/ravenkeep/darkcastle/internal/infrastructure/config"
)

// PhysicsSystem moves bodies and resolves them against platforms one
// axis at a time. The order is fixed: horizontal movement and clamping
// first, then the vertical pass with gravity, the ceiling clamp,
// landing and head bumps. Velocities are small relative to platform
// sizes, so discrete overlap tests with edge snapping are exact.
type PhysicsSystem struct {
	gravity  float64
	ceilingY float64
}

// NewPhysicsSystem creates a physics system from tuning.
func NewPhysicsSystem(cfg *config.Tuning) *PhysicsSystem {
	return &PhysicsSystem{
		gravity:  cfg.Physics.Gravity,
		ceilingY: cfg.World.CeilingY,
	}
}

// MoveHorizontal applies the body's horizontal velocity and clamps it
// out of any platform it entered. Reports whether a platform was hit.
func (s *PhysicsSystem) MoveHorizontal(b *entity.Body, platforms []entity.Rect) bool {
	b.X += b.VX
	return s.ResolveHorizontal(b, platforms)
}

// ResolveHorizontal pushes the body out of any platform it overlaps,
// snapping the leading edge against the platform side it moved into.
// Every overlapping platform is resolved; in tight corners a snap out
// of one platform can push into the next. Reports whether any
// platform was hit.
func (s *PhysicsSystem) ResolveHorizontal(b *entity.Body, platforms []entity.Rect) bool {
	hit := false
	box := b.Box()
	for _, p := range platforms {
		if !box.Overlaps(p) {
			continue
		}
		hit = true
		if b.VX > 0 {
			b.SetRight(p.X)
		} else if b.VX < 0 {
			b.SetLeft(p.Right())
		}
		box = b.Box()
	}
	return hit
}

// MoveVertical applies gravity, moves the body vertically, and
// resolves landings and head bumps. Ground state from before the move
// is preserved in WasOnGround so callers can detect the landing edge.
func (s *PhysicsSystem) MoveVertical(b *entity.Body, platforms []entity.Rect) {
	b.WasOnGround = b.OnGround
	b.OnGround = false

	b.VY += s.gravity
	b.Y += b.VY

	// Hard ceiling above the playfield.
	if b.Top() < s.ceilingY {
		b.SetTop(s.ceilingY)
		b.VY = 0
	}

	box := b.Box()
	for _, p := range platforms {
		if !box.Overlaps(p) {
			continue
		}
		if b.VY > 0 {
			// Landing: snap to the first platform top and stop.
			b.SetBottom(p.Y)
			b.OnGround = true
			b.VY = 0
			break
		}
		if b.VY < 0 {
			// Head bump: snap below and start falling.
			b.SetTop(p.Bottom())
			b.VY = 1
			break
		}
	}
}

// Landed reports whether the body touched down on this tick.
func Landed(b *entity.Body) bool {
	return b.OnGround && !b.WasOnGround
}
