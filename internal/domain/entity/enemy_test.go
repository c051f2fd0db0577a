package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skeletonAttackSpec() AttackSpec {
	return AttackSpec{FirstFrame: 3, LastFrame: 6, OffsetX: 16, OffsetY: -25, W: 24, H: 30}
}

func newTestEnemy() *Enemy {
	return NewEnemy(190, 410, 30, 50, 2, skeletonAttackSpec(), 138, 340)
}

func TestNewEnemyDefaults(t *testing.T) {
	e := newTestEnemy()

	assert.True(t, e.Alive)
	assert.False(t, e.Initialized, "enemies spawn falling, not acting")
	assert.Equal(t, 2, e.Health)
	assert.Equal(t, 1, e.PatrolDir)
	assert.Equal(t, 190.0, e.SpawnX)
	assert.Equal(t, 8, e.Anim.Len("idle"))
	assert.Equal(t, 13, e.Anim.Len("die"))
}

func TestEnemyStartAttack(t *testing.T) {
	e := newTestEnemy()
	e.StartAttack(120)

	assert.True(t, e.Attacking)
	assert.Equal(t, Countdown(120), e.AttackCooldown)
	assert.Equal(t, "attack", e.Anim.State)
	assert.Zero(t, e.Anim.Frame)
}

func TestEnemyTakeDamage(t *testing.T) {
	e := newTestEnemy()

	assert.False(t, e.TakeDamage(1, 125))
	assert.True(t, e.Alive)
	assert.Equal(t, 1, e.Health)

	assert.True(t, e.TakeDamage(1, 125))
	assert.False(t, e.Alive)
	assert.Equal(t, "die", e.Anim.State)
	assert.Equal(t, Countdown(125), e.Despawn)

	assert.False(t, e.TakeDamage(1, 125), "corpses take no further damage")
}

func TestEnemyDieStopsMotionAndAttack(t *testing.T) {
	e := newTestEnemy()
	e.VX = 0.9
	e.StartAttack(120)

	e.Die(125)
	assert.False(t, e.Attacking)
	assert.Zero(t, e.VX)
}

func TestEnemyDeathAnimationHoldsLastFrame(t *testing.T) {
	e := newTestEnemy()
	e.Die(125)

	for i := 0; i < 200; i++ {
		e.Anim.Advance()
	}
	assert.Equal(t, "die", e.Anim.State)
	assert.Equal(t, 12, e.Anim.Frame, "the corpse stays on the final pose")
	assert.True(t, e.Anim.OnLastFrame())
}

func TestEnemyAttackHitboxWindow(t *testing.T) {
	e := newTestEnemy()
	e.FacingRight = true

	_, ok := e.AttackHitbox()
	assert.False(t, ok)

	e.StartAttack(120)
	e.Anim.Frame = 2
	_, ok = e.AttackHitbox()
	assert.False(t, ok)

	e.Anim.Frame = 3
	box, ok := e.AttackHitbox()
	require.True(t, ok)
	assert.Equal(t, Rect{X: 206, Y: 385, W: 24, H: 30}, box)

	e.FacingRight = false
	box, ok = e.AttackHitbox()
	require.True(t, ok)
	assert.Equal(t, Rect{X: 150, Y: 385, W: 24, H: 30}, box)

	e.Anim.Frame = 7
	_, ok = e.AttackHitbox()
	assert.False(t, ok)
}

func TestEnemyRespawn(t *testing.T) {
	e := newTestEnemy()
	e.X, e.Y = 900, 700
	e.VY = 12
	e.Initialized = true
	e.Attacking = true
	e.StuckTicks = 40

	e.Respawn()
	assert.Equal(t, 190.0, e.X)
	assert.Equal(t, 410.0, e.Y)
	assert.Zero(t, e.VY)
	assert.False(t, e.Initialized)
	assert.False(t, e.Attacking)
	assert.Zero(t, e.StuckTicks)
	assert.Equal(t, "idle", e.Anim.State)
}
