package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravenkeep/darkcastle/internal/domain/entity"
	"github.com/ravenkeep/darkcastle/internal/infrastructure/config"
	"github.com/ravenkeep/darkcastle/internal/infrastructure/notify"
)

// flatLevel is a single long floor with its top at y=568.
func flatLevel() *Level {
	return &Level{
		Platforms: []entity.Rect{{X: -100, Y: 568, W: 1000, H: 32}},
		SpawnX:    100,
		SpawnY:    500,
	}
}

type playerRig struct {
	cfg    *config.Tuning
	sys    *PlayerSystem
	player *entity.Player
	level  *Level
	sink   *notify.Recorder
}

func newPlayerRig(t *testing.T) *playerRig {
	cfg := testTuning(t)
	sink := &notify.Recorder{}
	phys := NewPhysicsSystem(cfg)
	lvl := flatLevel()
	p := NewLevelPlayer(lvl, cfg)
	return &playerRig{
		cfg:    cfg,
		sys:    NewPlayerSystem(phys, cfg, sink),
		player: p,
		level:  lvl,
		sink:   sink,
	}
}

// settle runs empty ticks until the player stands on the ground.
func (r *playerRig) settle(t *testing.T) {
	t.Helper()
	for i := 0; i < 120 && !r.player.OnGround; i++ {
		r.sys.Update(r.player, Intent{}, r.level)
	}
	require.True(t, r.player.OnGround)
	r.sink.Sounds = nil
}

func (r *playerRig) tick(in Intent) {
	r.sys.Update(r.player, in, r.level)
}

func TestPlayerWalksAndFaces(t *testing.T) {
	r := newPlayerRig(t)
	r.settle(t)
	x0 := r.player.X

	for i := 0; i < 10; i++ {
		r.tick(Intent{Right: true})
	}
	assert.InDelta(t, x0+10*r.cfg.Player.MoveSpeed, r.player.X, 1e-9)
	assert.True(t, r.player.FacingRight)
	assert.Equal(t, "run", r.player.Anim.State)

	for i := 0; i < 5; i++ {
		r.tick(Intent{Left: true})
	}
	assert.False(t, r.player.FacingRight)

	r.tick(Intent{})
	assert.Zero(t, r.player.VX)
	assert.Equal(t, "idle", r.player.Anim.State)
}

func TestPlayerJumpFromGround(t *testing.T) {
	r := newPlayerRig(t)
	r.settle(t)
	groundY := r.player.Y

	r.tick(Intent{JumpPressed: true})
	assert.Less(t, r.player.Y, groundY)
	assert.False(t, r.player.OnGround)
	assert.True(t, r.sink.Played(notify.CueJump))
	assert.Equal(t, "jump_and_fall", r.player.Anim.State)
}

func TestPlayerDoubleJumpThenExhausted(t *testing.T) {
	r := newPlayerRig(t)
	r.settle(t)

	r.tick(Intent{JumpPressed: true})
	// Drain the coyote window so the next press must use the air jump.
	for i := 0; i < r.cfg.Player.CoyoteTicks+1; i++ {
		r.tick(Intent{})
	}
	require.Equal(t, 1, r.player.JumpsLeft)

	r.tick(Intent{JumpPressed: true})
	assert.Zero(t, r.player.JumpsLeft)
	// Jump impulse applied, then one tick of gravity.
	assert.InDelta(t, r.cfg.Player.JumpStrength+r.cfg.Physics.Gravity, r.player.VY, 1e-9)

	// Let the buffered window lapse, then a third press does nothing.
	for i := 0; i < r.cfg.Player.JumpBufferTicks+1; i++ {
		r.tick(Intent{})
	}
	vy := r.player.VY
	r.tick(Intent{JumpPressed: true})
	assert.Greater(t, r.player.VY, vy, "no third jump; gravity keeps pulling")
}

func TestPlayerJumpAndAttackOnSameTick(t *testing.T) {
	r := newPlayerRig(t)
	r.settle(t)

	// Both presses land: the jump fires first, then the swing starts.
	r.tick(Intent{JumpPressed: true, AttackPressed: true})
	assert.Equal(t, entity.ActionAttack, r.player.Action)
	assert.InDelta(t, r.cfg.Player.JumpStrength+r.cfg.Physics.Gravity, r.player.VY, 1e-9)
	assert.False(t, r.player.OnGround)
	assert.True(t, r.sink.Played(notify.CueJump))
	assert.True(t, r.sink.Played(notify.CueAttackSwing))
}

func TestPlayerJumpsRefillOnLanding(t *testing.T) {
	r := newPlayerRig(t)
	r.settle(t)

	r.tick(Intent{JumpPressed: true})
	for i := 0; i < r.cfg.Player.CoyoteTicks+1; i++ {
		r.tick(Intent{})
	}
	r.tick(Intent{JumpPressed: true})
	require.Zero(t, r.player.JumpsLeft)

	for i := 0; i < 300 && !r.player.OnGround; i++ {
		r.tick(Intent{})
	}
	require.True(t, r.player.OnGround)
	assert.Equal(t, r.cfg.Player.MaxAirJumps, r.player.JumpsLeft)
	assert.True(t, r.sink.Played(notify.CueLand))
}

func TestPlayerCoyoteJumpAfterLeavingLedge(t *testing.T) {
	cfg := testTuning(t)
	sink := &notify.Recorder{}
	phys := NewPhysicsSystem(cfg)
	// A short ledge the player walks off to the right.
	lvl := &Level{Platforms: []entity.Rect{{X: 0, Y: 400, W: 120, H: 32}}}
	sys := NewPlayerSystem(phys, cfg, sink)
	p := entity.NewPlayer(100, 400, cfg.Player.Width, cfg.Player.Height,
		cfg.Player.MaxHealth, entity.AttackSpec{})
	p.OnGround = true

	for i := 0; i < 30 && p.OnGround; i++ {
		sys.Update(p, Intent{Right: true}, lvl)
	}
	require.False(t, p.OnGround, "player never walked off the ledge")
	require.Equal(t, 1, p.JumpsLeft)

	sys.Update(p, Intent{JumpPressed: true}, lvl)
	assert.Equal(t, 1, p.JumpsLeft, "coyote jump must not spend the air jump")
}

func TestPlayerJumpBufferConsumedOnLanding(t *testing.T) {
	r := newPlayerRig(t)
	r.settle(t)

	r.tick(Intent{JumpPressed: true})
	// Burn the air jump so only the buffer can fire on landing.
	for i := 0; i < r.cfg.Player.CoyoteTicks+1; i++ {
		r.tick(Intent{})
	}
	r.tick(Intent{JumpPressed: true})
	require.Zero(t, r.player.JumpsLeft)

	// Fall until just above the ground, then press early.
	for i := 0; i < 300 && r.player.Y < 560; i++ {
		r.tick(Intent{})
	}
	r.tick(Intent{JumpPressed: true})
	for i := 0; i < r.cfg.Player.JumpBufferTicks && r.player.VY >= 0; i++ {
		r.tick(Intent{})
	}
	assert.Negative(t, r.player.VY, "buffered press fires on touchdown")
}

func TestPlayerDashLifecycle(t *testing.T) {
	r := newPlayerRig(t)
	r.settle(t)
	x0 := r.player.X

	r.tick(Intent{Dash: true})
	assert.Equal(t, entity.ActionDash, r.player.Action)
	assert.Equal(t, "roll", r.player.Anim.State)
	assert.True(t, r.player.Invulnerable.Active())
	assert.True(t, r.sink.Played(notify.CueRoll))

	for i := 0; i < r.cfg.Player.DashDuration; i++ {
		r.tick(Intent{})
	}
	assert.Equal(t, entity.ActionNone, r.player.Action)
	assert.InDelta(t, x0+float64(r.cfg.Player.DashDuration)*r.cfg.Player.DashSpeed,
		r.player.X, 1e-9)

	// Cooldown blocks an immediate second dash.
	r.tick(Intent{Dash: true})
	assert.Equal(t, entity.ActionNone, r.player.Action)
}

func TestPlayerDashCancelsOnWall(t *testing.T) {
	cfg := testTuning(t)
	sink := &notify.Recorder{}
	phys := NewPhysicsSystem(cfg)
	lvl := &Level{Platforms: []entity.Rect{
		{X: -100, Y: 568, W: 1000, H: 32},
		{X: 200, Y: 0, W: 32, H: 600},
	}}
	sys := NewPlayerSystem(phys, cfg, sink)
	p := entity.NewPlayer(150, 568, cfg.Player.Width, cfg.Player.Height,
		cfg.Player.MaxHealth, entity.AttackSpec{})
	p.OnGround = true

	sys.Update(p, Intent{Dash: true}, lvl)
	for i := 0; i < cfg.Player.DashDuration && p.Action == entity.ActionDash; i++ {
		sys.Update(p, Intent{}, lvl)
	}
	assert.Equal(t, entity.ActionNone, p.Action)
	assert.Equal(t, 200.0, p.Box().Right(), "dash stops flush against the wall")
}

func TestPlayerActionPriorityShieldFirst(t *testing.T) {
	r := newPlayerRig(t)
	r.settle(t)

	r.tick(Intent{ShieldPressed: true, Dash: true, AttackPressed: true})
	assert.Equal(t, entity.ActionShield, r.player.Action)
	assert.True(t, r.sink.Played(notify.CueShieldUp))
	assert.False(t, r.sink.Played(notify.CueRoll))
	assert.False(t, r.sink.Played(notify.CueAttackSwing))

	r.tick(Intent{ShieldReleased: true})
	assert.Equal(t, entity.ActionNone, r.player.Action)
}

func TestPlayerShieldStopsMovement(t *testing.T) {
	r := newPlayerRig(t)
	r.settle(t)

	r.tick(Intent{ShieldPressed: true})
	x0 := r.player.X
	for i := 0; i < 10; i++ {
		r.tick(Intent{Right: true})
	}
	assert.Equal(t, x0, r.player.X)
	assert.Equal(t, "shield", r.player.Anim.State)
}

func TestPlayerAttackRunsToCompletion(t *testing.T) {
	r := newPlayerRig(t)
	r.settle(t)

	r.tick(Intent{AttackPressed: true})
	require.Equal(t, entity.ActionAttack, r.player.Action)
	assert.True(t, r.sink.Played(notify.CueAttackSwing))

	// 22 frames at 1.8 ticks per frame.
	for i := 0; i < 60 && r.player.Action == entity.ActionAttack; i++ {
		r.tick(Intent{})
	}
	assert.Equal(t, entity.ActionNone, r.player.Action)
}

func TestPlayerHitstopFreezes(t *testing.T) {
	r := newPlayerRig(t)
	r.settle(t)
	r.player.Hitstop.Set(3)
	x0 := r.player.X

	for i := 0; i < 3; i++ {
		r.tick(Intent{Right: true})
	}
	assert.Equal(t, x0, r.player.X)

	r.tick(Intent{Right: true})
	assert.Greater(t, r.player.X, x0)
}

func TestPlayerTrapKills(t *testing.T) {
	r := newPlayerRig(t)
	r.settle(t)
	r.level.Traps = []entity.Trap{{Box: entity.Rect{X: 90, Y: 540, W: 40, H: 28}}}

	r.tick(Intent{})
	assert.False(t, r.player.Alive)
	assert.True(t, r.sink.Played(notify.CueDeath))
}

func TestPlayerDashesOverTrap(t *testing.T) {
	r := newPlayerRig(t)
	r.settle(t)
	r.level.Traps = []entity.Trap{{Box: entity.Rect{X: 120, Y: 540, W: 60, H: 28}}}

	r.tick(Intent{Dash: true})
	for i := 0; i < 8; i++ {
		r.tick(Intent{})
	}
	assert.True(t, r.player.Alive, "dashing carries the knight over spikes")
	assert.Greater(t, r.player.X, 180.0)
}

func TestPlayerFallsOutOfWorld(t *testing.T) {
	cfg := testTuning(t)
	sink := &notify.Recorder{}
	sys := NewPlayerSystem(NewPhysicsSystem(cfg), cfg, sink)
	lvl := &Level{} // no floor at all
	p := entity.NewPlayer(100, 500, cfg.Player.Width, cfg.Player.Height,
		cfg.Player.MaxHealth, entity.AttackSpec{})

	for i := 0; i < 600 && p.Alive; i++ {
		sys.Update(p, Intent{}, lvl)
	}
	assert.False(t, p.Alive)
}

func TestPlayerCollects(t *testing.T) {
	r := newPlayerRig(t)
	r.settle(t)
	c := entity.NewCollectible(r.player.X-8, r.player.Y-20, 15)
	r.level.Collectibles = []*entity.Collectible{c}

	r.tick(Intent{})
	assert.True(t, c.Collected)
	assert.Equal(t, 15, r.player.Score)
	assert.True(t, r.sink.Played(notify.CueCollect))

	r.tick(Intent{})
	assert.Equal(t, 15, r.player.Score, "a pickup is collected once")
}

func TestPlayerDeathAnimationRunsOut(t *testing.T) {
	r := newPlayerRig(t)
	r.settle(t)
	r.player.Die()
	require.True(t, r.player.Death.Active())

	for i := 0; i < 74; i++ {
		r.tick(Intent{})
	}
	assert.False(t, r.player.Death.Done())
	r.tick(Intent{})
	assert.True(t, r.player.Death.Done())
	assert.Equal(t, "death", r.player.Anim.State)

	// The pose parks on the final frame; no wrap back to the start.
	for i := 0; i < 30; i++ {
		r.tick(Intent{})
	}
	assert.Equal(t, 14, r.player.Anim.Frame)
	assert.True(t, r.player.Anim.OnLastFrame())
}
