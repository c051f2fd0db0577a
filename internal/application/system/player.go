package system

import (
	"github.com/ravenkeep/darkcastle/internal/domain/entity"
	"github.com/ravenkeep/darkcastle/internal/infrastructure/config"
	"github.com/ravenkeep/darkcastle/internal/infrastructure/notify"
)

// PlayerSystem advances the knight by one tick: timers, action starts,
// movement, physics, hazards, pickups, then animation. The order
// within a tick is fixed; combat runs afterwards in its own system.
type PlayerSystem struct {
	physics *PhysicsSystem
	cfg     config.PlayerConfig
	world   config.WorldConfig
	sink    notify.Sink
}

// NewPlayerSystem creates a player system from tuning.
func NewPlayerSystem(physics *PhysicsSystem, cfg *config.Tuning, sink notify.Sink) *PlayerSystem {
	return &PlayerSystem{
		physics: physics,
		cfg:     cfg.Player,
		world:   cfg.World,
		sink:    sink,
	}
}

// Update advances the player by one tick.
func (s *PlayerSystem) Update(p *entity.Player, in Intent, lvl *Level) {
	if !p.Alive {
		p.Death.Tick()
		p.Anim.Advance()
		return
	}

	// Hitstop freezes the knight entirely for a few ticks after a
	// connected hit; only the freeze timer runs.
	if p.Hitstop.Active() {
		p.Hitstop.Tick()
		return
	}

	s.tickTimers(p)
	s.finishActions(p)
	s.trackJumpWindows(p, in)
	s.tryJump(p)
	s.startActions(p, in)
	s.applyMovement(p, in)
	s.move(p, lvl)
	s.checkHazards(p, lvl)
	s.collect(p, lvl)
	s.animate(p)
}

func (s *PlayerSystem) tickTimers(p *entity.Player) {
	p.DashCooldown.Tick()
	p.Invulnerable.Tick()
	if p.BlockSound.Tick() {
		s.sink.StopSound(notify.CueShieldBlocked)
	}
}

// finishActions ends the attack once its animation has played out.
// Dash ends by its own tick counter in applyMovement; shield ends only
// on release.
func (s *PlayerSystem) finishActions(p *entity.Player) {
	if p.Action == entity.ActionAttack && p.Anim.StateFinished() {
		p.FinishAttack()
	}
}

// trackJumpWindows maintains coyote time and the jump buffer. Both are
// plain tick counters: coyote refills while grounded and drains in the
// air; the buffer refills on a jump press and drains until consumed.
func (s *PlayerSystem) trackJumpWindows(p *entity.Player, in Intent) {
	if p.OnGround {
		p.CoyoteTime = s.cfg.CoyoteTicks
	} else if p.CoyoteTime > 0 {
		p.CoyoteTime--
	}

	if in.JumpPressed {
		p.JumpBuffer = s.cfg.JumpBufferTicks
	} else if p.JumpBuffer > 0 {
		p.JumpBuffer--
	}
}

// startActions begins at most one new action, in priority order:
// shield, then dash, then attack.
func (s *PlayerSystem) startActions(p *entity.Player, in Intent) {
	if in.ShieldReleased && p.StopShield() {
		return
	}
	if in.ShieldPressed && p.StartShield() {
		s.sink.PlaySound(notify.CueShieldUp, 1)
		return
	}
	if in.Dash && p.DashCooldown.Done() {
		if p.StartDash(s.cfg.DashCooldown, s.cfg.DashDuration) {
			p.Anim.Restart("roll")
			s.sink.PlaySound(notify.CueRoll, 1)
			return
		}
	}
	if in.AttackPressed && p.StartAttack() {
		s.sink.PlaySound(notify.CueAttackSwing, 1)
	}
}

// applyMovement sets the horizontal velocity for this tick based on
// the active action.
func (s *PlayerSystem) applyMovement(p *entity.Player, in Intent) {
	switch p.Action {
	case entity.ActionDash:
		p.DashTicks++
		if p.DashTicks > s.cfg.DashDuration {
			p.Action = entity.ActionNone
			p.VX = 0
			break
		}
		dir := 1.0
		if !p.FacingRight {
			dir = -1
		}
		p.VX = s.cfg.DashSpeed * dir
	case entity.ActionShield, entity.ActionAttack:
		p.VX = 0
	default:
		dir := in.MoveDir()
		p.VX = dir * s.cfg.MoveSpeed
		if dir > 0 {
			p.FacingRight = true
		} else if dir < 0 {
			p.FacingRight = false
		}
	}
}

// tryJump consumes a buffered jump press, first against the coyote
// window, then against the air jump allowance. It runs before new
// actions start, so a same-tick jump press is never eaten by a
// simultaneous attack.
func (s *PlayerSystem) tryJump(p *entity.Player) {
	if p.JumpBuffer <= 0 || p.Action != entity.ActionNone {
		return
	}
	switch {
	case p.CoyoteTime > 0:
		p.VY = s.cfg.JumpStrength
		p.CoyoteTime = 0
	case p.JumpsLeft > 0:
		p.VY = s.cfg.JumpStrength
		p.JumpsLeft--
	default:
		return
	}
	p.JumpBuffer = 0
	p.OnGround = false
	s.sink.PlaySound(notify.CueJump, 1)
}

func (s *PlayerSystem) move(p *entity.Player, lvl *Level) {
	if s.physics.MoveHorizontal(&p.Body, lvl.Platforms) {
		// A dash into a wall ends immediately.
		p.CancelDash()
	}
	s.physics.MoveVertical(&p.Body, lvl.Platforms)
	if Landed(&p.Body) {
		p.JumpsLeft = s.cfg.MaxAirJumps
		s.sink.PlaySound(notify.CueLand, 1)
	}
}

// checkHazards applies traps and the kill plane. The dash carries the
// knight safely over traps; nothing survives leaving the world.
func (s *PlayerSystem) checkHazards(p *entity.Player, lvl *Level) {
	if p.Top() > s.world.KillPlaneY() {
		s.kill(p)
		return
	}
	if p.Action == entity.ActionDash {
		return
	}
	box := p.Box()
	for _, t := range lvl.Traps {
		if box.Overlaps(t.Box) {
			s.kill(p)
			return
		}
	}
}

func (s *PlayerSystem) kill(p *entity.Player) {
	if p.Die() {
		s.sink.PlaySound(notify.CueDeath, 1)
	}
}

func (s *PlayerSystem) collect(p *entity.Player, lvl *Level) {
	if !p.Alive {
		return
	}
	box := p.Box()
	for _, c := range lvl.Collectibles {
		if c.Collected || !box.Overlaps(c.Box()) {
			continue
		}
		c.Collected = true
		p.Score += c.Value
		s.sink.PlaySound(notify.CueCollect, 1)
	}
}

// animate picks the animation state for this tick and advances it.
// Action states were already restarted when they began; locomotion
// states restart on every change.
func (s *PlayerSystem) animate(p *entity.Player) {
	if !p.Alive {
		return
	}

	var want string
	switch {
	case p.Action == entity.ActionDash:
		want = "roll"
	case p.Action == entity.ActionShield:
		want = "shield"
	case p.Action == entity.ActionAttack:
		want = "attack"
	case !p.OnGround:
		want = "jump_and_fall"
	case p.VX != 0:
		want = "run"
	default:
		want = "idle"
	}
	if p.Anim.State != want {
		p.Anim.Restart(want)
		p.LastWalkFrame = -1
	}
	p.Anim.FacingRight = p.FacingRight
	p.Anim.Advance()

	// Footstep cues on the two contact frames of the run cycle.
	if want == "run" && (p.Anim.Frame == 0 || p.Anim.Frame == 4) && p.Anim.Frame != p.LastWalkFrame {
		s.sink.PlaySound(notify.CueWalk, 1)
		p.LastWalkFrame = p.Anim.Frame
	} else if want == "run" && p.Anim.Frame != 0 && p.Anim.Frame != 4 {
		p.LastWalkFrame = -1
	}
}
