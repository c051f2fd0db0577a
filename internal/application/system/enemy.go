package system

import (
	"math"

	"github.com/ravenkeep/darkcastle/internal/domain/entity"
	"github.com/ravenkeep/darkcastle/internal/infrastructure/config"
)

// EnemySystem advances one skeleton by one tick. The life cycle is:
// falling in at the drop point, then alive (idle, patrol, chase,
// attack), then dying, then ready to despawn. A dead skeleton is
// scenery; it blocks nothing and only waits out its grace period.
type EnemySystem struct {
	physics *PhysicsSystem
	cfg     config.EnemyConfig
	world   config.WorldConfig
}

// NewEnemySystem creates an enemy system from tuning.
func NewEnemySystem(physics *PhysicsSystem, cfg *config.Tuning) *EnemySystem {
	return &EnemySystem{
		physics: physics,
		cfg:     cfg.Enemy,
		world:   cfg.World,
	}
}

// Update advances the skeleton by one tick against the given player.
func (s *EnemySystem) Update(e *entity.Enemy, p *entity.Player, lvl *Level) {
	// Spawn drop: fall until the first landing, then wake up.
	if !e.Initialized {
		s.physics.MoveVertical(&e.Body, lvl.Platforms)
		if e.OnGround {
			e.Initialized = true
			e.LastX = e.X
		}
		e.Anim.Advance()
		return
	}

	if !e.Alive {
		if e.Despawn.Tick() {
			e.DespawnReady = true
		}
		e.Anim.Advance()
		return
	}

	e.AttackCooldown.Tick()

	if e.Attacking {
		s.updateAttack(e)
	} else {
		s.updateMovement(e, p, lvl)
	}

	s.physics.MoveVertical(&e.Body, lvl.Platforms)
	s.checkBounds(e)

	e.Anim.FacingRight = e.FacingRight
	e.Anim.Advance()
}

// updateAttack holds the skeleton in place until the swing animation
// reaches its final frame.
func (s *EnemySystem) updateAttack(e *entity.Enemy) {
	e.VX = 0
	if e.Anim.OnLastFrame() {
		e.Attacking = false
		e.Anim.Restart("idle")
	}
}

func (s *EnemySystem) updateMovement(e *entity.Enemy, p *entity.Player, lvl *Level) {
	if s.seesPlayer(e, p) {
		s.chase(e, p, lvl)
	} else {
		s.patrol(e, p, lvl)
	}
}

// seesPlayer reports whether the player is inside the detection radius
// and roughly on the skeleton's level. The vertical gate keeps
// skeletons from pacing at a wall under a player on a ledge above.
func (s *EnemySystem) seesPlayer(e *entity.Enemy, p *entity.Player) bool {
	if !p.Alive {
		return false
	}
	if math.Abs(p.Y-e.Y) > s.cfg.VerticalGate {
		return false
	}
	return e.DistanceTo(&p.Body) <= s.cfg.DetectRadius
}

// chase walks toward the player inside the patrol bounds, swinging
// when close enough and off cooldown.
func (s *EnemySystem) chase(e *entity.Enemy, p *entity.Player, lvl *Level) {
	e.FacingRight = p.X >= e.X

	if e.DistanceTo(&p.Body) <= s.cfg.MeleeRange {
		e.VX = 0
		if e.AttackCooldown.Done() {
			e.StartAttack(s.cfg.AttackCooldown)
		} else if e.Anim.State != "idle" {
			e.Anim.Restart("idle")
		}
		return
	}

	dir := 1.0
	if p.X < e.X {
		dir = -1
	}
	next := e.X + dir*s.cfg.Speed
	if next < e.PatrolLeft || next > e.PatrolRight {
		// The player is outside the skeleton's territory; wait at
		// the border instead of leaving it.
		e.VX = 0
		if e.Anim.State != "idle" {
			e.Anim.Restart("idle")
		}
		return
	}

	e.VX = dir * s.cfg.Speed
	s.walk(e, p, lvl)
}

// patrol paces between the patrol bounds, turning at each end.
func (s *EnemySystem) patrol(e *entity.Enemy, p *entity.Player, lvl *Level) {
	next := e.X + float64(e.PatrolDir)*s.cfg.Speed
	if next <= e.PatrolLeft {
		e.PatrolDir = 1
	} else if next >= e.PatrolRight {
		e.PatrolDir = -1
	}

	e.FacingRight = e.PatrolDir > 0
	e.VX = float64(e.PatrolDir) * s.cfg.Speed
	s.walk(e, p, lvl)
}

// walk applies horizontal movement with wall reversal and stuck
// detection. A skeleton that makes no progress for long enough turns
// around rather than grinding against geometry forever.
func (s *EnemySystem) walk(e *entity.Enemy, p *entity.Player, lvl *Level) {
	if e.Anim.State != "walk" {
		e.Anim.Restart("walk")
	}

	prevX := e.X
	if s.physics.MoveHorizontal(&e.Body, lvl.Platforms) {
		e.PatrolDir = -e.PatrolDir
		e.VX = 0
	}

	// Never walk through the knight: back off and swing instead.
	if p.Alive && e.Box().Overlaps(p.Box()) {
		e.X = prevX
		e.VX = 0
		if e.AttackCooldown.Done() {
			e.StartAttack(s.cfg.AttackCooldown)
		}
	}

	if math.Abs(e.X-e.LastX) < s.cfg.StuckEpsilon {
		// Intending to walk but going nowhere: show idle, and past
		// the threshold turn around to escape the snag.
		if e.Anim.State == "walk" {
			e.Anim.Restart("idle")
		}
		e.StuckTicks++
		if e.StuckTicks >= s.cfg.StuckTicks {
			e.PatrolDir = -e.PatrolDir
			e.FacingRight = e.PatrolDir > 0
			e.StuckTicks = 0
		}
	} else {
		e.StuckTicks = 0
	}
	e.LastX = e.X
}

// checkBounds respawns a skeleton that somehow left the world. It
// should never happen; the failsafe keeps a stray from making the
// level unwinnable.
func (s *EnemySystem) checkBounds(e *entity.Enemy) {
	if e.Top() > s.world.KillPlaneY() || e.X < -e.W || e.X > s.world.Width+e.W {
		e.Respawn()
	}
}
