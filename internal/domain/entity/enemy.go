package entity

// Enemy is a patrolling skeleton. It spawns falling from its drop
// point, patrols between its bounds, chases the player inside its
// detection radius and swings when in melee range.
type Enemy struct {
	Body
	Anim Animator

	Health    int
	Alive     bool
	Attacking bool

	AttackCooldown Countdown
	Despawn        Countdown
	DespawnReady   bool

	Attack AttackSpec

	PatrolLeft  float64
	PatrolRight float64
	PatrolDir   int // +1 right, -1 left

	// Stuck detection: ticks spent without meaningful horizontal
	// progress while trying to move.
	StuckTicks int
	LastX      float64

	SpawnX, SpawnY float64

	// Initialized flips once the spawn drop has landed; until then the
	// enemy only falls and runs no behavior.
	Initialized bool
}

// skeletonStates maps animation state name to frame count.
var skeletonStates = map[string]int{
	"idle":   8,
	"walk":   10,
	"attack": 10,
	"die":    13,
}

// NewEnemy creates a skeleton dropping in at the given anchor position.
func NewEnemy(x, y, w, h float64, maxHealth int, attack AttackSpec, patrolLeft, patrolRight float64) *Enemy {
	right, left := facingFrames("skeleton", skeletonStates)
	return &Enemy{
		Body: Body{X: x, Y: y, W: w, H: h},
		Anim: Animator{
			Right: right,
			Left:  left,
			Rates: map[string]float64{
				"idle": 6,
			},
			DefaultRate: 5,
			Hold:        map[string]bool{"die": true},
			State:       "idle",
		},
		Health:      maxHealth,
		Alive:       true,
		Attack:      attack,
		PatrolLeft:  patrolLeft,
		PatrolRight: patrolRight,
		PatrolDir:   1,
		SpawnX:      x,
		SpawnY:      y,
		LastX:       x,
	}
}

// StartAttack begins a swing and arms the cooldown.
func (e *Enemy) StartAttack(cooldownTicks int) {
	e.Attacking = true
	e.AttackCooldown.Set(cooldownTicks)
	e.Anim.Restart("attack")
}

// TakeDamage reduces health and reports whether the hit was lethal.
// Hits on a dying skeleton are ignored.
func (e *Enemy) TakeDamage(amount, despawnTicks int) bool {
	if !e.Alive {
		return false
	}
	e.Health -= amount
	if e.Health > 0 {
		return false
	}
	e.Die(despawnTicks)
	return true
}

// Die puts the skeleton into its dying state. It stops moving and
// acting, plays out the death animation, and lingers for the grace
// period before DespawnReady is raised.
func (e *Enemy) Die(despawnTicks int) {
	e.Alive = false
	e.Attacking = false
	e.VX = 0
	e.Anim.Restart("die")
	e.Despawn.Set(despawnTicks)
}

// AttackHitbox returns the active attack rectangle, if the swing is in
// its active frame window.
func (e *Enemy) AttackHitbox() (Rect, bool) {
	if !e.Attacking {
		return Rect{}, false
	}
	return e.Attack.Hitbox(e.X, e.Y, e.FacingRight, e.Anim.Frame)
}

// Respawn puts the skeleton back at its drop point, falling again.
// Used as a failsafe when one escapes the world bounds.
func (e *Enemy) Respawn() {
	e.X, e.Y = e.SpawnX, e.SpawnY
	e.VX, e.VY = 0, 0
	e.OnGround = false
	e.Initialized = false
	e.Attacking = false
	e.StuckTicks = 0
	e.LastX = e.X
	e.Anim.Restart("idle")
}
