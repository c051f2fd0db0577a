package entity

// Action is the player's exclusive action state. At most one action is
// ever active; transitions are guarded by the Start* methods so call
// sites cannot end up attacking and dashing at once.
type Action int

const (
	ActionNone Action = iota
	ActionAttack
	ActionDash
	ActionShield
)

// String returns the string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionAttack:
		return "Attack"
	case ActionDash:
		return "Dash"
	case ActionShield:
		return "Shield"
	default:
		return "Unknown"
	}
}

// AttackSpec describes a melee attack's active window and hitbox
// geometry. The hitbox is placed in front of the attacker: OffsetX is
// measured from the anchor toward the facing direction, OffsetY from
// the anchor upward being negative.
type AttackSpec struct {
	FirstFrame int
	LastFrame  int
	OffsetX    float64
	OffsetY    float64
	W, H       float64
}

// Hitbox returns the attack rectangle for an attacker anchored at
// x, y with the given facing, and whether the window covers frame.
func (s AttackSpec) Hitbox(x, y float64, facingRight bool, frame int) (Rect, bool) {
	if frame < s.FirstFrame || frame > s.LastFrame {
		return Rect{}, false
	}
	ox := s.OffsetX
	if !facingRight {
		ox = -(s.OffsetX + s.W)
	}
	return Rect{X: x + ox, Y: y + s.OffsetY, W: s.W, H: s.H}, true
}

// DamageResult classifies the outcome of an incoming hit on the player.
type DamageResult int

const (
	DamageIgnored DamageResult = iota // invulnerable or already dead
	DamageBlocked                     // absorbed by the raised shield
	DamageTaken                       // health reduced, still alive
	DamageKilled                      // health reached zero
)

// Player is the knight. All tuning values that vary per build (speeds,
// timer durations) live in the controller; the entity holds state.
type Player struct {
	Body
	Anim Animator

	Health int
	Alive  bool
	Score  int

	Action    Action
	DashTicks int // elapsed ticks of the active dash

	DashCooldown Countdown
	Invulnerable Countdown
	Hitstop      Countdown
	BlockSound   Countdown
	Death        Countdown

	JumpsLeft  int
	CoyoteTime int
	JumpBuffer int

	Attack AttackSpec

	// hitThisAttack remembers enemies already damaged by the active
	// swing so one attack lands on each target at most once.
	hitThisAttack map[*Enemy]struct{}

	// LastWalkFrame deduplicates the footstep cue on run key frames.
	LastWalkFrame int
}

// knightStates maps animation state name to frame count.
var knightStates = map[string]int{
	"idle":          15,
	"run":           8,
	"jump_and_fall": 12,
	"attack":        22,
	"death":         15,
	"roll":          15,
	"shield":        7,
}

// NewPlayer creates the knight at the given anchor position.
func NewPlayer(x, y, w, h float64, maxHealth int, attack AttackSpec) *Player {
	right, left := facingFrames("knight", knightStates)
	return &Player{
		Body: Body{X: x, Y: y, W: w, H: h, FacingRight: true},
		Anim: Animator{
			Right: right,
			Left:  left,
			Rates: map[string]float64{
				"idle":   5,
				"run":    4,
				"attack": 1.8,
				"shield": 2,
				"roll":   4,
			},
			DefaultRate: 5,
			Hold:        map[string]bool{"shield": true, "death": true},
			State:       "idle",
			FacingRight: true,
		},
		Health:        maxHealth,
		Alive:         true,
		JumpsLeft:     1,
		Attack:        attack,
		LastWalkFrame: -1,
	}
}

// StartAttack begins a swing. Refused while another action is active.
func (p *Player) StartAttack() bool {
	if p.Action != ActionNone {
		return false
	}
	p.Action = ActionAttack
	p.Anim.Restart("attack")
	p.hitThisAttack = make(map[*Enemy]struct{})
	return true
}

// FinishAttack ends the swing and forgets which enemies it hit.
func (p *Player) FinishAttack() {
	p.Action = ActionNone
	p.hitThisAttack = nil
}

// StartDash begins a dash. Refused while another action is active.
// The dash grants invulnerability for its full duration.
func (p *Player) StartDash(cooldownTicks, invulnTicks int) bool {
	if p.Action != ActionNone {
		return false
	}
	p.Action = ActionDash
	p.DashTicks = 0
	p.DashCooldown.Set(cooldownTicks)
	p.Invulnerable.Set(invulnTicks)
	return true
}

// CancelDash ends the dash immediately, as when it hits a wall.
func (p *Player) CancelDash() {
	if p.Action == ActionDash {
		p.Action = ActionNone
		p.VX = 0
	}
}

// StartShield raises the shield. Refused while another action is active.
func (p *Player) StartShield() bool {
	if p.Action != ActionNone {
		return false
	}
	p.Action = ActionShield
	p.Anim.Restart("shield")
	return true
}

// StopShield lowers the shield. Reports whether it was raised.
func (p *Player) StopShield() bool {
	if p.Action != ActionShield {
		return false
	}
	p.Action = ActionNone
	return true
}

// TakeDamage applies an incoming hit. Invulnerability and death ignore
// it entirely; a raised shield blocks unconditionally; otherwise health
// drops and, if the player survives, the invulnerability window opens.
func (p *Player) TakeDamage(amount, invulnTicks int) DamageResult {
	if p.Invulnerable.Active() || !p.Alive {
		return DamageIgnored
	}
	if p.Action == ActionShield {
		return DamageBlocked
	}
	p.Health -= amount
	if p.Health <= 0 {
		p.Die()
		return DamageKilled
	}
	p.Invulnerable.Set(invulnTicks)
	return DamageTaken
}

// Die puts the player into the terminal death state. Repeated calls
// are no-ops; nothing short of a level reset revives the player.
func (p *Player) Die() bool {
	if !p.Alive {
		return false
	}
	p.Alive = false
	p.Health = 0
	p.Action = ActionNone
	p.Anim.Restart("death")
	p.Death.Set(len(p.Anim.Right["death"]) * int(p.Anim.DefaultRate))
	return true
}

// AttackHitbox returns the active attack rectangle, if the swing is in
// its active frame window.
func (p *Player) AttackHitbox() (Rect, bool) {
	if p.Action != ActionAttack {
		return Rect{}, false
	}
	return p.Attack.Hitbox(p.X, p.Y, p.FacingRight, p.Anim.Frame)
}

// AlreadyHit reports whether the active swing has damaged e.
func (p *Player) AlreadyHit(e *Enemy) bool {
	_, ok := p.hitThisAttack[e]
	return ok
}

// MarkHit records that the active swing has damaged e.
func (p *Player) MarkHit(e *Enemy) {
	if p.hitThisAttack != nil {
		p.hitThisAttack[e] = struct{}{}
	}
}
