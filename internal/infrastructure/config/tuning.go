package config

import "fmt"

// Tuning is the root gameplay tuning config. Every value is in pixels,
// pixels per tick, or ticks at the fixed 60 ticks-per-second rate.
type Tuning struct {
	World   WorldConfig   `yaml:"world"`
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Flow    FlowConfig    `yaml:"flow"`
}

// WorldConfig bounds the playfield.
type WorldConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	CeilingY   float64 `yaml:"ceilingY"`
	KillMargin float64 `yaml:"killMargin"`
}

// KillPlaneY returns the Y below which an entity has left the world.
func (w WorldConfig) KillPlaneY() float64 {
	return w.Height + w.KillMargin
}

// PhysicsConfig holds the shared movement constants.
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"`
}

// AttackConfig describes a melee hitbox and its active frame window.
type AttackConfig struct {
	FirstFrame int     `yaml:"firstFrame"`
	LastFrame  int     `yaml:"lastFrame"`
	OffsetX    float64 `yaml:"offsetX"`
	OffsetY    float64 `yaml:"offsetY"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
}

// PlayerConfig tunes the knight.
type PlayerConfig struct {
	Width           float64      `yaml:"width"`
	Height          float64      `yaml:"height"`
	MoveSpeed       float64      `yaml:"moveSpeed"`
	JumpStrength    float64      `yaml:"jumpStrength"`
	DashSpeed       float64      `yaml:"dashSpeed"`
	DashDuration    int          `yaml:"dashDuration"`
	DashCooldown    int          `yaml:"dashCooldown"`
	CoyoteTicks     int          `yaml:"coyoteTicks"`
	JumpBufferTicks int          `yaml:"jumpBufferTicks"`
	InvulnTicks     int          `yaml:"invulnTicks"`
	HitstopTicks    int          `yaml:"hitstopTicks"`
	BlockSoundTicks int          `yaml:"blockSoundTicks"`
	MaxHealth       int          `yaml:"maxHealth"`
	MaxAirJumps     int          `yaml:"maxAirJumps"`
	Attack          AttackConfig `yaml:"attack"`
}

// EnemyConfig tunes the skeletons.
type EnemyConfig struct {
	Width          float64      `yaml:"width"`
	Height         float64      `yaml:"height"`
	Speed          float64      `yaml:"speed"`
	MaxHealth      int          `yaml:"maxHealth"`
	DetectRadius   float64      `yaml:"detectRadius"`
	VerticalGate   float64      `yaml:"verticalGate"`
	MeleeRange     float64      `yaml:"meleeRange"`
	AttackCooldown int          `yaml:"attackCooldown"`
	StuckTicks     int          `yaml:"stuckTicks"`
	StuckEpsilon   float64      `yaml:"stuckEpsilon"`
	DespawnGrace   int          `yaml:"despawnGrace"`
	Attack         AttackConfig `yaml:"attack"`
}

// FlowConfig tunes the session flow delays.
type FlowConfig struct {
	StartDelayTicks   int `yaml:"startDelayTicks"`
	VictoryDelayTicks int `yaml:"victoryDelayTicks"`
}

// Validate checks the tuning for values that would break the simulation.
func (t *Tuning) Validate() error {
	if t.World.Width <= 0 || t.World.Height <= 0 {
		return fmt.Errorf("world size must be positive, got %gx%g", t.World.Width, t.World.Height)
	}
	if t.Physics.Gravity <= 0 {
		return fmt.Errorf("gravity must be positive, got %g", t.Physics.Gravity)
	}
	if t.Player.JumpStrength >= 0 {
		return fmt.Errorf("jump strength must be negative (up is -Y), got %g", t.Player.JumpStrength)
	}
	if t.Player.MoveSpeed <= 0 || t.Enemy.Speed <= 0 {
		return fmt.Errorf("move speeds must be positive")
	}
	if t.Player.MaxHealth <= 0 || t.Enemy.MaxHealth <= 0 {
		return fmt.Errorf("max health must be positive")
	}
	if t.Player.DashDuration <= 0 || t.Player.DashCooldown < t.Player.DashDuration {
		return fmt.Errorf("dash cooldown %d must cover dash duration %d",
			t.Player.DashCooldown, t.Player.DashDuration)
	}
	if t.Enemy.DetectRadius < t.Enemy.MeleeRange {
		return fmt.Errorf("detect radius %g must cover melee range %g",
			t.Enemy.DetectRadius, t.Enemy.MeleeRange)
	}
	return nil
}
