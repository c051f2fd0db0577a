package system

import (
	"github.com/ravenkeep/darkcastle/internal/domain/entity"
	"github.com/ravenkeep/darkcastle/internal/infrastructure/config"
	"github.com/ravenkeep/darkcastle/internal/infrastructure/notify"
)

// CombatSystem resolves attacks after all entities have moved for the
// tick: skeleton swings against the knight, then the knight's swing
// against every skeleton. Each swing damages a given target at most
// once.
type CombatSystem struct {
	cfg  *config.Tuning
	sink notify.Sink
}

// NewCombatSystem creates a combat system from tuning.
func NewCombatSystem(cfg *config.Tuning, sink notify.Sink) *CombatSystem {
	return &CombatSystem{cfg: cfg, sink: sink}
}

// Resolve applies all hits for this tick.
func (s *CombatSystem) Resolve(p *entity.Player, lvl *Level) {
	playerBox := p.Box()
	for _, e := range lvl.Enemies {
		if hitbox, ok := e.AttackHitbox(); ok && hitbox.Overlaps(playerBox) {
			s.damagePlayer(p)
		}
	}

	hitbox, ok := p.AttackHitbox()
	if !ok {
		return
	}
	for _, e := range lvl.Enemies {
		if !e.Alive || p.AlreadyHit(e) {
			continue
		}
		if !hitbox.Overlaps(e.Box()) {
			continue
		}
		p.MarkHit(e)
		p.Hitstop.Set(s.cfg.Player.HitstopTicks)
		if e.TakeDamage(1, s.cfg.Enemy.DespawnGrace) {
			s.sink.PlaySound(notify.CueSkeletonDie, 1)
		}
	}
}

// damagePlayer routes one skeleton hit through the knight's defenses
// and plays the matching cue.
func (s *CombatSystem) damagePlayer(p *entity.Player) {
	switch p.TakeDamage(1, s.cfg.Player.InvulnTicks) {
	case entity.DamageBlocked:
		// Restarting a long block sound every tick the hitbox
		// overlaps would stutter; stop-then-play with a linger
		// timer keeps it continuous.
		if p.BlockSound.Done() {
			s.sink.StopSound(notify.CueShieldBlocked)
			s.sink.PlaySound(notify.CueShieldBlocked, 1)
		}
		p.BlockSound.Set(s.cfg.Player.BlockSoundTicks)
	case entity.DamageTaken:
		s.sink.PlaySound(notify.CueHurt, 1)
	case entity.DamageKilled:
		s.sink.PlaySound(notify.CueDeath, 1)
	}
}
