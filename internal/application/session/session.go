// Package session owns one play-through: the flow state machine, the
// level, the player and the per-tick system pipeline. It is the whole
// simulation behind a single Update call, with rendering and input
// devices kept outside.
package session

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ravenkeep/darkcastle/internal/application/state"
	"github.com/ravenkeep/darkcastle/internal/application/system"
	"github.com/ravenkeep/darkcastle/internal/domain/entity"
	"github.com/ravenkeep/darkcastle/internal/infrastructure/config"
	"github.com/ravenkeep/darkcastle/internal/infrastructure/notify"
)

// Session is one run of the game from menu to game over or victory.
type Session struct {
	cfg   *config.Tuning
	stage *config.Stage
	sink  notify.Sink
	log   *zap.Logger

	State  state.GameState
	Level  *system.Level
	Player *entity.Player

	physics *system.PhysicsSystem
	players *system.PlayerSystem
	enemies *system.EnemySystem
	combat  *system.CombatSystem

	startDelay   entity.Countdown
	victoryDelay entity.Countdown
	victoryArmed bool

	// Tick counts simulation ticks since the session was started.
	Tick int
}

// New creates a session sitting at the menu.
func New(cfg *config.Tuning, stage *config.Stage, sink notify.Sink, log *zap.Logger) (*Session, error) {
	s := &Session{
		cfg:   cfg,
		stage: stage,
		sink:  sink,
		log:   log,
		State: state.Menu,
	}
	if err := s.Reset(); err != nil {
		return nil, err
	}
	s.sink.PlayMusic(notify.MusicMenu, true)
	return s, nil
}

// Reset rebuilds the level and the player from the stage config.
func (s *Session) Reset() error {
	lvl, err := system.BuildLevel(s.stage, s.cfg)
	if err != nil {
		return fmt.Errorf("failed to reset session: %w", err)
	}
	s.Level = lvl
	s.Player = system.NewLevelPlayer(lvl, s.cfg)
	s.physics = system.NewPhysicsSystem(s.cfg)
	s.players = system.NewPlayerSystem(s.physics, s.cfg, s.sink)
	s.enemies = system.NewEnemySystem(s.physics, s.cfg)
	s.combat = system.NewCombatSystem(s.cfg, s.sink)
	s.victoryDelay = 0
	s.victoryArmed = false
	s.Tick = 0
	return nil
}

// Start begins a fresh run from the menu or an end screen.
func (s *Session) Start() error {
	if err := s.Reset(); err != nil {
		return err
	}
	s.State = state.Starting
	s.startDelay.Set(s.cfg.Flow.StartDelayTicks)
	s.sink.StopMusic()
	s.sink.PlayMusic(notify.Music(s.stage.Music), true)
	s.sink.SetMusicVolume(0)
	s.log.Info("session started", zap.String("stage", s.stage.Name))
	return nil
}

// Retune swaps the gameplay tuning for the next reset. The running
// level keeps its old values; a mid-level swap would teleport hitboxes.
func (s *Session) Retune(cfg *config.Tuning) {
	s.cfg = cfg
	s.log.Info("tuning swapped, applies on next reset")
}

// Update advances the session by one tick.
func (s *Session) Update(in system.Intent) error {
	switch s.State {
	case state.Menu:
		if in.ConfirmPressed {
			return s.Start()
		}
	case state.Starting:
		s.updateStarting(in)
	case state.Playing:
		s.updatePlaying(in)
	case state.Paused:
		switch {
		case in.PausePressed:
			s.State = state.Playing
		case in.ConfirmPressed:
			// Abandoning the run from the pause screen.
			s.State = state.Menu
			s.sink.StopMusic()
			s.sink.PlayMusic(notify.MusicMenu, true)
		}
	case state.GameOver, state.Victory:
		if in.ConfirmPressed {
			s.State = state.Menu
			s.sink.StopMusic()
			s.sink.PlayMusic(notify.MusicMenu, true)
		}
	}
	return nil
}

// updateStarting runs the fade-in: the world already ticks, the
// keyboard is already live, and the stage music ramps up.
func (s *Session) updateStarting(in system.Intent) {
	s.tickWorld(in)

	total := s.cfg.Flow.StartDelayTicks
	elapsed := total - int(s.startDelay)
	s.sink.SetMusicVolume(float64(elapsed) / float64(total) * 0.3)

	if s.startDelay.Tick() {
		s.sink.SetMusicVolume(0.3)
		s.State = state.Playing
	}
}

func (s *Session) updatePlaying(in system.Intent) {
	if in.PausePressed {
		s.State = state.Paused
		return
	}

	if in.InteractPressed {
		s.tryDoor()
	}

	s.tickWorld(in)

	if !s.Player.Alive && s.Player.Death.Done() {
		s.State = state.GameOver
		s.sink.StopMusic()
		s.sink.PlayMusic(notify.MusicGameOver, false)
		s.log.Info("game over",
			zap.Int("score", s.Player.Score),
			zap.Int("tick", s.Tick))
		return
	}

	s.checkVictory()
}

// tickWorld runs one tick of the full system pipeline, in fixed order:
// player, props, enemies, despawn sweep, then combat.
func (s *Session) tickWorld(in system.Intent) {
	s.Tick++

	s.players.Update(s.Player, in, s.Level)

	for _, d := range s.Level.Decorations {
		d.Update()
	}
	for _, c := range s.Level.Collectibles {
		if !c.Collected {
			c.Update()
		}
	}

	for _, e := range s.Level.Enemies {
		s.enemies.Update(e, s.Player, s.Level)
	}
	s.Level.RemoveDespawned()

	s.combat.Resolve(s.Player, s.Level)
}

// tryDoor teleports the player through a door they are standing at.
// The margin forgives standing slightly beside the frame.
func (s *Session) tryDoor() {
	if !s.Player.Alive {
		return
	}
	box := s.Player.Box()
	for _, d := range s.Level.Doors {
		if !box.Overlaps(d.Box.Inflate(10, 10)) {
			continue
		}
		s.Player.X = d.DestX
		s.Player.Y = d.DestY
		s.Player.VY = 0
		s.sink.PlaySound(notify.CueDoor, 1)
		return
	}
}

// checkVictory arms the victory delay once the last skeleton dies,
// then fires after it runs out. The delay lets the final death
// animation land before the screen changes.
func (s *Session) checkVictory() {
	if !s.Player.Alive {
		return
	}
	if !s.victoryArmed {
		if s.Level.AliveEnemies() == 0 {
			s.victoryArmed = true
			s.victoryDelay.Set(s.cfg.Flow.VictoryDelayTicks)
		}
		return
	}
	if s.victoryDelay.Tick() {
		s.State = state.Victory
		s.sink.StopMusic()
		s.sink.PlayMusic(notify.MusicVictory, false)
		s.log.Info("victory",
			zap.Int("score", s.Player.Score),
			zap.Int("tick", s.Tick))
	}
}
