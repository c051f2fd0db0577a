package main

import (
	"go.uber.org/zap"

	"github.com/ravenkeep/darkcastle/internal/application/replay"
	"github.com/ravenkeep/darkcastle/internal/application/session"
	"github.com/ravenkeep/darkcastle/internal/infrastructure/config"
	"github.com/ravenkeep/darkcastle/internal/infrastructure/notify"
)

// runHeadless drives a recording through the simulation without a
// window and logs the outcome. Used to verify that a recorded run
// still reproduces after gameplay changes.
func runHeadless(cfg *config.Tuning, stage *config.Stage, rep *replay.Replayer, log *zap.Logger) error {
	sess, err := session.New(cfg, stage, notify.NopSink{}, log)
	if err != nil {
		return err
	}

	frames := 0
	for {
		in, ok := rep.Next()
		if !ok {
			break
		}
		if err := sess.Update(in); err != nil {
			return err
		}
		frames++
	}

	log.Info("replay finished",
		zap.Int("frames", frames),
		zap.String("state", sess.State.String()),
		zap.Int("score", sess.Player.Score),
		zap.Int("health", sess.Player.Health),
		zap.Int("enemiesLeft", sess.Level.AliveEnemies()),
		zap.Int("tick", sess.Tick))
	return nil
}
