package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/ravenkeep/darkcastle/internal/application/game"
	"github.com/ravenkeep/darkcastle/internal/application/replay"
	"github.com/ravenkeep/darkcastle/internal/application/scene/playing"
	"github.com/ravenkeep/darkcastle/internal/application/session"
	"github.com/ravenkeep/darkcastle/internal/infrastructure/config"
	"github.com/ravenkeep/darkcastle/internal/infrastructure/notify"
)

const framerate = 60

func main() {
	var (
		stageFlag    = flag.String("stage", "castle", "stage to load")
		configFlag   = flag.String("config", "", "config directory (default: embedded)")
		watchFlag    = flag.Bool("watch", false, "reload tuning.yaml on change (requires -config)")
		recordFlag   = flag.String("record", "", "record input to file")
		replayFlag   = flag.String("replay", "", "play back a recorded input file")
		headlessFlag = flag.Bool("headless", false, "run a replay without a window and report the outcome")
		debugFlag    = flag.Bool("debug", false, "verbose logging and hitbox overlay")
	)
	flag.Parse()

	log, err := newLogger(*debugFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(*stageFlag, *configFlag, *watchFlag, *recordFlag, *replayFlag,
		*headlessFlag, *debugFlag, log); err != nil {
		log.Fatal("exiting", zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(stageName, configDir string, watch bool, recordPath, replayPath string,
	headless, debug bool, log *zap.Logger) error {

	loader := config.NewDefaultLoader()
	if configDir != "" {
		loader = config.NewLoader(configDir)
	}

	cfg, err := loader.LoadTuning()
	if err != nil {
		return err
	}

	var rep *replay.Replayer
	if replayPath != "" {
		rep, err = replay.Load(replayPath)
		if err != nil {
			return err
		}
		// Recordings are bound to the stage they were made on.
		stageName = rep.Stage()
		log.Info("replaying", zap.String("file", replayPath), zap.String("stage", stageName))
	}

	stage, err := loader.LoadStage(stageName)
	if err != nil {
		return err
	}

	if headless {
		if rep == nil {
			return fmt.Errorf("-headless requires -replay")
		}
		return runHeadless(cfg, stage, rep, log)
	}

	sink := notify.NewLogSink(log)
	sess, err := session.New(cfg, stage, sink, log)
	if err != nil {
		return err
	}

	if watch {
		if configDir == "" {
			return fmt.Errorf("-watch requires -config")
		}
		w, err := config.Watch(configDir,
			func(t *config.Tuning) { sess.Retune(t) },
			func(err error) { log.Warn("tuning reload failed", zap.Error(err)) })
		if err != nil {
			return err
		}
		defer w.Close()
	}

	var source playing.IntentSource = playing.NewKeyboardSource()
	if rep != nil {
		source = playing.NewReplaySource(rep)
	}

	var rec *replay.Recorder
	if recordPath != "" {
		rec = replay.NewRecorder(stageName)
		defer func() {
			if err := rec.Save(recordPath); err != nil {
				log.Error("failed to save recording", zap.Error(err))
				return
			}
			log.Info("recording saved",
				zap.String("file", recordPath),
				zap.Int("frames", rec.Len()))
		}()
	}

	sc := playing.New(sess, source, rec, log)
	sc.DrawHitboxes = debug

	ebiten.SetWindowSize(int(cfg.World.Width), int(cfg.World.Height))
	ebiten.SetWindowTitle("Dark Castle")
	ebiten.SetTPS(framerate)

	return ebiten.RunGame(game.New(sc, int(cfg.World.Width), int(cfg.World.Height)))
}
