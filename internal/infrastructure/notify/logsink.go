package notify

import "go.uber.org/zap"

// knownCues is the cue vocabulary the frontend ships sounds for.
var knownCues = map[Cue]struct{}{
	CueJump: {}, CueLand: {}, CueWalk: {}, CueAttackSwing: {},
	CueRoll: {}, CueShieldUp: {}, CueShieldBlocked: {}, CueHurt: {},
	CueDeath: {}, CueSkeletonDie: {}, CueCollect: {}, CueDoor: {},
}

// LogSink logs every audio event. Used in headless mode and wrapped
// around real playback during development to trace cue timing.
type LogSink struct {
	log *zap.Logger
}

// NewLogSink creates a sink logging to the given logger.
func NewLogSink(log *zap.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) PlaySound(cue Cue, volume float64) {
	if _, ok := knownCues[cue]; !ok {
		s.log.Warn("unknown sound cue", zap.String("cue", string(cue)))
		return
	}
	s.log.Debug("play sound",
		zap.String("cue", string(cue)),
		zap.Float64("volume", volume))
}

func (s *LogSink) StopSound(cue Cue) {
	s.log.Debug("stop sound", zap.String("cue", string(cue)))
}

func (s *LogSink) PlayMusic(track Music, loop bool) {
	s.log.Debug("play music",
		zap.String("track", string(track)),
		zap.Bool("loop", loop))
}

func (s *LogSink) StopMusic() {
	s.log.Debug("stop music")
}

func (s *LogSink) SetMusicVolume(volume float64) {
	s.log.Debug("music volume", zap.Float64("volume", volume))
}
