package playing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ravenkeep/darkcastle/internal/application/replay"
	"github.com/ravenkeep/darkcastle/internal/application/session"
	"github.com/ravenkeep/darkcastle/internal/application/state"
	"github.com/ravenkeep/darkcastle/internal/infrastructure/config"
	"github.com/ravenkeep/darkcastle/internal/infrastructure/notify"
)

func newHeadlessSession(t *testing.T) *session.Session {
	t.Helper()
	loader := config.NewDefaultLoader()
	cfg, err := loader.LoadTuning()
	require.NoError(t, err)
	stage, err := loader.LoadStage("castle")
	require.NoError(t, err)
	sess, err := session.New(cfg, stage, notify.NopSink{}, zap.NewNop())
	require.NoError(t, err)
	return sess
}

func replaySourceFrom(t *testing.T, frames []replay.Frame) *ReplaySource {
	t.Helper()
	rep, err := replay.NewReplayer(replay.Data{
		Version: replay.FormatVersion,
		Stage:   "castle",
		Frames:  frames,
	})
	require.NoError(t, err)
	return NewReplaySource(rep)
}

func TestSceneDrivesSessionFromReplay(t *testing.T) {
	sess := newHeadlessSession(t)
	frames := make([]replay.Frame, 0, 200)
	frames = append(frames, replay.Frame{Confirm: true})
	for i := 0; i < 120; i++ {
		frames = append(frames, replay.Frame{Right: true})
	}
	sc := New(sess, replaySourceFrom(t, frames), nil, zap.NewNop())
	sc.OnEnter()

	for i := 0; i < len(frames); i++ {
		next, err := sc.Update()
		require.NoError(t, err)
		assert.Nil(t, next)
	}

	assert.Equal(t, state.Playing, sess.State)
	assert.Greater(t, sess.Player.X, sess.Level.SpawnX)
}

func TestSceneIdlesWhenReplayExhausted(t *testing.T) {
	sess := newHeadlessSession(t)
	sc := New(sess, replaySourceFrom(t, nil), nil, zap.NewNop())

	for i := 0; i < 10; i++ {
		_, err := sc.Update()
		require.NoError(t, err)
	}
	assert.Equal(t, state.Menu, sess.State, "empty intents never leave the menu")
}

func TestSceneRecordsWhileRunning(t *testing.T) {
	sess := newHeadlessSession(t)
	rec := replay.NewRecorder("castle")
	frames := []replay.Frame{{Confirm: true}, {Right: true}, {Right: true}}
	sc := New(sess, replaySourceFrom(t, frames), rec, zap.NewNop())

	for range frames {
		_, err := sc.Update()
		require.NoError(t, err)
	}
	// The confirm tick transitions out of the menu, so every frame
	// after it is part of the run and gets recorded.
	assert.Equal(t, 3, rec.Len())
}

func TestReplaySourceReportsExhaustion(t *testing.T) {
	src := replaySourceFrom(t, []replay.Frame{{Jump: true}})

	in, ok := src.NextIntent()
	require.True(t, ok)
	assert.True(t, in.JumpPressed)

	_, ok = src.NextIntent()
	assert.False(t, ok)
}

var _ IntentSource = (*KeyboardSource)(nil)
var _ IntentSource = (*ReplaySource)(nil)
