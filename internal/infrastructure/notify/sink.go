// Package notify decouples the simulation from audio playback. The
// simulation emits named cues; the frontend decides what they sound
// like, and headless runs (tests, replay verification) plug in a no-op
// or logging sink.
package notify

// Cue names a one-shot sound effect.
type Cue string

const (
	CueJump          Cue = "knight_jump"
	CueLand          Cue = "knight_land"
	CueWalk          Cue = "knight_walk"
	CueAttackSwing   Cue = "knight_attack_swing"
	CueRoll          Cue = "knight_roll"
	CueShieldUp      Cue = "knight_shield_up"
	CueShieldBlocked Cue = "knight_shield_blocked"
	CueHurt          Cue = "knight_hurt"
	CueDeath         Cue = "knight_death"
	CueSkeletonDie   Cue = "skeleton_die"
	CueCollect       Cue = "collectible_get"
	CueDoor          Cue = "door_teleport"
)

// Music names a looping background track.
type Music string

const (
	MusicMenu     Music = "menu_music"
	MusicCastle   Music = "castle_theme"
	MusicGameOver Music = "game_over"
	MusicVictory  Music = "victory"
)

// Sink receives audio events from the simulation.
type Sink interface {
	PlaySound(cue Cue, volume float64)
	StopSound(cue Cue)
	PlayMusic(track Music, loop bool)
	StopMusic()
	SetMusicVolume(volume float64)
}

// NopSink discards every event.
type NopSink struct{}

func (NopSink) PlaySound(Cue, float64) {}
func (NopSink) StopSound(Cue)          {}
func (NopSink) PlayMusic(Music, bool)  {}
func (NopSink) StopMusic()             {}
func (NopSink) SetMusicVolume(float64) {}

// Recorder keeps every received event in order, for tests.
type Recorder struct {
	Sounds  []Cue
	Stopped []Cue
	Tracks  []Music
	Volumes []float64
}

func (r *Recorder) PlaySound(cue Cue, volume float64) {
	r.Sounds = append(r.Sounds, cue)
	r.Volumes = append(r.Volumes, volume)
}

func (r *Recorder) StopSound(cue Cue) {
	r.Stopped = append(r.Stopped, cue)
}

func (r *Recorder) PlayMusic(track Music, loop bool) {
	r.Tracks = append(r.Tracks, track)
}

func (r *Recorder) StopMusic() {
	r.Tracks = append(r.Tracks, "")
}

func (r *Recorder) SetMusicVolume(volume float64) {
	r.Volumes = append(r.Volumes, volume)
}

// Played reports whether the cue was played at least once.
func (r *Recorder) Played(cue Cue) bool {
	for _, c := range r.Sounds {
		if c == cue {
			return true
		}
	}
	return false
}

// Count returns how many times the cue was played.
func (r *Recorder) Count(cue Cue) int {
	n := 0
	for _, c := range r.Sounds {
		if c == cue {
			n++
		}
	}
	return n
}
