package entity

import "fmt"

// FrameSet maps an animation state name to its ordered sprite frame
// names for one facing direction.
type FrameSet map[string][]string

// Animator tracks which frame of which animation state an entity is
// showing. It advances one frame every time its internal counter
// reaches the state's rate; rates are in ticks per frame and may be
// fractional. Switching State does not reset the frame index — callers
// that need a clean start use Restart.
type Animator struct {
	Right FrameSet
	Left  FrameSet

	// Rates maps a state name to its advance threshold in ticks.
	// States without an entry fall back to DefaultRate.
	Rates       map[string]float64
	DefaultRate float64

	// Hold lists states that freeze on their last frame instead of
	// cycling: the sustained shield pose and the death sequences.
	Hold map[string]bool

	State       string
	FacingRight bool
	Frame       int

	counter float64
}

// Rate returns the advance threshold for the given state.
func (a *Animator) Rate(state string) float64 {
	if r, ok := a.Rates[state]; ok {
		return r
	}
	return a.DefaultRate
}

// Frames returns the frame list for the active state and facing.
func (a *Animator) Frames() []string {
	set := a.Right
	if !a.FacingRight {
		set = a.Left
	}
	return set[a.State]
}

// Len returns the number of frames in the given state for the active
// facing. Unknown states have zero frames.
func (a *Animator) Len(state string) int {
	set := a.Right
	if !a.FacingRight {
		set = a.Left
	}
	return len(set[state])
}

// FrameName returns the sprite name for the current frame, or "" when
// the active state has no frames for the active facing.
func (a *Animator) FrameName() string {
	frames := a.Frames()
	if a.Frame < 0 || a.Frame >= len(frames) {
		return ""
	}
	return frames[a.Frame]
}

// Advance steps the animation by one simulation tick. A missing frame
// list is a no-op; hold states park on their last frame.
func (a *Animator) Advance() {
	a.counter++
	if a.counter < a.Rate(a.State) {
		return
	}
	a.counter = 0
	frames := a.Frames()
	if len(frames) == 0 {
		return
	}
	if a.Hold[a.State] && a.Frame == len(frames)-1 {
		return
	}
	a.Frame = (a.Frame + 1) % len(frames)
}

// Restart switches to the given state at frame zero.
func (a *Animator) Restart(state string) {
	a.State = state
	a.Frame = 0
	a.counter = 0
}

// OnLastFrame reports whether the current frame is the final frame of
// the active state.
func (a *Animator) OnLastFrame() bool {
	n := a.Len(a.State)
	return n > 0 && a.Frame == n-1
}

// StateFinished reports whether the active state has both reached its
// last frame and dwelt on it for a full frame interval. Used to detect
// completion of non-looping action states such as the attack swing.
func (a *Animator) StateFinished() bool {
	return a.OnLastFrame() && a.counter >= a.Rate(a.State)-1
}

// frameNames builds "prefix/0" .. "prefix/n-1".
func frameNames(prefix string, n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("%s/%d", prefix, i)
	}
	return names
}

// facingFrames builds the frame sets for both facings from a
// state -> frame count table. Left-facing sprites carry a suffix on
// the sheet prefix, mirroring how the art is organized.
func facingFrames(name string, states map[string]int) (right, left FrameSet) {
	right = make(FrameSet, len(states))
	left = make(FrameSet, len(states))
	for state, n := range states {
		right[state] = frameNames(name+"_"+state, n)
		left[state] = frameNames(name+"_"+state+"_left", n)
	}
	return right, left
}
