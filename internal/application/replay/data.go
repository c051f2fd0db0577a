// Package replay records and plays back input streams. A recording is
// the stage name plus one frame per tick; because the simulation is
// deterministic, feeding the frames back reproduces the run exactly.
package replay

import "github.com/ravenkeep/darkcastle/internal/application/system"

// FormatVersion is bumped whenever the frame layout changes.
const FormatVersion = 1

// Frame is one tick of recorded input. Field tags are kept short;
// recordings hold one frame per tick and the dead weight adds up.
type Frame struct {
	Left     bool `json:"l,omitempty"`
	Right    bool `json:"r,omitempty"`
	Dash     bool `json:"d,omitempty"`
	Jump     bool `json:"j,omitempty"`
	Attack   bool `json:"a,omitempty"`
	Shield   bool `json:"s,omitempty"`
	Unshield bool `json:"u,omitempty"`
	Interact bool `json:"i,omitempty"`
	Pause    bool `json:"p,omitempty"`
	Confirm  bool `json:"c,omitempty"`
}

// Data is a complete recording.
type Data struct {
	Version int     `json:"version"`
	Stage   string  `json:"stage"`
	Frames  []Frame `json:"frames"`
}

// FromIntent packs an intent into a frame.
func FromIntent(in system.Intent) Frame {
	return Frame{
		Left:     in.Left,
		Right:    in.Right,
		Dash:     in.Dash,
		Jump:     in.JumpPressed,
		Attack:   in.AttackPressed,
		Shield:   in.ShieldPressed,
		Unshield: in.ShieldReleased,
		Interact: in.InteractPressed,
		Pause:    in.PausePressed,
		Confirm:  in.ConfirmPressed,
	}
}

// Intent unpacks the frame.
func (f Frame) Intent() system.Intent {
	return system.Intent{
		Left:            f.Left,
		Right:           f.Right,
		Dash:            f.Dash,
		JumpPressed:     f.Jump,
		AttackPressed:   f.Attack,
		ShieldPressed:   f.Shield,
		ShieldReleased:  f.Unshield,
		InteractPressed: f.Interact,
		PausePressed:    f.Pause,
		ConfirmPressed:  f.Confirm,
	}
}
