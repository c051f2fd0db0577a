package system

// Intent is one tick of player input, already mapped from whatever
// device produced it. The simulation consumes intents, never raw keys,
// so recorded sessions replay exactly.
type Intent struct {
	Left  bool
	Right bool
	Dash  bool

	JumpPressed    bool
	AttackPressed  bool
	ShieldPressed  bool
	ShieldReleased bool

	InteractPressed bool
	PausePressed    bool
	ConfirmPressed  bool
}

// MoveDir returns the horizontal input direction: -1, 0 or +1.
// Opposite directions cancel out.
func (i Intent) MoveDir() float64 {
	switch {
	case i.Left && !i.Right:
		return -1
	case i.Right && !i.Left:
		return 1
	default:
		return 0
	}
}
