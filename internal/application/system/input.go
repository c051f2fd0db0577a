package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem polls the keyboard into an Intent once per tick.
type InputSystem struct{}

// NewInputSystem creates a keyboard input system.
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Poll reads the current keyboard state.
func (s *InputSystem) Poll() Intent {
	return Intent{
		Left:  ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Dash:  inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft) || inpututil.IsKeyJustPressed(ebiten.KeyShiftRight),

		JumpPressed:   inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyUp),
		AttackPressed: inpututil.IsKeyJustPressed(ebiten.KeyJ) || inpututil.IsKeyJustPressed(ebiten.KeyX),
		ShieldPressed: inpututil.IsKeyJustPressed(ebiten.KeyK) || inpututil.IsKeyJustPressed(ebiten.KeyC),
		ShieldReleased: inpututil.IsKeyJustReleased(ebiten.KeyK) ||
			inpututil.IsKeyJustReleased(ebiten.KeyC),

		InteractPressed: inpututil.IsKeyJustPressed(ebiten.KeyE),
		PausePressed:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		ConfirmPressed:  inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
	}
}
