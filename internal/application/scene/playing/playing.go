// Package playing renders a running session: the level geometry, the
// entities, the HUD and the flow-state overlays. All simulation lives
// in the session; this scene only polls input, feeds ticks and draws
// rectangles.
package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"

	"github.com/ravenkeep/darkcastle/internal/application/replay"
	"github.com/ravenkeep/darkcastle/internal/application/scene"
	"github.com/ravenkeep/darkcastle/internal/application/session"
	"github.com/ravenkeep/darkcastle/internal/application/state"
	"github.com/ravenkeep/darkcastle/internal/application/system"
	"github.com/ravenkeep/darkcastle/internal/domain/entity"
)

// IntentSource produces one intent per tick: live keyboard input or a
// replay stream.
type IntentSource interface {
	NextIntent() (system.Intent, bool)
}

// KeyboardSource polls the keyboard.
type KeyboardSource struct {
	input *system.InputSystem
}

// NewKeyboardSource creates a live input source.
func NewKeyboardSource() *KeyboardSource {
	return &KeyboardSource{input: system.NewInputSystem()}
}

func (k *KeyboardSource) NextIntent() (system.Intent, bool) {
	return k.input.Poll(), true
}

// ReplaySource feeds back a recording.
type ReplaySource struct {
	rep *replay.Replayer
}

// NewReplaySource creates a replay input source.
func NewReplaySource(rep *replay.Replayer) *ReplaySource {
	return &ReplaySource{rep: rep}
}

func (r *ReplaySource) NextIntent() (system.Intent, bool) {
	return r.rep.Next()
}

var (
	colorBackground = color.RGBA{24, 20, 37, 255}
	colorPlatform   = color.RGBA{90, 83, 83, 255}
	colorTrap       = color.RGBA{172, 50, 50, 255}
	colorPlayer     = color.RGBA{99, 155, 255, 255}
	colorShield     = color.RGBA{95, 205, 228, 255}
	colorEnemy      = color.RGBA{153, 229, 80, 255}
	colorDying      = color.RGBA{105, 106, 106, 255}
	colorDoor       = color.RGBA{143, 86, 59, 255}
	colorCoin       = color.RGBA{251, 242, 54, 255}
	colorDecoration = color.RGBA{223, 113, 38, 255}
	colorHitbox     = color.RGBA{255, 255, 255, 90}
	colorHeart      = color.RGBA{217, 87, 99, 255}
	colorHeartLost  = color.RGBA{69, 40, 60, 255}
)

// Scene is the playing screen.
type Scene struct {
	sess   *session.Session
	source IntentSource
	rec    *replay.Recorder
	log    *zap.Logger

	fade    *gween.Tween
	fadeVal float32

	// DrawHitboxes overlays attack hitboxes for tuning work.
	DrawHitboxes bool
}

// New creates the playing scene over a session.
func New(sess *session.Session, source IntentSource, rec *replay.Recorder, log *zap.Logger) *Scene {
	return &Scene{
		sess:   sess,
		source: source,
		rec:    rec,
		log:    log,
	}
}

// OnEnter implements scene.Scene.
func (s *Scene) OnEnter() {
	s.log.Info("entering playing scene")
}

// OnExit implements scene.Scene.
func (s *Scene) OnExit() {
	s.log.Info("leaving playing scene")
}

// Update advances the session by one tick.
func (s *Scene) Update() (scene.Scene, error) {
	in, ok := s.source.NextIntent()
	if !ok {
		// Replay exhausted; idle out the rest of the run.
		in = system.Intent{}
	}

	prev := s.sess.State
	if err := s.sess.Update(in); err != nil {
		return nil, err
	}

	if s.rec != nil && s.sess.State != state.Menu {
		s.rec.Record(replay.FromIntent(in))
	}

	// A fresh fade-in every time the run (re)starts.
	if prev != state.Starting && s.sess.State == state.Starting {
		s.fade = gween.New(1, 0, 45, ease.Linear)
	}
	if s.fade != nil {
		s.fadeVal, _ = s.fade.Update(1)
	}

	return nil, nil
}

// Draw renders the whole frame.
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	if s.sess.State == state.Menu {
		s.drawMenu(screen)
		return
	}

	s.drawLevel(screen)
	s.drawEntities(screen)
	s.drawHUD(screen)
	s.drawOverlay(screen)
}

func (s *Scene) drawMenu(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	ebitenutil.DebugPrintAt(screen, "DARK CASTLE", w/2-40, h/2-30)
	ebitenutil.DebugPrintAt(screen, "press ENTER to start", w/2-70, h/2)
}

func (s *Scene) drawLevel(screen *ebiten.Image) {
	lvl := s.sess.Level
	for _, p := range lvl.Platforms {
		drawRect(screen, p, colorPlatform)
	}
	for _, t := range lvl.Traps {
		drawRect(screen, t.Box, colorTrap)
	}
	for _, d := range lvl.Doors {
		drawRect(screen, d.Box, colorDoor)
	}
	for _, d := range lvl.Decorations {
		ebitenutil.DrawRect(screen, d.X-4, d.Y-12, 8, 12, colorDecoration)
	}
	for _, c := range lvl.Collectibles {
		if !c.Collected {
			drawRect(screen, c.Box(), colorCoin)
		}
	}
}

func (s *Scene) drawEntities(screen *ebiten.Image) {
	for _, e := range s.sess.Level.Enemies {
		c := colorEnemy
		if !e.Alive {
			c = colorDying
		}
		drawRect(screen, e.Box(), c)
		if s.DrawHitboxes {
			if hb, ok := e.AttackHitbox(); ok {
				drawRect(screen, hb, colorHitbox)
			}
		}
	}

	p := s.sess.Player
	if s.playerVisible(p) {
		c := colorPlayer
		if p.Action == entity.ActionShield {
			c = colorShield
		}
		drawRect(screen, p.Box(), c)
	}
	if s.DrawHitboxes {
		if hb, ok := p.AttackHitbox(); ok {
			drawRect(screen, hb, colorHitbox)
		}
	}
}

// playerVisible blinks the knight during the mercy window. The dash's
// own invulnerability does not blink; the roll reads as the effect.
func (s *Scene) playerVisible(p *entity.Player) bool {
	if !p.Invulnerable.Active() || p.Action == entity.ActionDash {
		return true
	}
	return int(p.Invulnerable)%8 < 4
}

func (s *Scene) drawHUD(screen *ebiten.Image) {
	p := s.sess.Player
	for i := 0; i < 3; i++ {
		c := colorHeartLost
		if i < p.Health {
			c = colorHeart
		}
		ebitenutil.DrawRect(screen, float64(10+i*18), 10, 14, 14, c)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d", p.Score), 10, 30)
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("SKELETONS %d", s.sess.Level.AliveEnemies()), 10, 45)
}

func (s *Scene) drawOverlay(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	switch s.sess.State {
	case state.Starting:
		alpha := uint8(s.fadeVal * 255)
		ebitenutil.DrawRect(screen, 0, 0, float64(w), float64(h),
			color.RGBA{0, 0, 0, alpha})
	case state.Paused:
		dim(screen, w, h)
		ebitenutil.DebugPrintAt(screen, "PAUSED", w/2-20, h/2)
	case state.GameOver:
		dim(screen, w, h)
		ebitenutil.DebugPrintAt(screen, "GAME OVER", w/2-30, h/2-10)
		ebitenutil.DebugPrintAt(screen, "press ENTER", w/2-35, h/2+10)
	case state.Victory:
		dim(screen, w, h)
		ebitenutil.DebugPrintAt(screen, "VICTORY", w/2-25, h/2-10)
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("score %d", s.sess.Player.Score), w/2-25, h/2+10)
	}
}

func dim(screen *ebiten.Image, w, h int) {
	ebitenutil.DrawRect(screen, 0, 0, float64(w), float64(h),
		color.RGBA{0, 0, 0, 160})
}

func drawRect(screen *ebiten.Image, r entity.Rect, c color.Color) {
	ebitenutil.DrawRect(screen, r.X, r.Y, r.W, r.H, c)
}
