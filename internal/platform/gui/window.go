// Package gui provides the ebiten window frontend of the game. The
// simulation reports sprites through invaders.Visuals; the window draws
// them as flat shapes over the live entity positions.
package gui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/spacey-invader/internal/core"
	"github.com/vovakirdan/spacey-invader/internal/invaders"
	"github.com/vovakirdan/spacey-invader/internal/logging"
)

var (
	background  = color.RGBA{R: 8, G: 8, B: 24, A: 255}
	playerColor = color.RGBA{R: 80, G: 220, B: 255, A: 255}
	enemyColor  = color.RGBA{R: 220, G: 80, B: 220, A: 255}
	woundColor  = color.RGBA{R: 230, G: 60, B: 60, A: 255}
	shotColor   = color.RGBA{R: 255, G: 240, B: 90, A: 255}
	enemyShot   = color.RGBA{R: 255, G: 90, B: 60, A: 255}
)

// Options configures the window frontend.
type Options struct {
	Title  string
	Logger *log.Logger
}

// Window implements ebiten.Game around an invaders.Game.
type Window struct {
	game    *invaders.Game
	sprites *Sprites
	config  core.RuntimeConfig
	keys    keyReader
	fps     func() float64
	log     *log.Logger

	width, height int
}

// NewWindow wires sprites into a new game built from opts. The caller
// must not set opts.Visuals.
func NewWindow(opts invaders.Options, cfg core.RuntimeConfig, wo Options) *Window {
	if wo.Logger == nil {
		wo.Logger = logging.Discard()
	}
	sprites := NewSprites()
	opts.Visuals = sprites
	opts.Logger = wo.Logger

	game := invaders.NewGame(opts, 1)
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	game.Reset(cfg)

	w, h := game.World().Bounds()
	return &Window{
		game:    game,
		sprites: sprites,
		config:  cfg,
		keys:    ebitenKeys(),
		fps:     ebiten.ActualFPS,
		log:     wo.Logger,
		width:   int(w),
		height:  int(h),
	}
}

// Game returns the running game.
func (w *Window) Game() *invaders.Game {
	return w.game
}

// Update advances the simulation by one fixed tick.
func (w *Window) Update() error {
	in, quit := w.keys.frame()
	if quit {
		s := w.game.State()
		w.log.Info("session ended", "score", s.Score, "ticks", s.Tick)
		return ebiten.Termination
	}

	w.game.SetFPS(w.fps())
	w.game.Step(in, time.Second/time.Duration(w.config.TickRate))
	return nil
}

// Draw renders every sprite and the overlay text.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	store := w.game.World().Store()
	for _, h := range w.sprites.drawOrder() {
		sp, _ := w.sprites.Get(h)
		e, ok := store.Get(h)
		if !ok {
			continue
		}
		w.drawSprite(screen, sp, e)
	}

	o := w.game.World().Overlay()
	ebitenutil.DebugPrintAt(screen, "Score: "+o.ScoreText(), 10, 10)
	ebitenutil.DebugPrintAt(screen, "Health: "+o.HealthText(), 10, 26)
	ebitenutil.DebugPrintAt(screen, "FPS: "+invaders.FPSText(w.game.FPS()), w.width-90, 10)

	s := w.game.State()
	switch {
	case s.Paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED - press P", w.width/2-50, w.height/2)
	case !s.PlayerAlive && w.game.World().State().Player.HasDied:
		ebitenutil.DebugPrintAt(screen, "Respawning...", w.width/2-40, w.height/2)
	}
}

// Layout keeps the playfield size regardless of the window size.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.width, w.height
}

// toScreen converts playfield coordinates (origin at the center, Y up)
// to window pixels (origin top-left, Y down).
func (w *Window) toScreen(p core.Vec2) (float32, float32) {
	return float32(p.X + float64(w.width)/2), float32(float64(w.height)/2 - p.Y)
}

func (w *Window) drawSprite(screen *ebiten.Image, sp *Sprite, e *invaders.Entity) {
	x, y := w.toScreen(e.Pos)

	switch sp.Kind {
	case invaders.KindPlayer:
		size := float32(invaders.PlayerSize.X * sp.Scale)
		// Thruster flicker follows the sheet frame.
		flame := float32(4 + 2*(sp.Frame%2))
		vector.DrawFilledRect(screen, x-size/2, y-size/4, size, size/2, playerColor, false)
		vector.DrawFilledRect(screen, x-size/8, y-size/2, size/4, size/4, playerColor, false)
		vector.DrawFilledRect(screen, x-size/8, y+size/4, size/4, flame, shotColor, false)

	case invaders.KindEnemy:
		size := float32(invaders.EnemySize.X * sp.Scale)
		c := enemyColor
		if e.Health < invaders.EnemyHealth {
			c = woundColor
		}
		wing := float32(sp.Frame%2) * 4
		vector.DrawFilledRect(screen, x-size/4, y-size/4, size/2, size/2, c, false)
		vector.DrawFilledRect(screen, x-size/2, y-size/8-wing, size/4, size/4, c, false)
		vector.DrawFilledRect(screen, x+size/4, y-size/8-wing, size/4, size/4, c, false)

	case invaders.KindBullet:
		size := float32(invaders.BulletSize.X * sp.Scale)
		c := shotColor
		if sp.Sheet == invaders.SheetEnemyBullet {
			c = enemyShot
		}
		vector.DrawFilledRect(screen, x-size/4, y-size/2, size/2, size, c, false)

	case invaders.KindExplosion:
		drawExplosion(screen, x, y, sp)
	}
}

// drawExplosion grows a fading disc over the sheet's frames.
func drawExplosion(screen *ebiten.Image, x, y float32, sp *Sprite) {
	t := float64(sp.Frame) / float64(invaders.ExplosionFrames-1)
	radius := float32(invaders.SheetCell.X / 2 * sp.Scale * (0.3 + 0.7*t))
	alpha := uint8(math.Round(255 * (1 - 0.8*t)))

	outer := color.RGBA{R: 255, G: uint8(200 - 150*t), B: 40, A: alpha}
	inner := color.RGBA{R: 255, G: 255, B: 200, A: alpha}
	vector.DrawFilledCircle(screen, x, y, radius, outer, true)
	vector.DrawFilledCircle(screen, x, y, radius*0.5, inner, true)
}

// Run opens the window and blocks until it is closed or Q is pressed.
func Run(opts invaders.Options, cfg core.RuntimeConfig, wo Options) error {
	win := NewWindow(opts, cfg, wo)

	ebiten.SetWindowSize(win.width, win.height)
	ebiten.SetWindowTitle(wo.Title)
	ebiten.SetTPS(win.config.TickRate)

	win.log.Info("window opened", "title", wo.Title, "size", fmt.Sprintf("%dx%d", win.width, win.height))
	if err := ebiten.RunGame(win); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
