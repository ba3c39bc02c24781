package invaders

import (
	"fmt"
	"math"

	"github.com/vovakirdan/spacey-invader/internal/core"
)

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 2.0

var (
	playerGlyphs = [ShipFrames]string{"/▲\\", "/△\\", "/▲\\", "/△\\"}
	enemyGlyphs  = [ShipFrames]string{"▼◆▼", "▽◆▽", "▼◇▼", "▽◇▽"}

	explosionGlyphs = []rune("·∗✳✴✷✸✹✺✺✹✸✷✴✳∗·")
)

// viewport maps playfield units onto a rectangle of screen cells.
type viewport struct {
	field  core.Rect
	width  float64
	height float64
	cellW  float64 // Playfield units per column
	cellH  float64 // Playfield units per row
	ok     bool
}

// fitViewport picks the largest playfield rectangle that keeps the
// playfield aspect ratio inside a screen of the given size.
func fitViewport(screenW, screenH, top int, width, height float64) viewport {
	availH := screenH - top - 2
	availW := screenW - 2
	if availH < 4 || availW < 8 {
		return viewport{}
	}

	rows := availH
	cols := int(float64(rows) * width / height * cellAspect)
	if cols > availW {
		cols = availW
		rows = int(float64(cols) * height / width / cellAspect)
	}
	if rows < 4 || cols < 8 {
		return viewport{}
	}

	x := (screenW - cols) / 2
	return viewport{
		field:  core.NewRect(x, top+1, cols, rows),
		width:  width,
		height: height,
		cellW:  width / float64(cols),
		cellH:  height / float64(rows),
		ok:     true,
	}
}

// cell returns the screen cell for a playfield point.
func (v viewport) cell(p core.Vec2) (int, int, bool) {
	fx := (p.X + v.width/2) / v.cellW
	fy := (v.height/2 - p.Y) / v.cellH
	if fx < 0 || fy < 0 || fx >= float64(v.field.W) || fy >= float64(v.field.H) {
		return 0, 0, false
	}
	return v.field.X + int(fx), v.field.Y + int(fy), true
}

// Render draws the game onto a character screen: the overlay line on top,
// the playfield framed below it.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	g.renderHUD(dst)

	width, height := g.world.Bounds()
	vp := fitViewport(dst.Width(), dst.Height(), g.hudRows, width, height)
	if !vp.ok {
		g.renderMessage(dst, "Window too small", "Resize to continue")
		return
	}

	dst.DrawBox(core.NewRect(vp.field.X-1, vp.field.Y-1, vp.field.W+2, vp.field.H+2))

	store := g.world.Store()
	store.EachKind(KindEnemy, func(_ Handle, e *Entity) {
		color := core.ColorMagenta
		if e.Health < EnemyHealth {
			color = core.ColorRed
		}
		drawGlyph(dst, vp, e.Pos, enemyGlyphs[e.Frame%ShipFrames], color)
	})
	store.EachKind(KindBullet, func(_ Handle, e *Entity) {
		if e.Origin == FromPlayer {
			drawGlyph(dst, vp, e.Pos, "│", core.ColorBrightYellow)
		} else {
			drawGlyph(dst, vp, e.Pos, "•", core.ColorBrightRed)
		}
	})
	if _, p, ok := g.world.Player(); ok {
		drawGlyph(dst, vp, p.Pos, playerGlyphs[p.Frame%ShipFrames], core.ColorBrightCyan)
	}
	store.EachKind(KindExplosion, func(_ Handle, e *Entity) {
		drawExplosion(dst, vp, e)
	})

	switch {
	case g.paused:
		g.renderMessage(dst, "Paused", "Press P to continue")
	case !g.world.State().Player.Alive && g.world.State().Player.HasDied:
		g.renderMessage(dst, "Ship destroyed", "Respawning...")
	}
}

// renderHUD draws the overlay text on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	o := g.world.Overlay()
	hud := fmt.Sprintf(" Score: %s  Health: %s  FPS: %s", o.ScoreText(), o.HealthText(), FPSText(g.fps))
	dst.DrawTextColored(0, 0, hud, core.ColorWhite)
}

// drawGlyph centers a short string on the cell of pos.
func drawGlyph(dst *core.Screen, vp viewport, pos core.Vec2, glyph string, color core.Color) {
	x, y, ok := vp.cell(pos)
	if !ok {
		return
	}
	runes := []rune(glyph)
	x -= len(runes) / 2
	for i, r := range runes {
		cx := x + i
		if cx < vp.field.X || cx >= vp.field.Right() {
			continue
		}
		dst.SetColored(cx, y, r, color)
	}
}

func drawExplosion(dst *core.Screen, vp viewport, e *Entity) {
	frame := core.Clamp(e.Frame, 0, len(explosionGlyphs)-1)
	r := explosionGlyphs[frame]

	var color core.Color
	switch {
	case frame < 6:
		color = core.ColorBrightYellow
	case frame < 11:
		color = core.ColorOrange
	default:
		color = core.ColorRed
	}

	// Span the scaled sprite width, at least one cell.
	span := int(math.Round(SheetCell.X * e.Scale / vp.cellW / 2))
	span = core.Max(span, 1)
	glyph := make([]rune, span)
	for i := range glyph {
		glyph[i] = r
	}
	drawGlyph(dst, vp, e.Pos, string(glyph), color)
}

// renderMessage draws a centered two-line message box.
func (g *Game) renderMessage(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
