package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/pmx-16/arcane-conquest/internal/sim"
)

var (
	floorColor = color.RGBA{R: 34, G: 30, B: 42, A: 255}
	wallColor  = color.RGBA{R: 70, G: 62, B: 80, A: 255}
	fogColor   = color.RGBA{R: 4, G: 4, B: 8, A: 200}
	barBack    = color.RGBA{R: 60, G: 10, B: 10, A: 220}
	barFront   = color.RGBA{R: 200, G: 40, B: 40, A: 255}
)

// spriteName is the animation a view is drawn with.
func spriteName(v sim.View) string {
	if v.Kind.Animated() {
		return sim.AnimName(v.Kind.String(), v.State)
	}
	return v.Kind.String()
}

// spriteCells is the on-screen edge of a kind at scale 1, in map cells.
func spriteCells(k sim.EntityKind) float64 {
	switch k {
	case sim.KindPlayer, sim.KindGrunt, sim.KindCaster, sim.KindBoss, sim.KindBurst:
		return 2
	case sim.KindExplosion:
		return 8
	default:
		return 1
	}
}

// itemTint colours item sprites so their one-frame sheets read apart at small sizes.
func itemTint(k sim.EntityKind) (color.RGBA, bool) {
	switch k {
	case sim.KindExpOrb:
		return color.RGBA{R: 90, G: 200, B: 255, A: 255}, true
	case sim.KindHealItem:
		return color.RGBA{R: 120, G: 255, B: 120, A: 255}, true
	case sim.KindScoreItem:
		return color.RGBA{R: 255, G: 220, B: 80, A: 255}, true
	}
	return color.RGBA{}, false
}

func (g *Game) drawWorld(screen *ebiten.Image) {
	cam := g.world.Camera()
	grid := g.world.Grid()
	ts := float32(g.tile)
	x0, y0 := int(cam.X), int(cam.Y)
	for y := y0; y <= y0+cam.ViewH; y++ {
		for x := x0; x <= x0+cam.ViewW; x++ {
			if !grid.InBounds(x, y) {
				continue
			}
			sx, sy := cam.WorldToScreen(sim.Vec2{X: float64(x), Y: float64(y)})
			if sx >= float64(g.viewWidth) {
				continue
			}
			c := floorColor
			if !grid.IsWalkable(x, y) {
				c = wallColor
			}
			vector.FillRect(screen, float32(sx), float32(sy), ts, ts, c, false)
			if !cam.CellVisible(x, y) {
				vector.FillRect(screen, float32(sx), float32(sy), ts, ts, fogColor, false)
			}
		}
	}

	for _, v := range g.world.Views(cam) {
		g.drawView(screen, cam, v)
	}
}

func (g *Game) drawView(screen *ebiten.Image, cam *sim.Camera, v sim.View) {
	sx, sy := cam.WorldToScreen(v.Pos)
	if sx >= float64(g.viewWidth) {
		return
	}
	size := spriteCells(v.Kind) * v.Scale * g.tile
	if g.assets == nil {
		vector.FillCircle(screen, float32(sx), float32(sy), float32(size/2), color.RGBA{R: 200, G: 200, B: 200, A: 255}, false)
		return
	}
	img := g.assets.Frame(spriteName(v), v.Frame)
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	if w == 0 || h == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	if v.FacingLeft && v.Angle == 0 {
		op.GeoM.Scale(-1, 1)
	}
	op.GeoM.Scale(size/w, size/h)
	if v.Angle != 0 {
		op.GeoM.Rotate(v.Angle)
	}
	op.GeoM.Translate(sx, sy)
	if tint, ok := itemTint(v.Kind); ok {
		op.ColorScale.ScaleWithColor(tint)
	}
	screen.DrawImage(img, op)

	if v.Kind.Animated() && v.Kind != sim.KindPlayer && v.Health < 1 && v.State != sim.AnimDead {
		bw := float32(size)
		bx, by := float32(sx)-bw/2, float32(sy-size/2)-4
		vector.FillRect(screen, bx, by, bw, 3, barBack, false)
		vector.FillRect(screen, bx, by, bw*float32(v.Health), 3, barFront, false)
	}
}
