package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/pmx-16/arcane-conquest/internal/sim"
)

// hudScale is the integer upscale applied to menu text.
const hudScale = 2

const hudLineHeight = 16

var hudFace = text.NewGoXFace(basicfont.Face7x13)

var (
	textColor  = color.RGBA{R: 230, G: 225, B: 240, A: 255}
	accent     = color.RGBA{R: 230, G: 200, B: 80, A: 255}
	panelBack  = color.RGBA{R: 10, G: 8, B: 16, A: 220}
	panelEdge  = color.RGBA{R: 90, G: 70, B: 120, A: 200}
	dimOverlay = color.RGBA{A: 150}
)

func drawText(dst *ebiten.Image, s string, x, y, scale float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = hudLineHeight
	text.Draw(dst, s, hudFace, op)
}

// hudLines is the status block in the top-left corner.
func hudLines(w *sim.World) []string {
	p := w.Player()
	lines := []string{
		fmt.Sprintf("HP  %3.0f / %.0f", max(p.Health, 0), p.MaxHealth),
		fmt.Sprintf("LV  %d  (%.0f / %.0f xp)", p.Level, p.Exp, p.ExpToNext),
		fmt.Sprintf("Score %d   Wave %d", w.Score(), w.Wave()),
		fmt.Sprintf("Time  %s", clock(w.Time())),
		fmt.Sprintf("Kills %d   Bosses %d", w.EnemiesDefeated(), w.BossesDefeated()),
	}
	if b, ok := w.Boss(); ok && b.Alive() {
		lines = append(lines, fmt.Sprintf("BOSS %.0f / %.0f", max(b.Health, 0), b.MaxHealth))
	}
	return lines
}

// clock formats seconds as m:ss.
func clock(sec float64) string {
	s := int(sec)
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	lines := hudLines(g.world)
	boxW := float32(220)
	boxH := float32(len(lines)*hudLineHeight + 10)
	vector.FillRect(screen, 6, 6, boxW, boxH, panelBack, false)
	vector.StrokeRect(screen, 6, 6, boxW, boxH, 1, panelEdge, false)
	drawText(screen, strings.Join(lines, "\n"), 12, 10, 1, textColor)

	p := g.world.Player()
	frac := float32(0)
	if p.MaxHealth > 0 {
		frac = float32(max(min(p.Health/p.MaxHealth, 1), 0))
	}
	vector.FillRect(screen, 6, 8+boxH, boxW, 5, barBack, false)
	vector.FillRect(screen, 6, 8+boxH, boxW*frac, 5, barFront, false)

	if g.noticeTTL > 0 {
		drawText(screen, g.notice, 12, float64(g.height-24), 1, accent)
	}
}

// menuLines is the level-up prompt.
func menuLines(choices []sim.UpgradeID) []string {
	lines := []string{"LEVEL UP - choose an upgrade"}
	for i, c := range choices {
		lines = append(lines, fmt.Sprintf("[%d] %s", i+1, c.Label()))
	}
	return lines
}

func (g *Game) drawCentered(screen *ebiten.Image, lines []string) {
	vector.FillRect(screen, 0, 0, float32(g.viewWidth), float32(g.height), dimOverlay, false)
	longest := 0
	for _, l := range lines {
		longest = max(longest, len(l))
	}
	charW := 7.0 * hudScale
	w := float64(longest)*charW + 40
	h := float64(len(lines)*hudLineHeight*hudScale) + 30
	x := (float64(g.viewWidth) - w) / 2
	y := (float64(g.height) - h) / 2
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), panelBack, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, panelEdge, false)
	for i, l := range lines {
		c := textColor
		if i == 0 {
			c = accent
		}
		drawText(screen, l, x+20, y+15+float64(i*hudLineHeight*hudScale), hudScale, c)
	}
}

func (g *Game) drawUpgradeMenu(screen *ebiten.Image) {
	lines := menuLines(g.world.Choices())
	if n := g.world.PendingLevelUps(); n > 1 {
		lines = append(lines, fmt.Sprintf("%d more level-ups pending", n-1))
	}
	g.drawCentered(screen, lines)
}

func (g *Game) drawPaused(screen *ebiten.Image) {
	g.drawCentered(screen, []string{"PAUSED", "P / Esc to resume"})
}

// gameOverLines is the end screen text.
func gameOverLines(won bool, w *sim.World) []string {
	title := "YOU DIED"
	if won {
		title = "VICTORY"
	}
	s := w.Summary()
	return []string{
		title,
		fmt.Sprintf("Survived %s", clock(s.SurvivalTime)),
		fmt.Sprintf("Score %d  Level %d", s.Score, s.PlayerLevel),
		fmt.Sprintf("Wave %d  Kills %d  Bosses %d", s.WaveNumber, s.EnemiesDefeated, s.BossesDefeated),
		fmt.Sprintf("Damage %.0f", s.TotalDamage()),
		"R retry   C copy summary",
	}
}

func (g *Game) drawGameOver(screen *ebiten.Image) {
	g.drawCentered(screen, gameOverLines(g.world.GameWon(), g.world))
}
