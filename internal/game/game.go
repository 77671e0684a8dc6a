// Package game is the ebiten frontend: it feeds keyboard intents into the
// simulation, draws what the camera sees and plays audio cues for events.
package game

import (
	"image/color"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/pmx-16/arcane-conquest/internal/assets"
	"github.com/pmx-16/arcane-conquest/internal/audio"
	"github.com/pmx-16/arcane-conquest/internal/config"
	"github.com/pmx-16/arcane-conquest/internal/sim"
)

// maxFrameDelta caps the wall-clock step so a stalled frame cannot tunnel
// projectiles through enemies.
const maxFrameDelta = 0.06

// Options wires the frontend's collaborators.
type Options struct {
	Config config.Config
	Seed   int64
	Assets *assets.Loader
	Audio  *audio.Player // nil plays nothing
	Sink   sim.StatsSink // nil records nothing
	Log    *logrus.Entry
}

type Game struct {
	cfg       config.Config
	world     *sim.World
	assets    *assets.Loader
	audio     *audio.Player
	log       *logrus.Entry
	combatLog *CombatLog
	keys      keyState

	width      int // whole window
	height     int
	viewWidth  int // map viewport, the log panel takes the rest
	tile       float64
	lastUpdate time.Time
	notice     string // transient status line, e.g. clipboard result
	noticeTTL  float64
}

func New(opts Options) *Game {
	cfg := opts.Config
	log := opts.Log
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	viewW, viewH := cfg.ViewCells()
	worldOpts := []sim.Option{
		sim.WithSeed(opts.Seed),
		sim.WithLogger(log),
		sim.WithTuning(cfg.Sim),
		sim.WithCamera(viewW, viewH, float64(cfg.Window.TileSize), cfg.Window.FOVRadius),
	}
	if opts.Assets != nil {
		worldOpts = append(worldOpts, sim.WithFrames(opts.Assets))
	}
	if opts.Sink != nil {
		worldOpts = append(worldOpts, sim.WithStatsSink(opts.Sink))
	}
	g := &Game{
		cfg:       cfg,
		world:     sim.NewWorld(worldOpts...),
		assets:    opts.Assets,
		audio:     opts.Audio,
		log:       log,
		combatLog: NewCombatLog(),
		keys:      ebitenKeys{},
		width:     cfg.Window.Width + LogPanelWidth,
		height:    cfg.Window.Height,
		viewWidth: cfg.Window.Width,
		tile:      float64(cfg.Window.TileSize),
	}
	g.world.Start()
	return g
}

// World exposes the running simulation.
func (g *Game) World() *sim.World { return g.world }

func (g *Game) Update() error {
	now := time.Now()
	dt := 1.0 / float64(ebiten.TPS())
	if !g.lastUpdate.IsZero() {
		dt = clampDelta(now.Sub(g.lastUpdate).Seconds())
	}
	g.lastUpdate = now

	if g.keys.JustPressed(ebiten.KeyC) && (g.world.GameOver() || g.world.GameWon()) {
		g.copySummary()
	}
	if g.noticeTTL > 0 {
		g.noticeTTL -= dt
	}

	g.world.Step(dt, readIntents(g.keys)...)

	fresh := g.combatLog.Sync(g.world.SessionID(), g.world.Events())
	if g.audio != nil {
		g.audio.Consume(fresh)
	}
	return nil
}

// clampDelta bounds a frame delta to [0, maxFrameDelta].
func clampDelta(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	if dt > maxFrameDelta {
		return maxFrameDelta
	}
	return dt
}

func (g *Game) copySummary() {
	text := g.world.Summary().String()
	if err := clipboard.WriteAll(text); err != nil {
		g.log.WithError(err).Warn("clipboard unavailable")
		g.setNotice("clipboard unavailable")
		return
	}
	g.setNotice("summary copied")
}

func (g *Game) setNotice(s string) {
	g.notice = s
	g.noticeTTL = 2
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 8, G: 8, B: 12, A: 255})
	g.drawWorld(screen)
	g.drawHUD(screen)
	switch {
	case g.world.GameOver() || g.world.GameWon():
		g.drawGameOver(screen)
	case len(g.world.Choices()) > 0:
		g.drawUpgradeMenu(screen)
	case g.world.Paused():
		g.drawPaused(screen)
	}
	g.combatLog.Draw(screen, g.viewWidth, g.height)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
