package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/pmx-16/arcane-conquest/internal/assets"
	"github.com/pmx-16/arcane-conquest/internal/audio"
	"github.com/pmx-16/arcane-conquest/internal/config"
	"github.com/pmx-16/arcane-conquest/internal/game"
	"github.com/pmx-16/arcane-conquest/internal/logging"
	"github.com/pmx-16/arcane-conquest/internal/sim"
	"github.com/pmx-16/arcane-conquest/internal/stats"
)

func main() {
	var cfgPath string
	flag.StringVar(&cfgPath, "config", config.DefaultPath, "path to the YAML configuration")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format)
	entry := logger.WithField("component", "arcane")

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	loader := assets.NewLoader(cfg.Assets.Dir, nil, logger.WithField("component", "assets"))
	loader.Preload()

	var player *audio.Player
	if cfg.Audio.Enabled {
		player = audio.New(cfg.Audio.Volume, logger.WithField("component", "audio"))
		if err := player.Init(); err != nil {
			entry.WithError(err).Warn("audio disabled")
		}
		defer player.Close()
	}

	var sink sim.StatsSink
	if cfg.Stats.Enabled {
		sink = stats.NewCSVSink(cfg.Stats.Path)
	}

	g := game.New(game.Options{
		Config: cfg,
		Seed:   seed,
		Assets: loader,
		Audio:  player,
		Sink:   sink,
		Log:    entry,
	})
	entry.WithField("seed", seed).WithField("session", g.World().SessionID()).Info("starting")

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width+game.LogPanelWidth, cfg.Window.Height)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
