package main

import (
	"context"
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/LifeStruggle/internal/config"
	"github.com/mitchelldurbincs/LifeStruggle/internal/game"
	"github.com/mitchelldurbincs/LifeStruggle/internal/game/events"
	"github.com/mitchelldurbincs/LifeStruggle/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/LifeStruggle/internal/life/core"
	"github.com/mitchelldurbincs/LifeStruggle/internal/life/cycle"
	"github.com/mitchelldurbincs/LifeStruggle/internal/patterns"
	"github.com/mitchelldurbincs/LifeStruggle/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	a := flag.String("a", "", "Pattern for player A (empty uses config)")
	b := flag.String("b", "", "Pattern for player B (empty uses config)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if *a != "" {
		config.Set("patterns.a", *a)
	}
	if *b != "" {
		config.Set("patterns.b", *b)
	}
	cfg := config.Get()
	config.SetupLogging(cfg.Logging.Level, cfg.Logging.Format)

	// Log level follows edits to the config file while the window is open.
	config.WatchConfig(func() {
		level := config.Get().Logging.Level
		zerolog.SetGlobalLevel(config.ParseLevel(level))
		log.Info().Str("level", level).Str("file", config.ConfigFilePath()).Msg("Config reloaded")
	})

	ctx := context.Background()
	ta, err := load(ctx, cfg.Patterns.A, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load pattern A")
	}
	tb, err := load(ctx, cfg.Patterns.B, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load pattern B")
	}
	if !cfg.Patterns.MirrorInput {
		tb = tb.Mirror()
	}

	boardOpts, err := game.BoardOptions(cfg.Simulation)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid simulation settings")
	}

	bus := events.NewEventBus()
	bus.Subscribe(subscribers.NewLoggerSubscriber("viewer-log", log.Logger, zerolog.InfoLevel))

	match, err := game.NewMatch(ctx, ta, tb, cfg.Simulation.Generations,
		game.WithEventBus(bus),
		game.WithBoardOptions(boardOpts...),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start match")
	}

	ebiten.SetWindowSize(cfg.Viewer.Width, cfg.Viewer.Height)
	ebiten.SetWindowTitle(cfg.Viewer.Title)

	if err := ebiten.RunGame(ui.NewViewer(ctx, match, cfg.Viewer, log.Logger)); err != nil {
		log.Fatal().Err(err).Msg("Viewer stopped")
	}
}

func load(ctx context.Context, ref string, cfg *config.Config) (*core.Tile, error) {
	t, err := patterns.Resolve(ref, cfg.Simulation.TileSize, cfg.Patterns.Density)
	if err != nil {
		return nil, err
	}
	if cfg.Patterns.Settle {
		return cycle.Settle(ctx, t, cycle.WithMaxPeriod(cfg.Simulation.MaxPeriod))
	}
	return t, nil
}
