package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/LifeStruggle/internal/config"
	"github.com/mitchelldurbincs/LifeStruggle/internal/game"
	"github.com/mitchelldurbincs/LifeStruggle/internal/game/events"
	"github.com/mitchelldurbincs/LifeStruggle/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/LifeStruggle/internal/life/core"
	"github.com/mitchelldurbincs/LifeStruggle/internal/life/cycle"
	"github.com/mitchelldurbincs/LifeStruggle/internal/output"
	"github.com/mitchelldurbincs/LifeStruggle/internal/patterns"
)

// flagKeys maps command-line flags onto the config keys they override.
var flagKeys = map[string]string{
	"a":           "patterns.a",
	"b":           "patterns.b",
	"size":        "simulation.tile_size",
	"generations": "simulation.generations",
	"storage":     "simulation.storage",
	"workers":     "simulation.workers",
	"settle":      "patterns.settle",
	"mirror":      "patterns.mirror_input",
	"image":       "output.image_path",
	"format":      "output.image_format",
	"scale":       "output.image_scale",
	"csv":         "output.results_csv",
	"print":       "output.print_board",
	"log-level":   "logging.level",
}

func main() {
	configPath := flag.String("config", "", "Path to config file")
	env := flag.String("env", "", "Merge config.<env>.yaml over the config")
	a := flag.String("a", "", "Pattern for player A (built-in name, .yaml file or random:<seed>)")
	b := flag.String("b", "", "Pattern for player B")
	size := flag.Int("size", 0, "Tile size")
	generations := flag.Int("generations", 0, "Generations to simulate")
	storage := flag.String("storage", "", "Window storage (contiguous, sparse)")
	workers := flag.Int("workers", 0, "Workers per generation (0 = GOMAXPROCS)")
	settle := flag.Bool("settle", false, "Replace each pattern with the start of the cycle it falls into")
	mirror := flag.Bool("mirror", false, "Pattern B is already mirrored to face player A")
	image := flag.String("image", "", "Write the final board image to this path")
	format := flag.String("format", "", "Image format (png, bmp, tiff); default from the file extension")
	scale := flag.Int("scale", 1, "Image pixels per cell")
	csvPath := flag.String("csv", "", "Append the result to this CSV file")
	printBoard := flag.Bool("print", false, "Print the final board")
	logLevel := flag.String("log-level", "", "Log level (trace, debug, info, warn, error)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(*env); err != nil {
		log.Fatal().Err(err).Msg("Failed to load environment config")
	}

	values := map[string]interface{}{
		"a": *a, "b": *b, "size": *size, "generations": *generations,
		"storage": *storage, "workers": *workers, "settle": *settle, "mirror": *mirror,
		"image": *image, "format": *format, "scale": *scale, "csv": *csvPath,
		"print": *printBoard, "log-level": *logLevel,
	}
	flag.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			config.Set(key, values[f.Name])
		}
	})

	cfg := config.Get()
	if err := config.Validate(cfg); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	config.SetupLogging(cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("Match failed")
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	size := cfg.Simulation.TileSize

	ta, err := loadPattern(ctx, cfg.Patterns.A, cfg)
	if err != nil {
		return fmt.Errorf("player A: %w", err)
	}
	tb, err := loadPattern(ctx, cfg.Patterns.B, cfg)
	if err != nil {
		return fmt.Errorf("player B: %w", err)
	}
	if cfg.Patterns.MirrorInput {
		// Struggle mirrors B again, restoring the orientation it was given in.
		tb = tb.Mirror()
	}

	boardOpts, err := game.BoardOptions(cfg.Simulation)
	if err != nil {
		return err
	}

	bus := events.NewEventBus()
	logSub := subscribers.NewLoggerSubscriber("struggle-log", log.Logger, zerolog.DebugLevel)
	logSub.SetEventFilter([]string{
		events.TypeMatchStarted,
		events.TypeMatchConverged,
		events.TypeMatchEnded,
		events.TypePhaseTransition,
	})
	bus.Subscribe(logSub)

	log.Info().
		Str("pattern_a", cfg.Patterns.A).
		Str("pattern_b", cfg.Patterns.B).
		Int("tile_size", size).
		Int("generations", cfg.Simulation.Generations).
		Str("storage", cfg.Simulation.Storage).
		Msg("Starting match")

	result, err := game.Struggle(ctx, cfg.Simulation.Generations, ta, tb,
		game.WithEventBus(bus),
		game.WithBoardOptions(boardOpts...),
	)
	if err != nil {
		if errors.Is(err, cycle.ErrNoCycle) {
			return fmt.Errorf("a pattern never returns to its starting tile, try -settle: %w", err)
		}
		return err
	}

	switch {
	case result.Identical:
		fmt.Println("identical tiles: draw")
	case result.Converged:
		fmt.Println("backgrounds converged: draw")
	}
	fmt.Println(result.Score)

	if cfg.Output.PrintBoard && result.Final != nil {
		if err := result.Final.WriteText(os.Stdout); err != nil {
			return err
		}
	}

	if cfg.Output.ImagePath != "" && result.Final != nil {
		if err := output.WriteImage(cfg.Output.ImagePath, cfg.Output.ImageFormat, result.Final.Image(), cfg.Output.ImageScale); err != nil {
			return err
		}
		log.Info().Str("path", cfg.Output.ImagePath).Msg("Wrote board image")
	}

	writer, err := output.NewResultWriter(cfg.Output.ResultsCSV)
	if err != nil {
		return err
	}
	defer writer.Close()
	return writer.Write(output.NewResultRow(result, cfg.Patterns.A, cfg.Patterns.B, size))
}

func loadPattern(ctx context.Context, ref string, cfg *config.Config) (*core.Tile, error) {
	t, err := patterns.Resolve(ref, cfg.Simulation.TileSize, cfg.Patterns.Density)
	if err != nil {
		return nil, err
	}
	if !cfg.Patterns.Settle {
		return t, nil
	}
	return cycle.Settle(ctx, t, cycle.WithMaxPeriod(cfg.Simulation.MaxPeriod))
}
