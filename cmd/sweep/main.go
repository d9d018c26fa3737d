package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/mitchelldurbincs/LifeStruggle/internal/config"
	"github.com/mitchelldurbincs/LifeStruggle/internal/game"
	"github.com/mitchelldurbincs/LifeStruggle/internal/life/core"
	"github.com/mitchelldurbincs/LifeStruggle/internal/life/cycle"
	"github.com/mitchelldurbincs/LifeStruggle/internal/monitoring"
	"github.com/mitchelldurbincs/LifeStruggle/internal/output"
	"github.com/mitchelldurbincs/LifeStruggle/internal/patterns"
)

// run is one random challenger played against the opponent.
type run struct {
	seed    int64
	pattern *core.Tile
	result  game.Result
	skipped bool
}

func main() {
	configPath := flag.String("config", "", "Path to config file")
	runs := flag.Int("runs", 0, "Number of random patterns (0 uses config)")
	seed := flag.Int64("seed", 0, "First random seed (0 uses config)")
	opponent := flag.String("opponent", "", "Opponent pattern (empty uses config)")
	parallel := flag.Int("parallel", 2, "Matches played at once")
	saveBest := flag.String("save-best", "", "Save the best scoring pattern to this YAML file")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if *runs > 0 {
		config.Set("sweep.runs", *runs)
	}
	if *seed != 0 {
		config.Set("sweep.seed", *seed)
	}
	if *opponent != "" {
		config.Set("sweep.opponent", *opponent)
	}
	cfg := config.Get()
	config.SetupLogging(cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	monCtx, stopMonitor := context.WithCancel(ctx)
	monitor := monitoring.NewGoroutineMonitor(250 * time.Millisecond)
	waitMonitor := monitor.Start(monCtx)

	results, err := sweep(ctx, cfg, *parallel)
	stopMonitor()
	waitMonitor()
	if err != nil {
		log.Fatal().Err(err).Msg("Sweep failed")
	}
	metrics := monitor.GetMetrics()
	log.Debug().Int("peak", metrics.Peak).Int("baseline", metrics.Baseline).Msg("Goroutine usage during sweep")

	writer, err := output.NewResultWriter(cfg.Output.ResultsCSV)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open results file")
	}
	defer writer.Close()

	var margins []float64
	var wins, draws, losses, skipped int
	var best *run
	for i := range results {
		r := &results[i]
		if r.skipped {
			skipped++
			continue
		}
		name := fmt.Sprintf("random:%d", r.seed)
		if err := writer.Write(output.NewResultRow(r.result, name, cfg.Sweep.Opponent, cfg.Simulation.TileSize)); err != nil {
			log.Fatal().Err(err).Msg("Failed to write result")
		}

		margin := r.result.Score.A - r.result.Score.B
		margins = append(margins, float64(margin))
		switch {
		case margin > 0:
			wins++
		case margin < 0:
			losses++
		default:
			draws++
		}
		if best == nil || margin > best.result.Score.A-best.result.Score.B {
			best = r
		}
	}

	if len(margins) == 0 {
		log.Fatal().Int("skipped", skipped).Msg("No random pattern settled into a cycle")
	}

	mean, std := stat.MeanStdDev(margins, nil)
	log.Info().
		Int("played", len(margins)).
		Int("skipped", skipped).
		Int("wins", wins).
		Int("draws", draws).
		Int("losses", losses).
		Float64("mean_margin", mean).
		Float64("stddev_margin", std).
		Msg("Sweep finished")
	fmt.Printf("%d played, %d won, %d drawn, %d lost; margin %.2f ± %.2f\n",
		len(margins), wins, draws, losses, mean, std)

	if *saveBest != "" {
		name := fmt.Sprintf("random-%d", best.seed)
		if err := patterns.Save(*saveBest, name, best.pattern); err != nil {
			log.Fatal().Err(err).Msg("Failed to save best pattern")
		}
		log.Info().Str("path", *saveBest).Int64("seed", best.seed).Str("score", best.result.Score.String()).Msg("Saved best pattern")
	}
}

// sweep plays cfg.Sweep.Runs random settled patterns against the opponent.
// Patterns whose orbit has no cycle within the period limit are skipped.
func sweep(ctx context.Context, cfg *config.Config, parallel int) ([]run, error) {
	size := cfg.Simulation.TileSize
	opp, err := patterns.Resolve(cfg.Sweep.Opponent, size, cfg.Sweep.Density)
	if err != nil {
		return nil, fmt.Errorf("opponent: %w", err)
	}

	boardOpts, err := game.BoardOptions(cfg.Simulation)
	if err != nil {
		return nil, err
	}

	results := make([]run, cfg.Sweep.Runs)
	var mu sync.Mutex
	done := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(parallel, 1))
	for i := range results {
		g.Go(func() error {
			seed := cfg.Sweep.Seed + int64(i)
			r := run{seed: seed}

			start, err := cycle.Settle(gctx, patterns.Random(size, cfg.Sweep.Density, seed), cycle.WithMaxPeriod(cfg.Simulation.MaxPeriod))
			switch {
			case errors.Is(err, cycle.ErrPeriodTooLong), errors.Is(err, cycle.ErrNoCycle):
				log.Warn().Int64("seed", seed).Err(err).Msg("Skipping pattern")
				r.skipped = true
			case err != nil:
				return err
			default:
				r.pattern = start
				r.result, err = game.Struggle(gctx, cfg.Simulation.Generations, start, opp, game.WithBoardOptions(boardOpts...))
				if err != nil {
					return fmt.Errorf("seed %d: %w", seed, err)
				}
			}
			results[i] = r

			mu.Lock()
			done++
			log.Debug().Int("done", done).Int("total", len(results)).Int64("seed", seed).Msg("Match finished")
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
