package game

import (
	"github.com/mitchelldurbincs/LifeStruggle/internal/config"
	"github.com/mitchelldurbincs/LifeStruggle/internal/life/board"
)

// BoardOptions translates the simulation settings into board options.
func BoardOptions(sim config.SimulationConfig) ([]board.Option, error) {
	storage, err := board.ParseStorage(sim.Storage)
	if err != nil {
		return nil, err
	}

	opts := []board.Option{
		board.WithStorage(storage),
		board.WithParallelThreshold(sim.ParallelThreshold),
		board.WithMaxPeriod(sim.MaxPeriod),
	}
	if sim.Workers > 0 {
		opts = append(opts, board.WithWorkers(sim.Workers))
	}
	return opts, nil
}
