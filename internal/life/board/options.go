package board

import (
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// defaultParallelThreshold is the smallest number of positions stepped in parallel.
// Below it the goroutine overhead outweighs the work.
const defaultParallelThreshold = 4

type options struct {
	storage   Storage
	workers   int
	threshold int
	maxPeriod int
	logger    zerolog.Logger
}

func defaultOptions() options {
	return options{
		storage:   StorageContiguous,
		workers:   runtime.GOMAXPROCS(0),
		threshold: defaultParallelThreshold,
		logger:    log.With().Str("component", "board").Logger(),
	}
}

// Option configures a Board.
type Option func(*options)

// WithStorage selects the window implementation.
func WithStorage(s Storage) Option {
	return func(o *options) {
		if s != "" {
			o.storage = s
		}
	}
}

// WithWorkers caps the goroutines used per generation. Zero or less keeps GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithParallelThreshold sets how many positions a step needs before it is parallelised.
func WithParallelThreshold(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.threshold = n
		}
	}
}

// WithMaxPeriod bounds background cycle discovery. See cycle.WithMaxPeriod.
func WithMaxPeriod(n int) Option {
	return func(o *options) { o.maxPeriod = n }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = logger.With().Str("component", "board").Logger() }
}
