package monitoring

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// GoroutineMonitor samples the goroutine count while parallel matches run
// and remembers the peak.
type GoroutineMonitor struct {
	mu            sync.RWMutex
	baseline      int
	current       int
	peak          int
	samples       int
	checkInterval time.Duration
	logger        zerolog.Logger
	done          chan struct{}
}

// NewGoroutineMonitor creates a monitor sampling every interval.
func NewGoroutineMonitor(interval time.Duration) *GoroutineMonitor {
	baseline := runtime.NumGoroutine()
	return &GoroutineMonitor{
		baseline:      baseline,
		current:       baseline,
		peak:          baseline,
		checkInterval: interval,
		logger:        log.With().Str("component", "goroutine_monitor").Logger(),
		done:          make(chan struct{}),
	}
}

// Start samples in the background until ctx is cancelled. The returned
// function waits for the sampler to exit.
func (gm *GoroutineMonitor) Start(ctx context.Context) (wait func()) {
	go func() {
		defer close(gm.done)

		ticker := time.NewTicker(gm.checkInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				gm.Sample()
			case <-ctx.Done():
				return
			}
		}
	}()

	gm.logger.Debug().Int("baseline", gm.baseline).Msg("Started goroutine monitoring")
	return func() { <-gm.done }
}

// Sample records the current goroutine count.
func (gm *GoroutineMonitor) Sample() {
	current := runtime.NumGoroutine()

	gm.mu.Lock()
	gm.current = current
	gm.samples++
	if current > gm.peak {
		gm.peak = current
	}
	peak := gm.peak
	gm.mu.Unlock()

	gm.logger.Trace().
		Int("current", current).
		Int("baseline", gm.baseline).
		Int("peak", peak).
		Msg("Goroutine metrics")
}

// GetMetrics returns current goroutine metrics
func (gm *GoroutineMonitor) GetMetrics() GoroutineMetrics {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	return GoroutineMetrics{
		Current:  gm.current,
		Baseline: gm.baseline,
		Peak:     gm.peak,
		Growth:   gm.current - gm.baseline,
		Samples:  gm.samples,
	}
}

// GoroutineMetrics contains goroutine statistics
type GoroutineMetrics struct {
	Current  int `json:"current"`
	Baseline int `json:"baseline"`
	Peak     int `json:"peak"`
	Growth   int `json:"growth"`
	Samples  int `json:"samples"`
}
