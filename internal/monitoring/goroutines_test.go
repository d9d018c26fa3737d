package monitoring

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGoroutineMonitorPeak(t *testing.T) {
	gm := NewGoroutineMonitor(time.Hour)

	release := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-release
		}()
	}

	gm.Sample()
	close(release)
	wg.Wait()

	m := gm.GetMetrics()
	assert.Equal(t, 1, m.Samples)
	assert.GreaterOrEqual(t, m.Peak, m.Baseline+10)
	assert.Equal(t, m.Current-m.Baseline, m.Growth)
}

func TestGoroutineMonitorStartStop(t *testing.T) {
	gm := NewGoroutineMonitor(time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	wait := gm.Start(ctx)

	assert.Eventually(t, func() bool { return gm.GetMetrics().Samples >= 2 }, time.Second, time.Millisecond)

	cancel()
	wait()
	samples := gm.GetMetrics().Samples
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, samples, gm.GetMetrics().Samples, "no samples after stop")
}
