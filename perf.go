package decor

import (
	"context"
	"io"
	"runtime"
	"sync"
	"time"
)

// Metrics is a snapshot of accumulated render measurements.
//
// AverageRenderTime is TotalRenderTime / RenderCount. LastMemoryDelta is the
// heap allocation delta observed around the most recent render; it is zero
// unless memory sampling is enabled, and can be negative when a collection
// ran mid-render.
type Metrics struct {
	RenderCount       int
	TotalRenderTime   time.Duration
	AverageRenderTime time.Duration
	LastRenderTime    time.Duration
	LastMemoryDelta   int64
}

// Perf measures render latency and accumulates aggregate statistics.
//
// Only successful renders are accumulated; a failing delegated render
// propagates its error and records nothing.
type Perf struct {
	*Base
	now          func() time.Time
	sampleMemory bool

	mu           sync.Mutex
	renderCount  int
	totalTime    time.Duration
	lastTime     time.Duration
	lastMemDelta int64
}

// WithPerformance wraps a component with render timing.
func WithPerformance(inner Component) *Perf {
	return &Perf{Base: NewBase(inner), now: time.Now}
}

// SampleMemory enables heap allocation sampling around each render.
// ReadMemStats is not free - leave this off outside of profiling sessions.
func (p *Perf) SampleMemory() *Perf {
	p.sampleMemory = true
	return p
}

// Clock overrides the wall-clock source. Test hook.
func (p *Perf) Clock(now func() time.Time) *Perf {
	p.now = now
	return p
}

// Render times the delegated render and folds the measurement into the
// aggregate metrics.
func (p *Perf) Render(ctx context.Context, w io.Writer) error {
	var before runtime.MemStats
	if p.sampleMemory {
		runtime.ReadMemStats(&before)
	}

	start := p.now()
	if err := p.Base.Render(ctx, w); err != nil {
		return err
	}
	elapsed := p.now().Sub(start)

	var memDelta int64
	if p.sampleMemory {
		var after runtime.MemStats
		runtime.ReadMemStats(&after)
		memDelta = int64(after.HeapAlloc) - int64(before.HeapAlloc)
	}

	p.mu.Lock()
	p.renderCount++
	p.totalTime += elapsed
	p.lastTime = elapsed
	p.lastMemDelta = memDelta
	p.mu.Unlock()
	return nil
}

// GetMetrics returns a snapshot copy of the aggregates, never a live
// reference - mutating the returned value has no effect on the decorator.
func (p *Perf) GetMetrics() Metrics {
	p.mu.Lock()
	defer p.mu.Unlock()

	m := Metrics{
		RenderCount:     p.renderCount,
		TotalRenderTime: p.totalTime,
		LastRenderTime:  p.lastTime,
		LastMemoryDelta: p.lastMemDelta,
	}
	if p.renderCount > 0 {
		m.AverageRenderTime = p.totalTime / time.Duration(p.renderCount)
	}
	return m
}

// ResetMetrics zeroes all counters.
func (p *Perf) ResetMetrics() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.renderCount = 0
	p.totalTime = 0
	p.lastTime = 0
	p.lastMemDelta = 0
}
