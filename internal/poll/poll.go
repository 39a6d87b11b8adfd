// Package poll drives a clipboard handler at a fixed interval.
package poll

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"go.klb.dev/flatclip/internal/handler"
)

// Handler is the per-tick work the driver runs. *handler.Handler satisfies it.
type Handler interface {
	Tick() handler.Result
}

// Stats counts tick outcomes.
type Stats struct {
	Ticks     int64
	CacheHits int64
	Unchanged int64
	Updated   int64
	Errors    int64
}

// Driver calls Handler.Tick once per interval. Ticks never overlap: a slow
// tick delays the next one instead of running beside it.
type Driver struct {
	h        Handler
	interval time.Duration
	observe  func(handler.Result)

	ticks     atomic.Int64
	cacheHits atomic.Int64
	unchanged atomic.Int64
	updated   atomic.Int64
	errors    atomic.Int64
}

// Option configures a Driver.
type Option func(*Driver)

// WithObserver replaces handler.LogResult as the per-tick hook.
func WithObserver(fn func(handler.Result)) Option {
	return func(d *Driver) { d.observe = fn }
}

// New returns a Driver for h. interval must be positive.
func New(h Handler, interval time.Duration, opts ...Option) (*Driver, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("poll interval must be positive, got %v", interval)
	}
	d := &Driver{h: h, interval: interval, observe: handler.LogResult}
	for _, o := range opts {
		o(d)
	}
	return d, nil
}

// Interval returns the configured poll interval.
func (d *Driver) Interval() time.Duration { return d.interval }

// Run ticks until ctx is done and then returns nil. Cancellation takes effect
// between ticks; a tick in progress always completes.
func (d *Driver) Run(ctx context.Context) error {
	t := time.NewTicker(d.interval)
	defer t.Stop()

	slog.Debug("polling started", "interval", d.interval)
	for {
		select {
		case <-ctx.Done():
			slog.Debug("polling stopped", "ticks", d.ticks.Load())
			return nil
		case <-t.C:
			// A tick can finish after cancellation; don't start another.
			if ctx.Err() != nil {
				continue
			}
			d.step()
		}
	}
}

func (d *Driver) step() {
	res := d.h.Tick()
	d.ticks.Add(1)
	switch res.Kind {
	case handler.CacheHit:
		d.cacheHits.Add(1)
	case handler.NoContentChange:
		d.unchanged.Add(1)
	case handler.Updated:
		d.updated.Add(1)
	case handler.Error:
		d.errors.Add(1)
	}
	if d.observe != nil {
		d.observe(res)
	}
}

// Stats returns a snapshot of the tick counters. Safe to call while Run is
// active.
func (d *Driver) Stats() Stats {
	return Stats{
		Ticks:     d.ticks.Load(),
		CacheHits: d.cacheHits.Load(),
		Unchanged: d.unchanged.Load(),
		Updated:   d.updated.Load(),
		Errors:    d.errors.Load(),
	}
}
