package clientstate

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/growshop/pkg/logger"
)

// OpenFunc creates the live value for key. The returned close function is
// called when the entry is evicted.
type OpenFunc[T any] func(ctx context.Context, key string) (T, func(), error)

type entry[T any] struct {
	mu       sync.Mutex
	value    T
	closeFn  func()
	loaded   bool
	refs     int
	lastUsed time.Time
}

// Registry keeps live values keyed by visitor. Values are opened lazily on
// first use, mutated under a per-key lock and evicted after sitting idle.
type Registry[T any] struct {
	name string
	open OpenFunc[T]
	idle time.Duration
	now  func() time.Time

	mu      sync.Mutex
	entries map[string]*entry[T]

	live prometheus.Gauge
}

// NewRegistry creates a registry. name labels its metrics and logs.
func NewRegistry[T any](name string, open OpenFunc[T], idle time.Duration, reg prometheus.Registerer) *Registry[T] {
	live := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "growshop",
		Subsystem: "clientstate",
		Name:      name + "_live",
		Help:      "Number of " + name + " entries held in memory",
	})
	reg.MustRegister(live)

	return &Registry[T]{
		name:    name,
		open:    open,
		idle:    idle,
		now:     time.Now,
		entries: make(map[string]*entry[T]),
		live:    live,
	}
}

// With runs fn with the value for key while holding that key's lock
func (r *Registry[T]) With(ctx context.Context, key string, fn func(T) error) error {
	r.mu.Lock()
	e, ok := r.entries[key]
	if !ok {
		e = &entry[T]{}
		r.entries[key] = e
		r.live.Inc()
	}
	e.refs++
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		e.refs--
		r.mu.Unlock()
	}()

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.loaded {
		value, closeFn, err := r.open(ctx, key)
		if err != nil {
			return err
		}
		e.value = value
		e.closeFn = closeFn
		e.loaded = true
	}

	err := fn(e.value)
	e.lastUsed = r.now()
	return err
}

// Sweep evicts entries idle for longer than the idle timeout and returns how
// many were evicted
func (r *Registry[T]) Sweep() int {
	cutoff := r.now().Add(-r.idle)
	return r.evict(func(e *entry[T]) bool { return e.lastUsed.Before(cutoff) })
}

// Close evicts every entry not currently in use
func (r *Registry[T]) Close() {
	n := r.evict(func(*entry[T]) bool { return true })
	logger.Info(context.Background()).
		Str("registry", r.name).
		Int("flushed", n).
		Msg("Client state registry closed")
}

// Run sweeps every interval until ctx is done
func (r *Registry[T]) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				logger.Debug(ctx).
					Str("registry", r.name).
					Int("evicted", n).
					Msg("Evicted idle client state")
			}
		}
	}
}

// Len returns the number of entries held
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *Registry[T]) evict(match func(*entry[T]) bool) int {
	var closers []func()

	r.mu.Lock()
	for key, e := range r.entries {
		// refs is only changed under r.mu, so an entry with no refs has no
		// holder of e.mu either.
		if e.refs > 0 {
			continue
		}
		if e.loaded && !match(e) {
			continue
		}
		delete(r.entries, key)
		r.live.Dec()
		if e.closeFn != nil {
			closers = append(closers, e.closeFn)
		}
	}
	r.mu.Unlock()

	for _, c := range closers {
		c()
	}
	return len(closers)
}
