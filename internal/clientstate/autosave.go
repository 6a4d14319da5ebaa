package clientstate

import (
	"context"
	"sync"
	"time"

	"github.com/tair/growshop/pkg/logger"
)

// saveTimeout bounds a single background save
const saveTimeout = 5 * time.Second

// Autosaver writes the latest scheduled state for one key in the background.
// States scheduled while a save is in flight are coalesced so only the most
// recent one is written. Save errors are logged and dropped.
type Autosaver[S any] struct {
	persister Persister
	key       string

	mu     sync.Mutex
	latest S
	dirty  bool
	closed bool

	wake    chan struct{}
	done    chan struct{}
	stopped chan struct{}
}

// NewAutosaver starts the background writer for key
func NewAutosaver[S any](persister Persister, key string) *Autosaver[S] {
	a := &Autosaver[S]{
		persister: persister,
		key:       key,
		wake:      make(chan struct{}, 1),
		done:      make(chan struct{}),
		stopped:   make(chan struct{}),
	}
	go a.loop()
	return a
}

// Schedule queues state for saving and returns immediately
func (a *Autosaver[S]) Schedule(state S) {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.latest = state
	a.dirty = true
	a.mu.Unlock()

	select {
	case a.wake <- struct{}{}:
	default:
	}
}

// Close flushes any pending state and stops the writer
func (a *Autosaver[S]) Close() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		<-a.stopped
		return
	}
	a.closed = true
	a.mu.Unlock()

	close(a.done)
	<-a.stopped
}

func (a *Autosaver[S]) loop() {
	defer close(a.stopped)
	for {
		select {
		case <-a.wake:
			a.flush()
		case <-a.done:
			a.flush()
			return
		}
	}
}

func (a *Autosaver[S]) flush() {
	a.mu.Lock()
	if !a.dirty {
		a.mu.Unlock()
		return
	}
	state := a.latest
	a.dirty = false
	a.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	if err := a.persister.Save(ctx, a.key, state); err != nil {
		logger.Warn(ctx).
			Err(err).
			Str("key", a.key).
			Msg("Failed to persist client state")
	}
}

// Open hydrates an Observable from the persister and attaches an Autosaver to
// it. A failed load is logged and starts from zero. The returned close
// function detaches and flushes the autosaver.
func Open[S any](ctx context.Context, persister Persister, key string) (*Observable[S], func()) {
	var initial S
	if _, err := persister.Load(ctx, key, &initial); err != nil {
		logger.Warn(ctx).
			Err(err).
			Str("key", key).
			Msg("Failed to load client state, starting empty")
		var zero S
		initial = zero
	}

	obs := NewObservable(initial)
	saver := NewAutosaver[S](persister, key)
	unsubscribe := obs.Subscribe(saver.Schedule)

	return obs, func() {
		unsubscribe()
		saver.Close()
	}
}
