package clientstate

import "sync"

// Observable holds a state value and notifies listeners after every update.
// Listeners run synchronously, in subscription order, with the new state.
type Observable[S any] struct {
	mu        sync.Mutex
	state     S
	listeners map[int]func(S)
	order     []int
	nextID    int
}

// NewObservable creates an observable starting at initial
func NewObservable[S any](initial S) *Observable[S] {
	return &Observable[S]{state: initial, listeners: make(map[int]func(S))}
}

// Get returns the current state
func (o *Observable[S]) Get() S {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Update replaces the state with fn(current) and notifies listeners
func (o *Observable[S]) Update(fn func(S) S) S {
	o.mu.Lock()
	next := fn(o.state)
	o.state = next
	listeners := make([]func(S), 0, len(o.order))
	for _, id := range o.order {
		listeners = append(listeners, o.listeners[id])
	}
	o.mu.Unlock()

	for _, l := range listeners {
		l(next)
	}
	return next
}

// Subscribe registers fn and returns a function that removes it
func (o *Observable[S]) Subscribe(fn func(S)) (unsubscribe func()) {
	o.mu.Lock()
	id := o.nextID
	o.nextID++
	o.listeners[id] = fn
	o.order = append(o.order, id)
	o.mu.Unlock()

	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		if _, ok := o.listeners[id]; !ok {
			return
		}
		delete(o.listeners, id)
		for i, v := range o.order {
			if v == id {
				o.order = append(o.order[:i:i], o.order[i+1:]...)
				break
			}
		}
	}
}
