package domain

import (
	catalog "github.com/tair/growshop/internal/catalog/domain"
	"github.com/tair/growshop/internal/clientstate"
)

// Store is an observable wishlist
type Store struct {
	state *clientstate.Observable[State]
}

// NewStore creates a store starting at initial
func NewStore(initial State) *Store {
	return NewStoreFrom(clientstate.NewObservable(initial))
}

// NewStoreFrom wraps an existing observable
func NewStoreFrom(obs *clientstate.Observable[State]) *Store {
	return &Store{state: obs}
}

// State returns the current wishlist
func (s *Store) State() State { return s.state.Get() }

// Has reports whether productID is in the current wishlist
func (s *Store) Has(productID string) bool { return s.State().Has(productID) }

// Subscribe registers fn to run after every mutation
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	return s.state.Subscribe(fn)
}

// Add applies State.Add and notifies subscribers
func (s *Store) Add(productID string, snapshot *catalog.Product) State {
	return s.state.Update(func(st State) State { return st.Add(productID, snapshot) })
}

// Remove applies State.Remove and notifies subscribers
func (s *Store) Remove(productID string) State {
	return s.state.Update(func(st State) State { return st.Remove(productID) })
}

// Toggle applies State.Toggle and notifies subscribers
func (s *Store) Toggle(productID string, snapshot *catalog.Product) State {
	return s.state.Update(func(st State) State { return st.Toggle(productID, snapshot) })
}

// Clear empties the wishlist and notifies subscribers
func (s *Store) Clear() State {
	return s.state.Update(func(st State) State { return st.Clear() })
}
