package domain

import (
	catalog "github.com/tair/growshop/internal/catalog/domain"
	"github.com/tair/growshop/internal/clientstate"
)

// Store is an observable cart. Mutations apply a State transition and then
// notify subscribers with the new state.
type Store struct {
	state *clientstate.Observable[State]
}

// NewStore creates a store starting at initial
func NewStore(initial State) *Store {
	return NewStoreFrom(clientstate.NewObservable(initial))
}

// NewStoreFrom wraps an existing observable, typically one hydrated by
// clientstate.Open
func NewStoreFrom(obs *clientstate.Observable[State]) *Store {
	return &Store{state: obs}
}

// State returns the current cart
func (s *Store) State() State { return s.state.Get() }

// Subscribe registers fn to run after every mutation
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	return s.state.Subscribe(fn)
}

// AddItem applies State.AddItem and notifies subscribers
func (s *Store) AddItem(productID string, quantity int, snapshot *catalog.Product) State {
	return s.state.Update(func(st State) State { return st.AddItem(productID, quantity, snapshot) })
}

// RemoveItem applies State.RemoveItem and notifies subscribers
func (s *Store) RemoveItem(productID string) State {
	return s.state.Update(func(st State) State { return st.RemoveItem(productID) })
}

// UpdateQuantity applies State.UpdateQuantity and notifies subscribers
func (s *Store) UpdateQuantity(productID string, quantity int) State {
	return s.state.Update(func(st State) State { return st.UpdateQuantity(productID, quantity) })
}

// Clear empties the cart and notifies subscribers
func (s *Store) Clear() State {
	return s.state.Update(func(st State) State { return st.Clear() })
}

// TotalItems is the sum of quantities in the current cart
func (s *Store) TotalItems() int { return s.State().TotalItems() }

// TotalPrice is the snapshot-priced total of the current cart
func (s *Store) TotalPrice() float64 { return s.State().TotalPrice() }

// Items returns a copy of the current items
func (s *Store) Items() []Item { return s.State().ItemsCopy() }
