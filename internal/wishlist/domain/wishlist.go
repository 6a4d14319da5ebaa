package domain

import (
	"context"
	"slices"

	catalog "github.com/tair/growshop/internal/catalog/domain"
)

// State is an immutable wishlist value: the liked ids in insertion order and
// the snapshots captured for them. Every id has at most one snapshot and no
// snapshot outlives its id.
type State struct {
	ProductIDs []string          `json:"productIds"`
	Items      []catalog.Product `json:"items"`
}

// Has reports whether productID is in the wishlist
func (s State) Has(productID string) bool {
	return slices.Contains(s.ProductIDs, productID)
}

// Add likes productID. Adding an id that is already present is a no-op.
func (s State) Add(productID string, snapshot *catalog.Product) State {
	if s.Has(productID) {
		return s
	}

	ids := append(slices.Clone(s.ProductIDs), productID)
	items := slices.Clone(s.Items)
	if snapshot != nil {
		items = append(withoutProduct(items, productID), *snapshot)
	}
	return State{ProductIDs: ids, Items: items}
}

// Remove drops productID together with its snapshot
func (s State) Remove(productID string) State {
	ids := make([]string, 0, len(s.ProductIDs))
	for _, id := range s.ProductIDs {
		if id != productID {
			ids = append(ids, id)
		}
	}
	return State{ProductIDs: ids, Items: withoutProduct(slices.Clone(s.Items), productID)}
}

// Toggle removes productID when present and adds it otherwise
func (s State) Toggle(productID string, snapshot *catalog.Product) State {
	if s.Has(productID) {
		return s.Remove(productID)
	}
	return s.Add(productID, snapshot)
}

// Clear empties the wishlist
func (s State) Clear() State {
	return State{ProductIDs: []string{}, Items: []catalog.Product{}}
}

// Len is the number of liked products
func (s State) Len() int {
	return len(s.ProductIDs)
}

func withoutProduct(items []catalog.Product, productID string) []catalog.Product {
	out := items[:0]
	for _, p := range items {
		if p.ID != productID {
			out = append(out, p)
		}
	}
	return out
}

// Repository hands out the live wishlist of a visitor
type Repository interface {
	// With runs fn on the visitor's wishlist while holding its lock
	With(ctx context.Context, visitorID string, fn func(*Store) error) error
}
