package domain

import (
	"context"

	"github.com/shopspring/decimal"

	catalog "github.com/tair/growshop/internal/catalog/domain"
)

// DefaultQuantity is used when an add request does not name a quantity
const DefaultQuantity = 1

// Item is one cart line. Product is the snapshot captured when the item was
// added; it may be nil and may drift from the live catalog.
type Item struct {
	ProductID string           `json:"productId"`
	Quantity  int              `json:"quantity"`
	Product   *catalog.Product `json:"product,omitempty"`
}

// State is an immutable cart value. Every transition returns a new State and
// leaves the receiver untouched.
type State struct {
	Items []Item `json:"items"`
}

// AddItem adds quantity of productID as given. An existing item has its
// quantity increased and its snapshot replaced when snapshot is non-nil. No
// stock limit is applied here.
func (s State) AddItem(productID string, quantity int, snapshot *catalog.Product) State {
	items := make([]Item, 0, len(s.Items)+1)
	found := false
	for _, it := range s.Items {
		if it.ProductID == productID {
			found = true
			it.Quantity += quantity
			if snapshot != nil {
				it.Product = snapshot
			}
		}
		items = append(items, it)
	}
	if !found {
		items = append(items, Item{ProductID: productID, Quantity: quantity, Product: snapshot})
	}
	return State{Items: items}
}

// RemoveItem drops productID. Removing an absent id is a no-op.
func (s State) RemoveItem(productID string) State {
	items := make([]Item, 0, len(s.Items))
	for _, it := range s.Items {
		if it.ProductID != productID {
			items = append(items, it)
		}
	}
	return State{Items: items}
}

// UpdateQuantity sets the quantity of productID exactly. A quantity of zero
// or less removes the item.
func (s State) UpdateQuantity(productID string, quantity int) State {
	if quantity <= 0 {
		return s.RemoveItem(productID)
	}

	items := make([]Item, len(s.Items))
	copy(items, s.Items)
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
		}
	}
	return State{Items: items}
}

// Clear empties the cart
func (s State) Clear() State {
	return State{Items: []Item{}}
}

// Has reports whether productID is in the cart
func (s State) Has(productID string) bool {
	for _, it := range s.Items {
		if it.ProductID == productID {
			return true
		}
	}
	return false
}

// TotalItems is the sum of quantities
func (s State) TotalItems() int {
	total := 0
	for _, it := range s.Items {
		total += it.Quantity
	}
	return total
}

// TotalPrice sums effective snapshot price times quantity. Items without a
// snapshot count as zero. The result is rounded to cents.
func (s State) TotalPrice() float64 {
	total := decimal.Zero
	for _, it := range s.Items {
		if it.Product == nil {
			continue
		}
		price := decimal.NewFromFloat(it.Product.EffectivePrice())
		total = total.Add(price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total.Round(2).InexactFloat64()
}

// ItemsCopy returns a copy of the items, never nil
func (s State) ItemsCopy() []Item {
	items := make([]Item, len(s.Items))
	copy(items, s.Items)
	return items
}

// Repository hands out the live cart of a visitor
type Repository interface {
	// With runs fn on the visitor's cart while holding its lock
	With(ctx context.Context, visitorID string, fn func(*Store) error) error
}
