// Package filter derives the displayed product list from the catalog and the
// shop page's filter and sort state.
package filter

import (
	"sort"
	"strings"

	"github.com/tair/growshop/internal/catalog/domain"
)

// PriceBucket is one of the discrete price filters of the shop page
type PriceBucket string

const (
	BucketAny     PriceBucket = ""
	BucketUnder25 PriceBucket = "under25"
	Bucket25to50  PriceBucket = "25to50"
	Bucket50to100 PriceBucket = "50to100"
	BucketOver100 PriceBucket = "over100"
)

// SortKey selects the ordering applied after filtering
type SortKey string

const (
	SortNone      SortKey = ""
	SortPriceAsc  SortKey = "priceAsc"
	SortPriceDesc SortKey = "priceDesc"
	SortNewest    SortKey = "newest"
)

// PriceRange is an inclusive bound on effective price
type PriceRange struct {
	Min float64
	Max float64
}

// Criteria is the active filter and sort state. The zero value matches
// every product and keeps catalog order.
type Criteria struct {
	Bucket  PriceBucket
	Range   *PriceRange
	Brand   string
	OnSale  bool
	New     bool
	InStock bool
	Sort    SortKey
}

// Apply filters and sorts products without modifying the input slice
func Apply(products []domain.Product, c Criteria) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if c.matches(p) {
			out = append(out, p)
		}
	}
	Sort(out, c.Sort)
	return out
}

func (c Criteria) matches(p domain.Product) bool {
	if c.Bucket != BucketAny {
		if !c.Bucket.Matches(p.EffectivePrice()) {
			return false
		}
	} else if c.Range != nil {
		price := p.EffectivePrice()
		if price < c.Range.Min || price > c.Range.Max {
			return false
		}
	}

	if c.Brand != "" && p.Brand != c.Brand {
		return false
	}

	if c.OnSale && !p.OnSale() {
		return false
	}
	if c.New && !p.New {
		return false
	}
	if c.InStock && !p.InStock() {
		return false
	}
	return true
}

// Matches reports whether price falls in the bucket. Unknown buckets match
// everything.
func (b PriceBucket) Matches(price float64) bool {
	switch b {
	case BucketUnder25:
		return price < 25
	case Bucket25to50:
		return price >= 25 && price <= 50
	case Bucket50to100:
		return price > 50 && price <= 100
	case BucketOver100:
		return price > 100
	default:
		return true
	}
}

// Sort orders products in place. Ties keep their relative order.
func Sort(products []domain.Product, key SortKey) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice() < products[j].EffectivePrice()
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice() > products[j].EffectivePrice()
		})
	case SortNewest:
		// Products carry no timestamp; new-flagged items simply go first.
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].New && !products[j].New
		})
	}
}

// MatchesSearch is a case-insensitive substring match over every localized
// name and the brand
func MatchesSearch(p domain.Product, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name.ES), q) ||
		strings.Contains(strings.ToLower(p.Name.CA), q) ||
		strings.Contains(strings.ToLower(p.Name.EN), q) ||
		strings.Contains(strings.ToLower(p.Brand), q)
}

// Brands returns the distinct non-empty brands, sorted
func Brands(products []domain.Product) []string {
	seen := map[string]bool{}
	brands := make([]string, 0)
	for _, p := range products {
		if p.Brand == "" || seen[p.Brand] {
			continue
		}
		seen[p.Brand] = true
		brands = append(brands, p.Brand)
	}
	sort.Strings(brands)
	return brands
}
