package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tair/growshop/internal/catalog/domain"
)

func offer(v float64) *float64 { return &v }

func catalog() []domain.Product {
	return []domain.Product{
		{ID: "1", Name: domain.LocalizedText{ES: "Maceta", CA: "Test", EN: "Pot"}, Brand: "Acme", Price: 20, Stock: 3},
		{ID: "2", Name: domain.LocalizedText{ES: "Sustrato", CA: "Substrat", EN: "Substrate"}, Brand: "Bio", Price: 50, PriceOffer: offer(40), Stock: 0, New: true},
		{ID: "3", Name: domain.LocalizedText{ES: "Lámpara LED", CA: "Llum", EN: "LED lamp"}, Brand: "Acme", Price: 150, Stock: 5, New: true},
		{ID: "4", Name: domain.LocalizedText{ES: "Tijeras", CA: "Tisores", EN: "Scissors"}, Brand: "Cut", Price: 25, Stock: 10},
		{ID: "5", Name: domain.LocalizedText{ES: "Abono", CA: "Adob", EN: "Fertilizer"}, Brand: "Bio", Price: 100, Stock: 2},
		{ID: "6", Name: domain.LocalizedText{ES: "Filtro", CA: "Filtre", EN: "Filter"}, Brand: "", Price: 60, PriceOffer: offer(24.99), Stock: 1},
	}
}

func ids(products []domain.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestApplyPriceBuckets(t *testing.T) {
	tests := []struct {
		name     string
		bucket   PriceBucket
		expected []string
	}{
		{"under25 uses effective price", BucketUnder25, []string{"1", "6"}},
		{"25to50 is inclusive on both ends", Bucket25to50, []string{"2", "4"}},
		{"50to100 excludes 50", Bucket50to100, []string{"5"}},
		{"over100", BucketOver100, []string{"3"}},
		{"unknown bucket matches everything", PriceBucket("cheap"), []string{"1", "2", "3", "4", "5", "6"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(catalog(), Criteria{Bucket: tt.bucket})
			assert.Equal(t, tt.expected, ids(got))
			for _, p := range got {
				assert.True(t, tt.bucket.Matches(p.EffectivePrice()))
			}
		})
	}
}

func TestApplyCustomRange(t *testing.T) {
	got := Apply(catalog(), Criteria{Range: &PriceRange{Min: 24.99, Max: 40}})
	assert.Equal(t, []string{"2", "4", "6"}, ids(got))

	t.Run("bucket wins over range", func(t *testing.T) {
		got := Apply(catalog(), Criteria{Bucket: BucketOver100, Range: &PriceRange{Min: 0, Max: 10}})
		assert.Equal(t, []string{"3"}, ids(got))
	})
}

func TestApplyBrandAndFlags(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		expected []string
	}{
		{"brand exact match", Criteria{Brand: "Acme"}, []string{"1", "3"}},
		{"brand is case sensitive", Criteria{Brand: "acme"}, []string{}},
		{"on sale", Criteria{OnSale: true}, []string{"2", "6"}},
		{"new", Criteria{New: true}, []string{"2", "3"}},
		{"in stock", Criteria{InStock: true}, []string{"1", "3", "4", "5", "6"}},
		{"flags are and-ed", Criteria{New: true, InStock: true}, []string{"3"}},
		{"empty result is fine", Criteria{Brand: "Bio", Bucket: BucketOver100}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ids(Apply(catalog(), tt.criteria)))
		})
	}
}

func TestApplySort(t *testing.T) {
	tests := []struct {
		name     string
		key      SortKey
		expected []string
	}{
		{"none keeps catalog order", SortNone, []string{"1", "2", "3", "4", "5", "6"}},
		{"price ascending", SortPriceAsc, []string{"1", "6", "4", "2", "5", "3"}},
		{"price descending", SortPriceDesc, []string{"3", "5", "2", "4", "6", "1"}},
		{"newest partitions and keeps order", SortNewest, []string{"2", "3", "1", "4", "5", "6"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ids(Apply(catalog(), Criteria{Sort: tt.key})))
		})
	}

	t.Run("ties keep relative order", func(t *testing.T) {
		products := []domain.Product{
			{ID: "a", Price: 10},
			{ID: "b", Price: 5},
			{ID: "c", Price: 10},
		}
		assert.Equal(t, []string{"b", "a", "c"}, ids(Apply(products, Criteria{Sort: SortPriceAsc})))
	})
}

func TestApplyDoesNotMutateCatalog(t *testing.T) {
	products := catalog()
	Apply(products, Criteria{Sort: SortPriceDesc, InStock: true})
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, ids(products))
}

func TestClearedFiltersRestoreCatalog(t *testing.T) {
	products := catalog()
	filtered := Apply(products, Criteria{Bucket: BucketUnder25, Sort: SortPriceAsc})
	assert.NotEqual(t, len(products), len(filtered))

	assert.Equal(t, products, Apply(products, Criteria{}))
}

func TestMatchesSearch(t *testing.T) {
	products := catalog()

	assert.True(t, MatchesSearch(products[0], "maceta"))
	assert.True(t, MatchesSearch(products[0], "POT"))
	assert.True(t, MatchesSearch(products[0], "acm"))
	assert.True(t, MatchesSearch(products[2], "led"))
	assert.True(t, MatchesSearch(products[1], "substrat"))
	assert.False(t, MatchesSearch(products[0], "lamp"))
}

func TestBrands(t *testing.T) {
	assert.Equal(t, []string{"Acme", "Bio", "Cut"}, Brands(catalog()))
	assert.Empty(t, Brands(nil))
}
