package domain

import (
	"context"
	"errors"
	"fmt"
	"regexp"
)

// Supported locales
const (
	LocaleES = "es"
	LocaleCA = "ca"
	LocaleEN = "en"

	DefaultLocale = LocaleES
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// LocalizedText holds one string per supported locale
type LocalizedText struct {
	ES string `json:"es"`
	CA string `json:"ca"`
	EN string `json:"en"`
}

// Get returns the text for locale, falling back to the default locale
func (t LocalizedText) Get(locale string) string {
	switch locale {
	case LocaleCA:
		return t.CA
	case LocaleEN:
		return t.EN
	default:
		return t.ES
	}
}

// Complete reports whether every locale has a value
func (t LocalizedText) Complete() bool {
	return t.ES != "" && t.CA != "" && t.EN != ""
}

// Product is a catalog entry. Products are read-only at runtime.
type Product struct {
	ID          string        `json:"id"`
	Name        LocalizedText `json:"name"`
	Slug        string        `json:"slug"`
	Description LocalizedText `json:"description"`
	Price       float64       `json:"price"`
	PriceOffer  *float64      `json:"priceOffer,omitempty"`
	Images      []string      `json:"images"`
	CategoryID  string        `json:"categoryId"`
	Brand       string        `json:"brand"`
	Stock       int           `json:"stock"`
	Featured    bool          `json:"featured"`
	New         bool          `json:"new"`
}

// EffectivePrice is the price actually charged: the offer price when present
func (p Product) EffectivePrice() float64 {
	if p.PriceOffer != nil {
		return *p.PriceOffer
	}
	return p.Price
}

// OnSale reports whether the product carries an offer price
func (p Product) OnSale() bool {
	return p.PriceOffer != nil
}

// InStock reports whether at least one unit is available
func (p Product) InStock() bool {
	return p.Stock > 0
}

// Validate checks the catalog invariants of a product
func (p Product) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("product id is required")
	}
	if !slugPattern.MatchString(p.Slug) {
		return fmt.Errorf("product %s: invalid slug %q", p.ID, p.Slug)
	}
	if !p.Name.Complete() {
		return fmt.Errorf("product %s: name must be set for every locale", p.ID)
	}
	if p.Price <= 0 {
		return fmt.Errorf("product %s: price must be positive", p.ID)
	}
	if p.PriceOffer != nil && (*p.PriceOffer <= 0 || *p.PriceOffer >= p.Price) {
		return fmt.Errorf("product %s: offer price must be positive and below price", p.ID)
	}
	if p.Stock < 0 {
		return fmt.Errorf("product %s: stock cannot be negative", p.ID)
	}
	if p.CategoryID == "" {
		return fmt.Errorf("product %s: category is required", p.ID)
	}
	return nil
}

// Category groups products for navigation
type Category struct {
	ID          string        `json:"id"`
	Name        LocalizedText `json:"name"`
	Slug        string        `json:"slug"`
	Description LocalizedText `json:"description"`
	Order       int           `json:"order"`
}

// ProductRepository defines read access to the catalog
type ProductRepository interface {
	FindAll(ctx context.Context) []Product
	FindByID(ctx context.Context, id string) (*Product, error)
	FindBySlug(ctx context.Context, slug string) (*Product, error)
}

// CategoryRepository defines read access to categories
type CategoryRepository interface {
	FindAll(ctx context.Context) []Category
	FindByID(ctx context.Context, id string) (*Category, error)
	FindBySlug(ctx context.Context, slug string) (*Category, error)
}
