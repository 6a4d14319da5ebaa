package repository

import (
	"context"

	"github.com/tair/growshop/internal/catalog/domain"
	"github.com/tair/growshop/pkg/jsonstore"
	"github.com/tair/growshop/pkg/logger"
)

// Collection files
const (
	ProductsFile   = "products.json"
	CategoriesFile = "categories.json"
)

// JSONProductRepository serves products from products.json
type JSONProductRepository struct {
	products *jsonstore.Collection[domain.Product]
}

// NewJSONProductRepository creates a product repository on top of store
func NewJSONProductRepository(store *jsonstore.Store) *JSONProductRepository {
	return &JSONProductRepository{
		products: jsonstore.NewCollection[domain.Product](store, ProductsFile),
	}
}

// FindAll returns the catalog in file order
func (r *JSONProductRepository) FindAll(ctx context.Context) []domain.Product {
	return r.products.Load(ctx)
}

// FindByID retrieves a product by id
func (r *JSONProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	p, ok := r.products.Find(ctx, func(p domain.Product) bool { return p.ID == id })
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &p, nil
}

// FindBySlug retrieves a product by slug
func (r *JSONProductRepository) FindBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	p, ok := r.products.Find(ctx, func(p domain.Product) bool { return p.Slug == slug })
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &p, nil
}

// Verify loads the catalog and logs every product that breaks an invariant
// or repeats an id or slug. Invalid products are kept. It returns the number
// of problems found.
func (r *JSONProductRepository) Verify(ctx context.Context) int {
	problems := 0
	ids := map[string]bool{}
	slugs := map[string]bool{}

	for _, p := range r.products.Load(ctx) {
		if err := p.Validate(); err != nil {
			logger.Warn(ctx).Err(err).Msg("Invalid product in catalog")
			problems++
		}
		if ids[p.ID] {
			logger.Warn(ctx).Str("product_id", p.ID).Msg("Duplicate product id in catalog")
			problems++
		}
		if slugs[p.Slug] {
			logger.Warn(ctx).Str("slug", p.Slug).Msg("Duplicate product slug in catalog")
			problems++
		}
		ids[p.ID] = true
		slugs[p.Slug] = true
	}
	return problems
}

// JSONCategoryRepository serves categories from categories.json
type JSONCategoryRepository struct {
	categories *jsonstore.Collection[domain.Category]
}

// NewJSONCategoryRepository creates a category repository on top of store
func NewJSONCategoryRepository(store *jsonstore.Store) *JSONCategoryRepository {
	return &JSONCategoryRepository{
		categories: jsonstore.NewCollection[domain.Category](store, CategoriesFile),
	}
}

// FindAll returns categories in file order
func (r *JSONCategoryRepository) FindAll(ctx context.Context) []domain.Category {
	return r.categories.Load(ctx)
}

// FindByID retrieves a category by id
func (r *JSONCategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	c, ok := r.categories.Find(ctx, func(c domain.Category) bool { return c.ID == id })
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	return &c, nil
}

// FindBySlug retrieves a category by slug
func (r *JSONCategoryRepository) FindBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	c, ok := r.categories.Find(ctx, func(c domain.Category) bool { return c.Slug == slug })
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	return &c, nil
}
