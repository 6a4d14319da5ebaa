package repository

import (
	"context"

	"github.com/tair/growshop/internal/content/domain"
	"github.com/tair/growshop/pkg/jsonstore"
)

const (
	ReviewsFile = "reviews.json"
	BlogFile    = "blog.json"
)

// JSONReviewRepository reads reviews.json
type JSONReviewRepository struct {
	reviews *jsonstore.Collection[domain.Review]
}

// NewJSONReviewRepository creates a review repository on top of store
func NewJSONReviewRepository(store *jsonstore.Store) *JSONReviewRepository {
	return &JSONReviewRepository{reviews: jsonstore.NewCollection[domain.Review](store, ReviewsFile)}
}

// FindAll returns every review in file order
func (r *JSONReviewRepository) FindAll(ctx context.Context) []domain.Review {
	return r.reviews.Load(ctx)
}

// FindByProductID returns the reviews of one product
func (r *JSONReviewRepository) FindByProductID(ctx context.Context, productID string) []domain.Review {
	return r.reviews.Filter(ctx, func(rv domain.Review) bool { return rv.ProductID == productID })
}

// JSONBlogRepository reads blog.json
type JSONBlogRepository struct {
	posts *jsonstore.Collection[domain.BlogPost]
}

// NewJSONBlogRepository creates a blog repository on top of store
func NewJSONBlogRepository(store *jsonstore.Store) *JSONBlogRepository {
	return &JSONBlogRepository{posts: jsonstore.NewCollection[domain.BlogPost](store, BlogFile)}
}

// FindAll returns every post in file order
func (r *JSONBlogRepository) FindAll(ctx context.Context) []domain.BlogPost {
	return r.posts.Load(ctx)
}

// FindBySlug returns one post
func (r *JSONBlogRepository) FindBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	p, ok := r.posts.Find(ctx, func(p domain.BlogPost) bool { return p.Slug == slug })
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	return &p, nil
}
