package domain

import (
	"context"
	"errors"

	catalog "github.com/tair/growshop/internal/catalog/domain"
)

var ErrPostNotFound = errors.New("post not found")

// Review is a customer review of a product
type Review struct {
	ID        string   `json:"id"`
	ProductID string   `json:"productId"`
	UserID    string   `json:"userId"`
	UserName  string   `json:"userName"`
	Rating    int      `json:"rating"`
	Title     string   `json:"title"`
	Comment   string   `json:"comment"`
	Date      string   `json:"date"`
	Verified  bool     `json:"verified"`
	Helpful   int      `json:"helpful"`
	Images    []string `json:"images,omitempty"`
}

// ValidRating reports whether the review uses the 1 to 5 star scale
func (r Review) ValidRating() bool {
	return r.Rating >= 1 && r.Rating <= 5
}

// RatingDistribution counts reviews per star value
type RatingDistribution struct {
	Five  int `json:"5"`
	Four  int `json:"4"`
	Three int `json:"3"`
	Two   int `json:"2"`
	One   int `json:"1"`
}

// Add counts one review with the given star value
func (d *RatingDistribution) Add(stars int) {
	switch stars {
	case 5:
		d.Five++
	case 4:
		d.Four++
	case 3:
		d.Three++
	case 2:
		d.Two++
	case 1:
		d.One++
	}
}

// ProductRating summarizes the reviews of one product
type ProductRating struct {
	ProductID          string             `json:"productId"`
	AverageRating      float64            `json:"averageRating"`
	TotalReviews       int                `json:"totalReviews"`
	RatingDistribution RatingDistribution `json:"ratingDistribution"`
}

// BlogPost is a localized article
type BlogPost struct {
	Slug    string                `json:"slug"`
	Title   catalog.LocalizedText `json:"title"`
	Excerpt catalog.LocalizedText `json:"excerpt"`
	Date    string                `json:"date"`
	Image   string                `json:"image"`
	Content catalog.LocalizedText `json:"content"`
}

// ReviewRepository reads product reviews
type ReviewRepository interface {
	FindAll(ctx context.Context) []Review
	FindByProductID(ctx context.Context, productID string) []Review
}

// BlogRepository reads blog posts
type BlogRepository interface {
	FindAll(ctx context.Context) []BlogPost
	FindBySlug(ctx context.Context, slug string) (*BlogPost, error)
}
