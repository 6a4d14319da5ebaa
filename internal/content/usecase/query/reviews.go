package query

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tair/growshop/internal/content/domain"
)

// ListReviewsQuery filters reviews by product when ProductID is set
type ListReviewsQuery struct {
	ProductID string
}

// ListReviewsHandler handles list reviews query
type ListReviewsHandler struct {
	repo domain.ReviewRepository
}

// NewListReviewsHandler creates a new list reviews handler
func NewListReviewsHandler(repo domain.ReviewRepository) *ListReviewsHandler {
	return &ListReviewsHandler{repo: repo}
}

// Handle executes the list reviews query
func (h *ListReviewsHandler) Handle(ctx context.Context, q ListReviewsQuery) []domain.Review {
	if q.ProductID == "" {
		return h.repo.FindAll(ctx)
	}
	return h.repo.FindByProductID(ctx, q.ProductID)
}

// GetRatingHandler summarizes the reviews of a product
type GetRatingHandler struct {
	repo domain.ReviewRepository
}

// NewGetRatingHandler creates a new rating summary handler
func NewGetRatingHandler(repo domain.ReviewRepository) *GetRatingHandler {
	return &GetRatingHandler{repo: repo}
}

// Handle returns the rating summary for productID
func (h *GetRatingHandler) Handle(ctx context.Context, productID string) domain.ProductRating {
	return Summarize(productID, h.repo.FindByProductID(ctx, productID))
}

// Summarize computes the average, rounded to one decimal, and the star
// distribution. Reviews outside the 1 to 5 scale are ignored.
func Summarize(productID string, reviews []domain.Review) domain.ProductRating {
	rating := domain.ProductRating{ProductID: productID}

	sum := 0
	for _, r := range reviews {
		if !r.ValidRating() {
			continue
		}
		rating.TotalReviews++
		sum += r.Rating
		rating.RatingDistribution.Add(r.Rating)
	}

	if rating.TotalReviews > 0 {
		avg := decimal.NewFromInt(int64(sum)).
			Div(decimal.NewFromInt(int64(rating.TotalReviews))).
			Round(1)
		rating.AverageRating = avg.InexactFloat64()
	}
	return rating
}
