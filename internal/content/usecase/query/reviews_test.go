package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tair/growshop/internal/content/domain"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		average float64
		total   int
		dist    domain.RatingDistribution
	}{
		{"no reviews", nil, 0, 0, domain.RatingDistribution{}},
		{"rounds to one decimal", []int{5, 4, 5}, 4.7, 3, domain.RatingDistribution{Five: 2, Four: 1}},
		{"exact average", []int{2, 4}, 3, 2, domain.RatingDistribution{Four: 1, Two: 1}},
		{"out of scale ignored", []int{0, 6, 1}, 1, 1, domain.RatingDistribution{One: 1}},
		{"rounds half up", []int{5, 4, 4, 4}, 4.3, 4, domain.RatingDistribution{Five: 1, Four: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reviews := make([]domain.Review, 0, len(tt.ratings))
			for _, r := range tt.ratings {
				reviews = append(reviews, domain.Review{ProductID: "1", Rating: r})
			}

			got := Summarize("1", reviews)
			assert.Equal(t, "1", got.ProductID)
			assert.Equal(t, tt.average, got.AverageRating)
			assert.Equal(t, tt.total, got.TotalReviews)
			assert.Equal(t, tt.dist, got.RatingDistribution)
		})
	}
}
