package http

// ListReviews godoc
// @Summary List reviews
// @Tags Content
// @Produce json
// @Param productId query string false "Only reviews of this product"
// @Success 200 {array} domain.Review
// @Router /api/reviews [get]
func (h *ContentHandler) ListReviewsDoc() {}

// GetRating godoc
// @Summary Rating summary of a product
// @Tags Content
// @Produce json
// @Param productId query string true "Product ID"
// @Success 200 {object} domain.ProductRating
// @Failure 400 {object} object{error=string}
// @Router /api/reviews/summary [get]
func (h *ContentHandler) GetRatingDoc() {}

// ListPosts godoc
// @Summary List blog posts
// @Tags Content
// @Produce json
// @Success 200 {array} domain.BlogPost
// @Router /api/blog [get]
func (h *ContentHandler) ListPostsDoc() {}

// GetPost godoc
// @Summary Get a blog post
// @Tags Content
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} domain.BlogPost
// @Failure 404 {object} object{error=string}
// @Router /api/blog/{slug} [get]
func (h *ContentHandler) GetPostDoc() {}
