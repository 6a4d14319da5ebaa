package http

// GetWishlist godoc
// @Summary Get the visitor wishlist
// @Tags Wishlist
// @Produce json
// @Success 200 {object} WishlistView
// @Router /api/wishlist [get]
func (h *WishlistHandler) GetWishlistDoc() {}

// Add godoc
// @Summary Like a product
// @Description Adding a product that is already liked changes nothing
// @Tags Wishlist
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} WishlistView
// @Failure 404 {object} object{error=string}
// @Router /api/wishlist/{productId} [put]
func (h *WishlistHandler) AddDoc() {}

// Remove godoc
// @Summary Unlike a product
// @Tags Wishlist
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} WishlistView
// @Router /api/wishlist/{productId} [delete]
func (h *WishlistHandler) RemoveDoc() {}

// Toggle godoc
// @Summary Toggle a product
// @Tags Wishlist
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} WishlistView
// @Failure 404 {object} object{error=string}
// @Router /api/wishlist/{productId}/toggle [post]
func (h *WishlistHandler) ToggleDoc() {}

// ClearWishlist godoc
// @Summary Empty the wishlist
// @Tags Wishlist
// @Produce json
// @Success 200 {object} WishlistView
// @Router /api/wishlist [delete]
func (h *WishlistHandler) ClearWishlistDoc() {}
