package http

// GetCart godoc
// @Summary Get the visitor cart
// @Description Returns the cart identified by the growshop_cart cookie, issuing the cookie when missing
// @Tags Cart
// @Produce json
// @Success 200 {object} CartView
// @Router /api/cart [get]
func (h *CartHandler) GetCartDoc() {}

// AddItem godoc
// @Summary Add a product to the cart
// @Description Adds quantity (default 1) of a product, merging with an existing line and refreshing its snapshot
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body AddItemRequest true "Item to add"
// @Success 200 {object} CartView
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/cart/items [post]
func (h *CartHandler) AddItemDoc() {}

// UpdateItem godoc
// @Summary Set an item quantity
// @Description A quantity of zero or less removes the item
// @Tags Cart
// @Accept json
// @Produce json
// @Param productId path string true "Product ID"
// @Param request body UpdateItemRequest true "New quantity"
// @Success 200 {object} CartView
// @Failure 400 {object} object{error=string}
// @Router /api/cart/items/{productId} [patch]
func (h *CartHandler) UpdateItemDoc() {}

// RemoveItem godoc
// @Summary Remove an item
// @Tags Cart
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} CartView
// @Router /api/cart/items/{productId} [delete]
func (h *CartHandler) RemoveItemDoc() {}

// ClearCart godoc
// @Summary Empty the cart
// @Tags Cart
// @Produce json
// @Success 200 {object} CartView
// @Router /api/cart [delete]
func (h *CartHandler) ClearCartDoc() {}

// Checkout godoc
// @Summary Place an order from the cart
// @Description Prices and stock are taken from the catalog. The cart is cleared when the order is stored.
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body CheckoutRequest true "Shipping address"
// @Success 200 {object} object{order=domain.Order}
// @Failure 400 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/cart/checkout [post]
func (h *CartHandler) CheckoutDoc() {}
