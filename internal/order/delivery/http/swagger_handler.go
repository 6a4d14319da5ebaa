package http

// PlaceOrder godoc
// @Summary Place an order
// @Description Prices the lines from the catalog, clamps quantities to stock and stores the order. Orders without a session belong to the guest user.
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body PlaceOrderRequest true "Shipping address and lines"
// @Success 200 {object} object{order=domain.Order}
// @Failure 400 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/orders [post]
func (h *OrderHandler) PlaceOrderDoc() {}

// GetMyOrders godoc
// @Summary List the session user's orders
// @Description Returns an empty list without a session
// @Tags Orders
// @Produce json
// @Security SessionCookie
// @Success 200 {object} object{orders=[]domain.Order}
// @Router /api/orders [get]
func (h *OrderHandler) GetMyOrdersDoc() {}
