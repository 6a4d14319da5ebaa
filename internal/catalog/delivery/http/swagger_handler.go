package http

// ListProducts godoc
// @Summary List products
// @Description Filters the catalog, then applies the price bucket, sale and stock filters and the sort order
// @Tags Catalog
// @Produce json
// @Param categoryId query string false "Category ID"
// @Param brand query string false "Brand"
// @Param search query string false "Case-insensitive text in name, description or brand"
// @Param featured query bool false "Only featured products"
// @Param new query bool false "Only new products"
// @Param minPrice query number false "Lowest effective price"
// @Param maxPrice query number false "Highest effective price"
// @Param limit query int false "Maximum number of products"
// @Param price query string false "Price bucket" Enums(under25, 25to50, 50to100, over100)
// @Param onSale query bool false "Only discounted products"
// @Param inStock query bool false "Only products in stock"
// @Param sort query string false "Sort order" Enums(priceAsc, priceDesc, newest)
// @Success 200 {array} domain.Product
// @Router /api/products [get]
func (h *CatalogHandler) ListProductsDoc() {}

// GetProduct godoc
// @Summary Get a product by slug
// @Tags Catalog
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} domain.Product
// @Failure 404 {object} object{error=string}
// @Router /api/products/{slug} [get]
func (h *CatalogHandler) GetProductDoc() {}

// ListCategories godoc
// @Summary List categories
// @Tags Catalog
// @Produce json
// @Success 200 {array} domain.Category
// @Router /api/categories [get]
func (h *CatalogHandler) ListCategoriesDoc() {}

// ListBrands godoc
// @Summary List brands
// @Description Distinct brands of the catalog, sorted
// @Tags Catalog
// @Produce json
// @Success 200 {array} string
// @Router /api/brands [get]
func (h *CatalogHandler) ListBrandsDoc() {}
