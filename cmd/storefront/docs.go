package main

// @title Growshop Storefront API
// @version 1.0
// @description Catalog, cart, wishlist, checkout and account API of the growshop storefront
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@example.com

// @license.name MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name growshop_user
// @description Signed session issued by /api/auth/login.

// @tag.name Catalog
// @tag.description Products, categories and brands

// @tag.name Cart
// @tag.description Visitor cart and checkout

// @tag.name Wishlist
// @tag.description Visitor wishlist

// @tag.name Orders
// @tag.description Order placement and history

// @tag.name Auth
// @tag.description Registration and sessions

// @tag.name Content
// @tag.description Reviews and blog

// @tag.name Health
// @tag.description Health check endpoints
