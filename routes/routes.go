package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/MasinARK/E-commerce/cart"
	"github.com/MasinARK/E-commerce/catalog"
	"github.com/MasinARK/E-commerce/checkout"
)

// Deps is everything the route groups need wired in.
type Deps struct {
	Catalog  catalog.Catalog
	Carts    *cart.Manager
	Checkout *checkout.Builder
}

// SetupRoutes is the single entry-point that wires up the Auth,
// Storefront, Checkout and Admin route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r)

	// Catalog browsing + session-scoped cart
	SetupStorefrontRoutes(r, deps)

	// Checkout hand-off (session-scoped)
	SetupCheckoutRoutes(r, deps)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, deps)
}
