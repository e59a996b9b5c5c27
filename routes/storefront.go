package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/MasinARK/E-commerce/controllers/cart"
	productControllers "github.com/MasinARK/E-commerce/controllers/product"
	"github.com/MasinARK/E-commerce/middleware"
)

// SetupStorefrontRoutes registers the public catalog endpoints and the
// session-scoped cart endpoints.
func SetupStorefrontRoutes(r *gin.Engine, deps Deps) {
	// ──────────────── Browse Products (public) ────────────────
	r.GET("/products", productControllers.GetProducts(deps.Catalog))                         // GET /products
	r.GET("/products/featured", productControllers.GetFeaturedProducts(deps.Catalog))        // GET /products/featured
	r.GET("/products/search", productControllers.SearchProducts(deps.Catalog))               // GET /products/search?q=
	r.GET("/products/:id", productControllers.GetProductByID(deps.Catalog))                  // GET /products/:id
	r.GET("/categories/:category/products", productControllers.GetProductsByCategory(deps.Catalog)) // GET /categories/:category/products

	// ──────────────── Shopping Cart (session-scoped) ────────────────
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ValidateSession(deps.Carts))
	{
		cartGroup.GET("", cartControllers.GetCart())                                // GET /cart
		cartGroup.GET("/ws", cartControllers.CartStream())                          // GET /cart/ws
		cartGroup.POST("/items", cartControllers.AddCartItem(deps.Catalog))         // POST /cart/items
		cartGroup.PUT("/items/:product_id", cartControllers.UpdateCartQuantity())   // PUT /cart/items/:product_id
		cartGroup.DELETE("/items/:product_id", cartControllers.DeleteCartItem())    // DELETE /cart/items/:product_id
		cartGroup.DELETE("", cartControllers.ClearCart())                           // DELETE /cart
	}
}
