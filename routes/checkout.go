package routes

import (
	"github.com/gin-gonic/gin"

	checkoutControllers "github.com/MasinARK/E-commerce/controllers/checkout"
	"github.com/MasinARK/E-commerce/middleware"
)

// SetupCheckoutRoutes registers the checkout hand-off endpoints.
func SetupCheckoutRoutes(r *gin.Engine, deps Deps) {
	checkoutGroup := r.Group("/checkout")
	checkoutGroup.Use(middleware.ValidateSession(deps.Carts))
	{
		// Session creation at the payment provider
		checkoutGroup.POST("", checkoutControllers.CreateCheckoutSession(deps.Checkout))

		// Arrival back from the provider's hosted page
		checkoutGroup.POST("/success", checkoutControllers.CheckoutSuccess())
	}
}
