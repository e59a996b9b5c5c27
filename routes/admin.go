package routes

import (
	"github.com/gin-gonic/gin"

	productControllers "github.com/MasinARK/E-commerce/controllers/product"
	"github.com/MasinARK/E-commerce/middleware"
)

// SetupAdminRoutes registers the API-key-protected admin endpoints.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		adminGroup.GET("/products/export", productControllers.ExportProductsToExcel(deps.Catalog))
	}
}
