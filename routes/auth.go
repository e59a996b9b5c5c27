package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/MasinARK/E-commerce/auth"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/guest", auth.CreateGuestSession())
	}
}
