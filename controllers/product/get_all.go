package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MasinARK/E-commerce/catalog"
)

// GetProducts lists the whole catalog.
// GET /products
func GetProducts(cat catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := cat.ListProducts(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetFeaturedProducts lists products flagged as featured.
// GET /products/featured
func GetFeaturedProducts(cat catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := cat.ListFeatured(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetProductsByCategory lists products in one category.
// GET /categories/:category/products
func GetProductsByCategory(cat catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Param("category")
		if category == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category is required"})
			return
		}
		products, err := cat.ListByCategory(c.Request.Context(), category)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// SearchProducts matches the query case-insensitively against product
// name, description and category.
// GET /products/search?q=
func SearchProducts(cat catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := cat.Search(c.Request.Context(), c.Query("q"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
