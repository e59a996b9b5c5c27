package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MasinARK/E-commerce/cart"
	"github.com/MasinARK/E-commerce/catalog"
	"github.com/MasinARK/E-commerce/middleware"
)

type AddItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

type QuantityInput struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// GET /cart
func GetCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		store, err := middleware.StoreFromContext(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, store.Current())
	}
}

// POST /cart/items
func AddCartItem(cat catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, err := middleware.StoreFromContext(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := cat.GetProduct(c.Request.Context(), input.ProductID)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		c.JSON(http.StatusOK, store.Dispatch(cart.AddItem{Product: product}))
	}
}

// PUT /cart/items/:product_id
func UpdateCartQuantity() gin.HandlerFunc {
	return func(c *gin.Context) {
		store, err := middleware.StoreFromContext(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input QuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		next := store.Dispatch(cart.UpdateQuantity{
			ProductID: c.Param("product_id"),
			Quantity:  *input.Quantity,
		})
		c.JSON(http.StatusOK, next)
	}
}

// DELETE /cart/items/:product_id
func DeleteCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		store, err := middleware.StoreFromContext(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, store.Dispatch(cart.RemoveItem{ProductID: c.Param("product_id")}))
	}
}

// DELETE /cart
func ClearCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		store, err := middleware.StoreFromContext(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, store.Dispatch(cart.Clear{}))
	}
}
