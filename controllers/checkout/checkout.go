package checkoutControllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/MasinARK/E-commerce/catalog"
	"github.com/MasinARK/E-commerce/checkout"
	"github.com/MasinARK/E-commerce/middleware"
	"github.com/MasinARK/E-commerce/models"
)

type CheckoutInput struct {
	CartItems    []models.LineItem `json:"cartItems"`
	CustomerInfo checkout.Customer `json:"customerInfo"`
}

type SuccessInput struct {
	SessionID string `json:"session_id"`
}

// POST /checkout
//
// The cart itself stays untouched here: it is cleared only when the
// shopper arrives back at the success destination. On any provider
// failure the shopper can simply resubmit.
func CreateCheckoutSession(builder *checkout.Builder) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := middleware.StoreFromContext(c); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input CheckoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}

		if len(input.CartItems) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No items in cart"})
			return
		}

		session, err := builder.CreateSession(c.Request.Context(), input.CartItems, input.CustomerInfo)
		if err != nil {
			if errors.Is(err, checkout.ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "No items in cart"})
				return
			}
			if errors.Is(err, catalog.ErrNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			log.Error().Err(err).Str("session", middleware.SessionID(c)).Msg("checkout session creation failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating checkout session"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"sessionId": session.ID, "url": session.URL})
	}
}

// POST /checkout/success
//
// Called when the shopper lands on the success page. Clears the cart
// exactly once per provider session id; a missing id still clears.
func CheckoutSuccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		store, err := middleware.StoreFromContext(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input SuccessInput
		if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}

		cleared := store.CompleteCheckout(input.SessionID)
		c.JSON(http.StatusOK, gin.H{"cleared": cleared})
	}
}
