package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/MasinARK/E-commerce/cart"
)

const (
	storeKey   = "cart_store"
	sessionKey = "session_id"
)

// ErrNoSession reports cart access from a handler that did not go
// through the session middleware. This is a caller bug, not a user
// condition.
var ErrNoSession = errors.New("cart store accessed outside an active session")

// ValidateSession checks the Bearer session token and resolves the
// session's cart store into the request context.
func ValidateSession(manager *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("invalid token signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}
		sessionID, ok := claims[sessionKey].(string)
		if !ok || sessionID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}

		c.Set(sessionKey, sessionID)
		SetStore(c, manager.Get(sessionID))
		c.Next()
	}
}

// SetStore attaches a session's cart store to the request context.
func SetStore(c *gin.Context, s *cart.Store) {
	c.Set(storeKey, s)
}

// StoreFromContext returns the session's cart store. Calling it from a
// handler mounted outside the session middleware yields ErrNoSession.
func StoreFromContext(c *gin.Context) (*cart.Store, error) {
	v, ok := c.Get(storeKey)
	if !ok {
		return nil, ErrNoSession
	}
	store, ok := v.(*cart.Store)
	if !ok {
		return nil, ErrNoSession
	}
	return store, nil
}

// SessionID returns the session id set by ValidateSession, or "".
func SessionID(c *gin.Context) string {
	v, ok := c.Get(sessionKey)
	if !ok {
		return ""
	}
	id, _ := v.(string)
	return id
}
