package auth

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const sessionTTL = 24 * time.Hour

// POST /auth/guest
func CreateGuestSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := "sess_" + uuid.NewString()
		expiresAt := time.Now().Add(sessionTTL)

		token, err := IssueSessionToken(sessionID, expiresAt)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"session_id": sessionID,
			"token":      token,
			"expires_at": expiresAt,
		})
	}
}

// IssueSessionToken signs a session token for the given id.
func IssueSessionToken(sessionID string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"session_id": sessionID,
		"role":       "guest",
		"exp":        expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
