package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/MasinARK/E-commerce/cart"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func sessionRouter(manager *cart.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/cart", ValidateSession(manager), func(c *gin.Context) {
		store, err := StoreFromContext(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, store.Current())
	})
	return r
}

func TestValidateSession(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	manager := cart.NewManager(1000)
	r := sessionRouter(manager)

	get := func(authorization string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/cart", nil)
		if authorization != "" {
			req.Header.Set("Authorization", authorization)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("valid token resolves the session's store", func(t *testing.T) {
		token := signToken(t, "test-secret", jwt.MapClaims{
			"session_id": "sess_1",
			"exp":        time.Now().Add(time.Hour).Unix(),
		})
		if w := get("Bearer " + token); w.Code != http.StatusOK {
			t.Fatalf("code=%d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("missing header -> 401", func(t *testing.T) {
		if w := get(""); w.Code != http.StatusUnauthorized {
			t.Fatalf("code=%d", w.Code)
		}
	})

	t.Run("wrong secret -> 401", func(t *testing.T) {
		token := signToken(t, "other-secret", jwt.MapClaims{
			"session_id": "sess_1",
			"exp":        time.Now().Add(time.Hour).Unix(),
		})
		if w := get("Bearer " + token); w.Code != http.StatusUnauthorized {
			t.Fatalf("code=%d", w.Code)
		}
	})

	t.Run("expired token -> 401", func(t *testing.T) {
		token := signToken(t, "test-secret", jwt.MapClaims{
			"session_id": "sess_1",
			"exp":        time.Now().Add(-time.Hour).Unix(),
		})
		if w := get("Bearer " + token); w.Code != http.StatusUnauthorized {
			t.Fatalf("code=%d", w.Code)
		}
	})

	t.Run("token without a session id -> 401", func(t *testing.T) {
		token := signToken(t, "test-secret", jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		if w := get("Bearer " + token); w.Code != http.StatusUnauthorized {
			t.Fatalf("code=%d", w.Code)
		}
	})
}

func TestStoreFromContextOutsideSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if _, err := StoreFromContext(c); err == nil {
		t.Fatal("expected a usage error outside the session middleware")
	}
}
