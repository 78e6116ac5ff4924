package middleware

import (
	"net/http"
	"strings"

	"spiderhome-backend/services"
	"spiderhome-backend/utils"

	"github.com/gin-gonic/gin"
)

// IdentityKey is the gin context key holding the verified token claims.
const IdentityKey = "identity"

// RequireAuth gates the admin routes: it extracts the bearer token, verifies
// it, and attaches the claims to the request context. It has no side effects
// beyond short-circuiting unauthorized requests.
func RequireAuth(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")

		var token string
		if strings.HasPrefix(header, "Bearer ") {
			token = strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		}
		if token == "" {
			utils.JSONError(c, http.StatusUnauthorized, "authentication token required")
			c.Abort()
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, err.Error())
			c.Abort()
			return
		}

		c.Set(IdentityKey, claims)
		c.Next()
	}
}

// Identity returns the claims attached by RequireAuth, or nil outside the
// admin group.
func Identity(c *gin.Context) *services.TokenClaims {
	value, ok := c.Get(IdentityKey)
	if !ok {
		return nil
	}
	claims, _ := value.(*services.TokenClaims)
	return claims
}
