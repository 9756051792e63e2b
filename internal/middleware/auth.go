package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// UserIDKey is the context key for the authenticated user's ID
	UserIDKey = "user_id"

	// tokenPrefix is the RealWorld API's authorization scheme. "Bearer"
	// is accepted too for interoperability.
	tokenPrefix  = "Token "
	bearerPrefix = "Bearer "
)

// TokenVerifier verifies a token string and returns the user ID it
// identifies. Implemented by auth.TokenManager.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Auth returns a middleware that requires a valid token. Requests
// without one are rejected with 401 before reaching the handler.
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := verifyRequest(c, verifier)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"errors": gin.H{"auth": []string{"missing or invalid token"}},
			})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// OptionalAuth returns a middleware that resolves the viewer identity
// when a valid token is present but lets anonymous requests through.
func OptionalAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := verifyRequest(c, verifier); ok {
			c.Set(UserIDKey, userID)
		}
		c.Next()
	}
}

// GetUserID retrieves the authenticated user's ID from the gin context.
// It returns the empty string for anonymous requests.
func GetUserID(c *gin.Context) string {
	if userID, exists := c.Get(UserIDKey); exists {
		if id, ok := userID.(string); ok {
			return id
		}
	}
	return ""
}

func verifyRequest(c *gin.Context, verifier TokenVerifier) (string, bool) {
	header := c.GetHeader("Authorization")
	var token string
	switch {
	case strings.HasPrefix(header, tokenPrefix):
		token = header[len(tokenPrefix):]
	case strings.HasPrefix(header, bearerPrefix):
		token = header[len(bearerPrefix):]
	default:
		return "", false
	}

	userID, err := verifier.Verify(token)
	if err != nil {
		return "", false
	}
	return userID, true
}
