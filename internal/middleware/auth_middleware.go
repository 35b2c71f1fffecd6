package middleware

import (
	"strings"

	"crm-service/internal/pkg/response"
	"crm-service/internal/pkg/token"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	verifier *token.Verifier
}

func NewAuthMiddleware(verifier *token.Verifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Auth validates the bearer token and stamps the caller identity into the
// request context as user_id. No authorization decisions are made here.
func (m *AuthMiddleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := extractToken(c)
		if raw == "" {
			response.Unauthorized(c, "missing authorization token")
			return
		}

		userID, err := m.verifier.Verify(raw)
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	// Websocket clients can't set headers from the browser, so the token
	// may arrive as a query parameter instead.
	return c.Query("token")
}

// GetUserID gets the caller identity from context.
func GetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return "", false
	}
	userID, ok := v.(string)
	return userID, ok
}

// MustGetUserID gets the caller identity from context or panics.
func MustGetUserID(c *gin.Context) string {
	userID, exists := GetUserID(c)
	if !exists {
		panic("user_id not found in context")
	}
	return userID
}
