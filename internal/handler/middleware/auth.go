package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"slotbooking/internal/handler/httperr"
	"slotbooking/internal/pkg/cookie"
	"slotbooking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAdmin guards the administrative surface. The token comes from
// the admin cookie or a bearer header.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAdminToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.Response{Ok: false, Error: "Admin token required"})
			return
		}

		if err := m.tokenValidator.ValidateAdminToken(token); err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.Response{Ok: false, Error: "Invalid or expired token"})
			return
		}

		c.Next()
	}
}
