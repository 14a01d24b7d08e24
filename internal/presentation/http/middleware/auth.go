package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/andespos/terminal-api/internal/infrastructure/backend"
	"github.com/andespos/terminal-api/internal/presentation/http/dto/response"
	"github.com/andespos/terminal-api/pkg/utils"
)

// AuthMiddleware validates bearer tokens issued by the backend and forwards
// the raw token into the request context so gateway calls run with the
// cashier's own credentials. Tokens are never issued here.
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		tokenString := parts[1]

		claims, err := jwtManager.ValidateAccessToken(tokenString)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)

		ctx := backend.WithToken(c.Request.Context(), tokenString)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
