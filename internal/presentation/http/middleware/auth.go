package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sewlanka/pos-api/internal/domain/enum"
	"github.com/sewlanka/pos-api/internal/presentation/http/dto/response"
	"github.com/sewlanka/pos-api/pkg/utils"
)

// AuthMiddleware creates a JWT authentication middleware
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("user_level", claims.Level)

		c.Next()
	}
}

// RequireLevel creates a middleware that requires a minimum user level.
// Levels are ordered: a manager passes every cashier check.
func RequireLevel(minimum enum.UserLevel) gin.HandlerFunc {
	return func(c *gin.Context) {
		levelValue, exists := c.Get("user_level")
		if !exists {
			response.Forbidden(c, "Access denied")
			c.Abort()
			return
		}

		level, ok := levelValue.(enum.UserLevel)
		if !ok || level < minimum {
			response.Forbidden(c, "You do not have permission to perform this action")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireManager restricts a route to L2 users
func RequireManager() gin.HandlerFunc {
	return RequireLevel(enum.UserLevelManager)
}
