package middleware

import (
	"net/http"
	"strings"

	"github.com/books-app/backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware extracts and verifies the bearer token. A missing token
// is 401; a token that fails verification is 403. Role checks are left to
// each service operation.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": "JWT token required",
			})
			c.Abort()
			return
		}

		// 2. Extract token from "Bearer <token>"
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": "Invalid authorization format. Use: Bearer <token>",
			})
			c.Abort()
			return
		}

		// 3. Validate token
		claims, err := utils.ValidateToken(tokenString, jwtSecret)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{
				"message": "Invalid token",
			})
			c.Abort()
			return
		}

		// 4. Attach the caller's identity for downstream handlers
		c.Set("user_id", claims.UserID)

		c.Next()
	}
}
