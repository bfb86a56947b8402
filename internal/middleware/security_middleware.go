package middleware

import (
	"github.com/gin-gonic/gin"
)

// SecurityHeadersMiddleware adds security headers to all responses
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Prevent MIME-sniffing
		c.Header("X-Content-Type-Options", "nosniff")

		// Prevent clickjacking
		c.Header("X-Frame-Options", "DENY")

		// XSS protection for legacy browsers; CSP covers modern ones
		c.Header("X-XSS-Protection", "1; mode=block")

		c.Header("Content-Security-Policy",
			"default-src 'self'; "+
				"script-src 'self'; "+
				"style-src 'self' 'unsafe-inline'; "+
				"img-src 'self' data: https:; "+
				"font-src 'self'; "+
				"connect-src 'self'; "+
				"frame-ancestors 'none';",
		)

		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		c.Header("Permissions-Policy",
			"camera=(), microphone=(), geolocation=(), payment=()",
		)

		c.Next()
	}
}

// HSTSMiddleware enforces HTTPS (only for production)
func HSTSMiddleware(isProduction bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isProduction {
			c.Header("Strict-Transport-Security",
				"max-age=31536000; includeSubDomains; preload",
			)
		}
		c.Next()
	}
}
