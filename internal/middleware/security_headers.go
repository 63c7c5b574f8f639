package middleware

import (
	"github.com/gin-gonic/gin"
)

// contentSecurityPolicy allows the builder page's inline style and script
// blocks and nothing from other origins.
const contentSecurityPolicy = "default-src 'self'; " +
	"script-src 'self' 'unsafe-inline'; " +
	"style-src 'self' 'unsafe-inline'; " +
	"img-src 'self' data:; " +
	"connect-src 'self'; " +
	"frame-ancestors 'self'"

// SecurityHeadersMiddleware adds security headers to all responses
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Prevent MIME type sniffing
		c.Header("X-Content-Type-Options", "nosniff")

		// Prevent clickjacking
		c.Header("X-Frame-Options", "SAMEORIGIN")

		c.Header("Referrer-Policy", "same-origin")
		c.Header("Content-Security-Policy", contentSecurityPolicy)

		c.Next()
	}
}
