package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ClaimsKey is the gin context key holding the validated *Claims.
const ClaimsKey = "claims"

// bearerToken extracts the token from an "Authorization: Bearer" header.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// RequireToken middleware validates a bearer token and checks its scope
func RequireToken(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := CheckSecret(); err != nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "write API disabled: no JWT secret configured"})
			return
		}

		token := bearerToken(c)
		if token == "" {
			c.Header("WWW-Authenticate", `Bearer realm="themebuilder"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := ValidateToken(token)
		if err != nil {
			slog.Debug("rejected token", "ip", c.ClientIP(), "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		if !claims.Allows(scope) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "token does not grant " + scope})
			return
		}

		// Set claims in context for handlers
		c.Set(ClaimsKey, claims)
		c.Next()
	}
}
