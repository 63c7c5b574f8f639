package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/themebuilder/internal/metrics"
)

// ParseCIDRs turns a blocklist into networks. Bare addresses are treated as
// single-host ranges; entries that parse as neither are returned in invalid.
func ParseCIDRs(entries []string) (nets []*net.IPNet, invalid []string) {
	nets = make([]*net.IPNet, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if !strings.Contains(entry, "/") {
			if ip := net.ParseIP(entry); ip != nil {
				bits := 128
				if ip.To4() != nil {
					ip = ip.To4()
					bits = 32
				}
				nets = append(nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
				continue
			}
		}
		_, ipNet, err := net.ParseCIDR(entry)
		if err != nil {
			invalid = append(invalid, entry)
			continue
		}
		nets = append(nets, ipNet)
	}
	return nets, invalid
}

// IPFilterMiddleware blocks requests whose client IP falls in the blocklist
func IPFilterMiddleware(blocklist []string) gin.HandlerFunc {
	// Parse blocklist into CIDR ranges
	blockedCIDRs, invalid := ParseCIDRs(blocklist)
	for _, entry := range invalid {
		slog.Warn("ignoring invalid blocklist entry", "entry", entry)
	}

	return func(c *gin.Context) {
		// Extract client IP
		clientIP := net.ParseIP(getClientIP(c))
		if clientIP == nil {
			metrics.WritesRejected.WithLabelValues("blocked").Inc()
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}

		for _, ipNet := range blockedCIDRs {
			if ipNet.Contains(clientIP) {
				metrics.WritesRejected.WithLabelValues("blocked").Inc()
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
				return
			}
		}

		c.Next()
	}
}
