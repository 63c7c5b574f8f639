package middleware

import (
	"fmt"
	"math"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/themebuilder/internal/metrics"
)

// TokenBucket implements a token bucket rate limiter
type TokenBucket struct {
	tokens   int
	capacity int
	refillAt time.Time
	interval time.Duration
	mu       sync.Mutex
}

// RateLimiter manages token buckets per IP
type RateLimiter struct {
	mu       sync.RWMutex
	buckets  map[string]*TokenBucket
	capacity int
	interval time.Duration
	done     chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(capacity int, interval time.Duration) *RateLimiter {
	if capacity <= 0 {
		capacity = 1
	}
	if interval <= 0 {
		interval = time.Minute
	}

	limiter := &RateLimiter{
		buckets:  make(map[string]*TokenBucket),
		capacity: capacity,
		interval: interval,
		done:     make(chan struct{}),
	}

	// Start cleanup goroutine
	go limiter.cleanup()

	return limiter
}

// Stop ends the cleanup goroutine.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.done) })
}

// cleanup removes old buckets every 5 minutes
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-rl.done:
			return
		case <-ticker.C:
			rl.mu.Lock()
			now := time.Now()
			for ip, bucket := range rl.buckets {
				bucket.mu.Lock()
				// Remove buckets not accessed in 10 minutes
				if now.Sub(bucket.refillAt) > 10*time.Minute {
					delete(rl.buckets, ip)
				}
				bucket.mu.Unlock()
			}
			rl.mu.Unlock()
		}
	}
}

// Allow checks if a request should be allowed
func (rl *RateLimiter) Allow(ip string) (bool, int) {
	rl.mu.RLock()
	bucket, exists := rl.buckets[ip]
	rl.mu.RUnlock()

	if !exists {
		rl.mu.Lock()
		// Another request may have created it meanwhile
		bucket, exists = rl.buckets[ip]
		if !exists {
			bucket = &TokenBucket{
				tokens:   rl.capacity,
				capacity: rl.capacity,
				refillAt: time.Now().Add(rl.interval),
				interval: rl.interval,
			}
			rl.buckets[ip] = bucket
		}
		rl.mu.Unlock()
	}

	bucket.mu.Lock()
	defer bucket.mu.Unlock()

	// Refill tokens if interval has passed
	now := time.Now()
	if now.After(bucket.refillAt) {
		bucket.tokens = bucket.capacity
		bucket.refillAt = now.Add(bucket.interval)
	}

	// Try to consume a token
	if bucket.tokens > 0 {
		bucket.tokens--
		return true, bucket.tokens
	}

	return false, 0
}

// resetIn reports how long until ip's bucket refills.
func (rl *RateLimiter) resetIn(ip string) time.Duration {
	rl.mu.RLock()
	bucket, exists := rl.buckets[ip]
	rl.mu.RUnlock()
	if !exists {
		return 0
	}

	bucket.mu.Lock()
	defer bucket.mu.Unlock()
	if d := time.Until(bucket.refillAt); d > 0 {
		return d
	}
	return 0
}

// RateLimitMiddleware creates a rate limiting middleware. With no paths it
// limits every request it sees, otherwise only the listed route patterns.
func RateLimitMiddleware(limiter *RateLimiter, paths ...string) gin.HandlerFunc {
	pathMap := make(map[string]bool)
	for _, path := range paths {
		pathMap[path] = true
	}

	return func(c *gin.Context) {
		// Check if this path requires rate limiting
		if len(pathMap) > 0 && !pathMap[c.FullPath()] && !pathMap[c.Request.URL.Path] {
			c.Next()
			return
		}

		// Extract client IP
		clientIP := getClientIP(c)

		// Check rate limit
		allowed, remaining := limiter.Allow(clientIP)

		// Set rate limit headers
		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", limiter.capacity))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))

		if !allowed {
			retryAfter := int(math.Ceil(limiter.resetIn(clientIP).Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			metrics.WritesRejected.WithLabelValues("rate_limited").Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		c.Next()
	}
}

// getClientIP returns the client IP as resolved by gin's trusted proxy
// settings, falling back to RemoteAddr.
func getClientIP(c *gin.Context) string {
	if ip := c.ClientIP(); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return host
}
