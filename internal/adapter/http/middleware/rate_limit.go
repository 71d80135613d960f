package middleware

import (
	"math"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"webquote/pkg"
)

// sweepProbability is the chance per request of clearing expired
// entries, bounding memory growth from one-off clients.
const sweepProbability = 0.01

// RateLimitEntry tracks one client address within the current fixed
// window.
type RateLimitEntry struct {
	Count     int
	ResetTime time.Time
}

// RateLimiter is a fixed-window per-address request counter. The entry
// table is shared across requests and guarded by a mutex.
type RateLimiter struct {
	mu          sync.Mutex
	entries     map[string]*RateLimitEntry
	maxRequests int
	window      time.Duration
	now         func() time.Time
	log         zerolog.Logger
}

func NewRateLimiter(maxRequests int, window time.Duration, log zerolog.Logger) *RateLimiter {
	return &RateLimiter{
		entries:     make(map[string]*RateLimitEntry),
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
		log:         log,
	}
}

// Allow records one request from addr. It reports whether the request
// may proceed, the remaining quota, and the window's reset time.
func (l *RateLimiter) Allow(addr string) (allowed bool, remaining int, resetTime time.Time) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if rand.Float64() < sweepProbability {
		l.sweepLocked(now)
	}

	entry, ok := l.entries[addr]
	if !ok || entry.ResetTime.Before(now) {
		entry = &RateLimitEntry{Count: 1, ResetTime: now.Add(l.window)}
		l.entries[addr] = entry
		return true, l.maxRequests - 1, entry.ResetTime
	}

	entry.Count++
	remaining = l.maxRequests - entry.Count
	if remaining < 0 {
		remaining = 0
	}
	return entry.Count <= l.maxRequests, remaining, entry.ResetTime
}

// Sweep removes all entries whose window has already expired.
func (l *RateLimiter) Sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sweepLocked(l.now())
}

func (l *RateLimiter) sweepLocked(now time.Time) {
	for addr, entry := range l.entries {
		if entry.ResetTime.Before(now) {
			delete(l.entries, addr)
		}
	}
}

// RateLimit gates requests through the limiter. Attach it to the API
// route group only; other paths stay untouched.
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		addr := clientAddr(c)
		allowed, remaining, resetTime := limiter.Allow(addr)

		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.maxRequests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

		if !allowed {
			retryAfter := int(math.Ceil(time.Until(resetTime).Seconds()))
			if retryAfter < 0 {
				retryAfter = 0
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			limiter.log.Warn().
				Str("client_addr", addr).
				Str("request_id", GetRequestID(c)).
				Msg("rate limit exceeded")

			appErr := pkg.NewDomainErrorSimple("RATE_LIMITED", "요청이 너무 많습니다. 잠시 후 다시 시도해 주세요.", http.StatusTooManyRequests)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Next()
	}
}

// clientAddr resolves the client address behind Vercel/Cloudflare style
// proxies: first X-Forwarded-For hop, then CF-Connecting-IP, then
// X-Real-IP, defaulting to loopback.
func clientAddr(c *gin.Context) string {
	if header := c.GetHeader("X-Forwarded-For"); header != "" {
		if first, _, found := strings.Cut(header, ","); found || first != "" {
			return strings.TrimSpace(first)
		}
	}
	if ip := strings.TrimSpace(c.GetHeader("CF-Connecting-IP")); ip != "" {
		return ip
	}
	if ip := strings.TrimSpace(c.GetHeader("X-Real-IP")); ip != "" {
		return ip
	}
	return "127.0.0.1"
}
