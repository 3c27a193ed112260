package middleware

import (
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/brightwash/booking-service/pkg"

	"github.com/gin-gonic/gin"
)

var errTooManyRequests = pkg.NewDomainErrorSimple("TOO_MANY_REQUESTS", "Too many requests", http.StatusTooManyRequests)

// RateLimiter is a fixed-window per-client counter. A client gets limit
// requests per window; the window restarts on the first request after it
// elapses.
type RateLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	now     func() time.Time
	clients map[string]*clientWindow
}

type clientWindow struct {
	count int
	start time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:   limit,
		window:  window,
		now:     time.Now,
		clients: make(map[string]*clientWindow),
	}
}

// Allow reports whether a request from addr fits in the current window.
// addr may be a bare IP, an ip:port remote address, or an X-Forwarded-For
// list; the first hop wins.
func (l *RateLimiter) Allow(addr string) bool {
	ip := normalizeAddr(addr)
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.clients[ip]
	if !ok || now.Sub(w.start) > l.window {
		l.clients[ip] = &clientWindow{count: 1, start: now}
		return true
	}
	if w.count >= l.limit {
		return false
	}
	w.count++
	return true
}

// Reset drops all counters.
func (l *RateLimiter) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.clients = make(map[string]*clientWindow)
}

func normalizeAddr(addr string) string {
	if i := strings.IndexByte(addr, ','); i >= 0 {
		addr = addr[:i]
	}
	addr = strings.TrimSpace(addr)
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}

// RateLimit throttles mutating requests per client IP. Limits come from
// RATE_LIMIT (requests, default 60) and RATE_LIMIT_WINDOW_SECONDS
// (default 60). Reads pass through untouched.
func RateLimit() gin.HandlerFunc {
	limit := envInt("RATE_LIMIT", 60)
	window := time.Duration(envInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second
	return RateLimitWith(NewRateLimiter(limit, window))
}

// RateLimitWith wraps an existing limiter, so tests and callers can share one.
func RateLimitWith(l *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}
		if !l.Allow(clientAddr(c)) {
			c.AbortWithStatusJSON(errTooManyRequests.HTTPStatus, errTooManyRequests.ToHTTPError())
			return
		}
		c.Next()
	}
}

func clientAddr(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	return c.Request.RemoteAddr
}

func envInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
