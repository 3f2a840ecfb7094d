package middleware

// In-process sliding-window limiter keyed by client IP. Each limiter owns its
// own counter map; a purge goroutine drops idle IPs so the map cannot grow
// unbounded.

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type windowEntry struct {
	count     int
	expiresAt time.Time
}

type slidingWindow struct {
	mu      sync.Mutex
	entries map[string]*windowEntry
	limit   int
	window  time.Duration
	message string
}

func newSlidingWindow(limit int, window time.Duration, message string) *slidingWindow {
	sw := &slidingWindow{
		entries: make(map[string]*windowEntry),
		limit:   limit,
		window:  window,
		message: message,
	}
	go sw.purgeLoop()
	return sw
}

// allow counts one hit for ip and reports whether it stays under the limit,
// along with the moment the current window closes.
func (s *slidingWindow) allow(ip string) (bool, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	e := s.entries[ip]
	if e == nil || now.After(e.expiresAt) {
		e = &windowEntry{expiresAt: now.Add(s.window)}
		s.entries[ip] = e
	}
	e.count++
	return e.count <= s.limit, e.expiresAt
}

func (s *slidingWindow) handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, windowEnd := s.allow(c.ClientIP())
		if !ok {
			c.Header("Retry-After", windowEnd.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				gin.H{"success": false, "error": s.message})
			return
		}
		c.Next()
	}
}

func (s *slidingWindow) purgeLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		s.mu.Lock()
		purged := 0
		for ip, e := range s.entries {
			if now.After(e.expiresAt) {
				delete(s.entries, ip)
				purged++
			}
		}
		remaining := len(s.entries)
		s.mu.Unlock()

		if purged > 0 {
			log.Debug().
				Int("purged", purged).
				Int("remaining", remaining).
				Msg("rate limiter entries purged")
		}
	}
}

// RateLimiter throttles general API traffic per client IP.
// The router mounts it at 100 requests per 15 minutes.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return newSlidingWindow(limit, window,
		"Demasiadas solicitudes. Intente nuevamente en un momento.").handler()
}

// LoginRateLimiter applies a tighter window on credential endpoints:
// 20 attempts per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return newSlidingWindow(20, time.Minute,
		"Demasiados intentos de login. Intente en 1 minuto.").handler()
}
