package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/guttosm/dashpulse/internal/domain/dto"
)

// DefaultRateLimit is the per-client request budget per minute.
const DefaultRateLimit = 60

var now = time.Now

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type rateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	every    rate.Limit
	burst    int
	window   time.Duration
}

// RateLimiter gives each client IP a token bucket of limit requests that refills over window
// and answers 429 with a Retry-After header once the bucket is empty.
// A non-positive limit falls back to DefaultRateLimit.
//
// Usage:
//
//	router.Use(middleware.RateLimiter(60, time.Minute))
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	if limit <= 0 {
		limit = DefaultRateLimit
	}
	rl := &rateLimiter{
		visitors: make(map[string]*visitor),
		every:    rate.Every(window / time.Duration(limit)),
		burst:    limit,
		window:   window,
	}
	return rl.handle
}

// limiterFor returns the bucket for ip, creating it on first sight.
func (rl *rateLimiter) limiterFor(ip string, t time.Time) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[ip]
	if !ok {
		rl.evictLocked(t)
		v = &visitor{limiter: rate.NewLimiter(rl.every, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = t
	return v.limiter
}

// evictLocked drops visitors idle for a full window; their bucket would be full again anyway.
func (rl *rateLimiter) evictLocked(t time.Time) {
	for ip, v := range rl.visitors {
		if t.Sub(v.lastSeen) >= rl.window {
			delete(rl.visitors, ip)
		}
	}
}

// retryAfter reports how long until lim frees a token, in whole seconds, at least one.
func retryAfter(lim *rate.Limiter, t time.Time) int {
	r := lim.ReserveN(t, 1)
	defer r.CancelAt(t)
	if !r.OK() {
		return 1
	}
	return max(1, int(math.Ceil(r.DelayFrom(t).Seconds())))
}

func (rl *rateLimiter) handle(c *gin.Context) {
	t := now()
	lim := rl.limiterFor(c.ClientIP(), t)
	if !lim.AllowN(t, 1) {
		c.Header("Retry-After", strconv.Itoa(retryAfter(lim, t)))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse("Rate limit exceeded", nil))
		return
	}
	c.Next()
}
