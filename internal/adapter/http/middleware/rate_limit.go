package middleware

import (
	"net/http"
	"sync"
	"time"

	"rxquote/internal/config"
	"rxquote/pkg"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter keeps one token bucket per client IP.
type IPRateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	limit   rate.Limit
	burst   int
	now     func() time.Time
}

func NewIPRateLimiter(cfg config.RateLimitConfig) *IPRateLimiter {
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	limit := rate.Limit(cfg.RequestsPerSecond)
	if cfg.RequestsPerSecond <= 0 {
		limit = rate.Inf
	}
	return &IPRateLimiter{
		clients: make(map[string]*clientLimiter),
		limit:   limit,
		burst:   burst,
		now:     time.Now,
	}
}

func (l *IPRateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cl, ok := l.clients[ip]
	if !ok {
		l.evictIdle(now)
		cl = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = cl
	}
	cl.lastSeen = now
	return cl.limiter.AllowN(now, 1)
}

func (l *IPRateLimiter) evictIdle(now time.Time) {
	for ip, cl := range l.clients {
		if now.Sub(cl.lastSeen) > limiterIdleTTL {
			delete(l.clients, ip)
		}
	}
}

func RateLimit(l *IPRateLimiter) gin.HandlerFunc {
	tooMany := pkg.NewDomainErrorSimple("RATE_LIMITED", "Too many requests, try again later", http.StatusTooManyRequests)
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(tooMany.HTTPStatus, tooMany.ToHTTPError())
			return
		}
		c.Next()
	}
}
