package middleware

import (
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"salespage/internal/config"
)

const (
	visitorIdle  = 10 * time.Minute
	sweepAtCount = 4096
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	now      func() time.Time
	log      *zap.Logger
}

// NewRateLimiter builds a limiter from cfg. PerMinute <= 0 disables limiting.
func NewRateLimiter(cfg config.RateLimitConfig, log *zap.Logger) *RateLimiter {
	if log == nil {
		log = zap.NewNop()
	}
	l := &RateLimiter{
		visitors: make(map[string]*visitor),
		now:      time.Now,
		log:      log,
	}
	if cfg.PerMinute > 0 {
		l.limit = rate.Every(time.Minute / time.Duration(cfg.PerMinute))
		l.burst = cfg.Burst
		if l.burst <= 0 {
			l.burst = 1
		}
	}
	return l
}

func (l *RateLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if len(l.visitors) >= sweepAtCount {
		for k, v := range l.visitors {
			if now.Sub(v.lastSeen) > visitorIdle {
				delete(l.visitors, k)
			}
		}
	}

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

// Handler returns the fiber middleware handler.
func (l *RateLimiter) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if l.limit == 0 {
			return c.Next()
		}
		ip := c.IP()
		if !l.get(ip).AllowN(l.now(), 1) {
			l.log.Warn("rate_limit_exceeded", zap.String("ip", ip), zap.String("path", c.Path()))
			retry := time.Duration(float64(time.Second) / float64(l.limit))
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(retry.Seconds())+1))
			return fiber.NewError(fiber.StatusTooManyRequests, "rate limit exceeded, try again later")
		}
		return c.Next()
	}
}
