package middleware

import (
	"sync"
	"time"

	"newsbangla24/portal/internal/dto"
	"newsbangla24/portal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"
)

const rateLimiterExpiry = 5 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter 按客户端 IP 限流，长时间未出现的 IP 会被清理
type IPRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	clock    clockwork.Clock
	lastGC   time.Time
}

// NewIPRateLimiter perMinute 为每分钟允许的请求数
func NewIPRateLimiter(perMinute, burst int, clock clockwork.Clock) *IPRateLimiter {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if perMinute <= 0 {
		perMinute = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &IPRateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    burst,
		clock:    clock,
		lastGC:   clock.Now(),
	}
}

// Allow 判断该 IP 此刻是否允许请求
func (l *IPRateLimiter) Allow(ip string) bool {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastGC) > rateLimiterExpiry {
		for key, v := range l.visitors {
			if now.Sub(v.lastSeen) > rateLimiterExpiry {
				delete(l.visitors, key)
			}
		}
		l.lastGC = now
	}

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// Middleware 超过限制时返回 429
func (l *IPRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			dto.AbortWithError(c, response.NewBusinessError(
				response.WithErrorCode(response.TooManyRequests),
				response.WithErrorMessage("too many requests, please try again later"),
			))
			return
		}
		c.Next()
	}
}
