package server

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter - общий token bucket на группу маршрутов
type RateLimiter struct {
	limiter *rate.Limiter
	mu      sync.Mutex
}

// RateLimitMiddleware ограничивает группу маршрутов.
// requests - запросов в секунду, burst - максимальный всплеск.
// При requests <= 0 ограничение выключено.
func RateLimitMiddleware(requests int, burst int) gin.HandlerFunc {
	if requests <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if burst < 1 {
		burst = requests
	}

	limiter := &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(requests), burst),
	}

	return func(c *gin.Context) {
		limiter.mu.Lock()
		allowed := limiter.limiter.Allow()
		limiter.mu.Unlock()

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			return
		}

		c.Next()
	}
}
