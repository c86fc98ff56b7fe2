package middleware

import (
	"net/http"
	"time"

	"keystone-site/internal/models"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimitConfig - настройки ограничения частоты запросов по IP клиента.
type RateLimitConfig struct {
	Rate  time.Duration // окно
	Limit uint          // запросов в окно
	// RedisClient - если nil, используется in-memory хранилище (годится только для одного инстанса).
	RedisClient *redis.Client
}

// NewRateLimiter создает gin middleware ограничения частоты запросов.
func NewRateLimiter(cfg RateLimitConfig, log *zap.Logger) gin.HandlerFunc {
	var store ratelimit.Store
	if cfg.RedisClient != nil {
		store = ratelimit.RedisStore(&ratelimit.RedisOptions{
			RedisClient: cfg.RedisClient,
			Rate:        cfg.Rate,
			Limit:       cfg.Limit,
		})
	} else {
		store = ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
			Rate:  cfg.Rate,
			Limit: cfg.Limit,
		})
	}

	return ratelimit.RateLimiter(store, &ratelimit.Options{
		ErrorHandler: func(c *gin.Context, info ratelimit.Info) {
			log.Warn("Rate limit exceeded",
				zap.String("clientIP", c.ClientIP()),
				zap.Time("resetTime", info.ResetTime),
				zap.String("path", c.Request.URL.Path),
			)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.ErrorResponse{
				Error: "Too many requests. Try again in " + time.Until(info.ResetTime).Round(time.Second).String(),
			})
		},
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP() + ":" + c.FullPath()
		},
	})
}
