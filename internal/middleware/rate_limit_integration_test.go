package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"keystone-site/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"go.uber.org/zap"
)

func TestNewRateLimiter_RedisStore(t *testing.T) {
	testutil.RequireDocker(t)
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err, "Failed to start redis container")
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	connStr, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	opts, err := redis.ParseURL(connStr)
	require.NoError(t, err)
	client := redis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(ctx).Err())

	cfg := RateLimitConfig{Rate: time.Minute, Limit: 1, RedisClient: client}

	// Два инстанса сервиса делят один счетчик в Redis
	newRouter := func() *gin.Engine {
		r := gin.New()
		r.POST("/api/ai/plan", NewRateLimiter(cfg, zap.NewNop()), func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}
	first, second := newRouter(), newRouter()

	send := func(r *gin.Engine) int {
		req := httptest.NewRequest(http.MethodPost, "/api/ai/plan", nil)
		req.RemoteAddr = "198.51.100.20:4000"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send(first))
	assert.Equal(t, http.StatusTooManyRequests, send(second))
}
