package main

import (
	"fmt"
	"net/http"
	"time"

	"keystone-site/internal/config"
	"keystone-site/internal/handler"
	"keystone-site/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.uber.org/zap"
)

const defaultAllowedOrigin = "http://localhost:3000"

// newRouter собирает gin.Engine со всеми middleware и маршрутами сервиса.
// prom подключается до регистрации маршрутов: gin фиксирует цепочку handlers в момент регистрации.
func newRouter(
	cfg *config.Config,
	log *zap.Logger,
	prom *ginprometheus.Prometheus,
	siteHandler *handler.SiteHandler,
	rateLimiter, internalAuth gin.HandlerFunc,
) (*gin.Engine, error) {
	router := gin.New()
	// Без явного списка gin доверяет X-Forwarded-For от любого клиента, а по ClientIP считается rate limit.
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid TRUSTED_PROXIES: %w", err)
	}
	router.Use(middleware.GinZapLogger(log))
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.GetAllowedOrigins()
	if len(corsConfig.AllowOrigins) == 0 {
		corsConfig.AllowOrigins = []string{defaultAllowedOrigin}
		log.Info("CORSAllowedOrigins not set, allowing default", zap.String("origin", defaultAllowedOrigin))
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "HEAD", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "X-Request-ID", middleware.InterServiceTokenHeader}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Шаблон маршрута вместо сырого URL, иначе query и :id раздувают кардинальность.
	prom.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
		if path := c.FullPath(); path != "" {
			return path
		}
		return "unmatched"
	}
	prom.Use(router)

	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	siteHandler.RegisterRoutes(router, rateLimiter, internalAuth)
	return router, nil
}
