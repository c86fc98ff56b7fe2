package handler

import (
	"keystone-site/internal/ai"
	"keystone-site/internal/config"
	"keystone-site/internal/service"
	"keystone-site/internal/site"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SiteHandler обслуживает публичное API сайта и внутренние эндпоинты заявок.
// Хранит только неизменяемые зависимости, безопасен для конкурентного использования.
type SiteHandler struct {
	planGenerator ai.PlanGenerator
	quoteService  service.QuoteService
	metadata      *site.MetadataBuilder
	brand         config.BrandConfig
	logger        *zap.Logger
}

// NewSiteHandler создает новый SiteHandler.
func NewSiteHandler(
	planGenerator ai.PlanGenerator,
	quoteService service.QuoteService,
	brand config.BrandConfig,
	logger *zap.Logger,
) *SiteHandler {
	return &SiteHandler{
		planGenerator: planGenerator,
		quoteService:  quoteService,
		metadata:      site.NewMetadataBuilder(brand),
		brand:         brand,
		logger:        logger.Named("SiteHandler"),
	}
}

// RegisterRoutes регистрирует маршруты. rateLimiter навешивается на публичные POST,
// internalAuth - на группу /internal.
func (h *SiteHandler) RegisterRoutes(router *gin.Engine, rateLimiter, internalAuth gin.HandlerFunc) {
	api := router.Group("/api")
	{
		api.POST("/ai/plan", rateLimiter, h.generatePlan)
		api.POST("/quotes", rateLimiter, h.submitQuote)

		siteGroup := api.Group("/site")
		siteGroup.GET("/metadata", h.getPageMetadata)
		siteGroup.GET("/cta", h.getPersonalizedCTA)
		siteGroup.GET("/services", h.listServices)
	}

	internal := router.Group("/internal")
	internal.Use(internalAuth)
	{
		internal.GET("/quotes", h.listQuotes)
		internal.GET("/quotes/:id", h.getQuote)
	}
}
