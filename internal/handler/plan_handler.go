package handler

import (
	"encoding/json"
	"net/http"

	"keystone-site/internal/middleware"
	"keystone-site/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxPlanBodyBytes ограничивает тело запроса плана. Тело больше лимита считается нечитаемым.
const maxPlanBodyBytes = 64 << 10

// generatePlan обрабатывает POST /api/ai/plan.
// Пустое описание дает 400. Любая другая проблема, включая нечитаемое тело
// и ошибку генерации, дает 200 с запасным планом.
func (h *SiteHandler) generatePlan(c *gin.Context) {
	log := h.logger.With(zap.String("request_id", middleware.RequestIDFromContext(c.Request.Context())))

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxPlanBodyBytes)
	body, err := c.GetRawData()
	if err != nil {
		log.Warn("Failed to read plan request body, returning fallback plan", zap.Error(err))
		h.respondFallback(c)
		return
	}

	var req *models.PlanRequest
	if err := json.Unmarshal(body, &req); err != nil || req == nil {
		log.Warn("Unparseable plan request body, returning fallback plan",
			zap.Error(err), zap.Int("bodyBytes", len(body)))
		h.respondFallback(c)
		return
	}

	if req.Description == "" {
		planRequestsTotal.WithLabelValues(planOutcomeInvalid).Inc()
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: models.MsgDescriptionRequired})
		return
	}

	log = log.With(zap.String("projectType", req.ProjectType), zap.Int("descriptionLength", len(req.Description)))
	plan, err := h.planGenerator.GeneratePlan(c.Request.Context(), req.Description, req.ProjectType)
	if err != nil {
		log.Error("Plan generation failed, returning fallback plan", zap.Error(err))
		h.respondFallback(c)
		return
	}

	planRequestsTotal.WithLabelValues(planOutcomeGenerated).Inc()
	c.JSON(http.StatusOK, models.PlanResponse{Plan: plan})
}

func (h *SiteHandler) respondFallback(c *gin.Context) {
	planRequestsTotal.WithLabelValues(planOutcomeFallback).Inc()
	c.JSON(http.StatusOK, models.PlanResponse{Plan: models.FallbackPlan()})
}
