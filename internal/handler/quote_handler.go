package handler

import (
	"net/http"
	"strings"

	"keystone-site/internal/middleware"
	"keystone-site/internal/models"
	"keystone-site/internal/service"
	"keystone-site/internal/site"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// submitQuote обрабатывает POST /api/quotes.
func (h *SiteHandler) submitQuote(c *gin.Context) {
	var req submitQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}
	projectType := strings.ToLower(strings.TrimSpace(req.ProjectType))
	if !site.IsKnownProjectType(projectType) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "projectType is invalid"})
		return
	}

	quote, err := h.quoteService.Submit(c.Request.Context(), service.QuoteSubmission{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		ProjectType: projectType,
		Description: req.Description,
		Budget:      req.Budget,
		Timeline:    req.Timeline,
		ZipCode:     req.ZipCode,
	})
	if err != nil {
		h.logger.Error("Quote submission failed",
			zap.String("request_id", middleware.RequestIDFromContext(c.Request.Context())), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: models.MsgQuoteSubmitFailed})
		return
	}

	c.JSON(http.StatusCreated, submitQuoteResponse{ID: quote.ID.String(), Status: string(quote.Status)})
}
