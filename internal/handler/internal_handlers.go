package handler

import (
	"net/http"
	"strconv"

	"keystone-site/internal/models"
	"keystone-site/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultQuotesLimit = 20
	maxQuotesLimit     = 100
)

// listQuotes обрабатывает GET /internal/quotes?limit=&offset=&status=
func (h *SiteHandler) listQuotes(c *gin.Context) {
	limit, ok := parseIntQuery(c, "limit", defaultQuotesLimit)
	if !ok || limit <= 0 || limit > maxQuotesLimit {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "limit must be between 1 and 100"})
		return
	}
	offset, ok := parseIntQuery(c, "offset", 0)
	if !ok || offset < 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "offset must be a non-negative integer"})
		return
	}
	status := models.QuoteStatus(c.Query("status"))
	switch status {
	case "", models.QuoteStatusNew, models.QuoteStatusContacted, models.QuoteStatusClosed:
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "status must be one of: new, contacted, closed"})
		return
	}

	quotes, err := h.quoteService.List(c.Request.Context(), repository.ListQuotesParams{
		Limit:  limit,
		Offset: offset,
		Status: status,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if quotes == nil {
		quotes = []models.QuoteRequest{}
	}

	c.JSON(http.StatusOK, models.PaginatedResponse[models.QuoteRequest]{
		Data:   quotes,
		Limit:  limit,
		Offset: offset,
	})
}

// getQuote обрабатывает GET /internal/quotes/:id
func (h *SiteHandler) getQuote(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid quote ID format"})
		return
	}

	quote, err := h.quoteService.Get(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

func parseIntQuery(c *gin.Context, key string, def int) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
