package handler

import (
	"net/http"

	"keystone-site/internal/site"

	"github.com/gin-gonic/gin"
)

// getPageMetadata обрабатывает GET /api/site/metadata?path=...
func (h *SiteHandler) getPageMetadata(c *gin.Context) {
	meta, err := h.metadata.Build(c.DefaultQuery("path", "/"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.Header("Cache-Control", "public, max-age=300")
	c.JSON(http.StatusOK, meta)
}

func (h *SiteHandler) getPersonalizedCTA(c *gin.Context) {
	c.JSON(http.StatusOK, ctaResponse{
		CTA: site.PersonalizedCTA(h.brand, c.Query("projectType"), c.Query("name")),
	})
}

func (h *SiteHandler) listServices(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=300")
	c.JSON(http.StatusOK, site.Services())
}
