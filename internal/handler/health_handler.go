package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves the service status endpoints.
type HealthHandler struct {
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version}
}

// Health handles GET /api/health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "service": "paperbuddy-server"})
}

// Version handles GET /api/version
func (h *HealthHandler) Version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"version": h.version})
}

// Info handles GET /api/info
func (h *HealthHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        "PaperBuddy API",
		"description": "Lightweight API for summarizing papers in a kid-friendly way.",
		"endpoints": []string{
			"/api/health", "/api/version", "/api/info",
			"/api/parse/manual", "/api/parse/pdf", "/api/parse/url",
			"/api/summarize", "/api/generate-images",
		},
	})
}
