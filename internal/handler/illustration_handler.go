package handler

import (
	"github.com/gin-gonic/gin"

	"paperbuddy/internal/domain"
	"paperbuddy/internal/illustration"
)

// IllustrationHandler serves the placeholder image endpoint.
type IllustrationHandler struct {
	gen *illustration.Generator
}

// NewIllustrationHandler creates an IllustrationHandler.
func NewIllustrationHandler(gen *illustration.Generator) *IllustrationHandler {
	return &IllustrationHandler{gen: gen}
}

type generateImagesRequest struct {
	KeyPoints []string `json:"key_points"`
	Style     string   `json:"style"`
}

// GenerateImages handles POST /api/generate-images
func (h *IllustrationHandler) GenerateImages(c *gin.Context) {
	var req generateImagesRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.KeyPoints) == 0 {
		HandleError(c, domain.ErrInvalidInput)
		return
	}
	images := h.gen.Generate(req.KeyPoints, domain.IllustrationStyle(req.Style))
	RespondOK(c, gin.H{"images": images})
}
