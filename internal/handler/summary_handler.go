package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"paperbuddy/internal/domain"
	"paperbuddy/internal/service"
)

// SummaryHandler serves the summarization endpoint.
type SummaryHandler struct {
	papers    *service.PaperService
	summaries *service.SummaryService
}

// NewSummaryHandler creates a SummaryHandler.
func NewSummaryHandler(papers *service.PaperService, summaries *service.SummaryService) *SummaryHandler {
	return &SummaryHandler{papers: papers, summaries: summaries}
}

type summarizeRequest struct {
	Title       string           `json:"title"`
	Authors     authorList       `json:"authors"`
	Abstract    string           `json:"abstract"`
	Sections    []domain.Section `json:"sections"`
	CourseTopic string           `json:"courseTopic"`
}

// Summarize handles POST /api/summarize. It cannot fail on the backend
// path: the worst case is a canned fallback summary with an advisory flag.
func (h *SummaryHandler) Summarize(c *gin.Context) {
	var req summarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleError(c, domain.ErrInvalidInput)
		return
	}

	doc := h.papers.FromManual(&domain.Document{
		Title:    strings.TrimSpace(req.Title),
		Authors:  req.Authors,
		Abstract: strings.TrimSpace(req.Abstract),
		Sections: req.Sections,
	})
	topic := domain.NormalizeTopic(req.CourseTopic)

	summary := h.summaries.Summarize(c.Request.Context(), doc, topic)
	RespondOK(c, summary)
}
