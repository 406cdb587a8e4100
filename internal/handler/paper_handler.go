package handler

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"paperbuddy/internal/domain"
	"paperbuddy/internal/service"
)

// PaperHandler serves the document ingestion endpoints.
type PaperHandler struct {
	papers *service.PaperService
}

// NewPaperHandler creates a PaperHandler.
func NewPaperHandler(papers *service.PaperService) *PaperHandler {
	return &PaperHandler{papers: papers}
}

// authorList accepts either a JSON array of strings or a single
// comma-separated string; clients of the original API sent both.
type authorList []string

func (a *authorList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*a = list
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	var out []string
	for _, tok := range strings.Split(s, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}
	*a = out
	return nil
}

type manualParseRequest struct {
	Title    string           `json:"title"`
	Authors  authorList       `json:"authors"`
	Abstract string           `json:"abstract"`
	Sections []domain.Section `json:"sections"`
}

// ParseManual handles POST /api/parse/manual
func (h *PaperHandler) ParseManual(c *gin.Context) {
	var req manualParseRequest
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
	RespondOK(c, doc)
}

// ParsePDF handles POST /api/parse/pdf (multipart field "file")
func (h *PaperHandler) ParsePDF(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		HandleError(c, domain.ErrInvalidInput)
		return
	}
	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".pdf") {
		HandleError(c, domain.ErrUnsupportedFileType)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		HandleError(c, err)
		return
	}
	defer func() { _ = f.Close() }()

	doc, err := h.papers.FromPDF(f, fileHeader.Size)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, doc)
}

type urlParseRequest struct {
	URL string `json:"url"`
}

// ParseURL handles POST /api/parse/url
func (h *PaperHandler) ParseURL(c *gin.Context) {
	var req urlParseRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.URL) == "" {
		HandleError(c, domain.ErrInvalidInput)
		return
	}
	doc, err := h.papers.FromURL(c.Request.Context(), req.URL)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, doc)
}
