package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"paperbuddy/internal/domain"
	"paperbuddy/internal/extract"
	"paperbuddy/internal/port"
)

// PaperService turns the supported ingestion inputs (raw text, uploaded
// PDF, manual JSON, paper URL) into normalized documents.
type PaperService struct {
	extractor   port.TextExtractor
	fetcher     port.MetadataFetcher
	maxPDFBytes int64
}

// NewPaperService creates a PaperService.
func NewPaperService(extractor port.TextExtractor, fetcher port.MetadataFetcher, maxPDFBytes int64) *PaperService {
	return &PaperService{
		extractor:   extractor,
		fetcher:     fetcher,
		maxPDFBytes: maxPDFBytes,
	}
}

// FromText extracts a document model from flat paper text. Never fails.
func (s *PaperService) FromText(text string) *domain.Document {
	return extract.Extract(text)
}

// FromPDF extracts text from an uploaded PDF and parses its structure.
func (s *PaperService) FromPDF(r io.ReadSeeker, size int64) (*domain.Document, error) {
	if size > s.maxPDFBytes {
		return nil, domain.ErrFileTooLarge
	}
	text, err := s.extractor.ExtractText(r)
	if err != nil {
		return nil, fmt.Errorf("extracting PDF text: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyDocument
	}
	return extract.Extract(text), nil
}

// FromManual normalizes a caller-supplied document through the same
// defaulting rules extraction uses.
func (s *PaperService) FromManual(doc *domain.Document) *domain.Document {
	extract.ApplyDefaults(doc)
	return doc
}

// FromURL resolves a paper URL through the metadata fetcher and normalizes
// the result.
func (s *PaperService) FromURL(ctx context.Context, rawURL string) (*domain.Document, error) {
	doc, err := s.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	extract.ApplyDefaults(doc)
	return doc, nil
}
