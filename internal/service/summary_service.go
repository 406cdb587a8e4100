package service

import (
	"context"
	"log"

	"paperbuddy/internal/domain"
	"paperbuddy/internal/port"
	"paperbuddy/internal/summarize"
)

// SummaryService produces kid-friendly summaries. Summarize is total: every
// call returns a schema-complete summary, worst case a canned fallback with
// an advisory flag. Backend failures are logged, never surfaced.
type SummaryService struct {
	backend port.SummaryBackend // nil when no backend credential is configured
}

// NewSummaryService creates a SummaryService. Pass a nil backend to run in
// fallback-only mode.
func NewSummaryService(backend port.SummaryBackend) *SummaryService {
	return &SummaryService{backend: backend}
}

// Summarize builds the prompt for doc, calls the backend, and repairs the
// reply into a complete summary. Without a backend, or after the backend
// exhausts its retries, the topic-keyed fallback is returned instead.
func (s *SummaryService) Summarize(ctx context.Context, doc *domain.Document, topic domain.CourseTopic) *domain.Summary {
	if s.backend == nil {
		log.Printf("service.SummaryService: no backend configured, using fallback for topic %s", topic)
		return summarize.Fallback(topic)
	}

	prompt := summarize.BuildSummaryPrompt(doc, topic)
	raw, err := s.backend.Complete(ctx, prompt)
	if err != nil {
		log.Printf("service.SummaryService: backend failed, using fallback: %v", err)
		return summarize.Fallback(topic)
	}
	return summarize.Repair(raw)
}
