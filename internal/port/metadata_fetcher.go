package port

import (
	"context"

	"paperbuddy/internal/domain"
)

// MetadataFetcher resolves a paper URL to title/authors/abstract via a
// remote metadata API.
type MetadataFetcher interface {
	Fetch(ctx context.Context, rawURL string) (*domain.Document, error)
}
