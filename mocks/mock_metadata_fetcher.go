package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"paperbuddy/internal/domain"
)

// MockMetadataFetcher is a mock implementation of port.MetadataFetcher.
type MockMetadataFetcher struct {
	mock.Mock
}

func (m *MockMetadataFetcher) Fetch(ctx context.Context, rawURL string) (*domain.Document, error) {
	args := m.Called(ctx, rawURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}
