package mocks

import (
	"io"

	"github.com/stretchr/testify/mock"
)

// MockTextExtractor is a mock implementation of port.TextExtractor.
type MockTextExtractor struct {
	mock.Mock
}

func (m *MockTextExtractor) ExtractText(r io.ReadSeeker) (string, error) {
	args := m.Called(r)
	return args.String(0), args.Error(1)
}
