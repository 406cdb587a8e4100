package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"paperbuddy/internal/domain"
	"paperbuddy/internal/extract"
	"paperbuddy/internal/service"
	"paperbuddy/mocks"
)

const testMaxPDFBytes = 10 << 20

func TestPaperService_FromText(t *testing.T) {
	svc := service.NewPaperService(nil, nil, testMaxPDFBytes)

	doc := svc.FromText("Deep Residual Learning for Image Recognition\nKaiming He, Xiangyu Zhang\nAbstract: Deeper networks are harder to train.")

	require.NotNil(t, doc)
	assert.Equal(t, "Deep Residual Learning for Image Recognition", doc.Title)
	assert.Equal(t, []string{"Kaiming He", "Xiangyu Zhang"}, doc.Authors)
}

func TestPaperService_FromPDF(t *testing.T) {
	extractor := new(mocks.MockTextExtractor)
	extractor.On("ExtractText", mock.Anything).Return(
		"A Study of Caching in Distributed Systems\nJane Smith, Wei Chen\nAbstract: Caching reduces latency.", nil)

	svc := service.NewPaperService(extractor, nil, testMaxPDFBytes)
	doc, err := svc.FromPDF(bytes.NewReader([]byte("%PDF-1.4")), 8)

	require.NoError(t, err)
	assert.Equal(t, "A Study of Caching in Distributed Systems", doc.Title)
	extractor.AssertExpectations(t)
}

func TestPaperService_FromPDF_TooLarge(t *testing.T) {
	extractor := new(mocks.MockTextExtractor)

	svc := service.NewPaperService(extractor, nil, testMaxPDFBytes)
	doc, err := svc.FromPDF(bytes.NewReader(nil), testMaxPDFBytes+1)

	assert.Nil(t, doc)
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
	extractor.AssertNotCalled(t, "ExtractText", mock.Anything)
}

func TestPaperService_FromPDF_NoText(t *testing.T) {
	extractor := new(mocks.MockTextExtractor)
	extractor.On("ExtractText", mock.Anything).Return("   \n\n  ", nil)

	svc := service.NewPaperService(extractor, nil, testMaxPDFBytes)
	doc, err := svc.FromPDF(bytes.NewReader([]byte("%PDF-1.4")), 8)

	assert.Nil(t, doc)
	assert.ErrorIs(t, err, domain.ErrEmptyDocument)
}

func TestPaperService_FromPDF_ExtractorError(t *testing.T) {
	extractor := new(mocks.MockTextExtractor)
	extractor.On("ExtractText", mock.Anything).Return("", errors.New("damaged xref table"))

	svc := service.NewPaperService(extractor, nil, testMaxPDFBytes)
	doc, err := svc.FromPDF(bytes.NewReader([]byte("%PDF-1.4")), 8)

	assert.Nil(t, doc)
	assert.ErrorContains(t, err, "damaged xref table")
}

func TestPaperService_FromManual_AppliesDefaults(t *testing.T) {
	svc := service.NewPaperService(nil, nil, testMaxPDFBytes)

	doc := svc.FromManual(&domain.Document{Title: "  ", Authors: nil, Abstract: ""})

	assert.Equal(t, extract.PlaceholderTitle, doc.Title)
	assert.Equal(t, []string{extract.PlaceholderAuthor}, doc.Authors)
	assert.Equal(t, extract.PlaceholderAbstract, doc.Abstract)
}

func TestPaperService_FromURL(t *testing.T) {
	fetcher := new(mocks.MockMetadataFetcher)
	fetcher.On("Fetch", mock.Anything, "https://arxiv.org/abs/1706.03762").Return(&domain.Document{
		Title:    "Attention Is All You Need",
		Authors:  []string{"Ashish Vaswani"},
		Abstract: "",
	}, nil)

	svc := service.NewPaperService(nil, fetcher, testMaxPDFBytes)
	doc, err := svc.FromURL(context.Background(), "https://arxiv.org/abs/1706.03762")

	require.NoError(t, err)
	assert.Equal(t, "Attention Is All You Need", doc.Title)
	// Missing fields fall back to placeholders.
	assert.Equal(t, extract.PlaceholderAbstract, doc.Abstract)
	fetcher.AssertExpectations(t)
}

func TestPaperService_FromURL_Unsupported(t *testing.T) {
	fetcher := new(mocks.MockMetadataFetcher)
	fetcher.On("Fetch", mock.Anything, "https://example.com/paper.pdf").Return(nil, domain.ErrUnsupportedPaperURL)

	svc := service.NewPaperService(nil, fetcher, testMaxPDFBytes)
	doc, err := svc.FromURL(context.Background(), "https://example.com/paper.pdf")

	assert.Nil(t, doc)
	assert.ErrorIs(t, err, domain.ErrUnsupportedPaperURL)
}
