// Package metadata resolves paper URLs to title/authors/abstract via remote
// metadata APIs. Currently only arXiv is supported; the extracted document
// carries no sections, so downstream defaulting supplies a placeholder one.
package metadata

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"paperbuddy/internal/domain"
)

const arxivAPI = "https://export.arxiv.org/api/query"

// arXiv IDs in abs/pdf URLs: new-style 2301.07041 or old-style cs/0112017,
// with an optional version suffix.
var arxivIDRe = regexp.MustCompile(`(?i)arxiv\.org/(?:abs|pdf)/([a-z-]+(?:\.[a-z]{2})?/\d{7}|\d{4}\.\d{4,5})(?:v\d+)?`)

// ArxivFetcher implements port.MetadataFetcher using the arXiv export API.
type ArxivFetcher struct {
	endpoint string
	client   *http.Client
}

// NewArxivFetcher creates a fetcher with the given per-request timeout.
func NewArxivFetcher(timeout time.Duration) *ArxivFetcher {
	return &ArxivFetcher{
		endpoint: arxivAPI,
		client:   &http.Client{Timeout: timeout},
	}
}

// NewArxivFetcherWithEndpoint creates a fetcher pointing at a custom API
// endpoint (for testing).
func NewArxivFetcherWithEndpoint(endpoint string, timeout time.Duration) *ArxivFetcher {
	return &ArxivFetcher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// atom feed models for the arXiv export API response.
type arxivFeed struct {
	Entries []arxivEntry `xml:"entry"`
}

type arxivEntry struct {
	Title   string `xml:"title"`
	Summary string `xml:"summary"`
	Authors []struct {
		Name string `xml:"name"`
	} `xml:"author"`
}

// Fetch resolves an arXiv abs/pdf URL to a document model. URLs from other
// hosts yield domain.ErrUnsupportedPaperURL.
func (f *ArxivFetcher) Fetch(ctx context.Context, rawURL string) (*domain.Document, error) {
	m := arxivIDRe.FindStringSubmatch(rawURL)
	if m == nil {
		return nil, domain.ErrUnsupportedPaperURL
	}
	id := m[1]

	reqURL := fmt.Sprintf("%s?id_list=%s&max_results=1", f.endpoint, url.QueryEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMetadataFetch, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: arxiv API status %d", domain.ErrMetadataFetch, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", domain.ErrMetadataFetch, err)
	}

	var feed arxivFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("%w: parsing feed: %v", domain.ErrMetadataFetch, err)
	}
	if len(feed.Entries) == 0 {
		return nil, fmt.Errorf("%w: no entry for id %s", domain.ErrMetadataFetch, id)
	}

	entry := feed.Entries[0]
	authors := make([]string, 0, len(entry.Authors))
	for _, a := range entry.Authors {
		if name := strings.TrimSpace(a.Name); name != "" {
			authors = append(authors, name)
		}
	}

	return &domain.Document{
		Title:    collapseWhitespace(entry.Title),
		Authors:  authors,
		Abstract: collapseWhitespace(entry.Summary),
		Sections: []domain.Section{},
	}, nil
}

// collapseWhitespace flattens the newline-wrapped text arXiv returns.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
