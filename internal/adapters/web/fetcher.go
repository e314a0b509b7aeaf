// Package web adapts the HTTP/DOM collaborator behind the PageFetcher
// port: it fetches a URL and hands back a goquery document the pipeline
// can traverse.
package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	portssvc "github.com/cequiv/currency_equivalences_app/internal/core/ports/services"
)

const defaultUserAgent = "currency-equivalences-bot/1.0"

// GoqueryFetcher fetches pages over HTTP and parses them with goquery.
type GoqueryFetcher struct {
	client    *http.Client
	userAgent string
}

// NewGoqueryFetcher creates a fetcher with the given request timeout.
func NewGoqueryFetcher(timeout time.Duration) *GoqueryFetcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &GoqueryFetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
	}
}

var _ portssvc.PageFetcher = (*GoqueryFetcher)(nil)

// Fetch retrieves pageURL and parses the response body into a document.
// Any transport or parse failure surfaces as an error; callers decide
// whether it aborts a sweep or only skips a page.
func (f *GoqueryFetcher) Fetch(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", pageURL, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, pageURL)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document from %s: %w", pageURL, err)
	}
	return doc, nil
}
