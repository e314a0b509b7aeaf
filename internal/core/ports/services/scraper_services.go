package services

import (
	"context"

	"github.com/PuerkitoBio/goquery"
)

// PageFetcher retrieves a URL and exposes it as a traversable document.
// The production implementation wraps an HTTP client; tests substitute an
// in-memory fetcher built from HTML strings.
type PageFetcher interface {
	Fetch(ctx context.Context, pageURL string) (*goquery.Document, error)
}

// ProgressFunc is invoked once per successfully ingested (year, month)
// pair with the number of rows written for that period. A nil callback
// never alters ingestion behavior.
type ProgressFunc func(year, month, count int)

// ScraperSvc walks the source site's index pages and ingests the monthly
// equivalence tables they link to. All operations return the number of
// rows written.
type ScraperSvc interface {
	// ScrapeCurrentYear scans the current-year index page, both its table
	// rows and its free-standing equivalence anchors.
	ScrapeCurrentYear(ctx context.Context, indexURL string, progress ProgressFunc) (int, error)

	// ScrapeHistoricalYear scans the historical index for the rows
	// belonging to targetYear.
	ScrapeHistoricalYear(ctx context.Context, indexURL string, targetYear int, progress ProgressFunc) (int, error)

	// ScrapeHistorical scans the historical index for every year inside
	// the supported range.
	ScrapeHistorical(ctx context.Context, indexURL string, progress ProgressFunc) (int, error)

	// ScrapeYearRange ingests an inclusive year range, dispatching each
	// year to the current or historical index as appropriate. A range
	// whose start exceeds its end fails before any fetch.
	ScrapeYearRange(ctx context.Context, fromYear, toYear int, progress ProgressFunc) (int, error)

	// ScrapeYear ingests a single year (current or historical).
	ScrapeYear(ctx context.Context, year int, progress ProgressFunc) (int, error)

	// ScrapeAll ingests the current year plus the full historical range.
	ScrapeAll(ctx context.Context, progress ProgressFunc) (int, error)

	// IngestPage fetches one month page and persists every valid row.
	IngestPage(ctx context.Context, pageURL string, year, month int) (int, error)
}
