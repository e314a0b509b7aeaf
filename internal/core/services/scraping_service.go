package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cequiv/currency_equivalences_app/internal/apperrors"
	portsrepo "github.com/cequiv/currency_equivalences_app/internal/core/ports/repositories"
	portssvc "github.com/cequiv/currency_equivalences_app/internal/core/ports/services"
	"github.com/cequiv/currency_equivalences_app/internal/scrape"
	"github.com/cequiv/currency_equivalences_app/pkg/config"
	"github.com/shopspring/decimal"
)

// scraperActor is recorded in the audit fields of every ingestion write.
const scraperActor = "scraper"

// ingestionKeyword marks free-standing anchors that link to month pages.
const ingestionKeyword = "equivalencias"

var yearCellPattern = regexp.MustCompile(`^\d{4}$`)

// ScrapingService walks the source site's index pages, extracts the
// monthly equivalence tables they link to, and persists the facts. Fetch
// failures on a month page are isolated: the page contributes zero rows
// and the sweep continues. Only an unreachable index page is fatal.
type ScrapingService struct {
	fetcher         portssvc.PageFetcher
	equivalenceRepo portsrepo.EquivalenceRepositoryFacade

	filter    scrape.RowFilter
	countries scrape.CountryResolver

	baseURL            string
	currentIndexURL    string
	historicalIndexURL string
	currentYear        int
	historicalFrom     int
	historicalTo       int

	logger *slog.Logger
}

// NewScrapingService creates a ScrapingService wired to the configured
// source site.
func NewScrapingService(
	cfg *config.Config,
	fetcher portssvc.PageFetcher,
	equivalenceRepo portsrepo.EquivalenceRepositoryFacade,
	logger *slog.Logger,
) *ScrapingService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScrapingService{
		fetcher:            fetcher,
		equivalenceRepo:    equivalenceRepo,
		filter:             scrape.NewRowFilter(nil, cfg.MaxEquivalence),
		countries:          scrape.NewCountryResolver(nil),
		baseURL:            cfg.ScraperBaseURL,
		currentIndexURL:    cfg.CurrentIndexURL,
		historicalIndexURL: cfg.HistoricalIndexURL,
		currentYear:        cfg.CurrentYear,
		historicalFrom:     cfg.HistoricalFromYear,
		historicalTo:       cfg.HistoricalToYear,
		logger:             logger,
	}
}

var _ portssvc.ScraperSvc = (*ScrapingService)(nil)

// ScrapeCurrentYear scans the current-year index page two ways and merges
// the results: rows containing a cell with the target year, and
// free-standing equivalence anchors whose URL names a month of that year.
// Duplicate discoveries are ingested independently; the upsert makes the
// redundant work harmless.
func (s *ScrapingService) ScrapeCurrentYear(ctx context.Context, indexURL string, progress portssvc.ProgressFunc) (int, error) {
	doc, err := s.fetcher.Fetch(ctx, indexURL)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch current-year index %s: %w", indexURL, err)
	}

	total := 0

	rows := doc.Find("table tr")
	for i := 0; i < rows.Length(); i++ {
		row := rows.Eq(i)
		if !rowMentionsYear(row, s.currentYear) {
			continue
		}
		anchors := row.Find("a")
		for j := 0; j < anchors.Length(); j++ {
			anchor := anchors.Eq(j)
			href, _ := anchor.Attr("href")
			month, ok := scrape.MonthFromText(anchor.Text())
			if !ok || href == "" {
				continue
			}
			total += s.ingestTarget(ctx, href, s.currentYear, month, progress)
		}
	}

	anchors := doc.Find("a")
	for i := 0; i < anchors.Length(); i++ {
		anchor := anchors.Eq(i)
		href, _ := anchor.Attr("href")
		if href == "" || !strings.Contains(href, ingestionKeyword) {
			continue
		}
		month, ok := scrape.MonthFromText(anchor.Text())
		if !ok {
			continue
		}
		urlYear, _, ok := scrape.YearMonthFromURL(href)
		if !ok || urlYear != s.currentYear {
			continue
		}
		total += s.ingestTarget(ctx, href, s.currentYear, month, progress)
	}

	return total, nil
}

// ScrapeHistoricalYear scans the historical index for the rows whose
// first cell is exactly targetYear.
func (s *ScrapingService) ScrapeHistoricalYear(ctx context.Context, indexURL string, targetYear int, progress portssvc.ProgressFunc) (int, error) {
	doc, err := s.fetcher.Fetch(ctx, indexURL)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch historical index %s: %w", indexURL, err)
	}

	total := 0
	rows := doc.Find("table tr")
	for i := 0; i < rows.Length(); i++ {
		row := rows.Eq(i)
		year, ok := firstCellYear(row)
		if !ok || year != targetYear {
			continue
		}
		total += s.walkYearRow(ctx, row, year, progress)
	}
	return total, nil
}

// ScrapeHistorical accumulates every row of the historical index whose
// first-cell year falls inside the supported range.
func (s *ScrapingService) ScrapeHistorical(ctx context.Context, indexURL string, progress portssvc.ProgressFunc) (int, error) {
	doc, err := s.fetcher.Fetch(ctx, indexURL)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch historical index %s: %w", indexURL, err)
	}

	total := 0
	rows := doc.Find("table tr")
	for i := 0; i < rows.Length(); i++ {
		row := rows.Eq(i)
		year, ok := firstCellYear(row)
		if !ok || year < s.historicalFrom || year > s.historicalTo {
			continue
		}
		total += s.walkYearRow(ctx, row, year, progress)
	}
	return total, nil
}

// ScrapeYear ingests one year from whichever index serves it.
func (s *ScrapingService) ScrapeYear(ctx context.Context, year int, progress portssvc.ProgressFunc) (int, error) {
	if year == s.currentYear {
		return s.ScrapeCurrentYear(ctx, s.currentIndexURL, progress)
	}
	return s.ScrapeHistoricalYear(ctx, s.historicalIndexURL, year, progress)
}

// ScrapeYearRange ingests an inclusive year range. An inverted range is a
// configuration error reported before any fetch happens.
func (s *ScrapingService) ScrapeYearRange(ctx context.Context, fromYear, toYear int, progress portssvc.ProgressFunc) (int, error) {
	if fromYear > toYear {
		return 0, fmt.Errorf("%w: from-year %d exceeds to-year %d", apperrors.ErrValidation, fromYear, toYear)
	}

	total := 0
	for year := fromYear; year <= toYear; year++ {
		count, err := s.ScrapeYear(ctx, year, progress)
		if err != nil {
			return total, err
		}
		total += count
	}
	return total, nil
}

// ScrapeAll ingests the current year plus the whole historical range.
func (s *ScrapingService) ScrapeAll(ctx context.Context, progress portssvc.ProgressFunc) (int, error) {
	total, err := s.ScrapeCurrentYear(ctx, s.currentIndexURL, progress)
	if err != nil {
		return total, err
	}

	historical, err := s.ScrapeHistorical(ctx, s.historicalIndexURL, progress)
	total += historical
	if err != nil {
		return total, err
	}
	return total, nil
}

// IngestPage fetches one month page and runs every table row with at
// least two cells through the classification pipeline. Returns the number
// of rows persisted.
func (s *ScrapingService) IngestPage(ctx context.Context, pageURL string, year, month int) (int, error) {
	doc, err := s.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch equivalence page %s: %w", pageURL, err)
	}

	count := 0
	rows := doc.Find("table tr")
	for i := 0; i < rows.Length(); i++ {
		cells := rows.Eq(i).Find("td")
		if cells.Length() < 2 {
			continue
		}
		if s.ingestRow(ctx, cells, year, month) {
			count++
		}
	}
	return count, nil
}

// walkYearRow inspects the anchors in every cell after the year cell,
// preferring a month named in the anchor text and falling back to a
// period parsed from the URL when its year matches the row's year.
func (s *ScrapingService) walkYearRow(ctx context.Context, row *goquery.Selection, year int, progress portssvc.ProgressFunc) int {
	count := 0
	cells := row.Find("td")
	for i := 1; i < cells.Length(); i++ {
		anchors := cells.Eq(i).Find("a")
		for j := 0; j < anchors.Length(); j++ {
			anchor := anchors.Eq(j)
			href, _ := anchor.Attr("href")
			if href == "" {
				continue
			}

			if month, ok := scrape.MonthFromText(anchor.Text()); ok {
				count += s.ingestTarget(ctx, href, year, month, progress)
				continue
			}

			urlYear, urlMonth, ok := scrape.YearMonthFromURL(href)
			if ok && urlYear == year {
				count += s.ingestTarget(ctx, href, year, urlMonth, progress)
			}
		}
	}
	return count
}

// ingestTarget resolves the link, ingests the month page behind it, and
// reports progress. A failing page is logged and contributes zero rows;
// it never aborts the sweep.
func (s *ScrapingService) ingestTarget(ctx context.Context, href string, year, month int, progress portssvc.ProgressFunc) int {
	pageURL := scrape.AbsoluteURL(s.baseURL, href)

	count, err := s.IngestPage(ctx, pageURL, year, month)
	if err != nil {
		s.logger.Warn("equivalence page skipped",
			slog.String("url", pageURL),
			slog.Int("year", year),
			slog.Int("month", month),
			slog.String("error", err.Error()),
		)
		return 0
	}

	if count > 0 && progress != nil {
		progress(year, month, count)
	}
	return count
}

// ingestRow classifies, validates, parses, and persists one table row.
// Every rejection is a silent skip; persistence failures are logged and
// skipped so a single bad row cannot poison the rest of the page.
func (s *ScrapingService) ingestRow(ctx context.Context, cells *goquery.Selection, year, month int) bool {
	data, ok := scrape.ExtractRow(cells)
	if !ok || !s.filter.ValidRow(data) {
		return false
	}

	value := scrape.ParseAmount(data.RawEquivalence)
	if !s.filter.PlausibleEquivalence(value) {
		return false
	}

	country := s.countries.Resolve(data.Country, data.Currency)
	equivalence := decimal.NewFromFloat(value).Round(6)

	if _, err := s.equivalenceRepo.RecordFact(ctx, country, data.Currency, equivalence, year, month, scraperActor); err != nil {
		s.logger.Warn("row skipped: could not record equivalence",
			slog.String("country", country),
			slog.String("currency", data.Currency),
			slog.Int("year", year),
			slog.Int("month", month),
			slog.String("error", err.Error()),
		)
		return false
	}
	return true
}

// rowMentionsYear reports whether any cell in the row holds exactly the
// 4-digit year.
func rowMentionsYear(row *goquery.Selection, year int) bool {
	target := strconv.Itoa(year)
	cells := row.Find("td")
	for i := 0; i < cells.Length(); i++ {
		text := strings.TrimSpace(cells.Eq(i).Text())
		if yearCellPattern.MatchString(text) && text == target {
			return true
		}
	}
	return false
}

// firstCellYear reads the row's first cell as a 4-digit year.
func firstCellYear(row *goquery.Selection) (int, bool) {
	cells := row.Find("td")
	if cells.Length() == 0 {
		return 0, false
	}
	text := strings.TrimSpace(cells.Eq(0).Text())
	if !yearCellPattern.MatchString(text) {
		return 0, false
	}
	year, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}
	return year, true
}
