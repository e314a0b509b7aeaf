package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/cequiv/currency_equivalences_app/internal/apperrors"
	portssvc "github.com/cequiv/currency_equivalences_app/internal/core/ports/services"
	"github.com/cequiv/currency_equivalences_app/internal/dto"
	"github.com/cequiv/currency_equivalences_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// scrapeHandler triggers ingestion sweeps over the source site.
type scrapeHandler struct {
	scraperService  portssvc.ScraperSvc
	currentIndexURL string
}

func newScrapeHandler(ss portssvc.ScraperSvc, currentIndexURL string) *scrapeHandler {
	return &scrapeHandler{scraperService: ss, currentIndexURL: currentIndexURL}
}

func (h *scrapeHandler) triggerScrape(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ScrapeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for scrape", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	var (
		mu      sync.Mutex
		periods []dto.PeriodCount
	)
	progress := func(year, month, count int) {
		mu.Lock()
		periods = append(periods, dto.PeriodCount{Year: year, Month: month, Count: count})
		mu.Unlock()
	}

	ctx := c.Request.Context()
	var (
		total int
		err   error
	)
	switch req.Mode {
	case "current":
		total, err = h.scraperService.ScrapeCurrentYear(ctx, h.currentIndexURL, progress)
	case "year":
		total, err = h.scraperService.ScrapeYear(ctx, req.Year, progress)
	case "range":
		total, err = h.scraperService.ScrapeYearRange(ctx, req.FromYear, req.ToYear, progress)
	case "all":
		total, err = h.scraperService.ScrapeAll(ctx, progress)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Scrape run failed", slog.String("mode", req.Mode), slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Scrape run failed: " + err.Error()})
		return
	}

	logger.Info("Scrape run completed", slog.String("mode", req.Mode), slog.Int("rows", total))
	c.JSON(http.StatusOK, dto.ScrapeResponse{RowsProcessed: total, Periods: periods})
}
