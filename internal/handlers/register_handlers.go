package handlers

import (
	"log/slog"

	portssvc "github.com/cequiv/currency_equivalences_app/internal/core/ports/services"
	"github.com/cequiv/currency_equivalences_app/internal/middleware"
	"github.com/cequiv/currency_equivalences_app/pkg/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	r.GET("/", GetHome)

	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	registerCurrencyRoutes(v1, services.Currency, services.Data)
	registerConversionRoutes(v1, services.Conversion)
	registerScrapeRoutes(v1, cfg, services.Scraper)
}

func registerScrapeRoutes(v1 *gin.RouterGroup, cfg *config.Config, scraper portssvc.ScraperSvc) {
	h := newScrapeHandler(scraper, cfg.CurrentIndexURL)

	scrapeLimiter, err := middleware.NewScrapeLimiter(cfg.ScrapeRateLimit)
	if err != nil {
		slog.Warn("Invalid scrape rate limit, endpoint left unthrottled", slog.String("rate", cfg.ScrapeRateLimit), slog.String("error", err.Error()))
		v1.POST("/scrape", h.triggerScrape)
		return
	}
	v1.POST("/scrape", middleware.RateLimit(scrapeLimiter), h.triggerScrape)
}
