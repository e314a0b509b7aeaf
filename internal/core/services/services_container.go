package services

import (
	"log/slog"

	portsrepo "github.com/cequiv/currency_equivalences_app/internal/core/ports/repositories"
	portssvc "github.com/cequiv/currency_equivalences_app/internal/core/ports/services"
	"github.com/cequiv/currency_equivalences_app/pkg/config"
)

// NewServiceContainer constructs every application service against the
// given repository provider and page fetcher.
func NewServiceContainer(
	cfg *config.Config,
	repos *portsrepo.RepositoryProvider,
	fetcher portssvc.PageFetcher,
	logger *slog.Logger,
) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Currency:   NewCurrencyService(repos.CurrencyRepo),
		Scraper:    NewScrapingService(cfg, fetcher, repos.EquivalenceRepo, logger),
		Conversion: NewConversionService(repos.CurrencyRepo, repos.EquivalenceRepo),
		Data:       NewDataService(repos.CurrencyRepo, repos.EquivalenceRepo),
	}
}
