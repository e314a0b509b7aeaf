package services

import (
	"context"

	portsrepo "github.com/cequiv/currency_equivalences_app/internal/core/ports/repositories"
	portssvc "github.com/cequiv/currency_equivalences_app/internal/core/ports/services"
	"github.com/cequiv/currency_equivalences_app/internal/dto"
	"github.com/cequiv/currency_equivalences_app/internal/scrape"
)

// DataService aggregates the read side behind the main view: which
// currencies have facts and which periods can be queried.
type DataService struct {
	currencyRepo    portsrepo.CurrencyRepositoryFacade
	equivalenceRepo portsrepo.EquivalenceRepositoryFacade
}

func NewDataService(
	currencyRepo portsrepo.CurrencyRepositoryFacade,
	equivalenceRepo portsrepo.EquivalenceRepositoryFacade,
) *DataService {
	return &DataService{
		currencyRepo:    currencyRepo,
		equivalenceRepo: equivalenceRepo,
	}
}

var _ portssvc.CurrencyDataSvc = (*DataService)(nil)

// IndexData collects the currencies with recorded facts plus the years
// and months available for querying.
func (s *DataService) IndexData(ctx context.Context) (*dto.IndexData, error) {
	currencies, err := s.currencyRepo.ListCurrenciesWithEquivalences(ctx)
	if err != nil {
		return nil, err
	}

	years, err := s.equivalenceRepo.AvailableYears(ctx)
	if err != nil {
		return nil, err
	}

	months, err := s.equivalenceRepo.AvailableMonths(ctx)
	if err != nil {
		return nil, err
	}

	monthsByYear, err := s.equivalenceRepo.MonthsByYear(ctx)
	if err != nil {
		return nil, err
	}

	monthNames := make(map[int]string, len(months))
	for _, m := range months {
		monthNames[m] = scrape.MonthName(m)
	}

	return &dto.IndexData{
		Currencies:   dto.ToListCurrencyResponse(currencies),
		Years:        years,
		Months:       months,
		MonthNames:   monthNames,
		MonthsByYear: monthsByYear,
	}, nil
}
