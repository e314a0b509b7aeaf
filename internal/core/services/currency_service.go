package services

import (
	"context"
	"fmt"

	"github.com/cequiv/currency_equivalences_app/internal/core/domain"
	portsrepo "github.com/cequiv/currency_equivalences_app/internal/core/ports/repositories"
	portssvc "github.com/cequiv/currency_equivalences_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

const seederActor = "seeder"

type defaultCurrency struct {
	country     string
	name        string
	equivalence string
}

// defaultCurrencies are the fallback set created on first boot so the
// conversion surface works before the first sweep completes. The rates
// are only defaults; ingestion replaces them with dated facts.
var defaultCurrencies = []defaultCurrency{
	{"Estados Unidos", "Dólar EE.UU.", "1.0000"},
	{"Gran Bretaña", "Libra Esterlina", "1.3546"},
	{"Suiza", "Franco Suizo", "1.0835"},
	{"Japón", "Yen Japonés", "0.0091"},
	{"Canadá", "Dólar Canadiense", "0.7854"},
	{"Australia", "Dólar Australiano", "0.7273"},
	{"China", "Yuan", "0.1567"},
	{"Unión Europea", "Euro", "1.1284"},
	{"México", "Peso Mexicano", "0.0485"},
	{"Brasil", "Real Brasileño", "0.1852"},
}

// CurrencyService exposes the read side of the currency catalog and the
// first-boot seeding of default currencies.
type CurrencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)

// GetCurrencyByID retrieves a single currency by its ID.
func (s *CurrencyService) GetCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error) {
	return s.currencyRepo.FindCurrencyByID(ctx, currencyID)
}

// ListCurrencies retrieves all currencies ordered by country.
func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return s.currencyRepo.ListCurrencies(ctx)
}

// ListCurrenciesWithEquivalences retrieves the currencies that have at
// least one ingested equivalence fact.
func (s *CurrencyService) ListCurrenciesWithEquivalences(ctx context.Context) ([]domain.Currency, error) {
	return s.currencyRepo.ListCurrenciesWithEquivalences(ctx)
}

// EnsureDefaultCurrencies creates any of the default currencies that do
// not exist yet. Existing rows keep their stored rate. Safe to call on
// every boot.
func (s *CurrencyService) EnsureDefaultCurrencies(ctx context.Context) error {
	for _, seed := range defaultCurrencies {
		rate, err := decimal.NewFromString(seed.equivalence)
		if err != nil {
			return fmt.Errorf("invalid default rate for %s: %w", seed.name, err)
		}
		if _, err := s.currencyRepo.FindOrCreateCurrency(ctx, seed.country, seed.name, rate, seederActor); err != nil {
			return fmt.Errorf("failed to seed currency %s: %w", seed.name, err)
		}
	}
	return nil
}
