package services

import (
	"context"

	"github.com/cequiv/currency_equivalences_app/internal/core/domain"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByID retrieves a specific currency.
	GetCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error)

	// ListCurrencies retrieves all currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// ListCurrenciesWithEquivalences retrieves currencies that have facts.
	ListCurrenciesWithEquivalences(ctx context.Context) ([]domain.Currency, error)
}

// CurrencySeederSvc defines the static-data bootstrap operation.
type CurrencySeederSvc interface {
	// EnsureDefaultCurrencies idempotently registers the default currency
	// list. Existing currencies are left untouched.
	EnsureDefaultCurrencies(ctx context.Context) error
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencySeederSvc
}
