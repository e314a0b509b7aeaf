package repositories

import (
	"context"

	"github.com/cequiv/currency_equivalences_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByID retrieves a specific currency by its ID.
	FindCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error)

	// ListCurrencies retrieves all currencies ordered by country.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// ListCurrenciesWithEquivalences retrieves the currencies that have at
	// least one equivalence fact recorded.
	ListCurrenciesWithEquivalences(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency data
type CurrencyWriter interface {
	// FindOrCreateCurrency resolves the currency identified by the
	// (country, name) pair, creating it atomically when missing. A newly
	// created currency has its fallback equivalence seeded with
	// defaultEquivalence; an existing one is returned unmodified.
	FindOrCreateCurrency(ctx context.Context, country, name string, defaultEquivalence decimal.Decimal, actor string) (*domain.Currency, error)

	// FindOrCreateCurrencyInTx is FindOrCreateCurrency executed on an
	// already-open transaction, for callers composing multi-statement
	// writes.
	FindOrCreateCurrencyInTx(ctx context.Context, tx pgx.Tx, country, name string, defaultEquivalence decimal.Decimal, actor string) (*domain.Currency, error)
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
