package repositories

import (
	"context"

	"github.com/cequiv/currency_equivalences_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EquivalenceReader defines read operations for equivalence facts.
type EquivalenceReader interface {
	// FindByCurrencyAndPeriod retrieves the fact for one (currency, year,
	// month) triple, or apperrors.ErrNotFound.
	FindByCurrencyAndPeriod(ctx context.Context, currencyID string, year, month int) (*domain.Equivalence, error)

	// AvailableYears lists the distinct years with data, newest first.
	AvailableYears(ctx context.Context) ([]int, error)

	// AvailableMonths lists the distinct months with data across all
	// years, ascending.
	AvailableMonths(ctx context.Context) ([]int, error)

	// MonthsByYear groups the available months (ascending) under each year.
	MonthsByYear(ctx context.Context) (map[int][]int, error)

	// YearExists reports whether at least one fact exists for the year.
	YearExists(ctx context.Context, year int) (bool, error)

	// MonthExists reports whether at least one fact exists for the period.
	MonthExists(ctx context.Context, year, month int) (bool, error)

	// MissingMonths lists the months 1-12 without data for the year.
	MissingMonths(ctx context.Context, year int) ([]int, error)
}

// EquivalenceWriter defines write operations for equivalence facts.
type EquivalenceWriter interface {
	// RecordFact resolves the currency identified by the (country, name)
	// pair, creating it when missing, and upserts the fact for (currency,
	// year, month), all within a single transaction. The resolved currency
	// is returned. When the triple already exists its value is
	// overwritten; last write wins.
	RecordFact(ctx context.Context, country, name string, equivalence decimal.Decimal, year, month int, actor string) (*domain.Currency, error)
}

// EquivalenceRepositoryFacade combines all equivalence-related repository interfaces
type EquivalenceRepositoryFacade interface {
	EquivalenceReader
	EquivalenceWriter
}

// EquivalenceRepositoryWithTx extends EquivalenceRepositoryFacade with transaction capabilities
type EquivalenceRepositoryWithTx interface {
	EquivalenceRepositoryFacade
	TransactionManager
}
