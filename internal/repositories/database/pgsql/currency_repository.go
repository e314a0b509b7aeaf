package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cequiv/currency_equivalences_app/internal/apperrors"
	"github.com/cequiv/currency_equivalences_app/internal/core/domain"
	portsrepo "github.com/cequiv/currency_equivalences_app/internal/core/ports/repositories"
	"github.com/cequiv/currency_equivalences_app/internal/models"
	"github.com/cequiv/currency_equivalences_app/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const currencyColumns = `currency_id, country, name, equivalence, created_at, created_by, last_updated_at, last_updated_by`

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryFacade {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

// FindOrCreateCurrency resolves the currency keyed by (country, name),
// inserting it when missing. The insert races safely against concurrent
// ingestion: ON CONFLICT DO NOTHING followed by a re-select.
func (r *PgxCurrencyRepository) FindOrCreateCurrency(ctx context.Context, country, name string, defaultEquivalence decimal.Decimal, actor string) (*domain.Currency, error) {
	return r.findOrCreateCurrency(ctx, r.Pool, country, name, defaultEquivalence, actor)
}

// FindOrCreateCurrencyInTx is FindOrCreateCurrency running on an open
// transaction.
func (r *PgxCurrencyRepository) FindOrCreateCurrencyInTx(ctx context.Context, tx pgx.Tx, country, name string, defaultEquivalence decimal.Decimal, actor string) (*domain.Currency, error) {
	return r.findOrCreateCurrency(ctx, tx, country, name, defaultEquivalence, actor)
}

func (r *PgxCurrencyRepository) findOrCreateCurrency(ctx context.Context, q querier, country, name string, defaultEquivalence decimal.Decimal, actor string) (*domain.Currency, error) {
	now := time.Now()
	candidate := mapping.ToModelCurrency(domain.Currency{
		CurrencyID:  uuid.NewString(),
		Country:     country,
		Name:        name,
		Equivalence: defaultEquivalence,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	})

	insert := `
		INSERT INTO currencies (` + currencyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (country, name) DO NOTHING
		RETURNING ` + currencyColumns + `;
	`

	var modelCurr models.Currency
	err := q.QueryRow(ctx, insert,
		candidate.CurrencyID, candidate.Country, candidate.Name, candidate.Equivalence,
		candidate.CreatedAt, candidate.CreatedBy, candidate.LastUpdatedAt, candidate.LastUpdatedBy,
	).Scan(
		&modelCurr.CurrencyID,
		&modelCurr.Country,
		&modelCurr.Name,
		&modelCurr.Equivalence,
		&modelCurr.CreatedAt,
		&modelCurr.CreatedBy,
		&modelCurr.LastUpdatedAt,
		&modelCurr.LastUpdatedBy,
	)
	if err == nil {
		domainCurr := mapping.ToDomainCurrency(modelCurr)
		return &domainCurr, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to create currency %q/%q: %w", country, name, err)
	}

	// Conflict path: the pair already exists, fetch it.
	return r.findByCountryAndName(ctx, q, country, name)
}

func (r *PgxCurrencyRepository) findByCountryAndName(ctx context.Context, q querier, country, name string) (*domain.Currency, error) {
	query := `
		SELECT ` + currencyColumns + `
		FROM currencies
		WHERE country = $1 AND name = $2;
	`
	var modelCurr models.Currency
	err := q.QueryRow(ctx, query, country, name).Scan(
		&modelCurr.CurrencyID,
		&modelCurr.Country,
		&modelCurr.Name,
		&modelCurr.Equivalence,
		&modelCurr.CreatedAt,
		&modelCurr.CreatedBy,
		&modelCurr.LastUpdatedAt,
		&modelCurr.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency %q/%q: %w", country, name, err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// FindCurrencyByID retrieves a currency by its ID.
func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error) {
	query := `
		SELECT ` + currencyColumns + `
		FROM currencies
		WHERE currency_id = $1;
	`
	var modelCurr models.Currency
	err := r.Pool.QueryRow(ctx, query, currencyID).Scan(
		&modelCurr.CurrencyID,
		&modelCurr.Country,
		&modelCurr.Name,
		&modelCurr.Equivalence,
		&modelCurr.CreatedAt,
		&modelCurr.CreatedBy,
		&modelCurr.LastUpdatedAt,
		&modelCurr.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency by id %s: %w", currencyID, err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// ListCurrencies retrieves all currencies ordered by country.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `
		SELECT ` + currencyColumns + `
		FROM currencies
		ORDER BY country, name;
	`
	return r.queryCurrencies(ctx, query)
}

// ListCurrenciesWithEquivalences retrieves the currencies having at least
// one recorded equivalence fact, ordered by country.
func (r *PgxCurrencyRepository) ListCurrenciesWithEquivalences(ctx context.Context) ([]domain.Currency, error) {
	query := `
		SELECT ` + currencyColumns + `
		FROM currencies
		WHERE currency_id IN (SELECT DISTINCT currency_id FROM currency_equivalences)
		ORDER BY country, name;
	`
	return r.queryCurrencies(ctx, query)
}

func (r *PgxCurrencyRepository) queryCurrencies(ctx context.Context, query string) ([]domain.Currency, error) {
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		var currency models.Currency
		err := row.Scan(
			&currency.CurrencyID,
			&currency.Country,
			&currency.Name,
			&currency.Equivalence,
			&currency.CreatedAt,
			&currency.CreatedBy,
			&currency.LastUpdatedAt,
			&currency.LastUpdatedBy,
		)
		return currency, err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Currency{}, nil
		}
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}
