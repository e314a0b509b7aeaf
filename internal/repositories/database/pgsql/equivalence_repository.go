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

// PgxEquivalenceRepository implements the equivalence repository ports
// using pgxpool. It holds the currency repository so that recording a
// fact can resolve its currency inside the same transaction.
type PgxEquivalenceRepository struct {
	BaseRepository
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// newPgxEquivalenceRepository creates a new repository for equivalence facts.
func newPgxEquivalenceRepository(pool *pgxpool.Pool, currencyRepo portsrepo.CurrencyRepositoryFacade) portsrepo.EquivalenceRepositoryWithTx {
	return &PgxEquivalenceRepository{
		BaseRepository: BaseRepository{Pool: pool},
		currencyRepo:   currencyRepo,
	}
}

var _ portsrepo.EquivalenceRepositoryWithTx = (*PgxEquivalenceRepository)(nil)

// RecordFact resolves the currency keyed by (country, name), creating it
// when missing, and upserts the fact for (currency, year, month). Both
// writes run in one transaction so a failed upsert never strands a
// freshly created currency.
func (r *PgxEquivalenceRepository) RecordFact(ctx context.Context, country, name string, equivalence decimal.Decimal, year, month int, actor string) (*domain.Currency, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	currency, err := r.currencyRepo.FindOrCreateCurrencyInTx(ctx, tx, country, name, equivalence, actor)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	fact := domain.Equivalence{
		EquivalenceID: uuid.NewString(),
		CurrencyID:    currency.CurrencyID,
		Year:          year,
		Month:         month,
		Equivalence:   equivalence,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}
	if err := r.upsertEquivalence(ctx, tx, fact); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return currency, nil
}

// upsertEquivalence inserts the fact or overwrites the value held for the
// same (currency_id, year, month) triple. The unique constraint makes the
// operation atomic, so concurrent re-ingestion degenerates to
// last-write-wins instead of duplicating facts.
func (r *PgxEquivalenceRepository) upsertEquivalence(ctx context.Context, q querier, equivalence domain.Equivalence) error {
	modelEq := mapping.ToModelEquivalence(equivalence)

	query := `
		INSERT INTO currency_equivalences (
			equivalence_id, currency_id, year, month, equivalence,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (currency_id, year, month) DO UPDATE SET
			equivalence = EXCLUDED.equivalence,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`

	_, err := q.Exec(ctx, query,
		modelEq.EquivalenceID,
		modelEq.CurrencyID,
		modelEq.Year,
		modelEq.Month,
		modelEq.Equivalence,
		modelEq.CreatedAt,
		modelEq.CreatedBy,
		modelEq.LastUpdatedAt,
		modelEq.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert equivalence for currency %s %d-%d: %w",
			modelEq.CurrencyID, modelEq.Year, modelEq.Month, err)
	}
	return nil
}

// FindByCurrencyAndPeriod retrieves the fact for one (currency, year, month) triple.
func (r *PgxEquivalenceRepository) FindByCurrencyAndPeriod(ctx context.Context, currencyID string, year, month int) (*domain.Equivalence, error) {
	query := `
		SELECT equivalence_id, currency_id, year, month, equivalence,
			created_at, created_by, last_updated_at, last_updated_by
		FROM currency_equivalences
		WHERE currency_id = $1 AND year = $2 AND month = $3;
	`

	var modelEq models.Equivalence
	err := r.Pool.QueryRow(ctx, query, currencyID, year, month).Scan(
		&modelEq.EquivalenceID,
		&modelEq.CurrencyID,
		&modelEq.Year,
		&modelEq.Month,
		&modelEq.Equivalence,
		&modelEq.CreatedAt,
		&modelEq.CreatedBy,
		&modelEq.LastUpdatedAt,
		&modelEq.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("no equivalence for currency %s in %d-%d", currencyID, year, month))
		}
		return nil, fmt.Errorf("failed to find equivalence: %w", err)
	}

	domainEq := mapping.ToDomainEquivalence(modelEq)
	return &domainEq, nil
}

// AvailableYears lists distinct years with data, newest first.
func (r *PgxEquivalenceRepository) AvailableYears(ctx context.Context) ([]int, error) {
	return r.queryInts(ctx, `SELECT DISTINCT year FROM currency_equivalences ORDER BY year DESC;`)
}

// AvailableMonths lists distinct months with data across all years, ascending.
func (r *PgxEquivalenceRepository) AvailableMonths(ctx context.Context) ([]int, error) {
	return r.queryInts(ctx, `SELECT DISTINCT month FROM currency_equivalences ORDER BY month;`)
}

// MonthsByYear groups available months under each year.
func (r *PgxEquivalenceRepository) MonthsByYear(ctx context.Context) (map[int][]int, error) {
	query := `
		SELECT DISTINCT year, month
		FROM currency_equivalences
		ORDER BY year DESC, month;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query months by year: %w", err)
	}
	defer rows.Close()

	grouped := make(map[int][]int)
	for rows.Next() {
		var year, month int
		if err := rows.Scan(&year, &month); err != nil {
			return nil, fmt.Errorf("failed to scan months by year: %w", err)
		}
		grouped[year] = append(grouped[year], month)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating months by year: %w", err)
	}
	return grouped, nil
}

// YearExists reports whether at least one fact exists for the year.
func (r *PgxEquivalenceRepository) YearExists(ctx context.Context, year int) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM currency_equivalences WHERE year = $1);`, year)
}

// MonthExists reports whether at least one fact exists for the period.
func (r *PgxEquivalenceRepository) MonthExists(ctx context.Context, year, month int) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM currency_equivalences WHERE year = $1 AND month = $2);`, year, month)
}

// MissingMonths lists the months 1-12 without any data for the year.
func (r *PgxEquivalenceRepository) MissingMonths(ctx context.Context, year int) ([]int, error) {
	existing, err := r.queryInts(ctx, `SELECT DISTINCT month FROM currency_equivalences WHERE year = $1 ORDER BY month;`, year)
	if err != nil {
		return nil, err
	}

	present := make(map[int]bool, len(existing))
	for _, m := range existing {
		present[m] = true
	}

	var missing []int
	for m := 1; m <= 12; m++ {
		if !present[m] {
			missing = append(missing, m)
		}
	}
	return missing, nil
}

func (r *PgxEquivalenceRepository) queryInts(ctx context.Context, query string, args ...any) ([]int, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query equivalences: %w", err)
	}
	defer rows.Close()

	values, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (int, error) {
		var v int
		err := row.Scan(&v)
		return v, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan equivalence values: %w", err)
	}
	return values, nil
}

func (r *PgxEquivalenceRepository) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var found bool
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&found); err != nil {
		return false, fmt.Errorf("failed to check equivalence existence: %w", err)
	}
	return found, nil
}
