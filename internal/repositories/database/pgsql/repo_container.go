package pgsql

import (
	portsrepo "github.com/cequiv/currency_equivalences_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	currencyRepo := newPgxCurrencyRepository(dbPool)
	return portsrepo.RepositoryProvider{
		CurrencyRepo:    currencyRepo,
		EquivalenceRepo: newPgxEquivalenceRepository(dbPool, currencyRepo),
	}
}
