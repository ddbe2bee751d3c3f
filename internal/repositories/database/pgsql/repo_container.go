package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/balanza-app/balanza/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CompanyRepo:        newPgxCompanyRepository(dbPool),
		LedgerRepo:         newPgxLedgerRepository(dbPool),
		CategorizationRepo: newPgxCategorizationRepository(dbPool),
		UserRepo:           newPgxUserRepository(dbPool),
	}
}
