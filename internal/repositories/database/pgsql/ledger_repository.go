package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/balanza-app/balanza/internal/core/domain"
	portsrepo "github.com/balanza-app/balanza/internal/core/ports/repositories"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for ledger entries.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

const ledgerColumns = `entry_id, company_id, year, month, account_type, detail, reference, amount, kind, created_at, created_by, last_updated_at, last_updated_by`

func scanLedgerEntry(row pgx.Row) (domain.LedgerEntry, error) {
	var entry domain.LedgerEntry
	err := row.Scan(
		&entry.EntryID,
		&entry.CompanyID,
		&entry.Year,
		&entry.Month,
		&entry.AccountType,
		&entry.Detail,
		&entry.Reference,
		&entry.Amount,
		&entry.Kind,
		&entry.CreatedAt,
		&entry.CreatedBy,
		&entry.LastUpdatedAt,
		&entry.LastUpdatedBy,
	)
	return entry, err
}

// SaveEntries persists a batch of entries inside one transaction so a voucher
// is stored all-or-nothing.
func (r *PgxLedgerRepository) SaveEntries(ctx context.Context, entries []domain.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	query := `
		INSERT INTO ledger_entries (` + ledgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	for i := range entries {
		e := &entries[i]
		if _, err := tx.Exec(ctx, query,
			e.EntryID,
			e.CompanyID,
			e.Year,
			e.Month,
			e.AccountType,
			e.Detail,
			e.Reference,
			e.Amount,
			e.Kind,
			e.CreatedAt,
			e.CreatedBy,
			e.LastUpdatedAt,
			e.LastUpdatedBy,
		); err != nil {
			return fmt.Errorf("failed to save ledger entry %s: %w", e.EntryID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// FindEntriesByKind retrieves all entries of one kind for a company/year.
func (r *PgxLedgerRepository) FindEntriesByKind(ctx context.Context, companyID string, year int, kind domain.EntryKind) ([]domain.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM ledger_entries
		WHERE company_id = $1 AND year = $2 AND kind = $3
		ORDER BY month, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, year, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s entries: %w", kind, err)
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.LedgerEntry, error) {
		return scanLedgerEntry(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s entries: %w", kind, err)
	}
	return entries, nil
}

// ListEntries retrieves all entries for a company/year ordered by month,
// optionally restricted to a single month.
func (r *PgxLedgerRepository) ListEntries(ctx context.Context, companyID string, year int, month *int) ([]domain.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM ledger_entries
		WHERE company_id = $1 AND year = $2
	`
	args := []any{companyID, year}
	if month != nil {
		query += ` AND month = $3`
		args = append(args, *month)
	}
	query += ` ORDER BY month, created_at;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries: %w", err)
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.LedgerEntry, error) {
		return scanLedgerEntry(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan ledger entries: %w", err)
	}
	return entries, nil
}
