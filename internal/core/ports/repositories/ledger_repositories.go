package repositories

import (
	"context"

	"github.com/balanza-app/balanza/internal/core/domain"
)

// LedgerReader defines read operations for ledger entries.
type LedgerReader interface {
	// FindEntriesByKind retrieves all entries of one kind (debit or credit)
	// for a company/year. Returns an empty slice when there are none.
	FindEntriesByKind(ctx context.Context, companyID string, year int, kind domain.EntryKind) ([]domain.LedgerEntry, error)

	// ListEntries retrieves all entries for a company/year ordered by month,
	// optionally restricted to a single month.
	ListEntries(ctx context.Context, companyID string, year int, month *int) ([]domain.LedgerEntry, error)
}

// LedgerWriter defines write operations for ledger entries.
type LedgerWriter interface {
	// SaveEntries persists a batch of entries atomically.
	SaveEntries(ctx context.Context, entries []domain.LedgerEntry) error
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
