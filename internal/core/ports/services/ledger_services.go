package services

import (
	"context"

	"github.com/balanza-app/balanza/internal/core/domain"
	"github.com/balanza-app/balanza/internal/dto"
)

// LedgerWriterSvc defines operations that record ledger entries.
type LedgerWriterSvc interface {
	// RecordEntry validates and persists a single debit or credit entry.
	RecordEntry(ctx context.Context, companyID string, req dto.CreateEntryRequest, creatorUserID string) (*domain.LedgerEntry, error)

	// RecordVoucher persists a multi-line voucher: each line becomes one
	// ledger entry, all written atomically.
	RecordVoucher(ctx context.Context, companyID string, req dto.CreateVoucherRequest, creatorUserID string) ([]domain.LedgerEntry, error)
}

// LedgerReaderSvc defines read operations over recorded entries.
type LedgerReaderSvc interface {
	// ListEntries retrieves entries for a company/year, optionally filtered
	// to one month.
	ListEntries(ctx context.Context, companyID string, year int, month *int) ([]domain.LedgerEntry, error)

	// MonthlyHistory retrieves the year's entries grouped by month with
	// per-kind totals.
	MonthlyHistory(ctx context.Context, companyID string, year int) ([]domain.MonthlyLedger, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces.
type LedgerSvcFacade interface {
	LedgerWriterSvc
	LedgerReaderSvc
}
