package services

import (
	"context"

	"github.com/balanza-app/balanza/internal/core/domain"
)

// BalanceSvcFacade produces and updates annual balance sheets.
type BalanceSvcFacade interface {
	// BuildBalanceSheet aggregates the year's ledger entries per account
	// type, applies the saved categorization and derives the summary rows.
	// A cancelled context discards in-flight aggregation results.
	BuildBalanceSheet(ctx context.Context, companyID string, year int) (*domain.BalanceSheet, error)

	// ReassignRow rebuilds the sheet and moves the given data row to the
	// requested category (or clears it when category is empty). Special rows
	// are left untouched; an index outside the sheet fails validation. The
	// result matches a fresh build with the updated assignment; nothing is
	// persisted until SaveCategorization.
	ReassignRow(ctx context.Context, companyID string, year int, rowIndex int, category domain.Category) (*domain.BalanceSheet, error)

	// SaveCategorization persists the assignment for a company/year.
	// A save failure leaves any computed sheet usable.
	SaveCategorization(ctx context.Context, companyID string, year int, assignment domain.CategoryAssignment) error
}
