package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/balanza-app/balanza/internal/apperrors"
	"github.com/balanza-app/balanza/internal/core/domain"
	portsrepo "github.com/balanza-app/balanza/internal/core/ports/repositories"
	portssvc "github.com/balanza-app/balanza/internal/core/ports/services"
)

// balanceService builds the annual balance sheet: it aggregates the year's
// debit and credit entries per account type, applies the saved categorization
// and derives the summary rows.
type balanceService struct {
	BaseService
	ledgerRepo         portsrepo.LedgerReader
	categorizationRepo portsrepo.CategorizationRepository
	accountTypes       portssvc.AccountTypeRegistrySvc
}

// NewBalanceService creates a new balance service.
func NewBalanceService(ledgerRepo portsrepo.LedgerReader, categorizationRepo portsrepo.CategorizationRepository, accountTypes portssvc.AccountTypeRegistrySvc) portssvc.BalanceSvcFacade {
	return &balanceService{
		ledgerRepo:         ledgerRepo,
		categorizationRepo: categorizationRepo,
		accountTypes:       accountTypes,
	}
}

func (s *balanceService) BuildBalanceSheet(ctx context.Context, companyID string, year int) (*domain.BalanceSheet, error) {
	types, err := s.accountTypes.ResolveAccountTypes(ctx, companyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to resolve account types for balance: %w", err)
		}
		// Unknown company still yields a structurally complete sheet over the
		// base row set; its data rows are simply all zero.
		types = domain.BaseAccountTypes
	}

	totals := domain.NewTypeTotals(types)

	// Debits and credits are independent scans, fetch them concurrently.
	var debits, credits []domain.LedgerEntry
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		debits, err = s.ledgerRepo.FindEntriesByKind(gctx, companyID, year, domain.Debit)
		return err
	})
	g.Go(func() error {
		var err error
		credits, err = s.ledgerRepo.FindEntriesByKind(gctx, companyID, year, domain.Credit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load ledger entries for balance: %w", err)
	}
	if err := ctx.Err(); err != nil {
		// The caller has moved on; do not hand back a result built from a
		// cancelled fetch.
		return nil, err
	}

	for i := range debits {
		totals.Add(debits[i].AccountType, domain.Debit, debits[i].Amount)
	}
	for i := range credits {
		totals.Add(credits[i].AccountType, domain.Credit, credits[i].Amount)
	}

	assignment, err := s.loadAssignment(ctx, companyID, year)
	if err != nil {
		return nil, err
	}

	sheet := domain.ComputeSheet(companyID, year, totals, assignment)
	s.LogDebug(ctx, "built balance sheet",
		slog.String("company_id", companyID),
		slog.Int("year", year),
		slog.Int("data_rows", sheet.DataRowCount()))
	return &sheet, nil
}

func (s *balanceService) ReassignRow(ctx context.Context, companyID string, year int, rowIndex int, category domain.Category) (*domain.BalanceSheet, error) {
	if category != "" && !category.IsValid() {
		return nil, apperrors.NewAppError(400, fmt.Sprintf("unknown balance category: %s", category), apperrors.ErrValidation)
	}

	sheet, err := s.BuildBalanceSheet(ctx, companyID, year)
	if err != nil {
		return nil, err
	}

	// Special rows are a silent no-op, but an index outside the sheet is a
	// caller mistake, not a row that happens to be untouchable.
	if rowIndex < 0 || rowIndex >= len(sheet.Rows) {
		return nil, apperrors.NewAppError(400, fmt.Sprintf("row index %d out of range", rowIndex), apperrors.ErrValidation)
	}

	updated := domain.Reassign(*sheet, rowIndex, category)
	return &updated, nil
}

func (s *balanceService) SaveCategorization(ctx context.Context, companyID string, year int, assignment domain.CategoryAssignment) error {
	for accountType, category := range assignment {
		if !category.IsValid() {
			return apperrors.NewAppError(400, fmt.Sprintf("unknown balance category for %s: %s", accountType, category), apperrors.ErrValidation)
		}
	}

	if err := s.categorizationRepo.SaveAssignment(ctx, companyID, year, assignment); err != nil {
		s.LogError(ctx, err, "failed to save categorization",
			slog.String("company_id", companyID),
			slog.Int("year", year))
		return fmt.Errorf("failed to save categorization: %w", err)
	}

	s.LogInfo(ctx, "saved categorization",
		slog.String("company_id", companyID),
		slog.Int("year", year),
		slog.Int("assigned_types", len(assignment)))
	return nil
}

// loadAssignment fetches the saved categorization, treating "never saved" as
// an empty assignment. Real storage faults propagate so a sheet is never
// silently rendered uncategorized when the saved data was unreadable.
func (s *balanceService) loadAssignment(ctx context.Context, companyID string, year int) (domain.CategoryAssignment, error) {
	assignment, err := s.categorizationRepo.LoadAssignment(ctx, companyID, year)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.CategoryAssignment{}, nil
		}
		return nil, fmt.Errorf("failed to load categorization: %w", err)
	}
	return assignment, nil
}
