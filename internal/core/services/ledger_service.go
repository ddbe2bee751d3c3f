package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/balanza-app/balanza/internal/apperrors"
	"github.com/balanza-app/balanza/internal/core/domain"
	portsrepo "github.com/balanza-app/balanza/internal/core/ports/repositories"
	portssvc "github.com/balanza-app/balanza/internal/core/ports/services"
	"github.com/balanza-app/balanza/internal/dto"
)

type ledgerService struct {
	BaseService
	ledgerRepo  portsrepo.LedgerRepositoryFacade
	companyRepo portsrepo.CompanyReader
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade, companyRepo portsrepo.CompanyReader) portssvc.LedgerSvcFacade {
	return &ledgerService{ledgerRepo: ledgerRepo, companyRepo: companyRepo}
}

func (s *ledgerService) RecordEntry(ctx context.Context, companyID string, req dto.CreateEntryRequest, creatorUserID string) (*domain.LedgerEntry, error) {
	if _, err := s.companyRepo.FindCompanyByID(ctx, companyID); err != nil {
		return nil, fmt.Errorf("failed to find company for entry: %w", err)
	}

	entry := s.buildEntry(companyID, req.Year, req.Month, req.AccountType, req.Detail, req.Reference, req.Amount, req.Kind, creatorUserID)

	if err := s.ledgerRepo.SaveEntries(ctx, []domain.LedgerEntry{entry}); err != nil {
		s.LogError(ctx, err, "failed to save ledger entry", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to record entry: %w", err)
	}

	s.LogInfo(ctx, "recorded ledger entry",
		slog.String("company_id", companyID),
		slog.String("entry_id", entry.EntryID),
		slog.String("kind", string(entry.Kind)))
	return &entry, nil
}

func (s *ledgerService) RecordVoucher(ctx context.Context, companyID string, req dto.CreateVoucherRequest, creatorUserID string) ([]domain.LedgerEntry, error) {
	if _, err := s.companyRepo.FindCompanyByID(ctx, companyID); err != nil {
		return nil, fmt.Errorf("failed to find company for voucher: %w", err)
	}
	if len(req.Lines) == 0 {
		return nil, apperrors.NewAppError(400, "voucher must contain at least one line", apperrors.ErrValidation)
	}

	entries := make([]domain.LedgerEntry, 0, len(req.Lines))
	for _, line := range req.Lines {
		entries = append(entries, s.buildEntry(companyID, req.Year, req.Month, line.AccountType, line.Detail, line.Reference, line.Amount, line.Kind, creatorUserID))
	}

	if err := s.ledgerRepo.SaveEntries(ctx, entries); err != nil {
		s.LogError(ctx, err, "failed to save voucher", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to record voucher: %w", err)
	}

	s.LogInfo(ctx, "recorded voucher",
		slog.String("company_id", companyID),
		slog.Int("line_count", len(entries)))
	return entries, nil
}

// buildEntry assembles one entry with a fresh ID, coerced amount and audit
// fields. Amount coercion never fails: malformed or negative values become
// zero and simply do not move the balance.
func (s *ledgerService) buildEntry(companyID string, year, month int, accountType, detail, reference, amount string, kind domain.EntryKind, creatorUserID string) domain.LedgerEntry {
	now := time.Now()
	return domain.LedgerEntry{
		EntryID:     uuid.NewString(),
		CompanyID:   companyID,
		Year:        year,
		Month:       month,
		AccountType: accountType,
		Detail:      detail,
		Reference:   reference,
		Amount:      domain.ParseAmount(amount),
		Kind:        kind,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
}

func (s *ledgerService) ListEntries(ctx context.Context, companyID string, year int, month *int) ([]domain.LedgerEntry, error) {
	entries, err := s.ledgerRepo.ListEntries(ctx, companyID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	if entries == nil {
		entries = []domain.LedgerEntry{}
	}
	return entries, nil
}

func (s *ledgerService) MonthlyHistory(ctx context.Context, companyID string, year int) ([]domain.MonthlyLedger, error) {
	entries, err := s.ledgerRepo.ListEntries(ctx, companyID, year, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries for history: %w", err)
	}
	return domain.GroupEntriesByMonth(entries), nil
}
