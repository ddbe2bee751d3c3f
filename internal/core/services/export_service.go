package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/balanza-app/balanza/internal/apperrors"
	"github.com/balanza-app/balanza/internal/core/domain"
	portssvc "github.com/balanza-app/balanza/internal/core/ports/services"
)

// SheetRenderer turns a computed balance sheet into a downloadable document.
type SheetRenderer interface {
	RenderXLSX(company *domain.Company, sheet *domain.BalanceSheet) ([]byte, error)
	RenderPDF(company *domain.Company, sheet *domain.BalanceSheet) ([]byte, error)
}

// SheetPusher writes a balance sheet into an external spreadsheet.
type SheetPusher interface {
	Push(ctx context.Context, company *domain.Company, sheet *domain.BalanceSheet) (string, error)
}

type exportService struct {
	BaseService
	balance  portssvc.BalanceSvcFacade
	company  portssvc.CompanyReaderSvc
	renderer SheetRenderer
	pusher   SheetPusher
}

// NewExportService creates a new export service. pusher may be nil when no
// external spreadsheet is configured.
func NewExportService(balance portssvc.BalanceSvcFacade, company portssvc.CompanyReaderSvc, renderer SheetRenderer, pusher SheetPusher) portssvc.ExportSvcFacade {
	return &exportService{
		balance:  balance,
		company:  company,
		renderer: renderer,
		pusher:   pusher,
	}
}

func (s *exportService) ExportXLSX(ctx context.Context, companyID string, year int) ([]byte, string, error) {
	company, sheet, err := s.load(ctx, companyID, year)
	if err != nil {
		return nil, "", err
	}

	data, err := s.renderer.RenderXLSX(company, sheet)
	if err != nil {
		s.LogError(ctx, err, "failed to render xlsx", slog.String("company_id", companyID))
		return nil, "", fmt.Errorf("failed to render xlsx: %w", err)
	}
	return data, exportFilename(company, year, "xlsx"), nil
}

func (s *exportService) ExportPDF(ctx context.Context, companyID string, year int) ([]byte, string, error) {
	company, sheet, err := s.load(ctx, companyID, year)
	if err != nil {
		return nil, "", err
	}

	data, err := s.renderer.RenderPDF(company, sheet)
	if err != nil {
		s.LogError(ctx, err, "failed to render pdf", slog.String("company_id", companyID))
		return nil, "", fmt.Errorf("failed to render pdf: %w", err)
	}
	return data, exportFilename(company, year, "pdf"), nil
}

func (s *exportService) PushToGoogleSheet(ctx context.Context, companyID string, year int) (string, error) {
	if s.pusher == nil {
		return "", apperrors.NewAppError(400, "google sheets export is not configured", apperrors.ErrValidation)
	}

	company, sheet, err := s.load(ctx, companyID, year)
	if err != nil {
		return "", err
	}

	title, err := s.pusher.Push(ctx, company, sheet)
	if err != nil {
		s.LogError(ctx, err, "failed to push sheet", slog.String("company_id", companyID))
		return "", fmt.Errorf("failed to push balance to google sheets: %w", err)
	}

	s.LogInfo(ctx, "pushed balance to google sheets",
		slog.String("company_id", companyID),
		slog.Int("year", year),
		slog.String("sheet_title", title))
	return title, nil
}

func (s *exportService) load(ctx context.Context, companyID string, year int) (*domain.Company, *domain.BalanceSheet, error) {
	company, err := s.company.GetCompanyByID(ctx, companyID)
	if err != nil {
		return nil, nil, err
	}
	sheet, err := s.balance.BuildBalanceSheet(ctx, companyID, year)
	if err != nil {
		return nil, nil, err
	}
	return company, sheet, nil
}

// exportFilename builds a download name like "balance_mi_empresa_2024.xlsx".
func exportFilename(company *domain.Company, year int, ext string) string {
	slug := strings.ToLower(company.Name)
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, slug)
	slug = strings.Trim(slug, "_")
	if slug == "" {
		slug = company.CompanyID
	}
	return fmt.Sprintf("balance_%s_%d.%s", slug, year, ext)
}
