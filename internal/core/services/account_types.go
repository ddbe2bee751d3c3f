package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/balanza-app/balanza/internal/core/domain"
	portsrepo "github.com/balanza-app/balanza/internal/core/ports/repositories"
	portssvc "github.com/balanza-app/balanza/internal/core/ports/services"
)

// accountTypeService resolves the account types tracked for a company: the
// fixed base set plus any custom types registered on the company record.
type accountTypeService struct {
	BaseService
	companyRepo portsrepo.CompanyReader
}

// NewAccountTypeService creates a new account type registry service.
func NewAccountTypeService(companyRepo portsrepo.CompanyReader) portssvc.AccountTypeRegistrySvc {
	return &accountTypeService{companyRepo: companyRepo}
}

func (s *accountTypeService) ResolveAccountTypes(ctx context.Context, companyID string) ([]string, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve account types: %w", err)
	}

	types := make([]string, 0, len(domain.BaseAccountTypes)+len(company.CustomAccountTypes))
	types = append(types, domain.BaseAccountTypes...)

	// Custom types keep registration order; duplicates of base types are
	// skipped so each row appears once.
	seen := make(map[string]struct{}, len(types))
	for _, t := range types {
		seen[t] = struct{}{}
	}
	for _, custom := range company.CustomAccountTypes {
		if _, dup := seen[custom]; dup {
			continue
		}
		seen[custom] = struct{}{}
		types = append(types, custom)
	}

	if len(company.CustomAccountTypes) > 0 {
		s.LogDebug(ctx, "resolved custom account types",
			slog.String("company_id", companyID),
			slog.Int("custom_count", len(company.CustomAccountTypes)))
	}
	return types, nil
}
