package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/balanza-app/balanza/internal/core/domain"
	portsrepo "github.com/balanza-app/balanza/internal/core/ports/repositories"
	portssvc "github.com/balanza-app/balanza/internal/core/ports/services"
	"github.com/balanza-app/balanza/internal/dto"
)

type companyService struct {
	BaseService
	companyRepo portsrepo.CompanyRepositoryFacade
}

// NewCompanyService creates a new company service.
func NewCompanyService(companyRepo portsrepo.CompanyRepositoryFacade) portssvc.CompanySvcFacade {
	return &companyService{companyRepo: companyRepo}
}

func (s *companyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, creatorUserID string) (*domain.Company, error) {
	now := time.Now()

	company := domain.Company{
		CompanyID:          uuid.NewString(),
		Name:               req.Name,
		RUT:                req.RUT,
		Address:            req.Address,
		Commune:            req.Commune,
		BusinessActivity:   req.BusinessActivity,
		CustomAccountTypes: req.CustomTypes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
		s.LogError(ctx, err, "failed to save company")
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	return &company, nil
}

func (s *companyService) GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return company, nil
}

func (s *companyService) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	companies, err := s.companyRepo.ListCompanies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	if companies == nil {
		companies = []domain.Company{}
	}
	return companies, nil
}

func (s *companyService) UpdateCompany(ctx context.Context, companyID string, req dto.UpdateCompanyRequest, updaterUserID string) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to find company for update: %w", err)
	}

	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.RUT != nil {
		company.RUT = *req.RUT
	}
	if req.Address != nil {
		company.Address = *req.Address
	}
	if req.Commune != nil {
		company.Commune = *req.Commune
	}
	if req.BusinessActivity != nil {
		company.BusinessActivity = *req.BusinessActivity
	}
	if req.CustomTypes != nil {
		company.CustomAccountTypes = *req.CustomTypes
	}

	company.LastUpdatedAt = time.Now()
	company.LastUpdatedBy = updaterUserID

	if err := s.companyRepo.UpdateCompany(ctx, *company); err != nil {
		s.LogError(ctx, err, "failed to update company")
		return nil, fmt.Errorf("failed to update company: %w", err)
	}

	return company, nil
}

func (s *companyService) DeleteCompany(ctx context.Context, companyID string) error {
	if _, err := s.companyRepo.FindCompanyByID(ctx, companyID); err != nil {
		return fmt.Errorf("failed to find company for delete: %w", err)
	}
	if err := s.companyRepo.DeleteCompany(ctx, companyID); err != nil {
		s.LogError(ctx, err, "failed to delete company")
		return fmt.Errorf("failed to delete company: %w", err)
	}
	return nil
}
