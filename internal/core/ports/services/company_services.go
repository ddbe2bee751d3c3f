package services

import (
	"context"

	"github.com/balanza-app/balanza/internal/core/domain"
	"github.com/balanza-app/balanza/internal/dto"
)

// CompanyReaderSvc defines read operations for company records.
type CompanyReaderSvc interface {
	// GetCompanyByID retrieves a specific company.
	GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)

	// ListCompanies retrieves all companies.
	ListCompanies(ctx context.Context) ([]domain.Company, error)
}

// CompanyWriterSvc defines write operations for company records.
type CompanyWriterSvc interface {
	// CreateCompany persists a new company.
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, creatorUserID string) (*domain.Company, error)

	// UpdateCompany applies the non-nil fields of the request.
	UpdateCompany(ctx context.Context, companyID string, req dto.UpdateCompanyRequest, updaterUserID string) (*domain.Company, error)

	// DeleteCompany removes a company record.
	DeleteCompany(ctx context.Context, companyID string) error
}

// CompanySvcFacade combines all company-related service interfaces.
type CompanySvcFacade interface {
	CompanyReaderSvc
	CompanyWriterSvc
}
