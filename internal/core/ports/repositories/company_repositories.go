package repositories

import (
	"context"

	"github.com/balanza-app/balanza/internal/core/domain"
)

// CompanyReader defines read operations for company records.
type CompanyReader interface {
	// FindCompanyByID retrieves a company by its ID.
	// Returns apperrors.ErrNotFound when the company does not exist.
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)

	// ListCompanies retrieves all companies ordered by name.
	ListCompanies(ctx context.Context) ([]domain.Company, error)
}

// CompanyWriter defines write operations for company records.
type CompanyWriter interface {
	// SaveCompany persists a new company.
	SaveCompany(ctx context.Context, company domain.Company) error

	// UpdateCompany persists changes to an existing company, including its
	// custom account type list.
	UpdateCompany(ctx context.Context, company domain.Company) error

	// DeleteCompany removes a company record.
	DeleteCompany(ctx context.Context, companyID string) error
}

// CompanyRepositoryFacade combines all company-related repository interfaces.
type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyWriter
}
