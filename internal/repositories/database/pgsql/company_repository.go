package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/balanza-app/balanza/internal/apperrors"
	"github.com/balanza-app/balanza/internal/core/domain"
	portsrepo "github.com/balanza-app/balanza/internal/core/ports/repositories"
)

type PgxCompanyRepository struct {
	BaseRepository
}

// newPgxCompanyRepository creates a new repository for company data.
func newPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyRepositoryFacade {
	return &PgxCompanyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

const companyColumns = `company_id, name, rut, address, commune, business_activity, custom_account_types, created_at, created_by, last_updated_at, last_updated_by`

func scanCompany(row pgx.Row) (domain.Company, error) {
	var company domain.Company
	err := row.Scan(
		&company.CompanyID,
		&company.Name,
		&company.RUT,
		&company.Address,
		&company.Commune,
		&company.BusinessActivity,
		&company.CustomAccountTypes,
		&company.CreatedAt,
		&company.CreatedBy,
		&company.LastUpdatedAt,
		&company.LastUpdatedBy,
	)
	return company, err
}

// SaveCompany inserts a new company record.
func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		company.CompanyID,
		company.Name,
		company.RUT,
		company.Address,
		company.Commune,
		company.BusinessActivity,
		company.CustomAccountTypes,
		company.CreatedAt,
		company.CreatedBy,
		company.LastUpdatedAt,
		company.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save company %s: %w", company.CompanyID, err)
	}
	return nil
}

// FindCompanyByID retrieves a company by its ID.
func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE company_id = $1;`

	company, err := scanCompany(r.Pool.QueryRow(ctx, query, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find company by id %s: %w", companyID, err)
	}
	return &company, nil
}

// ListCompanies retrieves all companies ordered by name.
func (r *PgxCompanyRepository) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query companies: %w", err)
	}
	defer rows.Close()

	companies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Company, error) {
		return scanCompany(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan companies: %w", err)
	}
	return companies, nil
}

// UpdateCompany persists changes to an existing company.
func (r *PgxCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	query := `
		UPDATE companies SET
			name = $2,
			rut = $3,
			address = $4,
			commune = $5,
			business_activity = $6,
			custom_account_types = $7,
			last_updated_at = $8,
			last_updated_by = $9
		WHERE company_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		company.CompanyID,
		company.Name,
		company.RUT,
		company.Address,
		company.Commune,
		company.BusinessActivity,
		company.CustomAccountTypes,
		company.LastUpdatedAt,
		company.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update company %s: %w", company.CompanyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCompany removes a company record.
func (r *PgxCompanyRepository) DeleteCompany(ctx context.Context, companyID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM companies WHERE company_id = $1;`, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete company %s: %w", companyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
