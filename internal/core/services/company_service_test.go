package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/balanza-app/balanza/internal/apperrors"
	"github.com/balanza-app/balanza/internal/core/domain"
	portssvc "github.com/balanza-app/balanza/internal/core/ports/services"
	"github.com/balanza-app/balanza/internal/core/services"
	"github.com/balanza-app/balanza/internal/dto"
)

// --- Mock CompanyRepository ---
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) DeleteCompany(ctx context.Context, companyID string) error {
	args := m.Called(ctx, companyID)
	return args.Error(0)
}

// --- Test Suite ---
type CompanyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCompanyRepository
	service  portssvc.CompanySvcFacade
}

func (suite *CompanyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCompanyRepository)
	suite.service = services.NewCompanyService(suite.mockRepo)
}

func (suite *CompanyServiceTestSuite) TestCreateCompany_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateCompanyRequest{
		Name:             "Comercial Andina Ltda",
		RUT:              "76.123.456-7",
		Address:          "Av. Siempreviva 742",
		Commune:          "Providencia",
		BusinessActivity: "Comercio minorista",
		CustomTypes:      []string{"Leasing"},
	}

	suite.mockRepo.On("SaveCompany", ctx, mock.MatchedBy(func(c domain.Company) bool {
		return c.Name == req.Name && c.RUT == req.RUT && c.CreatedBy == creatorUserID && len(c.CustomAccountTypes) == 1
	})).Return(nil).Once()

	company, err := suite.service.CreateCompany(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(company)
	suite.NotEmpty(company.CompanyID)
	suite.Equal(req.Name, company.Name)
	suite.Equal(req.RUT, company.RUT)
	suite.Equal(creatorUserID, company.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CompanyServiceTestSuite) TestCreateCompany_SaveError() {
	ctx := context.Background()
	req := dto.CreateCompanyRequest{Name: "X", RUT: "1-9"}

	suite.mockRepo.On("SaveCompany", ctx, mock.AnythingOfType("domain.Company")).Return(assert.AnError).Once()

	company, err := suite.service.CreateCompany(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.Nil(company)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *CompanyServiceTestSuite) TestUpdateCompany_AppliesOnlyProvidedFields() {
	ctx := context.Background()
	companyID := uuid.NewString()
	existing := &domain.Company{
		CompanyID: companyID,
		Name:      "Antes",
		RUT:       "76.123.456-7",
		Address:   "Calle Vieja 1",
	}
	newName := "Despues"

	suite.mockRepo.On("FindCompanyByID", ctx, companyID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateCompany", ctx, mock.MatchedBy(func(c domain.Company) bool {
		return c.Name == newName && c.RUT == "76.123.456-7" && c.Address == "Calle Vieja 1" && c.LastUpdatedBy == "user-1"
	})).Return(nil).Once()

	company, err := suite.service.UpdateCompany(ctx, companyID, dto.UpdateCompanyRequest{Name: &newName}, "user-1")

	suite.Require().NoError(err)
	suite.Equal(newName, company.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CompanyServiceTestSuite) TestUpdateCompany_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindCompanyByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	company, err := suite.service.UpdateCompany(ctx, "missing", dto.UpdateCompanyRequest{}, "user-1")

	suite.Require().Error(err)
	suite.Nil(company)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateCompany", mock.Anything, mock.Anything)
}

func (suite *CompanyServiceTestSuite) TestListCompanies_EmptyIsNotNil() {
	ctx := context.Background()

	suite.mockRepo.On("ListCompanies", ctx).Return(nil, nil).Once()

	companies, err := suite.service.ListCompanies(ctx)

	suite.Require().NoError(err)
	suite.NotNil(companies)
	suite.Empty(companies)
}

func (suite *CompanyServiceTestSuite) TestDeleteCompany_Success() {
	ctx := context.Background()
	companyID := uuid.NewString()

	suite.mockRepo.On("FindCompanyByID", ctx, companyID).Return(&domain.Company{CompanyID: companyID}, nil).Once()
	suite.mockRepo.On("DeleteCompany", ctx, companyID).Return(nil).Once()

	err := suite.service.DeleteCompany(ctx, companyID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestCompanyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyServiceTestSuite))
}
