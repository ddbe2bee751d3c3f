package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/balanza-app/balanza/internal/apperrors"
	"github.com/balanza-app/balanza/internal/core/domain"
	portssvc "github.com/balanza-app/balanza/internal/core/ports/services"
	"github.com/balanza-app/balanza/internal/core/services"
)

// --- Mock LedgerReader ---
type MockLedgerReader struct {
	mock.Mock
}

func (m *MockLedgerReader) FindEntriesByKind(ctx context.Context, companyID string, year int, kind domain.EntryKind) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, companyID, year, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerReader) ListEntries(ctx context.Context, companyID string, year int, month *int) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, companyID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

// --- Mock CategorizationRepository ---
type MockCategorizationRepository struct {
	mock.Mock
}

func (m *MockCategorizationRepository) LoadAssignment(ctx context.Context, companyID string, year int) (domain.CategoryAssignment, error) {
	args := m.Called(ctx, companyID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.CategoryAssignment), args.Error(1)
}

func (m *MockCategorizationRepository) SaveAssignment(ctx context.Context, companyID string, year int, assignment domain.CategoryAssignment) error {
	args := m.Called(ctx, companyID, year, assignment)
	return args.Error(0)
}

// --- Mock AccountTypeRegistrySvc ---
type MockAccountTypeRegistry struct {
	mock.Mock
}

func (m *MockAccountTypeRegistry) ResolveAccountTypes(ctx context.Context, companyID string) ([]string, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// --- Test Suite ---
type BalanceServiceTestSuite struct {
	suite.Suite
	mockLedger   *MockLedgerReader
	mockCategs   *MockCategorizationRepository
	mockRegistry *MockAccountTypeRegistry
	service      portssvc.BalanceSvcFacade
}

func (suite *BalanceServiceTestSuite) SetupTest() {
	suite.mockLedger = new(MockLedgerReader)
	suite.mockCategs = new(MockCategorizationRepository)
	suite.mockRegistry = new(MockAccountTypeRegistry)
	suite.service = services.NewBalanceService(suite.mockLedger, suite.mockCategs, suite.mockRegistry)
}

func entry(companyID, accountType string, amount int64, kind domain.EntryKind) domain.LedgerEntry {
	return domain.LedgerEntry{
		CompanyID:   companyID,
		Year:        2024,
		Month:       3,
		AccountType: accountType,
		Amount:      decimal.NewFromInt(amount),
		Kind:        kind,
	}
}

// The fetch runs inside an errgroup-derived context, so expectations on the
// ledger reader match any context.
func (suite *BalanceServiceTestSuite) expectEntries(companyID string, debits, credits []domain.LedgerEntry) {
	suite.mockLedger.On("FindEntriesByKind", mock.Anything, companyID, 2024, domain.Debit).Return(debits, nil).Once()
	suite.mockLedger.On("FindEntriesByKind", mock.Anything, companyID, 2024, domain.Credit).Return(credits, nil).Once()
}

func (suite *BalanceServiceTestSuite) TestBuildBalanceSheet_AggregatesPerType() {
	ctx := context.Background()
	companyID := "co-1"

	suite.mockRegistry.On("ResolveAccountTypes", mock.Anything, companyID).Return(domain.BaseAccountTypes, nil).Once()
	suite.expectEntries(companyID,
		[]domain.LedgerEntry{
			entry(companyID, "Caja", 1000, domain.Debit),
			entry(companyID, "Caja", 250, domain.Debit),
		},
		[]domain.LedgerEntry{
			entry(companyID, "Caja", 400, domain.Credit),
		},
	)
	suite.mockCategs.On("LoadAssignment", ctx, companyID, 2024).Return(nil, apperrors.ErrNotFound).Once()

	sheet, err := suite.service.BuildBalanceSheet(ctx, companyID, 2024)

	suite.Require().NoError(err)
	suite.Require().NotNil(sheet)
	suite.Equal(len(domain.BaseAccountTypes), sheet.DataRowCount())

	caja := sheet.Rows[0]
	suite.Equal("Caja", caja.Type)
	suite.True(caja.Debit.Equal(decimal.NewFromInt(1250)))
	suite.True(caja.Credit.Equal(decimal.NewFromInt(400)))
	suite.True(caja.DebtorBalance.Equal(decimal.NewFromInt(850)))
	suite.True(caja.CreditorBalance.IsZero())

	suite.mockLedger.AssertExpectations(suite.T())
	suite.mockCategs.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestBuildBalanceSheet_UnknownTypesAreDropped() {
	ctx := context.Background()
	companyID := "co-1"

	suite.mockRegistry.On("ResolveAccountTypes", mock.Anything, companyID).Return(domain.BaseAccountTypes, nil).Once()
	suite.expectEntries(companyID,
		[]domain.LedgerEntry{entry(companyID, "No Existe", 999, domain.Debit)},
		[]domain.LedgerEntry{},
	)
	suite.mockCategs.On("LoadAssignment", ctx, companyID, 2024).Return(domain.CategoryAssignment{}, nil).Once()

	sheet, err := suite.service.BuildBalanceSheet(ctx, companyID, 2024)

	suite.Require().NoError(err)
	for _, row := range sheet.Rows {
		if row.Kind != domain.RowData {
			continue
		}
		suite.NotEqual("No Existe", row.Type)
		suite.True(row.Debit.IsZero())
	}
}

func (suite *BalanceServiceTestSuite) TestBuildBalanceSheet_CustomTypesAreAggregated() {
	ctx := context.Background()
	companyID := "co-1"
	types := append(append([]string{}, domain.BaseAccountTypes...), "Leasing")

	suite.mockRegistry.On("ResolveAccountTypes", mock.Anything, companyID).Return(types, nil).Once()
	suite.expectEntries(companyID,
		[]domain.LedgerEntry{entry(companyID, "Leasing", 300, domain.Debit)},
		[]domain.LedgerEntry{},
	)
	suite.mockCategs.On("LoadAssignment", ctx, companyID, 2024).Return(domain.CategoryAssignment{}, nil).Once()

	sheet, err := suite.service.BuildBalanceSheet(ctx, companyID, 2024)

	suite.Require().NoError(err)
	suite.Equal(len(types), sheet.DataRowCount())
	leasing := sheet.Rows[len(types)-1]
	suite.Equal("Leasing", leasing.Type)
	suite.True(leasing.DebtorBalance.Equal(decimal.NewFromInt(300)))
}

func (suite *BalanceServiceTestSuite) TestBuildBalanceSheet_UnknownCompanyFallsBackToBaseTypes() {
	ctx := context.Background()
	companyID := "missing"

	suite.mockRegistry.On("ResolveAccountTypes", mock.Anything, companyID).Return(nil, apperrors.ErrNotFound).Once()
	suite.expectEntries(companyID, []domain.LedgerEntry{}, []domain.LedgerEntry{})
	suite.mockCategs.On("LoadAssignment", ctx, companyID, 2024).Return(nil, apperrors.ErrNotFound).Once()

	sheet, err := suite.service.BuildBalanceSheet(ctx, companyID, 2024)

	suite.Require().NoError(err)
	suite.Equal(len(domain.BaseAccountTypes), sheet.DataRowCount())
}

func (suite *BalanceServiceTestSuite) TestBuildBalanceSheet_AppliesSavedAssignment() {
	ctx := context.Background()
	companyID := "co-1"

	suite.mockRegistry.On("ResolveAccountTypes", mock.Anything, companyID).Return(domain.BaseAccountTypes, nil).Once()
	suite.expectEntries(companyID,
		[]domain.LedgerEntry{entry(companyID, "Caja", 500, domain.Debit)},
		[]domain.LedgerEntry{},
	)
	suite.mockCategs.On("LoadAssignment", ctx, companyID, 2024).
		Return(domain.CategoryAssignment{"Caja": domain.CategoryAsset}, nil).Once()

	sheet, err := suite.service.BuildBalanceSheet(ctx, companyID, 2024)

	suite.Require().NoError(err)
	caja := sheet.Rows[0]
	suite.True(caja.Asset.Equal(decimal.NewFromInt(500)))

	var totals *domain.BalanceRow
	for i := range sheet.Rows {
		if sheet.Rows[i].Kind == domain.RowTotals {
			totals = &sheet.Rows[i]
		}
	}
	suite.Require().NotNil(totals)
	suite.True(totals.Asset.Equal(decimal.NewFromInt(500)))
}

func (suite *BalanceServiceTestSuite) TestBuildBalanceSheet_LedgerErrorPropagates() {
	ctx := context.Background()
	companyID := "co-1"

	suite.mockRegistry.On("ResolveAccountTypes", mock.Anything, companyID).Return(domain.BaseAccountTypes, nil).Once()
	suite.mockLedger.On("FindEntriesByKind", mock.Anything, companyID, 2024, domain.Debit).
		Return(nil, assert.AnError).Maybe()
	suite.mockLedger.On("FindEntriesByKind", mock.Anything, companyID, 2024, domain.Credit).
		Return(nil, assert.AnError).Maybe()

	sheet, err := suite.service.BuildBalanceSheet(ctx, companyID, 2024)

	suite.Require().Error(err)
	suite.Nil(sheet)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *BalanceServiceTestSuite) TestBuildBalanceSheet_CancelledContextDiscardsResult() {
	companyID := "co-1"
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The mocks answer regardless of the context, so both fetches "succeed";
	// the build must still refuse to hand back a sheet for a caller that has
	// already moved on.
	suite.mockRegistry.On("ResolveAccountTypes", mock.Anything, companyID).Return(domain.BaseAccountTypes, nil).Maybe()
	suite.mockLedger.On("FindEntriesByKind", mock.Anything, companyID, 2024, domain.Debit).
		Return([]domain.LedgerEntry{entry(companyID, "Caja", 1000, domain.Debit)}, nil).Maybe()
	suite.mockLedger.On("FindEntriesByKind", mock.Anything, companyID, 2024, domain.Credit).
		Return([]domain.LedgerEntry{}, nil).Maybe()

	sheet, err := suite.service.BuildBalanceSheet(ctx, companyID, 2024)

	suite.Require().Error(err)
	suite.Nil(sheet)
	suite.ErrorIs(err, context.Canceled)
	suite.mockCategs.AssertNotCalled(suite.T(), "LoadAssignment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BalanceServiceTestSuite) TestBuildBalanceSheet_CategorizationFaultIsNotSwallowed() {
	ctx := context.Background()
	companyID := "co-1"

	suite.mockRegistry.On("ResolveAccountTypes", mock.Anything, companyID).Return(domain.BaseAccountTypes, nil).Once()
	suite.expectEntries(companyID, []domain.LedgerEntry{}, []domain.LedgerEntry{})
	suite.mockCategs.On("LoadAssignment", ctx, companyID, 2024).Return(nil, assert.AnError).Once()

	sheet, err := suite.service.BuildBalanceSheet(ctx, companyID, 2024)

	suite.Require().Error(err)
	suite.Nil(sheet)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *BalanceServiceTestSuite) TestReassignRow_MatchesFreshBuild() {
	companyID := "co-1"
	ctx := context.Background()

	debits := []domain.LedgerEntry{entry(companyID, "Caja", 800, domain.Debit)}
	credits := []domain.LedgerEntry{}

	suite.mockRegistry.On("ResolveAccountTypes", mock.Anything, companyID).Return(domain.BaseAccountTypes, nil)
	suite.expectEntries(companyID, debits, credits)
	suite.mockCategs.On("LoadAssignment", ctx, companyID, 2024).Return(domain.CategoryAssignment{}, nil).Once()

	updated, err := suite.service.ReassignRow(ctx, companyID, 2024, 0, domain.CategoryAsset)
	suite.Require().NoError(err)

	suite.expectEntries(companyID, debits, credits)
	suite.mockCategs.On("LoadAssignment", ctx, companyID, 2024).
		Return(domain.CategoryAssignment{"Caja": domain.CategoryAsset}, nil).Once()

	fresh, err := suite.service.BuildBalanceSheet(ctx, companyID, 2024)
	suite.Require().NoError(err)

	suite.Equal(fresh.Rows, updated.Rows)
}

func (suite *BalanceServiceTestSuite) TestReassignRow_RejectsUnknownCategory() {
	ctx := context.Background()

	sheet, err := suite.service.ReassignRow(ctx, "co-1", 2024, 0, domain.Category("equity"))

	suite.Require().Error(err)
	suite.Nil(sheet)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedger.AssertNotCalled(suite.T(), "FindEntriesByKind", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BalanceServiceTestSuite) TestReassignRow_RejectsOutOfRangeIndex() {
	ctx := context.Background()
	companyID := "co-1"

	suite.mockRegistry.On("ResolveAccountTypes", mock.Anything, companyID).Return(domain.BaseAccountTypes, nil).Once()
	suite.expectEntries(companyID, []domain.LedgerEntry{}, []domain.LedgerEntry{})
	suite.mockCategs.On("LoadAssignment", ctx, companyID, 2024).Return(domain.CategoryAssignment{}, nil).Once()

	sheet, err := suite.service.ReassignRow(ctx, companyID, 2024, 99, domain.CategoryAsset)

	suite.Require().Error(err)
	suite.Nil(sheet)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BalanceServiceTestSuite) TestSaveCategorization_Success() {
	ctx := context.Background()
	assignment := domain.CategoryAssignment{
		"Caja":    domain.CategoryAsset,
		"Ingreso": domain.CategoryGain,
	}

	suite.mockCategs.On("SaveAssignment", ctx, "co-1", 2024, assignment).Return(nil).Once()

	err := suite.service.SaveCategorization(ctx, "co-1", 2024, assignment)

	suite.Require().NoError(err)
	suite.mockCategs.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestSaveCategorization_RejectsInvalidCategory() {
	ctx := context.Background()
	assignment := domain.CategoryAssignment{"Caja": domain.Category("nope")}

	err := suite.service.SaveCategorization(ctx, "co-1", 2024, assignment)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCategs.AssertNotCalled(suite.T(), "SaveAssignment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BalanceServiceTestSuite) TestSaveCategorization_RepoErrorPropagates() {
	ctx := context.Background()
	assignment := domain.CategoryAssignment{"Caja": domain.CategoryAsset}

	suite.mockCategs.On("SaveAssignment", ctx, "co-1", 2024, assignment).Return(assert.AnError).Once()

	err := suite.service.SaveCategorization(ctx, "co-1", 2024, assignment)

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
}

func TestBalanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BalanceServiceTestSuite))
}
