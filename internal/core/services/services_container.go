package services

import (
	portsrepo "github.com/balanza-app/balanza/internal/core/ports/repositories"
	portssvc "github.com/balanza-app/balanza/internal/core/ports/services"
	"github.com/balanza-app/balanza/pkg/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. The renderer and pusher are injected so the core
// stays free of document and spreadsheet SDK imports; pusher may be nil.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, renderer SheetRenderer, pusher SheetPusher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.AccountTypes = NewAccountTypeService(repos.CompanyRepo)
	container.Company = NewCompanyService(repos.CompanyRepo)
	container.Ledger = NewLedgerService(repos.LedgerRepo, repos.CompanyRepo)
	container.Balance = NewBalanceService(repos.LedgerRepo, repos.CategorizationRepo, container.AccountTypes)
	container.Export = NewExportService(container.Balance, container.Company, renderer, pusher)
	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.CompanySvcFacade       = (*companyService)(nil)
	_ portssvc.LedgerSvcFacade        = (*ledgerService)(nil)
	_ portssvc.BalanceSvcFacade       = (*balanceService)(nil)
	_ portssvc.ExportSvcFacade        = (*exportService)(nil)
	_ portssvc.UserSvcFacade          = (*userService)(nil)
	_ portssvc.TokenSvcFacade         = (*tokenService)(nil)
	_ portssvc.AccountTypeRegistrySvc = (*accountTypeService)(nil)
)
