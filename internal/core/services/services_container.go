package services

import (
	portsrepo "github.com/SscSPs/books_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/books_backend/internal/core/ports/services"
	"github.com/SscSPs/books_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)
	container.Contact = NewContactService(repos.ContactRepo)
	container.Tax = NewTaxService(repos.TaxRepo)
	container.Product = NewProductService(repos.ProductRepo, repos.TaxRepo)

	container.Document = NewDocumentService(DocumentServiceDeps{
		Documents: repos.DocumentRepo,
		Numbers:   repos.NumberGen,
		Contacts:  repos.ContactRepo,
		Products:  repos.ProductRepo,
		Taxes:     repos.TaxRepo,
		Accounts:  repos.AccountRepo,
	}, cfg.Accounts)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.AccountRepo, cfg.Accounts)

	container.Stock = NewStockService(repos.StockRepo, repos.ProductRepo)
	container.Ledger = NewLedgerService(repos.LedgerRepo, repos.AccountRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo,
		WithReportingContacts(repos.ContactRepo),
		WithReportingStock(repos.ProductRepo, repos.StockRepo),
	)

	return container
}
