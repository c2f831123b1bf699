package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AccountRepo   AccountRepositoryFacade
	ContactRepo   ContactRepositoryFacade
	ProductRepo   ProductRepositoryFacade
	TaxRepo       TaxRepositoryFacade
	DocumentRepo  DocumentRepositoryFacade
	NumberGen     DocumentNumberGenerator
	PaymentRepo   PaymentRepositoryFacade
	StockRepo     StockRepository
	LedgerRepo    LedgerRepository
	ReportingRepo ReportingRepository
}
