package pgsql

import (
	portsrepo "github.com/SscSPs/books_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:   newPgxAccountRepository(dbPool),
		ContactRepo:   newPgxContactRepository(dbPool),
		ProductRepo:   newPgxProductRepository(dbPool),
		TaxRepo:       newPgxTaxRepository(dbPool),
		DocumentRepo:  newPgxDocumentRepository(dbPool),
		NumberGen:     newPgxNumberGenerator(dbPool),
		PaymentRepo:   newPgxPaymentRepository(dbPool),
		StockRepo:     newPgxStockRepository(dbPool),
		LedgerRepo:    newPgxLedgerRepository(dbPool),
		ReportingRepo: newReportingRepository(dbPool),
	}
}
