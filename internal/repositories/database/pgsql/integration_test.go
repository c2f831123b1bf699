package pgsql_test

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/books_backend/internal/apperrors"
	"github.com/SscSPs/books_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/books_backend/internal/core/ports/repositories"
	"github.com/SscSPs/books_backend/internal/core/services"
	"github.com/SscSPs/books_backend/internal/dto"
	"github.com/SscSPs/books_backend/internal/platform/config"
	"github.com/SscSPs/books_backend/internal/repositories/database/pgsql"
	"github.com/SscSPs/books_backend/pkg/database"
	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// Set TEST_PGSQL_URL to a disposable database to run these tests. Migrations are applied on start.
const testDatabaseURLEnv = "TEST_PGSQL_URL"

const testMigrationsPath = "file://../../../../migrations"

const testUser = "integration-test"

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx   context.Context
	pool  *pgxpool.Pool
	repos portsrepo.RepositoryProvider
}

func TestPostgresIntegration(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (suite *PostgresIntegrationSuite) SetupSuite() {
	url := os.Getenv(testDatabaseURLEnv)
	if url == "" {
		suite.T().Skipf("%s not set, skipping Postgres integration tests", testDatabaseURLEnv)
	}
	suite.ctx = context.Background()
	suite.Require().NoError(applyMigrations(url))

	pool, err := database.NewPgxPool(suite.ctx, url, database.PoolOptions{MaxConns: 8, PingOnStart: true})
	suite.Require().NoError(err)
	suite.pool = pool
	suite.repos = pgsql.NewRepositoryProvider(pool)
}

func (suite *PostgresIntegrationSuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func applyMigrations(url string) error {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return err
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance(testMigrationsPath, "postgres", driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func uniqueSuffix() string {
	return uuid.NewString()[:8]
}

func (suite *PostgresIntegrationSuite) audit() domain.AuditFields {
	return domain.NewAuditFields(testUser, time.Now().UTC())
}

func (suite *PostgresIntegrationSuite) createContact(contactType domain.ContactType) domain.Contact {
	contact := domain.Contact{
		ContactID:   uuid.NewString(),
		Name:        "Contact " + uniqueSuffix(),
		ContactType: contactType,
		AuditFields: suite.audit(),
	}
	suite.Require().NoError(suite.repos.ContactRepo.SaveContact(suite.ctx, contact))
	return contact
}

func (suite *PostgresIntegrationSuite) createTax() domain.Tax {
	tax := domain.Tax{
		TaxID:       uuid.NewString(),
		Name:        "GST " + uniqueSuffix(),
		Rate:        decimal.NewFromInt(18),
		Method:      domain.TaxPercentage,
		AuditFields: suite.audit(),
	}
	suite.Require().NoError(suite.repos.TaxRepo.SaveTax(suite.ctx, tax))
	return tax
}

func (suite *PostgresIntegrationSuite) createProduct(taxID *string) domain.Product {
	product := domain.Product{
		ProductID:     uuid.NewString(),
		Name:          "Widget " + uniqueSuffix(),
		Unit:          "pcs",
		PurchasePrice: decimal.NewFromInt(40),
		SalePrice:     decimal.NewFromInt(50),
		TaxID:         taxID,
		AuditFields:   suite.audit(),
	}
	suite.Require().NoError(suite.repos.ProductRepo.SaveProduct(suite.ctx, product))
	return product
}

// createDocument stores a document with one line and no postings.
func (suite *PostgresIntegrationSuite) createDocument(kind domain.DocumentKind, contactID, productID string, taxID *string, total decimal.Decimal) domain.Document {
	docID := uuid.NewString()
	doc := domain.Document{
		DocumentID:   docID,
		Kind:         kind,
		Number:       "T-" + uniqueSuffix(),
		DocumentDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		ContactID:    contactID,
		Status:       domain.StatusDraft,
		Subtotal:     total,
		TaxAmount:    decimal.Zero,
		Total:        total,
		PaidAmount:   decimal.Zero,
		Items: []domain.LineItem{{
			LineItemID: uuid.NewString(),
			DocumentID: docID,
			LineNo:     1,
			ProductID:  productID,
			TaxID:      taxID,
			Quantity:   decimal.NewFromInt(1),
			UnitPrice:  total,
			TaxAmount:  decimal.Zero,
			Total:      total,
		}},
		AuditFields: suite.audit(),
	}
	if !kind.IsOrder() {
		doc.Status = domain.StatusIssued
		doc.PaymentStatus = domain.PaymentUnpaid
	}
	suite.Require().NoError(suite.repos.DocumentRepo.SaveDocument(suite.ctx, doc, nil))
	return doc
}

func (suite *PostgresIntegrationSuite) count(query string, args ...any) int {
	var n int
	suite.Require().NoError(suite.pool.QueryRow(suite.ctx, query, args...).Scan(&n))
	return n
}

func allowDelete(domain.Document) (*domain.Postings, error) {
	return nil, nil
}

func (suite *PostgresIntegrationSuite) TestDeleteOrder_CascadesItems() {
	contact := suite.createContact(domain.ContactCustomer)
	product := suite.createProduct(nil)
	order := suite.createDocument(domain.SalesOrder, contact.ContactID, product.ProductID, nil, decimal.NewFromInt(50))

	const itemsQuery = `SELECT COUNT(*) FROM sales_order_items WHERE document_id = $1`
	suite.Equal(1, suite.count(itemsQuery, order.DocumentID))

	err := suite.repos.DocumentRepo.DeleteDocument(suite.ctx, domain.SalesOrder, order.DocumentID, allowDelete)
	suite.Require().NoError(err)

	suite.Equal(0, suite.count(itemsQuery, order.DocumentID))
	_, err = suite.repos.DocumentRepo.FindDocumentByID(suite.ctx, domain.SalesOrder, order.DocumentID)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
}

func (suite *PostgresIntegrationSuite) TestDeleteParentAccount_ClearsChildParent() {
	parent := domain.Account{
		AccountID:   uuid.NewString(),
		Code:        "P" + uniqueSuffix(),
		Name:        "Current Assets",
		AccountType: domain.Asset,
		IsActive:    true,
		AuditFields: suite.audit(),
	}
	suite.Require().NoError(suite.repos.AccountRepo.SaveAccount(suite.ctx, parent))
	child := domain.Account{
		AccountID:       uuid.NewString(),
		Code:            "C" + uniqueSuffix(),
		Name:            "Petty Cash",
		AccountType:     domain.Asset,
		ParentAccountID: &parent.AccountID,
		IsActive:        true,
		AuditFields:     suite.audit(),
	}
	suite.Require().NoError(suite.repos.AccountRepo.SaveAccount(suite.ctx, child))

	suite.Require().NoError(suite.repos.AccountRepo.DeleteAccount(suite.ctx, parent.AccountID))

	got, err := suite.repos.AccountRepo.FindAccountByID(suite.ctx, child.AccountID)
	suite.Require().NoError(err)
	suite.Nil(got.ParentAccountID)
}

func (suite *PostgresIntegrationSuite) TestDeleteContact_RestrictedWhileReferenced() {
	contact := suite.createContact(domain.ContactVendor)
	product := suite.createProduct(nil)
	suite.createDocument(domain.PurchaseOrder, contact.ContactID, product.ProductID, nil, decimal.NewFromInt(40))

	err := suite.repos.ContactRepo.DeleteContact(suite.ctx, contact.ContactID)
	suite.True(errors.Is(err, apperrors.ErrConflict), "got %v", err)

	_, err = suite.repos.ContactRepo.FindContactByID(suite.ctx, contact.ContactID)
	suite.NoError(err)
}

func (suite *PostgresIntegrationSuite) TestDeleteProduct_RestrictedWhileReferenced() {
	contact := suite.createContact(domain.ContactCustomer)
	product := suite.createProduct(nil)
	suite.createDocument(domain.CustomerInvoice, contact.ContactID, product.ProductID, nil, decimal.NewFromInt(50))

	err := suite.repos.ProductRepo.DeleteProduct(suite.ctx, product.ProductID)
	suite.True(errors.Is(err, apperrors.ErrConflict), "got %v", err)

	_, err = suite.repos.ProductRepo.FindProductByID(suite.ctx, product.ProductID)
	suite.NoError(err)
}

func (suite *PostgresIntegrationSuite) TestDeleteTax_RestrictedWhileReferenced() {
	suite.Run("by a product default", func() {
		tax := suite.createTax()
		suite.createProduct(&tax.TaxID)

		err := suite.repos.TaxRepo.DeleteTax(suite.ctx, tax.TaxID)
		suite.True(errors.Is(err, apperrors.ErrConflict), "got %v", err)
		_, err = suite.repos.TaxRepo.FindTaxByID(suite.ctx, tax.TaxID)
		suite.NoError(err)
	})

	suite.Run("by a document line", func() {
		tax := suite.createTax()
		contact := suite.createContact(domain.ContactVendor)
		product := suite.createProduct(nil)
		suite.createDocument(domain.VendorBill, contact.ContactID, product.ProductID, &tax.TaxID, decimal.NewFromInt(40))

		err := suite.repos.TaxRepo.DeleteTax(suite.ctx, tax.TaxID)
		suite.True(errors.Is(err, apperrors.ErrConflict), "got %v", err)
		_, err = suite.repos.TaxRepo.FindTaxByID(suite.ctx, tax.TaxID)
		suite.NoError(err)
	})

	suite.Run("unreferenced tax is deleted", func() {
		tax := suite.createTax()
		suite.NoError(suite.repos.TaxRepo.DeleteTax(suite.ctx, tax.TaxID))
	})
}

func (suite *PostgresIntegrationSuite) TestRecordPayment_ConcurrentPaymentsCannotExceedTotal() {
	codes := config.PostingAccounts{
		Cash:          "1000",
		Bank:          "1010",
		Receivable:    "1100",
		Payable:       "2100",
		Sales:         "4000",
		Purchases:     "5000",
		TaxPayable:    "2200",
		TaxReceivable: "1300",
	}
	service := services.NewPaymentService(suite.repos.PaymentRepo, suite.repos.AccountRepo, codes)

	contact := suite.createContact(domain.ContactCustomer)
	product := suite.createProduct(nil)
	invoice := suite.createDocument(domain.CustomerInvoice, contact.ContactID, product.ProductID, nil, decimal.RequireFromString("100.00"))

	amount := decimal.RequireFromString("60.00")
	req := dto.RecordPaymentRequest{
		PaymentDate: invoice.DocumentDate.Format(dto.DateFormat),
		Method:      domain.MethodCash,
		Amount:      &amount,
	}

	const attempts = 2
	errs := make([]error, attempts)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, errs[i] = service.RecordPayment(suite.ctx, domain.CustomerInvoice, invoice.DocumentID, req, testUser)
		}(i)
	}
	close(start)
	wg.Wait()

	var succeeded, overpaid int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, apperrors.ErrOverpayment):
			overpaid++
		default:
			suite.Failf("unexpected payment error", "%v", err)
		}
	}
	suite.Equal(1, succeeded)
	suite.Equal(1, overpaid)

	got, err := suite.repos.DocumentRepo.FindDocumentByID(suite.ctx, domain.CustomerInvoice, invoice.DocumentID)
	suite.Require().NoError(err)
	suite.True(got.PaidAmount.Equal(amount), "paid %s", got.PaidAmount)
	suite.Equal(domain.PaymentPartial, got.PaymentStatus)

	payments, err := suite.repos.PaymentRepo.ListPaymentsByDocument(suite.ctx, domain.CustomerInvoice, invoice.DocumentID)
	suite.Require().NoError(err)
	suite.Len(payments, 1)
}
