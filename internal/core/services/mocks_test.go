package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/books_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/books_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Accounts ---

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByCodes(ctx context.Context, codes []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, codes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, filter portsrepo.AccountFilter) ([]domain.Account, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	return m.Called(ctx, accountID).Error(0)
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

// --- Contacts ---

type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) FindContactByID(ctx context.Context, contactID string) (*domain.Contact, error) {
	args := m.Called(ctx, contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}

func (m *MockContactRepository) ListContacts(ctx context.Context, filter portsrepo.ContactFilter) ([]domain.Contact, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contact), args.Error(1)
}

func (m *MockContactRepository) SaveContact(ctx context.Context, contact domain.Contact) error {
	return m.Called(ctx, contact).Error(0)
}

func (m *MockContactRepository) UpdateContact(ctx context.Context, contact domain.Contact) error {
	return m.Called(ctx, contact).Error(0)
}

func (m *MockContactRepository) DeleteContact(ctx context.Context, contactID string) error {
	return m.Called(ctx, contactID).Error(0)
}

var _ portsrepo.ContactRepositoryFacade = (*MockContactRepository)(nil)

// --- Products and HSN codes ---

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error) {
	args := m.Called(ctx, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context, filter portsrepo.ProductFilter) ([]domain.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	return m.Called(ctx, productID).Error(0)
}

func (m *MockProductRepository) SaveHSNCode(ctx context.Context, code domain.HSNCode) error {
	return m.Called(ctx, code).Error(0)
}

func (m *MockProductRepository) ListHSNCodes(ctx context.Context) ([]domain.HSNCode, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HSNCode), args.Error(1)
}

func (m *MockProductRepository) DeleteHSNCode(ctx context.Context, code string) error {
	return m.Called(ctx, code).Error(0)
}

var _ portsrepo.ProductRepositoryFacade = (*MockProductRepository)(nil)

// --- Taxes ---

type MockTaxRepository struct {
	mock.Mock
}

func (m *MockTaxRepository) FindTaxByID(ctx context.Context, taxID string) (*domain.Tax, error) {
	args := m.Called(ctx, taxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tax), args.Error(1)
}

func (m *MockTaxRepository) FindTaxesByIDs(ctx context.Context, taxIDs []string) (map[string]domain.Tax, error) {
	args := m.Called(ctx, taxIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Tax), args.Error(1)
}

func (m *MockTaxRepository) ListTaxes(ctx context.Context) ([]domain.Tax, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tax), args.Error(1)
}

func (m *MockTaxRepository) SaveTax(ctx context.Context, tax domain.Tax) error {
	return m.Called(ctx, tax).Error(0)
}

func (m *MockTaxRepository) DeleteTax(ctx context.Context, taxID string) error {
	return m.Called(ctx, taxID).Error(0)
}

var _ portsrepo.TaxRepositoryFacade = (*MockTaxRepository)(nil)

// --- Documents ---

// MockDocumentRepository plays the transactional repository: the expectation of ConvertOrder,
// DeleteDocument returns the locked row and the callback runs against it like it would inside the
// transaction. The postings the callback produced are kept for inspection.
type MockDocumentRepository struct {
	mock.Mock
	Postings *domain.Postings
}

func (m *MockDocumentRepository) FindDocumentByID(ctx context.Context, kind domain.DocumentKind, documentID string) (*domain.Document, error) {
	args := m.Called(ctx, kind, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) ListDocuments(ctx context.Context, kind domain.DocumentKind, filter portsrepo.DocumentFilter) ([]domain.Document, error) {
	args := m.Called(ctx, kind, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) SaveDocument(ctx context.Context, doc domain.Document, postings *domain.Postings) error {
	m.Postings = postings
	return m.Called(ctx, doc).Error(0)
}

func (m *MockDocumentRepository) ConvertOrder(ctx context.Context, orderKind domain.DocumentKind, orderID string, build portsrepo.ConvertFunc) (*domain.Document, error) {
	args := m.Called(ctx, orderKind, orderID)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	doc, postings, err := build(args.Get(0).(domain.Document))
	if err != nil {
		return nil, err
	}
	m.Postings = postings
	return doc, nil
}

func (m *MockDocumentRepository) DeleteDocument(ctx context.Context, kind domain.DocumentKind, documentID string, guard portsrepo.DeleteGuard) error {
	args := m.Called(ctx, kind, documentID)
	if err := args.Error(1); err != nil {
		return err
	}
	postings, err := guard(args.Get(0).(domain.Document))
	if err != nil {
		return err
	}
	m.Postings = postings
	return nil
}

var _ portsrepo.DocumentRepositoryFacade = (*MockDocumentRepository)(nil)

type MockNumberGenerator struct {
	mock.Mock
}

func (m *MockNumberGenerator) NextNumber(ctx context.Context, kind domain.DocumentKind) (string, error) {
	args := m.Called(ctx, kind)
	return args.String(0), args.Error(1)
}

var _ portsrepo.DocumentNumberGenerator = (*MockNumberGenerator)(nil)

// --- Payments ---

// MockPaymentRepository returns the locked document from the RecordPayment expectation and runs
// the apply callback against it.
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, kind domain.DocumentKind, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, kind, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsByDocument(ctx context.Context, kind domain.DocumentKind, documentID string) ([]domain.Payment, error) {
	args := m.Called(ctx, kind, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) RecordPayment(ctx context.Context, kind domain.DocumentKind, documentID string, apply portsrepo.ApplyPaymentFunc) (*domain.PaymentApplication, error) {
	args := m.Called(ctx, kind, documentID)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	return apply(args.Get(0).(domain.Document))
}

var _ portsrepo.PaymentRepositoryFacade = (*MockPaymentRepository)(nil)

// --- Stock, ledger and reporting ---

type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) SaveMovement(ctx context.Context, movement domain.StockMovement) error {
	return m.Called(ctx, movement).Error(0)
}

func (m *MockStockRepository) ListMovements(ctx context.Context, productID *string, limit, offset int) ([]domain.StockMovement, error) {
	args := m.Called(ctx, productID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockMovement), args.Error(1)
}

func (m *MockStockRepository) ListMovementsUpTo(ctx context.Context, asOf time.Time, productID *string) ([]domain.StockMovement, error) {
	args := m.Called(ctx, asOf, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockMovement), args.Error(1)
}

var _ portsrepo.StockRepository = (*MockStockRepository)(nil)

type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) ListEntriesByAccount(ctx context.Context, accountID string, filter portsrepo.LedgerFilter) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, accountID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

var _ portsrepo.LedgerRepository = (*MockLedgerRepository)(nil)

type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetAccountBalances(ctx context.Context, from *time.Time, to time.Time) ([]domain.AccountBalance, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountBalance), args.Error(1)
}

func (m *MockReportingRepository) GetContactEntries(ctx context.Context, contactID string, from, to *time.Time) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, contactID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockReportingRepository) GetContactBalanceBefore(ctx context.Context, contactID string, before time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, contactID, before)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)
