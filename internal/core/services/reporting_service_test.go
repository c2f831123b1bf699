package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/books_backend/internal/apperrors"
	"github.com/SscSPs/books_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/books_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/books_backend/internal/core/ports/services"
	"github.com/SscSPs/books_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	reporting *MockReportingRepository
	contacts  *MockContactRepository
	products  *MockProductRepository
	stock     *MockStockRepository
	service   portssvc.ReportingService
	asOf      time.Time
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.reporting = new(MockReportingRepository)
	suite.contacts = new(MockContactRepository)
	suite.products = new(MockProductRepository)
	suite.stock = new(MockStockRepository)
	suite.service = services.NewReportingService(suite.reporting,
		services.WithReportingContacts(suite.contacts),
		services.WithReportingStock(suite.products, suite.stock))
	suite.asOf = time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
}

// owner invests 1000, invoices 118 (100 + 18 tax), collects 50
func (suite *ReportingServiceTestSuite) balances() []domain.AccountBalance {
	return []domain.AccountBalance{
		{AccountID: "acc-1000", Code: "1000", Name: "Cash", AccountType: domain.Asset, Debit: d("1050.00"), Credit: d("0")},
		{AccountID: "acc-1100", Code: "1100", Name: "Accounts Receivable", AccountType: domain.Asset, Debit: d("118.00"), Credit: d("50.00")},
		{AccountID: "acc-2200", Code: "2200", Name: "Output Tax", AccountType: domain.Liability, Debit: d("0"), Credit: d("18.00")},
		{AccountID: "acc-3000", Code: "3000", Name: "Owner's Equity", AccountType: domain.Equity, Debit: d("0"), Credit: d("1000.00")},
		{AccountID: "acc-4000", Code: "4000", Name: "Sales", AccountType: domain.Income, Debit: d("0"), Credit: d("100.00")},
		{AccountID: "acc-5000", Code: "5000", Name: "Purchases", AccountType: domain.Expense, Debit: d("0"), Credit: d("0")},
	}
}

func (suite *ReportingServiceTestSuite) TestTrialBalance() {
	suite.reporting.On("GetAccountBalances", suite.ctx, (*time.Time)(nil), suite.asOf).Return(suite.balances(), nil).Once()

	tb, err := suite.service.TrialBalance(suite.ctx, suite.asOf)

	suite.Require().NoError(err)
	suite.True(tb.IsBalanced)
	suite.True(d("1168.00").Equal(tb.TotalDebit), tb.TotalDebit.String())
	suite.Len(tb.Rows, 6)
	suite.reporting.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet() {
	suite.reporting.On("GetAccountBalances", suite.ctx, (*time.Time)(nil), suite.asOf).Return(suite.balances(), nil).Once()

	sheet, err := suite.service.BalanceSheet(suite.ctx, suite.asOf)

	suite.Require().NoError(err)
	suite.True(sheet.IsBalanced)
	suite.True(d("1118.00").Equal(sheet.Assets.Total))
	suite.True(d("18.00").Equal(sheet.Liabilities.Total))
	suite.True(d("1100.00").Equal(sheet.Equity.Total))
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_RepoError() {
	suite.reporting.On("GetAccountBalances", suite.ctx, mock.Anything, suite.asOf).Return(nil, assert.AnError).Once()

	sheet, err := suite.service.BalanceSheet(suite.ctx, suite.asOf)

	suite.Nil(sheet)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss() {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.reporting.On("GetAccountBalances", suite.ctx, &from, suite.asOf).Return(suite.balances(), nil).Once()

	report, err := suite.service.ProfitAndLoss(suite.ctx, from, suite.asOf)

	suite.Require().NoError(err)
	suite.True(d("100.00").Equal(report.NetProfit))
	suite.Len(report.Income.Items, 1)
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss_InvertedRange() {
	_, err := suite.service.ProfitAndLoss(suite.ctx, suite.asOf, suite.asOf.AddDate(0, 0, -1))

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.reporting.AssertNotCalled(suite.T(), "GetAccountBalances", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestPartnerLedger_WithOpeningBalance() {
	contactID := "c-1"
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	suite.contacts.On("FindContactByID", suite.ctx, contactID).Return(&domain.Contact{ContactID: contactID, Name: "Acme"}, nil).Once()
	suite.reporting.On("GetContactBalanceBefore", suite.ctx, contactID, from).Return(d("200.00"), nil).Once()
	suite.reporting.On("GetContactEntries", suite.ctx, contactID, &from, (*time.Time)(nil)).Return([]domain.LedgerEntry{
		{EntryType: domain.Debit, Amount: d("118.00"), TransactionDate: from.AddDate(0, 0, 2), ReferenceType: domain.RefCustomerInvoice},
		{EntryType: domain.Credit, Amount: d("300.00"), TransactionDate: from.AddDate(0, 0, 5), ReferenceType: domain.RefInvoicePayment},
	}, nil).Once()

	ledger, err := suite.service.PartnerLedger(suite.ctx, contactID, &from, nil)

	suite.Require().NoError(err)
	suite.Equal("Acme", ledger.ContactName)
	suite.True(d("200.00").Equal(ledger.OpeningBalance))
	suite.Require().Len(ledger.Entries, 2)
	suite.True(d("318.00").Equal(ledger.Entries[0].Balance))
	suite.True(d("18.00").Equal(ledger.ClosingBalance))
	suite.True(ledger.IsDebit)
}

func (suite *ReportingServiceTestSuite) TestPartnerLedger_NoRangeStartsAtZero() {
	contactID := "c-2"
	suite.contacts.On("FindContactByID", suite.ctx, contactID).Return(&domain.Contact{ContactID: contactID, Name: "Supplies Ltd"}, nil).Once()
	suite.reporting.On("GetContactEntries", suite.ctx, contactID, (*time.Time)(nil), (*time.Time)(nil)).Return(nil, nil).Once()

	ledger, err := suite.service.PartnerLedger(suite.ctx, contactID, nil, nil)

	suite.Require().NoError(err)
	suite.True(ledger.OpeningBalance.IsZero())
	suite.True(ledger.ClosingBalance.IsZero())
	suite.NotNil(ledger.Entries)
	suite.reporting.AssertNotCalled(suite.T(), "GetContactBalanceBefore", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestPartnerLedger_UnknownContact() {
	suite.contacts.On("FindContactByID", suite.ctx, "missing").Return(nil, apperrors.NewNotFoundError("contact", "missing")).Once()

	_, err := suite.service.PartnerLedger(suite.ctx, "missing", nil, nil)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ReportingServiceTestSuite) TestStockStatement_AllProducts() {
	products := []domain.Product{{ProductID: "p-1", Name: "Widget", PurchasePrice: d("60.00")}}
	suite.products.On("ListProducts", suite.ctx, portsrepo.ProductFilter{}).Return(products, nil).Once()
	suite.stock.On("ListMovementsUpTo", suite.ctx, suite.asOf, (*string)(nil)).Return([]domain.StockMovement{
		{ProductID: "p-1", MovementType: domain.StockIn, Quantity: d("5"), MovementDate: suite.asOf},
		{ProductID: "p-1", MovementType: domain.StockOut, Quantity: d("2"), MovementDate: suite.asOf},
	}, nil).Once()

	statement, err := suite.service.StockStatement(suite.ctx, suite.asOf, nil)

	suite.Require().NoError(err)
	suite.Require().Len(statement.Items, 1)
	suite.True(d("3").Equal(statement.Items[0].ClosingStock))
	suite.True(d("180.00").Equal(statement.TotalValue))
}

func (suite *ReportingServiceTestSuite) TestStockStatement_SingleProduct() {
	productID := "p-9"
	suite.products.On("FindProductByID", suite.ctx, productID).Return(&domain.Product{ProductID: productID, PurchasePrice: decimal.Zero}, nil).Once()
	suite.stock.On("ListMovementsUpTo", suite.ctx, suite.asOf, &productID).Return(nil, nil).Once()

	statement, err := suite.service.StockStatement(suite.ctx, suite.asOf, &productID)

	suite.Require().NoError(err)
	suite.Len(statement.Items, 1)
	suite.products.AssertNotCalled(suite.T(), "ListProducts", mock.Anything, mock.Anything)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
