package services_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/SscSPs/books_backend/internal/apperrors"
	"github.com/SscSPs/books_backend/internal/core/domain"
	portssvc "github.com/SscSPs/books_backend/internal/core/ports/services"
	"github.com/SscSPs/books_backend/internal/core/services"
	"github.com/SscSPs/books_backend/internal/dto"
	"github.com/SscSPs/books_backend/internal/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	payments *MockPaymentRepository
	accounts *MockAccountRepository
	service  portssvc.PaymentSvcFacade
	invoice  domain.Document
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.payments = new(MockPaymentRepository)
	suite.accounts = new(MockAccountRepository)
	suite.service = services.NewPaymentService(suite.payments, suite.accounts, postingCodes)
	suite.invoice = domain.Document{
		DocumentID:    uuid.NewString(),
		Kind:          domain.CustomerInvoice,
		Number:        "INV-000010",
		DocumentDate:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		ContactID:     uuid.NewString(),
		Status:        domain.StatusIssued,
		Total:         d("1000.00"),
		PaidAmount:    d("0"),
		PaymentStatus: domain.PaymentUnpaid,
	}
}

func (suite *PaymentServiceTestSuite) pay(doc domain.Document, amount string, method domain.PaymentMethod) (*domain.PaymentApplication, error) {
	suite.payments.On("RecordPayment", suite.ctx, doc.Kind, doc.DocumentID).Return(doc, nil).Once()
	return suite.service.RecordPayment(suite.ctx, doc.Kind, doc.DocumentID, dto.RecordPaymentRequest{
		PaymentDate: "2025-03-10",
		Method:      method,
		Amount:      dp(amount),
		Reference:   "UTR123",
	}, "user-1")
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_SuccessLeavesLoggingToCaller() {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	suite.ctx = middleware.WithLogger(context.Background(), logger)
	suite.accounts.On("FindAccountsByCodes", suite.ctx, postingCodes.Codes()).Return(chart(), nil)

	_, err := suite.pay(suite.invoice, "400.00", domain.MethodCash)

	suite.Require().NoError(err)
	suite.NotContains(buf.String(), `"level":"INFO"`)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_PartialThenFull() {
	suite.accounts.On("FindAccountsByCodes", suite.ctx, postingCodes.Codes()).Return(chart(), nil)

	app, err := suite.pay(suite.invoice, "400.00", domain.MethodBank)
	suite.Require().NoError(err)
	suite.Equal(domain.PaymentPartial, app.PaymentStatus)
	suite.True(d("400.00").Equal(app.PaidAmount))
	suite.Equal(suite.invoice.ContactID, app.Payment.ContactID)
	suite.Equal("UTR123", app.Payment.Reference)

	debits, credits := sideTotals(app.Entries)
	suite.True(d("400.00").Equal(debits["acc-1010"]), "non-cash methods settle through bank")
	suite.True(d("400.00").Equal(credits["acc-1100"]))
	for _, e := range app.Entries {
		suite.Equal(domain.RefInvoicePayment, e.ReferenceType)
		suite.Equal(app.Payment.PaymentID, e.ReferenceID)
	}

	locked := suite.invoice
	locked.PaidAmount, locked.PaymentStatus = app.PaidAmount, app.PaymentStatus
	app, err = suite.pay(locked, "600.00", domain.MethodCash)
	suite.Require().NoError(err)
	suite.Equal(domain.PaymentPaid, app.PaymentStatus)
	debits, _ = sideTotals(app.Entries)
	suite.True(d("600.00").Equal(debits["acc-1000"]))
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_Overpayment() {
	suite.accounts.On("FindAccountsByCodes", suite.ctx, postingCodes.Codes()).Return(chart(), nil).Once()
	locked := suite.invoice
	locked.PaidAmount = d("999.99")
	locked.PaymentStatus = domain.PaymentPartial

	app, err := suite.pay(locked, "0.02", domain.MethodUPI)

	suite.Nil(app)
	suite.ErrorIs(err, apperrors.ErrOverpayment)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_BillPayment() {
	suite.accounts.On("FindAccountsByCodes", suite.ctx, postingCodes.Codes()).Return(chart(), nil).Once()
	bill := suite.invoice
	bill.Kind = domain.VendorBill
	bill.Number = "BILL-000002"
	bill.Total = d("118.00")

	app, err := suite.pay(bill, "118.00", domain.MethodCheque)

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentPaid, app.PaymentStatus)
	debits, credits := sideTotals(app.Entries)
	suite.True(d("118.00").Equal(debits["acc-2100"]))
	suite.True(d("118.00").Equal(credits["acc-1010"]))
	for _, e := range app.Entries {
		suite.Equal(domain.RefBillPayment, e.ReferenceType)
		if e.AccountID == "acc-2100" {
			suite.Require().NotNil(e.ContactID)
		}
	}
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_DatedBeforeDocument() {
	suite.accounts.On("FindAccountsByCodes", suite.ctx, postingCodes.Codes()).Return(chart(), nil).Once()
	later := suite.invoice
	later.DocumentDate = time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)

	_, err := suite.pay(later, "10.00", domain.MethodCash)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_InvalidRequests() {
	_, err := suite.service.RecordPayment(suite.ctx, domain.SalesOrder, uuid.NewString(),
		dto.RecordPaymentRequest{PaymentDate: "2025-03-10", Method: domain.MethodCash, Amount: dp("10")}, "user-1")
	suite.ErrorIs(err, apperrors.ErrValidation)

	for _, amount := range []string{"0", "-5.00", "1.001"} {
		_, err = suite.service.RecordPayment(suite.ctx, domain.CustomerInvoice, uuid.NewString(),
			dto.RecordPaymentRequest{PaymentDate: "2025-03-10", Method: domain.MethodCash, Amount: dp(amount)}, "user-1")
		suite.ErrorIs(err, apperrors.ErrValidation, amount)
	}

	_, err = suite.service.RecordPayment(suite.ctx, domain.CustomerInvoice, uuid.NewString(),
		dto.RecordPaymentRequest{PaymentDate: "2025-03-10", Method: "BARTER", Amount: dp("1")}, "user-1")
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.payments.AssertNotCalled(suite.T(), "RecordPayment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_DocumentNotFound() {
	suite.accounts.On("FindAccountsByCodes", suite.ctx, postingCodes.Codes()).Return(chart(), nil).Once()
	missing := uuid.NewString()
	suite.payments.On("RecordPayment", suite.ctx, domain.CustomerInvoice, missing).
		Return(nil, apperrors.NewNotFoundError("customer invoice", missing)).Once()

	_, err := suite.service.RecordPayment(suite.ctx, domain.CustomerInvoice, missing,
		dto.RecordPaymentRequest{PaymentDate: "2025-03-10", Method: domain.MethodCash, Amount: dp("1")}, "user-1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PaymentServiceTestSuite) TestListPayments() {
	docID := uuid.NewString()
	suite.payments.On("ListPaymentsByDocument", suite.ctx, domain.VendorBill, docID).Return(nil, nil).Once()

	payments, err := suite.service.ListPayments(suite.ctx, domain.VendorBill, docID)

	suite.Require().NoError(err)
	suite.NotNil(payments)
	suite.Empty(payments)

	_, err = suite.service.ListPayments(suite.ctx, domain.PurchaseOrder, docID)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
