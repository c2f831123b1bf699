package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/books_backend/internal/apperrors"
	"github.com/SscSPs/books_backend/internal/core/domain"
	"github.com/SscSPs/books_backend/internal/dto"
	"github.com/SscSPs/books_backend/internal/handlers"
	"github.com/SscSPs/books_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type DocumentHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockDocumentService *MockDocumentService
	mockPaymentService  *MockPaymentService
	userID              string
	token               string
}

func (suite *DocumentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(middleware.AuthMiddleware(testJWTSecret))

	suite.mockDocumentService = new(MockDocumentService)
	suite.mockPaymentService = new(MockPaymentService)
	handlers.RegisterDocumentRoutes(suite.router.Group("/api/v1"), suite.mockDocumentService, suite.mockPaymentService)

	suite.userID = uuid.NewString()
	token, err := generateTestToken(suite.userID)
	suite.Require().NoError(err)
	suite.token = token
}

func (suite *DocumentHandlerTestSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		suite.Require().NoError(err)
	}
	req, _ := http.NewRequest(method, url, bytes.NewReader(raw))
	req.Header.Set("Authorization", "Bearer "+suite.token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *DocumentHandlerTestSuite) invoice() *domain.Document {
	return &domain.Document{
		DocumentID:    uuid.NewString(),
		Kind:          domain.CustomerInvoice,
		Number:        "INV-000001",
		DocumentDate:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		ContactID:     uuid.NewString(),
		Status:        domain.StatusIssued,
		Subtotal:      decimal.RequireFromString("200.00"),
		TaxAmount:     decimal.RequireFromString("36.00"),
		Total:         decimal.RequireFromString("236.00"),
		PaidAmount:    decimal.Zero,
		PaymentStatus: domain.PaymentUnpaid,
		Items: []domain.LineItem{{
			LineItemID: uuid.NewString(),
			LineNo:     1,
			ProductID:  uuid.NewString(),
			Quantity:   decimal.NewFromInt(2),
			UnitPrice:  decimal.RequireFromString("100.00"),
			TaxAmount:  decimal.RequireFromString("36.00"),
			Total:      decimal.RequireFromString("236.00"),
		}},
		AuditFields: domain.NewAuditFields(suite.userID, time.Now()),
	}
}

func (suite *DocumentHandlerTestSuite) TestCreateInvoice_Success() {
	doc := suite.invoice()
	body := map[string]any{
		"contactID":    doc.ContactID,
		"documentDate": "2025-03-01",
		"items": []map[string]any{
			{"productID": doc.Items[0].ProductID, "quantity": "2"},
		},
	}
	suite.mockDocumentService.On("CreateDocument", mock.Anything, domain.CustomerInvoice,
		mock.MatchedBy(func(req dto.CreateDocumentRequest) bool {
			return req.ContactID == doc.ContactID && len(req.Items) == 1 && req.Items[0].UnitPrice == nil
		}), suite.userID).Return(doc, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/customer-invoices", body)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.DocumentResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("INV-000001", resp.Number)
	suite.Equal("2025-03-01", resp.DocumentDate)
	suite.Equal(domain.PaymentUnpaid, resp.PaymentStatus)
	suite.Require().NotNil(resp.PaidAmount)
	suite.True(resp.PaidAmount.IsZero())
	suite.True(decimal.RequireFromString("236.00").Equal(resp.Total))
	suite.mockDocumentService.AssertExpectations(suite.T())
}

func (suite *DocumentHandlerTestSuite) TestCreateDocument_Validation() {
	tests := []struct {
		name string
		body map[string]any
	}{
		{"no items", map[string]any{"contactID": uuid.NewString(), "documentDate": "2025-03-01", "items": []any{}}},
		{"bad date", map[string]any{"contactID": uuid.NewString(), "documentDate": "01/03/2025",
			"items": []map[string]any{{"productID": uuid.NewString(), "quantity": "1"}}}},
		{"negative quantity", map[string]any{"contactID": uuid.NewString(), "documentDate": "2025-03-01",
			"items": []map[string]any{{"productID": uuid.NewString(), "quantity": "-1"}}}},
		{"three decimals", map[string]any{"contactID": uuid.NewString(), "documentDate": "2025-03-01",
			"items": []map[string]any{{"productID": uuid.NewString(), "quantity": "1", "unitPrice": "1.005"}}}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := suite.do(http.MethodPost, "/api/v1/sales-orders", tt.body)
			suite.Equal(http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
	suite.mockDocumentService.AssertNotCalled(suite.T(), "CreateDocument")
}

func (suite *DocumentHandlerTestSuite) TestListDocuments_PassesFilters() {
	next := "token"
	suite.mockDocumentService.On("ListDocuments", mock.Anything, domain.VendorBill,
		mock.MatchedBy(func(p dto.ListDocumentsParams) bool {
			return p.PaymentStatus == "PARTIAL" && p.Limit == 5
		})).Return([]domain.Document{}, &next, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/vendor-bills?paymentStatus=PARTIAL&limit=5", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListDocumentsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Empty(resp.Documents)
	suite.Require().NotNil(resp.NextToken)
}

func (suite *DocumentHandlerTestSuite) TestConvertOrder_EmptyBody() {
	orderID := uuid.NewString()
	bill := suite.invoice()
	bill.Kind = domain.VendorBill
	bill.Number = "BILL-000001"
	bill.SourceDocumentID = &orderID
	suite.mockDocumentService.On("ConvertOrder", mock.Anything, domain.PurchaseOrder, orderID, dto.ConvertOrderRequest{}, suite.userID).
		Return(bill, nil).Once()

	w := suite.do(http.MethodPost, fmt.Sprintf("/api/v1/purchase-orders/%s/convert", orderID), nil)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.DocumentResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.VendorBill, resp.Kind)
	suite.Require().NotNil(resp.SourceDocumentID)
	suite.Equal(orderID, *resp.SourceDocumentID)
}

func (suite *DocumentHandlerTestSuite) TestConvertOrder_AlreadyConverted() {
	orderID := uuid.NewString()
	suite.mockDocumentService.On("ConvertOrder", mock.Anything, domain.SalesOrder, orderID, mock.Anything, suite.userID).
		Return(nil, apperrors.NewConflictError("sales order %s is already converted", orderID)).Once()

	w := suite.do(http.MethodPost, fmt.Sprintf("/api/v1/sales-orders/%s/convert", orderID), map[string]any{"documentDate": "2025-03-05"})
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *DocumentHandlerTestSuite) TestRouteShapePerKind() {
	w := suite.do(http.MethodPost, fmt.Sprintf("/api/v1/vendor-bills/%s/convert", uuid.NewString()), nil)
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.do(http.MethodPost, fmt.Sprintf("/api/v1/purchase-orders/%s/payments", uuid.NewString()), map[string]any{})
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *DocumentHandlerTestSuite) TestDeleteDocument_Paid() {
	docID := uuid.NewString()
	suite.mockDocumentService.On("DeleteDocument", mock.Anything, domain.CustomerInvoice, docID, suite.userID).
		Return(apperrors.NewConflictError("invoice has payments")).Once()

	w := suite.do(http.MethodDelete, "/api/v1/customer-invoices/"+docID, nil)
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *DocumentHandlerTestSuite) TestRecordPayment_Success() {
	doc := suite.invoice()
	amount := decimal.RequireFromString("100.00")
	app := &domain.PaymentApplication{
		Payment: domain.Payment{
			PaymentID:    uuid.NewString(),
			DocumentKind: domain.CustomerInvoice,
			DocumentID:   doc.DocumentID,
			ContactID:    doc.ContactID,
			PaymentDate:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			Method:       domain.MethodBank,
			Amount:       amount,
		},
		PaidAmount:    amount,
		PaymentStatus: domain.PaymentPartial,
	}
	suite.mockPaymentService.On("RecordPayment", mock.Anything, domain.CustomerInvoice, doc.DocumentID,
		mock.MatchedBy(func(req dto.RecordPaymentRequest) bool {
			return req.Amount != nil && req.Amount.Equal(amount)
		}), suite.userID).Return(app, nil).Once()

	w := suite.do(http.MethodPost, fmt.Sprintf("/api/v1/customer-invoices/%s/payments", doc.DocumentID), map[string]any{
		"paymentDate": "2025-03-10", "method": "BANK", "amount": "100.00",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.RecordPaymentResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.PaymentPartial, resp.PaymentStatus)
	suite.Equal("2025-03-10", resp.Payment.PaymentDate)
}

func (suite *DocumentHandlerTestSuite) TestRecordPayment_Overpayment() {
	docID := uuid.NewString()
	suite.mockPaymentService.On("RecordPayment", mock.Anything, domain.VendorBill, docID, mock.Anything, suite.userID).
		Return(nil, fmt.Errorf("bill BILL-000001: %w", apperrors.ErrOverpayment)).Once()

	w := suite.do(http.MethodPost, fmt.Sprintf("/api/v1/vendor-bills/%s/payments", docID), map[string]any{
		"paymentDate": "2025-03-10", "method": "CASH", "amount": "9999.00",
	})

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), "exceeds")
}

func (suite *DocumentHandlerTestSuite) TestRecordPayment_ZeroAmount() {
	w := suite.do(http.MethodPost, fmt.Sprintf("/api/v1/vendor-bills/%s/payments", uuid.NewString()), map[string]any{
		"paymentDate": "2025-03-10", "method": "CASH", "amount": "0",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPaymentService.AssertNotCalled(suite.T(), "RecordPayment")
}

func (suite *DocumentHandlerTestSuite) TestGetPayment_WrongDocument() {
	paymentID := uuid.NewString()
	suite.mockPaymentService.On("GetPayment", mock.Anything, domain.CustomerInvoice, paymentID).
		Return(&domain.Payment{PaymentID: paymentID, DocumentID: uuid.NewString()}, nil).Once()

	w := suite.do(http.MethodGet, fmt.Sprintf("/api/v1/customer-invoices/%s/payments/%s", uuid.NewString(), paymentID), nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *DocumentHandlerTestSuite) TestMalformedIDs() {
	tests := []struct {
		method string
		url    string
		body   any
	}{
		{http.MethodGet, "/api/v1/customer-invoices/not-a-uuid", nil},
		{http.MethodDelete, "/api/v1/vendor-bills/123", nil},
		{http.MethodPost, "/api/v1/sales-orders/not-a-uuid/convert", nil},
		{http.MethodGet, "/api/v1/customer-invoices/not-a-uuid/payments", nil},
		{http.MethodPost, "/api/v1/vendor-bills/not-a-uuid/payments", map[string]any{"paymentDate": "2025-03-10", "method": "CASH", "amount": "10.00"}},
		{http.MethodGet, fmt.Sprintf("/api/v1/customer-invoices/%s/payments/not-a-uuid", uuid.NewString()), nil},
	}
	for _, tt := range tests {
		w := suite.do(tt.method, tt.url, tt.body)
		suite.Equal(http.StatusBadRequest, w.Code, "%s %s", tt.method, tt.url)
		suite.Contains(w.Body.String(), "failed 'uuid'")
	}

	suite.mockDocumentService.AssertNotCalled(suite.T(), "GetDocument")
	suite.mockDocumentService.AssertNotCalled(suite.T(), "DeleteDocument")
	suite.mockDocumentService.AssertNotCalled(suite.T(), "ConvertOrder")
	suite.mockPaymentService.AssertNotCalled(suite.T(), "ListPayments")
	suite.mockPaymentService.AssertNotCalled(suite.T(), "RecordPayment")
	suite.mockPaymentService.AssertNotCalled(suite.T(), "GetPayment")
}

func (suite *DocumentHandlerTestSuite) TestServiceFailureHidesDetails() {
	docID := uuid.NewString()
	suite.mockDocumentService.On("GetDocument", mock.Anything, domain.SalesOrder, docID).
		Return(nil, fmt.Errorf("read tcp: connection reset")).Once()

	w := suite.do(http.MethodGet, "/api/v1/sales-orders/"+docID, nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), "connection reset")
}

func TestDocumentHandler(t *testing.T) {
	suite.Run(t, new(DocumentHandlerTestSuite))
}
