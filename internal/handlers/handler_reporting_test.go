package handlers_test

import (
	"encoding/json"
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

type ReportingHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockReportingService *MockReportingService
	token                string
}

func (suite *ReportingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(middleware.AuthMiddleware(testJWTSecret))

	suite.mockReportingService = new(MockReportingService)
	handlers.RegisterReportingRoutes(suite.router.Group("/api/v1"), suite.mockReportingService)

	token, err := generateTestToken(uuid.NewString())
	suite.Require().NoError(err)
	suite.token = token
}

func (suite *ReportingHandlerTestSuite) get(url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func date(s string) time.Time {
	t, err := time.Parse(dto.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func (suite *ReportingHandlerTestSuite) TestTrialBalance_AsOf() {
	asOf := date("2025-03-31")
	tb := &domain.TrialBalance{
		AsOf: asOf,
		Rows: []domain.TrialBalanceRow{
			{AccountID: uuid.NewString(), Code: "1000", AccountName: "Cash", AccountType: domain.Asset, Debit: decimal.NewFromInt(50), Credit: decimal.Zero},
			{AccountID: uuid.NewString(), Code: "4000", AccountName: "Sales", AccountType: domain.Income, Debit: decimal.Zero, Credit: decimal.NewFromInt(50)},
		},
		TotalDebit:  decimal.NewFromInt(50),
		TotalCredit: decimal.NewFromInt(50),
		IsBalanced:  true,
	}
	suite.mockReportingService.On("TrialBalance", mock.Anything, asOf).Return(tb, nil).Once()

	w := suite.get("/api/v1/reports/trial-balance?asOf=2025-03-31")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TrialBalanceResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.IsBalanced)
	suite.Len(resp.Rows, 2)
	suite.mockReportingService.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestTrialBalance_BadDate() {
	w := suite.get("/api/v1/reports/trial-balance?asOf=31-03-2025")
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReportingService.AssertNotCalled(suite.T(), "TrialBalance")
}

func (suite *ReportingHandlerTestSuite) TestProfitAndLoss_DefaultsToCurrentMonth() {
	report := &domain.ProfitAndLoss{NetProfit: decimal.Zero}
	suite.mockReportingService.On("ProfitAndLoss", mock.Anything,
		mock.MatchedBy(func(from time.Time) bool { return from.Day() == 1 }),
		mock.MatchedBy(func(to time.Time) bool {
			now := time.Now().UTC()
			return to.Year() == now.Year() && to.YearDay() == now.YearDay()
		}),
	).Return(report, nil).Once()

	w := suite.get("/api/v1/reports/profit-and-loss")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockReportingService.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestProfitAndLoss_InvertedRange() {
	from, to := date("2025-03-31"), date("2025-03-01")
	suite.mockReportingService.On("ProfitAndLoss", mock.Anything, from, to).
		Return(nil, apperrors.NewValidationError("from must not be after to")).Once()

	w := suite.get("/api/v1/reports/profit-and-loss?from=2025-03-31&to=2025-03-01")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ReportingHandlerTestSuite) TestBalanceSheet_Success() {
	asOf := date("2025-03-31")
	sheet := &domain.BalanceSheet{
		AsOf: asOf,
		Assets: domain.BalanceSheetSection{
			Items: []domain.BalanceSheetItem{{AccountID: uuid.NewString(), Code: "1000", Name: "Cash", Balance: decimal.NewFromInt(100), IsDebit: true}},
			Total: decimal.NewFromInt(100),
		},
		Liabilities: domain.BalanceSheetSection{Items: []domain.BalanceSheetItem{}, Total: decimal.Zero},
		Equity: domain.BalanceSheetSection{
			Items: []domain.BalanceSheetItem{{Name: "Current Period Earnings", Balance: decimal.NewFromInt(100)}},
			Total: decimal.NewFromInt(100),
		},
		IsBalanced: true,
	}
	suite.mockReportingService.On("BalanceSheet", mock.Anything, asOf).Return(sheet, nil).Once()

	w := suite.get("/api/v1/reports/balance-sheet?asOf=2025-03-31")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BalanceSheetResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.IsBalanced)
}

func (suite *ReportingHandlerTestSuite) TestPartnerLedger_OptionalDates() {
	contactID := uuid.NewString()
	from := date("2025-01-01")
	ledger := &domain.PartnerLedger{
		ContactID:      contactID,
		ContactName:    "Acme",
		From:           &from,
		OpeningBalance: decimal.NewFromInt(50),
		Entries:        []domain.PartnerLedgerRow{},
		ClosingBalance: decimal.NewFromInt(50),
		IsDebit:        true,
	}
	suite.mockReportingService.On("PartnerLedger", mock.Anything, contactID,
		mock.MatchedBy(func(f *time.Time) bool { return f != nil && f.Equal(from) }),
		(*time.Time)(nil),
	).Return(ledger, nil).Once()

	w := suite.get("/api/v1/reports/partner-ledger/" + contactID + "?from=2025-01-01")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PartnerLedgerResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Acme", resp.ContactName)
}

func (suite *ReportingHandlerTestSuite) TestPartnerLedger_UnknownContact() {
	contactID := uuid.NewString()
	suite.mockReportingService.On("PartnerLedger", mock.Anything, contactID, mock.Anything, mock.Anything).
		Return(nil, apperrors.NewNotFoundError("contact", contactID)).Once()

	w := suite.get("/api/v1/reports/partner-ledger/" + contactID)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ReportingHandlerTestSuite) TestPartnerLedger_MalformedContactID() {
	w := suite.get("/api/v1/reports/partner-ledger/acme")
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReportingService.AssertNotCalled(suite.T(), "PartnerLedger")
}

func (suite *ReportingHandlerTestSuite) TestStockStatement_ProductFilter() {
	productID := uuid.NewString()
	asOf := date("2025-03-31")
	statement := &domain.StockStatement{AsOf: asOf, Items: []domain.StockStatementItem{}, TotalValue: decimal.Zero}
	suite.mockReportingService.On("StockStatement", mock.Anything, asOf,
		mock.MatchedBy(func(p *string) bool { return p != nil && *p == productID }),
	).Return(statement, nil).Once()

	w := suite.get("/api/v1/reports/stock-statement?asOf=2025-03-31&productId=" + productID)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockReportingService.AssertExpectations(suite.T())
}

func TestReportingHandler(t *testing.T) {
	suite.Run(t, new(ReportingHandlerTestSuite))
}
