package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/books_backend/internal/core/ports/services"
	"github.com/SscSPs/books_backend/internal/dto"
	"github.com/SscSPs/books_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
	now              func() time.Time
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		now:              time.Now,
	}
}

// RegisterReportingRoutes registers routes related to financial reports
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.getTrialBalance)
		reports.GET("/profit-and-loss", h.getProfitAndLoss)
		reports.GET("/balance-sheet", h.getBalanceSheet)
		reports.GET("/partner-ledger/:contactId", h.getPartnerLedger)
		reports.GET("/stock-statement", h.getStockStatement)
	}
}

func (h *reportingHandler) today() time.Time {
	now := h.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// asOfOrToday parses an optional asOf query value, defaulting to today.
func (h *reportingHandler) asOfOrToday(value string) (time.Time, error) {
	if value == "" {
		return h.today(), nil
	}
	return dto.ParseDate("asOf", value)
}

// getTrialBalance godoc
// @Summary Generate trial balance report
// @Description Generates a trial balance report as of a specific date
// @Tags reports
// @Produce json
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	var params dto.AsOfParams
	if !bindQuery(c, &params) {
		return
	}
	asOf, err := h.asOfOrToday(params.AsOf)
	if err != nil {
		respondError(c, err, "Failed to generate trial balance")
		return
	}

	tb, err := h.reportingService.TrialBalance(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, err, "Failed to generate trial balance")
		return
	}

	if !tb.IsBalanced {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Trial balance does not balance",
			slog.String("as_of", asOf.Format(dto.DateFormat)),
			slog.String("total_debit", tb.TotalDebit.String()),
			slog.String("total_credit", tb.TotalCredit.String()))
	}
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(tb))
}

// getProfitAndLoss godoc
// @Summary Generate profit and loss report
// @Description Generates a profit and loss report for a period. Defaults to the current month up to today.
// @Tags reports
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)" default(first day of current month)
// @Param to query string false "End date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.ProfitAndLossResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/profit-and-loss [get]
func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	var params dto.DateRangeParams
	if !bindQuery(c, &params) {
		return
	}

	today := h.today()
	from := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := today
	var err error
	if params.From != "" {
		if from, err = dto.ParseDate("from", params.From); err != nil {
			respondError(c, err, "Failed to generate profit and loss")
			return
		}
	}
	if params.To != "" {
		if to, err = dto.ParseDate("to", params.To); err != nil {
			respondError(c, err, "Failed to generate profit and loss")
			return
		}
	}

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err, "Failed to generate profit and loss")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfitAndLossResponse(report))
}

// getBalanceSheet godoc
// @Summary Generate balance sheet report
// @Description Generates a balance sheet as of a specific date
// @Tags reports
// @Produce json
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	var params dto.AsOfParams
	if !bindQuery(c, &params) {
		return
	}
	asOf, err := h.asOfOrToday(params.AsOf)
	if err != nil {
		respondError(c, err, "Failed to generate balance sheet")
		return
	}

	sheet, err := h.reportingService.BalanceSheet(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, err, "Failed to generate balance sheet")
		return
	}

	if !sheet.IsBalanced {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Balance sheet does not balance",
			slog.String("as_of", asOf.Format(dto.DateFormat)))
	}
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(sheet))
}

// getPartnerLedger godoc
// @Summary Generate partner ledger
// @Description Lists a contact's receivable and payable postings with a running balance
// @Tags reports
// @Produce json
// @Param contactId path string true "Contact ID"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.PartnerLedgerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Contact not found"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/partner-ledger/{contactId} [get]
func (h *reportingHandler) getPartnerLedger(c *gin.Context) {
	var path dto.PartnerLedgerPath
	if !bindURI(c, &path) {
		return
	}
	var params dto.DateRangeParams
	if !bindQuery(c, &params) {
		return
	}
	from, err := dto.ParseOptionalDate("from", &params.From)
	if err != nil {
		respondError(c, err, "Failed to generate partner ledger")
		return
	}
	to, err := dto.ParseOptionalDate("to", &params.To)
	if err != nil {
		respondError(c, err, "Failed to generate partner ledger")
		return
	}

	ledger, err := h.reportingService.PartnerLedger(c.Request.Context(), path.ContactID, from, to)
	if err != nil {
		respondError(c, err, "Failed to generate partner ledger")
		return
	}
	c.JSON(http.StatusOK, dto.ToPartnerLedgerResponse(ledger))
}

// getStockStatement godoc
// @Summary Generate stock statement
// @Description Lists closing quantity and value per product as of a date
// @Tags reports
// @Produce json
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Param productId query string false "Restrict to one product"
// @Success 200 {object} dto.StockStatementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/stock-statement [get]
func (h *reportingHandler) getStockStatement(c *gin.Context) {
	var params dto.StockStatementParams
	if !bindQuery(c, &params) {
		return
	}
	asOf, err := h.asOfOrToday(params.AsOf)
	if err != nil {
		respondError(c, err, "Failed to generate stock statement")
		return
	}

	var productID *string
	if params.ProductID != "" {
		productID = &params.ProductID
	}

	statement, err := h.reportingService.StockStatement(c.Request.Context(), asOf, productID)
	if err != nil {
		respondError(c, err, "Failed to generate stock statement")
		return
	}
	c.JSON(http.StatusOK, dto.ToStockStatementResponse(statement))
}
