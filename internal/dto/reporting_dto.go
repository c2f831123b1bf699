package dto

import (
	"github.com/SscSPs/books_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AsOfParams is the query of point-in-time reports. An empty AsOf means today.
type AsOfParams struct {
	AsOf string `form:"asOf" binding:"omitempty,datetime=2006-01-02"`
}

// DateRangeParams is the query of period reports.
type DateRangeParams struct {
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// StockStatementParams filters the stock statement to one product when ProductID is set.
type StockStatementParams struct {
	AsOf      string `form:"asOf" binding:"omitempty,datetime=2006-01-02"`
	ProductID string `form:"productId" binding:"omitempty,uuid"`
}

// TrialBalanceRowResponse represents a row in the trial balance report response
type TrialBalanceRowResponse struct {
	AccountID   string          `json:"accountID"`
	Code        string          `json:"code"`
	AccountName string          `json:"accountName"`
	AccountType string          `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	AsOf   string                    `json:"asOf"`
	Rows   []TrialBalanceRowResponse `json:"rows"`
	Totals struct {
		Debit  decimal.Decimal `json:"debit"`
		Credit decimal.Decimal `json:"credit"`
	} `json:"totals"`
	IsBalanced bool `json:"isBalanced"`
}

// AccountAmountResponse represents an account with its amount in a financial report
type AccountAmountResponse struct {
	AccountID string          `json:"accountID,omitempty"`
	Code      string          `json:"code,omitempty"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	IsDebit   *bool           `json:"isDebit,omitempty"`
}

// ProfitAndLossResponse represents the profit and loss report response
type ProfitAndLossResponse struct {
	FromDate string                  `json:"fromDate"`
	ToDate   string                  `json:"toDate"`
	Revenue  []AccountAmountResponse `json:"revenue"`
	Expenses []AccountAmountResponse `json:"expenses"`
	Summary  struct {
		TotalRevenue  decimal.Decimal `json:"totalRevenue"`
		TotalExpenses decimal.Decimal `json:"totalExpenses"`
		NetProfit     decimal.Decimal `json:"netProfit"`
	} `json:"summary"`
}

// BalanceSheetResponse represents the balance sheet report response
type BalanceSheetResponse struct {
	AsOf        string                  `json:"asOf"`
	Assets      []AccountAmountResponse `json:"assets"`
	Liabilities []AccountAmountResponse `json:"liabilities"`
	Equity      []AccountAmountResponse `json:"equity"`
	Summary     struct {
		TotalAssets      decimal.Decimal `json:"totalAssets"`
		TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
		TotalEquity      decimal.Decimal `json:"totalEquity"`
	} `json:"summary"`
	IsBalanced bool `json:"isBalanced"`
}

type PartnerLedgerRowResponse struct {
	Date          string               `json:"date"`
	ReferenceType domain.ReferenceType `json:"referenceType"`
	ReferenceID   string               `json:"referenceID"`
	Description   string               `json:"description"`
	Debit         decimal.Decimal      `json:"debit"`
	Credit        decimal.Decimal      `json:"credit"`
	Balance       decimal.Decimal      `json:"balance"`
}

type PartnerLedgerResponse struct {
	ContactID      string                     `json:"contactID"`
	ContactName    string                     `json:"contactName"`
	FromDate       *string                    `json:"fromDate,omitempty"`
	ToDate         *string                    `json:"toDate,omitempty"`
	OpeningBalance decimal.Decimal            `json:"openingBalance"`
	Entries        []PartnerLedgerRowResponse `json:"entries"`
	ClosingBalance decimal.Decimal            `json:"closingBalance"`
	IsDebit        bool                       `json:"isDebit"`
}

type StockStatementRowResponse struct {
	ProductID     string          `json:"productID"`
	Name          string          `json:"name"`
	Unit          string          `json:"unit"`
	In            decimal.Decimal `json:"in"`
	Out           decimal.Decimal `json:"out"`
	Adjustment    decimal.Decimal `json:"adjustment"`
	ClosingStock  decimal.Decimal `json:"closingStock"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	StockValue    decimal.Decimal `json:"stockValue"`
}

type StockStatementResponse struct {
	AsOf       string                      `json:"asOf"`
	Items      []StockStatementRowResponse `json:"items"`
	TotalValue decimal.Decimal             `json:"totalValue"`
}

// ToTrialBalanceResponse converts a domain trial balance to a DTO response
func ToTrialBalanceResponse(tb *domain.TrialBalance) TrialBalanceResponse {
	response := TrialBalanceResponse{
		AsOf:       tb.AsOf.Format(DateFormat),
		Rows:       make([]TrialBalanceRowResponse, len(tb.Rows)),
		IsBalanced: tb.IsBalanced,
	}
	for i, row := range tb.Rows {
		response.Rows[i] = TrialBalanceRowResponse{
			AccountID:   row.AccountID,
			Code:        row.Code,
			AccountName: row.AccountName,
			AccountType: string(row.AccountType),
			Debit:       row.Debit,
			Credit:      row.Credit,
		}
	}
	response.Totals.Debit = tb.TotalDebit
	response.Totals.Credit = tb.TotalCredit
	return response
}

// ToProfitAndLossResponse converts a domain profit and loss report to a DTO response
func ToProfitAndLossResponse(report *domain.ProfitAndLoss) ProfitAndLossResponse {
	response := ProfitAndLossResponse{
		FromDate: report.StartDate.Format(DateFormat),
		ToDate:   report.EndDate.Format(DateFormat),
		Revenue:  toProfitAndLossItems(report.Income.Items),
		Expenses: toProfitAndLossItems(report.Expenses.Items),
	}
	response.Summary.TotalRevenue = report.Income.Total
	response.Summary.TotalExpenses = report.Expenses.Total
	response.Summary.NetProfit = report.NetProfit
	return response
}

func toProfitAndLossItems(items []domain.ProfitAndLossItem) []AccountAmountResponse {
	out := make([]AccountAmountResponse, len(items))
	for i, item := range items {
		out[i] = AccountAmountResponse{
			AccountID: item.AccountID,
			Code:      item.Code,
			Name:      item.Name,
			Amount:    item.Amount,
		}
	}
	return out
}

// ToBalanceSheetResponse converts a domain balance sheet to a DTO response
func ToBalanceSheetResponse(sheet *domain.BalanceSheet) BalanceSheetResponse {
	response := BalanceSheetResponse{
		AsOf:        sheet.AsOf.Format(DateFormat),
		Assets:      toBalanceSheetItems(sheet.Assets.Items),
		Liabilities: toBalanceSheetItems(sheet.Liabilities.Items),
		Equity:      toBalanceSheetItems(sheet.Equity.Items),
		IsBalanced:  sheet.IsBalanced,
	}
	response.Summary.TotalAssets = sheet.Assets.Total
	response.Summary.TotalLiabilities = sheet.Liabilities.Total
	response.Summary.TotalEquity = sheet.Equity.Total
	return response
}

func toBalanceSheetItems(items []domain.BalanceSheetItem) []AccountAmountResponse {
	out := make([]AccountAmountResponse, len(items))
	for i, item := range items {
		isDebit := item.IsDebit
		out[i] = AccountAmountResponse{
			AccountID: item.AccountID,
			Code:      item.Code,
			Name:      item.Name,
			Amount:    item.Balance,
			IsDebit:   &isDebit,
		}
	}
	return out
}

func ToPartnerLedgerResponse(ledger *domain.PartnerLedger) PartnerLedgerResponse {
	response := PartnerLedgerResponse{
		ContactID:      ledger.ContactID,
		ContactName:    ledger.ContactName,
		OpeningBalance: ledger.OpeningBalance,
		Entries:        make([]PartnerLedgerRowResponse, len(ledger.Entries)),
		ClosingBalance: ledger.ClosingBalance,
		IsDebit:        ledger.IsDebit,
	}
	if ledger.From != nil {
		from := ledger.From.Format(DateFormat)
		response.FromDate = &from
	}
	if ledger.To != nil {
		to := ledger.To.Format(DateFormat)
		response.ToDate = &to
	}
	for i, row := range ledger.Entries {
		response.Entries[i] = PartnerLedgerRowResponse{
			Date:          row.Date.Format(DateFormat),
			ReferenceType: row.ReferenceType,
			ReferenceID:   row.ReferenceID,
			Description:   row.Description,
			Debit:         row.Debit,
			Credit:        row.Credit,
			Balance:       row.Balance,
		}
	}
	return response
}

func ToStockStatementResponse(statement *domain.StockStatement) StockStatementResponse {
	response := StockStatementResponse{
		AsOf:       statement.AsOf.Format(DateFormat),
		Items:      make([]StockStatementRowResponse, len(statement.Items)),
		TotalValue: statement.TotalValue,
	}
	for i, item := range statement.Items {
		response.Items[i] = StockStatementRowResponse{
			ProductID:     item.ProductID,
			Name:          item.Name,
			Unit:          item.Unit,
			In:            item.In,
			Out:           item.Out,
			Adjustment:    item.Adjustment,
			ClosingStock:  item.ClosingStock,
			PurchasePrice: item.PurchasePrice,
			StockValue:    item.StockValue,
		}
	}
	return response
}
