package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountBalance is the debit and credit activity of one account over a report window.
type AccountBalance struct {
	AccountID   string          `json:"accountID"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// BalanceSheetItem is one account line on the balance sheet. Balance is a magnitude; IsDebit gives its side.
type BalanceSheetItem struct {
	AccountID string          `json:"accountID"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	IsDebit   bool            `json:"isDebit"`
}

type BalanceSheetSection struct {
	Items []BalanceSheetItem `json:"items"`
	Total decimal.Decimal    `json:"total"`
}

type BalanceSheet struct {
	AsOf        time.Time           `json:"asOf"`
	Assets      BalanceSheetSection `json:"assets"`
	Liabilities BalanceSheetSection `json:"liabilities"`
	Equity      BalanceSheetSection `json:"equity"`
	IsBalanced  bool                `json:"isBalanced"`
}

type ProfitAndLossItem struct {
	AccountID string          `json:"accountID"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
}

type ProfitAndLossSection struct {
	Items []ProfitAndLossItem `json:"items"`
	Total decimal.Decimal     `json:"total"`
}

type ProfitAndLoss struct {
	StartDate time.Time            `json:"startDate"`
	EndDate   time.Time            `json:"endDate"`
	Income    ProfitAndLossSection `json:"income"`
	Expenses  ProfitAndLossSection `json:"expenses"`
	NetProfit decimal.Decimal      `json:"netProfit"`
}

// PartnerLedgerRow is one counterparty entry with the running balance after it.
type PartnerLedgerRow struct {
	Date          time.Time       `json:"date"`
	ReferenceType ReferenceType   `json:"referenceType"`
	ReferenceID   string          `json:"referenceID"`
	Description   string          `json:"description"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Balance       decimal.Decimal `json:"balance"`
}

type PartnerLedger struct {
	ContactID      string             `json:"contactID"`
	ContactName    string             `json:"contactName"`
	From           *time.Time         `json:"from,omitempty"`
	To             *time.Time         `json:"to,omitempty"`
	OpeningBalance decimal.Decimal    `json:"openingBalance"`
	Entries        []PartnerLedgerRow `json:"entries"`
	ClosingBalance decimal.Decimal    `json:"closingBalance"`
	IsDebit        bool               `json:"isDebit"`
}

type StockStatementItem struct {
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

type StockStatement struct {
	AsOf       time.Time            `json:"asOf"`
	Items      []StockStatementItem `json:"items"`
	TotalValue decimal.Decimal      `json:"totalValue"`
}

// TrialBalanceRow represents a single row in a trial balance report
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	Code        string          `json:"code"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

type TrialBalance struct {
	AsOf        time.Time         `json:"asOf"`
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
	IsBalanced  bool              `json:"isBalanced"`
}
