package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is one side of a posting. Amount is always positive; EntryType carries the side.
type LedgerEntry struct {
	LedgerEntryID   string          `db:"ledger_entry_id"`
	AccountID       string          `db:"account_id"`
	ContactID       *string         `db:"contact_id"`
	EntryType       string          `db:"entry_type"`
	Amount          decimal.Decimal `db:"amount"`
	TransactionDate time.Time       `db:"transaction_date"`
	ReferenceType   string          `db:"reference_type"`
	ReferenceID     string          `db:"reference_id"`
	Description     string          `db:"description"`
	CreatedAt       time.Time       `db:"created_at"`
	CreatedBy       string          `db:"created_by"`
}

type StockMovement struct {
	MovementID    string          `db:"movement_id"`
	ProductID     string          `db:"product_id"`
	MovementType  string          `db:"movement_type"`
	Quantity      decimal.Decimal `db:"quantity"`
	MovementDate  time.Time       `db:"movement_date"`
	ReferenceType string          `db:"reference_type"`
	ReferenceID   string          `db:"reference_id"`
	Notes         string          `db:"notes"`
	CreatedAt     time.Time       `db:"created_at"`
	CreatedBy     string          `db:"created_by"`
}

// AccountTotals is a per-account debit and credit sum.
type AccountTotals struct {
	AccountID   string          `db:"account_id"`
	Code        string          `db:"code"`
	Name        string          `db:"name"`
	AccountType string          `db:"account_type"`
	Debit       decimal.Decimal `db:"total_debit"`
	Credit      decimal.Decimal `db:"total_credit"`
}
