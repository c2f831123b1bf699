package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType is the side of a ledger entry.
type EntryType string

const (
	Debit  EntryType = "DEBIT"
	Credit EntryType = "CREDIT"
)

// Opposite returns the other side.
func (t EntryType) Opposite() EntryType {
	if t == Debit {
		return Credit
	}
	return Debit
}

// ReferenceType names the source transaction of a ledger entry or stock movement.
type ReferenceType string

const (
	RefCustomerInvoice ReferenceType = "INVOICE"
	RefVendorBill      ReferenceType = "BILL"
	RefInvoicePayment  ReferenceType = "INVOICE_PAYMENT"
	RefBillPayment     ReferenceType = "BILL_PAYMENT"
	RefInvoiceVoid     ReferenceType = "INVOICE_VOID"
	RefBillVoid        ReferenceType = "BILL_VOID"
	RefStockAdjustment ReferenceType = "STOCK_ADJUSTMENT"
)

// LedgerEntry is an append-only debit or credit against a chart-of-accounts node.
type LedgerEntry struct {
	LedgerEntryID   string          `json:"ledgerEntryID"`
	AccountID       string          `json:"accountID"`
	ContactID       *string         `json:"contactID,omitempty"`
	EntryType       EntryType       `json:"entryType"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate time.Time       `json:"transactionDate"`
	ReferenceType   ReferenceType   `json:"referenceType"`
	ReferenceID     string          `json:"referenceID"`
	Description     string          `json:"description"`
	CreatedAt       time.Time       `json:"createdAt"`
	CreatedBy       string          `json:"createdBy"`
}
