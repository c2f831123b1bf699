package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how a payment was settled.
type PaymentMethod string

const (
	MethodCash   PaymentMethod = "CASH"
	MethodBank   PaymentMethod = "BANK"
	MethodCard   PaymentMethod = "CARD"
	MethodUPI    PaymentMethod = "UPI"
	MethodCheque PaymentMethod = "CHEQUE"
)

// Payment settles part or all of a vendor bill or customer invoice.
type Payment struct {
	PaymentID    string          `json:"paymentID"`
	DocumentKind DocumentKind    `json:"documentKind"`
	DocumentID   string          `json:"documentID"`
	ContactID    string          `json:"contactID"`
	PaymentDate  time.Time       `json:"paymentDate"`
	Method       PaymentMethod   `json:"method"`
	Amount       decimal.Decimal `json:"amount"`
	Reference    string          `json:"reference"`
	Notes        string          `json:"notes"`
	AuditFields
}

// PaymentApplication is everything a recorded payment writes: the payment row, the document's new
// settlement state and the ledger entries.
type PaymentApplication struct {
	Payment       Payment
	PaidAmount    decimal.Decimal
	PaymentStatus PaymentStatus
	Entries       []LedgerEntry
}
