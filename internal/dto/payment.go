package dto

import (
	"time"

	"github.com/SscSPs/books_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest records a payment against a vendor bill or customer invoice.
type RecordPaymentRequest struct {
	PaymentDate string               `json:"paymentDate" binding:"required,datetime=2006-01-02"`
	Method      domain.PaymentMethod `json:"method" binding:"required,oneof=CASH BANK CARD UPI CHEQUE"`
	Amount      *decimal.Decimal     `json:"amount" binding:"required,decimal_gt=0,decimal_places=2"`
	Reference   string               `json:"reference" binding:"max=100"`
	Notes       string               `json:"notes" binding:"max=1000"`
}

type PaymentResponse struct {
	PaymentID    string               `json:"paymentID"`
	DocumentKind domain.DocumentKind  `json:"documentKind"`
	DocumentID   string               `json:"documentID"`
	ContactID    string               `json:"contactID"`
	PaymentDate  string               `json:"paymentDate"`
	Method       domain.PaymentMethod `json:"method"`
	Amount       decimal.Decimal      `json:"amount"`
	Reference    string               `json:"reference"`
	Notes        string               `json:"notes"`
	CreatedAt    time.Time            `json:"createdAt"`
	CreatedBy    string               `json:"createdBy"`
}

// RecordPaymentResponse returns the payment together with the document's new settlement state.
type RecordPaymentResponse struct {
	Payment       PaymentResponse      `json:"payment"`
	PaidAmount    decimal.Decimal      `json:"paidAmount"`
	PaymentStatus domain.PaymentStatus `json:"paymentStatus"`
}

type ListPaymentsResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:    p.PaymentID,
		DocumentKind: p.DocumentKind,
		DocumentID:   p.DocumentID,
		ContactID:    p.ContactID,
		PaymentDate:  p.PaymentDate.Format(DateFormat),
		Method:       p.Method,
		Amount:       p.Amount,
		Reference:    p.Reference,
		Notes:        p.Notes,
		CreatedAt:    p.CreatedAt,
		CreatedBy:    p.CreatedBy,
	}
}

func ToRecordPaymentResponse(app *domain.PaymentApplication) RecordPaymentResponse {
	return RecordPaymentResponse{
		Payment:       ToPaymentResponse(&app.Payment),
		PaidAmount:    app.PaidAmount,
		PaymentStatus: app.PaymentStatus,
	}
}

func ToListPaymentsResponse(payments []domain.Payment) ListPaymentsResponse {
	out := ListPaymentsResponse{Payments: make([]PaymentResponse, len(payments))}
	for i := range payments {
		out.Payments[i] = ToPaymentResponse(&payments[i])
	}
	return out
}
