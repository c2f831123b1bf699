package accounting

import (
	"fmt"

	"github.com/SscSPs/books_backend/internal/apperrors"
	"github.com/SscSPs/books_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentOutcome is the settlement state of a document after a payment.
type PaymentOutcome struct {
	NewPaidAmount decimal.Decimal
	NewStatus     domain.PaymentStatus
}

// DerivePaymentStatus maps a paid amount against a total.
func DerivePaymentStatus(paid, total decimal.Decimal) domain.PaymentStatus {
	switch {
	case !paid.IsPositive():
		return domain.PaymentUnpaid
	case paid.GreaterThanOrEqual(total):
		return domain.PaymentPaid
	default:
		return domain.PaymentPartial
	}
}

// ApplyPayment validates amount against the document's remaining balance and returns the new
// paid amount and status. Overpayment is rejected, never clamped.
func ApplyPayment(doc domain.Document, amount decimal.Decimal) (PaymentOutcome, error) {
	if !doc.Kind.IsPayable() {
		return PaymentOutcome{}, fmt.Errorf("%w: payments cannot be recorded against a %s", apperrors.ErrValidation, doc.Kind)
	}
	if !amount.IsPositive() {
		return PaymentOutcome{}, fmt.Errorf("%w: payment amount must be greater than zero, got %s", apperrors.ErrValidation, amount.String())
	}
	if !HasMoneyPrecision(amount) {
		return PaymentOutcome{}, fmt.Errorf("%w: payment amount must have at most %d decimal places, got %s", apperrors.ErrValidation, MoneyPlaces, amount.String())
	}

	remaining := doc.Remaining()
	if amount.GreaterThan(remaining) {
		return PaymentOutcome{}, fmt.Errorf("%w: amount %s, remaining %s on %s", apperrors.ErrOverpayment, amount.StringFixed(MoneyPlaces), remaining.StringFixed(MoneyPlaces), doc.Number)
	}

	newPaid := doc.PaidAmount.Add(amount)
	status := domain.PaymentPartial
	if newPaid.GreaterThanOrEqual(doc.Total) {
		status = domain.PaymentPaid
	}

	return PaymentOutcome{NewPaidAmount: newPaid, NewStatus: status}, nil
}
