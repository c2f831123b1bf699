package accounting

import (
	"fmt"

	"github.com/SscSPs/books_backend/internal/apperrors"
	"github.com/SscSPs/books_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of fractional digits carried by every monetary amount and quantity.
const MoneyPlaces = 2

var hundred = decimal.NewFromInt(100)

// Round2 rounds half-up to two decimal places.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// HasMoneyPrecision reports whether d has at most two significant fractional digits.
func HasMoneyPrecision(d decimal.Decimal) bool {
	return d.Equal(d.Round(MoneyPlaces))
}

// ValidateAmount checks that a quantity or price is non-negative and carries at most two fractional digits.
func ValidateAmount(field string, d decimal.Decimal) error {
	if d.IsNegative() {
		return fmt.Errorf("%w: %s must not be negative, got %s", apperrors.ErrValidation, field, d.String())
	}
	if !HasMoneyPrecision(d) {
		return fmt.Errorf("%w: %s must have at most %d decimal places, got %s", apperrors.ErrValidation, field, MoneyPlaces, d.String())
	}
	return nil
}

// LineAmounts is the derived money of one line item.
type LineAmounts struct {
	Amount    decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

// ComputeLine derives the tax and total of a line. Tax is rounded once, at the point it is computed.
func ComputeLine(quantity, unitPrice decimal.Decimal, tax *domain.Tax) (LineAmounts, error) {
	if err := ValidateAmount("quantity", quantity); err != nil {
		return LineAmounts{}, err
	}
	if err := ValidateAmount("unitPrice", unitPrice); err != nil {
		return LineAmounts{}, err
	}

	amount := quantity.Mul(unitPrice)
	taxAmount := decimal.Zero

	if tax != nil {
		switch tax.Method {
		case domain.TaxPercentage:
			taxAmount = Round2(amount.Mul(tax.Rate).Div(hundred))
		case domain.TaxFixedValue:
			taxAmount = Round2(tax.Rate)
		default:
			return LineAmounts{}, fmt.Errorf("%w: unknown tax method '%s' on tax %s", apperrors.ErrValidation, tax.Method, tax.TaxID)
		}
	}

	return LineAmounts{
		Amount:    amount,
		TaxAmount: taxAmount,
		Total:     amount.Add(taxAmount),
	}, nil
}

// DocumentTotals are the aggregated amounts of a document.
type DocumentTotals struct {
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

// AggregateTotals sums already computed lines. The total is not re-rounded.
func AggregateTotals(lines []domain.LineItem) (DocumentTotals, error) {
	if len(lines) == 0 {
		return DocumentTotals{}, fmt.Errorf("%w: a document needs at least one line item", apperrors.ErrValidation)
	}

	subtotal := decimal.Zero
	taxAmount := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.Amount())
		taxAmount = taxAmount.Add(line.TaxAmount)
	}

	return DocumentTotals{
		Subtotal:  subtotal,
		TaxAmount: taxAmount,
		Total:     subtotal.Add(taxAmount),
	}, nil
}

// NaturalBalance returns the balance of an account in its normal direction: debit minus credit for
// assets and expenses, credit minus debit for liabilities, equity and income.
func NaturalBalance(accountType domain.AccountType, debit, credit decimal.Decimal) (decimal.Decimal, error) {
	switch accountType {
	case domain.Asset, domain.Expense:
		return debit.Sub(credit), nil
	case domain.Liability, domain.Equity, domain.Income:
		return credit.Sub(debit), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown account type '%s'", accountType)
	}
}

// ValidateEntriesBalance checks that a set of ledger entries posts equal debits and credits with positive amounts.
func ValidateEntriesBalance(entries []domain.LedgerEntry) error {
	if len(entries) < 2 {
		return fmt.Errorf("a posting needs at least two ledger entries, got %d", len(entries))
	}

	debits := decimal.Zero
	credits := decimal.Zero
	for _, e := range entries {
		if !e.Amount.IsPositive() {
			return fmt.Errorf("ledger entry amount must be positive on account %s", e.AccountID)
		}
		switch e.EntryType {
		case domain.Debit:
			debits = debits.Add(e.Amount)
		case domain.Credit:
			credits = credits.Add(e.Amount)
		default:
			return fmt.Errorf("unknown entry type '%s' on account %s", e.EntryType, e.AccountID)
		}
	}

	if !debits.Equal(credits) {
		return fmt.Errorf("ledger entries do not balance: debits %s, credits %s", debits.String(), credits.String())
	}
	return nil
}
