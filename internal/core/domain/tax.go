package domain

import "github.com/shopspring/decimal"

// TaxMethod selects how a tax rate is applied to a line.
type TaxMethod string

const (
	// TaxPercentage applies rate/100 to the line amount.
	TaxPercentage TaxMethod = "PERCENTAGE"
	// TaxFixedValue adds rate as a flat amount per line, independent of quantity.
	TaxFixedValue TaxMethod = "FIXED_VALUE"
)

// Tax is a named tax rate.
type Tax struct {
	TaxID  string          `json:"taxID"`
	Name   string          `json:"name"`
	Rate   decimal.Decimal `json:"rate"`
	Method TaxMethod       `json:"method"`
	AuditFields
}
