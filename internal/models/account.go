package models

// Account is a row of chart_of_accounts.
type Account struct {
	AccountID       string  `db:"account_id"`
	Code            string  `db:"code"`
	Name            string  `db:"name"`
	AccountType     string  `db:"account_type"`
	ParentAccountID *string `db:"parent_account_id"` // Nullable
	Description     string  `db:"description"`
	IsActive        bool    `db:"is_active"`
	AuditFields
}
