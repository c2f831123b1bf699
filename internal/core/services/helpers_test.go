package services_test

import (
	"github.com/SscSPs/books_backend/internal/core/domain"
	"github.com/SscSPs/books_backend/internal/platform/config"
	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func dp(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

func strPtr(s string) *string {
	return &s
}

var postingCodes = config.PostingAccounts{
	Cash:          "1000",
	Bank:          "1010",
	Receivable:    "1100",
	Payable:       "2100",
	Sales:         "4000",
	Purchases:     "5000",
	TaxPayable:    "2200",
	TaxReceivable: "1300",
}

// chart returns the posting accounts keyed by code, with IDs "acc-<code>".
func chart() map[string]domain.Account {
	types := map[string]domain.AccountType{
		"1000": domain.Asset, "1010": domain.Asset, "1100": domain.Asset, "1300": domain.Asset,
		"2100": domain.Liability, "2200": domain.Liability,
		"4000": domain.Income, "5000": domain.Expense,
	}
	out := make(map[string]domain.Account, len(types))
	for code, t := range types {
		out[code] = domain.Account{AccountID: "acc-" + code, Code: code, Name: code, AccountType: t, IsActive: true}
	}
	return out
}

// sideTotals sums the debits and credits per account of a set of entries.
func sideTotals(entries []domain.LedgerEntry) (debits, credits map[string]decimal.Decimal) {
	debits = map[string]decimal.Decimal{}
	credits = map[string]decimal.Decimal{}
	for _, e := range entries {
		if e.EntryType == domain.Debit {
			debits[e.AccountID] = debits[e.AccountID].Add(e.Amount)
		} else {
			credits[e.AccountID] = credits[e.AccountID].Add(e.Amount)
		}
	}
	return debits, credits
}
