package accounting

import (
	"sort"
	"time"

	"github.com/SscSPs/books_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceTolerance is the largest difference between assets and liabilities plus equity still reported as balanced.
var BalanceTolerance = decimal.NewFromFloat(0.01)

// CurrentEarningsName labels the synthetic equity line carrying unclosed income minus expenses.
const CurrentEarningsName = "Current Period Earnings"

// BuildBalanceSheet turns per-account debit/credit totals up to asOf into a balance sheet.
// Only balance-sheet accounts with a non-zero balance are listed. Section totals are signed in the
// section's natural direction, so a contra balance reduces its section.
func BuildBalanceSheet(asOf time.Time, balances []domain.AccountBalance) domain.BalanceSheet {
	sheet := domain.BalanceSheet{
		AsOf:        asOf,
		Assets:      domain.BalanceSheetSection{Items: []domain.BalanceSheetItem{}, Total: decimal.Zero},
		Liabilities: domain.BalanceSheetSection{Items: []domain.BalanceSheetItem{}, Total: decimal.Zero},
		Equity:      domain.BalanceSheetSection{Items: []domain.BalanceSheetItem{}, Total: decimal.Zero},
	}

	earnings := decimal.Zero
	for _, b := range sortedByCode(balances) {
		net := b.Debit.Sub(b.Credit)

		if b.AccountType == domain.Income || b.AccountType == domain.Expense {
			earnings = earnings.Sub(net)
			continue
		}
		if net.IsZero() || !b.AccountType.IsBalanceSheet() {
			continue
		}

		item := domain.BalanceSheetItem{
			AccountID: b.AccountID,
			Code:      b.Code,
			Name:      b.Name,
			Balance:   net.Abs(),
			IsDebit:   !net.IsNegative(),
		}

		switch b.AccountType {
		case domain.Asset:
			sheet.Assets.Items = append(sheet.Assets.Items, item)
			sheet.Assets.Total = sheet.Assets.Total.Add(net)
		case domain.Liability:
			sheet.Liabilities.Items = append(sheet.Liabilities.Items, item)
			sheet.Liabilities.Total = sheet.Liabilities.Total.Sub(net)
		case domain.Equity:
			sheet.Equity.Items = append(sheet.Equity.Items, item)
			sheet.Equity.Total = sheet.Equity.Total.Sub(net)
		}
	}

	if !earnings.IsZero() {
		sheet.Equity.Items = append(sheet.Equity.Items, domain.BalanceSheetItem{
			Name:    CurrentEarningsName,
			Balance: earnings.Abs(),
			IsDebit: earnings.IsNegative(),
		})
		sheet.Equity.Total = sheet.Equity.Total.Add(earnings)
	}

	diff := sheet.Assets.Total.Sub(sheet.Liabilities.Total.Add(sheet.Equity.Total))
	sheet.IsBalanced = diff.Abs().LessThan(BalanceTolerance)
	return sheet
}

// BuildProfitAndLoss turns per-account activity inside [start, end] into a profit and loss statement.
func BuildProfitAndLoss(start, end time.Time, activity []domain.AccountBalance) domain.ProfitAndLoss {
	report := domain.ProfitAndLoss{
		StartDate: start,
		EndDate:   end,
		Income:    domain.ProfitAndLossSection{Items: []domain.ProfitAndLossItem{}, Total: decimal.Zero},
		Expenses:  domain.ProfitAndLossSection{Items: []domain.ProfitAndLossItem{}, Total: decimal.Zero},
	}

	for _, a := range sortedByCode(activity) {
		switch a.AccountType {
		case domain.Income:
			amount := a.Credit.Sub(a.Debit)
			report.Income.Items = append(report.Income.Items, domain.ProfitAndLossItem{
				AccountID: a.AccountID, Code: a.Code, Name: a.Name, Amount: amount,
			})
			report.Income.Total = report.Income.Total.Add(amount)
		case domain.Expense:
			amount := a.Debit.Sub(a.Credit)
			report.Expenses.Items = append(report.Expenses.Items, domain.ProfitAndLossItem{
				AccountID: a.AccountID, Code: a.Code, Name: a.Name, Amount: amount,
			})
			report.Expenses.Total = report.Expenses.Total.Add(amount)
		}
	}

	report.NetProfit = report.Income.Total.Sub(report.Expenses.Total)
	return report
}

// BuildPartnerLedger walks a counterparty's entries chronologically from an opening balance.
// Debits raise the running balance, credits lower it.
func BuildPartnerLedger(contact domain.Contact, from, to *time.Time, opening decimal.Decimal, entries []domain.LedgerEntry) domain.PartnerLedger {
	ordered := make([]domain.LedgerEntry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].TransactionDate.Equal(ordered[j].TransactionDate) {
			return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
		}
		return ordered[i].TransactionDate.Before(ordered[j].TransactionDate)
	})

	ledger := domain.PartnerLedger{
		ContactID:      contact.ContactID,
		ContactName:    contact.Name,
		From:           from,
		To:             to,
		OpeningBalance: opening,
		Entries:        make([]domain.PartnerLedgerRow, 0, len(ordered)),
	}

	running := opening
	for _, e := range ordered {
		row := domain.PartnerLedgerRow{
			Date:          e.TransactionDate,
			ReferenceType: e.ReferenceType,
			ReferenceID:   e.ReferenceID,
			Description:   e.Description,
			Debit:         decimal.Zero,
			Credit:        decimal.Zero,
		}
		if e.EntryType == domain.Debit {
			row.Debit = e.Amount
			running = running.Add(e.Amount)
		} else {
			row.Credit = e.Amount
			running = running.Sub(e.Amount)
		}
		row.Balance = running
		ledger.Entries = append(ledger.Entries, row)
	}

	ledger.ClosingBalance = running
	ledger.IsDebit = !running.IsNegative()
	return ledger
}

// BuildStockStatement folds stock movements up to asOf into closing quantities and values per product.
// Products are listed in the order given, including those without movements.
func BuildStockStatement(asOf time.Time, products []domain.Product, movements []domain.StockMovement) domain.StockStatement {
	rows := make(map[string]*domain.StockStatementItem, len(products))
	statement := domain.StockStatement{
		AsOf:       asOf,
		Items:      make([]domain.StockStatementItem, 0, len(products)),
		TotalValue: decimal.Zero,
	}
	order := make([]string, 0, len(products))

	for _, p := range products {
		rows[p.ProductID] = &domain.StockStatementItem{
			ProductID:     p.ProductID,
			Name:          p.Name,
			Unit:          p.Unit,
			In:            decimal.Zero,
			Out:           decimal.Zero,
			Adjustment:    decimal.Zero,
			PurchasePrice: p.PurchasePrice,
		}
		order = append(order, p.ProductID)
	}

	for _, m := range movements {
		if m.MovementDate.After(asOf) {
			continue
		}
		row, ok := rows[m.ProductID]
		if !ok {
			continue
		}
		switch m.MovementType {
		case domain.StockIn:
			row.In = row.In.Add(m.Quantity)
		case domain.StockOut:
			row.Out = row.Out.Add(m.Quantity)
		case domain.StockAdjustment:
			row.Adjustment = row.Adjustment.Add(m.Quantity)
		}
	}

	for _, id := range order {
		row := rows[id]
		row.ClosingStock = row.In.Sub(row.Out).Add(row.Adjustment)
		row.StockValue = Round2(row.ClosingStock.Mul(row.PurchasePrice))
		statement.TotalValue = statement.TotalValue.Add(row.StockValue)
		statement.Items = append(statement.Items, *row)
	}

	return statement
}

// BuildTrialBalance lists per-account debit and credit totals.
func BuildTrialBalance(asOf time.Time, balances []domain.AccountBalance) domain.TrialBalance {
	tb := domain.TrialBalance{
		AsOf:        asOf,
		Rows:        make([]domain.TrialBalanceRow, 0, len(balances)),
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	for _, b := range sortedByCode(balances) {
		tb.Rows = append(tb.Rows, domain.TrialBalanceRow{
			AccountID:   b.AccountID,
			Code:        b.Code,
			AccountName: b.Name,
			AccountType: b.AccountType,
			Debit:       b.Debit,
			Credit:      b.Credit,
		})
		tb.TotalDebit = tb.TotalDebit.Add(b.Debit)
		tb.TotalCredit = tb.TotalCredit.Add(b.Credit)
	}
	tb.IsBalanced = tb.TotalDebit.Equal(tb.TotalCredit)
	return tb
}

func sortedByCode(balances []domain.AccountBalance) []domain.AccountBalance {
	out := make([]domain.AccountBalance, len(balances))
	copy(out, balances)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
