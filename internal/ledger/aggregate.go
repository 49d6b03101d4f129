// Package ledger is the pure computation core: totals, per-category buckets,
// and calendar filtering over an in-memory transaction snapshot. Nothing in
// this package touches the database or performs I/O; every function re-derives
// its result from the slice it is given.
package ledger

import (
	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

// Summary holds the aggregate totals over a set of transactions.
type Summary struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Balance      decimal.Decimal `json:"balance"`
}

// Aggregate computes income, expense, and balance totals from scratch.
// An empty input yields all-zero totals.
func Aggregate(transactions []models.Transaction) Summary {
	income := decimal.Zero
	expense := decimal.Zero

	for _, tx := range transactions {
		switch tx.Type {
		case models.TransactionTypeIncome:
			income = income.Add(tx.Amount)
		case models.TransactionTypeExpense:
			expense = expense.Add(tx.Amount)
		}
	}

	return Summary{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
	}
}

// Total returns the net total of the given transactions: income amounts
// add, expense amounts subtract. This is the figure printed on reports.
func Total(transactions []models.Transaction) decimal.Decimal {
	s := Aggregate(transactions)
	return s.Balance
}

// CategoryTotal holds per-category income and expense buckets.
type CategoryTotal struct {
	Category string          `json:"category"`
	Income   decimal.Decimal `json:"income"`
	Expense  decimal.Decimal `json:"expense"`
}

// ByCategory buckets totals per category, in first-seen order.
func ByCategory(transactions []models.Transaction) []CategoryTotal {
	index := make(map[string]int)
	totals := make([]CategoryTotal, 0)

	for _, tx := range transactions {
		i, ok := index[tx.Category]
		if !ok {
			i = len(totals)
			index[tx.Category] = i
			totals = append(totals, CategoryTotal{
				Category: tx.Category,
				Income:   decimal.Zero,
				Expense:  decimal.Zero,
			})
		}
		switch tx.Type {
		case models.TransactionTypeIncome:
			totals[i].Income = totals[i].Income.Add(tx.Amount)
		case models.TransactionTypeExpense:
			totals[i].Expense = totals[i].Expense.Add(tx.Amount)
		}
	}

	return totals
}
