package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

func tx(title string, txType models.TransactionType, amount string, date time.Time) models.Transaction {
	return models.Transaction{
		Title:    title,
		Amount:   decimal.RequireFromString(amount),
		Type:     txType,
		Category: models.DefaultCategory,
		Date:     date,
	}
}

func txAt(title string, txType models.TransactionType, amount, day string) models.Transaction {
	date, err := time.ParseInLocation("2006-01-02", day, time.Local)
	if err != nil {
		panic(err)
	}
	return tx(title, txType, amount, date)
}

func TestAggregate(t *testing.T) {
	t.Run("income_and_expense_totals", func(t *testing.T) {
		list := []models.Transaction{
			tx("Salary", models.TransactionTypeIncome, "5000", time.Now()),
			tx("Rent", models.TransactionTypeExpense, "1200", time.Now()),
		}

		s := Aggregate(list)

		if !s.TotalIncome.Equal(decimal.RequireFromString("5000")) {
			t.Errorf("expected income 5000, got %s", s.TotalIncome)
		}
		if !s.TotalExpense.Equal(decimal.RequireFromString("1200")) {
			t.Errorf("expected expense 1200, got %s", s.TotalExpense)
		}
		if !s.Balance.Equal(decimal.RequireFromString("3800")) {
			t.Errorf("expected balance 3800, got %s", s.Balance)
		}
	})

	t.Run("empty_input_yields_zeros", func(t *testing.T) {
		s := Aggregate(nil)

		if !s.TotalIncome.IsZero() || !s.TotalExpense.IsZero() || !s.Balance.IsZero() {
			t.Errorf("expected all-zero summary, got %+v", s)
		}
	})

	t.Run("balance_is_income_minus_expense", func(t *testing.T) {
		list := []models.Transaction{
			tx("a", models.TransactionTypeIncome, "10.10", time.Now()),
			tx("b", models.TransactionTypeIncome, "0.90", time.Now()),
			tx("c", models.TransactionTypeExpense, "3.33", time.Now()),
			tx("d", models.TransactionTypeExpense, "0.07", time.Now()),
		}

		s := Aggregate(list)

		if !s.Balance.Equal(s.TotalIncome.Sub(s.TotalExpense)) {
			t.Errorf("balance %s != income %s - expense %s", s.Balance, s.TotalIncome, s.TotalExpense)
		}
		// Decimal accumulation: 11.00 - 3.40 must be exactly 7.60.
		if !s.Balance.Equal(decimal.RequireFromString("7.60")) {
			t.Errorf("expected balance 7.60, got %s", s.Balance)
		}
	})

	t.Run("zero_amounts_contribute_nothing", func(t *testing.T) {
		list := []models.Transaction{
			tx("free", models.TransactionTypeIncome, "0", time.Now()),
		}

		if !Aggregate(list).Balance.IsZero() {
			t.Error("expected zero balance")
		}
	})
}

func TestTotal(t *testing.T) {
	t.Run("signed_by_type", func(t *testing.T) {
		list := []models.Transaction{
			tx("Salary", models.TransactionTypeIncome, "5000", time.Now()),
			tx("Rent", models.TransactionTypeExpense, "1200", time.Now()),
		}

		if got := Total(list); !got.Equal(decimal.RequireFromString("3800")) {
			t.Errorf("expected 3800, got %s", got)
		}
	})

	t.Run("empty_is_zero", func(t *testing.T) {
		if got := Total(nil); !got.IsZero() {
			t.Errorf("expected 0, got %s", got)
		}
	})
}

func TestByCategory(t *testing.T) {
	t.Run("buckets_in_first_seen_order", func(t *testing.T) {
		food := tx("Groceries", models.TransactionTypeExpense, "250", time.Now())
		food.Category = "food"
		salary := tx("Salary", models.TransactionTypeIncome, "5000", time.Now())
		salary.Category = "work"
		snacks := tx("Snacks", models.TransactionTypeExpense, "50", time.Now())
		snacks.Category = "food"

		totals := ByCategory([]models.Transaction{food, salary, snacks})

		if len(totals) != 2 {
			t.Fatalf("expected 2 buckets, got %d", len(totals))
		}
		if totals[0].Category != "food" || totals[1].Category != "work" {
			t.Errorf("expected first-seen order [food work], got [%s %s]", totals[0].Category, totals[1].Category)
		}
		if !totals[0].Expense.Equal(decimal.RequireFromString("300")) {
			t.Errorf("expected food expense 300, got %s", totals[0].Expense)
		}
		if !totals[1].Income.Equal(decimal.RequireFromString("5000")) {
			t.Errorf("expected work income 5000, got %s", totals[1].Income)
		}
	})

	t.Run("empty_input", func(t *testing.T) {
		if totals := ByCategory(nil); len(totals) != 0 {
			t.Errorf("expected no buckets, got %d", len(totals))
		}
	})
}
