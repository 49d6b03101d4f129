package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// DefaultCategory is assigned when a transaction is created without a category.
const DefaultCategory = "general"

// Transaction represents a single recorded income or expense entry.
// Amount is always non-negative; whether it adds to or subtracts from
// the balance is determined by Type alone.
type Transaction struct {
	Base
	Title    string          `gorm:"not null" json:"title"`
	Amount   decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	Type     TransactionType `gorm:"not null" json:"type"`
	Category string          `gorm:"not null;default:general" json:"category"`
	Date     time.Time       `gorm:"not null" json:"date"`
}
