package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fintrack/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestTransaction stores a transaction of the given type and amount,
// dated now, in the default category.
func CreateTestTransaction(t *testing.T, db *gorm.DB, txType models.TransactionType, amount decimal.Decimal) *models.Transaction {
	t.Helper()
	return CreateTestTransactionOn(t, db, txType, amount, time.Now())
}

// CreateTestTransactionOn stores a transaction with an explicit date.
func CreateTestTransactionOn(t *testing.T, db *gorm.DB, txType models.TransactionType, amount decimal.Decimal, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		Title:    fmt.Sprintf("Test Transaction %d", nextID()),
		Amount:   amount,
		Type:     txType,
		Category: models.DefaultCategory,
		Date:     date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// NewTransaction builds an unstored transaction for pure-core tests.
func NewTransaction(title string, txType models.TransactionType, amount decimal.Decimal, date time.Time) models.Transaction {
	return models.Transaction{
		Title:    title,
		Amount:   amount,
		Type:     txType,
		Category: models.DefaultCategory,
		Date:     date,
	}
}
