package services

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// transactionService handles transaction persistence and validation.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// CreateTransaction validates and stores a new transaction. The category
// defaults to "general" and the date defaults to now; validation failures
// are surfaced immediately, never coerced.
func (s *transactionService) CreateTransaction(
	title string,
	amount decimal.Decimal,
	txType models.TransactionType,
	category string,
	date time.Time,
) (*models.Transaction, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title is required")
	}

	// Sign is carried by the type, never by the amount.
	if amount.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}

	switch txType {
	case models.TransactionTypeIncome, models.TransactionTypeExpense:
	default:
		return nil, apperrors.ErrInvalidTransactionType
	}

	category = strings.TrimSpace(category)
	if category == "" {
		category = models.DefaultCategory
	}

	if date.IsZero() {
		date = time.Now()
	}

	transaction := &models.Transaction{
		Title:    title,
		Amount:   amount,
		Type:     txType,
		Category: category,
		Date:     date,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return transaction, nil
}

// ListTransactions retrieves a page of transactions, newest first.
func (s *transactionService) ListTransactions(page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{})

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// ListAllTransactions returns the full transaction snapshot, newest first.
func (s *transactionService) ListAllTransactions() ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Order("created_at DESC").Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// DeleteTransaction removes a transaction by id. Deleting an id that does
// not exist is a no-op so that deletes stay idempotent.
func (s *transactionService) DeleteTransaction(id uint) error {
	if err := s.db.Delete(&models.Transaction{}, id).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
