package services

import (
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/ledger"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/report"
)

// TransactionServicer defines the contract for the transaction store.
type TransactionServicer interface {
	CreateTransaction(title string, amount decimal.Decimal, txType models.TransactionType, category string, date time.Time) (*models.Transaction, error)
	ListTransactions(page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	// ListAllTransactions returns the full snapshot, newest first.
	ListAllTransactions() ([]models.Transaction, error)
	// DeleteTransaction is idempotent: deleting an unknown id is a no-op.
	DeleteTransaction(id uint) error
}

// Report is the preview of a filtered report: the formatted rows, the
// net total over the subset, and a description of the applied criteria.
type Report struct {
	Description string          `json:"description"`
	Rows        []report.Row    `json:"rows"`
	Total       decimal.Decimal `json:"total"`
}

// ReportServicer defines the contract for aggregation and report export.
// Every call reads one point-in-time snapshot from the transaction store
// and computes its result in memory; nothing is re-read mid-computation.
type ReportServicer interface {
	Summary() (ledger.Summary, error)
	CategorySummary() ([]ledger.CategoryTotal, error)
	BuildReport(criteria ledger.Criteria) (*Report, error)
	ExportReport(criteria ledger.Criteria, format report.Format) (*report.Artifact, error)
}
