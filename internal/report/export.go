package report

import (
	"fmt"

	"github.com/shopspring/decimal"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/ledger"
	"fintrack/internal/models"
)

// Format selects an export encoding.
type Format string

const (
	// FormatDocument is a structured XLSX workbook.
	FormatDocument Format = "xlsx"
	// FormatDelimited is BOM-prefixed CSV.
	FormatDelimited Format = "csv"
	// FormatPlainText is line-oriented plain text.
	FormatPlainText Format = "txt"
)

const (
	reportTitle = "Expense Report"
	attribution = "Fintrack"
)

// Artifact is a named, downloadable byte blob produced by an export.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Export renders the filtered transactions and their total into the
// requested format. The criteria is only used for the filter-description
// header in the document format. An unknown format yields
// UNSUPPORTED_FORMAT and no artifact. Export never mutates its input.
func Export(transactions []models.Transaction, total decimal.Decimal, criteria ledger.Criteria, format Format) (*Artifact, error) {
	rows := FormatRows(transactions)

	switch format {
	case FormatDocument:
		return exportDocument(rows, total, criteria)
	case FormatDelimited:
		return exportDelimited(rows), nil
	case FormatPlainText:
		return exportPlainText(rows, total), nil
	default:
		return nil, apperrors.WithMessage(apperrors.ErrUnsupportedFormat,
			fmt.Sprintf("unsupported report format %q, use xlsx, csv, or txt", format))
	}
}

// ParseFormat validates a format selector from user input.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatDocument, FormatDelimited, FormatPlainText:
		return Format(s), nil
	default:
		return "", apperrors.WithMessage(apperrors.ErrUnsupportedFormat,
			fmt.Sprintf("unsupported report format %q, use xlsx, csv, or txt", s))
	}
}
