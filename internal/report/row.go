// Package report renders a filtered transaction set into downloadable
// artifacts. Every encoding derives its cells from the same Row formatter,
// so the three formats cannot drift apart on computed values.
package report

import (
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"fintrack/internal/models"
)

// Columns is the header shared by every export encoding.
var Columns = []string{"Title", "Amount", "Day", "Month", "Year", "Time"}

// Row is the formatted view of one transaction.
type Row struct {
	Title  string `json:"title"`
	Amount string `json:"amount"`
	Day    string `json:"day"`
	Month  string `json:"month"`
	Year   string `json:"year"`
	Time   string `json:"time"`
}

// cells returns the row fields in Columns order.
func (r Row) cells() []string {
	return []string{r.Title, r.Amount, r.Day, r.Month, r.Year, r.Time}
}

var amountPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatAmount renders an amount with en-IN digit grouping, e.g.
// 1234567.5 -> "12,34,567.5".
func FormatAmount(d decimal.Decimal) string {
	f, _ := d.Float64()
	return amountPrinter.Sprint(number.Decimal(f, number.MaxFractionDigits(2)))
}

// FormatRow decomposes a transaction into display fields: title, grouped
// amount, day of month, month name, year, and time of day.
func FormatRow(tx models.Transaction) Row {
	return Row{
		Title:  tx.Title,
		Amount: FormatAmount(tx.Amount),
		Day:    strconv.Itoa(tx.Date.Day()),
		Month:  tx.Date.Month().String(),
		Year:   strconv.Itoa(tx.Date.Year()),
		Time:   tx.Date.Format("3:04:05 PM"),
	}
}

// FormatRows formats every transaction, preserving order.
func FormatRows(transactions []models.Transaction) []Row {
	rows := make([]Row, len(transactions))
	for i, tx := range transactions {
		rows[i] = FormatRow(tx)
	}
	return rows
}
