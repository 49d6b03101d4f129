package ledger

import (
	"fmt"
	"strings"
	"time"

	"fintrack/internal/models"
)

// Criteria narrows a transaction set for reporting. Each field is optional
// and all supplied constraints must hold (conjunction). A zero Criteria
// matches every transaction.
type Criteria struct {
	Year  *int
	Month *int       // 1-12; out-of-range values simply match nothing
	Date  *time.Time // calendar day only, time of day is ignored
}

// IsZero reports whether no constraints are set.
func (c Criteria) IsZero() bool {
	return c.Year == nil && c.Month == nil && c.Date == nil
}

// Matches reports whether the transaction's date satisfies every supplied
// constraint. Matching is on calendar components, not raw timestamp equality.
func (c Criteria) Matches(tx models.Transaction) bool {
	if c.Year != nil && tx.Date.Year() != *c.Year {
		return false
	}
	if c.Month != nil && int(tx.Date.Month()) != *c.Month {
		return false
	}
	if c.Date != nil {
		ty, tm, td := tx.Date.Date()
		cy, cm, cd := c.Date.Date()
		if ty != cy || tm != cm || td != cd {
			return false
		}
	}
	return true
}

// Describe renders the applied constraints for report headers, e.g.
// "Filters: Year: 2024 Month: March Date: 2024-03-05", or "All Records"
// when no constraints are active.
func (c Criteria) Describe() string {
	if c.IsZero() {
		return "All Records"
	}

	parts := []string{"Filters:"}
	if c.Year != nil {
		parts = append(parts, fmt.Sprintf("Year: %d", *c.Year))
	}
	if c.Month != nil {
		parts = append(parts, "Month: "+monthName(*c.Month))
	}
	if c.Date != nil {
		parts = append(parts, "Date: "+c.Date.Format("2006-01-02"))
	}
	return strings.Join(parts, " ")
}

func monthName(m int) string {
	if m < 1 || m > 12 {
		return fmt.Sprintf("%d", m)
	}
	return time.Month(m).String()
}

// Filter returns the subsequence of transactions matching the criteria,
// preserving input order. It is total: any criteria combination, including
// impossible ones, yields a (possibly empty) list and never an error.
func Filter(transactions []models.Transaction, c Criteria) []models.Transaction {
	matched := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if c.Matches(tx) {
			matched = append(matched, tx)
		}
	}
	return matched
}
