package report

import (
	"strings"

	"github.com/shopspring/decimal"
)

// exportPlainText renders the line-oriented text format: header line,
// separator, one line per transaction, then a blank line and the total.
// The total line is printed even when there are no rows.
func exportPlainText(rows []Row, total decimal.Decimal) *Artifact {
	var b strings.Builder

	b.WriteString(reportTitle + "\n\n")
	b.WriteString(strings.Join(Columns, " | ") + "\n")
	b.WriteString(strings.Repeat("-", 57) + "\n")

	for _, r := range rows {
		b.WriteString(strings.Join(r.cells(), " | ") + "\n")
	}

	b.WriteString("\nTotal: " + FormatAmount(total) + "\n")

	return &Artifact{
		Filename:    "Expense_Report.txt",
		ContentType: "text/plain; charset=utf-8",
		Data:        []byte(b.String()),
	}
}
