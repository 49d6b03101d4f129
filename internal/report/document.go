package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/ledger"
)

const documentSheet = "Report"

// documentDataStart is the first worksheet row holding transaction data.
// Row 1 is the report title, row 2 the filter description, row 4 the
// column header.
const documentDataStart = 5

// exportDocument renders the structured XLSX workbook: title, applied-filter
// description, the six-column table, a total line, and a generation footer.
// An empty set renders a single "No records found" placeholder row; the
// total line still renders.
func exportDocument(rows []Row, total decimal.Decimal, criteria ledger.Criteria) (*Artifact, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(documentSheet)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	setCell := func(col int, row int, value string) {
		cell, cellErr := excelize.CoordinatesToCellName(col, row)
		if cellErr != nil {
			return
		}
		_ = f.SetCellValue(documentSheet, cell, value)
	}

	setCell(1, 1, reportTitle)
	setCell(1, 2, criteria.Describe())

	for i, col := range Columns {
		setCell(i+1, documentDataStart-1, col)
	}

	body := rows
	if len(body) == 0 {
		body = []Row{{Title: "No records found", Amount: "-", Day: "-", Month: "-", Year: "-", Time: "-"}}
	}
	for i, r := range body {
		for j, cell := range r.cells() {
			setCell(j+1, documentDataStart+i, cell)
		}
	}

	totalRow := documentDataStart + len(body) + 1
	setCell(1, totalRow, "Total: "+FormatAmount(total))

	generated := time.Now().Format("02 Jan 2006 3:04:05 PM")
	setCell(1, totalRow+2, fmt.Sprintf("Generated on %s | %s", generated, attribution))

	_ = f.SetColWidth(documentSheet, "A", "A", 30)
	_ = f.SetColWidth(documentSheet, "B", "F", 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &Artifact{
		Filename:    "Expense_Report.xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        buf.Bytes(),
	}, nil
}
