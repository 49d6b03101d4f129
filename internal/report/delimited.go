package report

import "bytes"

// utf8BOM lets spreadsheet applications detect the encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// exportDelimited renders BOM-prefixed CSV: a header row plus one row per
// transaction. When there are no rows only the header is written.
func exportDelimited(rows []Row) *Artifact {
	var b bytes.Buffer
	b.Write(utf8BOM)

	writeQuotedLine(&b, Columns)
	for _, r := range rows {
		writeQuotedLine(&b, r.cells())
	}

	return &Artifact{
		Filename:    "Expense_Report.csv",
		ContentType: "text/csv; charset=utf-8",
		Data:        b.Bytes(),
	}
}

// writeQuotedLine writes one CSV record with every field quoted,
// doubling embedded quotes per RFC 4180.
func writeQuotedLine(b *bytes.Buffer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		for _, r := range f {
			if r == '"' {
				b.WriteString(`""`)
				continue
			}
			b.WriteRune(r)
		}
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
