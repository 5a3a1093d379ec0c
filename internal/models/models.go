// Package models holds the data types shared by the converters: source records,
// target ledger rows and the converted document.
package models

// Header returns the literal header row of the target schema.
func Header() []string {
	return []string{ColumnDate, ColumnPayee, ColumnCategory, ColumnMemo, ColumnOutflow, ColumnInflow}
}

// Document is the result of converting one bank export. The header row is not
// stored in Rows; Records always yields it first.
type Document struct {
	Format string
	Rows   []TargetRow
}

// Len returns the number of output lines including the header.
func (d *Document) Len() int {
	return len(d.Rows) + 1
}

// Records returns the header followed by every row as plain strings.
func (d *Document) Records() [][]string {
	records := make([][]string, 0, d.Len())
	records = append(records, Header())
	for _, row := range d.Rows {
		records = append(records, row.Values())
	}
	return records
}
