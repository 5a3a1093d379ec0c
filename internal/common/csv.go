// Package common provides the CSV reading and writing shared by all converters.
package common

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"o2y/internal/models"

	"github.com/gocarina/gocsv"
)

// Row is a decoded source record together with the line it started on.
type Row struct {
	Line   int
	Record models.SourceRecord
}

// WriterOptions controls the dialect of the written ledger CSV.
type WriterOptions struct {
	Delimiter rune
	UseCRLF   bool
}

// DefaultWriterOptions is the ledger-import dialect: comma separated, CRLF line endings.
var DefaultWriterOptions = WriterOptions{Delimiter: ',', UseCRLF: true}

// ReadRecords decodes text as a delimited document whose first line is the header.
// Each following line becomes a record keyed by header name. Short lines simply lack
// the trailing columns and surplus fields are ignored. Blank lines are skipped.
func ReadRecords(text string, delimiter rune) ([]Row, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	decoder := gocsv.NewSimpleDecoderFromCSVReader(reader)

	header, err := decoder.GetCSVRow()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}

	var rows []Row
	for {
		fields, err := decoder.GetCSVRow()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV record: %w", err)
		}

		line, _ := reader.FieldPos(0)
		record := make(models.SourceRecord, len(header))
		for i, name := range header {
			if i >= len(fields) {
				break
			}
			record[name] = fields[i]
		}
		rows = append(rows, Row{Line: line, Record: record})
	}

	return rows, nil
}

// WriteDocument serialises doc, header first, to w. Unset fields are written as
// empty cells and fields containing the delimiter, quotes or newlines are quoted.
func WriteDocument(w io.Writer, doc *models.Document, opts WriterOptions) error {
	if doc == nil {
		return fmt.Errorf("cannot write nil document to CSV")
	}

	csvWriter := csv.NewWriter(w)
	if opts.Delimiter != 0 {
		csvWriter.Comma = opts.Delimiter
	}
	csvWriter.UseCRLF = opts.UseCRLF

	rows := doc.Rows
	if rows == nil {
		rows = []models.TargetRow{}
	}
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	return nil
}
