// Package outbankparser converts the semicolon-separated CSV export of the Outbank
// banking app into ledger rows.
package outbankparser

import (
	"fmt"
	"strings"

	"o2y/internal/common"
	"o2y/internal/currencyutils"
	"o2y/internal/dateutils"
	"o2y/internal/models"
	"o2y/internal/parser"
	"o2y/internal/parsererror"
	"o2y/internal/textutils"
)

// Name identifies the format in logs, errors and `o2y formats`.
const Name = "Outbank"

// Delimiter separates fields in an Outbank export.
const Delimiter = ';'

// Source columns read by the converter.
const (
	ColumnBookingDate = "Buchungsdatum"
	ColumnValueDate   = "Valutadatum"
	ColumnCurrency    = "Waehrung"
	ColumnAmount      = "Betrag"
	ColumnPayee       = "Empfaengername"
	ColumnSEPARef     = "SEPA-Referenz"
	ColumnReference   = "Referenz"
	ColumnTextKey     = "Textschluessel"
	purposePrefix     = "Verwendungszweck_"
	purposeColumns    = 14
)

// Currency is the only currency an Outbank export may contain.
const Currency = "EUR"

// Signature is the exact header line of an Outbank export.
var Signature = strings.Join(append([]string{
	"Nummer", ColumnBookingDate, ColumnValueDate, ColumnCurrency, ColumnAmount,
	ColumnPayee, "IBAN", "BIC", "Gläubiger ID", "Mandatsreferenz",
	"Absender ID", ColumnSEPARef, "Bankleitzahl", "Kontonummer",
	ColumnReference, ColumnTextKey, "Kategorie", "Kommentar",
}, purposeColumnNames()...), string(Delimiter))

var (
	dateColumns  = []string{ColumnValueDate, ColumnBookingDate}
	payeeColumns = []string{ColumnPayee, purposeColumn(1)}
	memoColumns  = append([]string{ColumnReference, ColumnSEPARef, ColumnTextKey}, purposeColumnNames()...)
)

func purposeColumn(n int) string {
	return fmt.Sprintf("%s%d", purposePrefix, n)
}

func purposeColumnNames() []string {
	names := make([]string, 0, purposeColumns)
	for i := 1; i <= purposeColumns; i++ {
		names = append(names, purposeColumn(i))
	}
	return names
}

// Detect reports whether text starts with the Outbank header line.
var Detect = parser.HeaderDetector(Signature)

// Convert turns a decoded Outbank export into a ledger document. Rows keep their
// source order. The first row that cannot be converted aborts the conversion with
// a *parsererror.RowError carrying its line number.
func Convert(text string) (*models.Document, error) {
	rows, err := common.ReadRecords(text, Delimiter)
	if err != nil {
		return nil, &parsererror.ParseError{Parser: Name, Field: "document", Err: err}
	}

	doc := &models.Document{Format: Name, Rows: make([]models.TargetRow, 0, len(rows))}
	for _, row := range rows {
		target, err := convertRow(row.Record)
		if err != nil {
			return nil, &parsererror.RowError{Line: row.Line, Err: err}
		}
		doc.Rows = append(doc.Rows, target)
	}

	return doc, nil
}

func convertRow(record models.SourceRecord) (models.TargetRow, error) {
	if currency := textutils.Field(record, ColumnCurrency); currency == nil || *currency != Currency {
		actual := ""
		if currency != nil {
			actual = *currency
		}
		return models.TargetRow{}, &parsererror.InvariantError{
			Field:    ColumnCurrency,
			Expected: Currency,
			Actual:   actual,
		}
	}

	rawDate := textutils.FirstNonEmpty(record, dateColumns...)
	if rawDate == nil {
		return models.TargetRow{}, &parsererror.DataExtractionError{
			FieldName: models.ColumnDate,
			Reason:    fmt.Sprintf("neither %s nor %s has a value", ColumnValueDate, ColumnBookingDate),
		}
	}
	date, err := dateutils.ReformatEuroDate(models.ColumnDate, *rawDate)
	if err != nil {
		return models.TargetRow{}, err
	}

	amount, err := currencyutils.ParseAmount(record[ColumnAmount])
	if err != nil {
		return models.TargetRow{}, &parsererror.ParseError{
			Parser: Name,
			Field:  ColumnAmount,
			Value:  record[ColumnAmount],
			Err:    err,
		}
	}
	outflow, inflow := currencyutils.SplitAmount(amount)

	return models.TargetRow{
		Date:    &date,
		Payee:   textutils.FirstNonEmpty(record, payeeColumns...),
		Memo:    models.Text(textutils.JoinNonEmpty(record, memoColumns...)),
		Outflow: outflow,
		Inflow:  inflow,
	}, nil
}
