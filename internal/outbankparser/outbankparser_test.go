package outbankparser

import (
	"errors"
	"strings"
	"testing"

	"o2y/internal/models"
	"o2y/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	rowGutschrift = `1;02.05.2016;02.05.2016;EUR;"1234,56";Sender mit Ümläut +- Sønderzeichen;DE12345678901234567890;BICBICBICBI;;;;;;;SEPA Gutschrift;166/000;;;Kømmentar des Senders`
	rowNoPayee    = `2;29.04.2016;01.05.2016;EUR;"-100,00";;;;;;;;;;Aktion ohne Aktor;806/000;;;`
	rowCardAbroad = `9;03.05.2016;04.05.2016;EUR;"-1.40";;;;;;;;;;Belastung;;;;Gringold Services Inc. ;gringold.muggle  USA ;VK-Betrag: 1.62 USD ;Kurs: 1.1611003 ;Auslandseinsatzentgelt Faktor: 1.75% ;Auslandseinsatzentgelt Wert: 0.02`
)

func export(rows ...string) string {
	return strings.Join(append([]string{Signature}, rows...), "\n")
}

func ptr(s string) *string { return &s }

func TestSignature(t *testing.T) {
	const expected = "Nummer;Buchungsdatum;Valutadatum;Waehrung;Betrag;Empfaengername;IBAN;BIC;" +
		"Gläubiger ID;Mandatsreferenz;Absender ID;SEPA-Referenz;Bankleitzahl;Kontonummer;" +
		"Referenz;Textschluessel;Kategorie;Kommentar;" +
		"Verwendungszweck_1;Verwendungszweck_2;Verwendungszweck_3;Verwendungszweck_4;" +
		"Verwendungszweck_5;Verwendungszweck_6;Verwendungszweck_7;Verwendungszweck_8;" +
		"Verwendungszweck_9;Verwendungszweck_10;Verwendungszweck_11;Verwendungszweck_12;" +
		"Verwendungszweck_13;Verwendungszweck_14"
	assert.Equal(t, expected, Signature)
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"header only", Signature, true},
		{"header and rows", export(rowGutschrift, rowNoPayee), true},
		{"header missing last two characters", Signature[:len(Signature)-2], false},
		{"garbage", strings.Repeat("X", 100), false},
		{"header without umlaut", strings.Replace(Signature, "Gläubiger", "Glaeubiger", 1), false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.text))
		})
	}
}

func TestConvert(t *testing.T) {
	doc, err := Convert(export(rowGutschrift, rowNoPayee, rowCardAbroad))
	require.NoError(t, err)
	require.Len(t, doc.Rows, 3)
	assert.Equal(t, Name, doc.Format)

	t.Run("inflow with payee", func(t *testing.T) {
		row := doc.Rows[0]
		assert.Equal(t, ptr("02/05/2016"), row.Date)
		assert.Equal(t, ptr("Sender mit Ümläut +- Sønderzeichen"), row.Payee)
		assert.Nil(t, row.Category)
		assert.Equal(t, ptr("SEPA Gutschrift 166/000 Kømmentar des Senders"), row.Memo)
		assert.Nil(t, row.Outflow)
		require.NotNil(t, row.Inflow)
		assert.Equal(t, "1234.56", row.Inflow.String())
	})

	t.Run("outflow without payee prefers value date", func(t *testing.T) {
		row := doc.Rows[1]
		assert.Equal(t, ptr("01/05/2016"), row.Date)
		assert.Nil(t, row.Payee)
		assert.Nil(t, row.Category)
		assert.Equal(t, ptr("Aktion ohne Aktor 806/000"), row.Memo)
		require.NotNil(t, row.Outflow)
		assert.Equal(t, "100.00", row.Outflow.String())
		assert.Nil(t, row.Inflow)
	})

	t.Run("payee falls back to first purpose line", func(t *testing.T) {
		row := doc.Rows[2]
		assert.Equal(t, ptr("04/05/2016"), row.Date)
		assert.Equal(t, ptr("Gringold Services Inc."), row.Payee)
		assert.Equal(t, ptr("Belastung Gringold Services Inc. gringold.muggle  USA VK-Betrag: 1.62 USD "+
			"Kurs: 1.1611003 Auslandseinsatzentgelt Faktor: 1.75% Auslandseinsatzentgelt Wert: 0.02"), row.Memo)
		require.NotNil(t, row.Outflow)
		assert.Equal(t, "1.40", row.Outflow.String())
		assert.Nil(t, row.Inflow)
	})

	t.Run("records", func(t *testing.T) {
		records := doc.Records()
		require.Len(t, records, 4)
		assert.Equal(t, []string{"Date", "Payee", "Category", "Memo", "Outflow", "Inflow"}, records[0])
		assert.Equal(t, []string{"01/05/2016", "", "", "Aktion ohne Aktor 806/000", "100.00", ""}, records[2])
	})
}

func TestConvert_HeaderOnly(t *testing.T) {
	doc, err := Convert(Signature)
	require.NoError(t, err)
	assert.Empty(t, doc.Rows)
	assert.Equal(t, 1, doc.Len())
}

func TestConvert_FallsBackToBookingDate(t *testing.T) {
	doc, err := Convert(export(`3;29.04.2016;;EUR;"5,00";Someone`))
	require.NoError(t, err)
	require.Len(t, doc.Rows, 1)
	assert.Equal(t, ptr("29/04/2016"), doc.Rows[0].Date)
	assert.Equal(t, ptr(""), doc.Rows[0].Memo)
}

func TestConvert_ZeroIsInflow(t *testing.T) {
	doc, err := Convert(export(`4;01.01.2020;01.01.2020;EUR;"0,00";Zero`))
	require.NoError(t, err)
	require.Len(t, doc.Rows, 1)
	assert.Nil(t, doc.Rows[0].Outflow)
	require.NotNil(t, doc.Rows[0].Inflow)
	assert.Equal(t, "0.00", doc.Rows[0].Inflow.String())
}

func TestConvert_AmountGrouping(t *testing.T) {
	tests := []struct {
		raw     string
		outflow string
		inflow  string
	}{
		{`"1.234,56"`, "", "1234.56"},
		{`"1,234.56"`, "", "1234.56"},
		{`"1,234"`, "", "1.234"},
		{`"-2.700,12"`, "2700.12", ""},
		{`"42"`, "", "42"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			doc, err := Convert(export(`1;01.01.2020;01.01.2020;EUR;` + tt.raw))
			require.NoError(t, err)
			values := doc.Rows[0].Values()
			assert.Equal(t, tt.outflow, values[4])
			assert.Equal(t, tt.inflow, values[5])
		})
	}
}

func TestConvert_Errors(t *testing.T) {
	t.Run("foreign currency aborts with line number", func(t *testing.T) {
		doc, err := Convert(export(rowGutschrift, `5;01.01.2020;01.01.2020;USD;"1,00"`))
		assert.Nil(t, doc)

		var rowErr *parsererror.RowError
		require.True(t, errors.As(err, &rowErr))
		assert.Equal(t, 3, rowErr.Line)

		var invariantErr *parsererror.InvariantError
		require.True(t, errors.As(err, &invariantErr))
		assert.Equal(t, ColumnCurrency, invariantErr.Field)
		assert.Equal(t, "USD", invariantErr.Actual)
	})

	t.Run("missing currency", func(t *testing.T) {
		_, err := Convert(export(`5;01.01.2020`))
		var invariantErr *parsererror.InvariantError
		require.True(t, errors.As(err, &invariantErr))
		assert.Equal(t, "", invariantErr.Actual)
	})

	t.Run("malformed amount", func(t *testing.T) {
		_, err := Convert(export(`6;01.01.2020;01.01.2020;EUR;"zwölf"`))
		var parseErr *parsererror.ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, Name, parseErr.Parser)
		assert.Equal(t, ColumnAmount, parseErr.Field)
		assert.Equal(t, "zwölf", parseErr.Value)
	})

	t.Run("empty amount", func(t *testing.T) {
		_, err := Convert(export(`6;01.01.2020;01.01.2020;EUR;`))
		assert.Error(t, err)
	})

	t.Run("short date", func(t *testing.T) {
		_, err := Convert(export(`7;1.1.2020;1.1.2020;EUR;"1,00"`))
		var formatErr *parsererror.InvalidFormatError
		require.True(t, errors.As(err, &formatErr))
		assert.Equal(t, "1.1.2020", formatErr.Value)
	})

	t.Run("no date at all", func(t *testing.T) {
		_, err := Convert(export(`8;;;EUR;"1,00"`))
		var extractionErr *parsererror.DataExtractionError
		require.True(t, errors.As(err, &extractionErr))
		assert.Equal(t, models.ColumnDate, extractionErr.FieldName)
	})
}
