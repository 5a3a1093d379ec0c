package dateutils

import (
	"errors"
	"testing"

	"o2y/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReformatEuroDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"regular date", "02.05.2016", "02/05/2016"},
		{"end of year", "31.12.1999", "31/12/1999"},
		{"no calendar validation", "31.02.2016", "31/02/2016"},
		{"no reordering", "99.99.0000", "99/99/0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReformatEuroDate("Valutadatum", tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestReformatEuroDate_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too short", "2.5.2016"},
		{"too long", "02.05.2016 "},
		{"two digit year", "02.05.16"},
		{"iso layout with right length", "2016-05-02"},
		{"too many dots", "0.2.5.2016"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReformatEuroDate("Valutadatum", tt.input)
			require.Error(t, err)

			var formatErr *parsererror.InvalidFormatError
			require.True(t, errors.As(err, &formatErr))
			assert.Equal(t, "Valutadatum", formatErr.Field)
			assert.Equal(t, LayoutEuropean, formatErr.ExpectedFormat)
			assert.Equal(t, tt.input, formatErr.Value)
		})
	}
}

func TestReformatEuroDate_CountsCharactersNotBytes(t *testing.T) {
	// ten characters but eleven bytes: accepted, and only the dots change
	got, err := ReformatEuroDate("Datum", "02.05.201ä")
	require.NoError(t, err)
	assert.Equal(t, "02/05/201ä", got)
}
