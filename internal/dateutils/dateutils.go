// Package dateutils reformats the fixed date layouts found in bank exports.
package dateutils

import (
	"strings"
	"unicode/utf8"

	"o2y/internal/parsererror"
)

// Date layouts understood by this package, in the notation bank exports document them.
const (
	LayoutEuropean = "DD.MM.YYYY"
	LayoutLedger   = "DD/MM/YYYY"
)

const europeanDateLength = 10

// ReformatEuroDate rewrites a DD.MM.YYYY date as DD/MM/YYYY. Only the punctuation
// changes: the components are neither validated against the calendar nor reordered.
// Input of any other length, or without exactly three dot-separated parts, yields an
// *parsererror.InvalidFormatError.
func ReformatEuroDate(field, value string) (string, error) {
	if n := utf8.RuneCountInString(value); n != europeanDateLength {
		return "", &parsererror.InvalidFormatError{
			Field:          field,
			ExpectedFormat: LayoutEuropean,
			Value:          value,
			Msg:            "date must be exactly 10 characters",
		}
	}

	parts := strings.Split(value, ".")
	if len(parts) != 3 {
		return "", &parsererror.InvalidFormatError{
			Field:          field,
			ExpectedFormat: LayoutEuropean,
			Value:          value,
			Msg:            "date must have day, month and year separated by '.'",
		}
	}

	return strings.Join(parts, "/"), nil
}
