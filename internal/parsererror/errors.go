// Package parsererror defines the error types returned while detecting and converting
// bank exports. All of them are fatal to a conversion: callers never receive a
// partially converted document together with one of these errors.
package parsererror

import (
	"errors"
	"fmt"
)

// ErrConverterNotFound is matched (via errors.Is) by every ConverterNotFoundError.
var ErrConverterNotFound = errors.New("no registered converter matches the input")

// ConverterNotFoundError is returned when no registered format recognises the header line.
type ConverterNotFoundError struct {
	Header string // first line of the input, possibly truncated
}

func (e *ConverterNotFoundError) Error() string {
	if e.Header == "" {
		return ErrConverterNotFound.Error()
	}
	return fmt.Sprintf("%s (header: %q)", ErrConverterNotFound.Error(), e.Header)
}

// Is reports whether target is ErrConverterNotFound.
func (e *ConverterNotFoundError) Is(target error) bool {
	return target == ErrConverterNotFound
}

// ParseError represents a value that could not be parsed, e.g. a malformed amount.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatError represents a value whose shape does not match the layout
// the converter expects, such as a date that is not DD.MM.YYYY.
type InvalidFormatError struct {
	Field          string
	ExpectedFormat string
	Value          string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format for %s '%s': %s. Expected: %s",
		e.Field, e.Value, e.Msg, e.ExpectedFormat)
}

// InvariantError reports a record that violates a hard assumption of a converter,
// for instance a currency other than the one the export is defined for.
type InvariantError struct {
	Field    string
	Expected string
	Actual   string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violated for %s: expected '%s', got '%s'",
		e.Field, e.Expected, e.Actual)
}

// DataExtractionError represents required data that could not be extracted
// from a record, even though the document format itself was recognised.
type DataExtractionError struct {
	FieldName string
	Reason    string
}

func (e *DataExtractionError) Error() string {
	return fmt.Sprintf("data extraction failed for field '%s': %s", e.FieldName, e.Reason)
}

// RowError attaches the 1-based source line number to a per-record failure.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
