// Package parser defines format descriptors and the ordered registry that picks the
// converter for a bank export.
package parser

import (
	"strings"

	"o2y/internal/models"
)

// DetectFunc reports whether a decoded document belongs to a format.
type DetectFunc func(text string) bool

// ConvertFunc converts a whole decoded document. It either returns every row or an
// error; it never returns a partial document.
type ConvertFunc func(text string) (*models.Document, error)

// Format describes one supported bank export.
type Format struct {
	Name      string
	Delimiter rune
	// Signature is the exact header line the format is recognised by, if any.
	Signature string
	Detect    DetectFunc
	Convert   ConvertFunc
}

// FirstLine returns text up to, not including, the first '\n'.
// A trailing '\r' is kept so CRLF input does not match LF signatures.
func FirstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i]
	}
	return text
}

// HeaderDetector returns a DetectFunc matching documents whose first line is
// byte-for-byte equal to signature.
func HeaderDetector(signature string) DetectFunc {
	return func(text string) bool {
		return FirstLine(text) == signature
	}
}
