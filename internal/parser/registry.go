package parser

import (
	"fmt"
	"unicode/utf8"

	"o2y/internal/models"
	"o2y/internal/parsererror"
)

// maxHeaderInError bounds the header excerpt carried by ConverterNotFoundError.
const maxHeaderInError = 120

// Registry is an ordered, immutable list of formats. It is safe for concurrent use.
type Registry struct {
	formats []Format
}

// NewRegistry builds a registry consulted in the given order. Formats without a
// name, detector or converter are rejected, as are duplicate names.
func NewRegistry(formats ...Format) (*Registry, error) {
	seen := make(map[string]bool, len(formats))
	owned := make([]Format, 0, len(formats))
	for i, f := range formats {
		switch {
		case f.Name == "":
			return nil, fmt.Errorf("format %d has no name", i)
		case f.Detect == nil:
			return nil, fmt.Errorf("format %s has no detector", f.Name)
		case f.Convert == nil:
			return nil, fmt.Errorf("format %s has no converter", f.Name)
		case seen[f.Name]:
			return nil, fmt.Errorf("duplicate format name: %s", f.Name)
		}
		seen[f.Name] = true
		owned = append(owned, f)
	}
	return &Registry{formats: owned}, nil
}

// Formats returns a copy of the registered formats in lookup order.
func (r *Registry) Formats() []Format {
	return append([]Format(nil), r.formats...)
}

// Lookup returns the first format whose detector accepts text.
func (r *Registry) Lookup(text string) (Format, error) {
	for _, f := range r.formats {
		if f.Detect(text) {
			return f, nil
		}
	}
	return Format{}, &parsererror.ConverterNotFoundError{Header: truncate(FirstLine(text), maxHeaderInError)}
}

// Convert runs the first matching format's converter over the whole text and
// returns its result unmodified, apart from recording the format name.
func (r *Registry) Convert(text string) (*models.Document, error) {
	f, err := r.Lookup(text)
	if err != nil {
		return nil, err
	}

	doc, err := f.Convert(text)
	if err != nil {
		return nil, err
	}
	if doc != nil && doc.Format == "" {
		doc.Format = f.Name
	}
	return doc, nil
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max]) + "…"
}
