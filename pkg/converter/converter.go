// Package converter is the importable API of o2y: it turns raw bank export bytes
// into YNAB CSV without going through the CLI.
package converter

import (
	"bytes"
	"io"
	"sync"

	"o2y/internal/common"
	"o2y/internal/factory"
	"o2y/internal/fileutils"
	"o2y/internal/logging"
	"o2y/internal/parser"
)

var defaultRegistry = sync.OnceValues(func() (*parser.Registry, error) {
	return factory.NewRegistry(logging.NewLogrusAdapterWithOutput("error", "text", io.Discard))
})

// Detect returns the name of the format of decoded export text.
func Detect(text string) (string, error) {
	registry, err := defaultRegistry()
	if err != nil {
		return "", err
	}
	f, err := registry.Lookup(text)
	if err != nil {
		return "", err
	}
	return f.Name, nil
}

// Convert converts decoded export text and returns the output rows, header first,
// with unset cells as empty strings.
func Convert(text string) ([][]string, error) {
	registry, err := defaultRegistry()
	if err != nil {
		return nil, err
	}
	doc, err := registry.Convert(text)
	if err != nil {
		return nil, err
	}
	return doc.Records(), nil
}

// WriteCSV decodes raw export bytes (UTF-8 or UTF-16), converts them and writes
// comma-separated, CRLF-terminated CSV to w. Nothing is written on error.
func WriteCSV(w io.Writer, raw []byte) error {
	text, err := fileutils.DecodeText(raw)
	if err != nil {
		return err
	}

	registry, err := defaultRegistry()
	if err != nil {
		return err
	}
	doc, err := registry.Convert(text)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := common.WriteDocument(&buf, doc, common.DefaultWriterOptions); err != nil {
		return err
	}
	_, err = buf.WriteTo(w)
	return err
}

// ConvertBytes is WriteCSV returning the CSV text.
func ConvertBytes(raw []byte) (string, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, raw); err != nil {
		return "", err
	}
	return buf.String(), nil
}
