// Package factory assembles the supported formats into a parser.Registry.
package factory

import (
	"fmt"

	"o2y/internal/logging"
	"o2y/internal/outbankparser"
	"o2y/internal/parser"
)

// ParserType names a supported input format.
type ParserType string

const (
	Outbank ParserType = "outbank"
)

// DetectionOrder is the order in which formats are tried. The first detector that
// accepts a document wins.
var DetectionOrder = []ParserType{
	Outbank,
}

// GetFormatWithLogger returns the descriptor for parserType wired to logger.
func GetFormatWithLogger(parserType ParserType, logger logging.Logger) (parser.Format, error) {
	switch parserType {
	case Outbank:
		return outbankparser.NewAdapter(logger).Format(), nil
	default:
		return parser.Format{}, fmt.Errorf("unknown parser type: %s", parserType)
	}
}

// NewRegistry builds the registry of every supported format in DetectionOrder.
func NewRegistry(logger logging.Logger) (*parser.Registry, error) {
	formats := make([]parser.Format, 0, len(DetectionOrder))
	for _, parserType := range DetectionOrder {
		f, err := GetFormatWithLogger(parserType, logger)
		if err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}
	return parser.NewRegistry(formats...)
}
