package outbankparser

import (
	"o2y/internal/logging"
	"o2y/internal/models"
	"o2y/internal/parser"
)

// Adapter exposes the Outbank converter as a parser.Format with logging.
type Adapter struct {
	logger logging.Logger
}

// NewAdapter creates an Adapter. A nil logger gets a default logrus one.
func NewAdapter(logger logging.Logger) *Adapter {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Adapter{logger: logger.WithField(logging.FieldFormat, Name)}
}

// Format returns the descriptor registered for Outbank exports.
func (a *Adapter) Format() parser.Format {
	return parser.Format{
		Name:      Name,
		Delimiter: Delimiter,
		Signature: Signature,
		Detect:    Detect,
		Convert:   a.Convert,
	}
}

// Convert is the package-level Convert with logging.
func (a *Adapter) Convert(text string) (*models.Document, error) {
	a.logger.Debug("Converting Outbank export", logging.F(logging.FieldBytes, len(text)))

	doc, err := Convert(text)
	if err != nil {
		a.logger.WithError(err).Error("Failed to convert Outbank export")
		return nil, err
	}

	a.logger.Debug("Converted Outbank export", logging.F(logging.FieldCount, len(doc.Rows)))
	return doc, nil
}
