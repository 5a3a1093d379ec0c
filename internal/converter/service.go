// Package converter runs a whole conversion: decode the export, pick the format,
// convert every row and write the ledger CSV.
package converter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"o2y/internal/common"
	"o2y/internal/fileutils"
	"o2y/internal/logging"
	"o2y/internal/models"
	"o2y/internal/parser"
)

// Result describes a finished file conversion.
type Result struct {
	Source string
	Target string
	Format string
	Rows   int
}

// Service converts bank exports using a format registry.
type Service struct {
	registry *parser.Registry
	logger   logging.Logger
	options  common.WriterOptions
}

// NewService creates a Service. A nil logger gets a default logrus one.
func NewService(registry *parser.Registry, logger logging.Logger, options common.WriterOptions) *Service {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Service{registry: registry, logger: logger, options: options}
}

// Detect returns the name of the format text belongs to.
func (s *Service) Detect(text string) (string, error) {
	f, err := s.registry.Lookup(text)
	if err != nil {
		return "", err
	}
	return f.Name, nil
}

// ConvertText converts decoded export text into a document.
func (s *Service) ConvertText(text string) (*models.Document, error) {
	doc, err := s.registry.Convert(text)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("Converted document",
		logging.F(logging.FieldFormat, doc.Format),
		logging.F(logging.FieldCount, len(doc.Rows)))
	return doc, nil
}

// Write serialises doc to w in the configured dialect.
func (s *Service) Write(doc *models.Document, w io.Writer) error {
	return common.WriteDocument(w, doc, s.options)
}

// ConvertFile converts source into target. Nothing is written unless every row
// converts. Without overwrite an existing target is left alone and the error
// wraps fileutils.ErrTargetExists.
func (s *Service) ConvertFile(source, target string, overwrite bool) (Result, error) {
	start := time.Now()
	logger := s.logger.WithFields(
		logging.F(logging.FieldInputFile, source),
		logging.F(logging.FieldOutputFile, target))

	result := Result{Source: source, Target: target}

	text, err := fileutils.ReadText(source)
	if err != nil {
		return result, err
	}

	doc, err := s.ConvertText(text)
	if err != nil {
		return result, fmt.Errorf("%s: %w", source, err)
	}
	result.Format = doc.Format
	result.Rows = len(doc.Rows)

	if err := s.writeFile(doc, target, overwrite); err != nil {
		return result, err
	}

	logger.Info("Converted file",
		logging.F(logging.FieldFormat, result.Format),
		logging.F(logging.FieldCount, result.Rows),
		logging.F(logging.FieldDuration, time.Since(start).Milliseconds()))
	return result, nil
}

func (s *Service) writeFile(doc *models.Document, target string, overwrite bool) (err error) {
	file, err := fileutils.CreateTarget(target, overwrite)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", target, closeErr)
		}
		if err != nil {
			// no partial targets
			_ = os.Remove(target)
		}
	}()

	w := bufio.NewWriter(file)
	if err := s.Write(doc, w); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	return nil
}
