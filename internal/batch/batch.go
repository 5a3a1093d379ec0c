// Package batch converts every bank export in a directory concurrently.
package batch

import (
	"context"
	"errors"
	"fmt"

	"o2y/internal/converter"
	"o2y/internal/fileutils"
	"o2y/internal/logging"

	"golang.org/x/sync/errgroup"
)

// Options configures a batch run.
type Options struct {
	Workers   int
	Suffix    string
	Overwrite bool
}

// FileResult is the outcome for one source file.
type FileResult struct {
	converter.Result
	Err error
}

// Summary lists one FileResult per source file, in file name order.
type Summary struct {
	Files []FileResult
}

// Converted returns the number of files written.
func (s Summary) Converted() int {
	n := 0
	for _, f := range s.Files {
		if f.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns the results of the files that were not written.
func (s Summary) Failed() []FileResult {
	var failed []FileResult
	for _, f := range s.Files {
		if f.Err != nil {
			failed = append(failed, f)
		}
	}
	return failed
}

// Err joins the per-file errors, nil when every file converted.
func (s Summary) Err() error {
	var errs []error
	for _, f := range s.Failed() {
		errs = append(errs, f.Err)
	}
	return errors.Join(errs...)
}

// Converter runs a converter.Service over a directory.
type Converter struct {
	service *converter.Service
	logger  logging.Logger
	options Options
}

// NewConverter creates a Converter. Workers below one are treated as one.
func NewConverter(service *converter.Service, logger logging.Logger, options Options) *Converter {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if options.Workers < 1 {
		options.Workers = 1
	}
	return &Converter{service: service, logger: logger, options: options}
}

// ConvertDir converts every source file directly inside dir. Each file is
// converted all-or-nothing on its own; a failing file never stops the others.
// The returned error is only non-nil when the directory cannot be listed or ctx
// is cancelled, in which case files not yet started are missing from the summary.
func (c *Converter) ConvertDir(ctx context.Context, dir string) (Summary, error) {
	files, err := fileutils.ListSourceFiles(dir, c.options.Suffix)
	if err != nil {
		return Summary{}, err
	}

	logger := c.logger.WithFields(
		logging.F(logging.FieldDirectory, dir),
		logging.F(logging.FieldWorkers, c.options.Workers))
	logger.Info("Starting batch conversion", logging.F(logging.FieldCount, len(files)))

	results := make([]FileResult, len(files))
	started := make([]bool, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.options.Workers)

	for i, source := range files {
		if gctx.Err() != nil {
			break
		}
		started[i] = true
		g.Go(func() error {
			target := fileutils.TargetPath(source, c.options.Suffix)
			result, err := c.service.ConvertFile(source, target, c.options.Overwrite)
			results[i] = FileResult{Result: result, Err: err}
			if err != nil {
				logger.WithError(err).Warn("Failed to convert file", logging.F(logging.FieldInputFile, source))
			}
			return nil
		})
	}
	_ = g.Wait()

	var summary Summary
	for i, r := range results {
		if started[i] {
			summary.Files = append(summary.Files, r)
		}
	}

	logger.Info("Finished batch conversion",
		logging.F(logging.FieldCount, summary.Converted()),
		logging.F("failed", len(summary.Failed())))

	if err := ctx.Err(); err != nil {
		return summary, fmt.Errorf("batch conversion interrupted: %w", err)
	}
	return summary, nil
}
