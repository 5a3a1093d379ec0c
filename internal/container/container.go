// Package container wires the application's dependencies once, from configuration,
// and hands them out through accessors.
package container

import (
	"fmt"

	"o2y/internal/batch"
	"o2y/internal/common"
	"o2y/internal/config"
	"o2y/internal/converter"
	"o2y/internal/factory"
	"o2y/internal/logging"
	"o2y/internal/parser"
)

// Container holds the application dependencies. It is immutable after creation.
type Container struct {
	logger   logging.Logger
	config   *config.Config
	registry *parser.Registry
	service  *converter.Service
	batch    *batch.Converter
}

// NewContainer creates and wires all dependencies, logging through a logrus
// adapter configured from cfg.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, config.ConfigureLoggingFromConfig(cfg))
}

// NewContainerWithLogger is NewContainer with an explicit logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	registry, err := factory.NewRegistry(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build format registry: %w", err)
	}

	service := converter.NewService(registry, logger, common.WriterOptions{
		Delimiter: cfg.Delimiter(),
		UseCRLF:   cfg.CSV.UseCRLF,
	})

	batchConverter := batch.NewConverter(service, logger, batch.Options{
		Workers:   cfg.Batch.Workers,
		Suffix:    cfg.Output.Suffix,
		Overwrite: cfg.Output.Overwrite,
	})

	logger.Debug("Container initialized", logging.F(logging.FieldCount, len(registry.Formats())))

	return &Container{
		logger:   logger,
		config:   cfg,
		registry: registry,
		service:  service,
		batch:    batchConverter,
	}, nil
}

// GetLogger returns the application logger.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the configuration the container was built from.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetRegistry returns the format registry.
func (c *Container) GetRegistry() *parser.Registry {
	return c.registry
}

// GetConverter returns the single-file conversion service.
func (c *Container) GetConverter() *converter.Service {
	return c.service
}

// GetBatchConverter returns the directory conversion service.
func (c *Container) GetBatchConverter() *batch.Converter {
	return c.batch
}
