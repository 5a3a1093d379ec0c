// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"o2y/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable that overrides a config key,
// e.g. O2Y_CSV_DELIMITER for csv.delimiter.
const EnvPrefix = "O2Y"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
		UseCRLF   bool   `mapstructure:"use_crlf" yaml:"use_crlf"`
	} `mapstructure:"csv" yaml:"csv"`

	Output struct {
		Suffix    string `mapstructure:"suffix" yaml:"suffix"`
		Overwrite bool   `mapstructure:"overwrite" yaml:"overwrite"`
	} `mapstructure:"output" yaml:"output"`

	Batch struct {
		Workers int `mapstructure:"workers" yaml:"workers"`
	} `mapstructure:"batch" yaml:"batch"`
}

// InitializeConfig loads defaults, then the config file, then O2Y_* environment
// variables, each layer overriding the previous one. With an empty configFile the
// standard locations are searched and a missing file is not an error; an explicit
// configFile must exist and parse.
func InitializeConfig(configFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.o2y")
		v.AddConfigPath(".o2y")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns the configuration used when nothing overrides the defaults.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var config Config
	// Defaults are plain values of the right kinds; decoding cannot fail.
	_ = v.Unmarshal(&config)
	return &config
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("csv.use_crlf", true)

	v.SetDefault("output.suffix", "-ynab.csv")
	v.SetDefault("output.overwrite", false)

	v.SetDefault("batch.workers", 4)
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if utf8.RuneCountInString(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %q", config.CSV.Delimiter)
	}
	switch config.CSV.Delimiter {
	case "\"", "\r", "\n", string(utf8.RuneError):
		return fmt.Errorf("CSV delimiter %q is not allowed", config.CSV.Delimiter)
	}

	if !strings.HasSuffix(strings.ToLower(config.Output.Suffix), ".csv") {
		return fmt.Errorf("output.suffix must end in .csv, got: %s", config.Output.Suffix)
	}

	if config.Batch.Workers < 1 || config.Batch.Workers > 64 {
		return fmt.Errorf("batch.workers must be between 1 and 64, got: %d", config.Batch.Workers)
	}

	return nil
}

// Validate checks the configuration after callers changed it, e.g. from flags.
func (c *Config) Validate() error {
	if err := validateConfig(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Delimiter returns the output delimiter as a rune.
func (c *Config) Delimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.CSV.Delimiter)
	return r
}

// ConfigureLoggingFromConfig builds the application logger from the log section.
func ConfigureLoggingFromConfig(config *Config) logging.Logger {
	return logging.NewLogrusAdapter(strings.ToLower(config.Log.Level), strings.ToLower(config.Log.Format))
}
