// Package root contains the root command for the application
package root

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"o2y/internal/config"
	"o2y/internal/container"
	"o2y/internal/fileutils"
	"o2y/internal/logging"
	"o2y/internal/parsererror"

	"github.com/spf13/cobra"
)

// Process exit codes.
const (
	ExitOK                = 0
	ExitFailure           = 1
	ExitTargetExists      = 23
	ExitNoSuchFile        = 42
	ExitConverterNotFound = 110
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	ConfigFile string
	LogLevel   string
	LogFormat  string
	Output     string
	Force      bool
}

var (
	// SharedFlags holds the parsed global and conversion flags.
	SharedFlags = CommonFlags{}

	// AppContainer is built before any command runs.
	AppContainer *container.Container

	// DefaultRun handles `o2y <file.csv>`; main wires it to the convert command.
	DefaultRun func(cmd *cobra.Command, args []string) error

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "o2y [file.csv]",
		Short: "Convert Outbank CSV exports into YNAB-importable CSV",
		Long: `o2y converts bank exports into the six-column CSV that YNAB imports
(Date, Payee, Category, Memo, Outflow, Inflow).

The input format is detected from the header line. Currently supported:
the semicolon-separated CSV export of the Outbank banking app.

Running o2y with a single file is the same as "o2y convert <file>".`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || DefaultRun == nil {
				return cmd.Help()
			}
			return DefaultRun(cmd, args)
		},
	}
)

// Init registers the root command's flags.
func Init() {
	Cmd.PersistentFlags().StringVar(&SharedFlags.ConfigFile, "config", "", "Config file (default searches $HOME/.o2y, .o2y and .)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogFormat, "log-format", "", "Log format: text or json")
	AddConversionFlags(Cmd)
}

// AddConversionFlags registers --output and --force on cmd, bound to SharedFlags.
func AddConversionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&SharedFlags.Output, "output", "o", "", `Output file ("-" for stdout, default <file>-ynab.csv)`)
	AddForceFlag(cmd)
}

// AddForceFlag registers --force on cmd, bound to SharedFlags.
func AddForceFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&SharedFlags.Force, "force", "f", false, "Overwrite existing output files")
}

func setup(cmd *cobra.Command, _ []string) error {
	c, err := NewContainer(SharedFlags, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	AppContainer = c
	return nil
}

// NewContainer loads configuration, applies flag overrides and wires the
// application. Logs go to logOutput.
func NewContainer(flags CommonFlags, logOutput io.Writer) (*container.Container, error) {
	cfg, err := config.InitializeConfig(flags.ConfigFile)
	if err != nil {
		return nil, err
	}
	if flags.LogLevel != "" {
		cfg.Log.Level = flags.LogLevel
	}
	if flags.LogFormat != "" {
		cfg.Log.Format = flags.LogFormat
	}
	if flags.Force {
		cfg.Output.Overwrite = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logging.NewLogrusAdapterWithOutput(cfg.Log.Level, cfg.Log.Format, logOutput)
	return container.NewContainerWithLogger(cfg, logger)
}

// GetContainer returns the application container, nil before setup ran.
func GetContainer() *container.Container {
	return AppContainer
}

// GetContainerOrError is GetContainer for command handlers.
func GetContainerOrError() (*container.Container, error) {
	if AppContainer == nil {
		return nil, errors.New("container not initialized")
	}
	return AppContainer, nil
}

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, parsererror.ErrConverterNotFound):
		return ExitConverterNotFound
	case errors.Is(err, fileutils.ErrTargetExists):
		return ExitTargetExists
	case errors.Is(err, fs.ErrNotExist):
		return ExitNoSuchFile
	default:
		return ExitFailure
	}
}

// Message renders a command error for the terminal.
func Message(err error) string {
	var pathErr *fs.PathError
	switch {
	case errors.Is(err, parsererror.ErrConverterNotFound):
		return fmt.Sprintf("File type detection failed: %v", err)
	case errors.Is(err, fileutils.ErrTargetExists):
		return fmt.Sprintf("%v, exiting without doing anything (use --force to overwrite)", err)
	case errors.Is(err, fs.ErrNotExist) && errors.As(err, &pathErr):
		return fmt.Sprintf("No such file: %q", pathErr.Path)
	default:
		return err.Error()
	}
}
