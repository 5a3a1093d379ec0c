// Package convert implements the convert command
package convert

import (
	"io"

	"o2y/cmd/root"
	"o2y/internal/container"
	"o2y/internal/fileutils"
	"o2y/internal/logging"

	"github.com/spf13/cobra"
)

// StdoutTarget as --output writes the converted CSV to standard output.
const StdoutTarget = "-"

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert <file.csv>",
	Short: "Convert one bank export to YNAB CSV",
	Long: `Convert one bank export to YNAB CSV.

The result is written next to the source as <file>-ynab.csv unless --output
names another target ("-" writes to stdout). An existing target is never
overwritten without --force, and nothing is written when any row fails to
convert.

Example:
  o2y convert Umsaetze.csv
  o2y convert Umsaetze.csv -o - > ynab.csv`,
	Args: cobra.ExactArgs(1),
	RunE: Run,
}

func init() {
	root.AddConversionFlags(Cmd)
}

// Run is the convert command handler; the root command reuses it for `o2y <file>`.
func Run(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainerOrError()
	if err != nil {
		return err
	}
	return Convert(c, args[0], root.SharedFlags.Output, cmd.OutOrStdout())
}

// Convert converts source into output, the default target when output is empty,
// or stdout when output is StdoutTarget.
func Convert(c *container.Container, source, output string, stdout io.Writer) error {
	svc := c.GetConverter()

	if output == StdoutTarget {
		text, err := fileutils.ReadText(source)
		if err != nil {
			return err
		}
		doc, err := svc.ConvertText(text)
		if err != nil {
			return err
		}
		return svc.Write(doc, stdout)
	}

	cfg := c.GetConfig()
	target := output
	if target == "" {
		target = fileutils.TargetPath(source, cfg.Output.Suffix)
	}

	result, err := svc.ConvertFile(source, target, cfg.Output.Overwrite)
	if err != nil {
		return err
	}

	c.GetLogger().Debug("Conversion finished",
		logging.F(logging.FieldOutputFile, result.Target),
		logging.F(logging.FieldCount, result.Rows))
	return nil
}
