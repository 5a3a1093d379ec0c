// Package batch handles batch processing of files
package batch

import (
	"context"
	"fmt"
	"io"

	"o2y/cmd/root"
	"o2y/internal/batch"

	"github.com/spf13/cobra"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Convert every bank export in a directory",
	Long: `Convert every *.csv file directly inside a directory, skipping files that
are already conversion results (*-ynab.csv). Files are converted concurrently
(batch.workers) and independently: a failing file is reported but does not stop
the others, and existing targets are kept unless --force is given.

Example:
  o2y batch ~/Downloads/exports`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainerOrError()
		if err != nil {
			return err
		}
		return Run(cmd.Context(), c.GetBatchConverter(), args[0], cmd.OutOrStdout())
	},
}

func init() {
	root.AddForceFlag(Cmd)
}

// Run converts dir and prints one line per file to out. It fails when any file
// failed, without mapping to a per-file exit code.
func Run(ctx context.Context, converter *batch.Converter, dir string, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	summary, err := converter.ConvertDir(ctx, dir)
	for _, f := range summary.Files {
		if f.Err != nil {
			fmt.Fprintf(out, "FAIL %s: %v\n", f.Source, f.Err)
			continue
		}
		fmt.Fprintf(out, "ok   %s -> %s (%d rows)\n", f.Source, f.Target, f.Rows)
	}
	if err != nil {
		return err
	}

	if failed := len(summary.Failed()); failed > 0 {
		return fmt.Errorf("%d of %d files failed to convert", failed, len(summary.Files))
	}
	return nil
}
