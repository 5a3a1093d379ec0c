// Package detect implements the detect command
package detect

import (
	"fmt"
	"io"

	"o2y/cmd/root"
	"o2y/internal/container"
	"o2y/internal/fileutils"

	"github.com/spf13/cobra"
)

// Cmd represents the detect command
var Cmd = &cobra.Command{
	Use:   "detect <file.csv>",
	Short: "Print the detected format of a bank export",
	Long: `Print the name of the format a bank export is recognised as, without
converting it. Exits with status 110 when no format matches.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainerOrError()
		if err != nil {
			return err
		}
		return Detect(c, args[0], cmd.OutOrStdout())
	},
}

// Detect writes the format name of source to out.
func Detect(c *container.Container, source string, out io.Writer) error {
	text, err := fileutils.ReadText(source)
	if err != nil {
		return err
	}

	name, err := c.GetConverter().Detect(text)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, name)
	return err
}
