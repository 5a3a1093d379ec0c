// Package formats implements the formats command
package formats

import (
	"fmt"
	"io"

	"o2y/cmd/root"
	"o2y/internal/parser"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Cmd represents the formats command
var Cmd = &cobra.Command{
	Use:   "formats",
	Short: "List the supported input formats",
	Long: `List the supported input formats as YAML, in detection order, with the
field delimiter and the exact header line each one is recognised by.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainerOrError()
		if err != nil {
			return err
		}
		return Write(c.GetRegistry(), cmd.OutOrStdout())
	},
}

// Info is the listed description of one format.
type Info struct {
	Name      string `yaml:"name"`
	Delimiter string `yaml:"delimiter"`
	Signature string `yaml:"signature,omitempty"`
}

// Describe lists the registry's formats in detection order.
func Describe(registry *parser.Registry) []Info {
	formats := registry.Formats()
	infos := make([]Info, 0, len(formats))
	for _, f := range formats {
		infos = append(infos, Info{
			Name:      f.Name,
			Delimiter: string(f.Delimiter),
			Signature: f.Signature,
		})
	}
	return infos
}

// Write renders Describe(registry) as a YAML document.
func Write(registry *parser.Registry, out io.Writer) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(map[string][]Info{"formats": Describe(registry)}); err != nil {
		return fmt.Errorf("failed to encode formats: %w", err)
	}
	return enc.Close()
}
