// Package cmd - sld command
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"charger-sizing/core/engine"
	"charger-sizing/core/input"
	"charger-sizing/core/output"
	"charger-sizing/internal/config"
)

var sldOutPath string

// sldCmd represents the sld command.
var sldCmd = &cobra.Command{
	Use:   "sld <site-file>",
	Short: "Render the single-line diagram as Graphviz DOT",
	Long: `Size the site and emit its single-line diagram as a Graphviz
document. Pipe the output through dot to produce an image:

  charger-sizing sld site.yaml | dot -Tpng -o site.png`,
	Args: cobra.ExactArgs(1),
	RunE: runSLD,
}

func init() {
	sldCmd.Flags().StringVarP(&sldOutPath, "output", "o", "", "write DOT to a file instead of stdout")
}

func runSLD(cmd *cobra.Command, args []string) error {
	site, err := input.Load(args[0])
	if err != nil {
		return err
	}

	params := site.Parameters.Apply(config.Get().Parameters)
	if err := params.Validate(); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}

	res := engine.Run(site.Chargers, params, engine.Options{WithDiagram: true})
	if res.Graph == nil {
		for _, cr := range res.Circuits {
			if cr.Err != nil {
				fmt.Fprintf(os.Stderr, "circuit %s %g kW: %v\n", cr.Spec.Type, cr.Spec.CapacityKW, cr.Err)
			}
		}
		if res.DistErr != nil {
			fmt.Fprintln(os.Stderr, res.DistErr.Error())
			for _, m := range output.Mitigations(res.DistErr) {
				fmt.Fprintln(os.Stderr, "  - "+m)
			}
		}
		return fmt.Errorf("no diagram: the design is incomplete")
	}

	out := os.Stdout
	if sldOutPath != "" {
		f, err := os.Create(sldOutPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return output.RenderDOT(out, res.Graph)
}
