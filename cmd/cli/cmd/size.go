// Package cmd - size command
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"charger-sizing/core/engine"
	"charger-sizing/core/input"
	"charger-sizing/core/output"
	"charger-sizing/internal/config"
	"charger-sizing/internal/logging"
)

var (
	outputFormat string
	noColor      bool
	hideNotes    bool
)

// sizeCmd represents the size command.
var sizeCmd = &cobra.Command{
	Use:   "size <site-file>",
	Short: "Size circuits and the main switchboard for a site",
	Long: `Read a site description (YAML or JSON) and derive the per-circuit
and switchboard design.

Examples:
  charger-sizing size site.yaml
  charger-sizing size --format markdown site.yaml
  charger-sizing size --format json carpark.json`,
	Args: cobra.ExactArgs(1),
	RunE: runSize,
}

func init() {
	sizeCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json, markdown)")
	sizeCmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI colors")
	sizeCmd.Flags().BoolVar(&hideNotes, "no-notes", false, "omit the technical notes block")
}

func runSize(cmd *cobra.Command, args []string) error {
	report, err := computeReport(args[0])
	if err != nil {
		return err
	}

	cfg := config.Get()
	format := output.Format(outputFormat)
	if outputFormat == "" {
		format = output.Format(cfg.Output.DefaultFormat)
	}

	formatter, err := output.New(format, output.Options{
		NoColor:   noColor || cfg.Output.NoColor,
		ShowNotes: cfg.Output.ShowNotes && !hideNotes,
	})
	if err != nil {
		return err
	}
	return formatter.Render(os.Stdout, report)
}

// computeReport runs one full engine pass over a site file.
func computeReport(path string) (*output.Report, error) {
	site, err := input.Load(path)
	if err != nil {
		return nil, err
	}

	params := site.Parameters.Apply(config.Get().Parameters)
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	logging.Info("sizing site",
		zap.String("path", path),
		zap.Int("chargers", len(site.Chargers)))

	res := engine.Run(site.Chargers, params, engine.Options{})

	return &output.Report{
		Site:        site.Name,
		GeneratedAt: time.Now().UTC(),
		Version:     Version,
		Parameters:  params,
		Result:      res,
	}, nil
}
