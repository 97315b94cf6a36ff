// Package cmd provides the CLI commands for charger-sizing.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"charger-sizing/internal/config"
	"charger-sizing/internal/logging"
)

// Version is the tool version, settable at build time.
var Version = "0.1.0"

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "charger-sizing",
	Short: "Size EV charger circuits and switchboards to AS/NZS standards",
	Long: `charger-sizing derives circuit currents, protective devices, cable
sizes, and the main switchboard specification for EV charger
installations under Australian wiring standards.

Examples:
  charger-sizing size site.yaml
  charger-sizing size --format json site.yaml
  charger-sizing sld site.yaml -o site.dot`,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.charger-sizing.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(sizeCmd)
	rootCmd.AddCommand(sldCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.Set(cfg)

	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("charger-sizing version " + Version)
	},
}

// configCmd writes the active configuration for inspection or editing.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the active configuration as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := json.MarshalIndent(config.Get(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}
