// Package cmd provides the CLI commands for takeoff-cost.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"takeoff-cost/internal/config"
	"takeoff-cost/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "takeoff-cost",
	Short: "Estimate construction costs from takeoff measurements",
	Long: `takeoff-cost computes cost estimates from construction takeoff data.

It prices measured quantities (window and door counts, wall areas) using
a configurable pricing table and renders an itemized breakdown.

Examples:
  takeoff-cost estimate page_state.json
  takeoff-cost estimate --pricing pricing.hcl page_state.json
  takeoff-cost pricing
  takeoff-cost notify --endpoint http://localhost:8001`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is built-in defaults + environment)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(pricingCmd)
	rootCmd.AddCommand(notifyCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	cfg, err := config.Load(cfgFile)
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

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("takeoff-cost version 1.0.0")
	},
}
