// Package cmd - estimate command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"takeoff-cost/core/estimate"
	"takeoff-cost/core/output"
	"takeoff-cost/core/pricing"
	"takeoff-cost/core/takeoff"
)

var (
	estimateTablePath string
	outputFormat      string
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate <page-state.json>",
	Short: "Estimate costs for a takeoff page state file",
	Long: `Run the pricing engine over a PageState JSON document.

The file must contain the state-query response shape the takeoff service
produces (takeoffZones -> conditions -> takeoffItems -> quantityValues).

Examples:
  takeoff-cost estimate page_state.json
  takeoff-cost estimate --pricing pricing.hcl page_state.json
  takeoff-cost estimate --format json page_state.json`,
	Args: cobra.ExactArgs(1),
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&estimateTablePath, "pricing", "p", "", "HCL pricing table file (default: built-in table)")
	estimateCmd.Flags().StringVarP(&outputFormat, "format", "f", "cli", "output format (cli, json)")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("cannot read page state: %w", err)
	}

	var page takeoff.PageState
	if err := json.Unmarshal(data, &page); err != nil {
		return fmt.Errorf("malformed page state: %w", err)
	}

	table, err := loadTable(estimateTablePath)
	if err != nil {
		return err
	}

	result := estimate.New(table).Estimate(&page)

	switch outputFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	default:
		return output.Render(os.Stdout, result)
	}
}

// loadTable resolves the pricing table for CLI commands
func loadTable(path string) (*pricing.Table, error) {
	if path == "" {
		return pricing.Default(), nil
	}
	table, err := pricing.LoadHCL(path)
	if err != nil {
		return nil, fmt.Errorf("cannot load pricing table: %w", err)
	}
	return table, nil
}
