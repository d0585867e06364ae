// Package cmd - pricing command
package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"takeoff-cost/core/output"
)

var pricingTablePath string

// pricingCmd prints the active pricing table
var pricingCmd = &cobra.Command{
	Use:   "pricing",
	Short: "Show the pricing table",
	Long: `Print the pricing rules the estimator applies, in classification
priority order.

Examples:
  takeoff-cost pricing
  takeoff-cost pricing --pricing pricing.hcl`,
	RunE: runPricing,
}

func init() {
	pricingCmd.Flags().StringVarP(&pricingTablePath, "pricing", "p", "", "HCL pricing table file (default: built-in table)")
}

func runPricing(cmd *cobra.Command, args []string) error {
	table, err := loadTable(pricingTablePath)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tUNIT PRICE\tUNIT\tQUANTITY MATCH\tDESCRIPTION")
	for _, rule := range table.Rules() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%q\t%s\n",
			rule.Category,
			output.FormatCurrency(rule.UnitPrice),
			rule.Unit,
			rule.Quantity,
			rule.Description,
		)
	}
	return w.Flush()
}
