// Package output - Text rendering of estimation results
package output

import (
	"fmt"
	"io"

	"takeoff-cost/core/estimate"
)

// Render writes a human-readable breakdown of an estimation result
func Render(w io.Writer, result *estimate.Result) error {
	for _, line := range result.Lines {
		name := line.Item
		if name == "" {
			name = line.Condition
		}
		_, err := fmt.Fprintf(w, "  %-32s %10s %-6s x %10s = %12s\n",
			name,
			line.Quantity.String(),
			line.Unit,
			FormatCurrency(line.UnitPrice),
			FormatCurrency(line.Amount),
		)
		if err != nil {
			return err
		}
	}

	for _, skipped := range result.Skipped {
		if _, err := fmt.Fprintf(w, "  %-32s (no pricing rule, %d item(s) skipped)\n",
			skipped.Condition, skipped.ItemCount); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\n  ESTIMATED COST: %s\n", FormatCurrency(result.Total)); err != nil {
		return err
	}
	return nil
}
