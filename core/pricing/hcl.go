// Package pricing - HCL pricing table loading
package pricing

import (
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"

	"takeoff-cost/internal/errors"
)

// tableFile is the HCL schema for a pricing table file:
//
//	currency = "USD"
//
//	rule "window" {
//	  unit_price  = 200.0
//	  unit        = "EA"
//	  quantity    = "count"
//	  description = "Window installation (per unit)"
//	}
//
// Block order defines classification priority.
type tableFile struct {
	Currency string      `hcl:"currency,optional"`
	Rules    []ruleBlock `hcl:"rule,block"`
}

type ruleBlock struct {
	Category    string  `hcl:"category,label"`
	UnitPrice   float64 `hcl:"unit_price"`
	Unit        string  `hcl:"unit"`
	Quantity    string  `hcl:"quantity"`
	Description string  `hcl:"description,optional"`
}

// LoadHCL reads a pricing table from an HCL file
func LoadHCL(path string) (*Table, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.TypeConfig, err, "cannot read pricing table %s", path)
	}
	return ParseHCL(path, src)
}

// ParseHCL parses pricing table HCL source. The filename is used only
// for diagnostics.
func ParseHCL(filename string, src []byte) (*Table, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Wrap(errors.TypeConfig, "invalid pricing table syntax", diags)
	}

	var cfg tableFile
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, errors.Wrap(errors.TypeConfig, "invalid pricing table", diags)
	}

	if len(cfg.Rules) == 0 {
		return nil, errors.New(errors.TypeConfig, "pricing table declares no rules")
	}

	rules := make([]Rule, 0, len(cfg.Rules))
	for _, b := range cfg.Rules {
		if b.Category == "" {
			return nil, errors.New(errors.TypeConfig, "pricing rule with empty category")
		}
		if b.Quantity == "" {
			return nil, errors.Newf(errors.TypeConfig, "pricing rule %q declares no quantity match", b.Category)
		}
		rules = append(rules, Rule{
			Category:    Category(b.Category),
			UnitPrice:   decimal.NewFromFloat(b.UnitPrice),
			Unit:        b.Unit,
			Quantity:    b.Quantity,
			Description: b.Description,
		})
	}

	table := NewTable(rules)
	if cfg.Currency != "" {
		table.currency = cfg.Currency
	}
	return table, nil
}
