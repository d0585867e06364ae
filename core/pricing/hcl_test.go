package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"takeoff-cost/internal/errors"
)

const sampleTable = `
currency = "USD"

rule "window" {
  unit_price  = 200.0
  unit        = "EA"
  quantity    = "count"
  description = "Window installation (per unit)"
}

rule "door" {
  unit_price = 300.0
  unit       = "EA"
  quantity   = "count"
}

rule "wall" {
  unit_price = 50.0
  unit       = "SQ.M"
  quantity   = "area"
}
`

func TestParseHCL(t *testing.T) {
	table, err := ParseHCL("pricing.hcl", []byte(sampleTable))
	if err != nil {
		t.Fatalf("ParseHCL failed: %v", err)
	}

	if table.Len() != 3 {
		t.Fatalf("expected 3 rules, got %d", table.Len())
	}

	rules := table.Rules()
	wantOrder := []Category{CategoryWindow, CategoryDoor, CategoryWall}
	for i, want := range wantOrder {
		if rules[i].Category != want {
			t.Errorf("rule %d category = %s, want %s", i, rules[i].Category, want)
		}
	}

	window, _ := table.Rule(CategoryWindow)
	if !window.UnitPrice.Equal(decimal.NewFromInt(200)) {
		t.Errorf("window unit price = %s, want 200", window.UnitPrice)
	}
	if window.Description != "Window installation (per unit)" {
		t.Errorf("window description = %q", window.Description)
	}

	wall, _ := table.Rule(CategoryWall)
	if wall.Quantity != "area" {
		t.Errorf("wall quantity match = %q, want area", wall.Quantity)
	}

	if table.Currency() != "USD" {
		t.Errorf("currency = %q, want USD", table.Currency())
	}
}

func TestParseHCLDeclarationOrderIsPriority(t *testing.T) {
	src := `
rule "door" {
  unit_price = 300.0
  unit       = "EA"
  quantity   = "count"
}

rule "window" {
  unit_price = 200.0
  unit       = "EA"
  quantity   = "count"
}
`
	table, err := ParseHCL("pricing.hcl", []byte(src))
	if err != nil {
		t.Fatalf("ParseHCL failed: %v", err)
	}

	rule, ok := table.Classify("Sliding Window Door")
	if !ok || rule.Category != CategoryDoor {
		t.Errorf("expected door-first table to classify as door, got %v %v", rule.Category, ok)
	}
}

func TestParseHCLErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"syntax error", `rule "window" {`},
		{"no rules", `currency = "USD"`},
		{"missing quantity", `
rule "window" {
  unit_price = 200.0
  unit       = "EA"
  quantity   = ""
}
`},
	}

	for _, tc := range cases {
		_, err := ParseHCL("pricing.hcl", []byte(tc.src))
		if err == nil {
			t.Errorf("%s: expected error", tc.name)
			continue
		}
		if !errors.IsType(err, errors.TypeConfig) {
			t.Errorf("%s: expected CONFIG_ERROR, got %v", tc.name, err)
		}
	}
}
