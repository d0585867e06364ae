package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDefaultTable(t *testing.T) {
	table := Default()

	if table.Len() != 3 {
		t.Fatalf("expected 3 rules, got %d", table.Len())
	}

	cases := []struct {
		category Category
		price    string
		unit     string
		quantity string
	}{
		{CategoryWindow, "200", "EA", "count"},
		{CategoryDoor, "300", "EA", "count"},
		{CategoryWall, "50", "SQ.M", "area"},
	}

	for _, tc := range cases {
		rule, ok := table.Rule(tc.category)
		if !ok {
			t.Fatalf("missing rule for %s", tc.category)
		}
		if !rule.UnitPrice.Equal(decimal.RequireFromString(tc.price)) {
			t.Errorf("%s unit price = %s, want %s", tc.category, rule.UnitPrice, tc.price)
		}
		if rule.Unit != tc.unit {
			t.Errorf("%s unit = %q, want %q", tc.category, rule.Unit, tc.unit)
		}
		if rule.Quantity != tc.quantity {
			t.Errorf("%s quantity match = %q, want %q", tc.category, rule.Quantity, tc.quantity)
		}
	}
}

func TestClassify(t *testing.T) {
	table := Default()

	cases := []struct {
		name     string
		category Category
		ok       bool
	}{
		{"Standard Window", CategoryWindow, true},
		{"Interior Door", CategoryDoor, true},
		{"Exterior Wall", CategoryWall, true},
		{"EXTERIOR WALL", CategoryWall, true},
		{"window", CategoryWindow, true},
		// First declared category wins on ambiguous names
		{"Sliding Window Door", CategoryWindow, true},
		{"Roof Tile", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		rule, ok := table.Classify(tc.name)
		if ok != tc.ok {
			t.Errorf("Classify(%q) ok = %v, want %v", tc.name, ok, tc.ok)
			continue
		}
		if ok && rule.Category != tc.category {
			t.Errorf("Classify(%q) = %s, want %s", tc.name, rule.Category, tc.category)
		}
	}
}

func TestClassifyRespectsDeclarationOrder(t *testing.T) {
	// Same rules, door declared first: the ambiguity flips
	table := NewTable([]Rule{
		{Category: CategoryDoor, UnitPrice: decimal.NewFromInt(300), Quantity: "count"},
		{Category: CategoryWindow, UnitPrice: decimal.NewFromInt(200), Quantity: "count"},
	})

	rule, ok := table.Classify("Sliding Window Door")
	if !ok {
		t.Fatal("expected a classification")
	}
	if rule.Category != CategoryDoor {
		t.Errorf("category = %s, want door", rule.Category)
	}
}

func TestNewTableKeepsFirstDuplicate(t *testing.T) {
	table := NewTable([]Rule{
		{Category: CategoryWall, UnitPrice: decimal.NewFromInt(50), Quantity: "area"},
		{Category: CategoryWall, UnitPrice: decimal.NewFromInt(99), Quantity: "area"},
	})

	if table.Len() != 1 {
		t.Fatalf("expected duplicate category to be dropped, got %d rules", table.Len())
	}
	rule, _ := table.Rule(CategoryWall)
	if !rule.UnitPrice.Equal(decimal.NewFromInt(50)) {
		t.Errorf("unit price = %s, want 50", rule.UnitPrice)
	}
}

func TestMatchesQuantity(t *testing.T) {
	rule := Rule{Quantity: "count"}

	cases := []struct {
		name string
		want bool
	}{
		{"Count", true},
		{"count", true},
		{"COUNT", true},
		{"Item Count", true},
		{"Area", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := rule.MatchesQuantity(tc.name); got != tc.want {
			t.Errorf("MatchesQuantity(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}

	empty := Rule{}
	if empty.MatchesQuantity("count") {
		t.Error("rule without quantity match must not match anything")
	}
}
