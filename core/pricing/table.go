// Package pricing provides the immutable unit-price table used by the
// estimation engine.
// Classification is a textual heuristic: a condition belongs to the first
// category whose name appears (case-insensitively) inside the condition
// name. This matches existing takeoff data and must not be tightened to
// strict equality.
package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Category is an estimator-side pricing classification
type Category string

const (
	CategoryWindow Category = "window"
	CategoryDoor   Category = "door"
	CategoryWall   Category = "wall"
)

// String returns the string representation
func (c Category) String() string {
	return string(c)
}

// Rule is a single pricing rule
type Rule struct {
	// Category this rule prices
	Category Category `json:"category"`

	// UnitPrice is the price per unit of the matched quantity
	UnitPrice decimal.Decimal `json:"unit_price"`

	// Unit is the billing unit label (e.g. "EA", "SQ.M")
	Unit string `json:"unit"`

	// Quantity is the substring matched (case-insensitively) against
	// item quantity names to select the billable value
	Quantity string `json:"quantity"`

	// Description explains the rule
	Description string `json:"description,omitempty"`
}

// Table is an immutable set of pricing rules. Rule order is significant:
// Classify returns the first category whose name is contained in the
// condition name, so "Sliding Window Door" classifies as window when
// window is declared before door.
type Table struct {
	rules    []Rule
	index    map[Category]int
	currency string
}

// NewTable builds a table from rules, preserving declaration order.
// A duplicate category keeps the first declaration.
func NewTable(rules []Rule) *Table {
	t := &Table{
		rules:    make([]Rule, 0, len(rules)),
		index:    make(map[Category]int, len(rules)),
		currency: "USD",
	}
	for _, r := range rules {
		if _, ok := t.index[r.Category]; ok {
			continue
		}
		t.index[r.Category] = len(t.rules)
		t.rules = append(t.rules, r)
	}
	return t
}

// Default returns the built-in pricing table:
// windows $200/EA by count, doors $300/EA by count, walls $50/SQ.M by area.
func Default() *Table {
	return NewTable([]Rule{
		{
			Category:    CategoryWindow,
			UnitPrice:   decimal.NewFromInt(200),
			Unit:        "EA",
			Quantity:    "count",
			Description: "Window installation (per unit)",
		},
		{
			Category:    CategoryDoor,
			UnitPrice:   decimal.NewFromInt(300),
			Unit:        "EA",
			Quantity:    "count",
			Description: "Door installation (per unit)",
		},
		{
			Category:    CategoryWall,
			UnitPrice:   decimal.NewFromInt(50),
			Unit:        "SQ.M",
			Quantity:    "area",
			Description: "Wall construction (per square meter)",
		},
	})
}

// Classify derives the pricing category for a condition name.
// The first rule whose category name is a case-insensitive substring of
// the condition name wins. Returns false when no rule matches; such
// conditions contribute nothing to an estimate.
func (t *Table) Classify(conditionName string) (Rule, bool) {
	name := strings.ToLower(conditionName)
	for _, r := range t.rules {
		if strings.Contains(name, string(r.Category)) {
			return r, true
		}
	}
	return Rule{}, false
}

// Rule returns the rule for a category
func (t *Table) Rule(c Category) (Rule, bool) {
	i, ok := t.index[c]
	if !ok {
		return Rule{}, false
	}
	return t.rules[i], true
}

// Rules returns the rules in declaration order
func (t *Table) Rules() []Rule {
	out := make([]Rule, len(t.rules))
	copy(out, t.rules)
	return out
}

// Len returns the number of rules
func (t *Table) Len() int {
	return len(t.rules)
}

// Currency returns the table's display currency code
func (t *Table) Currency() string {
	return t.currency
}

// MatchesQuantity reports whether a quantity value name selects this
// rule's billable quantity (case-insensitive substring containment).
func (r Rule) MatchesQuantity(quantityName string) bool {
	if r.Quantity == "" {
		return false
	}
	return strings.Contains(strings.ToLower(quantityName), strings.ToLower(r.Quantity))
}
