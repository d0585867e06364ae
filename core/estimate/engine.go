// Package estimate implements the cost estimation engine.
// The engine is a pure function over an already-materialized PageState:
// it walks zones, conditions, items and quantity values, classifies each
// condition against the pricing table, and sums unit-price-weighted
// quantities into a grand total. It performs no I/O and never fails;
// anything that does not match a pricing rule contributes zero.
package estimate

import (
	"github.com/shopspring/decimal"

	"takeoff-cost/core/pricing"
	"takeoff-cost/core/takeoff"
)

// CostLine is a single priced quantity contribution
type CostLine struct {
	// Zone is the owning zone name
	Zone string `json:"zone,omitempty"`

	// Condition is the condition name
	Condition string `json:"condition"`

	// Item is the item name, if any
	Item string `json:"item,omitempty"`

	// Category is the pricing classification
	Category pricing.Category `json:"category"`

	// Quantity is the measured value that was priced
	Quantity decimal.Decimal `json:"quantity"`

	// Unit is the billing unit label
	Unit string `json:"unit"`

	// UnitPrice is the price applied per unit
	UnitPrice decimal.Decimal `json:"unit_price"`

	// Amount is Quantity * UnitPrice
	Amount decimal.Decimal `json:"amount"`
}

// SkippedCondition records a condition no pricing rule matched.
// Its items contribute zero; this is reported, not an error.
type SkippedCondition struct {
	Zone      string `json:"zone,omitempty"`
	Condition string `json:"condition"`
	ItemCount int    `json:"item_count"`
}

// Result is the outcome of one estimation
type Result struct {
	// Total is the grand total across all zones
	Total decimal.Decimal `json:"total"`

	// Currency is the display currency
	Currency string `json:"currency"`

	// Lines are the individual cost contributions
	Lines []CostLine `json:"lines,omitempty"`

	// Skipped lists conditions no pricing rule matched
	Skipped []SkippedCondition `json:"skipped,omitempty"`

	// ItemCount is the number of items under priced conditions
	ItemCount int `json:"item_count"`
}

// TotalFloat returns the grand total as a float64
func (r *Result) TotalFloat() float64 {
	f, _ := r.Total.Float64()
	return f
}

// Engine computes cost estimates from takeoff page state
type Engine struct {
	table *pricing.Table
}

// New creates an engine using the given pricing table.
// A nil table uses the built-in default.
func New(table *pricing.Table) *Engine {
	if table == nil {
		table = pricing.Default()
	}
	return &Engine{table: table}
}

// Table returns the engine's pricing table
func (e *Engine) Table() *pricing.Table {
	return e.table
}

// Estimate computes the total cost for a page. It is deterministic and
// total over all well-formed input: an empty page yields a zero total,
// missing optional substructures contribute nothing, and negative or
// zero quantity values are summed as-is.
func (e *Engine) Estimate(page *takeoff.PageState) *Result {
	result := &Result{
		Total:    decimal.Zero,
		Currency: e.table.Currency(),
	}
	if page == nil {
		return result
	}

	for _, zoneState := range page.Zones {
		zoneName := ""
		if zoneState.Zone != nil {
			zoneName = zoneState.Zone.Name
		}

		for _, condState := range zoneState.Conditions {
			condName := ""
			if condState.Condition != nil {
				condName = condState.Condition.Name
			}

			rule, ok := e.table.Classify(condName)
			if !ok {
				result.Skipped = append(result.Skipped, SkippedCondition{
					Zone:      zoneName,
					Condition: condName,
					ItemCount: len(condState.Items),
				})
				continue
			}

			for _, item := range condState.Items {
				result.ItemCount++
				for _, qty := range item.Quantities {
					if !rule.MatchesQuantity(qty.Name) {
						continue
					}
					quantity := decimal.NewFromFloat(qty.Value)
					amount := quantity.Mul(rule.UnitPrice)
					result.Lines = append(result.Lines, CostLine{
						Zone:      zoneName,
						Condition: condName,
						Item:      item.Name,
						Category:  rule.Category,
						Quantity:  quantity,
						Unit:      qty.UnitOfMeasure,
						UnitPrice: rule.UnitPrice,
						Amount:    amount,
					})
					result.Total = result.Total.Add(amount)
				}
			}
		}
	}

	return result
}
