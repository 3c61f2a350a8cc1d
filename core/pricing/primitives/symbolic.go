// Package primitives - Zero cost helpers
// Used when a component cannot be priced for the current selection
package primitives

import (
	"github.com/shopspring/decimal"

	"iops-calculator/core/types"
)

// ZeroCost creates a cost unit that is explicitly zero.
// The engine always returns a usable result, so an unpriceable
// component becomes a zero unit that records why.
func ZeroCost(component types.CostComponent, label, reason string) types.CostUnit {
	return types.CostUnit{
		Component: component,
		Label:     label,
		Measure:   MeasureNone,
		Quantity:  decimal.Zero,
		Rate:      decimal.Zero,
		Amount:    decimal.Zero,
		Lineage: types.CostLineage{
			Formula:     "0",
			Assumptions: []string{reason},
		},
	}
}
