// Package primitives - Tiered pricing primitives
// Handles marginal tiered pricing: each tier prices only the quantity inside it.
package primitives

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"iops-calculator/core/types"
)

// TieredUsage creates a cost unit for tiered pricing
// Calculates cost across multiple pricing tiers
func TieredUsage(
	component types.CostComponent,
	label string,
	quantity decimal.Decimal,
	tiers []types.PricingTier,
	measure string,
) types.CostUnit {
	amount := CalculateTieredCost(quantity, tiers)

	return types.CostUnit{
		Component: component,
		Label:     label,
		Measure:   measure,
		Quantity:  NonNegative(quantity),
		Rate:      decimal.Zero,
		Amount:    amount,
		Lineage: types.CostLineage{
			Formula: describeTiers(tiers),
		},
	}
}

// CalculateTieredCost computes the cost of quantity across cumulative tiers.
// Tiers must be ordered by UpTo; an unlimited tier absorbs the remainder.
// Quantity beyond the last limited tier is not priced if no unlimited tier exists.
func CalculateTieredCost(quantity decimal.Decimal, tiers []types.PricingTier) decimal.Decimal {
	if !quantity.IsPositive() || len(tiers) == 0 {
		return decimal.Zero
	}

	totalCost := decimal.Zero
	remaining := quantity
	previousLimit := decimal.Zero

	for _, tier := range tiers {
		if !remaining.IsPositive() {
			break
		}

		if tier.Unlimited() {
			// Unlimited tier - all remaining goes here
			totalCost = totalCost.Add(remaining.Mul(tier.Price))
			remaining = decimal.Zero
			continue
		}

		tierSize := tier.UpTo.Sub(previousLimit)
		usageInTier := decimal.Min(remaining, tierSize)
		totalCost = totalCost.Add(usageInTier.Mul(tier.Price))
		remaining = remaining.Sub(usageInTier)
		previousLimit = tier.UpTo
	}

	return totalCost
}

// FreeAllowance returns the billable quantity after a free allowance, floored at zero
func FreeAllowance(quantity, freeAmount decimal.Decimal) decimal.Decimal {
	return NonNegative(quantity.Sub(freeAmount))
}

func describeTiers(tiers []types.PricingTier) string {
	if len(tiers) == 0 {
		return "no tiers"
	}

	parts := make([]string, 0, len(tiers))
	previous := decimal.Zero
	for _, tier := range tiers {
		if tier.Unlimited() {
			parts = append(parts, fmt.Sprintf(">%s @ $%s", previous.String(), tier.Price.String()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s-%s @ $%s", previous.String(), tier.UpTo.String(), tier.Price.String()))
		previous = tier.UpTo
	}
	return strings.Join(parts, ", ")
}
