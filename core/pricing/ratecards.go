// Package pricing - Built-in storage rate cards
// Rates are USD per month. Storage classes carry their rate card,
// so engine formulas stay generic over the catalog.
package pricing

import (
	"github.com/shopspring/decimal"

	"iops-calculator/core/types"
)

// Shared constants of both built-in storage classes
var (
	// FreeDiskGB is the disk allowance that is never billed
	FreeDiskGB = decimal.NewFromInt(8)

	// AssumedThroughputMBps is the throughput every configuration is priced at.
	// There is no throughput input yet; the gp3 throughput line stays at zero
	// until one exists.
	AssumedThroughputMBps = decimal.NewFromInt(125)
)

// GP3RateCard returns the General Purpose SSD rate card.
// IOPS up to 3,000 are included; the ceiling scales at 500 IOPS/GB
// between 3,000 and 16,000.
func GP3RateCard() types.RateCard {
	return types.RateCard{
		PricePerGBMonth: decimal.RequireFromString("0.08"),
		FreeGB:          FreeDiskGB,
		IopsFloor:       3000,
		IopsPerGB:       500,
		IopsCeiling:     16000,
		IopsMinCeiling:  3000,
		IopsDefault:     types.IopsDefaultBaseline,
		BaselineIops:    3000,
		IopsTiers: []types.PricingTier{
			{UpTo: decimal.NewFromInt(3000), Price: decimal.Zero},
			{Price: decimal.RequireFromString("0.005")},
		},
		BaselineThroughputMBps: decimal.NewFromInt(125),
		ThroughputPerMBps:      decimal.RequireFromString("0.040"),
	}
}

// IO2RateCard returns the Provisioned IOPS SSD rate card.
// Every provisioned IOPS is billed, in three marginal tiers.
func IO2RateCard() types.RateCard {
	return types.RateCard{
		PricePerGBMonth: decimal.RequireFromString("0.125"),
		FreeGB:          FreeDiskGB,
		IopsFloor:       100,
		IopsPerGB:       1000,
		IopsCeiling:     256000,
		IopsDefault:     types.IopsDefaultTier,
		IopsTiers: []types.PricingTier{
			{UpTo: decimal.NewFromInt(32000), Price: decimal.RequireFromString("0.065")},
			{UpTo: decimal.NewFromInt(64000), Price: decimal.RequireFromString("0.046")},
			{Price: decimal.RequireFromString("0.032")},
		},
		BaselineThroughputMBps: decimal.Zero,
		ThroughputPerMBps:      decimal.Zero,
	}
}
