package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"iops-calculator/core/pricing"
	"iops-calculator/core/pricing/primitives"
	"iops-calculator/core/types"
)

// ComputeMonthlyCost prices a configuration.
//
// Component costs are summed unrounded and only the total is rounded to
// cents. Unknown tiers or storage classes contribute zero, so a usable
// result comes back for any configuration, including one mid-edit.
func (e *Engine) ComputeMonthlyCost(cfg types.Configuration) types.PricingResult {
	result := types.NewPricingResult(e.currency)

	tier, err := e.catalog.FindTier(cfg.SelectedTier)
	if err != nil {
		result.Add(primitives.ZeroCost(types.ComponentInstance, "Compute",
			fmt.Sprintf("unknown compute tier %q", cfg.SelectedTier)))
	} else {
		result.Add(primitives.InstanceHours(tier.Name, tier.HourlyPrice))
	}

	class, err := e.catalog.FindStorageClass(cfg.StorageType)
	if err != nil {
		result.Add(primitives.ZeroCost(types.ComponentStorage, "Disk",
			fmt.Sprintf("unknown storage class %q", cfg.StorageType)))
	} else {
		rates := class.Rates
		result.Add(primitives.VolumeStorage(
			decimal.NewFromFloat(cfg.DiskSizeGB), rates.FreeGB, rates.PricePerGBMonth, class.Key))
		result.Add(primitives.ProvisionedIOPS(
			decimal.NewFromFloat(cfg.Iops), rates.IopsTiers, class.Key))
		if rates.MeterThroughput() {
			result.Add(primitives.ProvisionedThroughput(
				pricing.AssumedThroughputMBps, rates.BaselineThroughputMBps, rates.ThroughputPerMBps, class.Key))
		}
	}

	result.Summarize()
	return *result
}

// GetPricing is ComputeMonthlyCost under the name presentation layers use
func (e *Engine) GetPricing(cfg types.Configuration) types.PricingResult {
	return e.ComputeMonthlyCost(cfg)
}

// PriceRange is the monthly cost of a tier across month lengths
type PriceRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// MonthlyPriceRange returns the instance cost of a tier over a 30-day and a
// 31-day month, rounded to cents.
func (e *Engine) MonthlyPriceRange(tier types.ComputeTier) PriceRange {
	return PriceRange{
		Min: tier.HourlyPrice.Mul(primitives.HoursInDays(30)).Round(2),
		Max: tier.HourlyPrice.Mul(primitives.HoursInDays(31)).Round(2),
	}
}
