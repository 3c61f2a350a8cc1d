// Package types - Pricing types
package types

import "github.com/shopspring/decimal"

// PricingTier represents a tier in marginal (cumulative) tiered pricing
type PricingTier struct {
	// UpTo is the cumulative upper limit of the tier (zero = unlimited)
	UpTo decimal.Decimal `json:"up_to"`

	// Price is the unit price for quantity that falls in this tier
	Price decimal.Decimal `json:"price"`
}

// Unlimited reports whether the tier has no upper limit
func (t PricingTier) Unlimited() bool {
	return t.UpTo.IsZero()
}

// IopsDefaultPolicy decides which IOPS value a storage class resets to
type IopsDefaultPolicy string

const (
	// IopsDefaultBaseline resets to the class-wide BaselineIops
	IopsDefaultBaseline IopsDefaultPolicy = "baseline"

	// IopsDefaultTier resets to the selected tier's DefaultIops
	IopsDefaultTier IopsDefaultPolicy = "tier"
)

// RateCard holds the storage-class-specific pricing constants and IOPS bounds
type RateCard struct {
	// PricePerGBMonth is the storage rate for chargeable GB
	PricePerGBMonth decimal.Decimal `json:"price_per_gb_month"`

	// FreeGB is the always-free disk allowance
	FreeGB decimal.Decimal `json:"free_gb"`

	// IopsFloor is the minimum valid IOPS
	IopsFloor float64 `json:"iops_floor"`

	// IopsPerGB scales the IOPS ceiling with disk size
	IopsPerGB float64 `json:"iops_per_gb"`

	// IopsCeiling is the absolute IOPS ceiling
	IopsCeiling float64 `json:"iops_ceiling"`

	// IopsMinCeiling keeps the ceiling from dropping below this value (zero = none)
	IopsMinCeiling float64 `json:"iops_min_ceiling"`

	// IopsDefault selects the reset value on tier or storage change
	IopsDefault IopsDefaultPolicy `json:"iops_default"`

	// BaselineIops is the reset value under IopsDefaultBaseline
	BaselineIops float64 `json:"baseline_iops"`

	// IopsTiers prices provisioned IOPS
	IopsTiers []PricingTier `json:"iops_tiers"`

	// BaselineThroughputMBps is the included throughput
	BaselineThroughputMBps decimal.Decimal `json:"baseline_throughput_mbps"`

	// ThroughputPerMBps is the rate for throughput above the baseline
	ThroughputPerMBps decimal.Decimal `json:"throughput_per_mbps"`
}

// MeterThroughput reports whether the class bills provisioned throughput
func (r RateCard) MeterThroughput() bool {
	return r.ThroughputPerMBps.IsPositive()
}
