// Package types - Compute tier catalog entries
package types

import "github.com/shopspring/decimal"

// ComputeTier is a named compute size with a fixed hourly price and resource bounds.
// Tiers are built once with the catalog and never mutated.
type ComputeTier struct {
	// Name uniquely identifies the tier (e.g. "Micro", "16XL")
	Name string `json:"name"`

	// MemoryGB is the memory size of the tier
	MemoryGB int `json:"memory_gb"`

	// CPUDescription is a human-readable CPU description
	CPUDescription string `json:"cpu_description"`

	// HourlyPrice is the on-demand price per hour in USD
	HourlyPrice decimal.Decimal `json:"hourly_price"`

	// MinDiskSizeGB is the smallest disk the tier supports
	MinDiskSizeGB int `json:"min_disk_size_gb"`

	// MaxDiskSizeGB is the largest disk the tier supports
	MaxDiskSizeGB int `json:"max_disk_size_gb"`

	// MinIops is the lowest IOPS the tier supports
	MinIops int `json:"min_iops"`

	// MaxIops is the highest IOPS the tier supports
	MaxIops int `json:"max_iops"`

	// DefaultDiskSizeGB is applied when the tier is explicitly selected
	DefaultDiskSizeGB int `json:"default_disk_size_gb"`

	// DefaultIops is applied on selection when the storage class uses tier defaults
	DefaultIops int `json:"default_iops"`

	// BurstIops is the IOPS reachable during burst periods
	BurstIops int `json:"burst_iops"`

	// BurstEnabled reports whether the tier can burst
	BurstEnabled bool `json:"burst_enabled"`
}

// CPUShort returns the leading token of the CPU description (e.g. "2-core")
func (t ComputeTier) CPUShort() string {
	for i, r := range t.CPUDescription {
		if r == ' ' {
			return t.CPUDescription[:i]
		}
	}
	return t.CPUDescription
}
