// Package catalog - Catalog validation
// Ensures catalog integrity and enforces invariants.
package catalog

import (
	"fmt"

	"iops-calculator/core/types"
)

// TierRule is a compute tier validation rule
type TierRule func(types.ComputeTier) error

// StorageRule is a storage class validation rule
type StorageRule func(types.StorageClass) error

// DefaultTierRules returns the standard tier validation rules
func DefaultTierRules() []TierRule {
	return []TierRule{
		validateTierName,
		validateDiskBounds,
		validateIopsBounds,
		validateHourlyPrice,
	}
}

// DefaultStorageRules returns the standard storage class validation rules
func DefaultStorageRules() []StorageRule {
	return []StorageRule{
		validateStorageKey,
		validateIopsRange,
		validateIopsDefault,
		validateIopsTiers,
	}
}

// Validate checks a catalog against validation rules
func (c *Catalog) Validate(tierRules []TierRule, storageRules []StorageRule) []error {
	var errs []error

	for _, tier := range c.tiers {
		for _, rule := range tierRules {
			if err := rule(tier); err != nil {
				errs = append(errs, fmt.Errorf("tier %s: %w", tier.Name, err))
			}
		}
	}

	for _, class := range c.classes {
		for _, rule := range storageRules {
			if err := rule(class); err != nil {
				errs = append(errs, fmt.Errorf("storage %s: %w", class.Key, err))
			}
		}
	}

	return errs
}

func validateTierName(t types.ComputeTier) error {
	if t.Name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// validateDiskBounds ensures min <= default <= max for disk size
func validateDiskBounds(t types.ComputeTier) error {
	if t.MinDiskSizeGB < 0 {
		return fmt.Errorf("min disk size %d is negative", t.MinDiskSizeGB)
	}
	if t.MinDiskSizeGB > t.DefaultDiskSizeGB || t.DefaultDiskSizeGB > t.MaxDiskSizeGB {
		return fmt.Errorf("disk size bounds out of order: min=%d default=%d max=%d",
			t.MinDiskSizeGB, t.DefaultDiskSizeGB, t.MaxDiskSizeGB)
	}
	return nil
}

// validateIopsBounds ensures min <= default <= max for IOPS
func validateIopsBounds(t types.ComputeTier) error {
	if t.MinIops > t.DefaultIops || t.DefaultIops > t.MaxIops {
		return fmt.Errorf("IOPS bounds out of order: min=%d default=%d max=%d",
			t.MinIops, t.DefaultIops, t.MaxIops)
	}
	return nil
}

func validateHourlyPrice(t types.ComputeTier) error {
	if t.HourlyPrice.IsNegative() {
		return fmt.Errorf("hourly price %s is negative", t.HourlyPrice)
	}
	return nil
}

func validateStorageKey(s types.StorageClass) error {
	if s.Key == "" {
		return fmt.Errorf("key is required")
	}
	return nil
}

// validateIopsRange ensures the floor can be met below the absolute ceiling
func validateIopsRange(s types.StorageClass) error {
	r := s.Rates
	if r.IopsFloor < 0 || r.IopsPerGB <= 0 || r.IopsCeiling <= 0 {
		return fmt.Errorf("IOPS floor, per-GB and ceiling must be positive")
	}
	if r.IopsFloor > r.IopsCeiling {
		return fmt.Errorf("IOPS floor %.0f exceeds ceiling %.0f", r.IopsFloor, r.IopsCeiling)
	}
	if r.IopsMinCeiling > r.IopsCeiling {
		return fmt.Errorf("IOPS minimum ceiling %.0f exceeds ceiling %.0f", r.IopsMinCeiling, r.IopsCeiling)
	}
	if r.PricePerGBMonth.IsNegative() || r.FreeGB.IsNegative() {
		return fmt.Errorf("storage rate and free allowance must not be negative")
	}
	return nil
}

func validateIopsDefault(s types.StorageClass) error {
	switch s.Rates.IopsDefault {
	case types.IopsDefaultTier:
		return nil
	case types.IopsDefaultBaseline:
		if s.Rates.BaselineIops < s.Rates.IopsFloor {
			return fmt.Errorf("baseline IOPS %.0f is below floor %.0f", s.Rates.BaselineIops, s.Rates.IopsFloor)
		}
		return nil
	default:
		return fmt.Errorf("unknown IOPS default policy %q", s.Rates.IopsDefault)
	}
}

// validateIopsTiers ensures limited tiers ascend and only the last tier is unlimited
func validateIopsTiers(s types.StorageClass) error {
	tiers := s.Rates.IopsTiers
	if len(tiers) == 0 {
		return fmt.Errorf("at least one IOPS pricing tier is required")
	}
	for i, tier := range tiers {
		if tier.Price.IsNegative() {
			return fmt.Errorf("IOPS tier %d has negative price", i)
		}
		if tier.Unlimited() {
			if i != len(tiers)-1 {
				return fmt.Errorf("IOPS tier %d is unlimited but not last", i)
			}
			continue
		}
		if i > 0 && !tier.UpTo.GreaterThan(tiers[i-1].UpTo) {
			return fmt.Errorf("IOPS tier %d limit %s does not ascend", i, tier.UpTo)
		}
	}
	return nil
}
