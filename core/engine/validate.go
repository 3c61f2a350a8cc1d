package engine

import (
	"fmt"
	"math"
	"strconv"

	"iops-calculator/core/types"
)

// IopsFloor returns the minimum valid IOPS for a storage class (3000 gp3, 100 io2).
// Unknown classes have no floor.
func (e *Engine) IopsFloor(storageKey types.StorageKey) float64 {
	class, err := e.catalog.FindStorageClass(storageKey)
	if err != nil {
		return 0
	}
	return class.Rates.IopsFloor
}

// MaxIopsFor returns the IOPS ceiling for a disk size.
// gp3: clamp(500 * disk, 3000, 16000). io2: min(1000 * disk, 256000).
// Unknown classes have a zero ceiling.
func (e *Engine) MaxIopsFor(diskSizeGB float64, storageKey types.StorageKey) float64 {
	class, err := e.catalog.FindStorageClass(storageKey)
	if err != nil {
		return 0
	}
	return maxIops(class.Rates, diskSizeGB)
}

// IopsRange returns the floor and ceiling that bound valid IOPS
func (e *Engine) IopsRange(diskSizeGB float64, storageKey types.StorageKey) (floor, ceiling float64) {
	return e.IopsFloor(storageKey), e.MaxIopsFor(diskSizeGB, storageKey)
}

func maxIops(r types.RateCard, diskSizeGB float64) float64 {
	ceiling := math.Min(r.IopsPerGB*diskSizeGB, r.IopsCeiling)
	if r.IopsMinCeiling > 0 {
		ceiling = math.Max(ceiling, r.IopsMinCeiling)
	}
	// a negative disk size never yields a negative ceiling
	return math.Max(ceiling, 0)
}

// ValidateDiskSize checks a disk size against the tier bounds.
// It never rejects: a returned warning only describes the violation.
func (e *Engine) ValidateDiskSize(value float64, tier types.ComputeTier) *types.Warning {
	switch {
	case value < float64(tier.MinDiskSizeGB):
		return &types.Warning{
			Field:   types.FieldDiskSize,
			Kind:    types.WarningBelowMinimum,
			Limit:   float64(tier.MinDiskSizeGB),
			Message: fmt.Sprintf("Minimum disk size is %d GB", tier.MinDiskSizeGB),
		}
	case value > float64(tier.MaxDiskSizeGB):
		return &types.Warning{
			Field:   types.FieldDiskSize,
			Kind:    types.WarningAboveMaximum,
			Limit:   float64(tier.MaxDiskSizeGB),
			Message: fmt.Sprintf("Maximum disk size is %d GB for %s instances", tier.MaxDiskSizeGB, tier.Name),
		}
	default:
		return nil
	}
}

// ValidateIops checks IOPS against the storage floor and the disk-size ceiling.
// Unknown storage classes are not validated.
func (e *Engine) ValidateIops(value, diskSizeGB float64, storageKey types.StorageKey) *types.Warning {
	class, err := e.catalog.FindStorageClass(storageKey)
	if err != nil {
		return nil
	}

	floor := class.Rates.IopsFloor
	ceiling := maxIops(class.Rates, diskSizeGB)

	switch {
	case value < floor:
		return &types.Warning{
			Field:   types.FieldIops,
			Kind:    types.WarningBelowMinimum,
			Limit:   floor,
			Message: fmt.Sprintf("Minimum IOPS is %s for %s storage", formatNumber(floor), storageKey),
		}
	case value > ceiling:
		return &types.Warning{
			Field: types.FieldIops,
			Kind:  types.WarningAboveMaximum,
			Limit: ceiling,
			Message: fmt.Sprintf("Maximum IOPS is %s for %s GB of %s storage",
				formatNumber(ceiling), formatNumber(diskSizeGB), storageKey),
		}
	default:
		return nil
	}
}

// formatNumber renders a value without trailing zeros (8, 10.5)
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
