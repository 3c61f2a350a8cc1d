// Package primitives - Storage pricing primitives
// GB-months, IOPS-months, throughput
package primitives

import (
	"fmt"

	"github.com/shopspring/decimal"

	"iops-calculator/core/types"
)

// VolumeStorage creates a cost unit for block storage after the free allowance
func VolumeStorage(
	gb decimal.Decimal,
	freeGB decimal.Decimal,
	rate decimal.Decimal,
	storageKey types.StorageKey,
) types.CostUnit {
	chargeable := FreeAllowance(gb, freeGB)

	return types.CostUnit{
		Component: types.ComponentStorage,
		Label:     fmt.Sprintf("Disk (%s)", storageKey),
		Measure:   MeasureGBMonth,
		Quantity:  chargeable,
		Rate:      rate,
		Amount:    chargeable.Mul(rate),
		Lineage: types.CostLineage{
			Formula:     fmt.Sprintf("max(0, disk_gb - %s) * $%s/GB-month", freeGB.String(), rate.String()),
			Assumptions: []string{fmt.Sprintf("first %s GB are free", freeGB.String())},
		},
	}
}

// ProvisionedIOPS creates a cost unit for provisioned IOPS priced by tiers
func ProvisionedIOPS(
	iops decimal.Decimal,
	tiers []types.PricingTier,
	storageKey types.StorageKey,
) types.CostUnit {
	return TieredUsage(
		types.ComponentIops,
		fmt.Sprintf("Provisioned IOPS (%s)", storageKey),
		iops,
		tiers,
		MeasureIopsMonth,
	)
}

// ProvisionedThroughput creates a cost unit for throughput above an included baseline
func ProvisionedThroughput(
	mbps decimal.Decimal,
	baseline decimal.Decimal,
	rate decimal.Decimal,
	storageKey types.StorageKey,
) types.CostUnit {
	billable := decimal.Zero
	if mbps.GreaterThan(baseline) {
		billable = mbps.Sub(baseline)
	}

	return types.CostUnit{
		Component: types.ComponentThroughput,
		Label:     fmt.Sprintf("Throughput (%s)", storageKey),
		Measure:   MeasureMBpsMonth,
		Quantity:  billable,
		Rate:      rate,
		Amount:    billable.Mul(rate),
		Lineage: types.CostLineage{
			Formula:     fmt.Sprintf("max(0, throughput_mbps - %s) * $%s/MBps-month", baseline.String(), rate.String()),
			Assumptions: []string{fmt.Sprintf("throughput fixed at %s MB/s", mbps.String())},
		},
	}
}
