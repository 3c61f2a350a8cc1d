// Package catalog - Built-in tiers and storage classes
package catalog

import (
	"sync"

	"github.com/shopspring/decimal"

	"iops-calculator/core/pricing"
	"iops-calculator/core/types"
)

// DefaultTiers returns the ten built-in compute tiers, Micro through 16XL.
// 16XL lists 80,000 max IOPS so its 80,000 default stays inside its own bounds.
func DefaultTiers() []types.ComputeTier {
	return []types.ComputeTier{
		tier("Micro", 1, "2-core ARM CPU (Shared)", "0.01344", 1000, 3000, 8, 500, 11800, true),
		tier("Small", 2, "2-core ARM CPU (Shared)", "0.0206", 2000, 5000, 8, 1000, 11800, true),
		tier("Medium", 4, "2-core ARM CPU (Shared)", "0.0822", 4000, 10000, 8, 2000, 11800, true),
		tier("Large", 8, "2-core ARM CPU (Dedicated)", "0.1517", 8000, 20000, 8, 3600, 20000, true),
		tier("XL", 16, "4-core ARM CPU (Dedicated)", "0.2877", 16000, 32000, 8, 6000, 20000, true),
		tier("2XL", 32, "8-core ARM CPU (Dedicated)", "0.562", 32000, 64000, 12, 12000, 20000, true),
		tier("4XL", 64, "16-core ARM CPU (Dedicated)", "1.32", 64000, 64000, 20, 20000, 20000, false),
		tier("8XL", 128, "32-core ARM CPU (Dedicated)", "2.562", 64000, 64000, 40, 40000, 40000, false),
		tier("12XL", 192, "48-core ARM CPU (Dedicated)", "3.836", 64000, 64000, 50, 50000, 50000, false),
		tier("16XL", 256, "64-core ARM CPU (Dedicated)", "5.12", 64000, 80000, 80, 80000, 80000, false),
	}
}

// DefaultStorageClasses returns gp3 and io2
func DefaultStorageClasses() []types.StorageClass {
	return []types.StorageClass{
		{
			Name:        "General Purpose SSD",
			Key:         types.StorageGP3,
			Description: "gp3 provides a balance between price and performance",
			Rates:       pricing.GP3RateCard(),
		},
		{
			Name:        "Provisioned IOPS SSD",
			Key:         types.StorageIO2,
			Description: "io2 offers high IOPS for mission-critical applications.",
			Rates:       pricing.IO2RateCard(),
		},
	}
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the shared built-in catalog
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = MustNew(DefaultTiers(), DefaultStorageClasses())
	})
	return defaultCatalog
}

// tier builds a catalog entry; every built-in tier starts at 8 GB and 100 IOPS
func tier(name string, memoryGB int, cpu, hourly string, maxDisk, maxIops, defaultDisk, defaultIops, burstIops int, burst bool) types.ComputeTier {
	return types.ComputeTier{
		Name:              name,
		MemoryGB:          memoryGB,
		CPUDescription:    cpu,
		HourlyPrice:       decimal.RequireFromString(hourly),
		MinDiskSizeGB:     8,
		MaxDiskSizeGB:     maxDisk,
		MinIops:           100,
		MaxIops:           maxIops,
		DefaultDiskSizeGB: defaultDisk,
		DefaultIops:       defaultIops,
		BurstIops:         burstIops,
		BurstEnabled:      burst,
	}
}
