// Package engine provides the pricing engine.
// CLI and HTTP are thin wrappers around this engine.
//
// The engine is stateless: every operation is a function of the injected
// catalog and the caller-held Configuration. Mutators return the fully
// reconciled Configuration; they never keep it.
package engine

import (
	"go.uber.org/zap"

	"iops-calculator/core/catalog"
	"iops-calculator/core/types"
)

// Engine is the primary API for configuration reconciliation and pricing.
// It is safe for concurrent use.
type Engine struct {
	catalog  *catalog.Catalog
	logger   *zap.Logger
	currency types.Currency
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the logger used for reconciliation tracing
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an engine over the given catalog
func New(cat *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{
		catalog:  cat,
		logger:   zap.NewNop(),
		currency: types.CurrencyUSD,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewDefault creates an engine over the built-in catalog
func NewDefault(opts ...Option) *Engine {
	return New(catalog.Default(), opts...)
}

// Catalog returns the catalog the engine prices against
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// ListComputeTiers returns the tiers in display order (Micro to 16XL for the built-in catalog)
func (e *Engine) ListComputeTiers() []types.ComputeTier {
	return e.catalog.ListComputeTiers()
}

// ListStorageClasses returns the storage classes in display order
func (e *Engine) ListStorageClasses() []types.StorageClass {
	return e.catalog.ListStorageClasses()
}

// Defaults are the values applied by an explicit tier selection
type Defaults struct {
	DiskSizeGB float64 `json:"disk_size_gb"`
	Iops       float64 `json:"iops"`
}

// DefaultsFor returns the disk size and IOPS a tier selection resets to
// under the given storage class.
func (e *Engine) DefaultsFor(tierName string, storageKey types.StorageKey) (Defaults, error) {
	tier, err := e.catalog.FindTier(tierName)
	if err != nil {
		return Defaults{}, err
	}
	class, err := e.catalog.FindStorageClass(storageKey)
	if err != nil {
		return Defaults{}, err
	}

	return Defaults{
		DiskSizeGB: float64(tier.DefaultDiskSizeGB),
		Iops:       defaultIops(tier, class),
	}, nil
}

// defaultIops is the IOPS reset value: the class baseline, or the tier default
func defaultIops(tier types.ComputeTier, class types.StorageClass) float64 {
	if class.Rates.IopsDefault == types.IopsDefaultTier {
		return float64(tier.DefaultIops)
	}
	return class.Rates.BaselineIops
}
