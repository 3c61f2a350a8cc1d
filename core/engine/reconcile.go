package engine

import (
	"go.uber.org/zap"

	"iops-calculator/core/types"
)

// step is one stage of the reconciliation pipeline.
// Steps run in a fixed order and each sees the output of the previous one.
type step func(cfg types.Configuration) types.Configuration

func pipeline(cfg types.Configuration, steps ...step) types.Configuration {
	for _, s := range steps {
		cfg = s(cfg)
	}
	return cfg
}

// SelectTier applies an explicit tier selection.
// Disk resets to the tier default and IOPS to the storage class reset value,
// then IOPS is clamped down to the ceiling for the new disk size.
// An unknown tier leaves cfg unchanged and returns an UnknownCatalogKey error.
func (e *Engine) SelectTier(cfg types.Configuration, name string) (types.Configuration, error) {
	tier, err := e.catalog.FindTier(name)
	if err != nil {
		e.logger.Debug("tier selection ignored",
			zap.String("tier", name),
			zap.Error(err))
		return cfg, err
	}

	cfg.SelectedTier = tier.Name
	out := pipeline(cfg,
		e.clampDiskToTier(tier),
		e.resetDiskToTierDefault(tier),
		e.resetIops(tier, true),
		e.clampIopsToCeiling,
	)

	e.logReconciled("tier selected", out)
	return out, nil
}

// SelectStorageType applies a storage class change.
// Disk is only clamped into the tier bounds; IOPS resets to the class reset
// value and is then clamped down to the ceiling.
// An unknown key leaves cfg unchanged and returns an UnknownCatalogKey error.
func (e *Engine) SelectStorageType(cfg types.Configuration, key types.StorageKey) (types.Configuration, error) {
	class, err := e.catalog.FindStorageClass(key)
	if err != nil {
		e.logger.Debug("storage selection ignored",
			zap.String("storage", string(key)),
			zap.Error(err))
		return cfg, err
	}

	cfg.StorageType = class.Key

	tier, tierErr := e.catalog.FindTier(cfg.SelectedTier)
	if tierErr != nil {
		// no tier bounds to apply; the gp3 baseline still holds
		out := pipeline(cfg, e.resetIops(types.ComputeTier{}, false), e.clampIopsToCeiling)
		e.logReconciled("storage selected without tier", out)
		return out, nil
	}

	out := pipeline(cfg,
		e.clampDiskToTier(tier),
		e.resetIops(tier, true),
		e.clampIopsToCeiling,
	)

	e.logReconciled("storage selected", out)
	return out, nil
}

// SetDiskSize stores a raw disk size as entered and reports any bound it crosses.
// IOPS is clamped down if the new disk size lowers the ceiling below it.
// Empty input stores 0 without a warning; IOPS is still clamped to the new ceiling.
// Non-numeric input leaves cfg unchanged and returns an InvalidInput error.
func (e *Engine) SetDiskSize(cfg types.Configuration, raw string) (types.Configuration, *types.Warning, error) {
	value, empty, err := ParseNumericInput(string(types.FieldDiskSize), raw)
	if err != nil {
		e.logger.Debug("disk size input rejected", zap.String("raw", raw), zap.Error(err))
		return cfg, nil, err
	}

	cfg.DiskSizeGB = value
	if empty {
		out := e.clampIopsToCeiling(cfg)
		e.logReconciled("disk size cleared", out)
		return out, nil, nil
	}

	var warning *types.Warning
	if tier, err := e.catalog.FindTier(cfg.SelectedTier); err == nil {
		warning = e.ValidateDiskSize(value, tier)
	}

	out := e.clampIopsToCeiling(cfg)
	e.logReconciled("disk size set", out)
	return out, warning, nil
}

// SetIops stores raw IOPS as entered and reports any bound it crosses.
// IOPS is never coerced here.
// Empty input stores 0 without a warning.
// Non-numeric input leaves cfg unchanged and returns an InvalidInput error.
func (e *Engine) SetIops(cfg types.Configuration, raw string) (types.Configuration, *types.Warning, error) {
	value, empty, err := ParseNumericInput(string(types.FieldIops), raw)
	if err != nil {
		e.logger.Debug("IOPS input rejected", zap.String("raw", raw), zap.Error(err))
		return cfg, nil, err
	}

	cfg.Iops = value
	if empty {
		e.logReconciled("IOPS cleared", cfg)
		return cfg, nil, nil
	}

	warning := e.ValidateIops(value, cfg.DiskSizeGB, cfg.StorageType)
	e.logReconciled("IOPS set", cfg)
	return cfg, warning, nil
}

// Revalidate drops warnings whose condition no longer holds for cfg.
// It never raises a new warning; warnings only come from editing their own field.
// A warning that still applies is refreshed so its message matches current bounds.
func (e *Engine) Revalidate(cfg types.Configuration, warnings types.Warnings) types.Warnings {
	var out types.Warnings

	if warnings.DiskSize != nil {
		if tier, err := e.catalog.FindTier(cfg.SelectedTier); err == nil {
			out.DiskSize = e.ValidateDiskSize(cfg.DiskSizeGB, tier)
		}
	}
	if warnings.Iops != nil {
		out.Iops = e.ValidateIops(cfg.Iops, cfg.DiskSizeGB, cfg.StorageType)
	}

	return out
}

func (e *Engine) clampDiskToTier(tier types.ComputeTier) step {
	return func(cfg types.Configuration) types.Configuration {
		lo, hi := float64(tier.MinDiskSizeGB), float64(tier.MaxDiskSizeGB)
		switch {
		case cfg.DiskSizeGB < lo:
			cfg.DiskSizeGB = lo
		case cfg.DiskSizeGB > hi:
			cfg.DiskSizeGB = hi
		}
		return cfg
	}
}

func (e *Engine) resetDiskToTierDefault(tier types.ComputeTier) step {
	return func(cfg types.Configuration) types.Configuration {
		cfg.DiskSizeGB = float64(tier.DefaultDiskSizeGB)
		return cfg
	}
}

// resetIops applies the storage class reset policy. Without a known tier the
// tier-default policy has nothing to reset to and IOPS is kept.
func (e *Engine) resetIops(tier types.ComputeTier, tierKnown bool) step {
	return func(cfg types.Configuration) types.Configuration {
		class, err := e.catalog.FindStorageClass(cfg.StorageType)
		if err != nil {
			return cfg
		}
		if class.Rates.IopsDefault == types.IopsDefaultTier && !tierKnown {
			return cfg
		}
		cfg.Iops = defaultIops(tier, class)
		return cfg
	}
}

// clampIopsToCeiling lowers IOPS to the disk-size ceiling. It never raises IOPS.
func (e *Engine) clampIopsToCeiling(cfg types.Configuration) types.Configuration {
	if _, err := e.catalog.FindStorageClass(cfg.StorageType); err != nil {
		return cfg
	}
	ceiling := e.MaxIopsFor(cfg.DiskSizeGB, cfg.StorageType)
	if cfg.Iops > ceiling {
		e.logger.Debug("IOPS clamped",
			zap.Float64("from", cfg.Iops),
			zap.Float64("to", ceiling))
		cfg.Iops = ceiling
	}
	return cfg
}

func (e *Engine) logReconciled(msg string, cfg types.Configuration) {
	e.logger.Debug(msg,
		zap.String("tier", cfg.SelectedTier),
		zap.String("storage", string(cfg.StorageType)),
		zap.Float64("disk_gb", cfg.DiskSizeGB),
		zap.Float64("iops", cfg.Iops))
}
