// Package catalog - Authoritative compute tier and storage class catalog
// A catalog is built once, validated, and then treated as read-only.
// The engine receives it by injection so tests can substitute their own.
package catalog

import (
	"fmt"
	"strings"

	"iops-calculator/core/types"
	"iops-calculator/internal/errors"
)

// Catalog is an immutable, ordered lookup table of tiers and storage classes
type Catalog struct {
	tiers    []types.ComputeTier
	tierIdx  map[string]int
	classes  []types.StorageClass
	classIdx map[types.StorageKey]int
}

// New builds a catalog and validates it against the default rules.
// Tier and storage class order is preserved for display.
func New(tiers []types.ComputeTier, classes []types.StorageClass) (*Catalog, error) {
	if len(tiers) == 0 {
		return nil, errors.Catalog("catalog has no compute tiers")
	}
	if len(classes) == 0 {
		return nil, errors.Catalog("catalog has no storage classes")
	}

	c := &Catalog{
		tiers:    make([]types.ComputeTier, 0, len(tiers)),
		tierIdx:  make(map[string]int, len(tiers)),
		classes:  make([]types.StorageClass, 0, len(classes)),
		classIdx: make(map[types.StorageKey]int, len(classes)),
	}

	for _, tier := range tiers {
		if _, dup := c.tierIdx[tier.Name]; dup {
			return nil, errors.Catalog(fmt.Sprintf("duplicate compute tier: %s", tier.Name))
		}
		c.tierIdx[tier.Name] = len(c.tiers)
		c.tiers = append(c.tiers, tier)
	}

	for _, class := range classes {
		if _, dup := c.classIdx[class.Key]; dup {
			return nil, errors.Catalog(fmt.Sprintf("duplicate storage class: %s", class.Key))
		}
		c.classIdx[class.Key] = len(c.classes)
		c.classes = append(c.classes, class)
	}

	if errs := c.Validate(DefaultTierRules(), DefaultStorageRules()); len(errs) > 0 {
		msgs := make([]string, 0, len(errs))
		for _, err := range errs {
			msgs = append(msgs, err.Error())
		}
		return nil, errors.Catalog(fmt.Sprintf("catalog has %d validation errors: %s", len(errs), strings.Join(msgs, "; "))).
			WithContext("errors", len(errs))
	}

	return c, nil
}

// MustNew is New that panics on an invalid catalog
func MustNew(tiers []types.ComputeTier, classes []types.StorageClass) *Catalog {
	c, err := New(tiers, classes)
	if err != nil {
		panic(err.Error())
	}
	return c
}

// FindTier returns the tier with the given name
func (c *Catalog) FindTier(name string) (types.ComputeTier, error) {
	i, ok := c.tierIdx[name]
	if !ok {
		return types.ComputeTier{}, errors.UnknownTier(name)
	}
	return c.tiers[i], nil
}

// FindStorageClass returns the storage class with the given key
func (c *Catalog) FindStorageClass(key types.StorageKey) (types.StorageClass, error) {
	i, ok := c.classIdx[key]
	if !ok {
		return types.StorageClass{}, errors.UnknownStorageClass(string(key))
	}
	return c.classes[i], nil
}

// ListComputeTiers returns all tiers in display order
func (c *Catalog) ListComputeTiers() []types.ComputeTier {
	out := make([]types.ComputeTier, len(c.tiers))
	copy(out, c.tiers)
	return out
}

// ListStorageClasses returns all storage classes in display order
func (c *Catalog) ListStorageClasses() []types.StorageClass {
	out := make([]types.StorageClass, len(c.classes))
	for i, class := range c.classes {
		out[i] = class
		out[i].Rates.IopsTiers = append([]types.PricingTier(nil), class.Rates.IopsTiers...)
	}
	return out
}

// Stats returns catalog statistics
func (c *Catalog) Stats() CatalogStats {
	stats := CatalogStats{
		Tiers:          len(c.tiers),
		StorageClasses: len(c.classes),
	}
	for _, tier := range c.tiers {
		if tier.BurstEnabled {
			stats.BurstEnabled++
		}
	}
	return stats
}

// CatalogStats holds catalog statistics
type CatalogStats struct {
	Tiers          int
	StorageClasses int
	BurstEnabled   int
}
