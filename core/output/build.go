package output

import (
	"fmt"
	"strings"
	"time"

	"iops-calculator/core/determinism"
	"iops-calculator/core/engine"
	"iops-calculator/core/types"
)

// NewEstimationResult assembles the output model for a session state
func NewEstimationResult(eng *engine.Engine, state engine.State, version string) *EstimationResult {
	cfg := state.Configuration
	floor, ceiling := eng.IopsRange(cfg.DiskSizeGB, cfg.StorageType)

	result := &EstimationResult{
		Configuration: cfg,
		Warnings:      state.Warnings,
		Pricing:       state.Pricing,
		IopsBounds:    IopsBounds{Min: floor, Max: ceiling},
		Metadata: EstimationMetadata{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Version:   version,
		},
	}

	if hash, err := determinism.HashJSON(cfg); err == nil {
		result.Metadata.InputHash = hash.Hex()
	}

	if tier, err := eng.Catalog().FindTier(cfg.SelectedTier); err == nil {
		result.Tier = &tier
	}
	if class, err := eng.Catalog().FindStorageClass(cfg.StorageType); err == nil {
		result.StorageClass = &class
		result.Notes = StorageNotes(class)
	}

	return result
}

// NewCatalogListing lists every tier with its monthly range and every storage class with its notes
func NewCatalogListing(eng *engine.Engine) *CatalogListing {
	listing := &CatalogListing{}

	for _, tier := range eng.ListComputeTiers() {
		r := eng.MonthlyPriceRange(tier)
		listing.Tiers = append(listing.Tiers, TierListing{
			ComputeTier: tier,
			MonthlyMin:  r.Min.StringFixed(2),
			MonthlyMax:  r.Max.StringFixed(2),
		})
	}
	for _, class := range eng.ListStorageClasses() {
		listing.StorageClasses = append(listing.StorageClasses, StorageListing{
			StorageClass: class,
			Notes:        StorageNotes(class),
		})
	}

	return listing
}

// StorageNotes describes how a storage class is billed
func StorageNotes(class types.StorageClass) []string {
	r := class.Rates
	notes := []string{
		fmt.Sprintf("First %s GB are free. Additional storage is $%s/GB-month.",
			r.FreeGB.String(), r.PricePerGBMonth.String()),
	}

	var bands []string
	lower := "0"
	for _, t := range r.IopsTiers {
		switch {
		case t.Price.IsZero() && !t.Unlimited():
			notes = append(notes, fmt.Sprintf("The first %s IOPS are included.", formatCount(t.UpTo.InexactFloat64())))
		case t.Unlimited():
			bands = append(bands, fmt.Sprintf("above %s at $%s", lower, t.Price.String()))
		default:
			bands = append(bands, fmt.Sprintf("%s to %s at $%s", lower, formatCount(t.UpTo.InexactFloat64()), t.Price.String()))
		}
		if !t.Unlimited() {
			lower = formatCount(t.UpTo.InexactFloat64())
		}
	}
	if len(bands) > 0 {
		notes = append(notes, fmt.Sprintf("Provisioned IOPS are billed per IOPS-month: %s.", strings.Join(bands, "; ")))
	}

	if r.MeterThroughput() {
		notes = append(notes, fmt.Sprintf("Throughput above %s MB/s is $%s per MB/s-month.",
			r.BaselineThroughputMBps.String(), r.ThroughputPerMBps.String()))
	}

	return notes
}
