// Package hcl loads compute and storage catalogs from HCL files.
//
//	tier "Micro" {
//	  memory_gb     = 1
//	  cpu           = "2-core ARM CPU (Shared)"
//	  hourly_price  = 0.01344
//	  ...
//	}
//
//	storage_class "io2" {
//	  name               = "Provisioned IOPS SSD"
//	  price_per_gb_month = 0.125
//	  iops_tier {
//	    up_to = 32000
//	    price = 0.065
//	  }
//	  iops_tier {
//	    price = 0.032
//	  }
//	}
package hcl

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"

	"iops-calculator/core/catalog"
	"iops-calculator/core/pricing"
	"iops-calculator/core/types"
	"iops-calculator/internal/errors"
)

type catalogFile struct {
	Tiers          []tierBlock    `hcl:"tier,block"`
	StorageClasses []storageBlock `hcl:"storage_class,block"`
}

type tierBlock struct {
	Name          string  `hcl:"name,label"`
	MemoryGB      int     `hcl:"memory_gb"`
	CPU           string  `hcl:"cpu"`
	HourlyPrice   float64 `hcl:"hourly_price"`
	MinDiskGB     int     `hcl:"min_disk_gb"`
	MaxDiskGB     int     `hcl:"max_disk_gb"`
	MinIops       int     `hcl:"min_iops"`
	MaxIops       int     `hcl:"max_iops"`
	DefaultDiskGB int     `hcl:"default_disk_gb"`
	DefaultIops   int     `hcl:"default_iops"`
	BurstIops     *int    `hcl:"burst_iops,optional"`
	BurstEnabled  *bool   `hcl:"burst_enabled,optional"`
}

type storageBlock struct {
	Key                    string          `hcl:"key,label"`
	Name                   string          `hcl:"name"`
	Description            *string         `hcl:"description,optional"`
	PricePerGBMonth        float64         `hcl:"price_per_gb_month"`
	FreeGB                 *float64        `hcl:"free_gb,optional"`
	IopsFloor              float64         `hcl:"iops_floor"`
	IopsPerGB              float64         `hcl:"iops_per_gb"`
	IopsCeiling            float64         `hcl:"iops_ceiling"`
	IopsMinCeiling         *float64        `hcl:"iops_min_ceiling,optional"`
	IopsDefault            string          `hcl:"iops_default"`
	BaselineIops           *float64        `hcl:"baseline_iops,optional"`
	BaselineThroughputMBps *float64        `hcl:"baseline_throughput_mbps,optional"`
	ThroughputPerMBps      *float64        `hcl:"throughput_price,optional"`
	IopsTiers              []iopsTierBlock `hcl:"iops_tier,block"`
}

type iopsTierBlock struct {
	UpTo  *float64 `hcl:"up_to,optional"`
	Price float64  `hcl:"price"`
}

// Loader parses catalog files
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a new HCL catalog loader
func NewLoader() *Loader {
	return &Loader{
		parser: hclparse.NewParser(),
	}
}

// LoadFile reads and parses a catalog file
func (l *Loader) LoadFile(path string) (*catalog.Catalog, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.TypeConfig, err, "failed to read catalog file %s", path)
	}
	return l.Parse(src, path)
}

// Parse decodes catalog source and validates the result.
// Syntax and schema problems come back as one Parsing error listing file:line for each.
func (l *Loader) Parse(src []byte, filename string) (*catalog.Catalog, error) {
	file, diags := l.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diagnosticsError(filename, diags)
	}

	var cf catalogFile
	if diags := gohcl.DecodeBody(file.Body, nil, &cf); diags.HasErrors() {
		return nil, diagnosticsError(filename, diags)
	}

	tiers := make([]types.ComputeTier, 0, len(cf.Tiers))
	for _, b := range cf.Tiers {
		tiers = append(tiers, b.toTier())
	}

	classes := make([]types.StorageClass, 0, len(cf.StorageClasses))
	for _, b := range cf.StorageClasses {
		classes = append(classes, b.toStorageClass())
	}

	cat, err := catalog.New(tiers, classes)
	if err != nil {
		return nil, errors.Wrapf(errors.TypeCatalog, err, "invalid catalog in %s", filename)
	}
	return cat, nil
}

// Load is a convenience for NewLoader().LoadFile(path)
func Load(path string) (*catalog.Catalog, error) {
	return NewLoader().LoadFile(path)
}

func (b tierBlock) toTier() types.ComputeTier {
	t := types.ComputeTier{
		Name:              b.Name,
		MemoryGB:          b.MemoryGB,
		CPUDescription:    b.CPU,
		HourlyPrice:       decimal.NewFromFloat(b.HourlyPrice),
		MinDiskSizeGB:     b.MinDiskGB,
		MaxDiskSizeGB:     b.MaxDiskGB,
		MinIops:           b.MinIops,
		MaxIops:           b.MaxIops,
		DefaultDiskSizeGB: b.DefaultDiskGB,
		DefaultIops:       b.DefaultIops,
	}
	if b.BurstIops != nil {
		t.BurstIops = *b.BurstIops
	}
	if b.BurstEnabled != nil {
		t.BurstEnabled = *b.BurstEnabled
	}
	return t
}

func (b storageBlock) toStorageClass() types.StorageClass {
	rates := types.RateCard{
		PricePerGBMonth:        decimal.NewFromFloat(b.PricePerGBMonth),
		FreeGB:                 pricing.FreeDiskGB,
		IopsFloor:              b.IopsFloor,
		IopsPerGB:              b.IopsPerGB,
		IopsCeiling:            b.IopsCeiling,
		IopsDefault:            types.IopsDefaultPolicy(b.IopsDefault),
		BaselineThroughputMBps: decimal.Zero,
		ThroughputPerMBps:      decimal.Zero,
	}
	if b.FreeGB != nil {
		rates.FreeGB = decimal.NewFromFloat(*b.FreeGB)
	}
	if b.IopsMinCeiling != nil {
		rates.IopsMinCeiling = *b.IopsMinCeiling
	}
	if b.BaselineIops != nil {
		rates.BaselineIops = *b.BaselineIops
	}
	if b.BaselineThroughputMBps != nil {
		rates.BaselineThroughputMBps = decimal.NewFromFloat(*b.BaselineThroughputMBps)
	}
	if b.ThroughputPerMBps != nil {
		rates.ThroughputPerMBps = decimal.NewFromFloat(*b.ThroughputPerMBps)
	}
	for _, t := range b.IopsTiers {
		tier := types.PricingTier{Price: decimal.NewFromFloat(t.Price)}
		if t.UpTo != nil {
			tier.UpTo = decimal.NewFromFloat(*t.UpTo)
		}
		rates.IopsTiers = append(rates.IopsTiers, tier)
	}

	class := types.StorageClass{
		Name:  b.Name,
		Key:   types.StorageKey(b.Key),
		Rates: rates,
	}
	if b.Description != nil {
		class.Description = *b.Description
	}
	return class
}

func diagnosticsError(filename string, diags hcl.Diagnostics) error {
	var msgs []string
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		line := 0
		if diag.Subject != nil {
			line = diag.Subject.Start.Line
		}
		msgs = append(msgs, fmt.Sprintf("%s:%d: %s: %s", filename, line, diag.Summary, diag.Detail))
	}
	return errors.Parsing(strings.Join(msgs, "; "), diags).
		WithContext("file", filename)
}
