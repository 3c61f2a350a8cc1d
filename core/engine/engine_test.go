package engine

import (
	"testing"

	"github.com/shopspring/decimal"

	"iops-calculator/core/types"
	"iops-calculator/internal/errors"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestListings(t *testing.T) {
	e := NewDefault()

	tiers := e.ListComputeTiers()
	if len(tiers) != 10 || tiers[0].Name != "Micro" || tiers[9].Name != "16XL" {
		t.Errorf("ListComputeTiers = %d tiers, want Micro..16XL", len(tiers))
	}

	classes := e.ListStorageClasses()
	if len(classes) != 2 || classes[0].Key != types.StorageGP3 || classes[1].Key != types.StorageIO2 {
		t.Errorf("ListStorageClasses = %+v, want gp3, io2", classes)
	}
}

func TestDefaultsFor(t *testing.T) {
	e := NewDefault()

	tests := []struct {
		tier    string
		storage types.StorageKey
		want    Defaults
	}{
		{"Large", types.StorageIO2, Defaults{DiskSizeGB: 8, Iops: 3600}},
		{"Large", types.StorageGP3, Defaults{DiskSizeGB: 8, Iops: 3000}},
		{"2XL", types.StorageIO2, Defaults{DiskSizeGB: 12, Iops: 12000}},
		{"16XL", types.StorageGP3, Defaults{DiskSizeGB: 80, Iops: 3000}},
	}

	for _, tt := range tests {
		t.Run(tt.tier+"/"+string(tt.storage), func(t *testing.T) {
			got, err := e.DefaultsFor(tt.tier, tt.storage)
			if err != nil {
				t.Fatalf("DefaultsFor error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DefaultsFor = %+v, want %+v", got, tt.want)
			}
		})
	}

	if _, err := e.DefaultsFor("Huge", types.StorageGP3); !errors.IsType(err, errors.TypeUnknownCatalogKey) {
		t.Errorf("DefaultsFor(Huge) error = %v, want unknown catalog key", err)
	}
	if _, err := e.DefaultsFor("Large", "st1"); !errors.IsType(err, errors.TypeUnknownCatalogKey) {
		t.Errorf("DefaultsFor(st1) error = %v, want unknown catalog key", err)
	}
}

func TestMaxIopsFor(t *testing.T) {
	e := NewDefault()

	tests := []struct {
		disk    float64
		storage types.StorageKey
		want    float64
	}{
		{8, types.StorageGP3, 3000},
		{6, types.StorageGP3, 3000},
		{10, types.StorageGP3, 5000},
		{32, types.StorageGP3, 16000},
		{40, types.StorageGP3, 16000},
		{-5, types.StorageGP3, 3000},
		{8, types.StorageIO2, 8000},
		{100, types.StorageIO2, 100000},
		{256, types.StorageIO2, 256000},
		{1000, types.StorageIO2, 256000},
		{0, types.StorageIO2, 0},
		{-5, types.StorageIO2, 0},
		{100, "st1", 0},
	}

	for _, tt := range tests {
		if got := e.MaxIopsFor(tt.disk, tt.storage); got != tt.want {
			t.Errorf("MaxIopsFor(%v, %s) = %v, want %v", tt.disk, tt.storage, got, tt.want)
		}
	}
}

func TestIopsRange(t *testing.T) {
	e := NewDefault()

	floor, ceiling := e.IopsRange(100, types.StorageIO2)
	if floor != 100 || ceiling != 100000 {
		t.Errorf("IopsRange(100, io2) = %v..%v, want 100..100000", floor, ceiling)
	}

	floor, ceiling = e.IopsRange(8, types.StorageGP3)
	if floor != 3000 || ceiling != 3000 {
		t.Errorf("IopsRange(8, gp3) = %v..%v, want 3000..3000", floor, ceiling)
	}
}

func TestValidateDiskSize(t *testing.T) {
	e := NewDefault()
	large, _ := e.Catalog().FindTier("Large")

	tests := []struct {
		name    string
		value   float64
		kind    types.WarningKind
		message string
	}{
		{"below minimum", 5, types.WarningBelowMinimum, "Minimum disk size is 8 GB"},
		{"zero", 0, types.WarningBelowMinimum, "Minimum disk size is 8 GB"},
		{"above maximum", 9000, types.WarningAboveMaximum, "Maximum disk size is 8000 GB for Large instances"},
		{"at minimum", 8, "", ""},
		{"at maximum", 8000, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := e.ValidateDiskSize(tt.value, large)
			if tt.kind == "" {
				if w != nil {
					t.Errorf("unexpected warning: %s", w)
				}
				return
			}
			if w == nil {
				t.Fatal("expected warning")
			}
			if w.Kind != tt.kind || w.Message != tt.message || w.Field != types.FieldDiskSize {
				t.Errorf("warning = %+v, want %s %q", w, tt.kind, tt.message)
			}
		})
	}
}

func TestValidateIops(t *testing.T) {
	e := NewDefault()

	tests := []struct {
		name    string
		value   float64
		disk    float64
		storage types.StorageKey
		message string
	}{
		{"gp3 below floor", 2000, 8, types.StorageGP3, "Minimum IOPS is 3000 for gp3 storage"},
		{"gp3 above ceiling", 5000, 8, types.StorageGP3, "Maximum IOPS is 3000 for 8 GB of gp3 storage"},
		{"gp3 within", 5000, 10, types.StorageGP3, ""},
		{"io2 below floor", 50, 100, types.StorageIO2, "Minimum IOPS is 100 for io2 storage"},
		{"io2 above ceiling", 9000, 8.5, types.StorageIO2, "Maximum IOPS is 8500 for 8.5 GB of io2 storage"},
		{"io2 within", 40000, 100, types.StorageIO2, ""},
		{"unknown storage", 1, 1, "st1", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := e.ValidateIops(tt.value, tt.disk, tt.storage)
			if tt.message == "" {
				if w != nil {
					t.Errorf("unexpected warning: %s", w)
				}
				return
			}
			if w == nil {
				t.Fatal("expected warning")
			}
			if w.Message != tt.message || w.Field != types.FieldIops {
				t.Errorf("warning = %q, want %q", w.Message, tt.message)
			}
		})
	}
}

func TestComputeMonthlyCostDefaultConfiguration(t *testing.T) {
	e := NewDefault()

	got := e.ComputeMonthlyCost(types.DefaultConfiguration())

	if !got.InstanceCost.Equal(dec("9.6768")) {
		t.Errorf("InstanceCost = %s, want 9.6768", got.InstanceCost)
	}
	if !got.StorageCost.IsZero() || !got.IopsCost.IsZero() || !got.ThroughputCost.IsZero() {
		t.Errorf("storage/iops/throughput = %s/%s/%s, want zero",
			got.StorageCost, got.IopsCost, got.ThroughputCost)
	}
	if !got.TotalCost.Equal(dec("9.68")) {
		t.Errorf("TotalCost = %s, want 9.68", got.TotalCost)
	}
	if got.Currency != types.CurrencyUSD {
		t.Errorf("Currency = %s, want USD", got.Currency)
	}
}

func TestComputeMonthlyCostIO2Tiers(t *testing.T) {
	e := NewDefault()

	got := e.ComputeMonthlyCost(types.Configuration{
		SelectedTier: "Large",
		StorageType:  types.StorageIO2,
		DiskSizeGB:   100,
		Iops:         40000,
	})

	if !got.StorageCost.Equal(dec("11.5")) {
		t.Errorf("StorageCost = %s, want 11.5", got.StorageCost)
	}
	if !got.IopsCost.Equal(dec("2448")) {
		t.Errorf("IopsCost = %s, want 2448", got.IopsCost)
	}
	if !got.InstanceCost.Equal(dec("109.224")) {
		t.Errorf("InstanceCost = %s, want 109.224", got.InstanceCost)
	}
	if !got.TotalCost.Equal(dec("2568.72")) {
		t.Errorf("TotalCost = %s, want 2568.72", got.TotalCost)
	}
}

func TestComputeMonthlyCostBreakpoints(t *testing.T) {
	e := NewDefault()

	tests := []struct {
		storage  types.StorageKey
		disk     float64
		iops     float64
		storCost string
		iopsCost string
	}{
		{types.StorageGP3, 108, 5000, "8", "10"},
		{types.StorageGP3, 4, 3000, "0", "0"},
		{types.StorageIO2, 8, 32000, "0", "2080"},
		{types.StorageIO2, 8, 64000, "0", "3552"},
		{types.StorageIO2, 8, 100000, "0", "4704"},
		{types.StorageIO2, 18, 100, "1.25", "6.5"},
	}

	for _, tt := range tests {
		got := e.ComputeMonthlyCost(types.Configuration{
			SelectedTier: "Micro",
			StorageType:  tt.storage,
			DiskSizeGB:   tt.disk,
			Iops:         tt.iops,
		})
		if !got.StorageCost.Equal(dec(tt.storCost)) {
			t.Errorf("%s disk %v: StorageCost = %s, want %s", tt.storage, tt.disk, got.StorageCost, tt.storCost)
		}
		if !got.IopsCost.Equal(dec(tt.iopsCost)) {
			t.Errorf("%s iops %v: IopsCost = %s, want %s", tt.storage, tt.iops, got.IopsCost, tt.iopsCost)
		}
	}
}

func TestComputeMonthlyCostUnknownKeys(t *testing.T) {
	e := NewDefault()

	got := e.ComputeMonthlyCost(types.Configuration{
		SelectedTier: "Huge",
		StorageType:  "st1",
		DiskSizeGB:   100,
		Iops:         5000,
	})

	if !got.TotalCost.IsZero() {
		t.Errorf("TotalCost = %s, want 0", got.TotalCost)
	}
	if len(got.Units) != 2 {
		t.Fatalf("Units = %d, want 2 zero units", len(got.Units))
	}
	for _, u := range got.Units {
		if !u.Amount.IsZero() || len(u.Lineage.Assumptions) == 0 {
			t.Errorf("unit %s = %s with assumptions %v, want zero with reason", u.Label, u.Amount, u.Lineage.Assumptions)
		}
	}

	// empty configuration still prices
	empty := e.ComputeMonthlyCost(types.Configuration{})
	if !empty.TotalCost.IsZero() {
		t.Errorf("empty TotalCost = %s, want 0", empty.TotalCost)
	}
}

func TestComputeMonthlyCostUnits(t *testing.T) {
	e := NewDefault()

	got := e.ComputeMonthlyCost(types.DefaultConfiguration())

	// gp3 carries the throughput line even though it is zero at 125 MB/s
	want := []types.CostComponent{
		types.ComponentInstance,
		types.ComponentStorage,
		types.ComponentIops,
		types.ComponentThroughput,
	}
	if len(got.Units) != len(want) {
		t.Fatalf("Units = %d, want %d", len(got.Units), len(want))
	}
	for i, c := range want {
		if got.Units[i].Component != c {
			t.Errorf("Units[%d] = %s, want %s", i, got.Units[i].Component, c)
		}
	}

	io2 := e.ComputeMonthlyCost(types.Configuration{SelectedTier: "Micro", StorageType: types.StorageIO2, DiskSizeGB: 8, Iops: 100})
	if len(io2.Units) != 3 {
		t.Errorf("io2 Units = %d, want 3 (no throughput line)", len(io2.Units))
	}
}

func TestComputeMonthlyCostIdempotent(t *testing.T) {
	e := NewDefault()
	cfg := types.Configuration{SelectedTier: "XL", StorageType: types.StorageIO2, DiskSizeGB: 333, Iops: 70001}

	first := e.ComputeMonthlyCost(cfg)
	second := e.GetPricing(cfg)
	if !first.Equal(second) {
		t.Errorf("pricing not idempotent: %s vs %s", first.TotalCost, second.TotalCost)
	}
}

func TestComputeMonthlyCostMonotonic(t *testing.T) {
	e := NewDefault()

	for _, storage := range []types.StorageKey{types.StorageGP3, types.StorageIO2} {
		prevStorage := decimal.NewFromInt(-1)
		for disk := 0.0; disk <= 2000; disk += 37 {
			got := e.ComputeMonthlyCost(types.Configuration{SelectedTier: "Micro", StorageType: storage, DiskSizeGB: disk})
			if got.StorageCost.LessThan(prevStorage) {
				t.Errorf("%s: storage cost fell at disk %v", storage, disk)
			}
			prevStorage = got.StorageCost
		}

		prevIops := decimal.NewFromInt(-1)
		for iops := 0.0; iops <= 120000; iops += 997 {
			got := e.ComputeMonthlyCost(types.Configuration{SelectedTier: "Micro", StorageType: storage, DiskSizeGB: 8, Iops: iops})
			if got.IopsCost.LessThan(prevIops) {
				t.Errorf("%s: IOPS cost fell at %v", storage, iops)
			}
			prevIops = got.IopsCost
		}
	}
}

func TestMonthlyPriceRange(t *testing.T) {
	e := NewDefault()

	tests := []struct {
		tier     string
		min, max string
	}{
		{"Micro", "9.68", "10"},
		{"Large", "109.22", "112.86"},
		{"16XL", "3686.4", "3809.28"},
	}

	for _, tt := range tests {
		tier, err := e.Catalog().FindTier(tt.tier)
		if err != nil {
			t.Fatalf("FindTier(%s): %v", tt.tier, err)
		}
		got := e.MonthlyPriceRange(tier)
		if !got.Min.Equal(dec(tt.min)) || !got.Max.Equal(dec(tt.max)) {
			t.Errorf("%s range = %s..%s, want %s..%s", tt.tier, got.Min, got.Max, tt.min, tt.max)
		}
	}
}
