package engine

import (
	"testing"

	"go.uber.org/zap"

	"iops-calculator/core/catalog"
	"iops-calculator/core/types"
	"iops-calculator/internal/errors"
)

func newTestEngine(t *testing.T, tiers []types.ComputeTier) *Engine {
	t.Helper()
	cat, err := catalog.New(tiers, catalog.DefaultStorageClasses())
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return New(cat)
}

func mustSelectTier(t *testing.T, e *Engine, cfg types.Configuration, name string) types.Configuration {
	t.Helper()
	out, err := e.SelectTier(cfg, name)
	if err != nil {
		t.Fatalf("SelectTier(%s): %v", name, err)
	}
	return out
}

func mustSelectStorage(t *testing.T, e *Engine, cfg types.Configuration, key types.StorageKey) types.Configuration {
	t.Helper()
	out, err := e.SelectStorageType(cfg, key)
	if err != nil {
		t.Fatalf("SelectStorageType(%s): %v", key, err)
	}
	return out
}

func TestSelectTierThenStorage(t *testing.T) {
	e := New(NewDefault().Catalog(), WithLogger(zap.NewNop()))
	cfg := types.DefaultConfiguration()

	cfg = mustSelectTier(t, e, cfg, "Large")
	if cfg.SelectedTier != "Large" || cfg.DiskSizeGB != 8 || cfg.Iops != 3000 {
		t.Errorf("after Large on gp3: %+v, want Large/8/3000", cfg)
	}

	cfg = mustSelectStorage(t, e, cfg, types.StorageIO2)
	if cfg.DiskSizeGB != 8 || cfg.Iops != 3600 {
		t.Errorf("after io2: disk %v iops %v, want 8/3600", cfg.DiskSizeGB, cfg.Iops)
	}

	cfg = mustSelectStorage(t, e, cfg, types.StorageGP3)
	if cfg.DiskSizeGB != 8 || cfg.Iops != 3000 {
		t.Errorf("after gp3: disk %v iops %v, want 8/3000", cfg.DiskSizeGB, cfg.Iops)
	}
}

func TestSelectTierResetsToTierDefaults(t *testing.T) {
	e := NewDefault()

	tests := []struct {
		tier string
		disk float64
		iops float64
	}{
		{"Micro", 8, 500},
		{"XL", 8, 6000},
		{"2XL", 12, 12000},
		{"4XL", 20, 20000},
		{"8XL", 40, 40000},
		{"12XL", 50, 50000},
		{"16XL", 80, 80000},
	}

	for _, tt := range tests {
		t.Run(tt.tier, func(t *testing.T) {
			cfg := types.Configuration{SelectedTier: "Micro", StorageType: types.StorageIO2, DiskSizeGB: 500, Iops: 1}
			cfg = mustSelectTier(t, e, cfg, tt.tier)
			if cfg.DiskSizeGB != tt.disk || cfg.Iops != tt.iops {
				t.Errorf("disk/iops = %v/%v, want %v/%v", cfg.DiskSizeGB, cfg.Iops, tt.disk, tt.iops)
			}
		})
	}
}

func TestSelectTierClampsIopsToCeiling(t *testing.T) {
	tiers := catalog.DefaultTiers()

	// a tier whose default IOPS overshoots what its default disk allows on io2
	tiers[0].Name = "Dense"
	tiers[0].DefaultIops = 3000
	tiers[0].DefaultDiskSizeGB = 8
	tiers[0].MaxIops = 3000
	custom := newTestEngine(t, tiers[:1])

	cfg := types.Configuration{SelectedTier: "Dense", StorageType: types.StorageIO2, DiskSizeGB: 8, Iops: 100}
	cfg = mustSelectTier(t, custom, cfg, "Dense")
	if cfg.Iops != 3000 {
		t.Errorf("Iops = %v, want 3000", cfg.Iops)
	}

	tiers[0].DefaultIops = 9000
	tiers[0].MaxIops = 9000
	custom = newTestEngine(t, tiers[:1])
	cfg = mustSelectTier(t, custom, cfg, "Dense")
	if cfg.Iops != 8000 {
		t.Errorf("Iops = %v, want clamp to 8000 (1000 * 8 GB)", cfg.Iops)
	}
}

func TestSelectStorageOnlyClampsDisk(t *testing.T) {
	e := NewDefault()

	cfg := types.Configuration{SelectedTier: "Large", StorageType: types.StorageGP3, DiskSizeGB: 9000, Iops: 3000}
	cfg = mustSelectStorage(t, e, cfg, types.StorageIO2)
	if cfg.DiskSizeGB != 8000 {
		t.Errorf("DiskSizeGB = %v, want clamp to 8000", cfg.DiskSizeGB)
	}
	if cfg.Iops != 3600 {
		t.Errorf("Iops = %v, want 3600", cfg.Iops)
	}

	cfg = types.Configuration{SelectedTier: "Large", StorageType: types.StorageGP3, DiskSizeGB: 250, Iops: 3000}
	cfg = mustSelectStorage(t, e, cfg, types.StorageIO2)
	if cfg.DiskSizeGB != 250 {
		t.Errorf("DiskSizeGB = %v, want 250 kept", cfg.DiskSizeGB)
	}

	cfg = types.Configuration{SelectedTier: "Large", StorageType: types.StorageIO2, DiskSizeGB: 2, Iops: 3600}
	cfg = mustSelectStorage(t, e, cfg, types.StorageIO2)
	if cfg.DiskSizeGB != 8 {
		t.Errorf("DiskSizeGB = %v, want clamp up to 8", cfg.DiskSizeGB)
	}
}

func TestSelectStorageWithoutKnownTier(t *testing.T) {
	e := NewDefault()

	cfg := types.Configuration{SelectedTier: "Huge", StorageType: types.StorageIO2, DiskSizeGB: 2, Iops: 7000}
	cfg = mustSelectStorage(t, e, cfg, types.StorageGP3)
	if cfg.DiskSizeGB != 2 || cfg.Iops != 3000 {
		t.Errorf("gp3 without tier = %+v, want disk 2 kept and IOPS 3000", cfg)
	}

	cfg = types.Configuration{SelectedTier: "Huge", StorageType: types.StorageGP3, DiskSizeGB: 2, Iops: 1500}
	cfg = mustSelectStorage(t, e, cfg, types.StorageIO2)
	if cfg.Iops != 1500 {
		t.Errorf("io2 without tier Iops = %v, want 1500 kept", cfg.Iops)
	}
}

func TestUnknownKeysAreNoOps(t *testing.T) {
	e := NewDefault()
	cfg := types.Configuration{SelectedTier: "Large", StorageType: types.StorageIO2, DiskSizeGB: 100, Iops: 40000}

	got, err := e.SelectTier(cfg, "Huge")
	if !errors.IsType(err, errors.TypeUnknownCatalogKey) {
		t.Errorf("SelectTier(Huge) error = %v, want unknown catalog key", err)
	}
	if got != cfg {
		t.Errorf("SelectTier(Huge) changed config: %+v", got)
	}

	got, err = e.SelectStorageType(cfg, "st1")
	if !errors.IsType(err, errors.TypeUnknownCatalogKey) {
		t.Errorf("SelectStorageType(st1) error = %v, want unknown catalog key", err)
	}
	if got != cfg {
		t.Errorf("SelectStorageType(st1) changed config: %+v", got)
	}
}

func TestSetDiskSize(t *testing.T) {
	e := NewDefault()
	base := types.Configuration{SelectedTier: "Large", StorageType: types.StorageIO2, DiskSizeGB: 8, Iops: 3600}

	t.Run("below minimum is stored", func(t *testing.T) {
		cfg, w, err := e.SetDiskSize(base, "5")
		if err != nil {
			t.Fatal(err)
		}
		if cfg.DiskSizeGB != 5 {
			t.Errorf("DiskSizeGB = %v, want 5", cfg.DiskSizeGB)
		}
		if w == nil || w.Message != "Minimum disk size is 8 GB" {
			t.Errorf("warning = %v, want minimum disk warning", w)
		}
		if cfg.Iops != 3600 {
			t.Errorf("Iops = %v, want 3600 (ceiling 5000)", cfg.Iops)
		}
	})

	t.Run("shrinking disk clamps iops", func(t *testing.T) {
		cfg, _, err := e.SetDiskSize(base, "3")
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Iops != 3000 {
			t.Errorf("Iops = %v, want clamp to 3000", cfg.Iops)
		}
	})

	t.Run("growing disk never raises iops", func(t *testing.T) {
		low := base
		low.Iops = 50
		cfg, _, err := e.SetDiskSize(low, "1000")
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Iops != 50 {
			t.Errorf("Iops = %v, want 50 kept", cfg.Iops)
		}
	})

	t.Run("above maximum", func(t *testing.T) {
		cfg, w, err := e.SetDiskSize(base, "9000")
		if err != nil {
			t.Fatal(err)
		}
		if cfg.DiskSizeGB != 9000 {
			t.Errorf("DiskSizeGB = %v, want 9000", cfg.DiskSizeGB)
		}
		if w == nil || w.Message != "Maximum disk size is 8000 GB for Large instances" {
			t.Errorf("warning = %v, want maximum disk warning", w)
		}
	})

	t.Run("empty", func(t *testing.T) {
		cfg, w, err := e.SetDiskSize(base, "  ")
		if err != nil {
			t.Fatal(err)
		}
		if cfg.DiskSizeGB != 0 || w != nil {
			t.Errorf("empty disk = %v with warning %v, want 0 and none", cfg.DiskSizeGB, w)
		}
		if ceiling := e.MaxIopsFor(0, types.StorageIO2); cfg.Iops != ceiling {
			t.Errorf("Iops = %v, want clamp to %v", cfg.Iops, ceiling)
		}
		if p := e.GetPricing(cfg); !p.IopsCost.IsZero() || !p.StorageCost.IsZero() {
			t.Errorf("cleared disk priced iops %s storage %s, want 0", p.IopsCost, p.StorageCost)
		}
	})

	t.Run("empty keeps gp3 baseline", func(t *testing.T) {
		gp3 := types.Configuration{SelectedTier: "Large", StorageType: types.StorageGP3, DiskSizeGB: 40, Iops: 12000}
		cfg, w, err := e.SetDiskSize(gp3, "")
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Iops != 3000 || w != nil {
			t.Errorf("Iops = %v with warning %v, want 3000 and none", cfg.Iops, w)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		cfg, w, err := e.SetDiskSize(base, "ten")
		if !errors.IsType(err, errors.TypeInvalidInput) {
			t.Errorf("error = %v, want invalid input", err)
		}
		if cfg != base || w != nil {
			t.Errorf("invalid input changed config: %+v", cfg)
		}
	})
}

func TestSetIops(t *testing.T) {
	e := NewDefault()
	gp3 := types.Configuration{SelectedTier: "Micro", StorageType: types.StorageGP3, DiskSizeGB: 8, Iops: 3000}

	cfg, w, err := e.SetIops(gp3, "5000")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Iops != 5000 {
		t.Errorf("Iops = %v, want 5000 stored as entered", cfg.Iops)
	}
	if w == nil || w.Message != "Maximum IOPS is 3000 for 8 GB of gp3 storage" {
		t.Errorf("warning = %v, want maximum IOPS warning", w)
	}

	_, w, _ = e.SetIops(gp3, "2000")
	if w == nil || w.Kind != types.WarningBelowMinimum {
		t.Errorf("warning = %v, want below minimum", w)
	}

	cfg, w, err = e.SetIops(gp3, "")
	if err != nil || cfg.Iops != 0 || w != nil {
		t.Errorf("empty IOPS = %v, %v, %v; want 0, no warning, no error", cfg.Iops, w, err)
	}

	cfg, _, err = e.SetIops(gp3, "lots")
	if !errors.IsType(err, errors.TypeInvalidInput) || cfg != gp3 {
		t.Errorf("invalid IOPS = %+v, %v; want unchanged and invalid input", cfg, err)
	}
}

func TestSelectTierIdempotent(t *testing.T) {
	e := NewDefault()
	cfg := types.Configuration{SelectedTier: "Micro", StorageType: types.StorageIO2, DiskSizeGB: 77, Iops: 9999}

	once := mustSelectTier(t, e, cfg, "XL")
	twice := mustSelectTier(t, e, once, "XL")
	if once != twice {
		t.Errorf("SelectTier not idempotent: %+v then %+v", once, twice)
	}

	once = mustSelectStorage(t, e, cfg, types.StorageGP3)
	twice = mustSelectStorage(t, e, once, types.StorageGP3)
	if once != twice {
		t.Errorf("SelectStorageType not idempotent: %+v then %+v", once, twice)
	}
}

func TestRevalidate(t *testing.T) {
	e := NewDefault()
	cfg := types.Configuration{SelectedTier: "Large", StorageType: types.StorageGP3, DiskSizeGB: 20, Iops: 5000}

	stale := types.Warnings{
		DiskSize: &types.Warning{Field: types.FieldDiskSize, Message: "Minimum disk size is 8 GB"},
		Iops:     &types.Warning{Field: types.FieldIops, Message: "Maximum IOPS is 3000 for 8 GB of gp3 storage"},
	}
	if got := e.Revalidate(cfg, stale); got.Any() {
		t.Errorf("Revalidate kept stale warnings: %v", got.List())
	}

	// still-valid warning is refreshed to the current bounds
	cfg.Iops = 20000
	got := e.Revalidate(cfg, stale)
	if got.Iops == nil || got.Iops.Message != "Maximum IOPS is 10000 for 20 GB of gp3 storage" {
		t.Errorf("Revalidate Iops = %v, want refreshed maximum warning", got.Iops)
	}

	// no warning is raised for a field that had none
	if got := e.Revalidate(cfg, types.Warnings{}); got.Any() {
		t.Errorf("Revalidate raised %v", got.List())
	}
}

func TestParseNumericInput(t *testing.T) {
	tests := []struct {
		raw     string
		value   float64
		empty   bool
		wantErr bool
	}{
		{"12", 12, false, false},
		{" 12.5 ", 12.5, false, false},
		{"1e3", 1000, false, false},
		{"-4", -4, false, false},
		{"", 0, true, false},
		{"   ", 0, true, false},
		{"abc", 0, false, true},
		{"NaN", 0, false, true},
		{"Inf", 0, false, true},
	}

	for _, tt := range tests {
		value, empty, err := ParseNumericInput("iops", tt.raw)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseNumericInput(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			continue
		}
		if value != tt.value || empty != tt.empty {
			t.Errorf("ParseNumericInput(%q) = %v, %v; want %v, %v", tt.raw, value, empty, tt.value, tt.empty)
		}
	}
}
