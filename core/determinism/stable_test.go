package determinism

import (
	"strings"
	"testing"

	"iops-calculator/core/types"
)

func TestHashJSONIsStable(t *testing.T) {
	cfg := types.Configuration{SelectedTier: "Large", StorageType: types.StorageIO2, DiskSizeGB: 100, Iops: 40000}

	h1, err := HashJSON(cfg)
	if err != nil {
		t.Fatal(err)
	}
	h2, _ := HashJSON(cfg)
	if h1 != h2 {
		t.Error("identical input hashed differently")
	}

	cfg.Iops = 40001
	h3, _ := HashJSON(cfg)
	if h1 == h3 {
		t.Error("different input hashed identically")
	}
}

func TestHashJSONMapOrder(t *testing.T) {
	a, _ := HashJSON(map[string]int{"a": 1, "b": 2, "c": 3})
	b, _ := HashJSON(map[string]int{"c": 3, "b": 2, "a": 1})
	if a != b {
		t.Error("map key order changed the hash")
	}
}

func TestContentHashFormatting(t *testing.T) {
	h := ComputeHash([]byte("iops"))

	if len(h.Hex()) != 64 {
		t.Errorf("Hex length = %d, want 64", len(h.Hex()))
	}
	if !strings.HasSuffix(h.String(), "...") || len(h.String()) != 19 {
		t.Errorf("String = %q", h.String())
	}
	if h.IsZero() || !(ContentHash{}).IsZero() {
		t.Error("IsZero wrong")
	}
}

func TestHashJSONError(t *testing.T) {
	if _, err := HashJSON(make(chan int)); err == nil {
		t.Error("expected error for unencodable value")
	}
}
