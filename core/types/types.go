// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions.
package types

// StorageKey identifies a storage class in the catalog (e.g. "gp3", "io2")
type StorageKey string

const (
	StorageGP3 StorageKey = "gp3"
	StorageIO2 StorageKey = "io2"
)

// String returns the string representation of the storage key
func (k StorageKey) String() string {
	return string(k)
}

// Field identifies a user-adjustable configuration field
type Field string

const (
	FieldDiskSize Field = "disk_size"
	FieldIops     Field = "iops"
)

// WarningKind classifies an out-of-range condition
type WarningKind string

const (
	WarningBelowMinimum WarningKind = "below_minimum"
	WarningAboveMaximum WarningKind = "above_maximum"
)

// Warning is a non-blocking validation finding.
// The offending value is still stored and priced.
type Warning struct {
	// Field is the configuration field the warning applies to
	Field Field `json:"field"`

	// Kind is the violated bound
	Kind WarningKind `json:"kind"`

	// Limit is the bound that was crossed
	Limit float64 `json:"limit"`

	// Message is the human-readable description
	Message string `json:"message"`
}

// String returns the warning message
func (w *Warning) String() string {
	if w == nil {
		return ""
	}
	return w.Message
}

// Warnings holds at most one active warning per field
type Warnings struct {
	DiskSize *Warning `json:"disk_size,omitempty"`
	Iops     *Warning `json:"iops,omitempty"`
}

// Any reports whether any warning is active
func (w Warnings) Any() bool {
	return w.DiskSize != nil || w.Iops != nil
}

// List returns the active warnings in field order
func (w Warnings) List() []*Warning {
	var out []*Warning
	if w.DiskSize != nil {
		out = append(out, w.DiskSize)
	}
	if w.Iops != nil {
		out = append(out, w.Iops)
	}
	return out
}
