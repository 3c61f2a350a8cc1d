// Package types - Storage class catalog entries
package types

// StorageClass is a block storage offering with its own rate card
type StorageClass struct {
	// Name is the display name (e.g. "General Purpose SSD")
	Name string `json:"name"`

	// Key uniquely identifies the class
	Key StorageKey `json:"key"`

	// Description is a short marketing description
	Description string `json:"description"`

	// Rates are the class-specific pricing constants
	Rates RateCard `json:"rates"`
}
