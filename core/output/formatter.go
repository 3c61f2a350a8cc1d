// Package output provides output formatting interfaces.
// This package produces human and machine-readable outputs.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"iops-calculator/core/types"
	"iops-calculator/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// ParseFormat resolves a format name, case-insensitively
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FormatCLI, nil
	}
	if _, ok := defaultRegistry.Get(f); !ok {
		return "", errors.Newf(errors.TypeInput, "unknown output format %q (want one of %s)",
			s, strings.Join(defaultRegistry.Names(), ", "))
	}
	return f, nil
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given result
	Render(w io.Writer, result *EstimationResult) error

	// RenderCatalog produces output for a catalog listing
	RenderCatalog(w io.Writer, listing *CatalogListing) error
}

// EstimationResult contains the complete estimation output
type EstimationResult struct {
	// Configuration is the reconciled configuration that was priced
	Configuration types.Configuration `json:"configuration"`

	// Tier is the selected tier, nil when the name is not in the catalog
	Tier *types.ComputeTier `json:"tier,omitempty"`

	// StorageClass is the selected class, nil when the key is not in the catalog
	StorageClass *types.StorageClass `json:"storage_class,omitempty"`

	// Warnings are the active validation warnings
	Warnings types.Warnings `json:"warnings"`

	// Pricing is the monthly cost breakdown
	Pricing types.PricingResult `json:"pricing"`

	// IopsBounds is the valid IOPS range for the current disk size
	IopsBounds IopsBounds `json:"iops_bounds"`

	// Notes are per-class pricing notes
	Notes []string `json:"notes,omitempty"`

	// ShowDetails includes per-unit lineage in human formats
	ShowDetails bool `json:"-"`

	// Metadata contains execution context
	Metadata EstimationMetadata `json:"metadata"`
}

// IopsBounds is the floor and ceiling for IOPS at the current disk size
type IopsBounds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Hint returns the bounds as a sentence for display next to the IOPS field
func (b IopsBounds) Hint() string {
	return fmt.Sprintf("IOPS must be between %s and %s based on your disk size",
		formatCount(b.Min), formatCount(b.Max))
}

// EstimationMetadata contains execution context
type EstimationMetadata struct {
	// Timestamp is when the estimation was performed
	Timestamp string `json:"timestamp"`

	// InputHash is a hash of the configuration
	InputHash string `json:"input_hash,omitempty"`

	// Version is the tool version
	Version string `json:"version"`
}

// CatalogListing is the set of tiers and storage classes available for selection
type CatalogListing struct {
	Tiers          []TierListing    `json:"tiers,omitempty"`
	StorageClasses []StorageListing `json:"storage_classes,omitempty"`
}

// TierListing is a tier with its monthly price range
type TierListing struct {
	types.ComputeTier
	MonthlyMin string `json:"monthly_min"`
	MonthlyMax string `json:"monthly_max"`
}

// StorageListing is a storage class with its pricing notes
type StorageListing struct {
	types.StorageClass
	Notes []string `json:"notes"`
}

// Registry manages formatter registration
type Registry struct {
	mu         sync.RWMutex
	formatters map[Format]Formatter
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{formatters: make(map[Format]Formatter)}
}

// Register adds a formatter to the registry
func (r *Registry) Register(formatter Formatter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.formatters[formatter.Format()]; exists {
		return errors.Newf(errors.TypeInternal, "formatter already registered: %s", formatter.Format())
	}
	r.formatters[formatter.Format()] = formatter
	return nil
}

// Get returns a formatter for a format type
func (r *Registry) Get(format Format) (Formatter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.formatters[format]
	return f, ok
}

// Names returns the registered format names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.formatters))
	for f := range r.formatters {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

var defaultRegistry = func() *Registry {
	r := NewRegistry()
	for _, f := range []Formatter{NewCLIFormatter(), NewJSONFormatter(), NewMarkdownFormatter()} {
		if err := r.Register(f); err != nil {
			panic(err)
		}
	}
	return r
}()

// New returns the built-in formatter for a format
func New(format Format) (Formatter, error) {
	f, ok := defaultRegistry.Get(format)
	if !ok {
		return nil, errors.Newf(errors.TypeInput, "unknown output format %q", format)
	}
	return f, nil
}
