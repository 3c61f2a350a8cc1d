// Package api - API types for the calculator endpoints
// The API is stateless: every request carries the configuration it applies to.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"

	"iops-calculator/core/output"
	"iops-calculator/core/types"
)

// RawInput is user-entered text for numeric fields.
// JSON numbers and strings are both accepted; numbers keep their literal text.
type RawInput string

// UnmarshalJSON implements json.Unmarshaler
func (r *RawInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*r = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = RawInput(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("value must be a number or a string: %w", err)
	}
	*r = RawInput(n.String())
	return nil
}

// ConfigurationRequest is the input to POST /configuration/{tier,storage,disk,iops}
type ConfigurationRequest struct {
	// Configuration is the caller's current configuration
	Configuration types.Configuration `json:"configuration"`

	// Warnings are the warnings the caller is currently showing
	Warnings types.Warnings `json:"warnings"`

	// Value is the tier name, storage key, or raw numeric input
	Value RawInput `json:"value"`
}

// ConfigurationResponse is the reconciled state after one event
type ConfigurationResponse struct {
	RequestID string `json:"request_id"`

	// Configuration is the fully reconciled configuration
	Configuration types.Configuration `json:"configuration"`

	// Warning is the warning raised by this event, if any
	Warning *types.Warning `json:"warning,omitempty"`

	// Warnings are all warnings still active
	Warnings types.Warnings `json:"warnings"`

	// Pricing is the monthly cost of the reconciled configuration
	Pricing types.PricingResult `json:"pricing"`

	// IopsBounds is the valid IOPS range for the current disk and storage class
	IopsBounds output.IopsBounds `json:"iops_bounds"`

	Metadata *ResponseMetadata `json:"metadata,omitempty"`
}

// PricingRequest is the input to POST /pricing
type PricingRequest struct {
	Configuration types.Configuration `json:"configuration"`
}

// PricingResponse is the output of POST /pricing
type PricingResponse struct {
	RequestID     string              `json:"request_id"`
	Configuration types.Configuration `json:"configuration"`
	Pricing       types.PricingResult `json:"pricing"`
	Metadata      *ResponseMetadata   `json:"metadata,omitempty"`
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	RequestID string      `json:"request_id,omitempty"`
	Error     ErrorDetail `json:"error"`

	// Configuration is echoed unchanged when an event is rejected
	Configuration *types.Configuration `json:"configuration,omitempty"`
}

// ErrorDetail provides error details
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// TiersResponse is the output of GET /tiers
type TiersResponse struct {
	Tiers []output.TierListing `json:"tiers"`
}

// StorageClassesResponse is the output of GET /storage-classes
type StorageClassesResponse struct {
	StorageClasses []output.StorageListing `json:"storage_classes"`
}
