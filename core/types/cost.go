// Package types - Cost breakdown types
package types

import "github.com/shopspring/decimal"

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// CostComponent classifies a line item into one of the monthly cost buckets
type CostComponent string

const (
	ComponentInstance   CostComponent = "instance"
	ComponentStorage    CostComponent = "storage"
	ComponentIops       CostComponent = "iops"
	ComponentThroughput CostComponent = "throughput"
)

// CostUnit represents a single billable line item
type CostUnit struct {
	// Component is the bucket this unit is summed into
	Component CostComponent `json:"component"`

	// Label is a human-readable label
	Label string `json:"label"`

	// Measure is the billing unit (e.g., "GB-month", "hours", "IOPS-month")
	Measure string `json:"measure"`

	// Quantity is the billable quantity
	Quantity decimal.Decimal `json:"quantity"`

	// Rate is the unit price (zero for tiered units, see Lineage)
	Rate decimal.Decimal `json:"rate"`

	// Amount is the unrounded cost of this unit
	Amount decimal.Decimal `json:"amount"`

	// Lineage tracks why this cost exists
	Lineage CostLineage `json:"lineage"`
}

// CostLineage tracks the origin and calculation of a cost
type CostLineage struct {
	// Formula describes how the cost was calculated
	Formula string `json:"formula"`

	// Assumptions lists assumptions made during calculation
	Assumptions []string `json:"assumptions,omitempty"`
}

// PricingResult is the monthly cost breakdown for one configuration.
// Component costs are unrounded; only TotalCost is rounded to cents.
type PricingResult struct {
	InstanceCost   decimal.Decimal `json:"instance_cost"`
	StorageCost    decimal.Decimal `json:"storage_cost"`
	IopsCost       decimal.Decimal `json:"iops_cost"`
	ThroughputCost decimal.Decimal `json:"throughput_cost"`
	TotalCost      decimal.Decimal `json:"total_cost"`

	// Currency is the cost currency
	Currency Currency `json:"currency"`

	// Units are the itemised line items behind the component costs
	Units []CostUnit `json:"units,omitempty"`
}

// NewPricingResult creates an empty result
func NewPricingResult(currency Currency) *PricingResult {
	return &PricingResult{
		InstanceCost:   decimal.Zero,
		StorageCost:    decimal.Zero,
		IopsCost:       decimal.Zero,
		ThroughputCost: decimal.Zero,
		TotalCost:      decimal.Zero,
		Currency:       currency,
	}
}

// Add adds a cost unit to the result and to its component bucket
func (r *PricingResult) Add(unit CostUnit) {
	r.Units = append(r.Units, unit)
	switch unit.Component {
	case ComponentInstance:
		r.InstanceCost = r.InstanceCost.Add(unit.Amount)
	case ComponentStorage:
		r.StorageCost = r.StorageCost.Add(unit.Amount)
	case ComponentIops:
		r.IopsCost = r.IopsCost.Add(unit.Amount)
	case ComponentThroughput:
		r.ThroughputCost = r.ThroughputCost.Add(unit.Amount)
	}
}

// Subtotal returns the unrounded sum of all components
func (r *PricingResult) Subtotal() decimal.Decimal {
	return r.InstanceCost.Add(r.StorageCost).Add(r.IopsCost).Add(r.ThroughputCost)
}

// Summarize sums the components once and rounds the total to cents
func (r *PricingResult) Summarize() {
	r.TotalCost = r.Subtotal().Round(2)
}

// Equal reports whether two results carry the same amounts
func (r PricingResult) Equal(other PricingResult) bool {
	return r.InstanceCost.Equal(other.InstanceCost) &&
		r.StorageCost.Equal(other.StorageCost) &&
		r.IopsCost.Equal(other.IopsCost) &&
		r.ThroughputCost.Equal(other.ThroughputCost) &&
		r.TotalCost.Equal(other.TotalCost) &&
		r.Currency == other.Currency
}
