// Package primitives - Centralized pricing math
// The engine declares intent, not does math.
// All pricing arithmetic flows through these primitives.
package primitives

import "github.com/shopspring/decimal"

// Billing measures used on cost units
const (
	MeasureHours     = "hours"
	MeasureGBMonth   = "GB-month"
	MeasureIopsMonth = "IOPS-month"
	MeasureMBpsMonth = "MBps-month"
	MeasureNone      = "none"
)

// NonNegative floors a quantity at zero
func NonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
