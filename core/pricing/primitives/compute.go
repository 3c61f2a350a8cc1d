// Package primitives - Compute pricing primitives
// Instance hours
package primitives

import (
	"fmt"

	"github.com/shopspring/decimal"

	"iops-calculator/core/types"
)

// Billing month convention: a fixed 30-day month, not calendar accurate.
const (
	HoursPerDay  = 24
	DaysPerMonth = 30
)

// MonthlyHours is the number of billed hours in a month
var MonthlyHours = decimal.NewFromInt(HoursPerDay * DaysPerMonth)

// HoursInDays returns the hours in the given number of days
func HoursInDays(days int64) decimal.Decimal {
	return decimal.NewFromInt(HoursPerDay * days)
}

// InstanceHours creates a cost unit for a month of compute instance hours
func InstanceHours(tierName string, hourlyRate decimal.Decimal) types.CostUnit {
	return types.CostUnit{
		Component: types.ComponentInstance,
		Label:     fmt.Sprintf("Compute (%s)", tierName),
		Measure:   MeasureHours,
		Quantity:  MonthlyHours,
		Rate:      hourlyRate,
		Amount:    hourlyRate.Mul(MonthlyHours),
		Lineage: types.CostLineage{
			Formula:     fmt.Sprintf("$%s/hour * %d hours/month", hourlyRate.String(), HoursPerDay*DaysPerMonth),
			Assumptions: []string{"30-day billing month"},
		},
	}
}
