// Package api - Pricing comparison between two configurations
package api

import (
	"github.com/shopspring/decimal"

	"iops-calculator/core/engine"
	"iops-calculator/core/types"
)

// DiffRequest is the request for POST /diff
type DiffRequest struct {
	Base types.Configuration `json:"base"`
	Head types.Configuration `json:"head"`
}

// DiffResponse is the response for POST /diff
type DiffResponse struct {
	RequestID  string       `json:"request_id"`
	Base       DiffSummary  `json:"base"`
	Head       DiffSummary  `json:"head"`
	Delta      DiffDelta    `json:"delta"`
	Changes    []DiffChange `json:"changes"`
	DurationMs int64        `json:"duration_ms"`
}

// DiffSummary summarizes one side of a diff
type DiffSummary struct {
	Configuration types.Configuration `json:"configuration"`
	TotalCost     decimal.Decimal     `json:"total_cost"`
}

// DiffDelta represents the change between base and head
type DiffDelta struct {
	MonthlyCost string          `json:"monthly_cost"`
	Amount      decimal.Decimal `json:"amount"`
}

// DiffChange is the cost movement of one component
type DiffChange struct {
	Type       string `json:"type"` // "added", "removed", "changed"
	Component  string `json:"component"`
	CostBefore string `json:"cost_before"`
	CostAfter  string `json:"cost_after"`
	CostDelta  string `json:"cost_delta"`
}

// computeDiff prices both sides; components whose cost is unchanged are omitted
func computeDiff(eng *engine.Engine, req *DiffRequest) *DiffResponse {
	base := eng.GetPricing(req.Base)
	head := eng.GetPricing(req.Head)

	delta := head.TotalCost.Sub(base.TotalCost)
	resp := &DiffResponse{
		Base:    DiffSummary{Configuration: req.Base, TotalCost: base.TotalCost},
		Head:    DiffSummary{Configuration: req.Head, TotalCost: head.TotalCost},
		Delta:   DiffDelta{MonthlyCost: signedDollars(delta), Amount: delta},
		Changes: []DiffChange{},
	}

	components := []struct {
		name          string
		before, after decimal.Decimal
	}{
		{string(types.ComponentInstance), base.InstanceCost, head.InstanceCost},
		{string(types.ComponentStorage), base.StorageCost, head.StorageCost},
		{string(types.ComponentIops), base.IopsCost, head.IopsCost},
		{string(types.ComponentThroughput), base.ThroughputCost, head.ThroughputCost},
	}
	for _, c := range components {
		if c.before.Equal(c.after) {
			continue
		}
		change := DiffChange{
			Type:       "changed",
			Component:  c.name,
			CostBefore: c.before.StringFixed(2),
			CostAfter:  c.after.StringFixed(2),
			CostDelta:  signedDollars(c.after.Sub(c.before)),
		}
		switch {
		case c.before.IsZero():
			change.Type = "added"
		case c.after.IsZero():
			change.Type = "removed"
		}
		resp.Changes = append(resp.Changes, change)
	}

	return resp
}

func signedDollars(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(2)
	}
	return "+$" + d.StringFixed(2)
}
