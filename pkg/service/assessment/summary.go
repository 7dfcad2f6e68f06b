package assessment

import (
	"github.com/grc-lab/riskreport/pkg/domain/model"
	"github.com/grc-lab/riskreport/pkg/domain/types"
)

// Summary holds the aggregate statistics of a report's risk items. ByLevel
// always carries all five levels, zero-filled, so consumers never deal
// with sparse keys.
type Summary struct {
	Total          int                     `json:"total"`
	ByLevel        map[types.RiskLevel]int `json:"byLevel"`
	NeedsAttention int                     `json:"needsAttention"`
	Acceptable     int                     `json:"acceptable"`
}

// Prioritized holds the risk items that demand action, grouped by level.
// Items keep the order they were supplied in.
type Prioritized struct {
	Critical []*model.RiskItem `json:"critical"`
	High     []*model.RiskItem `json:"high"`
}

// Summarize computes the aggregate statistics of the given risk items.
// It is a pure function of the input sequence.
func Summarize(items []*model.RiskItem) *Summary {
	summary := &Summary{
		Total:   len(items),
		ByLevel: make(map[types.RiskLevel]int, 5),
	}
	for _, level := range types.AllRiskLevels() {
		summary.ByLevel[level] = 0
	}

	for _, item := range items {
		summary.ByLevel[item.RiskLevel]++

		switch item.RiskLevel {
		case types.RiskLevelCritical, types.RiskLevelHigh:
			summary.NeedsAttention++
		case types.RiskLevelLow, types.RiskLevelVeryLow:
			summary.Acceptable++
		}
	}

	return summary
}

// Prioritize filters the critical and high items of the given sequence,
// preserving their original order within each level.
func Prioritize(items []*model.RiskItem) *Prioritized {
	prioritized := &Prioritized{
		Critical: make([]*model.RiskItem, 0),
		High:     make([]*model.RiskItem, 0),
	}

	for _, item := range items {
		switch item.RiskLevel {
		case types.RiskLevelCritical:
			prioritized.Critical = append(prioritized.Critical, item)
		case types.RiskLevelHigh:
			prioritized.High = append(prioritized.High, item)
		}
	}

	return prioritized
}
