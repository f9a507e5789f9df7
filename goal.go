package goalplan

import (
	"fmt"

	"github.com/nivesh/goalplan/date"
	"github.com/shopspring/decimal"
)

// GoalType distinguishes ordinary one-time goals from retirement goals, which
// get the payroll-retirement netting treatment.
type GoalType string

const (
	GoalOneTime    GoalType = "one-time"
	GoalRetirement GoalType = "retirement"
)

// ParseGoalType parses a string into a GoalType.
func ParseGoalType(s string) (GoalType, error) {
	switch s {
	case string(GoalOneTime):
		return GoalOneTime, nil
	case string(GoalRetirement):
		return GoalRetirement, nil
	default:
		return "", fmt.Errorf("unknown goal type: %q", s)
	}
}

// LinkedAsset records how much of one holding is committed to a goal.
type LinkedAsset struct {
	HoldingID string          `json:"holdingId"`
	Amount    decimal.Decimal `json:"amount"`
}

// Goal is a savings target.
//
// LinkedAssets is derived state: the allocator discards and rebuilds it on
// every run, so manual edits to it do not survive a recompute. The only
// user-authoritative field the engine reads back is IncludeEPFNPS.
type Goal struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Type          GoalType        `json:"goalType"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	InflationRate float64         `json:"inflationRate"` // percent per year
	TargetDate    date.Date       `json:"targetDate"`
	StartDate     date.Date       `json:"startDate"`
	IncludeEPFNPS bool            `json:"includeEpfNps,omitempty"`
	LinkedAssets  []LinkedAsset   `json:"linkedAssets"`
}

// LinkedTotal sums the value already committed to the goal across all links.
func (g *Goal) LinkedTotal() float64 {
	total := decimal.Zero
	for _, la := range g.LinkedAssets {
		total = total.Add(la.Amount)
	}
	return total.InexactFloat64()
}
