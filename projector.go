package goalplan

import (
	"github.com/nivesh/goalplan/date"
)

// horizonThresholdYears splits goals into the two horizon buckets. There is
// no third tier.
const horizonThresholdYears = 5.0

// Horizon is the bucket a goal falls in given its remaining time.
type Horizon int

const (
	Short Horizon = iota // less than 5 years to target
	Long                 // 5 years or more
)

func (h Horizon) String() string {
	switch h {
	case Short:
		return "short"
	case Long:
		return "long"
	default:
		return "unknown"
	}
}

// HorizonOf buckets a remaining horizon expressed in fractional years.
func HorizonOf(years float64) Horizon {
	if years < horizonThresholdYears {
		return Short
	}
	return Long
}

// Assumptions bundles the market assumptions a projection needs.
type Assumptions struct {
	EquityReturn        float64 // percent per year
	DebtReturn          float64 // percent per year
	ArbitrageReturn     float64 // percent per year; 0 means not set
	EquityAllocationPct float64 // equity share of long-horizon money
}

// BlendedReturn picks the assumed annual return for a horizon bucket. Short
// money sits in arbitrage funds (falling back to the debt return when no
// arbitrage return is set, for documents written before it existed); long
// money is an equity/debt mix per the configured allocation.
func BlendedReturn(h Horizon, a Assumptions) float64 {
	if h == Short {
		if a.ArbitrageReturn == 0 {
			return a.DebtReturn
		}
		return a.ArbitrageReturn
	}
	eq := a.EquityAllocationPct / 100
	return eq*a.EquityReturn + (1-eq)*a.DebtReturn
}

// Projection is the funding requirement computed for one goal.
type Projection struct {
	GoalID         string
	Name           string
	Type           GoalType
	Years          float64 // remaining horizon, fractional years
	Months         int     // remaining horizon, whole months
	Horizon        Horizon
	AdjustedTarget float64 // target amount grown by the goal's inflation rate
	Linked         float64 // value already committed by the allocator
	BlendedReturn  float64 // percent per year
	MonthlySIP     float64 // required level monthly contribution
}

// Unfunded returns the part of the adjusted target not covered by linked
// holdings, floored at 0.
func (p Projection) Unfunded() float64 {
	gap := p.AdjustedTarget - p.Linked
	if gap < 0 {
		return 0
	}
	return gap
}

// ProjectGoal computes the required level monthly contribution for a goal as
// of the reference date. The allocator runs before projection, so the target
// is first reduced by whatever the goal already has linked. Step-up schedules
// are reserved for the retirement payroll sub-system; this layer solves for a
// level payment.
func ProjectGoal(g *Goal, on date.Date, a Assumptions) Projection {
	p := Projection{}
	if g == nil {
		return p
	}
	p.GoalID = g.ID
	p.Name = g.Name
	p.Type = g.Type
	p.Years = date.YearsBetween(on, g.TargetDate)
	p.Months = date.MonthsBetween(on, g.TargetDate)
	p.Horizon = HorizonOf(p.Years)
	p.AdjustedTarget = InflationAdjusted(g.TargetAmount.InexactFloat64(), g.InflationRate, p.Years)
	p.Linked = g.LinkedTotal()
	p.BlendedReturn = BlendedReturn(p.Horizon, a)
	p.MonthlySIP = RegularSIP(p.Unfunded(), p.BlendedReturn, p.Months)
	return p
}
