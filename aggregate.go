package goalplan

import (
	"github.com/nivesh/goalplan/date"
)

// Glide path checkpoints: a long-horizon goal holds its full equity share
// until ten years out, then tapers to half of it at seven years and a quarter
// at five (where the goal crosses into the short bucket anyway). The curve is
// piecewise linear between checkpoints. The exact shape is a tunable policy.
const (
	glideFullYears     = 10.0
	glideMidYears      = 7.0
	glideFloorYears    = horizonThresholdYears
	glideMidFraction   = 0.50
	glideFloorFraction = 0.25
)

// glideFactor returns the fraction of the configured equity allocation a goal
// with the given remaining horizon should still hold.
func glideFactor(years float64) float64 {
	switch {
	case years >= glideFullYears:
		return 1.0
	case years >= glideMidYears:
		return glideMidFraction + (years-glideMidYears)/(glideFullYears-glideMidYears)*(1-glideMidFraction)
	case years >= glideFloorYears:
		return glideFloorFraction + (years-glideFloorYears)/(glideMidYears-glideFloorYears)*(glideMidFraction-glideFloorFraction)
	default:
		return glideFloorFraction
	}
}

// FundSplit is the recommended equity/debt/arbitrage sub-allocation of a
// monthly contribution.
type FundSplit struct {
	Equity    float64 // monthly amount
	Debt      float64
	Arbitrage float64
}

// Total sums the split's monthly amounts.
func (s FundSplit) Total() float64 { return s.Equity + s.Debt + s.Arbitrage }

// EquityPct returns the equity share of the split in percent (0 on an empty split).
func (s FundSplit) EquityPct() Percent { return s.pct(s.Equity) }

// DebtPct returns the debt share of the split in percent.
func (s FundSplit) DebtPct() Percent { return s.pct(s.Debt) }

// ArbitragePct returns the arbitrage share of the split in percent.
func (s FundSplit) ArbitragePct() Percent { return s.pct(s.Arbitrage) }

func (s FundSplit) pct(part float64) Percent {
	total := s.Total()
	if total == 0 {
		return 0
	}
	return Percent(part / total * 100)
}

// goalSplit derives the recommended split of one goal's monthly contribution.
// Short-horizon money goes to arbitrage funds (or debt when no arbitrage
// return is configured); long-horizon money is an equity/debt mix with the
// equity share tapered by the glide path as the horizon shortens.
func goalSplit(p Projection, a Assumptions) FundSplit {
	if p.MonthlySIP <= 0 {
		return FundSplit{}
	}
	if p.Horizon == Short {
		if a.ArbitrageReturn == 0 {
			return FundSplit{Debt: p.MonthlySIP}
		}
		return FundSplit{Arbitrage: p.MonthlySIP}
	}
	equityShare := a.EquityAllocationPct / 100 * glideFactor(p.Years)
	equity := p.MonthlySIP * equityShare
	return FundSplit{Equity: equity, Debt: p.MonthlySIP - equity}
}

// BucketSummary aggregates all goals of one horizon bucket.
type BucketSummary struct {
	Horizon    Horizon
	Goals      int
	MonthlySIP float64 // total required monthly contribution
	Split      FundSplit
}

// PlanSummary is the full computed state of the plan on a date: allocation,
// per-goal projections, and the horizon-bucket rollup.
type PlanSummary struct {
	Date     date.Date
	Currency string
	Goals    []RetirementProjection
	Short    BucketSummary
	Long     BucketSummary
}

// TotalMonthlySIP sums the required monthly contribution across both buckets.
func (s *PlanSummary) TotalMonthlySIP() float64 {
	return s.Short.MonthlySIP + s.Long.MonthlySIP
}

// NewPlanSummary runs the full pipeline on the document: the allocator first,
// so projections account for already-allocated value, then per-goal
// projections, then the bucket rollup. The document's linked assets are
// rewritten as a side effect, exactly as AutoAssignAssets does.
func NewPlanSummary(doc *PlanDocument, on date.Date) *PlanSummary {
	s := &PlanSummary{
		Date:     on,
		Currency: DefaultCurrency,
		Short:    BucketSummary{Horizon: Short},
		Long:     BucketSummary{Horizon: Long},
	}
	if doc == nil {
		return s
	}
	s.Currency = doc.Settings.Currency

	AutoAssignAssets(doc, on)

	a := doc.Assumptions()
	for i := range doc.Goals {
		p := ProjectDocumentGoal(doc, &doc.Goals[i], on)
		s.Goals = append(s.Goals, p)

		bucket := &s.Short
		if p.Horizon == Long {
			bucket = &s.Long
		}
		bucket.Goals++
		bucket.MonthlySIP += p.MonthlySIP
		split := goalSplit(p.Projection, a)
		bucket.Split.Equity += split.Equity
		bucket.Split.Debt += split.Debt
		bucket.Split.Arbitrage += split.Arbitrage
	}
	return s
}
