package goalplan

import (
	"github.com/nivesh/goalplan/date"
)

// payrollContributionGrowth is the fixed annual growth assumed for payroll
// retirement contributions when the goal opts in to netting them. It tracks
// salary growth and is deliberately not user-configurable.
const payrollContributionGrowth = 0.07

// RetirementCorpus is the already-accumulated value in the payroll retirement
// funds, summed by sub-category.
type RetirementCorpus struct {
	EPF float64
	NPS float64
}

// PayrollContribution is the recurring monthly payroll-retirement
// contribution, summed across all income sources.
type PayrollContribution struct {
	EPFMonthly float64
	NPSMonthly float64
}

// IsZero reports whether no payroll contribution is recorded.
func (p PayrollContribution) IsZero() bool { return p.EPFMonthly == 0 && p.NPSMonthly == 0 }

// PayrollReturns holds the assumed annual return of each payroll fund.
type PayrollReturns struct {
	EPF float64 // percent per year
	NPS float64 // percent per year
}

// RetirementBreakdown itemizes how the payroll retirement system covers a
// retirement goal, for display.
type RetirementBreakdown struct {
	EPFCorpusFV       float64 // EPF corpus grown to the goal date
	NPSCorpusFV       float64 // NPS corpus grown to the goal date
	EPFContributionFV float64 // future value of recurring EPF contributions
	NPSContributionFV float64 // future value of recurring NPS contributions
}

// CorpusFV sums the projected corpora.
func (b RetirementBreakdown) CorpusFV() float64 { return b.EPFCorpusFV + b.NPSCorpusFV }

// ContributionFV sums the projected recurring contributions.
func (b RetirementBreakdown) ContributionFV() float64 {
	return b.EPFContributionFV + b.NPSContributionFV
}

// RetirementProjection augments a goal projection with the residual gap left
// after the payroll retirement system is netted out.
type RetirementProjection struct {
	Projection
	Gap       float64 // part of the adjusted target not covered by EPF/NPS nor linked holdings
	Breakdown RetirementBreakdown
}

// ProjectRetirementGoal projects a retirement goal. The accumulated corpus of
// each payroll fund is compounded at its own assumed return to the goal date,
// the recurring contributions are projected the same way (growing 7% a year
// when the goal opts in to step-up), and only the residual gap is fed back to
// the level-payment solver. With no corpus and no contributions, or when the
// goal does not opt in (IncludeEPFNPS), this behaves exactly like ProjectGoal.
func ProjectRetirementGoal(g *Goal, on date.Date, corpus RetirementCorpus, contrib PayrollContribution, a Assumptions, pr PayrollReturns) RetirementProjection {
	r := RetirementProjection{Projection: ProjectGoal(g, on, a)}
	if g == nil {
		return r
	}
	r.Gap = r.Unfunded()
	if !g.IncludeEPFNPS {
		return r
	}
	if corpus == (RetirementCorpus{}) && contrib.IsZero() {
		return r
	}

	r.Breakdown = RetirementBreakdown{
		EPFCorpusFV:       LumpsumFutureValue(corpus.EPF, pr.EPF, r.Years),
		NPSCorpusFV:       LumpsumFutureValue(corpus.NPS, pr.NPS, r.Years),
		EPFContributionFV: payrollContributionFV(contrib.EPFMonthly, pr.EPF, r.Months, g.IncludeEPFNPS),
		NPSContributionFV: payrollContributionFV(contrib.NPSMonthly, pr.NPS, r.Months, g.IncludeEPFNPS),
	}

	gap := r.Unfunded() - r.Breakdown.CorpusFV() - r.Breakdown.ContributionFV()
	if gap < 0 {
		gap = 0
	}
	r.Gap = gap
	r.MonthlySIP = RegularSIP(gap, r.BlendedReturn, r.Months)
	return r
}

// payrollContributionFV projects a recurring monthly payroll contribution to
// the goal date. With step-up the contribution grows once every 12 elapsed
// months at the fixed payroll growth rate; otherwise it is a flat annuity.
func payrollContributionFV(monthly, annualRatePct float64, months int, stepUp bool) float64 {
	if monthly <= 0 || months <= 0 {
		return 0
	}
	if !stepUp {
		return AnnuityFutureValue(monthly, annualRatePct, months)
	}
	return StepUpFutureValue(monthly, monthlyRate(annualRatePct), months, payrollContributionGrowth)
}

// ProjectDocumentGoal projects any goal from the document, applying the
// retirement netting when the goal calls for it.
func ProjectDocumentGoal(doc *PlanDocument, g *Goal, on date.Date) RetirementProjection {
	if doc == nil || g == nil {
		return RetirementProjection{}
	}
	if g.Type == GoalRetirement {
		return ProjectRetirementGoal(g, on, doc.RetirementCorpus(), doc.PayrollContributions(), doc.Assumptions(), doc.PayrollReturns())
	}
	r := RetirementProjection{Projection: ProjectGoal(g, on, doc.Assumptions())}
	r.Gap = r.Unfunded()
	return r
}
