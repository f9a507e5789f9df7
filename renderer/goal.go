package renderer

import (
	"bytes"
	"fmt"

	"github.com/nivesh/goalplan"
	md "github.com/nao1215/markdown"
)

// GoalMarkdown renders one goal's projection in detail, including the
// payroll retirement breakdown when the goal has one.
func GoalMarkdown(p goalplan.RetirementProjection, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Goal: %s", p.Name))
	doc.Table(md.TableSet{
		Header: []string{"Field", "Value"},
		Rows: [][]string{
			{"Type", string(p.Type)},
			{"Horizon", fmt.Sprintf("%s (%s, %d months)", p.Horizon, years(p.Years), p.Months)},
			{"Inflation-adjusted target", money(p.AdjustedTarget, currency)},
			{"Linked holdings", money(p.Linked, currency)},
			{"Blended return", goalplan.Percent(p.BlendedReturn).String()},
			{"Remaining gap", money(p.Gap, currency)},
			{"Required monthly SIP", money(p.MonthlySIP, currency)},
		},
	})

	if b := p.Breakdown; b != (goalplan.RetirementBreakdown{}) {
		doc.H2("Payroll Retirement Coverage")
		doc.Table(md.TableSet{
			Header: []string{"Source", "Projected Value"},
			Rows: [][]string{
				{"EPF corpus", money(b.EPFCorpusFV, currency)},
				{"NPS corpus", money(b.NPSCorpusFV, currency)},
				{"EPF contributions", money(b.EPFContributionFV, currency)},
				{"NPS contributions", money(b.NPSContributionFV, currency)},
				{"Total", money(b.CorpusFV()+b.ContributionFV(), currency)},
			},
		})
	}

	return doc.String()
}
