package renderer

import (
	"bytes"
	"fmt"

	"github.com/nivesh/goalplan"
	md "github.com/nao1215/markdown"
)

// PlanMarkdown renders the full plan summary: the horizon-bucket rollup with
// its recommended fund split, then the per-goal funding table.
func PlanMarkdown(s *goalplan.PlanSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Savings Plan on %s", s.Date))
	doc.PlainText(fmt.Sprintf("Total required monthly contribution: %s", money(s.TotalMonthlySIP(), s.Currency)))

	doc.H2("Horizon Buckets")
	doc.Table(md.TableSet{
		Header: []string{"Bucket", "Goals", "Monthly SIP", "Equity", "Debt", "Arbitrage"},
		Rows: [][]string{
			bucketRow(s.Short, s.Currency),
			bucketRow(s.Long, s.Currency),
		},
	})

	doc.H2("Goals")
	rows := make([][]string, 0, len(s.Goals))
	for _, g := range s.Goals {
		rows = append(rows, []string{
			g.Name,
			string(g.Type),
			years(g.Years),
			g.Horizon.String(),
			money(g.AdjustedTarget, s.Currency),
			money(g.Linked, s.Currency),
			money(g.MonthlySIP, s.Currency),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Goal", "Type", "Horizon", "Bucket", "Target (adj.)", "Linked", "Monthly SIP"},
		Rows:   rows,
	})

	return doc.String()
}

func bucketRow(b goalplan.BucketSummary, currency string) []string {
	return []string{
		b.Horizon.String(),
		fmt.Sprintf("%d", b.Goals),
		money(b.MonthlySIP, currency),
		fmt.Sprintf("%s (%s)", money(b.Split.Equity, currency), b.Split.EquityPct()),
		fmt.Sprintf("%s (%s)", money(b.Split.Debt, currency), b.Split.DebtPct()),
		fmt.Sprintf("%s (%s)", money(b.Split.Arbitrage, currency), b.Split.ArbitragePct()),
	}
}
