package renderer

import (
	"bytes"
	"fmt"

	"github.com/nivesh/goalplan"
	md "github.com/nao1215/markdown"
)

// AllocationMarkdown renders how the allocator distributed holdings to
// goals: one section per goal with its links, then the per-holding usage.
func AllocationMarkdown(doc *goalplan.PlanDocument) string {
	var buf bytes.Buffer
	out := md.NewMarkdown(&buf)

	out.H1("Asset Allocation")
	currency := goalplan.DefaultCurrency
	if doc != nil {
		currency = doc.Settings.Currency
	}

	if doc != nil {
		rows := make([][]string, 0)
		for _, g := range doc.Goals {
			if len(g.LinkedAssets) == 0 {
				rows = append(rows, []string{g.Name, "-", "-"})
				continue
			}
			for _, la := range g.LinkedAssets {
				name := la.HoldingID
				if h := doc.Holding(la.HoldingID); h != nil {
					name = h.Name
				}
				rows = append(rows, []string{g.Name, name, money(la.Amount.InexactFloat64(), currency)})
			}
		}
		out.H2("Links")
		out.Table(md.TableSet{
			Header: []string{"Goal", "Holding", "Amount"},
			Rows:   rows,
		})
	}

	out.H2("Holdings")
	usage := goalplan.AssetAllocations(doc)
	rows := make([][]string, 0, len(usage))
	if doc != nil {
		// walk the document to keep a stable holding order
		for _, h := range doc.Assets.Items {
			u := usage[h.ID]
			rows = append(rows, []string{
				h.Name,
				string(h.Category),
				h.Category.Eligibility().String(),
				money(u.Total, currency),
				money(u.Allocated, currency),
				money(u.Available, currency),
			})
		}
	}
	out.Table(md.TableSet{
		Header: []string{"Holding", "Category", "Eligible", "Value", "Allocated", "Available"},
		Rows:   rows,
	})

	return out.String()
}

// OverAllocationMarkdown renders the over-allocation check across holdings.
func OverAllocationMarkdown(doc *goalplan.PlanDocument) string {
	var buf bytes.Buffer
	out := md.NewMarkdown(&buf)
	out.H1("Over-Allocation Check")

	currency := goalplan.DefaultCurrency
	over := 0
	rows := make([][]string, 0)
	if doc != nil {
		currency = doc.Settings.Currency
		for _, h := range doc.Assets.Items {
			o := goalplan.CheckAssetOverAllocation(doc, h.ID)
			if !o.Over {
				continue
			}
			over++
			rows = append(rows, []string{
				h.Name,
				money(o.Total, currency),
				money(o.Allocated, currency),
				money(o.Excess, currency),
			})
		}
	}
	if over == 0 {
		out.PlainText("No holding is over-allocated.")
		return out.String()
	}
	out.PlainText(fmt.Sprintf("%d holding(s) are over-allocated. Re-run the allocator or trim the manual links.", over))
	out.Table(md.TableSet{
		Header: []string{"Holding", "Value", "Allocated", "Excess"},
		Rows:   rows,
	})
	return out.String()
}
