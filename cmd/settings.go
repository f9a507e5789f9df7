package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	md "github.com/nao1215/markdown"
	"github.com/nivesh/goalplan"
)

// settingsCmd holds the flags for the 'settings' subcommand.
type settingsCmd struct {
	equity    float64
	debt      float64
	arbitrage float64
	epf       float64
	nps       float64
	alloc     float64
}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "show or update the plan's return assumptions" }
func (*settingsCmd) Usage() string {
	return `nivesh settings [-equity <pct>] [-debt <pct>] [-arbitrage <pct>] [-epf <pct>] [-nps <pct>] [-alloc <pct>]

  Without flags, shows the current assumptions. With flags, updates them,
  reruns the allocator and saves.
`
}

func (c *settingsCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.equity, "equity", -1, "Assumed annual equity return, percent.")
	f.Float64Var(&c.debt, "debt", -1, "Assumed annual debt return, percent.")
	f.Float64Var(&c.arbitrage, "arbitrage", -1, "Assumed annual arbitrage-fund return, percent.")
	f.Float64Var(&c.epf, "epf", -1, "Assumed annual EPF return, percent.")
	f.Float64Var(&c.nps, "nps", -1, "Assumed annual NPS return, percent.")
	f.Float64Var(&c.alloc, "alloc", -1, "Equity share of long-horizon money, percent.")
}

func (c *settingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	doc, err := LoadPlan()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	changed := false
	set := func(dst *float64, v float64) {
		if v >= 0 {
			*dst = v
			changed = true
		}
	}
	set(&doc.Settings.EquityReturn, c.equity)
	set(&doc.Settings.DebtReturn, c.debt)
	set(&doc.Settings.ArbitrageReturn, c.arbitrage)
	set(&doc.Settings.EPFReturn, c.epf)
	set(&doc.Settings.NPSReturn, c.nps)
	set(&doc.Settings.EquityAllocationPct, c.alloc)

	if changed {
		recompute(doc)
		if err := SavePlan(doc); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving plan: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	s := doc.Settings
	var buf bytes.Buffer
	out := md.NewMarkdown(&buf)
	out.H1("Assumptions")
	out.Table(md.TableSet{
		Header: []string{"Setting", "Value"},
		Rows: [][]string{
			{"Currency", s.Currency},
			{"Equity return", goalplan.Percent(s.EquityReturn).String()},
			{"Debt return", goalplan.Percent(s.DebtReturn).String()},
			{"Arbitrage return", goalplan.Percent(s.ArbitrageReturn).String()},
			{"EPF return", goalplan.Percent(s.EPFReturn).String()},
			{"NPS return", goalplan.Percent(s.NPSReturn).String()},
			{"Equity allocation", goalplan.Percent(s.EquityAllocationPct).String()},
		},
	})
	printMarkdown(out.String())
	return subcommands.ExitSuccess
}
