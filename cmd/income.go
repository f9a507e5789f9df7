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
	"github.com/shopspring/decimal"
)

// addIncomeCmd holds the flags for the 'add-income' subcommand.
type addIncomeCmd struct {
	name    string
	monthly float64
	epf     float64
	nps     float64
}

func (*addIncomeCmd) Name() string     { return "add-income" }
func (*addIncomeCmd) Synopsis() string { return "add an income source with its payroll contributions" }
func (*addIncomeCmd) Usage() string {
	return `nivesh add-income -name <name> -monthly <amount> [-epf <monthly>] [-nps <monthly>]

  Adds a recurring income. The -epf and -nps amounts are the monthly
  payroll-retirement contributions tied to this income; they are netted
  against retirement goals that opt in.

Usage Examples:
$ nivesh add-income -name Salary -monthly 150000 -epf 12000 -nps 5000
`
}

func (c *addIncomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Income source name.")
	f.Float64Var(&c.monthly, "monthly", 0, "Monthly income amount.")
	f.Float64Var(&c.epf, "epf", 0, "Monthly EPF contribution.")
	f.Float64Var(&c.nps, "nps", 0, "Monthly NPS contribution.")
}

func (c *addIncomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.monthly <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -name and -monthly are required.")
		return subcommands.ExitUsageError
	}
	s, err := store()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	doc, err := s.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	doc.Cashflow.Incomes = append(doc.Cashflow.Incomes, goalplan.Income{
		ID:         s.GenerateID(),
		Name:       c.name,
		Monthly:    decimal.NewFromFloat(c.monthly),
		EPFMonthly: decimal.NewFromFloat(c.epf),
		NPSMonthly: decimal.NewFromFloat(c.nps),
	})

	if err := s.Save(doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving plan: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added income %q.\n", c.name)
	return subcommands.ExitSuccess
}

// listIncomesCmd holds the flags for the 'list-incomes' subcommand.
type listIncomesCmd struct{}

func (*listIncomesCmd) Name() string     { return "list-incomes" }
func (*listIncomesCmd) Synopsis() string { return "list all income sources in the plan" }
func (*listIncomesCmd) Usage() string {
	return `nivesh list-incomes

  Lists every income source with its id and monthly EPF/NPS contributions.
`
}
func (*listIncomesCmd) SetFlags(*flag.FlagSet) {}

func (c *listIncomesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	doc, err := LoadPlan()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	cur := doc.Settings.Currency
	var buf bytes.Buffer
	out := md.NewMarkdown(&buf)
	out.H1("Incomes")
	rows := make([][]string, 0, len(doc.Cashflow.Incomes))
	for _, in := range doc.Cashflow.Incomes {
		rows = append(rows, []string{
			in.ID,
			in.Name,
			goalplan.M(in.Monthly, cur).String(),
			goalplan.M(in.EPFMonthly, cur).String(),
			goalplan.M(in.NPSMonthly, cur).String(),
		})
	}
	out.Table(md.TableSet{
		Header: []string{"ID", "Name", "Monthly", "EPF", "NPS"},
		Rows:   rows,
	})
	printMarkdown(out.String())
	return subcommands.ExitSuccess
}

// rmIncomeCmd holds the flags for the 'rm-income' subcommand.
type rmIncomeCmd struct{}

func (*rmIncomeCmd) Name() string     { return "rm-income" }
func (*rmIncomeCmd) Synopsis() string { return "remove an income source" }
func (*rmIncomeCmd) Usage() string {
	return `nivesh rm-income <income-id>

  Removes the income source and its payroll contributions.
`
}
func (*rmIncomeCmd) SetFlags(*flag.FlagSet) {}

func (c *rmIncomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one income id.")
		return subcommands.ExitUsageError
	}
	doc, err := LoadPlan()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	id := f.Arg(0)
	kept := doc.Cashflow.Incomes[:0]
	found := false
	for _, in := range doc.Cashflow.Incomes {
		if in.ID == id {
			found = true
			continue
		}
		kept = append(kept, in)
	}
	if !found {
		fmt.Fprintf(os.Stderr, "Error: no income with id %q.\n", id)
		return subcommands.ExitFailure
	}
	doc.Cashflow.Incomes = kept

	if err := SavePlan(doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving plan: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed income %q.\n", id)
	return subcommands.ExitSuccess
}
