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
	"github.com/nivesh/goalplan/date"
	"github.com/nivesh/goalplan/renderer"
	"github.com/shopspring/decimal"
)

// addGoalCmd holds the flags for the 'add-goal' subcommand.
type addGoalCmd struct {
	name      string
	goalType  string
	amount    float64
	inflation float64
	target    string
	epfnps    bool
}

func (*addGoalCmd) Name() string     { return "add-goal" }
func (*addGoalCmd) Synopsis() string { return "add a savings goal to the plan" }
func (*addGoalCmd) Usage() string {
	return `nivesh add-goal -name <name> -amount <amount> -date <target-date> [-type one-time|retirement] [-inflation <pct>] [-epfnps]

  Adds a goal and reruns the allocator, so existing holdings are immediately
  distributed against it.

Usage Examples:
$ nivesh add-goal -name "Europe Trip" -amount 400000 -date 2028-06-01
$ nivesh add-goal -name Retirement -type retirement -amount 50000000 -date 2051-01-01 -epfnps
`
}

func (c *addGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Goal name.")
	f.StringVar(&c.goalType, "type", "one-time", "Goal type: one-time or retirement.")
	f.Float64Var(&c.amount, "amount", 0, "Target amount in today's money.")
	f.Float64Var(&c.inflation, "inflation", 6, "Annual inflation rate applied to the target, in percent.")
	f.StringVar(&c.target, "date", "", "Target date (YYYY-MM-DD).")
	f.BoolVar(&c.epfnps, "epfnps", false, "Net EPF/NPS corpus and contributions against this goal (retirement only).")
}

func (c *addGoalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.amount <= 0 || c.target == "" {
		fmt.Fprintln(os.Stderr, "Error: -name, -amount and -date are required.")
		return subcommands.ExitUsageError
	}
	goalType, err := goalplan.ParseGoalType(c.goalType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	targetDate, err := date.Parse(c.target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing target date: %v\n", err)
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

	goal := goalplan.Goal{
		ID:            s.GenerateID(),
		Name:          c.name,
		Type:          goalType,
		TargetAmount:  decimal.NewFromFloat(c.amount),
		InflationRate: c.inflation,
		TargetDate:    targetDate,
		StartDate:     date.Today(),
		IncludeEPFNPS: c.epfnps,
	}
	doc.Goals = append(doc.Goals, goal)
	recompute(doc)

	if err := s.Save(doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving plan: %v\n", err)
		return subcommands.ExitFailure
	}

	p := goalplan.ProjectDocumentGoal(doc, doc.Goal(goal.ID), date.Today())
	printMarkdown(renderer.GoalMarkdown(p, doc.Settings.Currency))
	return subcommands.ExitSuccess
}

// listGoalsCmd holds the flags for the 'list-goals' subcommand.
type listGoalsCmd struct{}

func (*listGoalsCmd) Name() string     { return "list-goals" }
func (*listGoalsCmd) Synopsis() string { return "list all goals in the plan" }
func (*listGoalsCmd) Usage() string {
	return `nivesh list-goals

  Lists every goal with its id, type and target.
`
}
func (*listGoalsCmd) SetFlags(*flag.FlagSet) {}

func (c *listGoalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	doc, err := LoadPlan()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var buf bytes.Buffer
	out := md.NewMarkdown(&buf)
	out.H1("Goals")
	rows := make([][]string, 0, len(doc.Goals))
	for _, g := range doc.Goals {
		rows = append(rows, []string{
			g.ID,
			g.Name,
			string(g.Type),
			goalplan.M(g.TargetAmount, doc.Settings.Currency).String(),
			g.TargetDate.String(),
		})
	}
	out.Table(md.TableSet{
		Header: []string{"ID", "Name", "Type", "Target", "Date"},
		Rows:   rows,
	})
	printMarkdown(out.String())
	return subcommands.ExitSuccess
}

// showGoalCmd holds the flags for the 'show-goal' subcommand.
type showGoalCmd struct{}

func (*showGoalCmd) Name() string     { return "show-goal" }
func (*showGoalCmd) Synopsis() string { return "show one goal's funding projection" }
func (*showGoalCmd) Usage() string {
	return `nivesh show-goal <goal-id>

  Shows the full projection of one goal, including the payroll retirement
  coverage for retirement goals.
`
}
func (*showGoalCmd) SetFlags(*flag.FlagSet) {}

func (c *showGoalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one goal id.")
		return subcommands.ExitUsageError
	}
	doc, err := LoadPlan()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	g := doc.Goal(f.Arg(0))
	if g == nil {
		fmt.Fprintf(os.Stderr, "Error: no goal with id %q.\n", f.Arg(0))
		return subcommands.ExitFailure
	}

	recompute(doc)
	p := goalplan.ProjectDocumentGoal(doc, g, date.Today())
	printMarkdown(renderer.GoalMarkdown(p, doc.Settings.Currency))
	return subcommands.ExitSuccess
}

// rmGoalCmd holds the flags for the 'rm-goal' subcommand.
type rmGoalCmd struct{}

func (*rmGoalCmd) Name() string     { return "rm-goal" }
func (*rmGoalCmd) Synopsis() string { return "remove a goal from the plan" }
func (*rmGoalCmd) Usage() string {
	return `nivesh rm-goal <goal-id>

  Removes the goal and reruns the allocator, freeing its linked holdings for
  the remaining goals.
`
}
func (*rmGoalCmd) SetFlags(*flag.FlagSet) {}

func (c *rmGoalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one goal id.")
		return subcommands.ExitUsageError
	}
	doc, err := LoadPlan()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	id := f.Arg(0)
	kept := doc.Goals[:0]
	found := false
	for _, g := range doc.Goals {
		if g.ID == id {
			found = true
			continue
		}
		kept = append(kept, g)
	}
	if !found {
		fmt.Fprintf(os.Stderr, "Error: no goal with id %q.\n", id)
		return subcommands.ExitFailure
	}
	doc.Goals = kept
	recompute(doc)

	if err := SavePlan(doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving plan: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed goal %q.\n", id)
	return subcommands.ExitSuccess
}
