package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nivesh/goalplan"
	"github.com/nivesh/goalplan/date"
	"github.com/nivesh/goalplan/renderer"
)

// planCmd holds the flags for the 'plan' subcommand.
type planCmd struct {
	date string
	save bool
}

func (*planCmd) Name() string     { return "plan" }
func (*planCmd) Synopsis() string { return "display the full savings plan summary" }
func (*planCmd) Usage() string {
	return `nivesh plan [-d <date>] [-save]

  Runs the full pipeline: distributes holdings to goals, projects each goal's
  required monthly contribution, and rolls up the horizon buckets with their
  recommended fund split. With -save, the recomputed allocation is written
  back to the plan file.
`
}

func (c *planCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Reference date for the plan.")
	f.BoolVar(&c.save, "save", false, "Persist the recomputed allocation.")
}

func (c *planCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	doc, err := LoadPlan()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	summary := goalplan.NewPlanSummary(doc, on)

	if c.save {
		if err := SavePlan(doc); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving plan: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.PlanMarkdown(summary))
	return subcommands.ExitSuccess
}
