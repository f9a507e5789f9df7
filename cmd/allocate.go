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

// allocateCmd holds the flags for the 'allocate' subcommand.
type allocateCmd struct {
	date string
}

func (*allocateCmd) Name() string     { return "allocate" }
func (*allocateCmd) Synopsis() string { return "distribute holdings to goals and save the links" }
func (*allocateCmd) Usage() string {
	return `nivesh allocate [-d <date>]

  Rebuilds every goal's linked holdings from scratch: short-only holdings
  fill short goals, long-only holdings fill long goals, and shared holdings
  fill whatever is left, nearest goal first. The result is saved.
`
}

func (c *allocateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Reference date for the allocation.")
}

func (c *allocateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	goalplan.AutoAssignAssets(doc, on)

	if err := SavePlan(doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving plan: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.AllocationMarkdown(doc))
	return subcommands.ExitSuccess
}

// checkCmd holds the flags for the 'check' subcommand.
type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "report holdings whose links exceed their value" }
func (*checkCmd) Usage() string {
	return `nivesh check

  The allocator never over-commits a holding, but edits made directly to the
  plan file can. This reports every holding whose linked amounts exceed its
  value.
`
}
func (*checkCmd) SetFlags(*flag.FlagSet) {}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	doc, err := LoadPlan()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.OverAllocationMarkdown(doc))
	return subcommands.ExitSuccess
}
