package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nivesh/goalplan"
)

type initCmd struct {
	force bool
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create a new plan document with default assumptions" }
func (*initCmd) Usage() string {
	return `nivesh init [-f]

  Creates a new plan document at the plan file path with default return
  assumptions and empty goal, asset and cashflow lists.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Overwrite an existing plan file.")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := store()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if _, err := os.Stat(s.Path()); err == nil && !c.force {
		fmt.Fprintf(os.Stderr, "Error: plan file %q already exists, use -f to overwrite.\n", s.Path())
		return subcommands.ExitUsageError
	}

	if err := s.Save(goalplan.DefaultPlan()); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating plan file: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created plan file %q.\n", s.Path())
	return subcommands.ExitSuccess
}
