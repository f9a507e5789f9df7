// Command nivesh is the goal-based savings planner CLI.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/nivesh/goalplan/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion, installed with COMP_INSTALL=1 nivesh.
	completion().Complete("nivesh")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	leaf := func() *complete.Command { return &complete.Command{} }
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"init":         leaf(),
			"plan":         leaf(),
			"allocate":     leaf(),
			"check":        leaf(),
			"settings":     leaf(),
			"add-goal":     leaf(),
			"list-goals":   leaf(),
			"show-goal":    leaf(),
			"rm-goal":      leaf(),
			"add-asset":    leaf(),
			"list-assets":  leaf(),
			"rm-asset":     leaf(),
			"add-income":   leaf(),
			"list-incomes": leaf(),
			"rm-income":    leaf(),
			"query":        leaf(),
			"topic":        leaf(),
			"assist":       leaf(),
		},
		Flags: map[string]complete.Predictor{
			"plan-file": predict.Files("*.json"),
		},
	}
}
