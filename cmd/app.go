// Package cmd implements the CLI application to manage a savings plan.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/nivesh/goalplan"
	"github.com/nivesh/goalplan/date"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&initCmd{}, "plan")
	c.Register(&planCmd{}, "plan")
	c.Register(&allocateCmd{}, "plan")
	c.Register(&checkCmd{}, "plan")
	c.Register(&settingsCmd{}, "plan")

	c.Register(&addGoalCmd{}, "goals")
	c.Register(&listGoalsCmd{}, "goals")
	c.Register(&showGoalCmd{}, "goals")
	c.Register(&rmGoalCmd{}, "goals")

	c.Register(&addAssetCmd{}, "assets")
	c.Register(&listAssetsCmd{}, "assets")
	c.Register(&rmAssetCmd{}, "assets")

	c.Register(&addIncomeCmd{}, "cashflow")
	c.Register(&listIncomesCmd{}, "cashflow")
	c.Register(&rmIncomeCmd{}, "cashflow")

	c.Register(&queryCmd{}, "tools")
	c.Register(&topicCmd{}, "tools")
	c.Register(&assistCmd{}, "tools")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var planFile = flag.String("plan-file", defaultPlanFile(), "Path to the plan document (JSON format), or a directory to search for one")

func defaultPlanFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "plan.json"
	}
	return home + "/.nivesh/plan.json"
}

// store resolves the -plan-file flag into the app's plan document store,
// through plan discovery so the flag may name the file or its directory.
func store() (*goalplan.Store, error) { return goalplan.FindPlan(*planFile) }

// LoadPlan loads the plan document from the app plan file, falling back to an
// empty default plan when the file does not exist yet.
func LoadPlan() (*goalplan.PlanDocument, error) {
	s, err := store()
	if err != nil {
		return nil, err
	}
	return s.Load()
}

// SavePlan writes the plan document back to the app plan file.
func SavePlan(doc *goalplan.PlanDocument) error {
	s, err := store()
	if err != nil {
		return err
	}
	return s.Save(doc)
}

// recompute reruns the allocator on the document, so every mutation leaves
// the stored links consistent with the current holdings and goals.
func recompute(doc *goalplan.PlanDocument) {
	goalplan.AutoAssignAssets(doc, date.Today())
}

// printMarkdown renders markdown nicely on the terminal, falling back to the
// raw text when the terminal cannot be styled.
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}
