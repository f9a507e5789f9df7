package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	md "github.com/nao1215/markdown"
	"github.com/nivesh/goalplan"
	"github.com/nivesh/goalplan/renderer"
	"github.com/shopspring/decimal"
)

// addAssetCmd holds the flags for the 'add-asset' subcommand.
type addAssetCmd struct {
	name     string
	category string
	value    float64
}

func (*addAssetCmd) Name() string     { return "add-asset" }
func (*addAssetCmd) Synopsis() string { return "add a holding to the plan" }
func (*addAssetCmd) Usage() string {
	return `nivesh add-asset -name <name> -category <category> -value <amount>

  Adds a holding and reruns the allocator. The category decides which goal
  horizons the holding may fund:

    ` + strings.Join(categoryNames(), ", ") + `

Usage Examples:
$ nivesh add-asset -name "HDFC FD" -category fixed-deposit -value 300000
`
}

func categoryNames() []string {
	names := make([]string, 0)
	for _, c := range goalplan.Categories() {
		names = append(names, string(c))
	}
	return names
}

func (c *addAssetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Holding name.")
	f.StringVar(&c.category, "category", "", "Holding category.")
	f.Float64Var(&c.value, "value", 0, "Current value of the holding.")
}

func (c *addAssetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.category == "" || c.value <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -name, -category and -value are required.")
		return subcommands.ExitUsageError
	}
	category, err := goalplan.ParseCategory(c.category)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
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

	doc.Assets.Items = append(doc.Assets.Items, goalplan.Holding{
		ID:       s.GenerateID(),
		Name:     c.name,
		Category: category,
		Value:    decimal.NewFromFloat(c.value),
	})
	recompute(doc)

	if err := s.Save(doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving plan: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.AllocationMarkdown(doc))
	return subcommands.ExitSuccess
}

// listAssetsCmd holds the flags for the 'list-assets' subcommand.
type listAssetsCmd struct{}

func (*listAssetsCmd) Name() string     { return "list-assets" }
func (*listAssetsCmd) Synopsis() string { return "list all holdings with their allocation usage" }
func (*listAssetsCmd) Usage() string {
	return `nivesh list-assets

  Lists every holding with its category, eligibility, and how much of its
  value the allocator has committed to goals.
`
}
func (*listAssetsCmd) SetFlags(*flag.FlagSet) {}

func (c *listAssetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	doc, err := LoadPlan()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var buf bytes.Buffer
	out := md.NewMarkdown(&buf)
	out.H1("Holdings")
	usage := goalplan.AssetAllocations(doc)
	rows := make([][]string, 0, len(doc.Assets.Items))
	for _, h := range doc.Assets.Items {
		u := usage[h.ID]
		rows = append(rows, []string{
			h.ID,
			h.Name,
			string(h.Category),
			goalplan.M(h.Value, doc.Settings.Currency).String(),
			goalplan.M(u.Allocated, doc.Settings.Currency).String(),
			goalplan.M(u.Available, doc.Settings.Currency).String(),
		})
	}
	out.Table(md.TableSet{
		Header: []string{"ID", "Name", "Category", "Value", "Allocated", "Available"},
		Rows:   rows,
	})
	printMarkdown(out.String())
	return subcommands.ExitSuccess
}

// rmAssetCmd holds the flags for the 'rm-asset' subcommand.
type rmAssetCmd struct{}

func (*rmAssetCmd) Name() string     { return "rm-asset" }
func (*rmAssetCmd) Synopsis() string { return "remove a holding from the plan" }
func (*rmAssetCmd) Usage() string {
	return `nivesh rm-asset <holding-id>

  Removes the holding and reruns the allocator, so goals that were funded by
  it are re-filled from the remaining holdings.
`
}
func (*rmAssetCmd) SetFlags(*flag.FlagSet) {}

func (c *rmAssetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one holding id.")
		return subcommands.ExitUsageError
	}
	doc, err := LoadPlan()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	id := f.Arg(0)
	kept := doc.Assets.Items[:0]
	found := false
	for _, h := range doc.Assets.Items {
		if h.ID == id {
			found = true
			continue
		}
		kept = append(kept, h)
	}
	if !found {
		fmt.Fprintf(os.Stderr, "Error: no holding with id %q.\n", id)
		return subcommands.ExitFailure
	}
	doc.Assets.Items = kept
	recompute(doc)

	if err := SavePlan(doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving plan: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed holding %q.\n", id)
	return subcommands.ExitSuccess
}
