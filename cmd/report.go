package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/seblgr/positions"
	"github.com/seblgr/positions/renderer"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	targets   string
	tolerance float64
}

func (*reportCmd) Name() string { return "report" }
func (*reportCmd) Synopsis() string {
	return "display the merged allocation report on the terminal"
}
func (*reportCmd) Usage() string {
	return `pmg report [-targets <file>] [-tolerance <pct>] <positions.csv> ...

  Same pipeline as 'merge', but renders the allocation report as a table on
  the terminal instead of writing a CSV file.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.targets, "targets", "", "target table (JSONL), see 'pmg topic targets'")
	f.Float64Var(&c.tolerance, "tolerance", defaultTolerance(), "max relative price gap between sources, in percent")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	files := f.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no positions file given")
		return subcommands.ExitUsageError
	}

	merged, err := loadAndMerge(newClassifier(), positions.Percent(c.tolerance), files)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	targets, err := loadTargets(c.targets)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	sum, status := targets.Validate()
	view := renderer.NewAllocation(
		positions.Allocate(merged, targets),
		positions.TotalValue(merged),
		sum, status,
	)
	printMarkdown(renderer.AllocationMarkdown(view))
	return subcommands.ExitSuccess
}
