package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/seblgr/positions"
)

// mergeCmd holds the flags for the 'merge' subcommand.
type mergeCmd struct {
	output    string
	targets   string
	tolerance float64
	raw       bool
}

func (*mergeCmd) Name() string { return "merge" }
func (*mergeCmd) Synopsis() string {
	return "merge brokerage position exports into one allocation report"
}
func (*mergeCmd) Usage() string {
	return `pmg merge [-o <file>] [-targets <file>] [-tolerance <pct>] <positions.csv> ...

  Loads each positions file (auto-detecting the brokerage format), merges
  them into one holdings list and writes the allocation report as CSV.
  A price gap between two sources beyond the tolerance stops the run and
  writes nothing.
`
}

func (c *mergeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", defaultOutput(), "output CSV file")
	f.StringVar(&c.targets, "targets", "", "target table (JSONL), see 'pmg topic targets'")
	f.Float64Var(&c.tolerance, "tolerance", defaultTolerance(), "max relative price gap between sources, in percent")
	f.BoolVar(&c.raw, "raw", false, "write raw merged positions (ticker,nbShares,price) without allocation columns")
}

func (c *mergeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	logTargetSum(targets)

	out, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if c.raw {
		err = positions.WriteHoldings(out, merged)
	} else {
		err = positions.WriteReport(out, positions.Allocate(merged, targets))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Wrote %d positions to %s\n", len(merged), c.output)
	return subcommands.ExitSuccess
}
