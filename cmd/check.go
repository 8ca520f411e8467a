package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/google/subcommands"
	"github.com/seblgr/positions"
)

// checkCmd holds the flags for the 'check' subcommand.
type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "validate a target table" }
func (*checkCmd) Usage() string {
	return `pmg check <targets.jsonl>

  Parses the target table and checks that its percentages sum sensibly:
  exactly 100% is silent, under 100% is a warning, over 100% an error.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one targets file expected")
		return subcommands.ExitUsageError
	}

	targets, err := loadTargets(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	symbols := make([]string, 0, len(targets))
	for s := range targets {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	for _, s := range symbols {
		fmt.Printf("%-8s %s\n", s, targets[s].Target)
	}

	switch sum, status := targets.Validate(); status {
	case positions.TargetSumOver:
		fmt.Fprintf(os.Stderr, "Error: targets sum to %s, over 100%%\n", sum)
		return subcommands.ExitFailure
	case positions.TargetSumUnder:
		fmt.Printf("Warning: targets sum to %s, %s unallocated\n", sum, 100-sum)
	default:
		fmt.Printf("Targets sum to %s\n", sum)
	}
	return subcommands.ExitSuccess
}
