// Package cmd implements the CLI application to reconcile brokerage
// position exports and report allocation against targets.
package cmd

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	"github.com/seblgr/positions"
	"github.com/seblgr/positions/brokers"
)

// Commands lists the subcommands of the pmg tool.
// A main package registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&mergeCmd{},
	&reportCmd{},
	&checkCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// configure it from environment variables read at flag-definition time.

// newClassifier returns the classifier for this run, extending the default
// denylist with PMG_EXCLUDE (comma-separated symbols).
func newClassifier() *positions.Classifier {
	return positions.NewClassifier(strings.Split(os.Getenv("PMG_EXCLUDE"), ",")...)
}

// defaultTolerance is the tolerance flag default, overridable with
// PMG_TOLERANCE.
func defaultTolerance() float64 {
	if s := os.Getenv("PMG_TOLERANCE"); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return v
		}
		log.Printf("warning, ignoring invalid PMG_TOLERANCE %q", s)
	}
	return float64(positions.DefaultTolerance)
}

// defaultOutput is the output flag default, overridable with PMG_OUTPUT.
func defaultOutput() string {
	if s := os.Getenv("PMG_OUTPUT"); s != "" {
		return s
	}
	return "holdings.csv"
}

// loadTargets reads the optional target table. An empty path is a valid
// "no targets" configuration.
func loadTargets(path string) (positions.Targets, error) {
	if path == "" {
		return positions.Targets{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open targets file: %w", err)
	}
	defer f.Close()
	return positions.ImportTargets(f)
}

// loadAndMerge loads every positions file and folds them into one holdings
// list, first file to last.
func loadAndMerge(c *positions.Classifier, tolerance positions.Percent, files []string) ([]positions.Holding, error) {
	lists := make([][]positions.Holding, 0, len(files))
	for _, file := range files {
		holdings, report, err := brokers.Load(c, file)
		if err != nil {
			return nil, err
		}
		logReport(report)
		lists = append(lists, holdings)
	}
	return positions.MergeAll(tolerance, lists...)
}

func logReport(r *brokers.LoadReport) {
	log.Printf("%s: %s format, %d positions", r.File, r.Format, r.Accepted)
	for _, s := range r.Skipped {
		log.Printf("%s:%d: skipping %s row %v", r.File, s.Line, s.Reason, s.Row)
	}
	for _, m := range r.Malformed {
		log.Printf("%s:%d: skipping malformed row %v: %v", r.File, m.Line, m.Row, m.Err)
	}
}

// logTargetSum surfaces the advisory target-sum pre-check. It never blocks
// the report.
func logTargetSum(targets positions.Targets) {
	if len(targets) == 0 {
		return
	}
	switch sum, status := targets.Validate(); status {
	case positions.TargetSumOver:
		log.Printf("error, targets sum to %s, over 100%%", sum)
	case positions.TargetSumUnder:
		log.Printf("warning, targets sum to %s, under 100%%", sum)
	}
}
