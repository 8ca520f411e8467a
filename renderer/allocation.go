// Package renderer builds terminal-friendly markdown views of allocation
// reports. The cmd layer feeds the result to its markdown printer.
package renderer

import (
	"fmt"
	"strings"

	"github.com/seblgr/positions"
)

// Allocation is the view model for a rendered allocation report.
type Allocation struct {
	TotalValue positions.Money
	Rows       []positions.ReportRow
	// TargetSum and TargetStatus come from the target table pre-check.
	TargetSum    positions.Percent
	TargetStatus positions.TargetSumStatus
}

// NewAllocation assembles the view model from the engine's outputs.
func NewAllocation(rows []positions.ReportRow, total positions.Money, sum positions.Percent, status positions.TargetSumStatus) *Allocation {
	return &Allocation{TotalValue: total, Rows: rows, TargetSum: sum, TargetStatus: status}
}

// AllocationMarkdown renders the report as a markdown table.
func AllocationMarkdown(a *Allocation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Holdings Allocation\n\n")
	fmt.Fprintf(&b, "Total portfolio value: **%s**\n\n", a.TotalValue)

	fmt.Fprintln(&b, "| Ticker | Description | Shares | Price | Current | Target | To Target |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|---:|")
	for _, r := range a.Rows {
		target, delta := "", ""
		if r.HasTarget {
			target = r.Target.String()
		}
		if r.HasDelta {
			delta = r.SharesToTarget.SignedString()
		}
		price := r.Price.String()
		if r.Price.IsZero() {
			price = "?"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			r.Ticker,
			r.Description,
			r.Shares,
			price,
			r.Current,
			target,
			delta,
		)
	}

	switch a.TargetStatus {
	case positions.TargetSumOver:
		fmt.Fprintf(&b, "\n**Targets sum to %s, over 100%%.**\n", a.TargetSum)
	case positions.TargetSumUnder:
		fmt.Fprintf(&b, "\nTargets sum to %s, leaving %s unallocated.\n", a.TargetSum, 100-a.TargetSum)
	}

	if missing := missingTargets(a.Rows); len(missing) > 0 {
		fmt.Fprintf(&b, "\nNo target configured for: %s.\n", strings.Join(missing, ", "))
	}
	return b.String()
}

func missingTargets(rows []positions.ReportRow) []string {
	var missing []string
	for _, r := range rows {
		if !r.HasTarget {
			missing = append(missing, r.Ticker)
		}
	}
	return missing
}
