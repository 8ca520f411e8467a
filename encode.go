package positions

import (
	"encoding/csv"
	"fmt"
	"io"
)

// reportHeader is the fixed column header of the allocation report.
var reportHeader = []string{"ticker", "description", "nbShares", "price", "currentAllocation", "target", "sharesToTarget"}

// WriteReport serializes the allocation report as CSV, one row per holding.
// Absent targets and share deltas serialize as empty fields.
func WriteReport(w io.Writer, rows []ReportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(reportHeader); err != nil {
		return fmt.Errorf("cannot write report header: %w", err)
	}
	for _, r := range rows {
		target, delta := "", ""
		if r.HasTarget {
			target = r.Target.PlainString()
		}
		if r.HasDelta {
			delta = r.SharesToTarget.String()
		}
		record := []string{
			r.Ticker,
			r.Description,
			r.Shares.String(),
			r.Price.PlainString(),
			r.Current.PlainString(),
			target,
			delta,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write report row for %s: %w", r.Ticker, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteHoldings serializes the raw merged positions, without allocation
// columns. This is the original tool's output shape, kept for callers that
// feed the merged list into other scripts.
func WriteHoldings(w io.Writer, holdings []Holding) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"ticker", "nbShares", "price"}); err != nil {
		return fmt.Errorf("cannot write holdings header: %w", err)
	}
	for _, h := range holdings {
		if err := cw.Write([]string{h.Symbol, h.Shares.String(), h.Price.PlainString()}); err != nil {
			return fmt.Errorf("cannot write holding row for %s: %w", h.Symbol, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
