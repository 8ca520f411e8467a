package positions

import (
	"sort"

	"github.com/shopspring/decimal"
)

// TargetEntry is the desired allocation for one symbol.
type TargetEntry struct {
	Symbol      string
	Target      Percent // 0-100, share of total portfolio value
	Description string
}

// Targets maps each symbol to its desired allocation.
type Targets map[string]TargetEntry

// TargetSumStatus is the result of validating a target table's percentages.
type TargetSumStatus int

const (
	// TargetSumExact : the targets sum to exactly 100%.
	TargetSumExact TargetSumStatus = iota
	// TargetSumUnder : the targets sum below 100%, worth a warning.
	TargetSumUnder
	// TargetSumOver : the targets sum above 100%, an error condition. It is
	// still advisory: the report is produced anyway.
	TargetSumOver
)

// Validate sums the target percentages over the whole table. This is a
// pre-check on the table alone, independent of any holdings, and it never
// blocks the report.
func (t Targets) Validate() (sum Percent, status TargetSumStatus) {
	for _, e := range t {
		sum += e.Target
	}
	switch {
	case sum.Equal(100):
		return sum, TargetSumExact
	case sum > 100:
		return sum, TargetSumOver
	default:
		return sum, TargetSumUnder
	}
}

// ReportRow is one line of the allocation report.
type ReportRow struct {
	Ticker      string
	Description string
	Shares      Quantity
	Price       Money
	// Current is this holding's share of total portfolio value.
	Current Percent
	// Target is only meaningful when HasTarget is set; a held symbol with no
	// configured target is a reportable, non-fatal condition.
	Target    Percent
	HasTarget bool
	// SharesToTarget is the whole-share delta to buy (positive) or sell
	// (negative) to reach the target. Only meaningful when HasDelta is set,
	// which requires a target and a known (nonzero) price.
	SharesToTarget Quantity
	HasDelta       bool
}

// TotalValue is the portfolio value over all holdings. Zero-price holdings
// contribute nothing.
func TotalValue(holdings []Holding) Money {
	total := M(0, "USD")
	for _, h := range holdings {
		total = total.Add(h.Price.Mul(h.Shares))
	}
	return total
}

// Allocate computes the allocation report for a merged holding list against a
// target table.
//
// Each holding's current allocation is its market value as a percentage of
// the total (zero when the total itself is zero). SharesToTarget is
// round((targetValue - currentValue) / price), rounded half away from zero;
// the original tool was ambiguous between truncation and rounding, this
// implementation commits to half-away-from-zero.
//
// Allocate is pure: rows come out sorted by ticker, so two runs over the same
// inputs serialize byte-identically.
func Allocate(holdings []Holding, targets Targets) []ReportRow {
	total := TotalValue(holdings)
	hundred := decimal.NewFromInt(100)

	rows := make([]ReportRow, 0, len(holdings))
	for _, h := range holdings {
		row := ReportRow{
			Ticker: h.Symbol,
			Shares: h.Shares,
			Price:  h.Price,
		}

		value := h.Price.Mul(h.Shares)
		if !total.IsZero() {
			row.Current = Percent(value.value.Div(total.value).Mul(hundred).InexactFloat64())
		}

		if entry, ok := targets[h.Symbol]; ok {
			row.Description = entry.Description
			row.Target = entry.Target
			row.HasTarget = true

			if !h.Price.IsZero() {
				targetValue := Money{value: total.value.Mul(decimal.NewFromFloat(float64(entry.Target))).Div(hundred), cur: total.cur}
				row.SharesToTarget = targetValue.Sub(value).DivPrice(h.Price).Round()
				row.HasDelta = true
			}
		}

		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Ticker < rows[j].Ticker })
	return rows
}
