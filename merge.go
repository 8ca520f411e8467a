package positions

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// DefaultTolerance is the maximum relative gap accepted between two sources'
// prices for the same instrument.
const DefaultTolerance Percent = 10

// PriceDivergenceError reports that two sources disagree materially on the
// price of one instrument. Silently picking either price could misstate the
// portfolio value, so the whole reconciliation stops: a stale export or an
// unprocessed corporate action needs a human.
type PriceDivergenceError struct {
	Symbol string
	A, B   Money
}

func (e *PriceDivergenceError) Error() string {
	return fmt.Sprintf("prices for %s are not within range: %s vs %s", e.Symbol, e.A, e.B)
}

// Merge combines two holding lists into one list keyed by symbol.
//
// A symbol present in only one list is carried unchanged. A symbol present in
// both yields a new Holding whose share count is the sum of both sides. When
// both sides report a nonzero price the two must be within tolerance
// (relative to their average) and the merged price is taken from the first
// operand; out of range is a fatal *PriceDivergenceError and no result is
// returned. When exactly one side has a price the merged price stays zero:
// a half-observed price is reported as unknown rather than trusted. An empty
// position (zero shares, zero price) merges as a no-op.
//
// The result is sorted by symbol, which keeps folds over three or more lists
// deterministic: conflicts surface in first-file-to-last order.
func Merge(a, b []Holding, tolerance Percent) ([]Holding, error) {
	byA := indexBySymbol(a)
	byB := indexBySymbol(b)

	symbols := make([]string, 0, len(byA)+len(byB))
	for s := range byA {
		symbols = append(symbols, s)
	}
	for s := range byB {
		if _, dup := byA[s]; !dup {
			symbols = append(symbols, s)
		}
	}
	sort.Strings(symbols)

	merged := make([]Holding, 0, len(symbols))
	for _, s := range symbols {
		ha, inA := byA[s]
		hb, inB := byB[s]
		switch {
		case inA && inB:
			h, err := mergeOne(ha, hb, tolerance)
			if err != nil {
				return nil, err
			}
			merged = append(merged, h)
		case inA:
			merged = append(merged, ha)
		default:
			merged = append(merged, hb)
		}
	}
	return merged, nil
}

// MergeAll folds Merge over the lists in order, first file to last, so that a
// price divergence is always reported against the same pair of sources on
// every run.
func MergeAll(tolerance Percent, lists ...[]Holding) ([]Holding, error) {
	var total []Holding
	var err error
	for _, l := range lists {
		total, err = Merge(total, l, tolerance)
		if err != nil {
			return nil, err
		}
	}
	return total, nil
}

func mergeOne(a, b Holding, tolerance Percent) (Holding, error) {
	// an empty position (no shares, no price) is a no-op: merging with it
	// leaves the other side fully intact, price included.
	if b.Shares.IsZero() && b.Price.IsZero() {
		return a, nil
	}
	if a.Shares.IsZero() && a.Price.IsZero() {
		return b, nil
	}

	h := Holding{Symbol: a.Symbol, Shares: a.Shares.Add(b.Shares)}
	if !a.Price.IsZero() && !b.Price.IsZero() {
		if !pricesWithinRange(a.Price, b.Price, tolerance) {
			return Holding{}, &PriceDivergenceError{Symbol: a.Symbol, A: a.Price, B: b.Price}
		}
		h.Price = a.Price
	}
	// exactly one nonzero price: the merged price stays zero (unknown).
	// both zero: no conflict, still zero.
	return h, nil
}

// pricesWithinRange reports whether the relative difference between two
// prices, measured against their average, is within tolerance percent.
func pricesWithinRange(p1, p2 Money, tolerance Percent) bool {
	if p1.IsZero() || p2.IsZero() {
		return p1.Equal(p2)
	}
	avg := p1.value.Add(p2.value).Div(decimal.NewFromInt(2))
	diff := p1.value.Sub(p2.value).Abs()
	pct := diff.Div(avg).Mul(decimal.NewFromInt(100))
	return pct.LessThanOrEqual(decimal.NewFromFloat(float64(tolerance)))
}

func indexBySymbol(holdings []Holding) map[string]Holding {
	index := make(map[string]Holding, len(holdings))
	for _, h := range holdings {
		index[h.Symbol] = h
	}
	return index
}
