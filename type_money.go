package positions

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a per-share price or a portfolio value.
// A zero value means "unknown/unobserved", not free.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// ParsePrice parses a price field after stripping its source decoration
// (e.g. a leading "$" on Charles Schwab exports). Negative prices are
// rejected; zero is valid and means "unknown".
func ParsePrice(s, decoration, currency string) (Money, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), decoration)
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return Money{}, fmt.Errorf("invalid price %q: %w", s, err)
	}
	if d.IsNegative() {
		return Money{}, fmt.Errorf("invalid price %q: negative", s)
	}
	return Money{value: d, cur: currency}, nil
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the currency-formatted representation, e.g. "$1,234.00".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// PlainString returns the bare decimal amount, as written to CSV output.
func (m Money) PlainString() string { return m.value.String() }

func (m Money) Currency() string           { return m.cur }
func (m Money) Equal(n Money) bool         { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool               { return m.value.IsZero() }
func (m Money) Add(n Money) Money          { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money          { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }
func (m Money) Mul(q Quantity) Money       { return Money{value: m.value.Mul(q.value), cur: m.cur} }
func (m Money) DivPrice(n Money) Quantity  { return Quantity{value: m.value.Div(n.value)} }

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}
