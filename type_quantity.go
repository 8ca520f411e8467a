package positions

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Quantity is an exact count of shares. Brokerage exports in scope only
// carry whole shares, but the type keeps full decimal precision so that
// intermediate allocation math never truncates.
type Quantity struct {
	value decimal.Decimal
}

func Q[T float64 | int | int64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

// ParseShares parses a share count from an export field. The share-count
// domain is whole (possibly negative) shares, so fractional values are
// rejected.
func ParseShares(s string) (Quantity, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Quantity{}, fmt.Errorf("invalid share count %q: %w", s, err)
	}
	if !d.IsInteger() {
		return Quantity{}, fmt.Errorf("invalid share count %q: fractional shares are not supported", s)
	}
	return Quantity{value: d}, nil
}

func (q Quantity) Equal(p Quantity) bool   { return q.value.Equal(p.value) }
func (q Quantity) Add(p Quantity) Quantity { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) IsZero() bool            { return q.value.IsZero() }
func (q Quantity) String() string          { return q.value.String() }

// Round rounds to the nearest whole share, half away from zero.
func (q Quantity) Round() Quantity { return Quantity{value: q.value.Round(0)} }

// SignedString renders the quantity with an explicit sign, or "-" for zero.
// Used by reports where the sign means buy (+) or sell (-).
func (q Quantity) SignedString() string {
	if q.value.IsZero() {
		return "-"
	}
	if q.value.IsPositive() {
		return "+" + q.value.String()
	}
	return q.value.String()
}
