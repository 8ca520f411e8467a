package positions

import "fmt"

type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

// PlainString returns the value without the "%" sign, as written to CSV
// output, always with two fraction digits.
func (p Percent) PlainString() string {
	return fmt.Sprintf("%.2f", p)
}
