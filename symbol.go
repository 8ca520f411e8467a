package positions

import (
	"regexp"
	"strings"
)

// Class is the classification of a raw ticker string.
type Class int

const (
	// Invalid does not match any known instrument notation. Callers skip the
	// row and keep going, they never abort the run.
	Invalid Class = iota
	// Equity is a plain tradeable equity or ETF ticker.
	Equity
	// Option is an option contract in "SPY 12/19/2025 550.00 P" notation.
	Option
	// ExcludedSingleStock is a valid ticker kept out of the blended
	// allocation report on purpose.
	ExcludedSingleStock
)

func (c Class) String() string {
	switch c {
	case Equity:
		return "equity"
	case Option:
		return "option"
	case ExcludedSingleStock:
		return "excluded single stock"
	default:
		return "invalid"
	}
}

var (
	// 2-5 letters, or share-class notation like BRK/B.
	equityPattern = regexp.MustCompile(`^(?:[A-Za-z]{2,5}|\w+/\w+)$`)
	// underlying, expiry as M/D/YYYY, strike with two fraction digits, P or C.
	optionPattern = regexp.MustCompile(`^[A-Z]+\s+\d{1,2}/\d{1,2}/\d{4}\s+\d+\.\d{2}\s+[PC]$`)
)

// DefaultExclusions lists concentrated single-name positions that must never
// enter the blended allocation report, typically employer stock held outside
// the target table.
var DefaultExclusions = []string{"AMZN", "TSLA"}

// Classifier decides what a raw ticker string represents before any numeric
// parsing is attempted on its row.
type Classifier struct {
	excluded map[string]struct{}
}

// NewClassifier returns a classifier using DefaultExclusions plus any extra
// denylisted symbols. Membership is case-insensitive.
func NewClassifier(extra ...string) *Classifier {
	c := &Classifier{excluded: make(map[string]struct{})}
	for _, s := range DefaultExclusions {
		c.excluded[strings.ToUpper(s)] = struct{}{}
	}
	for _, s := range extra {
		if s = strings.TrimSpace(s); s != "" {
			c.excluded[strings.ToUpper(s)] = struct{}{}
		}
	}
	return c
}

// Classify reports the class of a raw ticker string.
//
// The option and denylist checks run before the generic equity pattern: an
// option string would fail the equity pattern anyway, but a denylisted
// symbol looks like a valid equity and must still be excluded.
func (c *Classifier) Classify(raw string) Class {
	s := strings.TrimSpace(raw)
	if optionPattern.MatchString(s) {
		return Option
	}
	if _, ok := c.excluded[strings.ToUpper(s)]; ok {
		return ExcludedSingleStock
	}
	if equityPattern.MatchString(s) {
		return Equity
	}
	return Invalid
}
