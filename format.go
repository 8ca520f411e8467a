package positions

import (
	"fmt"
	"strings"
)

// SkipReason tags an expected, non-error outcome for one raw row.
type SkipReason int

const (
	SkipNone SkipReason = iota
	// SkipEmptyRow is a blank row. Expected, not even worth logging.
	SkipEmptyRow
	// SkipOption is an option contract row; options never enter the
	// blended holdings.
	SkipOption
	// SkipExcluded is a denylisted single-stock row.
	SkipExcluded
	// SkipInvalidSymbol is a row whose first field is not an instrument at
	// all, typically a header or footer line of the export.
	SkipInvalidSymbol
)

func (r SkipReason) String() string {
	switch r {
	case SkipEmptyRow:
		return "empty row"
	case SkipOption:
		return "option contract"
	case SkipExcluded:
		return "excluded single stock"
	case SkipInvalidSymbol:
		return "invalid symbol"
	default:
		return "none"
	}
}

// Outcome is the tagged result of normalizing one raw row: exactly one of
// accepted (Holding set), skipped (Skip set) or malformed (Err set).
type Outcome struct {
	Holding Holding
	Skip    SkipReason
	Err     error
}

func accepted(h Holding) Outcome   { return Outcome{Holding: h} }
func skipped(r SkipReason) Outcome { return Outcome{Skip: r} }
func malformed(format string, args ...any) Outcome {
	return Outcome{Err: fmt.Errorf(format, args...)}
}

// Accepted reports whether the row produced a Holding.
func (o Outcome) Accepted() bool { return o.Err == nil && o.Skip == SkipNone }

// Malformed reports whether the row was structurally broken (missing or
// non-numeric required fields). Malformed rows are skipped and recorded,
// they never abort a run.
func (o Outcome) Malformed() bool { return o.Err != nil }

// SourceFormat describes one institution's export layout: which columns hold
// the symbol, share count and price, and how the price field is decorated.
// The set of formats is closed; adding an institution means adding a variant
// here, not another parsing function.
type SourceFormat struct {
	// Name tags the format in logs and load reports.
	Name string
	// SymbolField, SharesField and PriceField are column offsets into a
	// tokenized row.
	SymbolField int
	SharesField int
	PriceField  int
	// PriceDecoration is a prefix stripped from the price field before
	// parsing, e.g. "$".
	PriceDecoration string
	// Currency of the prices in this export.
	Currency string
}

var (
	// CharlesSchwab positions export: "Positions for account ..." banner,
	// symbol first, share count in the fourth column, "$"-prefixed price in
	// the fifth.
	CharlesSchwab = SourceFormat{
		Name:            "cs",
		SymbolField:     0,
		SharesField:     3,
		PriceField:      4,
		PriceDecoration: "$",
		Currency:        "USD",
	}
	// InteractiveBrokers positions export: symbol, quantity, price in the
	// first three columns, no decoration.
	InteractiveBrokers = SourceFormat{
		Name:        "ibkr",
		SymbolField: 0,
		SharesField: 1,
		PriceField:  2,
		Currency:    "USD",
	}
)

// Formats is the closed set of known source formats.
var Formats = []SourceFormat{CharlesSchwab, InteractiveBrokers}

// Normalize converts one tokenized export row into a Holding.
//
// The classifier runs first: option, excluded and invalid symbols propagate
// as skips before any numeric parsing is attempted, because those rows were
// never meant to become holdings. Blank rows are a skip too, not an error.
func (f SourceFormat) Normalize(c *Classifier, row []string) Outcome {
	if blankRow(row) {
		return skipped(SkipEmptyRow)
	}
	if f.SymbolField >= len(row) {
		return malformed("row has %d fields, symbol expected in field %d", len(row), f.SymbolField)
	}

	symbol := strings.TrimSpace(row[f.SymbolField])
	switch c.Classify(symbol) {
	case Option:
		return skipped(SkipOption)
	case ExcludedSingleStock:
		return skipped(SkipExcluded)
	case Invalid:
		return skipped(SkipInvalidSymbol)
	}

	if n := max(f.SharesField, f.PriceField); n >= len(row) {
		return malformed("%s row for %s has %d fields, %d required", f.Name, symbol, len(row), n+1)
	}

	shares, err := ParseShares(strings.TrimSpace(row[f.SharesField]))
	if err != nil {
		return malformed("%s row for %s: %v", f.Name, symbol, err)
	}
	price, err := ParsePrice(row[f.PriceField], f.PriceDecoration, f.Currency)
	if err != nil {
		return malformed("%s row for %s: %v", f.Name, symbol, err)
	}

	return accepted(Holding{
		Symbol: strings.ToUpper(symbol),
		Shares: shares,
		Price:  price,
	})
}

func blankRow(row []string) bool {
	for _, field := range row {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
