// Package brokers loads brokerage position export files, detects which
// institution produced them, and feeds their rows through the normalizer.
//
// It is the only place that touches the filesystem and the CSV codec: the
// core packages consume tokenized rows and produce values.
package brokers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/seblgr/positions"
)

// ErrUnknownFormat is returned when a file's first line matches no known
// institution's export banner.
var ErrUnknownFormat = errors.New("unknown positions file format")

// SkippedRow records one row the normalizer set aside for an expected reason.
type SkippedRow struct {
	Line   int
	Reason positions.SkipReason
	Row    []string
}

// MalformedRow records one structurally broken row. Malformed rows are
// recorded and skipped, they never abort a load.
type MalformedRow struct {
	Line int
	Err  error
	Row  []string
}

// LoadReport describes everything that happened while loading one file.
// The caller decides how to surface it; this package does not log.
type LoadReport struct {
	File      string
	Format    string
	Accepted  int
	Skipped   []SkippedRow
	Malformed []MalformedRow
}

// Detect identifies the source format from a file's first line.
// Charles Schwab exports open with a "Positions for account ..." banner,
// Interactive Brokers exports with a "Symbol" column header.
func Detect(firstLine string) (positions.SourceFormat, error) {
	line := strings.TrimSpace(firstLine)
	stripped := strings.TrimPrefix(line, `"`)
	switch {
	case strings.HasPrefix(stripped, "Positions for account"):
		return positions.CharlesSchwab, nil
	case strings.HasPrefix(stripped, "Symbol"):
		return positions.InteractiveBrokers, nil
	}
	return positions.SourceFormat{}, fmt.Errorf("%w: first line %q", ErrUnknownFormat, firstLine)
}

// Load reads a positions file, auto-detecting its format.
func Load(c *positions.Classifier, filename string) ([]positions.Holding, *LoadReport, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot read positions file: %w", err)
	}
	first, _, _ := strings.Cut(string(data), "\n")
	format, err := Detect(first)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot detect format of %q: %w", filename, err)
	}
	holdings, report, err := Parse(c, format, strings.NewReader(string(data)))
	if report != nil {
		report.File = filename
	}
	return holdings, report, err
}

// Parse tokenizes an export with the standard CSV codec and normalizes every
// row. Interactive Brokers decorates each field with literal quotes, so all
// fields are trimmed of surrounding quotes and spaces before normalization.
func Parse(c *positions.Classifier, format positions.SourceFormat, r io.Reader) ([]positions.Holding, *LoadReport, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	report := &LoadReport{Format: format.Name}
	var holdings []positions.Holding

	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			report.Malformed = append(report.Malformed, MalformedRow{Line: line, Err: err})
			continue
		}
		for i, field := range record {
			record[i] = strings.TrimSpace(strings.Trim(strings.TrimSpace(field), `"`))
		}

		o := format.Normalize(c, record)
		switch {
		case o.Malformed():
			report.Malformed = append(report.Malformed, MalformedRow{Line: line, Err: o.Err, Row: record})
		case o.Accepted():
			holdings = append(holdings, o.Holding)
			report.Accepted++
		case o.Skip == positions.SkipEmptyRow:
			// blank rows are expected and not worth recording
		default:
			report.Skipped = append(report.Skipped, SkippedRow{Line: line, Reason: o.Skip, Row: record})
		}
	}
	return holdings, report, nil
}
