package positions

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

// this file handles the target table import/export format.
// It should remain human readable, single file and easy to keep in git.

// ImportTargets imports a target table from 'r'.
//
// The format is a JSONL file, where each line is a JSON object with a
// 'ticker' property, a 'target' property holding the desired percentage of
// total portfolio value (0-100), and an optional free-text 'description'.
func ImportTargets(r io.Reader) (Targets, error) {

	type jtarget struct {
		Ticker      string  `json:"ticker"`
		Target      float64 `json:"target"`
		Description string  `json:"description,omitempty"`
	}

	targets := make(Targets)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var jt jtarget
		if err := json.Unmarshal(line, &jt); err != nil {
			return nil, fmt.Errorf("cannot parse line for target import format: %q: %w", string(line), err)
		}
		symbol := strings.ToUpper(strings.TrimSpace(jt.Ticker))
		if symbol == "" {
			return nil, fmt.Errorf("target line has no ticker: %q", string(line))
		}
		if jt.Target < 0 || jt.Target > 100 {
			return nil, fmt.Errorf("target for %s is %v, must be between 0 and 100", symbol, jt.Target)
		}
		if _, dup := targets[symbol]; dup {
			return nil, fmt.Errorf("duplicate target for %s", symbol)
		}
		targets[symbol] = TargetEntry{
			Symbol:      symbol,
			Target:      Percent(jt.Target),
			Description: jt.Description,
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read target table: %w", err)
	}
	return targets, nil
}

// ExportTargets exports the target table to 'w' in the import format, one
// entry per line, sorted by ticker.
func ExportTargets(w io.Writer, targets Targets) error {

	type jtarget struct {
		Ticker      string  `json:"ticker"`
		Target      float64 `json:"target"`
		Description string  `json:"description,omitempty"`
	}

	symbols := make([]string, 0, len(targets))
	for s := range targets {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)

	for _, s := range symbols {
		e := targets[s]
		data, err := json.Marshal(jtarget{
			Ticker:      e.Symbol,
			Target:      float64(e.Target),
			Description: e.Description,
		})
		if err != nil {
			return fmt.Errorf("cannot marshal target %q: %w", e.Symbol, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write target format: %w", err)
		}
	}
	return nil
}
