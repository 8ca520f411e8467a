// Package positions reconciles brokerage position exports from several
// institutions into a single holdings view, and reports each holding's share
// of total portfolio value against a target allocation.
//
// The core pipeline is:
//   - Classifier: gates raw ticker strings (equity, option contract,
//     excluded single stock, invalid) before any parsing.
//   - SourceFormat.Normalize: turns one tokenized export row into a Holding,
//     or into a tagged skip/malformed outcome.
//   - Merge/MergeAll: folds per-file holding lists into one list keyed by
//     symbol, summing share counts and arbitrating price discrepancies.
//   - Allocate: computes current allocation percentages and the share delta
//     needed to reach each configured target.
//
// The package never opens files, parses flags or configures logging: file
// loading lives in the brokers subpackage, and the pmg command-line tool
// wires everything together.
package positions
