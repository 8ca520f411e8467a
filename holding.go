package positions

// Holding is one instrument's aggregated position.
// At most one Holding per Symbol exists in any list passed to or produced by
// Merge. Holdings are value objects: Merge produces new instances rather than
// mutating its inputs.
type Holding struct {
	// Symbol is the normalized uppercase ticker, unique within a merged list.
	Symbol string
	// Shares is the signed position size, in whole shares.
	Shares Quantity
	// Price is the last observed per-share price. Zero means unknown.
	Price Money
}
