package positions

import "testing"

func TestClassify(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		raw  string
		want Class
	}{
		{"AAPL", Equity},
		{"VT", Equity},
		{"BRK/B", Equity},
		{"SPY 12/19/2025 550.00 P", Option},
		{"QQQ 1/3/2026 480.50 C", Option},
		{"AMZN", ExcludedSingleStock},
		{"amzn", ExcludedSingleStock},
		{"1AAPL", Invalid},
		{"A", Invalid},
		{"TOOLONG", Invalid},
		{"", Invalid},
		{"Positions for account Brokerage", Invalid},
	}
	for _, tt := range tests {
		if got := c.Classify(tt.raw); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestClassifyExtraExclusions(t *testing.T) {
	c := NewClassifier("nvda")

	if got := c.Classify("NVDA"); got != ExcludedSingleStock {
		t.Errorf("Classify(NVDA) = %v, want excluded", got)
	}
	// the default denylist still applies
	if got := c.Classify("TSLA"); got != ExcludedSingleStock {
		t.Errorf("Classify(TSLA) = %v, want excluded", got)
	}
}

func TestClassifyOptionBeforeEquity(t *testing.T) {
	// an option's underlying alone is a fine equity, the full contract
	// notation is not
	c := NewClassifier()
	if got := c.Classify("SPY"); got != Equity {
		t.Errorf("Classify(SPY) = %v, want equity", got)
	}
	if got := c.Classify("SPY 12/19/2025 550.00 X"); got != Invalid {
		t.Errorf("Classify with bad contract letter = %v, want invalid", got)
	}
	if got := c.Classify("SPY 12/19/2025 550.0 P"); got != Invalid {
		t.Errorf("Classify with one-digit strike fraction = %v, want invalid", got)
	}
}
