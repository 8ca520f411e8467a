package positions

import (
	"strings"
	"testing"
)

func TestWriteReport(t *testing.T) {
	holdings := []Holding{
		{Symbol: "AAA", Shares: Q(10), Price: usd(10)},
		{Symbol: "BBB", Shares: Q(10), Price: usd(30)},
	}
	targets := Targets{"AAA": {Symbol: "AAA", Target: 50, Description: "aggressive"}}

	var sb strings.Builder
	if err := WriteReport(&sb, Allocate(holdings, targets)); err != nil {
		t.Fatalf("WriteReport() error = %v", err)
	}

	want := `ticker,description,nbShares,price,currentAllocation,target,sharesToTarget
AAA,aggressive,10,10,25.00,50.00,10
BBB,,10,30,75.00,,
`
	if got := sb.String(); got != want {
		t.Errorf("WriteReport() = \n%s\n want \n%s", got, want)
	}
}

func TestWriteHoldings(t *testing.T) {
	holdings := []Holding{
		{Symbol: "VT", Shares: Q(12), Price: usd(122.80)},
		{Symbol: "ZRO", Shares: Q(3)},
	}
	var sb strings.Builder
	if err := WriteHoldings(&sb, holdings); err != nil {
		t.Fatalf("WriteHoldings() error = %v", err)
	}
	want := `ticker,nbShares,price
VT,12,122.8
ZRO,3,0
`
	if got := sb.String(); got != want {
		t.Errorf("WriteHoldings() = \n%s\n want \n%s", got, want)
	}
}
