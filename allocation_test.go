package positions

import (
	"bytes"
	"testing"
)

func TestAllocateCurrentPercent(t *testing.T) {
	holdings := []Holding{
		{Symbol: "AAA", Shares: Q(10), Price: usd(10)},
		{Symbol: "BBB", Shares: Q(10), Price: usd(30)},
	}
	rows := Allocate(holdings, nil)

	if len(rows) != 2 {
		t.Fatalf("Allocate() has %d rows, want 2", len(rows))
	}
	if !rows[0].Current.Equal(25) {
		t.Errorf("AAA current = %s, want 25.00%%", rows[0].Current)
	}
	if !rows[1].Current.Equal(75) {
		t.Errorf("BBB current = %s, want 75.00%%", rows[1].Current)
	}
}

func TestAllocateSharesToTarget(t *testing.T) {
	// total value $400, AAA at $100 with a 50% target: $100 to buy at $10
	holdings := []Holding{
		{Symbol: "AAA", Shares: Q(10), Price: usd(10)},
		{Symbol: "BBB", Shares: Q(10), Price: usd(30)},
	}
	targets := Targets{
		"AAA": {Symbol: "AAA", Target: 50, Description: "aggressive"},
	}
	rows := Allocate(holdings, targets)

	aaa := rows[0]
	if !aaa.HasTarget || !aaa.Target.Equal(50) || aaa.Description != "aggressive" {
		t.Errorf("AAA row = %+v, want 50%% target", aaa)
	}
	if !aaa.HasDelta || !aaa.SharesToTarget.Equal(Q(10)) {
		t.Errorf("AAA sharesToTarget = %s, want 10", aaa.SharesToTarget)
	}

	bbb := rows[1]
	if bbb.HasTarget || bbb.HasDelta {
		t.Errorf("BBB row = %+v, want missing target with no delta", bbb)
	}
}

func TestAllocateRoundsHalfAwayFromZero(t *testing.T) {
	// total $300, target 50% => $150 target value, $100 held, $50 gap at $33:
	// 1.515... rounds to 2
	holdings := []Holding{
		{Symbol: "AAA", Shares: Q(100), Price: usd(1)},
		{Symbol: "BBB", Shares: Q(100), Price: usd(2)},
	}
	targets := Targets{"AAA": {Symbol: "AAA", Target: 50}}
	rows := Allocate(holdings, targets)
	if !rows[0].SharesToTarget.Equal(Q(50)) {
		t.Errorf("AAA sharesToTarget = %s, want 50", rows[0].SharesToTarget)
	}

	holdings = []Holding{
		{Symbol: "CCC", Shares: Q(1), Price: usd(100)},
		{Symbol: "DDD", Shares: Q(1), Price: usd(100)},
	}
	targets = Targets{"CCC": {Symbol: "CCC", Target: 25}}
	rows = Allocate(holdings, targets)
	// target $50, held $100, gap -$50 at $100 a share: -0.5 rounds to -1
	if !rows[0].SharesToTarget.Equal(Q(-1)) {
		t.Errorf("CCC sharesToTarget = %s, want -1 (half away from zero)", rows[0].SharesToTarget)
	}
}

func TestAllocateUnknownPrice(t *testing.T) {
	holdings := []Holding{
		{Symbol: "AAA", Shares: Q(10)}, // price unknown
		{Symbol: "BBB", Shares: Q(10), Price: usd(30)},
	}
	targets := Targets{"AAA": {Symbol: "AAA", Target: 50}}
	rows := Allocate(holdings, targets)

	aaa := rows[0]
	if !aaa.Current.Equal(0) {
		t.Errorf("AAA current = %s, want 0.00%% for unknown price", aaa.Current)
	}
	if !aaa.HasTarget {
		t.Error("AAA should keep its target even with an unknown price")
	}
	if aaa.HasDelta {
		t.Error("AAA sharesToTarget must be absent without a price")
	}
}

func TestAllocateZeroTotal(t *testing.T) {
	holdings := []Holding{{Symbol: "AAA", Shares: Q(10)}}
	rows := Allocate(holdings, nil)
	if !rows[0].Current.Equal(0) {
		t.Errorf("current = %s, want 0.00%% when total value is zero", rows[0].Current)
	}
}

func TestAllocateIdempotent(t *testing.T) {
	holdings := []Holding{
		{Symbol: "VT", Shares: Q(12), Price: usd(122.80)},
		{Symbol: "BND", Shares: Q(30), Price: usd(72.15)},
	}
	targets := Targets{
		"VT":  {Symbol: "VT", Target: 60, Description: "world stocks"},
		"BND": {Symbol: "BND", Target: 40, Description: "bonds"},
	}

	var first, second bytes.Buffer
	if err := WriteReport(&first, Allocate(holdings, targets)); err != nil {
		t.Fatalf("WriteReport() error = %v", err)
	}
	if err := WriteReport(&second, Allocate(holdings, targets)); err != nil {
		t.Fatalf("WriteReport() error = %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("two runs over the same input must serialize byte-identically")
	}
}

func TestTargetsValidate(t *testing.T) {
	tests := []struct {
		name    string
		targets Targets
		sum     Percent
		status  TargetSumStatus
	}{
		{"exact", Targets{
			"AAA": {Target: 60}, "BBB": {Target: 40},
		}, 100, TargetSumExact},
		{"under", Targets{
			"AAA": {Target: 60}, "BBB": {Target: 30},
		}, 90, TargetSumUnder},
		{"over", Targets{
			"AAA": {Target: 60}, "BBB": {Target: 45},
		}, 105, TargetSumOver},
		{"empty", Targets{}, 0, TargetSumUnder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum, status := tt.targets.Validate()
			if !sum.Equal(tt.sum) || status != tt.status {
				t.Errorf("Validate() = (%s, %v), want (%s, %v)", sum, status, tt.sum, tt.status)
			}
		})
	}
}
