package positions

import (
	"strings"
	"testing"
)

// TestImportExportTargets creates a very basic check that import is working
// as expected and that the format is stable.
func TestImportExportTargets(t *testing.T) {
	sample := `
{"ticker":"BND","target":40,"description":"VANGUARD TOTAL BOND MARKET ETF"}
{"ticker":"VT","target":60,"description":"VANGUARD TOTAL WORLD STOCK ETF"}
`
	sample = strings.Trim(sample, "\n\t")

	targets, err := ImportTargets(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("cannot import sample: %v", err)
	}
	if len(targets) != 2 {
		t.Fatalf("imported %d targets, want 2", len(targets))
	}
	if e := targets["VT"]; !e.Target.Equal(60) || e.Description != "VANGUARD TOTAL WORLD STOCK ETF" {
		t.Errorf("VT entry = %+v", e)
	}

	sb := strings.Builder{}
	if err := ExportTargets(&sb, targets); err != nil {
		t.Errorf("ExportTargets() has error %v", err)
	}
	got := strings.Trim(sb.String(), "\n\t")
	if got != sample {
		t.Errorf("export/import sequence is not stable got \n%s\n want \n%s\n", got, sample)
	}
}

func TestImportTargetsNormalizesTicker(t *testing.T) {
	targets, err := ImportTargets(strings.NewReader(`{"ticker":" vt ","target":60}`))
	if err != nil {
		t.Fatalf("ImportTargets() error = %v", err)
	}
	if _, ok := targets["VT"]; !ok {
		t.Errorf("targets = %v, want key VT", targets)
	}
}

func TestImportTargetsRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"bad json", `{"ticker":"VT",`},
		{"missing ticker", `{"target":60}`},
		{"target over 100", `{"ticker":"VT","target":140}`},
		{"negative target", `{"ticker":"VT","target":-5}`},
		{"duplicate", "{\"ticker\":\"VT\",\"target\":30}\n{\"ticker\":\"VT\",\"target\":30}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ImportTargets(strings.NewReader(tt.input)); err == nil {
				t.Errorf("ImportTargets(%q) should fail", tt.input)
			}
		})
	}
}
