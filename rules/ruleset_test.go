package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func writeRuleFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write rule file: %v", err)
	}
	return path
}

func TestParseNotation(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "B3/S23", want: "B3/S23"},
		{in: "b36/s23", want: "B36/S23"},
		{in: "S23/B3", want: "B3/S23"},
		{in: "B3/S", want: "B3/S"},
		{in: "B9/S23", wantErr: true},
		{in: "B3S23", wantErr: true},
		{in: "B3/X23", wantErr: true},
		{in: "B3/Sx", wantErr: true},
		{in: "B3/B36", wantErr: true},
		{in: "S23/S3", wantErr: true},
	}
	for _, tc := range cases {
		rs, err := ParseNotation(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidRule) {
				t.Errorf("ParseNotation(%q) err = %v, want ErrInvalidRule", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseNotation(%q): %v", tc.in, err)
		}
		if got := rs.String(); got != tc.want {
			t.Errorf("ParseNotation(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestLoadRuleSetCounts(t *testing.T) {
	path := writeRuleFile(t, `{"birth": [3, 6], "survive": [2, 3]}`)
	rs, err := LoadRuleSet(path)
	if err != nil {
		t.Fatalf("LoadRuleSet: %v", err)
	}
	rule := rs.Rule()
	if !rule(false, 6) {
		t.Fatal("HighLife rule must give birth on 6 neighbors")
	}
	if rule(true, 6) {
		t.Fatal("HighLife rule must not keep a cell alive on 6 neighbors")
	}
}

func TestLoadRuleSetNotation(t *testing.T) {
	path := writeRuleFile(t, `{"rule": "B2/S"}`)
	rs, err := LoadRuleSet(path)
	if err != nil {
		t.Fatalf("LoadRuleSet: %v", err)
	}
	if got := rs.String(); got != "B2/S" {
		t.Fatalf("rule = %s, want B2/S", got)
	}
}

func TestLoadRuleSetErrors(t *testing.T) {
	if _, err := LoadRuleSet(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, err := LoadRuleSet(writeRuleFile(t, `{`)); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	if _, err := LoadRuleSet(writeRuleFile(t, `{}`)); !errors.Is(err, ErrInvalidRule) {
		t.Fatalf("empty rule file err = %v, want ErrInvalidRule", err)
	}
	if _, err := LoadRuleSet(writeRuleFile(t, `{"birth": [-1]}`)); !errors.Is(err, ErrInvalidRule) {
		t.Fatalf("negative count err = %v, want ErrInvalidRule", err)
	}
}

func TestRuleOutOfRangeNeighbors(t *testing.T) {
	rule := ConwayRuleSet().Rule()
	if rule(true, 9) || rule(false, -1) {
		t.Fatal("out-of-range neighbor counts must yield a dead cell")
	}
}
