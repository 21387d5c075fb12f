package domain

import (
	"path/filepath"
	"testing"
)

func TestExtractSuffix(t *testing.T) {
	tests := []struct {
		name    string
		want    int
		wantErr bool
	}{
		{name: "Walkway1", want: 1},
		{name: "Walkway50", want: 50},
		{name: "rb007", want: 7},
		{name: "Pontoon2B3", want: 3},
		{name: "Walkway", wantErr: true},
		{name: "", wantErr: true},
		{name: "12a", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractSuffix(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractSuffix(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ExtractSuffix(%q) = %d, want %d", tt.name, got, tt.want)
			}
		})
	}
}

func TestStem(t *testing.T) {
	cases := map[string]string{
		"Walkway12": "Walkway",
		"Walkway":   "Walkway",
		"B2B":       "B2B",
		"42":        "",
	}
	for in, want := range cases {
		if got := Stem(in); got != want {
			t.Errorf("Stem(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFolderNaming(t *testing.T) {
	if got := CaseFolder(3); got != "Case03" {
		t.Errorf("CaseFolder(3) = %s", got)
	}
	if got := CaseFolder(12); got != "Case12" {
		t.Errorf("CaseFolder(12) = %s", got)
	}
	if got := RealizationFolder(2); got != "Realization002" {
		t.Errorf("RealizationFolder(2) = %s", got)
	}
	if got := RealizationFolder(15); got != "Realization015" {
		t.Errorf("RealizationFolder(15) = %s", got)
	}
	if got := RealizationTag(5, 3); got != "Case05, Realization003" {
		t.Errorf("RealizationTag(5, 3) = %s", got)
	}

	want := filepath.Join("root", "Case01", "Realization004", "Results", "Walkway7", "position.dat")
	if got := PositionPath("root", 1, 4, "Walkway7"); got != want {
		t.Errorf("PositionPath = %s, want %s", got, want)
	}
}

func TestParseRealizationTag(t *testing.T) {
	c, r, err := ParseRealizationTag(RealizationTag(3, 7))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != 3 || r != 7 {
		t.Errorf("got case %d realization %d, want 3 and 7", c, r)
	}

	for _, bad := range []string{"", "Case01", "Case01,Realization001", "Realization001, Case01"} {
		if _, _, err := ParseRealizationTag(bad); err == nil {
			t.Errorf("ParseRealizationTag(%q) expected error", bad)
		}
	}
}
