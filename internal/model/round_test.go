package model

import "testing"

func TestParseOutcome(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Outcome
		wantErr bool
	}{
		{"player", "P", OutcomePlayer, false},
		{"banker", "B", OutcomeBanker, false},
		{"tie", "T", OutcomeTie, false},
		{"empty", "", "", true},
		{"lowercase", "p", "", true},
		{"unknown", "X", "", true},
		{"word", "Player", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOutcome(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOutcome(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseOutcome(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
