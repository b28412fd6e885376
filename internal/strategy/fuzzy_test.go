package strategy

import (
	"math"
	"testing"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		candidate string
		want      float64
	}{
		{"exact", "Submit", "Submit", 1.0},
		{"case insensitive", "submit", "SUBMIT", 1.0},
		{"query inside candidate", "Submit", "Submit order", 1.0},
		{"candidate inside query", "Submit order now", "order", 1.0},
		{"both empty", "", "", 1.0},
		{"query empty", "", "Submit", 0.0},
		{"candidate empty", "Submit", "", 0.0},
		{"levenshtein ratio", "kitten", "sitting", 1.0 - 3.0/7.0},
		{"disjoint", "abc", "xyz", 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Similarity(tt.query, tt.candidate)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Similarity(%q, %q) = %v, want %v", tt.query, tt.candidate, got, tt.want)
			}
		})
	}
}

func TestMatches(t *testing.T) {
	if !Matches("login", "Login to your account", 0.9) {
		t.Error("containment match rejected at 0.9")
	}
	if Matches("kitten", "sitting", 0.72) {
		t.Error("ratio 0.571 accepted at threshold 0.72")
	}
	if !Matches("kitten", "sitting", 0.5) {
		t.Error("ratio 0.571 rejected at threshold 0.5")
	}
}
