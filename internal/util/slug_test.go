package util

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		// Basic derivation
		{"lowercase", "ACME", "acme"},
		{"spaces to dashes", "feature requests", "feature-requests"},
		{"already a slug", "feature-requests", "feature-requests"},

		// Non-alphanumeric runs collapse to one dash
		{"trailing punctuation", "Acme Inc.", "acme-inc"},
		{"mixed punctuation run", "Bugs & Issues", "bugs-issues"},
		{"multiple spaces", "slow   burn", "slow-burn"},
		{"unicode removal", "café", "caf"},

		// Dash trimming
		{"leading run", "--acme", "acme"},
		{"trailing run", "acme!!!", "acme"},
		{"surrounded", "  Spaced  Out  ", "spaced-out"},

		// Edge cases
		{"empty string", "", ""},
		{"only special chars", "!@#$%", ""},
		{"numbers allowed", "top10", "top10"},
		{"mixed case with numbers", "Top 10 Boards", "top-10-boards"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Slugify(tt.input)
			if result != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
