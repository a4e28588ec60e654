package match

import (
	"testing"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"AcmeBundle", "acmebundle"},
		{"acme_bundle", "acmebundle"},
		{"acme-bundle", "acmebundle"},
		{"Acme\\Entity", "acmeentity"},
		{"uploader.namer.uniqid", "uploadernameruniqid"},
		{"", ""},
		{"A", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := NormalizeIdent(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeIdent(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
