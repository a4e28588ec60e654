package match

import (
	"testing"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"orm", "orm", 0},
		{"", "abc", 3},
		{"abc", "", 3},

		{"a", "b", 1},
		{"a", "ab", 1},
		{"ab", "a", 1},

		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},

		// case-sensitive
		{"ORM", "orm", 3},

		// typical config typos
		{"orn", "orm", 1},
		{"mongo", "mongodb", 2},
		{"AcmeBundel", "AcmeBundle", 2},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := Levenshtein(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected float64
	}{
		{"", "", 1.0},
		{"abc", "abc", 1.0},
		{"abc", "", 0.0},
		{"abcd", "abce", 0.75},
		{"ab", "cd", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := Similarity(tt.a, tt.b)
			if diff := result - tt.expected; diff < -0.001 || diff > 0.001 {
				t.Errorf("Similarity(%q, %q) = %f, want %f", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestNormalizedSimilarity(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		minScore float64
	}{
		{"AcmeBundle", "acme_bundle", 1.0},
		{"doctrine-mongodb", "DoctrineMongoDB", 1.0},
		{"AcmeBundel", "AcmeBundle", 0.7},
		{"propel", "phpcr", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := NormalizedSimilarity(tt.a, tt.b)
			if result < tt.minScore {
				t.Errorf("NormalizedSimilarity(%q, %q) = %f, want >= %f", tt.a, tt.b, result, tt.minScore)
			}
		})
	}
}

func BenchmarkLevenshtein(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Levenshtein("AcmeUserBundle", "AcmeUsersBundle")
	}
}
