package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	drivers := []string{"mongodb", "orm", "phpcr", "propel"}
	modules := []string{"AcmeBlogBundle", "AcmeUserBundle", "FrameworkBundle"}

	tests := []struct {
		name     string
		input    string
		known    []string
		expected []string
	}{
		{"typo in driver", "orn", drivers, []string{"orm"}},
		{"truncated driver", "mongo", drivers, []string{"mongodb"}},
		{"module typo", "AcmeUserBundel", modules, []string{"AcmeUserBundle"}},
		{"normalized exact match wins alone", "acme_user_bundle", modules, []string{"AcmeUserBundle"}},
		{"nothing close", "zzz", modules, nil},
		{"no candidates", "orm", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Suggest(tt.input, tt.known))
		})
	}
}

func TestRank_Order(t *testing.T) {
	ranked := Rank("phpcr", []string{"propel", "phpcr", "orm"})

	assert.Equal(t, "phpcr", ranked[0].Name)
	assert.InDelta(t, 1.0, ranked[0].Score, 0.0001)

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
}
