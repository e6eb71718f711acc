package search

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterTerms(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		synonyms []string
		want     []string
	}{
		{
			name:     "query only",
			query:    "acetone",
			synonyms: nil,
			want:     []string{"acetone"},
		},
		{
			name:     "short synonyms dropped",
			query:    "water",
			synonyms: []string{"H2O", "Dihydrogen oxide", "aqua", "OH2"},
			want:     []string{"Dihydrogen oxide", "aqua", "water"},
		},
		{
			name:     "short query kept",
			query:    "Fe",
			synonyms: []string{"Iron", "Fe"},
			want:     []string{"Fe", "Iron"},
		},
		{
			name:     "duplicates collapse",
			query:    "ethanol",
			synonyms: []string{"ethanol", "Ethyl alcohol", "Ethyl alcohol", ""},
			want:     []string{"Ethyl alcohol", "ethanol"},
		},
		{
			name:     "length counts runes",
			query:    "x",
			synonyms: []string{"αβγ", "αβγδ"},
			want:     []string{"x", "αβγδ"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterTerms(tt.query, slices.Values(tt.synonyms))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterTerms_NilSequence(t *testing.T) {
	assert.Equal(t, []string{"acetone"}, FilterTerms("acetone", nil))
	assert.Empty(t, FilterTerms("", nil))
}

func TestKeepTerm(t *testing.T) {
	assert.True(t, KeepTerm("h2", "h2"))
	assert.False(t, KeepTerm("water", "H2O"))
	assert.True(t, KeepTerm("water", "aqua"))
}
