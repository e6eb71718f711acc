package usecase

import (
	"testing"

	"github.com/jackaholy/Cheminv2.0/internal/search/dto"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/cases"
)

func names(views []dto.ChemicalView) []string {
	out := make([]string, len(views))
	for i, v := range views {
		out[i] = v.ChemicalName
	}
	return out
}

func TestRank_WithQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		views []dto.ChemicalView
		want  []string
	}{
		{
			name:  "exact name before longer names",
			query: "water",
			views: []dto.ChemicalView{
				{ChemicalName: "Heavy Water", Quantity: 1},
				{ChemicalName: "Waterglass", Quantity: 1},
				{ChemicalName: "Water", Quantity: 1},
			},
			want: []string{"Water", "Waterglass", "Heavy Water"},
		},
		{
			name:  "in stock first",
			query: "water",
			views: []dto.ChemicalView{
				{ChemicalName: "Water", Quantity: 0},
				{ChemicalName: "Heavy Water", Quantity: 2},
			},
			want: []string{"Heavy Water", "Water"},
		},
		{
			name:  "longer match wins",
			query: "methanol",
			views: []dto.ChemicalView{
				{ChemicalName: "Ethanol", Quantity: 1},
				{ChemicalName: "Methanol", Quantity: 1},
			},
			want: []string{"Methanol", "Ethanol"},
		},
		{
			name:  "whitespace in query ignored",
			query: "heavy water",
			views: []dto.ChemicalView{
				{ChemicalName: "Water", Quantity: 1},
				{ChemicalName: "Heavywater", Quantity: 1},
			},
			want: []string{"Heavywater", "Water"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Rank(tt.query, tt.views)
			assert.Equal(t, tt.want, names(tt.views))
		})
	}
}

func TestRank_WithoutQuery(t *testing.T) {
	views := []dto.ChemicalView{
		{ChemicalName: "2-Propanol", AlphabeticalName: "Propanol, 2-", Quantity: 1},
		{ChemicalName: "Heavy Water", AlphabeticalName: "Water, Heavy", Quantity: 0},
		{ChemicalName: "Ethanol", AlphabeticalName: "Ethanol", Quantity: 2},
		{ChemicalName: "Acetic Acid", AlphabeticalName: "Acetic Acid", Quantity: 0},
		{ChemicalName: "acetone", Quantity: 1},
	}
	Rank("", views)
	assert.Equal(t, []string{"acetone", "Ethanol", "2-Propanol", "Acetic Acid", "Heavy Water"}, names(views))
}

func TestRank_StableForTies(t *testing.T) {
	views := []dto.ChemicalView{
		{ID: 1, ChemicalName: "Water", Quantity: 1},
		{ID: 2, ChemicalName: "Water", Quantity: 1},
		{ID: 3, ChemicalName: "Water", Quantity: 1},
	}
	Rank("water", views)
	assert.Equal(t, int64(1), views[0].ID)
	assert.Equal(t, int64(2), views[1].ID)
	assert.Equal(t, int64(3), views[2].ID)
}

func TestRank_Empty(t *testing.T) {
	views := []dto.ChemicalView{}
	Rank("water", views)
	assert.Empty(t, views)
}

func TestAlphabeticalKey(t *testing.T) {
	fold := cases.Fold()
	assert.Equal(t, "propanol", alphabeticalKey(fold, dto.ChemicalView{ChemicalName: "2-Propanol"}))
	assert.Equal(t, "waterheavy", alphabeticalKey(fold, dto.ChemicalView{ChemicalName: "Heavy Water", AlphabeticalName: "Water, Heavy"}))
}
