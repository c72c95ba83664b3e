package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecipe_Validate(t *testing.T) {
	full := func() NewRecipe {
		return NewRecipe{
			Name:         "Omelette",
			Ingredients:  StringList{"eggs", "butter"},
			Instructions: StringList{"whisk", "fry"},
			Category:     "Breakfast",
		}
	}

	assert.NoError(t, full().Validate())

	tests := []struct {
		name   string
		mutate func(*NewRecipe)
	}{
		{"missing name", func(n *NewRecipe) { n.Name = "" }},
		{"missing ingredients", func(n *NewRecipe) { n.Ingredients = nil }},
		{"missing instructions", func(n *NewRecipe) { n.Instructions = nil }},
		{"missing category", func(n *NewRecipe) { n.Category = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := full()
			tt.mutate(&n)
			assert.ErrorIs(t, n.Validate(), ErrMissingFields)
		})
	}
}

func TestNewRecipe_EmptyListsAreAccepted(t *testing.T) {
	var n NewRecipe
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Water","ingredients":[],"instructions":[],"category":"Drinks"}`), &n))
	assert.NoError(t, n.Validate())
}

func TestNewRecipe_AbsentListIsNil(t *testing.T) {
	var n NewRecipe
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Toast","instructions":null,"category":"Breakfast"}`), &n))
	assert.Nil(t, n.Ingredients)
	assert.Nil(t, n.Instructions)
	assert.ErrorIs(t, n.Validate(), ErrMissingFields)
}

func TestStringList_DecodesSingleString(t *testing.T) {
	var r Recipe
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"name":"Tea","ingredients":["tea"],"instructions":"steep for 3 minutes","category":"Drinks"}`), &r))
	assert.Equal(t, StringList{"steep for 3 minutes"}, r.Instructions)
}

func TestStringList_RejectsOtherTypes(t *testing.T) {
	var l StringList
	assert.Error(t, json.Unmarshal([]byte(`42`), &l))
}

func TestRecipe_EncodesNilListsAsArrays(t *testing.T) {
	data, err := json.Marshal(Recipe{ID: 7, Name: "Air", Category: "Misc"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"name":"Air","ingredients":[],"instructions":[],"category":"Misc"}`, string(data))
}

func TestNewRecipe_WithIDCopiesLists(t *testing.T) {
	n := NewRecipe{Name: "Soup", Ingredients: StringList{"water"}, Instructions: StringList{"boil"}, Category: "Lunch", Img: "http://img/soup.png"}
	r := n.WithID(42)
	n.Ingredients[0] = "stock"

	assert.Equal(t, int64(42), r.ID)
	assert.Equal(t, StringList{"water"}, r.Ingredients)
	assert.Equal(t, "http://img/soup.png", r.Img)
}
