package web

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Aisha-hash/Recipe-saver/domain"
)

func TestRecipeForm_Rows(t *testing.T) {
	f := NewRecipeForm()
	assert.Equal(t, []string{""}, f.Ingredients)
	assert.Equal(t, []string{""}, f.Instructions)

	f.Ingredients[0] = "flour"
	f.AddIngredient()
	f.Ingredients[1] = "milk"
	f.AddInstruction()
	assert.Len(t, f.Ingredients, 2)
	assert.Len(t, f.Instructions, 2)

	f.RemoveIngredient(0)
	assert.Equal(t, []string{"milk"}, f.Ingredients)

	f.RemoveIngredient(5)
	assert.Equal(t, []string{"milk"}, f.Ingredients)

	f.RemoveInstruction(0)
	f.RemoveInstruction(0)
	assert.Empty(t, f.Instructions)
}

func TestRecipeForm_Apply(t *testing.T) {
	tests := []struct {
		action string
		ok     bool
		ingr   int
		instr  int
	}{
		{"add-ingredient", true, 2, 1},
		{"add-instruction", true, 1, 2},
		{"remove-ingredient:0", true, 0, 1},
		{"remove-instruction:0", true, 1, 0},
		{"remove-ingredient:x", false, 1, 1},
		{"explode:1", false, 1, 1},
		{"submit", false, 1, 1},
		{"", false, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			f := NewRecipeForm()
			assert.Equal(t, tt.ok, f.Apply(tt.action))
			assert.Len(t, f.Ingredients, tt.ingr)
			assert.Len(t, f.Instructions, tt.instr)
		})
	}
}

func TestRecipeForm_RequestAndReset(t *testing.T) {
	f := RecipeForm{Name: "Toast", Image: "http://img/toast.png", Category: "Breakfast"}

	req := f.Request()
	assert.Equal(t, domain.StringList{}, req.Ingredients)
	assert.NotNil(t, req.Instructions)
	assert.NoError(t, req.Validate())
	assert.Equal(t, "http://img/toast.png", req.Img)

	f.Reset()
	assert.Equal(t, NewRecipeForm(), f)
}
