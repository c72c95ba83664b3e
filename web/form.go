// web/form.go
package web

import (
	"strconv"
	"strings"

	"github.com/Aisha-hash/Recipe-saver/domain"
)

// RecipeForm is the add-recipe form state, including the dynamic
// ingredient and instruction rows.
type RecipeForm struct {
	Name         string
	Image        string
	Category     string
	Ingredients  []string
	Instructions []string
}

// NewRecipeForm returns an empty form with one blank row per list.
func NewRecipeForm() RecipeForm {
	return RecipeForm{
		Ingredients:  []string{""},
		Instructions: []string{""},
	}
}

func (f *RecipeForm) Reset() {
	*f = NewRecipeForm()
}

func (f *RecipeForm) AddIngredient() {
	f.Ingredients = append(f.Ingredients, "")
}

func (f *RecipeForm) AddInstruction() {
	f.Instructions = append(f.Instructions, "")
}

func (f *RecipeForm) RemoveIngredient(i int) {
	f.Ingredients = removeAt(f.Ingredients, i)
}

func (f *RecipeForm) RemoveInstruction(i int) {
	f.Instructions = removeAt(f.Instructions, i)
}

// Request converts the form into a create payload. Lists are never nil so
// an emptied list is still sent as [].
func (f RecipeForm) Request() domain.NewRecipe {
	return domain.NewRecipe{
		Name:         f.Name,
		Ingredients:  append(domain.StringList{}, f.Ingredients...),
		Instructions: append(domain.StringList{}, f.Instructions...),
		Category:     f.Category,
		Img:          f.Image,
	}
}

// Apply performs a row edit named by a submit button value, such as
// "add-ingredient" or "remove-instruction:2". It reports false for
// anything that is not a row edit.
func (f *RecipeForm) Apply(action string) bool {
	switch action {
	case "add-ingredient":
		f.AddIngredient()
		return true
	case "add-instruction":
		f.AddInstruction()
		return true
	}

	name, arg, ok := strings.Cut(action, ":")
	if !ok {
		return false
	}
	i, err := strconv.Atoi(arg)
	if err != nil {
		return false
	}
	switch name {
	case "remove-ingredient":
		f.RemoveIngredient(i)
	case "remove-instruction":
		f.RemoveInstruction(i)
	default:
		return false
	}
	return true
}

func removeAt(list []string, i int) []string {
	if i < 0 || i >= len(list) {
		return list
	}
	out := make([]string, 0, len(list)-1)
	out = append(out, list[:i]...)
	return append(out, list[i+1:]...)
}
