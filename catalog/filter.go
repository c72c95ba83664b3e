// Package catalog holds the list-view predicates: free-text search over
// names and ingredients, and the category filter.
package catalog

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/Aisha-hash/Recipe-saver/domain"
)

// AllCategories is the category option that disables category filtering.
const AllCategories = "All"

// folder wraps a fresh Caser; a Caser must not be shared between goroutines.
type folder struct {
	c cases.Caser
}

func newFolder() folder {
	return folder{c: cases.Fold()}
}

func (f folder) fold(s string) string {
	return f.c.String(s)
}

// Matches reports whether term occurs, ignoring case, in the recipe name or
// in any ingredient. An empty term matches every recipe.
func Matches(r domain.Recipe, term string) bool {
	return newFolder().matches(r, term)
}

func (f folder) matches(r domain.Recipe, term string) bool {
	if term == "" {
		return true
	}
	needle := f.fold(term)
	if strings.Contains(f.fold(r.Name), needle) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(f.fold(ing), needle) {
			return true
		}
	}
	return false
}

// InCategory reports whether the recipe belongs to category, ignoring case.
// AllCategories and the empty string match everything.
func InCategory(r domain.Recipe, category string) bool {
	return newFolder().inCategory(r, category)
}

func (f folder) inCategory(r domain.Recipe, category string) bool {
	if category == "" || category == AllCategories {
		return true
	}
	return f.fold(r.Category) == f.fold(category)
}

// Filter applies the search term and then the category filter, keeping order.
func Filter(recipes []domain.Recipe, term, category string) []domain.Recipe {
	f := newFolder()
	out := make([]domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if f.matches(r, term) && f.inCategory(r, category) {
			out = append(out, r)
		}
	}
	return out
}

// Categories returns the filter options: AllCategories followed by each
// distinct category in first-seen order.
func Categories(recipes []domain.Recipe) []string {
	seen := make(map[string]bool, len(recipes))
	out := []string{AllCategories}
	for _, r := range recipes {
		if seen[r.Category] {
			continue
		}
		seen[r.Category] = true
		out = append(out, r.Category)
	}
	return out
}
