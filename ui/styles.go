// Package ui provides terminal styling for CLI output.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Aisha-hash/Recipe-saver/domain"
)

var (
	ColorAccent = lipgloss.AdaptiveColor{Light: "#825f56", Dark: "#e0b8ad"}
	ColorMuted  = lipgloss.AdaptiveColor{Light: "#828c99", Dark: "#6c7680"}
	ColorFav    = lipgloss.AdaptiveColor{Light: "#f2ae49", Dark: "#ffb454"}
)

var (
	TitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	HeaderStyle = lipgloss.NewStyle().Bold(true)
	MutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	FavStyle    = lipgloss.NewStyle().Foreground(ColorFav)
)

const IconFavorite = "★"

// RenderList writes one line per recipe: id, name and category.
func RenderList(w io.Writer, recipes []domain.Recipe, isFavorite func(int64) bool) {
	if len(recipes) == 0 {
		fmt.Fprintln(w, MutedStyle.Render("No recipes found matching your search and filter."))
		return
	}
	for _, r := range recipes {
		mark := " "
		if isFavorite != nil && isFavorite(r.ID) {
			mark = FavStyle.Render(IconFavorite)
		}
		fmt.Fprintf(w, "%s %s  %s %s\n",
			mark,
			MutedStyle.Render(fmt.Sprintf("%d", r.ID)),
			TitleStyle.Render(r.Name),
			MutedStyle.Render("("+r.Category+")"),
		)
	}
}

// RenderRecipe writes the full detail view of one recipe.
func RenderRecipe(w io.Writer, r domain.Recipe, favorite bool) {
	title := TitleStyle.Render(r.Name)
	if favorite {
		title += " " + FavStyle.Render(IconFavorite)
	}
	fmt.Fprintln(w, title)
	fmt.Fprintf(w, "%s %s\n", HeaderStyle.Render("Category:"), r.Category)
	if r.Img != "" {
		fmt.Fprintf(w, "%s %s\n", HeaderStyle.Render("Image:"), r.Img)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, HeaderStyle.Render("Ingredients"))
	for _, ing := range r.Ingredients {
		fmt.Fprintf(w, "  - %s\n", ing)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, HeaderStyle.Render("Directions"))
	for i, step := range r.Instructions {
		fmt.Fprintf(w, "  %s %s\n", HeaderStyle.Render(fmt.Sprintf("Step %d:", i+1)), strings.TrimSpace(step))
	}
}
