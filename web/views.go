// web/views.go
package web

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Aisha-hash/Recipe-saver/catalog"
	"github.com/Aisha-hash/Recipe-saver/client"
	"github.com/Aisha-hash/Recipe-saver/domain"
)

// recipeCard is a recipe in a grid together with its favorite toggle.
// Return is where the toggle redirects afterwards.
type recipeCard struct {
	domain.Recipe
	Favorite bool
	Return   string
}

type listPage struct {
	Title      string
	Search     string
	Category   string
	Categories []string
	Recipes    []recipeCard
}

type detailPage struct {
	Title    string
	Found    bool
	Favorite bool
	Recipe   domain.Recipe
}

type formPage struct {
	Title  string
	Form   RecipeForm
	Notice string
	Alert  string
}

type favoritesPage struct {
	Title   string
	Recipes []recipeCard
}

func (s *Server) HandleList(c *fiber.Ctx) error {
	category := c.Query("category", catalog.AllCategories)
	search := c.Query("q")

	recipes, err := s.api.List(c.UserContext())
	if err != nil {
		s.logger.Error().Err(err).Msg("fetching recipes")
		recipes = []domain.Recipe{}
	}

	return s.render(c, fiber.StatusOK, "list.html", listPage{
		Title:      "Recipes",
		Search:     search,
		Category:   category,
		Categories: catalog.Categories(recipes),
		Recipes:    s.cards(catalog.Filter(recipes, search, category), c.OriginalURL()),
	})
}

func (s *Server) HandleDetail(c *fiber.Ctx) error {
	recipe, ok := s.fetchRecipe(c)
	if !ok {
		return s.render(c, fiber.StatusNotFound, "detail.html", detailPage{Title: "Recipe not found"})
	}

	return s.render(c, fiber.StatusOK, "detail.html", detailPage{
		Title:    recipe.Name,
		Found:    true,
		Favorite: s.favorites.IsFavorite(recipe.ID),
		Recipe:   recipe,
	})
}

// HandleToggleFavorite flips the favorite state of the recipe and redirects
// to the "return" form value, or to the recipe page without one. Removing
// needs only the id; adding fetches the recipe snapshot from the API.
func (s *Server) HandleToggleFavorite(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return s.render(c, fiber.StatusNotFound, "detail.html", detailPage{Title: "Recipe not found"})
	}
	target := localPath(c.FormValue("return"), "/recipe/"+strconv.FormatInt(id, 10))

	if s.favorites.IsFavorite(id) {
		if err := s.favorites.Remove(id); err != nil {
			s.logger.Error().Err(err).Int64("id", id).Msg("removing favorite")
			return fiber.NewError(fiber.StatusInternalServerError, "could not update favorites")
		}
		s.logger.Info().Int64("id", id).Bool("favorite", false).Msg("favorite toggled")
		return c.Redirect(target, fiber.StatusSeeOther)
	}

	recipe, ok := s.getRecipe(c, id)
	if !ok {
		return s.render(c, fiber.StatusNotFound, "detail.html", detailPage{Title: "Recipe not found"})
	}

	favorite, err := s.favorites.Toggle(recipe)
	if err != nil {
		s.logger.Error().Err(err).Int64("id", id).Msg("toggling favorite")
		return fiber.NewError(fiber.StatusInternalServerError, "could not update favorites")
	}
	s.logger.Info().Int64("id", id).Bool("favorite", favorite).Msg("favorite toggled")

	return c.Redirect(target, fiber.StatusSeeOther)
}

// fetchRecipe loads the recipe named by the :id route parameter. Any
// failure, including a malformed id, is reported as not found.
func (s *Server) fetchRecipe(c *fiber.Ctx) (domain.Recipe, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return domain.Recipe{}, false
	}
	return s.getRecipe(c, id)
}

func (s *Server) getRecipe(c *fiber.Ctx, id int64) (domain.Recipe, bool) {
	recipe, err := s.api.Get(c.UserContext(), id)
	if err != nil {
		if !errors.Is(err, client.ErrNotFound) {
			s.logger.Error().Err(err).Int64("id", id).Msg("fetching recipe")
		}
		return domain.Recipe{}, false
	}
	return recipe, true
}

func (s *Server) cards(recipes []domain.Recipe, returnTo string) []recipeCard {
	out := make([]recipeCard, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, recipeCard{
			Recipe:   r,
			Favorite: s.favorites.IsFavorite(r.ID),
			Return:   returnTo,
		})
	}
	return out
}

// localPath returns target when it is a path on this site, fallback otherwise.
func localPath(target, fallback string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return fallback
	}
	return target
}

func (s *Server) HandleForm(c *fiber.Ctx) error {
	return s.render(c, fiber.StatusOK, "form.html", formPage{
		Title: "Add a Recipe",
		Form:  NewRecipeForm(),
	})
}

func (s *Server) HandleSubmitForm(c *fiber.Ctx) error {
	form := RecipeForm{
		Name:         c.FormValue("name"),
		Image:        c.FormValue("img"),
		Category:     c.FormValue("category"),
		Ingredients:  formValues(c, "ingredients"),
		Instructions: formValues(c, "instructions"),
	}
	page := formPage{Title: "Add a Recipe"}

	if form.Apply(c.FormValue("action")) {
		page.Form = form
		return s.render(c, fiber.StatusOK, "form.html", page)
	}

	recipe, err := s.api.Create(c.UserContext(), form.Request())
	if err != nil {
		s.logger.Error().Err(err).Str("name", form.Name).Msg("submitting recipe")
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			page.Alert = "Error saving recipe: " + apiErr.Message
		} else {
			page.Alert = "Error submitting recipe. Please try again."
		}
		page.Form = form
		return s.render(c, fiber.StatusOK, "form.html", page)
	}

	s.logger.Info().Int64("id", recipe.ID).Str("name", recipe.Name).Msg("recipe submitted")
	form.Reset()
	page.Form = form
	page.Notice = "Recipe submitted successfully!"
	return s.render(c, fiber.StatusOK, "form.html", page)
}

func (s *Server) HandleFavorites(c *fiber.Ctx) error {
	return s.render(c, fiber.StatusOK, "favorites.html", favoritesPage{
		Title:   "My Favorites",
		Recipes: s.cards(s.favorites.Favorites(), "/favorites"),
	})
}

func formValues(c *fiber.Ctx, key string) []string {
	raw := c.Request().PostArgs().PeekMulti(key)
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		out = append(out, string(v))
	}
	return out
}
