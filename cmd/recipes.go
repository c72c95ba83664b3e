package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Aisha-hash/Recipe-saver/catalog"
	"github.com/Aisha-hash/Recipe-saver/domain"
	"github.com/Aisha-hash/Recipe-saver/ui"
)

func newListCmd(app *appContext) *cobra.Command {
	var search, category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recipes, optionally searched and filtered by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			recipes, err := app.client().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetching recipes: %w", err)
			}
			favs := app.favorites()
			ui.RenderList(cmd.OutOrStdout(), catalog.Filter(recipes, search, category), favs.IsFavorite)
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "match against recipe names and ingredients")
	cmd.Flags().StringVarP(&category, "category", "c", catalog.AllCategories, "only recipes in this category")
	return cmd
}

func newShowCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			recipe, err := app.client().Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			ui.RenderRecipe(cmd.OutOrStdout(), recipe, app.favorites().IsFavorite(recipe.ID))
			return nil
		},
	}
}

func newAddCmd(app *appContext) *cobra.Command {
	var (
		req          domain.NewRecipe
		ingredients  []string
		instructions []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Submit a new recipe",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("ingredient") {
				req.Ingredients = append(domain.StringList{}, ingredients...)
			}
			if cmd.Flags().Changed("instruction") {
				req.Instructions = append(domain.StringList{}, instructions...)
			}
			if err := req.Validate(); err != nil {
				return err
			}

			recipe, err := app.client().Create(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("saving recipe: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recipe submitted successfully! id=%d\n", recipe.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "recipe name")
	cmd.Flags().StringVar(&req.Category, "category", "", "recipe category")
	cmd.Flags().StringVar(&req.Img, "img", "", "image URL")
	cmd.Flags().StringArrayVar(&ingredients, "ingredient", nil, "an ingredient (repeatable)")
	cmd.Flags().StringArrayVar(&instructions, "instruction", nil, "an instruction step (repeatable)")
	return cmd
}

func newFavoritesCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"fav"},
		Short:   "Manage favorite recipes",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List favorite recipes",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				favs := app.favorites().Favorites()
				if len(favs) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), ui.MutedStyle.Render("No favorite Recipes found."))
					return nil
				}
				ui.RenderList(cmd.OutOrStdout(), favs, func(int64) bool { return true })
				return nil
			},
		},
		&cobra.Command{
			Use:   "add ID",
			Short: "Mark a recipe as favorite",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				recipe, err := app.client().Get(cmd.Context(), id)
				if err != nil {
					return err
				}
				if err := app.favorites().Add(recipe); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.FavStyle.Render(ui.IconFavorite), recipe.Name)
				return nil
			},
		},
		&cobra.Command{
			Use:     "remove ID",
			Aliases: []string{"rm"},
			Short:   "Unmark a favorite recipe",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				return app.favorites().Remove(id)
			},
		},
	)
	return cmd
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid recipe id %q", s)
	}
	return id, nil
}
