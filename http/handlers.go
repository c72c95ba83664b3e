// http/handlers.go
package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Aisha-hash/Recipe-saver/domain"
)

const (
	msgLoadFailed    = "Error loading recipes."
	msgFetchFailed   = "Error fetching recipe."
	msgSaveFailed    = "Error saving recipe."
	msgNotFound      = "Recipe not found"
	msgMissingFields = "Name, ingredients, instructions, and category are required."
)

func (s *Server) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": s.version,
	})
}

func (s *Server) HandleRecipes(c *fiber.Ctx) error {
	recipes, err := s.store.LoadAll()
	if err != nil {
		s.logger.Error().Err(err).Msg("loading recipes")
		return c.Status(fiber.StatusInternalServerError).JSON(errorBody(msgLoadFailed))
	}
	if recipes == nil {
		recipes = []domain.Recipe{}
	}
	return c.JSON(recipes)
}

func (s *Server) HandleGetRecipe(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(errorBody(msgNotFound))
	}

	recipe, ok, err := s.store.Find(id)
	if err != nil {
		s.logger.Error().Err(err).Int64("id", id).Msg("fetching recipe")
		return c.Status(fiber.StatusInternalServerError).JSON(errorBody(msgFetchFailed))
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(errorBody(msgNotFound))
	}

	return c.JSON(recipe)
}

func (s *Server) HandleCreateRecipe(c *fiber.Ctx) error {
	var req domain.NewRecipe
	if err := c.BodyParser(&req); err != nil {
		s.logger.Debug().Err(err).Msg("unparseable create body")
		return c.Status(fiber.StatusBadRequest).JSON(errorBody(msgMissingFields))
	}

	if err := req.Validate(); err != nil {
		if errors.Is(err, domain.ErrMissingFields) {
			return c.Status(fiber.StatusBadRequest).JSON(errorBody(msgMissingFields))
		}
		return err
	}

	recipe, err := s.store.Append(req)
	if err != nil {
		s.logger.Error().Err(err).Str("name", req.Name).Msg("saving recipe")
		return c.Status(fiber.StatusInternalServerError).JSON(errorBody(msgSaveFailed))
	}

	return c.Status(fiber.StatusCreated).JSON(recipe)
}
