// http/server.go
package http

import (
	"context"
	"errors"
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Aisha-hash/Recipe-saver/domain"
)

// RecipeStore is the persistence the API is served from.
type RecipeStore interface {
	LoadAll() ([]domain.Recipe, error)
	Find(id int64) (domain.Recipe, bool, error)
	Append(n domain.NewRecipe) (domain.Recipe, error)
}

type Server struct {
	store   RecipeStore
	logger  zerolog.Logger
	version string
	app     *fiber.App
}

func NewServer(store RecipeStore, logger zerolog.Logger, version string) *Server {
	s := &Server{
		store:   store,
		logger:  logger.With().Str("component", "api").Logger(),
		version: version,
	}

	app := fiber.New(fiber.Config{
		AppName:               "recipe-saver API",
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(RequestLogger(s.logger))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST",
		AllowHeaders: "Content-Type",
	}))

	app.Get("/health", s.HandleHealth)
	app.Get("/recipes", s.HandleRecipes)
	app.Get("/recipes/:id", s.HandleGetRecipe)
	app.Post("/recipes", s.HandleCreateRecipe)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(errorBody("Not Found"))
	})

	s.app = app
	return s
}

// App exposes the underlying fiber app, mostly for app.Test.
func (s *Server) App() *fiber.App {
	return s.app
}

// Serve accepts connections on ln until Shutdown.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info().Str("addr", ln.Addr().String()).Msg("API listening")
	return s.app.Listener(ln)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	} else {
		s.logger.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
	}

	return c.Status(code).JSON(errorBody(message))
}

func errorBody(message string) fiber.Map {
	return fiber.Map{"error": message}
}
