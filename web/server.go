// Package web serves the browser UI: the recipe list with search and
// category filter, recipe detail, the add-recipe form and favorites.
package web

import (
	"bytes"
	"context"
	"html/template"
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Aisha-hash/Recipe-saver/domain"
	"github.com/Aisha-hash/Recipe-saver/favorites"
	api "github.com/Aisha-hash/Recipe-saver/http"
)

// RecipeAPI is the backend the views read from and submit to.
type RecipeAPI interface {
	List(ctx context.Context) ([]domain.Recipe, error)
	Get(ctx context.Context, id int64) (domain.Recipe, error)
	Create(ctx context.Context, n domain.NewRecipe) (domain.Recipe, error)
}

type Server struct {
	api       RecipeAPI
	favorites *favorites.Store
	logger    zerolog.Logger
	pages     map[string]*template.Template
	app       *fiber.App
}

func NewServer(recipes RecipeAPI, favs *favorites.Store, logger zerolog.Logger) (*Server, error) {
	pages, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		api:       recipes,
		favorites: favs,
		logger:    logger.With().Str("component", "web").Logger(),
		pages:     pages,
	}

	app := fiber.New(fiber.Config{
		AppName:               "recipe-saver web",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(api.RequestLogger(s.logger))

	app.Get("/", s.HandleList)
	app.Get("/recipe/:id", s.HandleDetail)
	app.Post("/recipe/:id/favorite", s.HandleToggleFavorite)
	app.Get("/addrecipe", s.HandleForm)
	app.Post("/addrecipe", s.HandleSubmitForm)
	app.Get("/favorites", s.HandleFavorites)

	s.app = app
	return s, nil
}

func (s *Server) App() *fiber.App {
	return s.app
}

// Serve accepts connections on ln until Shutdown.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info().Str("addr", ln.Addr().String()).Msg("web UI listening")
	return s.app.Listener(ln)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) render(c *fiber.Ctx, status int, page string, data any) error {
	t, ok := s.pages[page]
	if !ok {
		return fiber.NewError(fiber.StatusInternalServerError, "unknown page "+page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		s.logger.Error().Err(err).Str("page", page).Msg("rendering page")
		return err
	}

	c.Type("html", "utf-8")
	return c.Status(status).Send(buf.Bytes())
}
