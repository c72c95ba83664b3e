package client

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aisha-hash/Recipe-saver/domain"
	"github.com/Aisha-hash/Recipe-saver/filesystem"
	api "github.com/Aisha-hash/Recipe-saver/http"
)

// newAPI runs the real API on a loopback listener backed by a temp file.
func newAPI(t *testing.T) *Client {
	t.Helper()
	store := filesystem.NewStore(filepath.Join(t.TempDir(), "recipes.json"), zerolog.Nop())
	app := api.NewServer(store, zerolog.Nop(), "test").App()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	return New("http://" + ln.Addr().String() + "/")
}

func TestClient_CreateListGet(t *testing.T) {
	c := newAPI(t)
	ctx := context.Background()

	created, err := c.Create(ctx, domain.NewRecipe{
		Name:         "Egg fried rice",
		Ingredients:  domain.StringList{"rice", "egg"},
		Instructions: domain.StringList{"fry"},
		Category:     "Dinner",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	all, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created, all[0])

	got, err := c.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestClient_GetNotFound(t *testing.T) {
	c := newAPI(t)

	_, err := c.Get(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_CreateValidationError(t *testing.T) {
	c := newAPI(t)

	_, err := c.Create(context.Background(), domain.NewRecipe{Name: "Nothing"})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Name, ingredients, instructions, and category are required.", apiErr.Message)
}

func TestClient_ListEmpty(t *testing.T) {
	c := newAPI(t)

	all, err := c.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestClient_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url).List(context.Background())
	assert.Error(t, err)
}

func TestClient_ServerErrorWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	_, err := New(srv.URL).List(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Empty(t, apiErr.Message)
}
