// Package client talks to the recipe API over HTTP/JSON.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/Aisha-hash/Recipe-saver/domain"
)

// ErrNotFound is returned by Get when the API answers 404.
var ErrNotFound = errors.New("recipe not found")

// APIError is a non-2xx answer from the API. Message carries the
// server's "error" field when it sent one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("recipe API: HTTP %d", e.Status)
	}
	return fmt.Sprintf("recipe API: HTTP %d: %s", e.Status, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New returns a client for the API rooted at baseURL, e.g. http://localhost:3001.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) List(ctx context.Context) ([]domain.Recipe, error) {
	var recipes []domain.Recipe
	if err := c.doJSON(ctx, http.MethodGet, "/recipes", nil, &recipes); err != nil {
		return nil, err
	}
	if recipes == nil {
		recipes = []domain.Recipe{}
	}
	return recipes, nil
}

func (c *Client) Get(ctx context.Context, id int64) (domain.Recipe, error) {
	var recipe domain.Recipe
	err := c.doJSON(ctx, http.MethodGet, "/recipes/"+strconv.FormatInt(id, 10), nil, &recipe)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
		return domain.Recipe{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err != nil {
		return domain.Recipe{}, err
	}
	return recipe, nil
}

func (c *Client) Create(ctx context.Context, n domain.NewRecipe) (domain.Recipe, error) {
	var recipe domain.Recipe
	if err := c.doJSON(ctx, http.MethodPost, "/recipes", n, &recipe); err != nil {
		return domain.Recipe{}, err
	}
	return recipe, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		bodyReader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		var payload struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&payload); err == nil {
			apiErr.Message = payload.Error
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
