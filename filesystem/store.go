// filesystem/store.go
package filesystem

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Aisha-hash/Recipe-saver/domain"
)

// Store keeps every recipe in one JSON array file. Each append reads the
// whole file and rewrites it.
type Store struct {
	path   string
	logger zerolog.Logger
	now    func() time.Time

	// mu serializes appends within this process only.
	mu sync.Mutex
}

type Option func(*Store)

// WithClock overrides the time source used for ids.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(path string, logger zerolog.Logger, opts ...Option) *Store {
	s := &Store{
		path:   path,
		logger: logger.With().Str("component", "filesystem").Str("path", path).Logger(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Path() string {
	return s.path
}

// LoadAll returns every stored recipe in file order. A missing, unreadable or
// corrupt file is logged and yields an empty slice; the error is always nil.
func (s *Store) LoadAll() ([]domain.Recipe, error) {
	recipes, err := s.load()
	if err != nil {
		s.logger.Warn().Err(err).Msg("loading recipes file")
		return []domain.Recipe{}, nil
	}
	return recipes, nil
}

// load reads the whole file. A missing file is an empty catalog.
func (s *Store) load() ([]domain.Recipe, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []domain.Recipe{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read recipes: %w", err)
	}

	var recipes []domain.Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, fmt.Errorf("failed to parse recipes: %w", err)
	}
	if recipes == nil {
		recipes = []domain.Recipe{}
	}
	return recipes, nil
}

// Find returns the recipe whose id matches exactly.
func (s *Store) Find(id int64) (domain.Recipe, bool, error) {
	recipes, err := s.LoadAll()
	if err != nil {
		return domain.Recipe{}, false, err
	}
	for _, r := range recipes {
		if r.ID == id {
			return r, true, nil
		}
	}
	return domain.Recipe{}, false, nil
}

// Append stores a new recipe and returns it with its assigned id.
// The id is the current time in epoch milliseconds, moved past the largest
// stored id when the clock has not advanced.
func (s *Store) Append(n domain.NewRecipe) (domain.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recipes, err := s.load()
	if err != nil {
		s.logger.Warn().Err(err).Msg("existing recipes file is unreadable and will be replaced")
		recipes = []domain.Recipe{}
	}

	id := s.now().UnixMilli()
	for _, r := range recipes {
		if r.ID >= id {
			id = r.ID + 1
		}
	}

	recipe := n.WithID(id)
	recipes = append(recipes, recipe)

	if err := s.writeAll(recipes); err != nil {
		return domain.Recipe{}, err
	}

	s.logger.Info().Int64("id", recipe.ID).Str("name", recipe.Name).Msg("recipe saved")
	return recipe, nil
}

func (s *Store) writeAll(recipes []domain.Recipe) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(recipes); err != nil {
		return fmt.Errorf("failed to encode recipes: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".recipes-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write recipes: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write recipes: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to set file mode: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace recipes file: %w", err)
	}
	return nil
}
