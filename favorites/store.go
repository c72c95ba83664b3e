// Package favorites is the client-side favorites state. The ordered
// sequence of recipe snapshots is mirrored to the "favorites" storage key
// after every change.
package favorites

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Aisha-hash/Recipe-saver/domain"
)

// StorageKey is the storage key holding the JSON-encoded favorites.
const StorageKey = "favorites"

type Store struct {
	storage Storage
	logger  zerolog.Logger

	mu        sync.RWMutex
	favorites []domain.Recipe
}

// New loads the favorites from storage. A missing or unparseable entry
// starts the store empty.
func New(storage Storage, logger zerolog.Logger) *Store {
	s := &Store{
		storage:   storage,
		logger:    logger.With().Str("component", "favorites").Logger(),
		favorites: []domain.Recipe{},
	}

	raw, ok, err := storage.GetItem(StorageKey)
	if err != nil {
		s.logger.Warn().Err(err).Msg("reading favorites")
		return s
	}
	if !ok {
		return s
	}

	var loaded []domain.Recipe
	if err := json.Unmarshal([]byte(raw), &loaded); err != nil {
		s.logger.Warn().Err(err).Msg("parsing favorites")
		return s
	}
	if loaded != nil {
		s.favorites = loaded
	}
	return s
}

// Favorites returns a copy of the current sequence.
func (s *Store) Favorites() []domain.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Recipe{}, s.favorites...)
}

func (s *Store) IsFavorite(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.contains(id)
}

// Add appends the recipe and persists. A recipe without an id is ignored.
// There is no duplicate check: adding the same recipe twice stores it twice.
func (s *Store) Add(recipe domain.Recipe) error {
	if recipe.ID == 0 {
		s.logger.Warn().Str("name", recipe.Name).Msg("ignoring favorite without id")
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(recipe)
}

// Remove drops every entry with the given id and persists the rest.
func (s *Store) Remove(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remove(id)
}

// Toggle removes the recipe when it is a favorite and adds it otherwise.
// It returns whether the recipe is a favorite afterwards.
func (s *Store) Toggle(recipe domain.Recipe) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.contains(recipe.ID) {
		return false, s.remove(recipe.ID)
	}
	if recipe.ID == 0 {
		return false, nil
	}
	if err := s.add(recipe); err != nil {
		return false, err
	}
	return true, nil
}

// The helpers below expect s.mu to be held.

func (s *Store) contains(id int64) bool {
	for _, r := range s.favorites {
		if r.ID == id {
			return true
		}
	}
	return false
}

func (s *Store) add(recipe domain.Recipe) error {
	next := append(append([]domain.Recipe{}, s.favorites...), recipe)
	if err := s.persist(next); err != nil {
		return err
	}
	s.favorites = next
	s.logger.Debug().Int64("id", recipe.ID).Int("count", len(next)).Msg("favorite added")
	return nil
}

func (s *Store) remove(id int64) error {
	next := make([]domain.Recipe, 0, len(s.favorites))
	for _, r := range s.favorites {
		if r.ID != id {
			next = append(next, r)
		}
	}
	if err := s.persist(next); err != nil {
		return err
	}
	s.favorites = next
	s.logger.Debug().Int64("id", id).Int("count", len(next)).Msg("favorite removed")
	return nil
}

func (s *Store) persist(favorites []domain.Recipe) error {
	data, err := json.Marshal(favorites)
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}
	if err := s.storage.SetItem(StorageKey, string(data)); err != nil {
		return fmt.Errorf("failed to persist favorites: %w", err)
	}
	return nil
}
