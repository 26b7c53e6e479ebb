// Package history persists generated cards to a JSON file: original text,
// the rendered PNG bytes, the configuration that produced them, and a
// favorite flag. The list is newest-first and capped, so the file stays a
// bounded size no matter how long the app runs.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/clipcard/clipcard/internal/card"
)

// DefaultMaxItems caps the history list.
const DefaultMaxItems = 100

// Item is one generated card. PNG round-trips through JSON as base64.
type Item struct {
	ID        string      `json:"id"`
	Text      string      `json:"originalText"`
	Config    card.Config `json:"config"`
	PNG       []byte      `json:"png"`
	CreatedAt time.Time   `json:"createdAt"`
	Favorite  bool        `json:"favorite"`
}

type fileFormat struct {
	Version int    `json:"version"`
	SavedAt string `json:"savedAt"`
	Items   []Item `json:"items"`
}

// Store is a concurrency-safe history list backed by a JSON file. Every
// mutation is written through immediately; there is no separate flush.
type Store struct {
	mu    sync.Mutex
	path  string
	max   int
	items []Item
}

// Open loads the history file at path, creating an empty store when the
// file does not exist yet. max <= 0 selects DefaultMaxItems.
func Open(path string, max int) (*Store, error) {
	if max <= 0 {
		max = DefaultMaxItems
	}
	s := &Store{path: path, max: max}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("load history: %w", err)
	}
	var f fileFormat
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse history %s: %w", path, err)
	}
	s.items = f.Items
	if len(s.items) > max {
		s.items = s.items[:max]
	}
	return s, nil
}

// Add prepends a new item and drops anything past the cap. Returns the
// stored item with its assigned ID and timestamp.
func (s *Store) Add(text string, cfg card.Config, png []byte) (Item, error) {
	item := Item{
		ID:        uuid.NewString(),
		Text:      text,
		Config:    cfg,
		PNG:       png,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]Item{item}, s.items...)
	if len(s.items) > s.max {
		s.items = s.items[:s.max]
	}
	return item, s.saveLocked()
}

// List returns a copy of the items, newest first.
func (s *Store) List() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Favorites returns only favorited items, newest first.
func (s *Store) Favorites() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Item
	for _, it := range s.items {
		if it.Favorite {
			out = append(out, it)
		}
	}
	return out
}

// HasFavorite reports whether an equal (text, config) pair is already
// favorited. Config is a comparable value, so equality is exact.
func (s *Store) HasFavorite(text string, cfg card.Config) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.Favorite && it.Text == text && it.Config == cfg {
			return true
		}
	}
	return false
}

// ToggleFavorite flips the favorite flag on the item with the given ID and
// returns the new state.
func (s *Store) ToggleFavorite(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Favorite = !s.items[i].Favorite
			return s.items[i].Favorite, s.saveLocked()
		}
	}
	return false, fmt.Errorf("history: no item with id %s", id)
}

// Remove deletes the item with the given ID.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.saveLocked()
		}
	}
	return fmt.Errorf("history: no item with id %s", id)
}

// Clear drops every item.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	return s.saveLocked()
}

// Len returns the number of stored items.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Store) saveLocked() error {
	f := fileFormat{
		Version: 1,
		SavedAt: time.Now().UTC().Format(time.RFC3339),
		Items:   s.items,
	}
	payload, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, payload, 0o644)
}

// SortByCreated orders items newest first; useful after merging lists.
func SortByCreated(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}
