// Package favorites keeps the set of artwork ids the user marked, persisted
// as a JSON array under a single storage key.
package favorites

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/five82/gallery/internal/storage"
)

// Key is the storage namespace the favorite ids live under.
const Key = "art-gallary:favorites"

// ErrMalformed marks persisted data that could not be decoded. The store is
// left empty and remains usable.
var ErrMalformed = errors.New("malformed favorites data")

// Store is the favorite set plus the storage it is persisted to.
type Store struct {
	backend storage.Storage
	order   []string
	members map[string]struct{}
}

// New returns an empty store persisting to backend. Call Load to hydrate it.
func New(backend storage.Storage) *Store {
	return &Store{
		backend: backend,
		members: make(map[string]struct{}),
	}
}

// Load replaces the in-memory set with the persisted one. A missing key is
// an empty set. On any failure the set is empty and the error is returned.
func (s *Store) Load() error {
	s.reset(nil)

	raw, ok, err := s.backend.Get(Key)
	if err != nil {
		return fmt.Errorf("load favorites: %w", err)
	}
	if !ok {
		return nil
	}

	ids, err := Decode(raw)
	if err != nil {
		return fmt.Errorf("load favorites: %w", err)
	}
	s.reset(ids)
	return nil
}

// Toggle adds id when absent and removes it when present, then persists the
// full set. The in-memory change sticks even if the write fails.
func (s *Store) Toggle(id string) error {
	if _, ok := s.members[id]; ok {
		delete(s.members, id)
		for i, existing := range s.order {
			if existing == id {
				s.order = append(s.order[:i:i], s.order[i+1:]...)
				break
			}
		}
	} else {
		s.members[id] = struct{}{}
		s.order = append(s.order, id)
	}
	return s.Save()
}

// Save writes the whole set to storage.
func (s *Store) Save() error {
	raw, err := Encode(s.order)
	if err != nil {
		return fmt.Errorf("save favorites: %w", err)
	}
	if err := s.backend.Set(Key, raw); err != nil {
		return fmt.Errorf("save favorites: %w", err)
	}
	return nil
}

// Has reports membership.
func (s *Store) Has(id string) bool {
	_, ok := s.members[id]
	return ok
}

// IDs returns the favorite ids in the order they were added.
func (s *Store) IDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of favorites.
func (s *Store) Len() int {
	return len(s.order)
}

func (s *Store) reset(ids []string) {
	s.order = s.order[:0]
	s.members = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := s.members[id]; dup {
			continue
		}
		s.members[id] = struct{}{}
		s.order = append(s.order, id)
	}
}

// Encode serialises ids as a JSON array.
func Encode(ids []string) (string, error) {
	if ids == nil {
		ids = []string{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// Decode parses a JSON array of ids. Anything else wraps ErrMalformed.
func Decode(raw string) ([]string, error) {
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return ids, nil
}
