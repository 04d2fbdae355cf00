package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// Store owns load/save of one persisted JSON collection. Load fails soft:
// a missing or unreadable backing file degrades to an empty collection so
// read paths stay available. Save and Update surface errors to the caller.
type Store[T any] interface {
	// Load returns the whole collection. Never returns nil.
	Load(ctx context.Context) []T
	// Save overwrites the whole collection.
	Save(ctx context.Context, items []T) error
	// Update runs fn against the current collection and persists the
	// result, all under the store's write lock. If fn returns an error
	// nothing is written and the error is returned as-is.
	Update(ctx context.Context, fn func(items []T) ([]T, error)) error
}

// FileStore persists one collection as a pretty-printed JSON array.
// A per-store mutex serializes every read-modify-write cycle, so two
// concurrent mutations cannot silently drop each other's changes.
type FileStore[T any] struct {
	mu   sync.Mutex
	path string
	name string
	log  zerolog.Logger
}

// NewFileStore creates a store backed by <dataDir>/<name>.json.
func NewFileStore[T any](dataDir, name string, log zerolog.Logger) *FileStore[T] {
	return &FileStore[T]{
		path: filepath.Join(dataDir, name+".json"),
		name: name,
		log:  log.With().Str("store", name).Logger(),
	}
}

// Path returns the backing file location.
func (s *FileStore[T]) Path() string {
	return s.path
}

func (s *FileStore[T]) Load(ctx context.Context) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *FileStore[T]) Save(ctx context.Context, items []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(items)
}

func (s *FileStore[T]) Update(ctx context.Context, fn func(items []T) ([]T, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := fn(s.load())
	if err != nil {
		return err
	}
	return s.save(items)
}

// load must be called with the mutex held.
func (s *FileStore[T]) load() []T {
	data, err := os.ReadFile(s.path)
	if err != nil {
		// A store that has never been written is an empty collection.
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Error().Err(err).Str("path", s.path).Msg("store read failed, serving empty collection")
		}
		return []T{}
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("store parse failed, serving empty collection")
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// save must be called with the mutex held. The document is written to a
// temp file and renamed into place so readers never observe a torn file.
func (s *FileStore[T]) save(items []T) error {
	if items == nil {
		items = []T{}
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s store: %w", s.name, err)
	}
	data = append(data, '\n')

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s store: %w", s.name, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("write %s store: %w", s.name, err)
	}
	return nil
}
