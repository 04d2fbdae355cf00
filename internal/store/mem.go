package store

import (
	"context"
	"errors"
	"sync"
)

// ErrSaveFailed is returned by a MemStore with failure injection enabled.
var ErrSaveFailed = errors.New("save failed")

// MemStore is an in-memory Store used by tests in place of the file-backed
// implementation.
type MemStore[T any] struct {
	mu    sync.Mutex
	items []T

	// FailSaves makes every Save/Update persist attempt fail, for
	// exercising write-error paths.
	FailSaves bool
}

// NewMemStore creates a MemStore seeded with the given items.
func NewMemStore[T any](items ...T) *MemStore[T] {
	s := &MemStore[T]{items: make([]T, len(items))}
	copy(s.items, items)
	return s
}

func (s *MemStore[T]) Load(ctx context.Context) []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *MemStore[T]) Save(ctx context.Context, items []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailSaves {
		return ErrSaveFailed
	}
	s.items = make([]T, len(items))
	copy(s.items, items)
	return nil
}

func (s *MemStore[T]) Update(ctx context.Context, fn func(items []T) ([]T, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := make([]T, len(s.items))
	copy(cur, s.items)

	next, err := fn(cur)
	if err != nil {
		return err
	}
	if s.FailSaves {
		return ErrSaveFailed
	}
	s.items = next
	return nil
}
