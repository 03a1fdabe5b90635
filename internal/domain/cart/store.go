package cart

import (
	"context"
	"slices"
	"sync"
)

// Persister mirrors a cart to durable storage. Load on an absent entry returns
// no items and no error; Clear removes the entry rather than storing an empty
// sequence.
type Persister[T Item] interface {
	Load(ctx context.Context) ([]T, error)
	Save(ctx context.Context, items []T) error
	Clear(ctx context.Context) error
}

// Store is an ordered, deduplicated cart. Every mutation writes the full
// sequence through to the persister as its last step; readers never do I/O.
type Store[T Item] struct {
	mu      sync.Mutex
	items   []T
	persist Persister[T]
}

// Open hydrates a store from its persisted mirror.
func Open[T Item](ctx context.Context, persist Persister[T]) (*Store[T], error) {
	items, err := persist.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &Store[T]{items: dedup(items), persist: persist}, nil
}

// Add appends item unless an item with the same key is already present.
// A duplicate is a silent no-op and does not touch storage.
func (s *Store[T]) Add(ctx context.Context, item T) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := item.DedupKey()
	if slices.ContainsFunc(s.items, func(it T) bool { return it.DedupKey() == key }) {
		return false, nil
	}
	if err := s.commit(ctx, append(s.snapshot(), item)); err != nil {
		return false, err
	}
	return true, nil
}

// SetAll replaces the whole sequence and persists it. Later duplicates of a
// key are dropped so the no-duplicates invariant holds for any input.
func (s *Store[T]) SetAll(ctx context.Context, items []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.commit(ctx, dedup(items))
}

// Remove drops every entry sharing item's key and persists the result, even
// when nothing matched.
func (s *Store[T]) Remove(ctx context.Context, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := item.DedupKey()
	return s.commit(ctx, slices.DeleteFunc(s.snapshot(), func(it T) bool { return it.DedupKey() == key }))
}

// Clear empties the cart and deletes the persisted entry.
func (s *Store[T]) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist.Clear(ctx); err != nil {
		return err
	}
	s.items = nil
	return nil
}

// Items returns a copy of the cart in insertion order.
func (s *Store[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Store[T]) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// commit persists next and only then makes it the in-memory sequence, so a
// failed write leaves the store matching its mirror. Callers hold s.mu.
func (s *Store[T]) commit(ctx context.Context, next []T) error {
	out := make([]T, len(next))
	copy(out, next)
	if err := s.persist.Save(ctx, out); err != nil {
		return err
	}
	s.items = next
	return nil
}

func (s *Store[T]) snapshot() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func dedup[T Item](items []T) []T {
	seen := make(map[string]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, it := range items {
		key := it.DedupKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, it)
	}
	return out
}
