package location

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Store persists locations. List returns newest first.
type Store interface {
	List(ctx context.Context) ([]Location, error)
	Create(ctx context.Context, l Location) error
	Update(ctx context.Context, l Location) error
	Delete(ctx context.Context, id string) error
}

// MemoryStore keeps locations in process; used offline and in tests.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]Location
	seq   map[string]int
	next  int
}

func NewMemoryStore(seed ...Location) *MemoryStore {
	s := &MemoryStore{items: map[string]Location{}, seq: map[string]int{}}
	for _, l := range seed {
		s.put(l)
	}
	return s
}

func (s *MemoryStore) put(l Location) {
	if _, ok := s.seq[l.ID]; !ok {
		s.seq[l.ID] = s.next
		s.next++
	}
	s.items[l.ID] = clone(l)
}

func (s *MemoryStore) List(ctx context.Context) ([]Location, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Location, 0, len(s.items))
	for _, l := range s.items {
		out = append(out, clone(l))
	}
	// newest first; insertion order breaks ties
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return s.seq[out[i].ID] > s.seq[out[j].ID]
	})
	return out, nil
}

func (s *MemoryStore) Create(ctx context.Context, l Location) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := l.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[l.ID]; ok {
		return fmt.Errorf("create %s: duplicate id", l.ID)
	}
	s.put(l)
	return nil
}

func (s *MemoryStore) Update(ctx context.Context, l Location) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := l.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.items[l.ID]
	if !ok {
		return fmt.Errorf("update %s: %w", l.ID, ErrNotFound)
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = old.CreatedAt
	}
	s.put(l)
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return fmt.Errorf("delete %s: %w", id, ErrNotFound)
	}
	delete(s.items, id)
	delete(s.seq, id)
	return nil
}

func clone(l Location) Location {
	l.ConnectedPath = append([]string(nil), l.ConnectedPath...)
	l.ImageURLs = append([]string(nil), l.ImageURLs...)
	return l
}
