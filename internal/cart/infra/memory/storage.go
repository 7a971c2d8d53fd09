package memory

import (
	"context"
	"sync"

	"github.com/dwikikusuma/food-storefront/internal/cart/app"
)

// Storage keeps slots in process memory.
type Storage struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewStorage() *Storage {
	return &Storage{slots: map[string][]byte{}}
}

func (s *Storage) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.slots[key]
	if !ok {
		return nil, app.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *Storage) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots[key] = append([]byte(nil), value...)
	return nil
}

func (s *Storage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.slots, key)
	return nil
}
