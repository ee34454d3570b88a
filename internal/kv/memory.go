package kv

import (
	"context"
	"sync"
)

// MemoryStore is the in-process Store implementation.
type MemoryStore struct {
	mu      sync.RWMutex
	values  map[string]string
	subs    map[string]map[int]chan string
	nextSub int
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string]string),
		subs:   make(map[string]map[int]chan string),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return v, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	s.values[key] = value
	for _, sub := range s.subs[key] {
		select {
		case <-sub:
		default:
		}
		select {
		case sub <- value:
		default:
		}
	}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Subscribe(_ context.Context, key string) (<-chan string, func(), error) {
	ch := make(chan string, 1)

	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	if s.subs[key] == nil {
		s.subs[key] = make(map[int]chan string)
	}
	s.subs[key][id] = ch
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if sub, ok := s.subs[key][id]; ok {
			delete(s.subs[key], id)
			close(sub)
		}
		s.mu.Unlock()
	}
	return ch, cancel, nil
}
