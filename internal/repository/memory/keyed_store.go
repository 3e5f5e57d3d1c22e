package memory

import (
	"context"
	"sync"

	"nextel-storefront-be/internal/repository/contract"
)

// KeyedStore is the in-memory KeyedStore implementation, used by tests and
// by demo deployments with neither Redis nor a data directory.
type KeyedStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewKeyedStore() contract.KeyedStore {
	return &KeyedStore{
		blobs: make(map[string][]byte),
	}
}

func (s *KeyedStore) Load(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, found := s.blobs[key]
	if !found {
		return nil, false, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, true, nil
}

func (s *KeyedStore) Save(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	s.blobs[key] = stored
	return nil
}

func (s *KeyedStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.blobs, key)
	return nil
}
