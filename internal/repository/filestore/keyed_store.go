package filestore

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"nextel-storefront-be/internal/repository/contract"
)

// KeyedStore persists blobs as JSON files under a data directory, one file
// per key. This is the standalone equivalent of the browser's local storage:
// no versioning, last writer wins.
type KeyedStore struct {
	dir string
	mu  sync.Mutex
}

func NewKeyedStore(dir string) (contract.KeyedStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &KeyedStore{dir: dir}, nil
}

// fileFor maps a store key to a file path. Keys contain ':' separators
// (e.g. "cart:user-1") which are not path-safe everywhere.
func (s *KeyedStore) fileFor(key string) string {
	name := strings.NewReplacer(":", "_", "/", "_", "\\", "_").Replace(key)
	return filepath.Join(s.dir, name+".json")
}

func (s *KeyedStore) Load(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.fileFor(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (s *KeyedStore) Save(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Write-then-rename so a crash mid-write never leaves a torn blob.
	target := s.fileFor(key)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}

func (s *KeyedStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.fileFor(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
