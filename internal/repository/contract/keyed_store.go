package contract

import "context"

// KeyedStore is the generic persisted-blob collaborator: opaque bytes under a
// string key, last-writer-wins. The cart service treats a missing key or an
// unparsable blob as an empty collection, so Load returning (nil, false, nil)
// is a normal outcome, not an error.
type KeyedStore interface {
	Load(ctx context.Context, key string) (data []byte, found bool, err error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}
