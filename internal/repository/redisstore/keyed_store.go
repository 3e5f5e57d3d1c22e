package redisstore

import (
	"context"
	"errors"

	"nextel-storefront-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

// KeyedStore is the Redis implementation of the keyed blob store, for
// deployments where carts must survive an instance restart or be shared
// across instances.
type KeyedStore struct {
	rdb    *redis.Client
	prefix string
}

func NewKeyedStore(rdb *redis.Client, prefix string) contract.KeyedStore {
	return &KeyedStore{rdb: rdb, prefix: prefix}
}

func (s *KeyedStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.rdb.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (s *KeyedStore) Save(ctx context.Context, key string, data []byte) error {
	return s.rdb.Set(ctx, s.prefix+key, data, 0).Err()
}

func (s *KeyedStore) Delete(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, s.prefix+key).Err()
}
