package memory

import (
	"context"
	"strings"
	"sync"

	"nextel-storefront-be/internal/entity"
	"nextel-storefront-be/internal/repository/contract"
)

// FallbackUserRepository is the demo-mode in-memory registration store.
type FallbackUserRepository struct {
	mu    sync.RWMutex
	users map[string]*entity.FallbackUser
}

func NewFallbackUserRepository() contract.FallbackUserRepository {
	return &FallbackUserRepository{
		users: make(map[string]*entity.FallbackUser),
	}
}

func (r *FallbackUserRepository) Create(_ context.Context, user *entity.FallbackUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *user
	r.users[strings.ToLower(user.Email)] = &stored
	return nil
}

func (r *FallbackUserRepository) FindByEmail(_ context.Context, email string) (*entity.FallbackUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, found := r.users[strings.ToLower(email)]
	if !found {
		return nil, nil
	}
	out := *user
	return &out, nil
}
