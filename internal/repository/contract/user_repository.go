package contract

import (
	"context"

	"nextel-storefront-be/internal/entity"
)

// FallbackUserRepository stores demo-mode local registrations consulted when
// the upstream auth API is unavailable.
type FallbackUserRepository interface {
	Create(ctx context.Context, user *entity.FallbackUser) error
	FindByEmail(ctx context.Context, email string) (*entity.FallbackUser, error)
}
