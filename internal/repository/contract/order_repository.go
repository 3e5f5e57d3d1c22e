package contract

import (
	"context"

	"nextel-storefront-be/internal/entity"
)

// OrderRepository is the local order archive. Every submitted order is
// recorded here regardless of the upstream outcome.
type OrderRepository interface {
	Save(ctx context.Context, order *entity.Order) error
	FindByUser(ctx context.Context, userId string) ([]*entity.Order, error)
}
