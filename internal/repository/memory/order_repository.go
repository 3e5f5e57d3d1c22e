package memory

import (
	"context"
	"sync"

	"nextel-storefront-be/internal/entity"
	"nextel-storefront-be/internal/repository/contract"
)

// OrderRepository is the demo-mode in-memory order archive.
type OrderRepository struct {
	mu     sync.RWMutex
	orders []*entity.Order
}

func NewOrderRepository() contract.OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) Save(_ context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *order
	r.orders = append(r.orders, &stored)
	return nil
}

func (r *OrderRepository) FindByUser(_ context.Context, userId string) ([]*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Order, 0)
	for _, o := range r.orders {
		if o.UserId == userId {
			found := *o
			out = append(out, &found)
		}
	}
	return out, nil
}
