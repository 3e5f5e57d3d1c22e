package memory

import (
	"time"

	"nextel-storefront-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// CheckoutRepository holds in-flight checkout states keyed by user id.
// Abandoned checkouts fall out via TTL.
type CheckoutRepository struct {
	cache *cache.Cache
}

func NewCheckoutRepository() *CheckoutRepository {
	c := cache.New(30*time.Minute, 10*time.Minute)
	return &CheckoutRepository{
		cache: c,
	}
}

func (r *CheckoutRepository) Save(state *entity.CheckoutState) {
	r.cache.Set(state.UserId, state, cache.DefaultExpiration)
}

func (r *CheckoutRepository) Get(userId string) (*entity.CheckoutState, bool) {
	if x, found := r.cache.Get(userId); found {
		return x.(*entity.CheckoutState), true
	}
	return nil, false
}

func (r *CheckoutRepository) Delete(userId string) {
	r.cache.Delete(userId)
}
