package memory

import (
	"time"

	"nextel-storefront-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// ConversationRepository keeps live chat sessions in memory. Conversations
// are not persisted by design: a close/reload discards them.
type ConversationRepository struct {
	cache *cache.Cache
}

func NewConversationRepository() *ConversationRepository {
	// Idle conversations expire after an hour; expired items are purged
	// every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &ConversationRepository{
		cache: c,
	}
}

func (r *ConversationRepository) Save(conv *entity.Conversation) {
	r.cache.Set(conv.Id.String(), conv, cache.DefaultExpiration)
}

func (r *ConversationRepository) Get(id uuid.UUID) (*entity.Conversation, bool) {
	if x, found := r.cache.Get(id.String()); found {
		return x.(*entity.Conversation), true
	}
	return nil, false
}

func (r *ConversationRepository) Delete(id uuid.UUID) {
	r.cache.Delete(id.String())
}
