package memory

import (
	"context"
	"strings"
	"sync"

	"nextel-storefront-be/internal/entity"
	"nextel-storefront-be/internal/repository/contract"
)

type SupportTicketRepository struct {
	mu      sync.RWMutex
	tickets []*entity.SupportTicket
}

func NewSupportTicketRepository() contract.SupportTicketRepository {
	return &SupportTicketRepository{}
}

func (r *SupportTicketRepository) Create(_ context.Context, ticket *entity.SupportTicket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *ticket
	r.tickets = append(r.tickets, &stored)
	return nil
}

func (r *SupportTicketRepository) FindByEmail(_ context.Context, email string) ([]*entity.SupportTicket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.SupportTicket, 0)
	for _, t := range r.tickets {
		if strings.EqualFold(t.Email, email) {
			found := *t
			out = append(out, &found)
		}
	}
	return out, nil
}
