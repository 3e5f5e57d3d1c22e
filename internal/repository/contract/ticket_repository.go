package contract

import (
	"context"

	"nextel-storefront-be/internal/entity"
)

type SupportTicketRepository interface {
	Create(ctx context.Context, ticket *entity.SupportTicket) error
	FindByEmail(ctx context.Context, email string) ([]*entity.SupportTicket, error)
}
