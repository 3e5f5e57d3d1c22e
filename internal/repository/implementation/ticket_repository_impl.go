package implementation

import (
	"context"

	"nextel-storefront-be/internal/entity"
	"nextel-storefront-be/internal/mapper"
	"nextel-storefront-be/internal/model"
	"nextel-storefront-be/internal/repository/contract"
	"nextel-storefront-be/internal/repository/specification"

	"gorm.io/gorm"
)

type SupportTicketRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SupportTicketMapper
}

func NewSupportTicketRepository(db *gorm.DB) contract.SupportTicketRepository {
	return &SupportTicketRepositoryImpl{
		db:     db,
		mapper: mapper.NewSupportTicketMapper(),
	}
}

func (r *SupportTicketRepositoryImpl) Create(ctx context.Context, ticket *entity.SupportTicket) error {
	modelTicket := r.mapper.ToModel(ticket)
	return r.db.WithContext(ctx).Create(modelTicket).Error
}

func (r *SupportTicketRepositoryImpl) FindByEmail(ctx context.Context, email string) ([]*entity.SupportTicket, error) {
	var modelTickets []*model.SupportTicket
	query := specification.ByEmail{Email: email}.Apply(r.db.WithContext(ctx))
	query = specification.OrderBy{Field: "created_at", Desc: true}.Apply(query)

	if err := query.Find(&modelTickets).Error; err != nil {
		return nil, err
	}

	tickets := make([]*entity.SupportTicket, 0, len(modelTickets))
	for _, t := range modelTickets {
		tickets = append(tickets, r.mapper.ToEntity(t))
	}
	return tickets, nil
}
