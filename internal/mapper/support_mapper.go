package mapper

import (
	"nextel-storefront-be/internal/entity"
	"nextel-storefront-be/internal/model"
)

type SupportTicketMapper struct{}

func NewSupportTicketMapper() *SupportTicketMapper {
	return &SupportTicketMapper{}
}

func (m *SupportTicketMapper) ToModel(t *entity.SupportTicket) *model.SupportTicket {
	if t == nil {
		return nil
	}
	return &model.SupportTicket{
		Id:        t.Id,
		Name:      t.Name,
		Email:     t.Email,
		Category:  t.Category,
		Message:   t.Message,
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt,
	}
}

func (m *SupportTicketMapper) ToEntity(t *model.SupportTicket) *entity.SupportTicket {
	if t == nil {
		return nil
	}
	return &entity.SupportTicket{
		Id:        t.Id,
		Name:      t.Name,
		Email:     t.Email,
		Category:  t.Category,
		Message:   t.Message,
		Status:    entity.TicketStatus(t.Status),
		CreatedAt: t.CreatedAt,
	}
}
