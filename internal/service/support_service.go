package service

import (
	"context"
	"time"

	"nextel-storefront-be/internal/constant"
	"nextel-storefront-be/internal/dto"
	"nextel-storefront-be/internal/entity"
	"nextel-storefront-be/internal/pkg/logger"
	"nextel-storefront-be/internal/pkg/mailer"
	"nextel-storefront-be/internal/repository/contract"
	"nextel-storefront-be/pkg/analytics"

	"github.com/google/uuid"
)

type ISupportService interface {
	SubmitTicket(ctx context.Context, req *dto.SubmitTicketRequest) (*dto.TicketResponse, error)
	TicketsByEmail(ctx context.Context, email string) ([]*entity.SupportTicket, error)
}

type supportService struct {
	tickets contract.SupportTicketRepository
	mail    mailer.IEmailService
	sink    analytics.Sink
	log     logger.ILogger
}

func NewSupportService(
	tickets contract.SupportTicketRepository,
	mail mailer.IEmailService,
	sink analytics.Sink,
	log logger.ILogger,
) ISupportService {
	return &supportService{
		tickets: tickets,
		mail:    mail,
		sink:    sink,
		log:     log,
	}
}

func (ss *supportService) SubmitTicket(ctx context.Context, req *dto.SubmitTicketRequest) (*dto.TicketResponse, error) {
	ticket := &entity.SupportTicket{
		Id:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Category:  req.Category,
		Message:   req.Message,
		Status:    entity.TicketStatusOpen,
		CreatedAt: time.Now().UTC(),
	}

	if err := ss.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}

	// Acknowledgement mail is best-effort; the ticket is already recorded.
	if ss.mail != nil {
		go func() {
			if err := ss.mail.SendTicketAcknowledgement(ticket.Email, ticket.Name, ticket.Category, ticket.Id.String()); err != nil {
				ss.log.Warn("support", "failed to send ticket acknowledgement", map[string]interface{}{
					"ticket_id": ticket.Id.String(),
					"error":     err.Error(),
				})
			}
		}()
	}

	ss.sink.Emit(constant.EventSupportSubmit, map[string]string{
		"ticket_id": ticket.Id.String(),
		"category":  ticket.Category,
	})

	return &dto.TicketResponse{
		Id:        ticket.Id,
		Status:    string(ticket.Status),
		CreatedAt: ticket.CreatedAt,
	}, nil
}

func (ss *supportService) TicketsByEmail(ctx context.Context, email string) ([]*entity.SupportTicket, error) {
	return ss.tickets.FindByEmail(ctx, email)
}
