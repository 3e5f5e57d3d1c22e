package entity

import (
	"time"

	"github.com/google/uuid"
)

type TicketStatus string

const (
	TicketStatusOpen TicketStatus = "open"
)

// SupportTicket is a query submitted through the FAQ page support form.
type SupportTicket struct {
	Id        uuid.UUID
	Name      string
	Email     string
	Category  string
	Message   string
	Status    TicketStatus
	CreatedAt time.Time
}
