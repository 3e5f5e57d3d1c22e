package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubmitTicketRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Category string `json:"category" validate:"required"`
	Message  string `json:"message" validate:"required,min=10"`
}

type TicketResponse struct {
	Id        uuid.UUID `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
