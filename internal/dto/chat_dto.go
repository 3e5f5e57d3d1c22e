package dto

import (
	"time"

	"nextel-storefront-be/internal/entity"

	"github.com/google/uuid"
)

type OpenConversationRequest struct {
	ConversationId *uuid.UUID `json:"conversation_id,omitempty"`
}

type SelectOptionRequest struct {
	OptionId string `json:"option_id" validate:"required"`
}

type TranscriptEntryDTO struct {
	Speaker   string                 `json:"speaker"`
	Text      string                 `json:"text"`
	Options   []entity.OfferedOption `json:"options,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

type ConversationResponse struct {
	Id            uuid.UUID            `json:"id"`
	CurrentNodeId string               `json:"current_node_id"`
	Path          []string             `json:"path"`
	Depth         int                  `json:"depth"`
	Terminal      bool                 `json:"terminal"`
	AwaitingReply bool                 `json:"awaiting_reply"`
	Transcript    []TranscriptEntryDTO `json:"transcript"`
}
