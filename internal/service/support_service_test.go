package service

import (
	"context"
	"testing"

	"nextel-storefront-be/internal/constant"
	"nextel-storefront-be/internal/dto"
	"nextel-storefront-be/internal/entity"
	"nextel-storefront-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportSubmitTicket(t *testing.T) {
	sink := &captureSink{}
	repo := memory.NewSupportTicketRepository()
	svc := NewSupportService(repo, nil, sink, nopLogger{})

	res, err := svc.SubmitTicket(context.Background(), &dto.SubmitTicketRequest{
		Name:     "Dana",
		Email:    "dana@example.com",
		Category: "Billing",
		Message:  "I was charged twice this month.",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, res.Id)
	assert.Equal(t, string(entity.TicketStatusOpen), res.Status)

	tickets, err := svc.TicketsByEmail(context.Background(), "dana@example.com")
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, "Billing", tickets[0].Category)

	submits := sink.byName(constant.EventSupportSubmit)
	require.Len(t, submits, 1)
	assert.Equal(t, "Billing", submits[0].Fields["category"])
}
