package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"nextel-storefront-be/internal/constant"
	"nextel-storefront-be/internal/dto"
	"nextel-storefront-be/internal/repository/memory"
	"nextel-storefront-be/pkg/analytics"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureSink records emitted events so tests can assert on the analytics
// stream without a pipeline.
type captureSink struct {
	mu     sync.Mutex
	events []capturedEvent
}

type capturedEvent struct {
	Name   string
	Fields map[string]string
}

func (s *captureSink) Emit(eventName string, fields map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, capturedEvent{Name: eventName, Fields: fields})
}

func (s *captureSink) byName(name string) []capturedEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []capturedEvent
	for _, e := range s.events {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}

func newTestConversationService(sink analytics.Sink, baseDelay time.Duration) IConversationService {
	if sink == nil {
		sink = analytics.NopSink{}
	}
	return NewConversationService(memory.NewConversationRepository(), sink, nil, baseDelay, 0)
}

func waitForReply(t *testing.T, svc IConversationService, id uuid.UUID, wantEntries int) *dto.ConversationResponse {
	t.Helper()
	var res *dto.ConversationResponse
	require.Eventually(t, func() bool {
		r, err := svc.Get(context.Background(), id)
		if err != nil {
			return false
		}
		res = r
		return len(r.Transcript) >= wantEntries && !r.AwaitingReply
	}, 2*time.Second, 5*time.Millisecond)
	return res
}

func TestConversationOpen(t *testing.T) {
	svc := newTestConversationService(nil, time.Millisecond)

	res, err := svc.Open(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Welcome"}, res.Path)
	assert.Equal(t, 0, res.Depth)
	assert.False(t, res.Terminal)
	assert.False(t, res.AwaitingReply)

	require.Len(t, res.Transcript, 1)
	assert.Equal(t, "bot", res.Transcript[0].Speaker)
	assert.NotEmpty(t, res.Transcript[0].Options)
}

func TestConversationInvalidSelectionLeavesStateUntouched(t *testing.T) {
	svc := newTestConversationService(nil, time.Millisecond)

	opened, err := svc.Open(context.Background())
	require.NoError(t, err)

	_, err = svc.SelectOption(context.Background(), opened.Id, "no-such-option")
	require.ErrorIs(t, err, ErrInvalidSelection)

	res, err := svc.Get(context.Background(), opened.Id)
	require.NoError(t, err)
	assert.Equal(t, []string{"Welcome"}, res.Path)
	assert.Len(t, res.Transcript, 1)
	assert.False(t, res.AwaitingReply)
}

func TestConversationUnknownId(t *testing.T) {
	svc := newTestConversationService(nil, time.Millisecond)

	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrConversationNotFound)

	_, err = svc.SelectOption(context.Background(), uuid.New(), "billing")
	assert.ErrorIs(t, err, ErrConversationNotFound)

	_, err = svc.Restart(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrConversationNotFound)
}

func TestConversationBillingWalk(t *testing.T) {
	sink := &captureSink{}
	svc := newTestConversationService(sink, time.Millisecond)

	opened, err := svc.Open(context.Background())
	require.NoError(t, err)

	res, err := svc.SelectOption(context.Background(), opened.Id, "billing")
	require.NoError(t, err)
	assert.True(t, res.AwaitingReply)
	waitForReply(t, svc, opened.Id, 3)

	_, err = svc.SelectOption(context.Background(), opened.Id, "billing-view")
	require.NoError(t, err)
	final := waitForReply(t, svc, opened.Id, 5)

	// Two user turns: root entry, user, bot, user, bot.
	require.Len(t, final.Transcript, 5)
	assert.Equal(t, 2, final.Depth)
	assert.Equal(t, []string{"Welcome", "💳 Billing & Payments", "📄 View my bill"}, final.Path)
	assert.Equal(t, "billing-view", final.CurrentNodeId)

	assert.Equal(t, "user", final.Transcript[1].Speaker)
	assert.Equal(t, "💳 Billing & Payments", final.Transcript[1].Text)
	assert.Equal(t, "bot", final.Transcript[2].Speaker)

	selected := sink.byName(constant.EventChatbotOptionSelected)
	require.Len(t, selected, 2)
	assert.Equal(t, "billing", selected[0].Fields["option_id"])
	assert.Equal(t, "billing-view", selected[1].Fields["option_id"])

	paths := sink.byName(constant.EventChatbotPath)
	require.Len(t, paths, 2)
	assert.Equal(t, "Welcome > 💳 Billing & Payments > 📄 View my bill", paths[1].Fields["chat_path"])
}

func TestConversationSelectionWhileReplyPending(t *testing.T) {
	svc := newTestConversationService(nil, 200*time.Millisecond)

	opened, err := svc.Open(context.Background())
	require.NoError(t, err)

	_, err = svc.SelectOption(context.Background(), opened.Id, "billing")
	require.NoError(t, err)

	_, err = svc.SelectOption(context.Background(), opened.Id, "billing-view")
	assert.ErrorIs(t, err, ErrReplyPending)
}

func TestConversationRestartDropsPendingReply(t *testing.T) {
	svc := newTestConversationService(nil, 50*time.Millisecond)

	opened, err := svc.Open(context.Background())
	require.NoError(t, err)

	_, err = svc.SelectOption(context.Background(), opened.Id, "billing")
	require.NoError(t, err)

	// Restart before the bot reply lands; the scheduled reply must find a
	// stale generation and drop itself.
	res, err := svc.Restart(context.Background(), opened.Id)
	require.NoError(t, err)
	assert.Equal(t, []string{"Welcome"}, res.Path)
	assert.Len(t, res.Transcript, 1)

	time.Sleep(150 * time.Millisecond)

	after, err := svc.Get(context.Background(), opened.Id)
	require.NoError(t, err)
	assert.Len(t, after.Transcript, 1)
	assert.False(t, after.AwaitingReply)
	assert.Equal(t, 0, after.Depth)
}

func TestConversationRestartMatchesFreshOpen(t *testing.T) {
	svc := newTestConversationService(nil, time.Millisecond)

	opened, err := svc.Open(context.Background())
	require.NoError(t, err)
	_, err = svc.SelectOption(context.Background(), opened.Id, "technical")
	require.NoError(t, err)
	waitForReply(t, svc, opened.Id, 3)

	restarted, err := svc.Restart(context.Background(), opened.Id)
	require.NoError(t, err)

	fresh, err := svc.Open(context.Background())
	require.NoError(t, err)

	assert.Equal(t, fresh.Path, restarted.Path)
	assert.Equal(t, fresh.CurrentNodeId, restarted.CurrentNodeId)
	assert.Equal(t, fresh.Depth, restarted.Depth)
	require.Len(t, restarted.Transcript, len(fresh.Transcript))
	assert.Equal(t, fresh.Transcript[0].Text, restarted.Transcript[0].Text)
	assert.Equal(t, fresh.Transcript[0].Options, restarted.Transcript[0].Options)
}

func TestConversationTerminalNode(t *testing.T) {
	svc := newTestConversationService(nil, time.Millisecond)

	opened, err := svc.Open(context.Background())
	require.NoError(t, err)

	for _, optionId := range []string{"billing", "billing-view", "billing-view-help", "billing-view-done"} {
		res, err := svc.SelectOption(context.Background(), opened.Id, optionId)
		require.NoError(t, err, "selecting %s", optionId)
		waitForReply(t, svc, opened.Id, len(res.Transcript)+1)
	}

	final, err := svc.Get(context.Background(), opened.Id)
	require.NoError(t, err)
	assert.True(t, final.Terminal)

	// A terminal node offers nothing, so any further selection is invalid.
	_, err = svc.SelectOption(context.Background(), opened.Id, "billing")
	assert.ErrorIs(t, err, ErrInvalidSelection)
}
