package service

import (
	"context"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"nextel-storefront-be/internal/constant"
	"nextel-storefront-be/internal/dto"
	"nextel-storefront-be/internal/entity"
	"nextel-storefront-be/internal/repository/memory"
	"nextel-storefront-be/pkg/analytics"

	"github.com/google/uuid"
)

// ConversationPusher receives live conversation updates for fan-out to
// connected websocket clients. Implementations must not block.
type ConversationPusher interface {
	PushTyping(conversationId uuid.UUID)
	PushEntry(conversationId uuid.UUID, entry entity.TranscriptEntry)
}

type nopPusher struct{}

func (nopPusher) PushTyping(uuid.UUID)                        {}
func (nopPusher) PushEntry(uuid.UUID, entity.TranscriptEntry) {}

type IConversationService interface {
	Open(ctx context.Context) (*dto.ConversationResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ConversationResponse, error)
	SelectOption(ctx context.Context, id uuid.UUID, optionId string) (*dto.ConversationResponse, error)
	Restart(ctx context.Context, id uuid.UUID) (*dto.ConversationResponse, error)
}

type conversationService struct {
	conversations *memory.ConversationRepository
	sink          analytics.Sink
	pusher        ConversationPusher

	// Bot replies land after baseDelay plus a uniform slice of jitter, the
	// cadence users expect from a typing bot.
	baseDelay time.Duration
	jitter    time.Duration
}

func NewConversationService(
	conversations *memory.ConversationRepository,
	sink analytics.Sink,
	pusher ConversationPusher,
	baseDelay time.Duration,
	jitter time.Duration,
) IConversationService {
	if pusher == nil {
		pusher = nopPusher{}
	}
	return &conversationService{
		conversations: conversations,
		sink:          sink,
		pusher:        pusher,
		baseDelay:     baseDelay,
		jitter:        jitter,
	}
}

func (cs *conversationService) Open(ctx context.Context) (*dto.ConversationResponse, error) {
	root := constant.DialogueIndex[constant.DialogueRootId]

	conv := &entity.Conversation{
		Id:            uuid.New(),
		CurrentNodeId: root.Id,
		Path:          []string{constant.DialogueRootPath},
		Transcript:    []entity.TranscriptEntry{botEntry(root)},
	}
	cs.conversations.Save(conv)

	cs.sink.Emit(constant.EventChatbotOpened, map[string]string{
		"conversation_id": conv.Id.String(),
	})

	conv.Mu.Lock()
	defer conv.Mu.Unlock()
	return toConversationResponse(conv), nil
}

func (cs *conversationService) Get(ctx context.Context, id uuid.UUID) (*dto.ConversationResponse, error) {
	conv, found := cs.conversations.Get(id)
	if !found {
		return nil, ErrConversationNotFound
	}

	conv.Mu.Lock()
	defer conv.Mu.Unlock()
	return toConversationResponse(conv), nil
}

func (cs *conversationService) SelectOption(ctx context.Context, id uuid.UUID, optionId string) (*dto.ConversationResponse, error) {
	conv, found := cs.conversations.Get(id)
	if !found {
		return nil, ErrConversationNotFound
	}

	conv.Mu.Lock()

	if conv.AwaitingReply {
		conv.Mu.Unlock()
		return nil, ErrReplyPending
	}

	current := constant.DialogueIndex[conv.CurrentNodeId]
	if current == nil {
		conv.Mu.Unlock()
		return nil, ErrConversationNotFound
	}

	next := current.Option(optionId)
	if next == nil {
		conv.Mu.Unlock()
		return nil, ErrInvalidSelection
	}

	conv.Transcript = append(conv.Transcript, entity.TranscriptEntry{
		Speaker:   entity.SpeakerUser,
		Text:      next.Label,
		CreatedAt: time.Now().UTC(),
	})
	conv.Path = append(conv.Path, next.Label)
	conv.CurrentNodeId = next.Id
	conv.AwaitingReply = true

	generation := conv.Generation
	depth := conv.Depth()
	path := strings.Join(conv.Path, " > ")
	res := toConversationResponse(conv)
	conv.Mu.Unlock()

	cs.conversations.Save(conv)

	cs.sink.Emit(constant.EventChatbotOptionSelected, map[string]string{
		"conversation_id": conv.Id.String(),
		"option_id":       next.Id,
		"option_label":    next.Label,
		"chat_depth":      strconv.Itoa(depth),
	})
	cs.sink.Emit(constant.EventChatbotPath, map[string]string{
		"conversation_id": conv.Id.String(),
		"chat_path":       path,
	})

	cs.pusher.PushTyping(conv.Id)
	time.AfterFunc(cs.replyDelay(), func() {
		cs.commitReply(conv, generation, next)
	})

	return res, nil
}

func (cs *conversationService) Restart(ctx context.Context, id uuid.UUID) (*dto.ConversationResponse, error) {
	conv, found := cs.conversations.Get(id)
	if !found {
		return nil, ErrConversationNotFound
	}

	root := constant.DialogueIndex[constant.DialogueRootId]
	entry := botEntry(root)

	conv.Mu.Lock()
	conv.Generation++
	conv.CurrentNodeId = root.Id
	conv.Path = []string{constant.DialogueRootPath}
	conv.Transcript = []entity.TranscriptEntry{entry}
	conv.AwaitingReply = false
	res := toConversationResponse(conv)
	conv.Mu.Unlock()

	cs.conversations.Save(conv)

	cs.sink.Emit(constant.EventChatbotRestart, map[string]string{
		"conversation_id": conv.Id.String(),
	})
	cs.pusher.PushEntry(conv.Id, entry)

	return res, nil
}

// commitReply appends the bot's delayed reply. A restart bumps the generation
// counter, so a reply scheduled before the restart finds a stale generation
// and is dropped without touching the transcript.
func (cs *conversationService) commitReply(conv *entity.Conversation, generation uint64, node *entity.DialogueNode) {
	entry := botEntry(node)

	conv.Mu.Lock()
	if conv.Generation != generation {
		conv.Mu.Unlock()
		return
	}
	conv.Transcript = append(conv.Transcript, entry)
	conv.AwaitingReply = false
	conv.Mu.Unlock()

	cs.conversations.Save(conv)
	cs.pusher.PushEntry(conv.Id, entry)
}

func (cs *conversationService) replyDelay() time.Duration {
	if cs.jitter <= 0 {
		return cs.baseDelay
	}
	return cs.baseDelay + time.Duration(rand.Int63n(int64(cs.jitter)))
}

func botEntry(node *entity.DialogueNode) entity.TranscriptEntry {
	options := make([]entity.OfferedOption, 0, len(node.Options))
	for _, opt := range node.Options {
		options = append(options, entity.OfferedOption{Id: opt.Id, Label: opt.Label})
	}
	return entity.TranscriptEntry{
		Speaker:   entity.SpeakerBot,
		Text:      node.Message,
		Options:   options,
		CreatedAt: time.Now().UTC(),
	}
}

// toConversationResponse must be called with conv.Mu held.
func toConversationResponse(conv *entity.Conversation) *dto.ConversationResponse {
	node := constant.DialogueIndex[conv.CurrentNodeId]

	transcript := make([]dto.TranscriptEntryDTO, 0, len(conv.Transcript))
	for _, e := range conv.Transcript {
		transcript = append(transcript, dto.TranscriptEntryDTO{
			Speaker:   string(e.Speaker),
			Text:      e.Text,
			Options:   e.Options,
			CreatedAt: e.CreatedAt,
		})
	}

	path := make([]string, len(conv.Path))
	copy(path, conv.Path)

	return &dto.ConversationResponse{
		Id:            conv.Id,
		CurrentNodeId: conv.CurrentNodeId,
		Path:          path,
		Depth:         conv.Depth(),
		Terminal:      node != nil && node.IsTerminal(),
		AwaitingReply: conv.AwaitingReply,
		Transcript:    transcript,
	}
}
