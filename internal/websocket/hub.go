package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"nextel-storefront-be/internal/entity"
	"nextel-storefront-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// chatChannel is the Redis pub/sub channel used to fan chat pushes out to
// other instances.
const chatChannel = "chat_events"

// Hub fans bot replies and typing indicators out to the websocket clients
// subscribed to a conversation. A conversation can have several clients
// (multiple tabs on the same session).
type Hub struct {
	clients map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// Optional Redis connection for cross-instance fan-out.
	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ConversationId] = append(h.clients[client.ConversationId], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "client registered", map[string]interface{}{
				"conversation_id": client.ConversationId,
			})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.ConversationId]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.ConversationId] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.ConversationId]) == 0 {
					delete(h.clients, client.ConversationId)
				}
			}
			h.mu.Unlock()
		}
	}
}

// PushTyping signals that the bot started composing a reply.
func (h *Hub) PushTyping(conversationId uuid.UUID) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "typing",
	})
	h.push(conversationId, data)
}

// PushEntry delivers a committed transcript entry.
func (h *Hub) PushEntry(conversationId uuid.UUID, entry entity.TranscriptEntry) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "message",
		"data": entry,
	})
	h.push(conversationId, data)
}

func (h *Hub) push(conversationId uuid.UUID, data []byte) {
	h.mu.RLock()
	clients, found := h.clients[conversationId]
	h.mu.RUnlock()

	if found {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
				h.logger.Warn("Hub", "client send buffer full, dropping connection", map[string]interface{}{
					"conversation_id": conversationId,
				})
				go func(c *Client) { h.unregister <- c }(client)
			}
		}
	}

	// Conversations live in process memory, so in a multi-instance deploy
	// the instance holding the conversation may not hold the socket.
	if h.rdb != nil {
		payload, _ := json.Marshal(map[string]interface{}{
			"conversation_id": conversationId.String(),
			"message":         json.RawMessage(data),
		})
		h.rdb.Publish(context.Background(), chatChannel, payload)
	}
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, chatChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload struct {
			ConversationId string          `json:"conversation_id"`
			Message        json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			h.logger.Warn("Hub", "unparsable cluster chat event", map[string]interface{}{
				"error": err.Error(),
			})
			continue
		}

		id, err := uuid.Parse(payload.ConversationId)
		if err != nil {
			continue
		}

		h.mu.RLock()
		clients, ok := h.clients[id]
		h.mu.RUnlock()
		if !ok {
			continue
		}
		for _, client := range clients {
			select {
			case client.Send <- payload.Message:
			default:
				go func(c *Client) { h.unregister <- c }(client)
			}
		}
	}
}
