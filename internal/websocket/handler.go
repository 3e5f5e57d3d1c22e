package websocket

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs attaches an upgraded connection to the hub and blocks until the
// connection closes.
func ServeWs(hub *Hub, c *websocket.Conn, conversationId uuid.UUID) {
	client := &Client{Hub: hub, Conn: c, ConversationId: conversationId, Send: make(chan []byte, 256)}
	client.Hub.register <- client

	go client.writePump()
	client.readPump()
}
