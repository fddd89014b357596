package websocket

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs runs one subscriber connection. Blocks until the peer disconnects.
func ServeWs(hub *Hub, c *websocket.Conn) {
	client := &Client{
		Id:     uuid.New(),
		Hub:    hub,
		Conn:   c,
		topics: make(map[string]bool),
		Send:   make(chan []byte, 64),
	}
	client.Hub.register <- client

	go client.writePump()
	client.readPump()
}
