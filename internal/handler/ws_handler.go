package handler

import (
	"go-pos-ledger/internal/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// WSHandler streams record change events to admin clients.
type WSHandler struct {
	hub *ws.Hub
}

func NewWSHandler(hub *ws.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

// RequireUpgrade rejects plain HTTP requests to the feed
func (h *WSHandler) RequireUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return c.SendStatus(fiber.StatusUpgradeRequired)
}

// Stream registers the connection with the hub until the client goes away
// GET /ws?token=<jwt>
func (h *WSHandler) Stream() fiber.Handler {
	return websocket.New(func(c *websocket.Conn) {
		h.hub.Register <- c
		defer func() { h.hub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	})
}
