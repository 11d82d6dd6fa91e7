package events

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Handler upgrades task board subscriptions to websocket connections
type Handler struct {
	hub    *Hub
	logger zerolog.Logger
}

// NewHandler creates a new websocket handler
func NewHandler(hub *Hub, logger zerolog.Logger) *Handler {
	return &Handler{
		hub:    hub,
		logger: logger,
	}
}

// Subscribe handles a task board subscription request
func (h *Handler) Subscribe(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to upgrade task board subscription")
		return
	}

	client := &Client{
		hub:    h.hub,
		conn:   conn,
		send:   make(chan []byte, 64),
		logger: h.logger,
	}

	h.hub.register <- client

	go client.writePump()
	go client.readPump()
}
