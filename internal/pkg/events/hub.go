package events

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Action identifies what happened to a task.
type Action string

const (
	ActionCreated       Action = "task_created"
	ActionUpdated       Action = "task_updated"
	ActionStatusChanged Action = "task_status_changed"
	ActionDeleted       Action = "task_deleted"
)

// Event is pushed to subscribed dashboards whenever the task board changes.
// Clients that cannot hold a socket open keep polling the list endpoint.
type Event struct {
	Action     Action    `json:"action"`
	TaskID     int64     `json:"taskId"`
	EmployeeID int64     `json:"employeeId,omitempty"`
	Title      string    `json:"title,omitempty"`
	Status     string    `json:"status,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// Hub maintains the set of subscribed clients and broadcasts task events to them
type Hub struct {
	clients map[*Client]bool

	broadcast  chan *Event
	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		broadcast:  make(chan *Event, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		logger:     logger,
	}
}

// Run handles client registrations and event broadcasts. Call in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case event := <-h.broadcast:
			h.broadcastEvent(event)
		}
	}
}

// Publish queues a task event for broadcast. Never blocks the caller: when the
// hub is saturated the event is dropped, since pollers will pick the change up
// on the next list refresh anyway.
func (h *Hub) Publish(event *Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	select {
	case h.broadcast <- event:
	default:
		h.logger.Warn().Str("action", string(event.Action)).Int64("taskId", event.TaskID).Msg("Event hub saturated, dropping event")
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true

	h.logger.Info().
		Str("addr", client.conn.RemoteAddr().String()).
		Int("subscribers", len(h.clients)).
		Msg("Task board subscriber registered")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)

		h.logger.Info().
			Str("addr", client.conn.RemoteAddr().String()).
			Int("subscribers", len(h.clients)).
			Msg("Task board subscriber unregistered")
	}
}

func (h *Hub) broadcastEvent(event *Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.clients) == 0 {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to marshal task event")
		return
	}

	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			// Slow subscriber, drop it rather than stall the board
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}
