package game

import (
	"log/slog"
	"sync"
)

// Hub is the concrete Broadcaster: it owns the outbound channel of every
// registered connection and resolves room fan-out through the directory.
// Sends never block the producing room operation; a connection whose buffer
// is full has its event dropped with a warning, the same policy its write
// pump applies when the peer stops draining.
type Hub struct {
	mu        sync.RWMutex
	sends     map[string]chan<- OutEnvelope
	directory *Directory
	logger    *slog.Logger
}

func NewHub(directory *Directory, logger *slog.Logger) *Hub {
	return &Hub{
		sends:     make(map[string]chan<- OutEnvelope),
		directory: directory,
		logger:    logger,
	}
}

func (h *Hub) Register(connectionID string, send chan<- OutEnvelope) {
	h.mu.Lock()
	h.sends[connectionID] = send
	h.mu.Unlock()
}

func (h *Hub) Unregister(connectionID string) {
	h.mu.Lock()
	delete(h.sends, connectionID)
	h.mu.Unlock()
}

func (h *Hub) ToRoom(roomCode, event string, payload any) {
	for _, connID := range h.directory.Connections(roomCode) {
		h.ToConnection(connID, event, payload)
	}
}

func (h *Hub) ToConnection(connectionID, event string, payload any) {
	h.mu.RLock()
	send, ok := h.sends[connectionID]
	h.mu.RUnlock()
	if !ok {
		// Disconnected mid-operation; nothing to deliver to.
		return
	}

	select {
	case send <- OutEnvelope{Event: event, Data: payload}:
	default:
		h.logger.Warn("dropping event for slow connection",
			"connection_id", connectionID,
			"event", event,
		)
	}
}
