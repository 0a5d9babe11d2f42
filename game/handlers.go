package game

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type Handler struct {
	coordinator *Coordinator
	registry    *Registry
	hub         *Hub
	upgrader    websocket.Upgrader
	logger      *slog.Logger
}

func NewHandler(coordinator *Coordinator, registry *Registry, hub *Hub, logger *slog.Logger) *Handler {
	return &Handler{
		coordinator: coordinator,
		registry:    registry,
		hub:         hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Origins are filtered by the router's allow-list middleware.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// WebsocketHandler upgrades the request and starts the connection's pumps.
// Each connection gets a fresh transient identity; it is not stable across
// reconnects.
func (h *Handler) WebsocketHandler(ctx *gin.Context) {
	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", "error", err, "ip", ctx.ClientIP())
		return
	}

	id := uuid.NewString()
	c := newClient(id, conn, h.coordinator, h.hub, h.logger)
	h.hub.Register(id, c.send)
	h.logger.Info("connection opened", "connection_id", id, "ip", ctx.ClientIP())

	go c.writePump()
	go c.readPump()
}

// GetRoomHandler serves the synchronous snapshot read of a room.
func (h *Handler) GetRoomHandler(ctx *gin.Context) {
	code := normalizeCode(ctx.Param("roomCode"))
	room, ok := h.registry.Lookup(code)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		return
	}
	ctx.JSON(http.StatusOK, room.Snapshot())
}

// CreateRoomHandler creates a room over plain HTTP with a caller-supplied
// host id. The room behaves like any other once a live connection binds.
func (h *Handler) CreateRoomHandler(ctx *gin.Context) {
	var body struct {
		HostID     string `json:"hostId"`
		HostName   string `json:"hostName"`
		MaxPlayers int    `json:"maxPlayers"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.HostID == "" || !validPlayerName(body.HostName) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Host ID and name are required"})
		return
	}

	room := h.registry.CreateRoom(body.HostName, body.HostID, body.MaxPlayers)
	h.logger.Info("room created over http", "room", room.Code(), "host", body.HostName)
	ctx.JSON(http.StatusCreated, room.Snapshot())
}

func (h *Handler) DeleteRoomHandler(ctx *gin.Context) {
	code := normalizeCode(ctx.Param("roomCode"))
	room, ok := h.registry.Lookup(code)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		return
	}
	room.Delete()
	ctx.JSON(http.StatusOK, gin.H{"message": "Room deleted successfully"})
}
