package game

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// Coordinator is the façade between the transport and the room state
// machine. It decodes and validates inbound envelopes, resolves the target
// room, applies the operation and answers failures with a targeted error.
// It keeps no game state of its own.
type Coordinator struct {
	registry    *Registry
	directory   *Directory
	broadcaster Broadcaster
	logger      *slog.Logger
}

func NewCoordinator(registry *Registry, directory *Directory, broadcaster Broadcaster, logger *slog.Logger) *Coordinator {
	return &Coordinator{
		registry:    registry,
		directory:   directory,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

// Dispatch routes one inbound event from a connection.
func (c *Coordinator) Dispatch(ctx context.Context, connectionID string, env Envelope) {
	var err error
	switch env.Event {
	case EventCreateRoom:
		err = c.handleCreateRoom(connectionID, env.Data)
	case EventJoinRoom:
		err = c.handleJoinRoom(connectionID, env.Data)
	case EventLeaveRoom:
		err = c.handleLeaveRoom(connectionID, env.Data)
	case EventStartGame:
		err = c.handleStartGame(ctx, connectionID, env.Data)
	case EventPlayerSelection:
		err = c.handlePlayerSelection(connectionID, env.Data)
	case EventNextQuestion:
		err = c.handleNextQuestion(ctx, connectionID, env.Data)
	default:
		c.logger.Debug("ignoring unknown event", "event", env.Event, "connection_id", connectionID)
		return
	}

	if err != nil {
		c.logger.Info("operation rejected",
			"event", env.Event,
			"connection_id", connectionID,
			"reason", err,
		)
		c.broadcaster.ToConnection(connectionID, EventError, ErrorPayload{Message: errorMessage(err)})
	}
}

// HandleDisconnect applies the leave semantics to every room the connection
// is bound to. Safe to call more than once for the same connection: the
// second call finds no bindings and no roster entries.
func (c *Coordinator) HandleDisconnect(connectionID string) {
	for _, code := range c.directory.UnbindAll(connectionID) {
		if room, ok := c.registry.Lookup(code); ok {
			room.Leave(connectionID)
		}
	}
}

func (c *Coordinator) handleCreateRoom(connectionID string, data json.RawMessage) error {
	var payload CreateRoomPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return ErrInvalidName
	}
	if !validPlayerName(payload.HostName) {
		return ErrInvalidName
	}

	room := c.registry.CreateRoom(strings.TrimSpace(payload.HostName), connectionID, payload.MaxPlayers)
	c.directory.Bind(connectionID, room.Code())
	c.broadcaster.ToConnection(connectionID, EventRoomCreated, room.Snapshot())

	c.logger.Info("room created", "room", room.Code(), "host", payload.HostName)
	return nil
}

func (c *Coordinator) handleJoinRoom(connectionID string, data json.RawMessage) error {
	var payload JoinRoomPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return ErrRoomNotFound
	}
	if !validPlayerName(payload.PlayerName) {
		return ErrInvalidName
	}

	code := normalizeCode(payload.RoomCode)
	room, ok := c.registry.Lookup(code)
	if !ok {
		return ErrRoomNotFound
	}

	// Bind first so the joiner observes their own player-joined broadcast,
	// mirroring the socket room membership of the original protocol.
	c.directory.Bind(connectionID, code)
	if err := room.Join(strings.TrimSpace(payload.PlayerName), connectionID); err != nil {
		c.directory.Unbind(connectionID, code)
		return err
	}
	c.broadcaster.ToConnection(connectionID, EventRoomJoined, room.Snapshot())

	c.logger.Info("player joined", "room", code, "player", payload.PlayerName)
	return nil
}

func (c *Coordinator) handleLeaveRoom(connectionID string, data json.RawMessage) error {
	var payload RoomCodePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return ErrRoomNotFound
	}

	code := normalizeCode(payload.RoomCode)
	if room, ok := c.registry.Lookup(code); ok {
		room.Leave(connectionID)
	}
	c.directory.Unbind(connectionID, code)
	return nil
}

func (c *Coordinator) handleStartGame(ctx context.Context, connectionID string, data json.RawMessage) error {
	var payload RoomCodePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return ErrRoomNotFound
	}

	room, ok := c.registry.Lookup(normalizeCode(payload.RoomCode))
	if !ok {
		return ErrRoomNotFound
	}
	return room.Start(ctx, connectionID)
}

func (c *Coordinator) handlePlayerSelection(connectionID string, data json.RawMessage) error {
	var payload PlayerSelectionPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil // malformed selections are dropped like stale ones
	}

	if room, ok := c.registry.Lookup(normalizeCode(payload.RoomCode)); ok {
		room.RecordSelections(payload.SelectedPlayers)
	}
	return nil
}

func (c *Coordinator) handleNextQuestion(ctx context.Context, connectionID string, data json.RawMessage) error {
	var payload RoomCodePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return ErrRoomNotFound
	}

	room, ok := c.registry.Lookup(normalizeCode(payload.RoomCode))
	if !ok {
		return ErrRoomNotFound
	}
	// Advancing is a host privilege. The room operation itself stays
	// permissive; the policy lives at the routing boundary.
	if !room.IsHost(connectionID) {
		return ErrNotHost
	}
	return room.AdvanceQuestion(ctx)
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func validPlayerName(name string) bool {
	name = strings.TrimSpace(name)
	n := utf8.RuneCountInString(name)
	return n >= 1 && n <= 20
}
