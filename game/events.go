package game

import (
	"encoding/json"

	"github.com/manojku9/Never-Have-I-Ever/catalog"
)

// Inbound event names (client -> server).
const (
	EventCreateRoom      = "create-room"
	EventJoinRoom        = "join-room"
	EventLeaveRoom       = "leave-room"
	EventStartGame       = "start-game"
	EventPlayerSelection = "player-selection"
	EventNextQuestion    = "next-question"
)

// Outbound event names (server -> client).
const (
	EventRoomCreated   = "room-created"
	EventRoomJoined    = "room-joined"
	EventPlayerJoined  = "player-joined"
	EventPlayerLeft    = "player-left"
	EventGameStarted   = "game-started"
	EventScoresUpdated = "scores-updated"
	EventNewQuestion   = "next-question"
	EventGameFinished  = "game-finished"
	EventRoomDeleted   = "room-deleted"
	EventError         = "error"
)

// Envelope is the wire frame in both directions. Data stays raw on the way
// in so each event can be decoded into its own payload type at the
// coordinator boundary.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// OutEnvelope is a produced event on its way to a connection.
type OutEnvelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type CreateRoomPayload struct {
	HostName   string `json:"hostName"`
	MaxPlayers int    `json:"maxPlayers"`
}

type JoinRoomPayload struct {
	RoomCode   string `json:"roomCode"`
	PlayerName string `json:"playerName"`
}

type RoomCodePayload struct {
	RoomCode string `json:"roomCode"`
}

type PlayerSelectionPayload struct {
	RoomCode        string   `json:"roomCode"`
	SelectedPlayers []string `json:"selectedPlayers"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// PlayerSnapshot and RoomSnapshot are the JSON views carried by room-scoped
// events and the HTTP room read.
type PlayerSnapshot struct {
	ConnectionID string `json:"socketId"`
	Name         string `json:"name"`
	Score        int    `json:"score"`
	IsHost       bool   `json:"isHost"`
}

type RoomSnapshot struct {
	Code            string            `json:"roomCode"`
	Players         []PlayerSnapshot  `json:"players"`
	Phase           Phase             `json:"gameState"`
	CurrentQuestion *catalog.Question `json:"currentQuestion,omitempty"`
	Round           int               `json:"currentRound"`
	MaxPlayers      int               `json:"maxPlayers"`
}

type PlayerJoinedPayload struct {
	Room      RoomSnapshot   `json:"room"`
	NewPlayer PlayerSnapshot `json:"newPlayer"`
}

type ScoresUpdatedPayload struct {
	Room            RoomSnapshot `json:"room"`
	SelectedPlayers []string     `json:"selectedPlayers"`
	Round           int          `json:"round"`
}
