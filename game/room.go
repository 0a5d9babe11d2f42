package game

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/manojku9/Never-Have-I-Ever/catalog"
)

type Phase string

const (
	PhaseWaiting  Phase = "waiting"
	PhasePlaying  Phase = "playing"
	PhaseFinished Phase = "finished"
)

const DefaultMaxPlayers = 10

type Player struct {
	ConnectionID string
	Name         string
	Score        int
	IsHost       bool
}

// roomRemover is the slice of the registry a room needs to dissolve itself.
type roomRemover interface {
	Remove(code string)
}

// Room owns one game's shared state. Every operation runs under mu, so no
// two operations on the same room interleave; operations on different rooms
// run in parallel.
type Room struct {
	mu sync.Mutex

	code            string
	players         []*Player
	phase           Phase
	currentQuestion *catalog.Question
	usedQuestionIDs []string
	maxPlayers      int
	round           int
	createdAt       time.Time
	lastActivity    time.Time

	// closed marks a room that has been removed from the registry. A lookup
	// may still race a concurrent dissolution and hand out the pointer, so
	// operations on a closed room fail as if it were never found.
	closed bool

	catalog QuestionCatalog
	emitter Broadcaster
	remover roomRemover
}

func newRoom(code string, maxPlayers int, cat QuestionCatalog, emitter Broadcaster, remover roomRemover) *Room {
	if maxPlayers <= 0 {
		maxPlayers = DefaultMaxPlayers
	}
	now := time.Now()
	return &Room{
		code:         code,
		phase:        PhaseWaiting,
		players:      make([]*Player, 0, maxPlayers),
		maxPlayers:   maxPlayers,
		createdAt:    now,
		lastActivity: now,
		catalog:      cat,
		emitter:      emitter,
		remover:      remover,
	}
}

func (r *Room) Code() string { return r.code }

func (r *Room) Snapshot() RoomSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

func (r *Room) LastActivity() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastActivity
}

// IsHost reports whether the given connection currently belongs to the
// room's host player.
func (r *Room) IsHost(connectionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.findByConnectionLocked(connectionID)
	return p != nil && p.IsHost
}

// Join appends a new non-host player and announces it to the room.
func (r *Room) Join(name, connectionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrRoomNotFound
	}
	if len(r.players) >= r.maxPlayers {
		return ErrRoomFull
	}
	if r.phase != PhaseWaiting {
		return ErrGameInProgress
	}
	for _, p := range r.players {
		if strings.EqualFold(p.Name, name) {
			return ErrNameTaken
		}
	}

	player := &Player{ConnectionID: connectionID, Name: name}
	r.players = append(r.players, player)
	r.lastActivity = time.Now()

	r.emitter.ToRoom(r.code, EventPlayerJoined, PlayerJoinedPayload{
		Room:      r.snapshotLocked(),
		NewPlayer: playerSnapshot(player),
	})
	return nil
}

// Leave removes the player owned by connectionID. Unknown connections are a
// no-op, which makes a doubly-reported disconnect harmless. When the roster
// empties the room unregisters itself; when the host leaves, the
// earliest-joined survivor inherits the role.
func (r *Room) Leave(connectionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, p := range r.players {
		if p.ConnectionID == connectionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	r.players = append(r.players[:idx], r.players[idx+1:]...)
	r.lastActivity = time.Now()

	if len(r.players) == 0 {
		r.closed = true
		r.emitter.ToRoom(r.code, EventRoomDeleted, nil)
		r.remover.Remove(r.code)
		return true
	}

	hasHost := false
	for _, p := range r.players {
		if p.IsHost {
			hasHost = true
			break
		}
	}
	if !hasHost {
		r.players[0].IsHost = true
	}

	r.emitter.ToRoom(r.code, EventPlayerLeft, r.snapshotLocked())
	return true
}

// Start moves the room into the playing phase with a first question drawn
// uniformly from the whole catalog.
func (r *Room) Start(ctx context.Context, connectionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrRoomNotFound
	}
	requester := r.findByConnectionLocked(connectionID)
	if requester == nil || !requester.IsHost {
		return ErrNotHost
	}
	if len(r.players) < 2 {
		return ErrNotEnoughPlayers
	}
	if r.phase != PhaseWaiting {
		return ErrGameInProgress
	}

	question, err := r.catalog.Sample(ctx, nil)
	if err != nil {
		if errors.Is(err, catalog.ErrNoQuestions) {
			return ErrNoQuestions
		}
		return ErrCatalogUnavailable
	}

	r.phase = PhasePlaying
	r.round = 1
	r.currentQuestion = &question
	r.usedQuestionIDs = []string{question.ID}
	r.lastActivity = time.Now()

	r.emitter.ToRoom(r.code, EventGameStarted, r.snapshotLocked())
	return nil
}

// RecordSelections increments the score of every named player that exists in
// the roster. Outside the playing phase it is a silent no-op: stale or late
// client events are expected and not an error.
func (r *Room) RecordSelections(selectedNames []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase != PhasePlaying {
		return
	}

	for _, name := range selectedNames {
		for _, p := range r.players {
			if p.Name == name {
				p.Score++
				break
			}
		}
	}
	r.lastActivity = time.Now()

	r.emitter.ToRoom(r.code, EventScoresUpdated, ScoresUpdatedPayload{
		Room:            r.snapshotLocked(),
		SelectedPlayers: selectedNames,
		Round:           r.round,
	})
}

// AdvanceQuestion draws the next question, excluding everything the room has
// already seen. An exhausted catalog finishes the game.
func (r *Room) AdvanceQuestion(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase != PhasePlaying {
		return nil
	}

	question, err := r.catalog.Sample(ctx, r.usedQuestionIDs)
	if err != nil {
		if errors.Is(err, catalog.ErrNoQuestions) {
			r.phase = PhaseFinished
			r.currentQuestion = nil
			r.lastActivity = time.Now()
			r.emitter.ToRoom(r.code, EventGameFinished, r.snapshotLocked())
			return nil
		}
		return ErrCatalogUnavailable
	}

	r.currentQuestion = &question
	r.usedQuestionIDs = append(r.usedQuestionIDs, question.ID)
	r.round++
	r.lastActivity = time.Now()

	r.emitter.ToRoom(r.code, EventNewQuestion, r.snapshotLocked())
	return nil
}

// Delete dissolves the room regardless of its roster, notifying any members
// still connected. Used by the HTTP delete route.
func (r *Room) Delete() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	r.closed = true
	r.players = nil
	r.emitter.ToRoom(r.code, EventRoomDeleted, nil)
	r.remover.Remove(r.code)
}

func (r *Room) findByConnectionLocked(connectionID string) *Player {
	for _, p := range r.players {
		if p.ConnectionID == connectionID {
			return p
		}
	}
	return nil
}

func (r *Room) snapshotLocked() RoomSnapshot {
	players := make([]PlayerSnapshot, 0, len(r.players))
	for _, p := range r.players {
		players = append(players, playerSnapshot(p))
	}
	return RoomSnapshot{
		Code:            r.code,
		Players:         players,
		Phase:           r.phase,
		CurrentQuestion: r.currentQuestion,
		Round:           r.round,
		MaxPlayers:      r.maxPlayers,
	}
}

func playerSnapshot(p *Player) PlayerSnapshot {
	return PlayerSnapshot{
		ConnectionID: p.ConnectionID,
		Name:         p.Name,
		Score:        p.Score,
		IsHost:       p.IsHost,
	}
}
