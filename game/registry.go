package game

import (
	"crypto/rand"
	"math/big"
	"sync"
	"time"
)

const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength   = 6
)

// Registry owns the code -> room mapping. Code generation, the collision
// check and the insert happen under one lock, so concurrent creations can
// never mint the same code; a collision retries generation instead of
// failing the caller.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]*Room

	catalog   QuestionCatalog
	emitter   Broadcaster
	directory *Directory
}

func NewRegistry(cat QuestionCatalog, emitter Broadcaster, directory *Directory) *Registry {
	return &Registry{
		rooms:     make(map[string]*Room),
		catalog:   cat,
		emitter:   emitter,
		directory: directory,
	}
}

// CreateRoom registers a fresh room with the creator as its sole, host
// player.
func (reg *Registry) CreateRoom(hostName, hostConnectionID string, maxPlayers int) *Room {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	var code string
	for {
		code = generateCode()
		if _, taken := reg.rooms[code]; !taken {
			break
		}
	}

	room := newRoom(code, maxPlayers, reg.catalog, reg.emitter, reg)
	room.players = append(room.players, &Player{
		ConnectionID: hostConnectionID,
		Name:         hostName,
		IsHost:       true,
	})
	reg.rooms[code] = room
	return room
}

func (reg *Registry) Lookup(code string) (*Room, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	room, ok := reg.rooms[code]
	return room, ok
}

// Remove deletes the room and drops its directory bindings; idempotent.
// Rooms emit their room-deleted notice before calling Remove, so members
// still see it: the deliveries are already queued when the bindings go.
func (reg *Registry) Remove(code string) {
	reg.mu.Lock()
	delete(reg.rooms, code)
	reg.mu.Unlock()

	reg.directory.CloseRoom(code)
}

// PruneIdle dissolves every room whose last activity is older than maxIdle
// and returns how many were removed.
func (reg *Registry) PruneIdle(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	reg.mu.RLock()
	rooms := make([]*Room, 0, len(reg.rooms))
	for _, room := range reg.rooms {
		rooms = append(rooms, room)
	}
	reg.mu.RUnlock()

	pruned := 0
	for _, room := range rooms {
		if room.LastActivity().Before(cutoff) {
			room.Delete()
			pruned++
		}
	}
	return pruned
}

func (reg *Registry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.rooms)
}

func generateCode() string {
	code := make([]byte, codeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeAlphabet))))
		if err != nil {
			// crypto/rand reading from the OS should not fail; if it
			// somehow does, a zeroed index still yields a valid code.
			n = big.NewInt(0)
		}
		code[i] = codeAlphabet[n.Int64()]
	}
	return string(code)
}
