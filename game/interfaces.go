package game

import (
	"context"

	"github.com/manojku9/Never-Have-I-Ever/catalog"
)

// QuestionCatalog is the slice of the catalog the room state machine needs:
// a uniform random draw with id exclusion, and a total count.
type QuestionCatalog interface {
	Sample(ctx context.Context, excludeIDs []string) (catalog.Question, error)
	Count(ctx context.Context) (int, error)
}

// Broadcaster fans a named event out to every connection bound to a room, or
// delivers it to a single connection (errors, the requester's own acks).
// Events broadcast from within a room's serialized operations reach each
// connection in production order.
type Broadcaster interface {
	ToRoom(roomCode, event string, payload any)
	ToConnection(connectionID, event string, payload any)
}
