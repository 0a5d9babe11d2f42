package game

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/manojku9/Never-Have-I-Ever/catalog"
)

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) Sample(_ context.Context, excludeIDs []string) (catalog.Question, error) {
	args := m.Called(excludeIDs)
	return args.Get(0).(catalog.Question), args.Error(1)
}

func (m *MockCatalog) Count(_ context.Context) (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

type sentEvent struct {
	target   string // room code, or connection id when targeted
	targeted bool
	event    string
	payload  any
}

// recordingBroadcaster captures everything the rooms and the coordinator
// emit, in production order.
type recordingBroadcaster struct {
	mu     sync.Mutex
	events []sentEvent
}

func (b *recordingBroadcaster) ToRoom(roomCode, event string, payload any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, sentEvent{target: roomCode, event: event, payload: payload})
}

func (b *recordingBroadcaster) ToConnection(connectionID, event string, payload any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, sentEvent{target: connectionID, targeted: true, event: event, payload: payload})
}

// eventNames returns nil, not an empty slice, when nothing was recorded, so
// it compares equal against a nil expectation.
func (b *recordingBroadcaster) eventNames() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	var names []string
	for _, e := range b.events {
		names = append(names, e.event)
	}
	return names
}

func (b *recordingBroadcaster) reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = nil
}

func (b *recordingBroadcaster) all() []sentEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]sentEvent(nil), b.events...)
}
