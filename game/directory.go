package game

import "sync"

// Directory tracks which rooms each live connection belongs to. It is pure
// bookkeeping: no business rules, just the mapping needed to route
// transport-level disconnects (which carry no room code) and to fan events
// out per room. A connection can be bound to more than one room across
// reconnect races, so both sides are sets.
type Directory struct {
	mu     sync.RWMutex
	byConn map[string]map[string]struct{}
	byRoom map[string]map[string]struct{}
}

func NewDirectory() *Directory {
	return &Directory{
		byConn: make(map[string]map[string]struct{}),
		byRoom: make(map[string]map[string]struct{}),
	}
}

func (d *Directory) Bind(connectionID, roomCode string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.byConn[connectionID] == nil {
		d.byConn[connectionID] = make(map[string]struct{})
	}
	d.byConn[connectionID][roomCode] = struct{}{}

	if d.byRoom[roomCode] == nil {
		d.byRoom[roomCode] = make(map[string]struct{})
	}
	d.byRoom[roomCode][connectionID] = struct{}{}
}

func (d *Directory) Unbind(connectionID, roomCode string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.unbindLocked(connectionID, roomCode)
}

// UnbindAll removes every binding for the connection and returns the room
// codes it was bound to.
func (d *Directory) UnbindAll(connectionID string) []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	codes := make([]string, 0, len(d.byConn[connectionID]))
	for code := range d.byConn[connectionID] {
		codes = append(codes, code)
	}
	for _, code := range codes {
		d.unbindLocked(connectionID, code)
	}
	return codes
}

// CloseRoom drops every binding for a dissolved room, so a later room that
// happens to mint the same code cannot leak broadcasts to former members.
func (d *Directory) CloseRoom(roomCode string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for connID := range d.byRoom[roomCode] {
		if rooms := d.byConn[connID]; rooms != nil {
			delete(rooms, roomCode)
			if len(rooms) == 0 {
				delete(d.byConn, connID)
			}
		}
	}
	delete(d.byRoom, roomCode)
}

func (d *Directory) RoomsFor(connectionID string) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	codes := make([]string, 0, len(d.byConn[connectionID]))
	for code := range d.byConn[connectionID] {
		codes = append(codes, code)
	}
	return codes
}

func (d *Directory) Connections(roomCode string) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	conns := make([]string, 0, len(d.byRoom[roomCode]))
	for id := range d.byRoom[roomCode] {
		conns = append(conns, id)
	}
	return conns
}

func (d *Directory) unbindLocked(connectionID, roomCode string) {
	if rooms := d.byConn[connectionID]; rooms != nil {
		delete(rooms, roomCode)
		if len(rooms) == 0 {
			delete(d.byConn, connectionID)
		}
	}
	if conns := d.byRoom[roomCode]; conns != nil {
		delete(conns, connectionID)
		if len(conns) == 0 {
			delete(d.byRoom, roomCode)
		}
	}
}
