package game

import "errors"

var (
	ErrRoomNotFound       = errors.New("room-not-found")
	ErrRoomFull           = errors.New("room-full")
	ErrGameInProgress     = errors.New("game-in-progress")
	ErrNameTaken          = errors.New("name-taken")
	ErrNotHost            = errors.New("not-host")
	ErrNotEnoughPlayers   = errors.New("not-enough-players")
	ErrNoQuestions        = errors.New("no-questions-available")
	ErrCatalogUnavailable = errors.New("catalog-unavailable")
	ErrInvalidName        = errors.New("invalid-player-name")
)

// errorMessage maps a domain error to the human-readable message delivered
// to the requesting connection.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, ErrRoomNotFound):
		return "Room not found"
	case errors.Is(err, ErrRoomFull):
		return "Room is full"
	case errors.Is(err, ErrGameInProgress):
		return "Game is already in progress"
	case errors.Is(err, ErrNameTaken):
		return "Player name already taken"
	case errors.Is(err, ErrNotHost):
		return "Only the host can do that"
	case errors.Is(err, ErrNotEnoughPlayers):
		return "Need at least 2 players to start"
	case errors.Is(err, ErrNoQuestions):
		return "No questions available. Please seed the database."
	case errors.Is(err, ErrCatalogUnavailable):
		return "Question catalog is unavailable, try again"
	case errors.Is(err, ErrInvalidName):
		return "Player name must be 1-20 characters"
	default:
		return "Something went wrong"
	}
}
