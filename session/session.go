// Package session implements the single-player mode: a score tally with a
// non-repeating question draw, no roster or phase machinery.
package session

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("session-not-found")

type PlayerScore struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

type Session struct {
	ID            string        `json:"id"`
	Players       []PlayerScore `json:"players"`
	CurrentRound  int           `json:"currentRound"`
	QuestionsUsed []string      `json:"questionsUsed"`
	CreatedAt     time.Time     `json:"createdAt"`
}

type Repo interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, id string) (Session, error)
	Update(ctx context.Context, s Session) error
}
