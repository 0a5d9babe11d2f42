package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/manojku9/Never-Have-I-Ever/catalog"
)

// QuestionSource is the slice of the catalog the single-player mode draws
// from.
type QuestionSource interface {
	Sample(ctx context.Context, excludeIDs []string) (catalog.Question, error)
	Count(ctx context.Context) (int, error)
}

type Service struct {
	repo      Repo
	questions QuestionSource
}

func NewService(repo Repo, questions QuestionSource) *Service {
	return &Service{repo: repo, questions: questions}
}

func (s *Service) Create(ctx context.Context, playerNames []string) (Session, error) {
	players := make([]PlayerScore, 0, len(playerNames))
	for _, name := range playerNames {
		players = append(players, PlayerScore{Name: name})
	}

	sess := Session{
		ID:           uuid.NewString(),
		Players:      players,
		CurrentRound: 1,
		CreatedAt:    time.Now(),
	}
	if err := s.repo.Create(ctx, sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

func (s *Service) Get(ctx context.Context, id string) (Session, error) {
	return s.repo.Get(ctx, id)
}

// AddScore increments the named player's tally. An unknown name leaves the
// session unchanged, same as the multiplayer selection operation.
func (s *Service) AddScore(ctx context.Context, id, playerName string, increment int) (Session, error) {
	sess, err := s.repo.Get(ctx, id)
	if err != nil {
		return Session{}, err
	}
	if increment == 0 {
		increment = 1
	}

	for i := range sess.Players {
		if sess.Players[i].Name == playerName {
			sess.Players[i].Score += increment
			if err := s.repo.Update(ctx, sess); err != nil {
				return Session{}, err
			}
			break
		}
	}
	return sess, nil
}

// NextQuestion draws a question the session has not seen and advances the
// round counter.
func (s *Service) NextQuestion(ctx context.Context, id string) (catalog.Question, error) {
	sess, err := s.repo.Get(ctx, id)
	if err != nil {
		return catalog.Question{}, err
	}

	question, err := s.questions.Sample(ctx, sess.QuestionsUsed)
	if err != nil {
		return catalog.Question{}, err
	}

	sess.QuestionsUsed = append(sess.QuestionsUsed, question.ID)
	sess.CurrentRound++
	if err := s.repo.Update(ctx, sess); err != nil {
		return catalog.Question{}, err
	}
	return question, nil
}
