package catalog

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Memory is an in-process catalog. It backs the server when no database is
// configured and the game tests.
type Memory struct {
	mu        sync.RWMutex
	questions []Question
}

func NewMemory(questions []Question) *Memory {
	m := &Memory{questions: make([]Question, 0, len(questions))}
	for _, q := range questions {
		if q.ID == "" {
			q.ID = uuid.NewString()
		}
		m.questions = append(m.questions, q)
	}
	return m
}

func (m *Memory) Sample(_ context.Context, excludeIDs []string) (Question, error) {
	return m.Random(context.Background(), Filter{ExcludeIDs: excludeIDs})
}

func (m *Memory) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.questions), nil
}

func (m *Memory) List(_ context.Context, filter Filter) ([]Question, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matches := make([]Question, 0, len(m.questions))
	for _, q := range m.questions {
		if filter.matches(q) {
			matches = append(matches, q)
		}
	}
	return matches, nil
}

func (m *Memory) Random(_ context.Context, filter Filter) (Question, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matches := make([]Question, 0, len(m.questions))
	for _, q := range m.questions {
		if filter.matches(q) {
			matches = append(matches, q)
		}
	}
	if len(matches) == 0 {
		return Question{}, ErrNoQuestions
	}
	return matches[rand.Intn(len(matches))], nil
}

func (m *Memory) Add(_ context.Context, q Question) (Question, error) {
	if strings.TrimSpace(q.Text) == "" {
		return Question{}, fmt.Errorf("question text is required")
	}
	if q.Category == "" {
		q.Category = CategoryGeneral
	}
	if q.Difficulty == "" {
		q.Difficulty = DifficultyMedium
	}
	if !validCategory(q.Category) {
		return Question{}, fmt.Errorf("unknown category %q", q.Category)
	}
	if !validDifficulty(q.Difficulty) {
		return Question{}, fmt.Errorf("unknown difficulty %q", q.Difficulty)
	}
	q.ID = uuid.NewString()
	q.Text = strings.TrimSpace(q.Text)

	m.mu.Lock()
	m.questions = append(m.questions, q)
	m.mu.Unlock()
	return q, nil
}
