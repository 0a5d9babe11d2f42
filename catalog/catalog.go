// Package catalog holds the question content store: immutable "never have I
// ever ..." statements, queried by random sampling with id exclusion.
package catalog

import "errors"

var (
	ErrNoQuestions = errors.New("no-questions-available")
	ErrNotFound    = errors.New("question-not-found")

	// ErrUnavailable wraps failures of the backing store so callers can
	// distinguish "catalog is empty" from "catalog is down".
	ErrUnavailable = errors.New("catalog-unavailable")
)

type Category string

const (
	CategoryFunny    Category = "funny"
	CategoryDeep     Category = "deep"
	CategoryParty    Category = "party"
	CategoryRomantic Category = "romantic"
	CategoryWild     Category = "wild"
	CategoryGeneral  Category = "general"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type Question struct {
	ID         string     `json:"id"`
	Text       string     `json:"text"`
	Category   Category   `json:"category"`
	Difficulty Difficulty `json:"difficulty"`
}

// Filter narrows List and Random queries. Zero values mean "any".
type Filter struct {
	Category   Category
	Difficulty Difficulty
	ExcludeIDs []string
}

func (f Filter) matches(q Question) bool {
	if f.Category != "" && q.Category != f.Category {
		return false
	}
	if f.Difficulty != "" && q.Difficulty != f.Difficulty {
		return false
	}
	for _, id := range f.ExcludeIDs {
		if id == q.ID {
			return false
		}
	}
	return true
}

func validCategory(c Category) bool {
	switch c {
	case CategoryFunny, CategoryDeep, CategoryParty, CategoryRomantic, CategoryWild, CategoryGeneral:
		return true
	}
	return false
}

func validDifficulty(d Difficulty) bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}
