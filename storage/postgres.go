// Package storage holds the Postgres implementations of the question
// catalog and the single-player session repo.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/manojku9/Never-Have-I-Ever/catalog"
	"github.com/manojku9/Never-Have-I-Ever/session"
)

type PostgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresRepo(ctx context.Context, connString string) (*PostgresRepo, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &PostgresRepo{pool: pool}, nil
}

func (pg *PostgresRepo) Close() {
	pg.pool.Close()
}

// Sample draws one question uniformly at random, excluding the given ids.
func (pg *PostgresRepo) Sample(ctx context.Context, excludeIDs []string) (catalog.Question, error) {
	return pg.Random(ctx, catalog.Filter{ExcludeIDs: excludeIDs})
}

func (pg *PostgresRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := pg.pool.QueryRow(ctx, "SELECT COUNT(*) FROM questions").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", catalog.ErrUnavailable, err)
	}
	return count, nil
}

func (pg *PostgresRepo) List(ctx context.Context, filter catalog.Filter) ([]catalog.Question, error) {
	rows, err := pg.pool.Query(ctx, `
		SELECT id, text, category, difficulty
		FROM questions
		WHERE ($1 = '' OR category = $1)
		  AND ($2 = '' OR difficulty = $2)
		ORDER BY created_at`,
		string(filter.Category), string(filter.Difficulty))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", catalog.ErrUnavailable, err)
	}
	defer rows.Close()

	questions := []catalog.Question{}
	for rows.Next() {
		var q catalog.Question
		if err := rows.Scan(&q.ID, &q.Text, &q.Category, &q.Difficulty); err != nil {
			return nil, fmt.Errorf("%w: %w", catalog.ErrUnavailable, err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", catalog.ErrUnavailable, err)
	}
	return questions, nil
}

func (pg *PostgresRepo) Random(ctx context.Context, filter catalog.Filter) (catalog.Question, error) {
	exclude := filter.ExcludeIDs
	if exclude == nil {
		exclude = []string{}
	}

	var q catalog.Question
	err := pg.pool.QueryRow(ctx, `
		SELECT id, text, category, difficulty
		FROM questions
		WHERE ($1 = '' OR category = $1)
		  AND ($2 = '' OR difficulty = $2)
		  AND NOT (id::text = ANY($3))
		ORDER BY RANDOM()
		LIMIT 1`,
		string(filter.Category), string(filter.Difficulty), exclude,
	).Scan(&q.ID, &q.Text, &q.Category, &q.Difficulty)

	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return catalog.Question{}, catalog.ErrNoQuestions
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return catalog.Question{}, err
		default:
			return catalog.Question{}, fmt.Errorf("%w: %w", catalog.ErrUnavailable, err)
		}
	}
	return q, nil
}

func (pg *PostgresRepo) Add(ctx context.Context, q catalog.Question) (catalog.Question, error) {
	if q.Category == "" {
		q.Category = catalog.CategoryGeneral
	}
	if q.Difficulty == "" {
		q.Difficulty = catalog.DifficultyMedium
	}

	err := pg.pool.QueryRow(ctx, `
		INSERT INTO questions(text, category, difficulty)
		VALUES ($1, $2, $3)
		RETURNING id`,
		q.Text, string(q.Category), string(q.Difficulty),
	).Scan(&q.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		// "23514" is the PostgreSQL error code for check_violation: an
		// unknown category or difficulty.
		if errors.As(err, &pgErr) && pgErr.Code == "23514" {
			return catalog.Question{}, fmt.Errorf("invalid category or difficulty")
		}
		return catalog.Question{}, fmt.Errorf("%w: %w", catalog.ErrUnavailable, err)
	}
	return q, nil
}

// Create stores a single-player session. Players are kept as a jsonb
// document, matching their shape on the wire.
func (pg *PostgresRepo) Create(ctx context.Context, s session.Session) error {
	players, err := json.Marshal(s.Players)
	if err != nil {
		return err
	}
	if s.QuestionsUsed == nil {
		s.QuestionsUsed = []string{}
	}
	_, err = pg.pool.Exec(ctx, `
		INSERT INTO game_sessions(id, players, current_round, questions_used, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		s.ID, players, s.CurrentRound, s.QuestionsUsed, s.CreatedAt)
	return err
}

func (pg *PostgresRepo) Get(ctx context.Context, id string) (session.Session, error) {
	s := session.Session{ID: id}
	var players []byte

	err := pg.pool.QueryRow(ctx, `
		SELECT players, current_round, questions_used, created_at
		FROM game_sessions
		WHERE id = $1`,
		id,
	).Scan(&players, &s.CurrentRound, &s.QuestionsUsed, &s.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return session.Session{}, session.ErrNotFound
		}
		return session.Session{}, err
	}
	if err := json.Unmarshal(players, &s.Players); err != nil {
		return session.Session{}, err
	}
	return s, nil
}

func (pg *PostgresRepo) Update(ctx context.Context, s session.Session) error {
	players, err := json.Marshal(s.Players)
	if err != nil {
		return err
	}
	if s.QuestionsUsed == nil {
		s.QuestionsUsed = []string{}
	}

	tag, err := pg.pool.Exec(ctx, `
		UPDATE game_sessions
		SET players = $2, current_round = $3, questions_used = $4
		WHERE id = $1`,
		s.ID, players, s.CurrentRound, s.QuestionsUsed)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return session.ErrNotFound
	}
	return nil
}
