package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureQuestions() []Question {
	return []Question{
		{ID: "q1", Text: "Never have I ever sent a text to the wrong person", Category: CategoryFunny, Difficulty: DifficultyEasy},
		{ID: "q2", Text: "Never have I ever questioned my purpose in life", Category: CategoryDeep, Difficulty: DifficultyMedium},
		{ID: "q3", Text: "Never have I ever danced on a table", Category: CategoryParty, Difficulty: DifficultyMedium},
		{ID: "q4", Text: "Never have I ever pretended to like a gift", Category: CategoryFunny, Difficulty: DifficultyEasy},
	}
}

func TestMemory_List(t *testing.T) {
	t.Parallel()
	store := NewMemory(fixtureQuestions())
	ctx := context.Background()

	all, err := store.List(ctx, Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	funny, err := store.List(ctx, Filter{Category: CategoryFunny})
	require.NoError(t, err)
	require.Len(t, funny, 2)
	for _, q := range funny {
		assert.Equal(t, CategoryFunny, q.Category)
	}

	none, err := store.List(ctx, Filter{Category: CategoryWild})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemory_RandomHonorsExclusions(t *testing.T) {
	t.Parallel()
	store := NewMemory(fixtureQuestions())
	ctx := context.Background()

	// With three of four ids excluded only one candidate remains, so
	// sampling is deterministic.
	q, err := store.Random(ctx, Filter{ExcludeIDs: []string{"q1", "q2", "q4"}})
	require.NoError(t, err)
	assert.Equal(t, "q3", q.ID)

	_, err = store.Random(ctx, Filter{ExcludeIDs: []string{"q1", "q2", "q3", "q4"}})
	assert.ErrorIs(t, err, ErrNoQuestions)
}

func TestMemory_SampleTracksRandom(t *testing.T) {
	t.Parallel()
	store := NewMemory(fixtureQuestions()[:1])

	q, err := store.Sample(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "q1", q.ID)

	_, err = store.Sample(context.Background(), []string{"q1"})
	assert.ErrorIs(t, err, ErrNoQuestions)
}

func TestMemory_EmptyStore(t *testing.T) {
	t.Parallel()
	store := NewMemory(nil)

	n, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = store.Random(context.Background(), Filter{})
	assert.ErrorIs(t, err, ErrNoQuestions)
}

func TestMemory_Add(t *testing.T) {
	t.Parallel()
	store := NewMemory(nil)
	ctx := context.Background()

	q, err := store.Add(ctx, Question{Text: "  Never have I ever stayed up for 48 hours  "})
	require.NoError(t, err)
	assert.NotEmpty(t, q.ID)
	assert.Equal(t, "Never have I ever stayed up for 48 hours", q.Text)
	assert.Equal(t, CategoryGeneral, q.Category, "category defaults")
	assert.Equal(t, DifficultyMedium, q.Difficulty, "difficulty defaults")

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMemory_AddRejectsBadInput(t *testing.T) {
	t.Parallel()
	store := NewMemory(nil)
	ctx := context.Background()

	_, err := store.Add(ctx, Question{Text: "   "})
	assert.Error(t, err)

	_, err = store.Add(ctx, Question{Text: "valid", Category: "sports"})
	assert.Error(t, err)

	_, err = store.Add(ctx, Question{Text: "valid", Difficulty: "impossible"})
	assert.Error(t, err)

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSeedIsWellFormed(t *testing.T) {
	t.Parallel()
	seed := Seed()
	require.NotEmpty(t, seed)
	for _, q := range seed {
		assert.NotEmpty(t, q.Text)
		assert.True(t, validCategory(q.Category), "category %q", q.Category)
		assert.True(t, validDifficulty(q.Difficulty), "difficulty %q", q.Difficulty)
	}
}
