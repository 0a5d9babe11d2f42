package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(store Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(store).RegisterRoutes(router.Group("/api/questions"))
	return router
}

func TestListHandler(t *testing.T) {
	t.Parallel()
	router := newTestRouter(NewMemory(fixtureQuestions()))

	testCases := []struct {
		name          string
		url           string
		expectedCount int
	}{
		{name: "all", url: "/api/questions", expectedCount: 4},
		{name: "by category", url: "/api/questions?category=funny", expectedCount: 2},
		{name: "by difficulty", url: "/api/questions?difficulty=medium", expectedCount: 2},
		{name: "combined", url: "/api/questions?category=funny&difficulty=medium", expectedCount: 0},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			res := httptest.NewRecorder()
			router.ServeHTTP(res, req)

			assert.Equal(t, http.StatusOK, res.Code)
			var questions []Question
			require.NoError(t, json.Unmarshal(res.Body.Bytes(), &questions))
			assert.Len(t, questions, tc.expectedCount)
		})
	}
}

func TestRandomHandler(t *testing.T) {
	t.Parallel()
	router := newTestRouter(NewMemory(fixtureQuestions()))

	t.Run("excludes seen ids", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/api/questions/random?exclude=q1,%20q2%20,q4", nil)
		res := httptest.NewRecorder()
		router.ServeHTTP(res, req)

		assert.Equal(t, http.StatusOK, res.Code)
		var q Question
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &q))
		assert.Equal(t, "q3", q.ID)
	})

	t.Run("pool exhausted", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/api/questions/random?exclude=q1,q2,q3,q4", nil)
		res := httptest.NewRecorder()
		router.ServeHTTP(res, req)

		assert.Equal(t, http.StatusNotFound, res.Code)
		assert.Contains(t, res.Body.String(), "No questions found")
	})
}

func TestCreateHandler(t *testing.T) {
	t.Parallel()

	t.Run("created", func(t *testing.T) {
		t.Parallel()
		store := NewMemory(nil)
		router := newTestRouter(store)

		body := `{"text":"Never have I ever tested an endpoint","category":"party","difficulty":"easy"}`
		req := httptest.NewRequest(http.MethodPost, "/api/questions", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		res := httptest.NewRecorder()
		router.ServeHTTP(res, req)

		assert.Equal(t, http.StatusCreated, res.Code)
		var q Question
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &q))
		assert.NotEmpty(t, q.ID)
		assert.Equal(t, CategoryParty, q.Category)
	})

	t.Run("invalid json", func(t *testing.T) {
		t.Parallel()
		router := newTestRouter(NewMemory(nil))

		req := httptest.NewRequest(http.MethodPost, "/api/questions", strings.NewReader(`{invalid}`))
		req.Header.Set("Content-Type", "application/json")
		res := httptest.NewRecorder()
		router.ServeHTTP(res, req)

		assert.Equal(t, http.StatusBadRequest, res.Code)
	})

	t.Run("unknown category", func(t *testing.T) {
		t.Parallel()
		router := newTestRouter(NewMemory(nil))

		body := `{"text":"valid text","category":"sports"}`
		req := httptest.NewRequest(http.MethodPost, "/api/questions", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		res := httptest.NewRecorder()
		router.ServeHTTP(res, req)

		assert.Equal(t, http.StatusBadRequest, res.Code)
	})
}
