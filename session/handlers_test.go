package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manojku9/Never-Have-I-Ever/catalog"
)

func newHandlerFixture() (*gin.Engine, *Service, *MockQuestionSource) {
	gin.SetMode(gin.TestMode)
	svc, source := newTestService()
	router := gin.New()
	NewHandler(svc).RegisterRoutes(router.Group("/api/game"))
	return router, svc, source
}

func postJSON(router *gin.Engine, method, url, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	return res
}

func TestCreateSessionHandler(t *testing.T) {
	t.Parallel()

	t.Run("created", func(t *testing.T) {
		t.Parallel()
		router, _, _ := newHandlerFixture()

		res := postJSON(router, http.MethodPost, "/api/game/session", `{"players":["alice","bob"]}`)

		assert.Equal(t, http.StatusCreated, res.Code)
		var sess Session
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &sess))
		assert.NotEmpty(t, sess.ID)
		assert.Equal(t, 1, sess.CurrentRound)
		assert.Len(t, sess.Players, 2)
	})

	t.Run("empty players", func(t *testing.T) {
		t.Parallel()
		router, _, _ := newHandlerFixture()

		res := postJSON(router, http.MethodPost, "/api/game/session", `{"players":[]}`)

		assert.Equal(t, http.StatusBadRequest, res.Code)
		assert.Contains(t, res.Body.String(), "Players array is required")
	})
}

func TestGetSessionHandler(t *testing.T) {
	t.Parallel()
	router, svc, _ := newHandlerFixture()

	sess, err := svc.Create(context.Background(), []string{"alice"})
	require.NoError(t, err)

	res := postJSON(router, http.MethodGet, "/api/game/session/"+sess.ID, "")
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), sess.ID)

	res = postJSON(router, http.MethodGet, "/api/game/session/missing", "")
	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.Contains(t, res.Body.String(), "Game session not found")
}

func TestScoreHandler(t *testing.T) {
	t.Parallel()
	router, svc, _ := newHandlerFixture()

	sess, err := svc.Create(context.Background(), []string{"alice", "bob"})
	require.NoError(t, err)

	res := postJSON(router, http.MethodPut, "/api/game/session/"+sess.ID+"/score", `{"playerName":"bob","increment":2}`)

	assert.Equal(t, http.StatusOK, res.Code)
	var got Session
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &got))
	assert.Equal(t, 2, got.Players[1].Score)
}

func TestNextQuestionHandler(t *testing.T) {
	t.Parallel()

	t.Run("draws a question", func(t *testing.T) {
		t.Parallel()
		router, svc, source := newHandlerFixture()

		sess, err := svc.Create(context.Background(), []string{"alice"})
		require.NoError(t, err)
		source.On("Sample", []string(nil)).Return(catalog.Question{ID: "q1", Text: "first"}, nil).Once()

		res := postJSON(router, http.MethodGet, "/api/game/session/"+sess.ID+"/next-question", "")

		assert.Equal(t, http.StatusOK, res.Code)
		var q catalog.Question
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &q))
		assert.Equal(t, "q1", q.ID)
		source.AssertExpectations(t)
	})

	t.Run("pool exhausted", func(t *testing.T) {
		t.Parallel()
		router, svc, source := newHandlerFixture()

		sess, err := svc.Create(context.Background(), []string{"alice"})
		require.NoError(t, err)
		source.On("Sample", []string(nil)).Return(catalog.Question{}, catalog.ErrNoQuestions).Once()

		res := postJSON(router, http.MethodGet, "/api/game/session/"+sess.ID+"/next-question", "")

		assert.Equal(t, http.StatusNotFound, res.Code)
		assert.Contains(t, res.Body.String(), "No more questions available")
	})

	t.Run("unknown session", func(t *testing.T) {
		t.Parallel()
		router, _, _ := newHandlerFixture()

		res := postJSON(router, http.MethodGet, "/api/game/session/missing/next-question", "")

		assert.Equal(t, http.StatusNotFound, res.Code)
	})
}
