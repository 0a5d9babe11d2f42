package catalog

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Store is the full catalog surface the HTTP handlers need. Memory and the
// Postgres repo both satisfy it.
type Store interface {
	Sample(ctx context.Context, excludeIDs []string) (Question, error)
	Count(ctx context.Context) (int, error)
	List(ctx context.Context, filter Filter) ([]Question, error)
	Random(ctx context.Context, filter Filter) (Question, error)
	Add(ctx context.Context, q Question) (Question, error)
}

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("", h.ListHandler)
	group.GET("/random", h.RandomHandler)
	group.POST("", h.CreateHandler)
}

func (h *Handler) ListHandler(ctx *gin.Context) {
	filter := Filter{
		Category:   Category(ctx.Query("category")),
		Difficulty: Difficulty(ctx.Query("difficulty")),
	}

	questions, err := h.store.List(ctx.Request.Context(), filter)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

func (h *Handler) RandomHandler(ctx *gin.Context) {
	filter := Filter{
		Category:   Category(ctx.Query("category")),
		Difficulty: Difficulty(ctx.Query("difficulty")),
	}
	if exclude := ctx.Query("exclude"); exclude != "" {
		for _, id := range strings.Split(exclude, ",") {
			if id = strings.TrimSpace(id); id != "" {
				filter.ExcludeIDs = append(filter.ExcludeIDs, id)
			}
		}
	}

	question, err := h.store.Random(ctx.Request.Context(), filter)
	if err != nil {
		if errors.Is(err, ErrNoQuestions) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "No questions found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, question)
}

func (h *Handler) CreateHandler(ctx *gin.Context) {
	var q Question
	if err := ctx.ShouldBindJSON(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.store.Add(ctx.Request.Context(), q)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, created)
}
