package session

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/manojku9/Never-Have-I-Ever/catalog"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/session", h.CreateHandler)
	group.GET("/session/:id", h.GetHandler)
	group.PUT("/session/:id/score", h.ScoreHandler)
	group.GET("/session/:id/next-question", h.NextQuestionHandler)
}

func (h *Handler) CreateHandler(ctx *gin.Context) {
	var body struct {
		Players []string `json:"players"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil || len(body.Players) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Players array is required and must not be empty"})
		return
	}

	sess, err := h.service.Create(ctx.Request.Context(), body.Players)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, sess)
}

func (h *Handler) GetHandler(ctx *gin.Context) {
	sess, err := h.service.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Game session not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, sess)
}

func (h *Handler) ScoreHandler(ctx *gin.Context) {
	var body struct {
		PlayerName string `json:"playerName"`
		Increment  int    `json:"increment"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, err := h.service.AddScore(ctx.Request.Context(), ctx.Param("id"), body.PlayerName, body.Increment)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Game session not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, sess)
}

func (h *Handler) NextQuestionHandler(ctx *gin.Context) {
	question, err := h.service.NextQuestion(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Game session not found"})
		case errors.Is(err, catalog.ErrNoQuestions):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "No more questions available"})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	ctx.JSON(http.StatusOK, question)
}
