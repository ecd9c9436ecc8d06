package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"prep-service/internal/models"
	"prep-service/internal/service"
)

type AttemptHandler struct {
	Service *service.AttemptService
}

func NewAttemptHandler(s *service.AttemptService) *AttemptHandler {
	return &AttemptHandler{Service: s}
}

func (h *AttemptHandler) TrackAttempt(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	var attempt models.QuestionAttempt
	if err := c.ShouldBindJSON(&attempt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	attempt.UserID = userID
	saved, err := h.Service.TrackAttempt(context.Background(), attempt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, saved)
}

type batchAttemptRequest struct {
	Attempts []models.QuestionAttempt `json:"attempts"`
}

func (h *AttemptHandler) TrackBatch(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	var req batchAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.TrackBatch(context.Background(), userID, req.Attempts); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"saved": len(req.Attempts)})
}

func (h *AttemptHandler) TrackQuiz(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	var attempt models.QuizAttempt
	if err := c.ShouldBindJSON(&attempt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	attempt.UserID = userID
	if err := h.Service.TrackQuizAttempt(context.Background(), &attempt); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, attempt)
}
