package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"prep-service/internal/models"
	"prep-service/internal/service"
	"prep-service/internal/srs"
)

type FlashcardHandler struct {
	Service *service.FlashcardService
}

func NewFlashcardHandler(s *service.FlashcardService) *FlashcardHandler {
	return &FlashcardHandler{Service: s}
}

func (h *FlashcardHandler) ListCards(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	cards, err := h.Service.ListCards(context.Background(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cards)
}

func (h *FlashcardHandler) CreateCard(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	var card models.Flashcard
	if err := c.ShouldBindJSON(&card); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if card.Subject == "" || card.Question == "" || card.Answer == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "subject, question and answer are required"})
		return
	}
	created, err := h.Service.CreateCard(context.Background(), userID, card)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *FlashcardHandler) DeleteCard(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if err := h.Service.DeleteCard(context.Background(), userID, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

type rateCardRequest struct {
	Rating string `json:"rating"`
}

func (h *FlashcardHandler) RateCard(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	var req rateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rating := srs.Rating(req.Rating)
	if !rating.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be one of again, hard, good, easy"})
		return
	}
	card, err := h.Service.RateCard(context.Background(), userID, c.Param("id"), rating)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		return
	}
	c.JSON(http.StatusOK, card)
}

func (h *FlashcardHandler) GetDueCards(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	cards, err := h.Service.DueCards(context.Background(), userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cards)
}

func (h *FlashcardHandler) GetStats(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	stats, err := h.Service.Stats(context.Background(), userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *FlashcardHandler) TrackStudySession(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	var session models.StudySession
	if err := c.ShouldBindJSON(&session); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	session.UserID = userID
	if err := h.Service.TrackStudySession(context.Background(), &session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, session)
}
