package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"prep-service/internal/service"
)

type AnalyticsHandler struct {
	Service *service.AnalyticsService
}

func NewAnalyticsHandler(s *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{Service: s}
}

// lookbackDays reads the ?days= query, defaulting to the 30-day window.
func lookbackDays(c *gin.Context) int {
	days, err := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(service.DefaultLookbackDays)))
	if err != nil || days <= 0 {
		return service.DefaultLookbackDays
	}
	return days
}

func (h *AnalyticsHandler) GetInsights(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	insights := h.Service.Insights(context.Background(), userID, lookbackDays(c))
	c.JSON(http.StatusOK, insights)
}

func (h *AnalyticsHandler) GetProgress(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	progress := h.Service.Progress(context.Background(), userID, lookbackDays(c))
	c.JSON(http.StatusOK, progress)
}

func (h *AnalyticsHandler) GetWeaknesses(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	weaknesses := h.Service.Weaknesses(context.Background(), userID)
	c.JSON(http.StatusOK, weaknesses)
}

func (h *AnalyticsHandler) GetRecommendations(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	recommendations := h.Service.Recommendations(context.Background(), userID, lookbackDays(c))
	c.JSON(http.StatusOK, recommendations)
}
