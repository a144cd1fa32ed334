package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/priyansh-ag/jobbot-backend/internal/analytics"
)

type AnalyticsHandler struct {
	Analytics *analytics.Service
}

func NewAnalyticsHandler(s *analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{Analytics: s}
}

// UserAnalytics is the GET /users/:user_id/analytics endpoint
func (h *AnalyticsHandler) UserAnalytics(c *gin.Context) {
	snapshot, err := h.Analytics.UserAnalytics(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// Dashboard is the GET /users/:user_id/dashboard endpoint
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	stats, err := h.Analytics.DashboardStats(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
