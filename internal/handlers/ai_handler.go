package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/priyansh-ag/jobbot-backend/internal/dtos"
	"github.com/priyansh-ag/jobbot-backend/internal/models"
	"github.com/priyansh-ag/jobbot-backend/internal/services"
)

type AIHandler struct {
	AIService   *services.AIService
	UserService *services.UserService
	JobService  *services.JobService
}

func NewAIHandler(ai *services.AIService, users *services.UserService, jobs *services.JobService) *AIHandler {
	return &AIHandler{
		AIService:   ai,
		UserService: users,
		JobService:  jobs,
	}
}

func (h *AIHandler) GetPreferences(c *gin.Context) {
	pref, err := h.AIService.Preferences(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pref)
}

func (h *AIHandler) SetPreferences(c *gin.Context) {
	var req dtos.AIPreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if err := h.AIService.SetPreferences(c.Param("user_id"), req.Provider, req.Model); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GenerateCoverLetter is the POST /users/:user_id/ai/generate-cover-letter
// endpoint
func (h *AIHandler) GenerateCoverLetter(c *gin.Context) {
	h.generate(c, h.AIService.GenerateCoverLetter)
}

func (h *AIHandler) GenerateResumeSummary(c *gin.Context) {
	h.generate(c, h.AIService.GenerateResumeSummary)
}

func (h *AIHandler) GenerateOutreachMessage(c *gin.Context) {
	h.generate(c, h.AIService.GenerateOutreachMessage)
}

func (h *AIHandler) generate(c *gin.Context, fn func(context.Context, *models.UserProfile, *models.Job) (string, error)) {
	var req dtos.AIGenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	profile, err := h.UserService.GetProfile(c.Param("user_id"))
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	job, err := h.JobService.GetJob(req.JobID)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	text, err := fn(c.Request.Context(), profile, job)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "AI generation failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "content": text})
}

func (h *AIHandler) History(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
		return
	}
	rows, err := h.AIService.History(c.Param("user_id"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}
