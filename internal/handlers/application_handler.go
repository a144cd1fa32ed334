package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/priyansh-ag/jobbot-backend/internal/dtos"
	"github.com/priyansh-ag/jobbot-backend/internal/services"
)

type ApplicationHandler struct {
	ApplicationService *services.ApplicationService
}

func NewApplicationHandler(s *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{ApplicationService: s}
}

func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var req dtos.ApplicationCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	application, err := h.ApplicationService.CreateApplication(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create application: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, application)
}

func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	application, err := h.ApplicationService.GetApplication(c.Param("application_id"))
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, application)
}

func (h *ApplicationHandler) ApplicationsByUser(c *gin.Context) {
	applications, err := h.ApplicationService.ApplicationsByUser(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, applications)
}

func (h *ApplicationHandler) ApplicationsByCampaign(c *gin.Context) {
	applications, err := h.ApplicationService.ApplicationsByCampaign(c.Param("campaign_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, applications)
}

func (h *ApplicationHandler) RecentApplications(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
		return
	}
	applications, err := h.ApplicationService.RecentApplications(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, applications)
}

// ApplicationByJob returns the application submitted for one job, if any.
func (h *ApplicationHandler) ApplicationByJob(c *gin.Context) {
	application, err := h.ApplicationService.ApplicationByJob(c.Param("job_id"))
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No application for this job"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, application)
}

func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	var patch dtos.ApplicationPatchRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	application, err := h.ApplicationService.UpdateApplication(c.Param("application_id"), &patch)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, application)
}

func (h *ApplicationHandler) CountByStatus(c *gin.Context) {
	counts, err := h.ApplicationService.CountByStatus(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, counts)
}
