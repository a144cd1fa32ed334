package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/priyansh-ag/jobbot-backend/internal/dtos"
	"github.com/priyansh-ag/jobbot-backend/internal/services"
)

type CampaignHandler struct {
	CampaignService *services.CampaignService
}

func NewCampaignHandler(s *services.CampaignService) *CampaignHandler {
	return &CampaignHandler{CampaignService: s}
}

func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	var req dtos.CampaignCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	campaign, err := h.CampaignService.CreateCampaign(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create campaign: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, campaign)
}

func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	campaign, err := h.CampaignService.GetCampaign(c.Param("campaign_id"))
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, campaign)
}

func (h *CampaignHandler) CampaignsByUser(c *gin.Context) {
	campaigns, err := h.CampaignService.CampaignsByUser(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, campaigns)
}

func (h *CampaignHandler) ActiveCampaigns(c *gin.Context) {
	campaigns, err := h.CampaignService.ActiveCampaigns()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, campaigns)
}

func (h *CampaignHandler) UpdateCampaign(c *gin.Context) {
	var patch dtos.CampaignPatchRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	campaign, err := h.CampaignService.UpdateCampaign(c.Param("campaign_id"), &patch)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, campaign)
}

func (h *CampaignHandler) DeleteCampaign(c *gin.Context) {
	err := h.CampaignService.DeleteCampaign(c.Param("campaign_id"))
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UpdateStats is the PUT /campaigns/:campaign_id/stats endpoint. Counters
// are absolute values, not increments.
func (h *CampaignHandler) UpdateStats(c *gin.Context) {
	var req dtos.CampaignStatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	err := h.CampaignService.UpdateStats(c.Param("campaign_id"), &req)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
