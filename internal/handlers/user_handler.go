package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/priyansh-ag/jobbot-backend/internal/auth"
	"github.com/priyansh-ag/jobbot-backend/internal/dtos"
	"github.com/priyansh-ag/jobbot-backend/internal/services"
)

type UserHandler struct {
	UserService *services.UserService
}

func NewUserHandler(s *services.UserService) *UserHandler {
	return &UserHandler{UserService: s}
}

// CreateProfile is the POST /users endpoint. The response carries a token
// so the client can authenticate follow-up requests.
func (h *UserHandler) CreateProfile(c *gin.Context) {
	var req dtos.UserProfileCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	profile, err := h.UserService.CreateProfile(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create profile: " + err.Error()})
		return
	}

	token, err := auth.IssueToken(profile.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"profile": profile, "token": token})
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	profile, err := h.UserService.GetProfile(c.Param("user_id"))
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.UserService.ListProfiles()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profiles)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var patch dtos.UserProfilePatchRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	profile, err := h.UserService.UpdateProfile(c.Param("user_id"), &patch)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) DeleteProfile(c *gin.Context) {
	err := h.UserService.DeleteProfile(c.Param("user_id"))
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
