package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/priyansh-ag/jobbot-backend/internal/dtos"
	"github.com/priyansh-ag/jobbot-backend/internal/linkedin"
	"github.com/priyansh-ag/jobbot-backend/internal/models"
	"github.com/priyansh-ag/jobbot-backend/internal/services"
)

type LinkedInHandler struct {
	Client     *linkedin.Client
	JobService *services.JobService
}

func NewLinkedInHandler(client *linkedin.Client, jobs *services.JobService) *LinkedInHandler {
	return &LinkedInHandler{
		Client:     client,
		JobService: jobs,
	}
}

// SearchJobs is the POST /users/:user_id/linkedin/search-jobs endpoint.
// Provider results are stored as monitoring jobs on the campaign. When the
// quota is exhausted or the provider returns nothing, sample listings are
// substituted so the pipeline stays usable.
func (h *LinkedInHandler) SearchJobs(c *gin.Context) {
	var req dtos.JobSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	listings, err := h.Client.SearchJobs(c.Request.Context(), strings.Join(req.Keywords, " "), req.Location)
	if errors.Is(err, linkedin.ErrRateLimited) {
		log.Println("LinkedIn quota exhausted, falling back to sample listings")
		listings = linkedin.SampleListings(req.Keywords, time.Now())
	} else if err != nil {
		log.Println("LinkedIn search failed:", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Job search failed: " + err.Error()})
		return
	}
	if len(listings) == 0 {
		listings = linkedin.SampleListings(req.Keywords, time.Now())
	}

	jobs := make([]*models.Job, 0, len(listings))
	for _, listing := range listings {
		job, err := h.JobService.CreateJob(&dtos.JobCreationRequest{
			CampaignID:    req.CampaignID,
			Title:         listing.Title,
			Company:       listing.Company,
			Location:      listing.Location,
			PostedAt:      listing.PostedAt,
			Salary:        listing.Salary,
			Description:   listing.Description,
			LinkedInJobID: listing.ExternalID,
			LinkedInURL:   listing.URL,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store job: " + err.Error()})
			return
		}
		jobs = append(jobs, job)
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs, "source": listings[0].Source})
}

// Apply is the POST /users/:user_id/linkedin/apply endpoint
func (h *LinkedInHandler) Apply(c *gin.Context) {
	var req dtos.NetworkApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
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

	err = h.Client.SubmitApplication(c.Request.Context(), job.LinkedInJobID, req.CoverLetter)
	if errors.Is(err, linkedin.ErrRateLimited) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Daily quota exhausted"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Application failed: " + err.Error()})
		return
	}

	if err := h.JobService.MarkApplied(job.ID); err != nil && !errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RateLimit is the GET /linkedin/rate-limit endpoint
func (h *LinkedInHandler) RateLimit(c *gin.Context) {
	c.JSON(http.StatusOK, h.Client.Quota().Status())
}
