package dtos

import "github.com/priyansh-ag/jobbot-backend/internal/models"

type ApplicationCreationRequest struct {
	JobID      string `json:"job_id" binding:"required"`
	CampaignID string `json:"campaign_id" binding:"required"`
	UserID     string `json:"user_id" binding:"required"`

	// Optional Fields
	CoverLetter     string  `json:"cover_letter"`
	LinkedInMessage string  `json:"linkedin_message"`
	AIConfidence    float64 `json:"ai_confidence" binding:"gte=0,lte=1"`
}

type ApplicationPatchRequest struct {
	Status   *string                     `json:"status" binding:"omitempty,oneof=submitted response_received interview_scheduled rejected withdrawn"`
	Response *models.ApplicationResponse `json:"response"`
	Notes    *string                     `json:"notes"`
}
