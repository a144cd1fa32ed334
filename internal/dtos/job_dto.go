package dtos

import "time"

type JobCreationRequest struct {
	CampaignID string    `json:"campaign_id" binding:"required"`
	Title      string    `json:"title" binding:"required"`
	Company    string    `json:"company" binding:"required"`
	Location   string    `json:"location" binding:"required"`
	PostedAt   time.Time `json:"posted_at" binding:"required"`

	// Optional Fields
	Salary        string   `json:"salary"`
	Description   string   `json:"description"`
	Requirements  []string `json:"requirements"`
	LinkedInJobID string   `json:"linkedin_job_id"`
	LinkedInURL   string   `json:"linkedin_url"`
}

// JobPatchRequest applies only the fields that are present; nil fields leave
// the stored value untouched.
type JobPatchRequest struct {
	Status       *string   `json:"status" binding:"omitempty,oneof=monitoring applied customizing expired"`
	MatchScore   *float64  `json:"match_score" binding:"omitempty,gte=0,lte=100"`
	Urgency      *string   `json:"urgency" binding:"omitempty,oneof=low medium high critical expired"`
	Description  *string   `json:"description"`
	Requirements *[]string `json:"requirements"`
}
