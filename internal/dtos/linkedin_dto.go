package dtos

type JobSearchRequest struct {
	CampaignID string   `json:"campaign_id" binding:"required"`
	Keywords   []string `json:"keywords" binding:"required,min=1"`
	Location   string   `json:"location"`
}

type NetworkApplyRequest struct {
	JobID       string `json:"job_id" binding:"required"`
	CoverLetter string `json:"cover_letter"`
}
