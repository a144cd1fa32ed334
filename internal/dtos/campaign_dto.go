package dtos

type CampaignCreationRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Name   string `json:"name" binding:"required"`

	// Optional Fields
	Keywords        []string `json:"keywords"`
	Companies       []string `json:"companies"`
	Locations       []string `json:"locations"`
	ExperienceLevel string   `json:"experience_level" binding:"omitempty,oneof=Entry Mid Senior Executive"`
	SalaryRange     string   `json:"salary_range"`
}

type CampaignPatchRequest struct {
	Name            *string   `json:"name"`
	Status          *string   `json:"status" binding:"omitempty,oneof=active paused completed"`
	Keywords        *[]string `json:"keywords"`
	Companies       *[]string `json:"companies"`
	Locations       *[]string `json:"locations"`
	ExperienceLevel *string   `json:"experience_level" binding:"omitempty,oneof=Entry Mid Senior Executive"`
	SalaryRange     *string   `json:"salary_range"`
}

// CampaignStatsRequest sets counters to absolute values; omitted counters
// keep their stored value. last_activity is always bumped.
type CampaignStatsRequest struct {
	ApplicationsSubmitted *int `json:"applications_submitted" binding:"omitempty,gte=0"`
	Responses             *int `json:"responses" binding:"omitempty,gte=0"`
	Interviews            *int `json:"interviews" binding:"omitempty,gte=0"`
}
