package models

import (
	"time"
)

// Job status values. A job starts in monitoring and only ever moves to
// applied or expired; both are terminal.
const (
	JobStatusMonitoring  = "monitoring"
	JobStatusApplied     = "applied"
	JobStatusCustomizing = "customizing"
	JobStatusExpired     = "expired"
)

// Urgency buckets derived from time left until the application deadline.
const (
	UrgencyLow      = "low"
	UrgencyMedium   = "medium"
	UrgencyHigh     = "high"
	UrgencyCritical = "critical"
	UrgencyExpired  = "expired"
)

const (
	CampaignStatusActive    = "active"
	CampaignStatusPaused    = "paused"
	CampaignStatusCompleted = "completed"
)

const (
	ApplicationStatusSubmitted          = "submitted"
	ApplicationStatusResponseReceived   = "response_received"
	ApplicationStatusInterviewScheduled = "interview_scheduled"
	ApplicationStatusRejected           = "rejected"
	ApplicationStatusWithdrawn          = "withdrawn"
)

// ApplicationWindow is the fixed window after posted_at during which a
// discovered job can still be applied to.
const ApplicationWindow = 3 * time.Hour

type Job struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CampaignID string `gorm:"index;not null" json:"campaign_id"`

	Title    string `gorm:"not null" json:"title"`
	Company  string `gorm:"not null" json:"company"`
	Location string `json:"location"`
	Salary   string `json:"salary,omitempty"`

	// PostedAt is stored as a UTC instant; any offset on the incoming
	// timestamp is discarded during creation.
	PostedAt            time.Time `json:"posted_at"`
	ApplicationDeadline time.Time `gorm:"index" json:"application_deadline"`

	Status string `gorm:"index;default:'monitoring'" json:"status"`

	MatchScore float64 `json:"match_score"` // 0-100
	// Urgency is a function of time left until the deadline. The stored
	// value is a snapshot; read paths recompute it for monitoring jobs.
	Urgency string `json:"urgency"`

	Description  string   `gorm:"type:text" json:"description"`
	Requirements []string `gorm:"serializer:json" json:"requirements"`

	LinkedInJobID string `json:"linkedin_job_id,omitempty"`
	LinkedInURL   string `json:"linkedin_url,omitempty"`
}

type Campaign struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID string `gorm:"index;not null" json:"user_id"`
	Name   string `gorm:"not null" json:"name"`
	Status string `gorm:"index;default:'active'" json:"status"`

	Keywords  []string `gorm:"serializer:json" json:"keywords"`
	Companies []string `gorm:"serializer:json" json:"companies"`
	Locations []string `gorm:"serializer:json" json:"locations"`

	ExperienceLevel string `json:"experience_level,omitempty"`
	SalaryRange     string `json:"salary_range,omitempty"`

	// Running counters, set by the stats endpoint rather than derived from
	// Application rows. They can drift from the true row counts.
	ApplicationsSubmitted int `json:"applications_submitted"`
	Responses             int `json:"responses"`
	Interviews            int `json:"interviews"`

	LastActivity time.Time `json:"last_activity"`
}

// ApplicationResponse captures an employer's reply to an application.
type ApplicationResponse struct {
	Type        string    `json:"type"` // interview_request, rejection, follow_up
	ReceivedAt  time.Time `json:"received_at"`
	Message     string    `json:"message"`
	SenderName  string    `json:"sender_name,omitempty"`
	SenderEmail string    `json:"sender_email,omitempty"`
}

type Application struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	JobID      string `gorm:"index;not null" json:"job_id"`
	CampaignID string `gorm:"index;not null" json:"campaign_id"`
	UserID     string `gorm:"index;not null" json:"user_id"`

	SubmittedAt time.Time `gorm:"index" json:"submitted_at"`
	Status      string    `gorm:"index;default:'submitted'" json:"status"`

	CoverLetter     string  `gorm:"type:text" json:"cover_letter,omitempty"`
	LinkedInMessage string  `gorm:"type:text" json:"linkedin_message,omitempty"`
	AIConfidence    float64 `json:"ai_confidence"` // 0-1

	Response *ApplicationResponse `gorm:"serializer:json" json:"response,omitempty"`
	Notes    string               `gorm:"type:text" json:"notes,omitempty"`
}

type PersonalInfo struct {
	FullName     string `json:"full_name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"required"`
	LinkedInURL  string `json:"linkedin_url,omitempty"`
	PortfolioURL string `json:"portfolio_url,omitempty"`
	Location     string `json:"location" binding:"required"`
}

type Experience struct {
	Title     string `json:"title"`
	Company   string `json:"company"`
	StartDate string `json:"start_date" binding:"omitempty,yearmonth"` // YYYY-MM
	EndDate   string `json:"end_date" binding:"omitempty,yearmonth"`   // YYYY-MM or "present"
	Summary   string `json:"description"`
}

type Education struct {
	Degree         string `json:"degree"`
	School         string `json:"school"`
	GraduationYear string `json:"graduation_year"`
}

type UserPreferences struct {
	MinSalary       int    `json:"min_salary,omitempty"`
	MaxSalary       int    `json:"max_salary,omitempty"`
	WorkArrangement string `json:"work_arrangement,omitempty"` // remote, hybrid, onsite
	OpenToRelocate  bool   `json:"willingness_to_relocate"`
}

type UserProfile struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	PersonalInfo   PersonalInfo    `gorm:"serializer:json" json:"personal_info"`
	Experience     []Experience    `gorm:"serializer:json" json:"experience"`
	Education      []Education     `gorm:"serializer:json" json:"education"`
	Skills         []string        `gorm:"serializer:json" json:"skills"`
	Certifications []string        `gorm:"serializer:json" json:"certifications"`
	Preferences    UserPreferences `gorm:"serializer:json" json:"preferences"`
}

// AIPreference stores a user's chosen text-generation provider and model.
type AIPreference struct {
	UserID    string    `gorm:"primaryKey" json:"user_id"`
	Provider  string    `json:"provider"`
	Model     string    `json:"model"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AIGeneration is one row of generation history, kept for the user-facing
// history endpoint.
type AIGeneration struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    string    `gorm:"index;not null" json:"user_id"`
	Kind      string    `json:"kind"` // cover_letter, resume_summary, outreach_message
	Model     string    `json:"model"`
}
