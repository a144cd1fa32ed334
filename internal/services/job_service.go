package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/priyansh-ag/jobbot-backend/internal/dtos"
	"github.com/priyansh-ag/jobbot-backend/internal/models"
	"gorm.io/gorm"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{
		DB: db,
	}
}

// CreateJob normalizes posted_at to UTC (dropping any offset the client
// sent), fixes the application deadline at posted_at + 3h and scores the
// posting. New jobs always start in monitoring.
func (s *JobService) CreateJob(req *dtos.JobCreationRequest) (*models.Job, error) {
	postedAt := req.PostedAt.UTC()
	deadline := postedAt.Add(models.ApplicationWindow)

	job := &models.Job{
		ID:                  uuid.NewString(),
		CampaignID:          req.CampaignID,
		Title:               req.Title,
		Company:             req.Company,
		Location:            req.Location,
		Salary:              req.Salary,
		PostedAt:            postedAt,
		ApplicationDeadline: deadline,
		Status:              models.JobStatusMonitoring,
		MatchScore:          matchScore(req.Salary, req.Description, req.Requirements),
		Urgency:             urgencyFor(deadline, time.Now().UTC()),
		Description:         req.Description,
		Requirements:        req.Requirements,
		LinkedInJobID:       req.LinkedInJobID,
		LinkedInURL:         req.LinkedInURL,
	}

	if err := s.DB.Create(job).Error; err != nil {
		return nil, err
	}
	log.Println("Created job:", job.ID)
	return job, nil
}

func (s *JobService) GetJob(id string) (*models.Job, error) {
	var job models.Job
	err := s.DB.First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	refreshUrgency(&job, time.Now().UTC())
	return &job, nil
}

func (s *JobService) JobsByCampaign(campaignID string) ([]models.Job, error) {
	var jobs []models.Job
	if err := s.DB.Where("campaign_id = ?", campaignID).Find(&jobs).Error; err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	for i := range jobs {
		refreshUrgency(&jobs[i], now)
	}
	return jobs, nil
}

// ActiveJobs returns monitoring jobs whose window is still open, soonest
// deadline first.
func (s *JobService) ActiveJobs(limit int) ([]models.Job, error) {
	now := time.Now().UTC()
	var jobs []models.Job
	err := s.DB.
		Where("status = ? AND application_deadline >= ?", models.JobStatusMonitoring, now).
		Order("application_deadline asc").
		Limit(limit).
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	for i := range jobs {
		refreshUrgency(&jobs[i], now)
	}
	return jobs, nil
}

func (s *JobService) UpdateJob(id string, patch *dtos.JobPatchRequest) (*models.Job, error) {
	updates := jobPatchColumns(patch)
	updates["updated_at"] = time.Now().UTC()

	res := s.DB.Model(&models.Job{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetJob(id)
}

// MarkApplied transitions a monitoring job to applied. Jobs that are
// already applied, customizing or expired do not match the guard and
// report ErrNotFound, keeping the transition terminal.
func (s *JobService) MarkApplied(id string) error {
	res := s.DB.Model(&models.Job{}).
		Where("id = ? AND status = ?", id, models.JobStatusMonitoring).
		Updates(map[string]any{
			"status":     models.JobStatusApplied,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ExpireOldJobs flips every monitoring job whose deadline has passed to
// expired and reports how many rows changed. Safe to re-run; a second call
// finds nothing eligible.
func (s *JobService) ExpireOldJobs() (int64, error) {
	now := time.Now().UTC()
	res := s.DB.Model(&models.Job{}).
		Where("status = ? AND application_deadline < ?", models.JobStatusMonitoring, now).
		Updates(map[string]any{
			"status":     models.JobStatusExpired,
			"updated_at": now,
		})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected > 0 {
		log.Printf("Expired %d jobs", res.RowsAffected)
	}
	return res.RowsAffected, nil
}

func jobPatchColumns(patch *dtos.JobPatchRequest) map[string]any {
	updates := map[string]any{}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.MatchScore != nil {
		updates["match_score"] = *patch.MatchScore
	}
	if patch.Urgency != nil {
		updates["urgency"] = *patch.Urgency
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Requirements != nil {
		updates["requirements"] = *patch.Requirements
	}
	return updates
}

// matchScore is a deterministic heuristic over the posting itself: base 75,
// +5 for a salary mention, +10 for remote/hybrid/flexible language, +2 per
// listed requirement capped at 10, clamped to [0, 100].
func matchScore(salary, description string, requirements []string) float64 {
	score := 75.0

	if salary != "" {
		score += 5.0
	}

	desc := strings.ToLower(description)
	for _, keyword := range []string{"remote", "hybrid", "flexible"} {
		if strings.Contains(desc, keyword) {
			score += 10.0
			break
		}
	}

	if len(requirements) > 0 {
		score += min(float64(len(requirements))*2.0, 10.0)
	}

	return min(score, 100.0)
}

// urgencyFor buckets the hours left until the deadline. Both instants are
// expected in UTC.
func urgencyFor(deadline, now time.Time) string {
	hoursLeft := deadline.Sub(now).Hours()
	switch {
	case hoursLeft <= 0:
		return models.UrgencyExpired
	case hoursLeft <= 1:
		return models.UrgencyCritical
	case hoursLeft <= 2:
		return models.UrgencyHigh
	default:
		return models.UrgencyMedium
	}
}

// refreshUrgency recomputes the urgency snapshot for jobs still being
// monitored; terminal jobs keep whatever was stored.
func refreshUrgency(job *models.Job, now time.Time) {
	if job.Status == models.JobStatusMonitoring {
		job.Urgency = urgencyFor(job.ApplicationDeadline, now)
	}
}
