package services

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/priyansh-ag/jobbot-backend/internal/dtos"
	"github.com/priyansh-ag/jobbot-backend/internal/models"
	"gorm.io/gorm"
)

type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{
		DB: db,
	}
}

func (s *ApplicationService) CreateApplication(req *dtos.ApplicationCreationRequest) (*models.Application, error) {
	application := &models.Application{
		ID:              uuid.NewString(),
		JobID:           req.JobID,
		CampaignID:      req.CampaignID,
		UserID:          req.UserID,
		SubmittedAt:     time.Now().UTC(),
		Status:          models.ApplicationStatusSubmitted,
		CoverLetter:     req.CoverLetter,
		LinkedInMessage: req.LinkedInMessage,
		AIConfidence:    req.AIConfidence,
	}
	if err := s.DB.Create(application).Error; err != nil {
		return nil, err
	}
	log.Println("Created application:", application.ID)
	return application, nil
}

func (s *ApplicationService) GetApplication(id string) (*models.Application, error) {
	var application models.Application
	err := s.DB.First(&application, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &application, nil
}

func (s *ApplicationService) ApplicationsByUser(userID string) ([]models.Application, error) {
	var applications []models.Application
	err := s.DB.
		Where("user_id = ?", userID).
		Order("submitted_at desc").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (s *ApplicationService) ApplicationsByCampaign(campaignID string) ([]models.Application, error) {
	var applications []models.Application
	err := s.DB.
		Where("campaign_id = ?", campaignID).
		Order("submitted_at desc").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (s *ApplicationService) RecentApplications(limit int) ([]models.Application, error) {
	var applications []models.Application
	err := s.DB.
		Order("submitted_at desc").
		Limit(limit).
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

// ApplicationByJob returns the application submitted for a specific job,
// if any.
func (s *ApplicationService) ApplicationByJob(jobID string) (*models.Application, error) {
	var application models.Application
	err := s.DB.First(&application, "job_id = ?", jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &application, nil
}

func (s *ApplicationService) UpdateApplication(id string, patch *dtos.ApplicationPatchRequest) (*models.Application, error) {
	updates := applicationPatchColumns(patch)
	updates["updated_at"] = time.Now().UTC()

	res := s.DB.Model(&models.Application{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetApplication(id)
}

// CountByStatus groups a user's applications by status.
func (s *ApplicationService) CountByStatus(userID string) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := s.DB.Model(&models.Application{}).
		Select("status, count(*) as count").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func applicationPatchColumns(patch *dtos.ApplicationPatchRequest) map[string]any {
	updates := map[string]any{}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.Response != nil {
		updates["response"] = patch.Response
	}
	if patch.Notes != nil {
		updates["notes"] = *patch.Notes
	}
	return updates
}
