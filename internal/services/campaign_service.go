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

type CampaignService struct {
	DB *gorm.DB
}

func NewCampaignService(db *gorm.DB) *CampaignService {
	return &CampaignService{
		DB: db,
	}
}

func (s *CampaignService) CreateCampaign(req *dtos.CampaignCreationRequest) (*models.Campaign, error) {
	campaign := &models.Campaign{
		ID:              uuid.NewString(),
		UserID:          req.UserID,
		Name:            req.Name,
		Status:          models.CampaignStatusActive,
		Keywords:        req.Keywords,
		Companies:       req.Companies,
		Locations:       req.Locations,
		ExperienceLevel: req.ExperienceLevel,
		SalaryRange:     req.SalaryRange,
		LastActivity:    time.Now().UTC(),
	}
	if err := s.DB.Create(campaign).Error; err != nil {
		return nil, err
	}
	log.Println("Created campaign:", campaign.ID)
	return campaign, nil
}

func (s *CampaignService) GetCampaign(id string) (*models.Campaign, error) {
	var campaign models.Campaign
	err := s.DB.First(&campaign, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

func (s *CampaignService) CampaignsByUser(userID string) ([]models.Campaign, error) {
	var campaigns []models.Campaign
	if err := s.DB.Where("user_id = ?", userID).Find(&campaigns).Error; err != nil {
		return nil, err
	}
	return campaigns, nil
}

func (s *CampaignService) ActiveCampaigns() ([]models.Campaign, error) {
	var campaigns []models.Campaign
	if err := s.DB.Where("status = ?", models.CampaignStatusActive).Find(&campaigns).Error; err != nil {
		return nil, err
	}
	return campaigns, nil
}

func (s *CampaignService) UpdateCampaign(id string, patch *dtos.CampaignPatchRequest) (*models.Campaign, error) {
	updates := campaignPatchColumns(patch)
	updates["updated_at"] = time.Now().UTC()

	res := s.DB.Model(&models.Campaign{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetCampaign(id)
}

func (s *CampaignService) DeleteCampaign(id string) error {
	res := s.DB.Delete(&models.Campaign{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateStats sets the provided counters to absolute values and bumps
// last_activity. The counters are advisory: they are not reconciled against
// Application rows, and concurrent writers are last-write-wins.
func (s *CampaignService) UpdateStats(id string, req *dtos.CampaignStatsRequest) error {
	updates := map[string]any{"last_activity": time.Now().UTC()}
	if req.ApplicationsSubmitted != nil {
		updates["applications_submitted"] = *req.ApplicationsSubmitted
	}
	if req.Responses != nil {
		updates["responses"] = *req.Responses
	}
	if req.Interviews != nil {
		updates["interviews"] = *req.Interviews
	}

	res := s.DB.Model(&models.Campaign{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func campaignPatchColumns(patch *dtos.CampaignPatchRequest) map[string]any {
	updates := map[string]any{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.Keywords != nil {
		updates["keywords"] = *patch.Keywords
	}
	if patch.Companies != nil {
		updates["companies"] = *patch.Companies
	}
	if patch.Locations != nil {
		updates["locations"] = *patch.Locations
	}
	if patch.ExperienceLevel != nil {
		updates["experience_level"] = *patch.ExperienceLevel
	}
	if patch.SalaryRange != nil {
		updates["salary_range"] = *patch.SalaryRange
	}
	return updates
}
