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

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{
		DB: db,
	}
}

func (s *UserService) CreateProfile(req *dtos.UserProfileCreationRequest) (*models.UserProfile, error) {
	profile := &models.UserProfile{
		ID:             uuid.NewString(),
		PersonalInfo:   req.PersonalInfo,
		Experience:     req.Experience,
		Education:      req.Education,
		Skills:         req.Skills,
		Certifications: req.Certifications,
		Preferences:    req.Preferences,
	}
	if err := s.DB.Create(profile).Error; err != nil {
		return nil, err
	}
	log.Println("Created user profile:", profile.ID)
	return profile, nil
}

func (s *UserService) GetProfile(id string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.DB.First(&profile, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *UserService) ListProfiles() ([]models.UserProfile, error) {
	var profiles []models.UserProfile
	if err := s.DB.Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (s *UserService) UpdateProfile(id string, patch *dtos.UserProfilePatchRequest) (*models.UserProfile, error) {
	updates := userPatchColumns(patch)
	updates["updated_at"] = time.Now().UTC()

	res := s.DB.Model(&models.UserProfile{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetProfile(id)
}

func (s *UserService) DeleteProfile(id string) error {
	res := s.DB.Delete(&models.UserProfile{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func userPatchColumns(patch *dtos.UserProfilePatchRequest) map[string]any {
	updates := map[string]any{}
	if patch.PersonalInfo != nil {
		updates["personal_info"] = *patch.PersonalInfo
	}
	if patch.Experience != nil {
		updates["experience"] = *patch.Experience
	}
	if patch.Education != nil {
		updates["education"] = *patch.Education
	}
	if patch.Skills != nil {
		updates["skills"] = *patch.Skills
	}
	if patch.Certifications != nil {
		updates["certifications"] = *patch.Certifications
	}
	if patch.Preferences != nil {
		updates["preferences"] = *patch.Preferences
	}
	return updates
}
