package dtos

import "github.com/priyansh-ag/jobbot-backend/internal/models"

type UserProfileCreationRequest struct {
	PersonalInfo models.PersonalInfo `json:"personal_info" binding:"required"`

	// Optional Fields
	Experience     []models.Experience    `json:"experience" binding:"omitempty,dive"`
	Education      []models.Education     `json:"education"`
	Skills         []string               `json:"skills"`
	Certifications []string               `json:"certifications"`
	Preferences    models.UserPreferences `json:"preferences"`
}

type UserProfilePatchRequest struct {
	PersonalInfo   *models.PersonalInfo    `json:"personal_info"`
	Experience     *[]models.Experience    `json:"experience" binding:"omitempty,dive"`
	Education      *[]models.Education     `json:"education"`
	Skills         *[]string               `json:"skills"`
	Certifications *[]string               `json:"certifications"`
	Preferences    *models.UserPreferences `json:"preferences"`
}
