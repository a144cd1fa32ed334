package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/priyansh-ag/jobbot-backend/internal/models"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"gorm.io/gorm"
)

const (
	defaultAIProvider = "googleai"
	defaultAIModel    = "gemini-2.5-flash"
)

// Generation kinds recorded in history rows.
const (
	GenerationCoverLetter     = "cover_letter"
	GenerationResumeSummary   = "resume_summary"
	GenerationOutreachMessage = "outreach_message"
)

type AIService struct {
	DB     *gorm.DB
	Client llms.Model

	defaultModel string
}

// NewAIService initializes the Gemini client from the environment.
func NewAIService(db *gorm.DB) *AIService {
	ctx := context.Background()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("CRITICAL ERROR: GEMINI_API_KEY is empty. Did you load the .env file?")
	}

	model := os.Getenv("AI_MODEL")
	if model == "" {
		model = defaultAIModel
	}

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		log.Fatal("Failed to create Gemini client:", err)
	}

	return &AIService{
		DB:           db,
		Client:       llm,
		defaultModel: model,
	}
}

// Preferences returns the user's stored provider/model choice, falling back
// to the service defaults.
func (s *AIService) Preferences(userID string) (*models.AIPreference, error) {
	var pref models.AIPreference
	err := s.DB.First(&pref, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.AIPreference{
			UserID:   userID,
			Provider: defaultAIProvider,
			Model:    s.defaultModel,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

func (s *AIService) SetPreferences(userID, provider, model string) error {
	pref := models.AIPreference{
		UserID:    userID,
		Provider:  provider,
		Model:     model,
		UpdatedAt: time.Now().UTC(),
	}
	return s.DB.Save(&pref).Error
}

func (s *AIService) GenerateCoverLetter(ctx context.Context, profile *models.UserProfile, job *models.Job) (string, error) {
	return s.generate(ctx, profile.ID, GenerationCoverLetter, buildCoverLetterPrompt(profile, job))
}

func (s *AIService) GenerateResumeSummary(ctx context.Context, profile *models.UserProfile, job *models.Job) (string, error) {
	return s.generate(ctx, profile.ID, GenerationResumeSummary, buildResumeSummaryPrompt(profile, job))
}

func (s *AIService) GenerateOutreachMessage(ctx context.Context, profile *models.UserProfile, job *models.Job) (string, error) {
	return s.generate(ctx, profile.ID, GenerationOutreachMessage, buildOutreachPrompt(profile, job))
}

// generate runs a single-prompt completion and records a history row. A
// provider failure is returned as-is; there is no retry.
func (s *AIService) generate(ctx context.Context, userID, kind, prompt string) (string, error) {
	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, prompt)
	if err != nil {
		log.Printf("AI generation failed (%s): %v", kind, err)
		return "", err
	}

	record := &models.AIGeneration{
		ID:     uuid.NewString(),
		UserID: userID,
		Kind:   kind,
		Model:  s.defaultModel,
	}
	if err := s.DB.Create(record).Error; err != nil {
		return "", err
	}
	return resp, nil
}

func (s *AIService) History(userID string, limit int) ([]models.AIGeneration, error) {
	var rows []models.AIGeneration
	err := s.DB.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func buildCoverLetterPrompt(profile *models.UserProfile, job *models.Job) string {
	var sb strings.Builder

	sb.WriteString("You are an expert career counselor and professional writer specializing in compelling cover letters.\n")
	sb.WriteString("Write a personalized, professional cover letter for the candidate and position below.\n")
	sb.WriteString("Keep it under 350 words, specific, and free of placeholder text.\n\n")

	writeCandidateSection(&sb, profile)
	writeJobSection(&sb, job)

	return sb.String()
}

func buildResumeSummaryPrompt(profile *models.UserProfile, job *models.Job) string {
	var sb strings.Builder

	sb.WriteString("You are an expert resume writer.\n")
	sb.WriteString("Write a 3-4 sentence professional summary tailoring the candidate below to the position below.\n\n")

	writeCandidateSection(&sb, profile)
	writeJobSection(&sb, job)

	return sb.String()
}

func buildOutreachPrompt(profile *models.UserProfile, job *models.Job) string {
	var sb strings.Builder

	sb.WriteString("You are a networking coach.\n")
	sb.WriteString("Write a short, friendly professional-network message (max 300 characters) from the candidate to the hiring team for the position below.\n\n")

	writeCandidateSection(&sb, profile)
	writeJobSection(&sb, job)

	return sb.String()
}

func writeCandidateSection(sb *strings.Builder, profile *models.UserProfile) {
	sb.WriteString("## CANDIDATE\n")
	sb.WriteString(fmt.Sprintf("Name: %s\n", profile.PersonalInfo.FullName))
	sb.WriteString(fmt.Sprintf("Location: %s\n", profile.PersonalInfo.Location))
	if len(profile.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills: %s\n", strings.Join(profile.Skills, ", ")))
	}
	for _, exp := range profile.Experience {
		sb.WriteString(fmt.Sprintf("- %s at %s (%s to %s): %s\n",
			exp.Title, exp.Company, exp.StartDate, exp.EndDate, exp.Summary))
	}
	sb.WriteString("\n")
}

func writeJobSection(sb *strings.Builder, job *models.Job) {
	sb.WriteString("## POSITION\n")
	sb.WriteString(fmt.Sprintf("Title: %s\n", job.Title))
	sb.WriteString(fmt.Sprintf("Company: %s\n", job.Company))
	sb.WriteString(fmt.Sprintf("Location: %s\n", job.Location))
	if job.Description != "" {
		sb.WriteString(fmt.Sprintf("Description: %s\n", job.Description))
	}
	if len(job.Requirements) > 0 {
		sb.WriteString(fmt.Sprintf("Requirements: %s\n", strings.Join(job.Requirements, "; ")))
	}
	sb.WriteString("\n")
}
