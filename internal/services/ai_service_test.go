package services

import (
	"strings"
	"testing"

	"github.com/priyansh-ag/jobbot-backend/internal/models"
)

func testProfile() *models.UserProfile {
	return &models.UserProfile{
		ID: "u1",
		PersonalInfo: models.PersonalInfo{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Phone:    "555-0100",
			Location: "Austin, TX",
		},
		Skills: []string{"Go", "PostgreSQL"},
		Experience: []models.Experience{
			{Title: "Backend Engineer", Company: "Acme", StartDate: "2021-03", EndDate: "present", Summary: "Built APIs"},
		},
	}
}

func testJob() *models.Job {
	return &models.Job{
		ID:           "j1",
		Title:        "Senior Backend Engineer",
		Company:      "Stripe",
		Location:     "Remote",
		Description:  "Design payment APIs",
		Requirements: []string{"Go", "5+ years"},
	}
}

func TestBuildCoverLetterPrompt(t *testing.T) {
	prompt := buildCoverLetterPrompt(testProfile(), testJob())

	for _, want := range []string{"Jane Doe", "Stripe", "Senior Backend Engineer", "Go, PostgreSQL", "Backend Engineer at Acme"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if !strings.Contains(prompt, "cover letter") {
		t.Error("prompt does not say what to write")
	}
}

func TestBuildResumeSummaryPrompt(t *testing.T) {
	prompt := buildResumeSummaryPrompt(testProfile(), testJob())
	if !strings.Contains(prompt, "professional summary") {
		t.Error("prompt does not ask for a summary")
	}
	if !strings.Contains(prompt, "Stripe") {
		t.Error("prompt missing the target company")
	}
}

func TestBuildOutreachPrompt(t *testing.T) {
	prompt := buildOutreachPrompt(testProfile(), testJob())
	if !strings.Contains(prompt, "professional-network message") {
		t.Error("prompt does not ask for an outreach message")
	}
	if !strings.Contains(prompt, "Requirements: Go; 5+ years") {
		t.Error("prompt missing job requirements")
	}
}
