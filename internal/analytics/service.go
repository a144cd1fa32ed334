package analytics

import (
	"time"

	"github.com/priyansh-ag/jobbot-backend/internal/models"
	"github.com/priyansh-ag/jobbot-backend/internal/services"
)

type Service struct {
	Applications *services.ApplicationService
	Campaigns    *services.CampaignService
}

func NewService(applications *services.ApplicationService, campaigns *services.CampaignService) *Service {
	return &Service{
		Applications: applications,
		Campaigns:    campaigns,
	}
}

// UserAnalytics computes the full analytics snapshot for one user.
func (s *Service) UserAnalytics(userID string) (*UserAnalytics, error) {
	apps, err := s.Applications.ApplicationsByUser(userID)
	if err != nil {
		return nil, err
	}
	campaigns, err := s.Campaigns.CampaignsByUser(userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	totalApplications := len(apps)
	totalResponses := countResponses(apps)
	totalInterviews := countByStatus(apps, models.ApplicationStatusInterviewScheduled)

	campaignAnalytics := make([]CampaignAnalytics, 0, len(campaigns))
	for _, campaign := range campaigns {
		campaignApps, err := s.Applications.ApplicationsByCampaign(campaign.ID)
		if err != nil {
			return nil, err
		}
		campaignAnalytics = append(campaignAnalytics, campaignSnapshot(campaign, campaignApps, now))
	}

	return &UserAnalytics{
		UserID:                userID,
		TotalApplications:     totalApplications,
		TotalResponses:        totalResponses,
		TotalInterviews:       totalInterviews,
		OverallResponseRate:   Rate(totalResponses, totalApplications),
		OverallInterviewRate:  Rate(totalInterviews, totalApplications),
		AvgResponseTime:       AvgResponseTimeDays(apps),
		ApplicationsByDay:     ApplicationsByDay(apps, now),
		TopPerformingKeywords: TopKeywords(campaigns, topKeywordsMax),
		CampaignAnalytics:     campaignAnalytics,
	}, nil
}

// DashboardStats condenses the analytics snapshot for the dashboard view.
func (s *Service) DashboardStats(userID string) (*DashboardStats, error) {
	snapshot, err := s.UserAnalytics(userID)
	if err != nil {
		return nil, err
	}
	apps, err := s.Applications.ApplicationsByUser(userID)
	if err != nil {
		return nil, err
	}

	histogram := snapshot.ApplicationsByDay
	if len(histogram) > dashboardDays {
		histogram = histogram[len(histogram)-dashboardDays:]
	}
	keywords := snapshot.TopPerformingKeywords
	if len(keywords) > 5 {
		keywords = keywords[:5]
	}

	return &DashboardStats{
		TotalApplications:     snapshot.TotalApplications,
		ResponseRate:          round1(snapshot.OverallResponseRate),
		InterviewRate:         round1(snapshot.OverallInterviewRate),
		AvgResponseTime:       round1(snapshot.AvgResponseTime),
		WeekChangePercent:     round1(WeekChangePercent(apps, time.Now().UTC())),
		ApplicationsByDay:     histogram,
		TopPerformingKeywords: keywords,
	}, nil
}

// campaignSnapshot derives a per-campaign breakdown. Rates come from the
// campaign's advisory counters, response times from its actual application
// rows; the daily stats are a zeroed 7-day stub pending real per-day
// tracking.
func campaignSnapshot(campaign models.Campaign, apps []models.Application, now time.Time) CampaignAnalytics {
	keywords := campaign.Keywords
	if len(keywords) > 5 {
		keywords = keywords[:5]
	}

	daily := make([]DailyStats, 0, dashboardDays)
	for i := dashboardDays - 1; i >= 0; i-- {
		daily = append(daily, DailyStats{
			Date: now.AddDate(0, 0, -i).Format(time.DateOnly),
		})
	}

	return CampaignAnalytics{
		CampaignID:            campaign.ID,
		CampaignName:          campaign.Name,
		ApplicationsSubmitted: campaign.ApplicationsSubmitted,
		ResponseRate:          Rate(campaign.Responses, campaign.ApplicationsSubmitted),
		InterviewRate:         Rate(campaign.Interviews, campaign.ApplicationsSubmitted),
		AvgResponseTime:       AvgResponseTimeDays(apps),
		TopPerformingKeywords: keywords,
		DailyStats:            daily,
	}
}
