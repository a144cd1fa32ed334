// Package analytics derives per-user and per-campaign metrics from
// application and campaign records. The aggregation functions are pure over
// slices already fetched from the store; Service feeds them.
package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/priyansh-ag/jobbot-backend/internal/models"
)

const (
	histogramDays  = 30
	dashboardDays  = 7
	topKeywordsMax = 10
)

type DailyCount struct {
	Date  string `json:"date"` // YYYY-MM-DD, UTC
	Count int    `json:"count"`
}

type DailyStats struct {
	Date                  string `json:"date"`
	ApplicationsSubmitted int    `json:"applications_submitted"`
	ResponsesReceived     int    `json:"responses_received"`
	InterviewsScheduled   int    `json:"interviews_scheduled"`
}

type CampaignAnalytics struct {
	CampaignID            string       `json:"campaign_id"`
	CampaignName          string       `json:"campaign_name"`
	ApplicationsSubmitted int          `json:"applications_submitted"`
	ResponseRate          float64      `json:"response_rate"`
	InterviewRate         float64      `json:"interview_rate"`
	AvgResponseTime       float64      `json:"avg_response_time"` // days
	TopPerformingKeywords []string     `json:"top_performing_keywords"`
	DailyStats            []DailyStats `json:"daily_stats"`
}

type UserAnalytics struct {
	UserID                string              `json:"user_id"`
	TotalApplications     int                 `json:"total_applications"`
	TotalResponses        int                 `json:"total_responses"`
	TotalInterviews       int                 `json:"total_interviews"`
	OverallResponseRate   float64             `json:"overall_response_rate"`
	OverallInterviewRate  float64             `json:"overall_interview_rate"`
	AvgResponseTime       float64             `json:"avg_response_time"`
	ApplicationsByDay     []DailyCount        `json:"applications_by_day"`
	TopPerformingKeywords []string            `json:"top_performing_keywords"`
	CampaignAnalytics     []CampaignAnalytics `json:"campaign_analytics"`
}

type DashboardStats struct {
	TotalApplications     int          `json:"total_applications"`
	ResponseRate          float64      `json:"response_rate"`
	InterviewRate         float64      `json:"interview_rate"`
	AvgResponseTime       float64      `json:"avg_response_time"`
	WeekChangePercent     float64      `json:"week_change_percent"`
	ApplicationsByDay     []DailyCount `json:"applications_by_day"`
	TopPerformingKeywords []string     `json:"top_performing_keywords"`
}

// Rate converts a part/whole pair to a percentage, yielding 0 (not NaN) on
// an empty denominator.
func Rate(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

// AvgResponseTimeDays averages (received_at - submitted_at) in days over
// applications that have a response; 0 if none have one.
func AvgResponseTimeDays(apps []models.Application) float64 {
	var total float64
	var n int
	for _, app := range apps {
		if app.Response == nil || app.Response.ReceivedAt.IsZero() {
			continue
		}
		total += app.Response.ReceivedAt.Sub(app.SubmittedAt).Hours() / 24
		n++
	}
	if n == 0 {
		return 0
	}
	return total / float64(n)
}

// ApplicationsByDay builds the trailing 30-day submission histogram, oldest
// day first, zero-filled, keyed by UTC calendar date.
func ApplicationsByDay(apps []models.Application, now time.Time) []DailyCount {
	return dailyHistogram(apps, now, histogramDays)
}

func dailyHistogram(apps []models.Application, now time.Time, days int) []DailyCount {
	byDate := make(map[string]int)
	for _, app := range apps {
		byDate[app.SubmittedAt.UTC().Format(time.DateOnly)]++
	}

	now = now.UTC()
	result := make([]DailyCount, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format(time.DateOnly)
		result = append(result, DailyCount{Date: date, Count: byDate[date]})
	}
	return result
}

// TopKeywords ranks campaign keywords by the mean response rate of the
// campaigns carrying them, best first. Ties break alphabetically so the
// ordering is stable.
func TopKeywords(campaigns []models.Campaign, limit int) []string {
	perKeyword := make(map[string][]float64)
	for _, c := range campaigns {
		var rate float64
		if c.ApplicationsSubmitted > 0 {
			rate = float64(c.Responses) / float64(c.ApplicationsSubmitted)
		}
		for _, kw := range c.Keywords {
			perKeyword[kw] = append(perKeyword[kw], rate)
		}
	}

	type ranked struct {
		keyword string
		avg     float64
	}
	rankings := make([]ranked, 0, len(perKeyword))
	for kw, rates := range perKeyword {
		var sum float64
		for _, r := range rates {
			sum += r
		}
		rankings = append(rankings, ranked{keyword: kw, avg: sum / float64(len(rates))})
	}

	sort.Slice(rankings, func(i, j int) bool {
		if rankings[i].avg != rankings[j].avg {
			return rankings[i].avg > rankings[j].avg
		}
		return rankings[i].keyword < rankings[j].keyword
	})

	if len(rankings) > limit {
		rankings = rankings[:limit]
	}
	keywords := make([]string, len(rankings))
	for i, r := range rankings {
		keywords[i] = r.keyword
	}
	return keywords
}

// WeekChangePercent compares the trailing 7 days of submissions against the
// 7 days before that, as a percentage of the prior window. An empty prior
// window yields 0 rather than a division error.
func WeekChangePercent(apps []models.Application, now time.Time) float64 {
	now = now.UTC()
	weekAgo := now.AddDate(0, 0, -dashboardDays)
	twoWeeksAgo := now.AddDate(0, 0, -2*dashboardDays)

	var current, prior int
	for _, app := range apps {
		submitted := app.SubmittedAt.UTC()
		switch {
		case submitted.After(weekAgo):
			current++
		case submitted.After(twoWeeksAgo):
			prior++
		}
	}

	if prior == 0 {
		return 0
	}
	return float64(current-prior) / float64(prior) * 100
}

func countResponses(apps []models.Application) int {
	var n int
	for _, app := range apps {
		if app.Response != nil {
			n++
		}
	}
	return n
}

func countByStatus(apps []models.Application, status string) int {
	var n int
	for _, app := range apps {
		if app.Status == status {
			n++
		}
	}
	return n
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
