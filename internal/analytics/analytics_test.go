package analytics

import (
	"testing"
	"time"

	"github.com/priyansh-ag/jobbot-backend/internal/models"
)

func appSubmittedAt(t time.Time) models.Application {
	return models.Application{SubmittedAt: t}
}

func TestRate(t *testing.T) {
	tests := []struct {
		name  string
		part  int
		whole int
		want  float64
	}{
		{"Zero denominator yields zero", 4, 0, 0},
		{"Zero of anything", 0, 10, 0},
		{"Whole match", 10, 10, 100},
		{"Typical campaign", 4, 23, 400.0 / 23.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rate(tt.part, tt.whole); got != tt.want {
				t.Errorf("Rate(%d, %d) = %v, want %v", tt.part, tt.whole, got, tt.want)
			}
		})
	}
}

// 4 responses out of 23 submissions is about 17.4%.
func TestRateCampaignScenario(t *testing.T) {
	got := Rate(4, 23)
	if got < 17.3 || got > 17.5 {
		t.Errorf("Rate(4, 23) = %v, want ~17.4", got)
	}
}

func TestAvgResponseTimeDays(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	respondedAfter := func(d time.Duration) models.Application {
		return models.Application{
			SubmittedAt: base,
			Response: &models.ApplicationResponse{
				Type:       "follow_up",
				ReceivedAt: base.Add(d),
				Message:    "thanks",
			},
		}
	}

	tests := []struct {
		name string
		apps []models.Application
		want float64
	}{
		{
			name: "No applications",
			want: 0,
		},
		{
			name: "No responses",
			apps: []models.Application{appSubmittedAt(base)},
			want: 0,
		},
		{
			name: "Single response after two days",
			apps: []models.Application{respondedAfter(48 * time.Hour)},
			want: 2,
		},
		{
			name: "Mean over responded applications only",
			apps: []models.Application{
				respondedAfter(24 * time.Hour),
				respondedAfter(72 * time.Hour),
				appSubmittedAt(base),
			},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AvgResponseTimeDays(tt.apps); got != tt.want {
				t.Errorf("AvgResponseTimeDays() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplicationsByDay(t *testing.T) {
	now := time.Date(2025, 6, 30, 15, 0, 0, 0, time.UTC)
	apps := []models.Application{
		appSubmittedAt(now.Add(-2 * time.Hour)),            // today
		appSubmittedAt(now.AddDate(0, 0, -1)),              // yesterday
		appSubmittedAt(now.AddDate(0, 0, -1).Add(time.Hour)), // yesterday again
		appSubmittedAt(now.AddDate(0, 0, -29)),             // oldest in window
		appSubmittedAt(now.AddDate(0, 0, -45)),             // outside window
	}

	histogram := ApplicationsByDay(apps, now)

	if len(histogram) != 30 {
		t.Fatalf("histogram has %d entries, want 30", len(histogram))
	}
	for i := 1; i < len(histogram); i++ {
		if histogram[i].Date <= histogram[i-1].Date {
			t.Fatalf("histogram not chronologically ordered at %d: %s <= %s",
				i, histogram[i].Date, histogram[i-1].Date)
		}
	}
	if histogram[len(histogram)-1].Date != "2025-06-30" {
		t.Errorf("last entry date = %s, want 2025-06-30", histogram[len(histogram)-1].Date)
	}
	if histogram[0].Count != 1 {
		t.Errorf("oldest-day count = %d, want 1", histogram[0].Count)
	}

	var total int
	for _, day := range histogram {
		total += day.Count
	}
	if total != 4 {
		t.Errorf("histogram sums to %d, want 4 (submissions inside window)", total)
	}
}

func TestApplicationsByDayEmpty(t *testing.T) {
	histogram := ApplicationsByDay(nil, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC))
	if len(histogram) != 30 {
		t.Fatalf("histogram has %d entries, want 30", len(histogram))
	}
	for _, day := range histogram {
		if day.Count != 0 {
			t.Errorf("day %s count = %d, want 0", day.Date, day.Count)
		}
	}
}

func TestTopKeywords(t *testing.T) {
	campaigns := []models.Campaign{
		{
			Keywords:              []string{"go", "backend"},
			ApplicationsSubmitted: 10,
			Responses:             5, // 0.5
		},
		{
			Keywords:              []string{"backend", "platform"},
			ApplicationsSubmitted: 10,
			Responses:             1, // 0.1
		},
		{
			Keywords:              []string{"frontend"},
			ApplicationsSubmitted: 0, // rate 0, no division error
			Responses:             0,
		},
	}

	got := TopKeywords(campaigns, 10)
	want := []string{"go", "backend", "platform", "frontend"}
	if len(got) != len(want) {
		t.Fatalf("TopKeywords() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("TopKeywords()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTopKeywordsLimit(t *testing.T) {
	campaigns := []models.Campaign{
		{
			Keywords:              []string{"a", "b", "c", "d"},
			ApplicationsSubmitted: 2,
			Responses:             1,
		},
	}
	if got := TopKeywords(campaigns, 2); len(got) != 2 {
		t.Errorf("TopKeywords() returned %d keywords, want 2", len(got))
	}
}

func TestWeekChangePercent(t *testing.T) {
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		apps []models.Application
		want float64
	}{
		{
			name: "No applications at all",
			want: 0,
		},
		{
			name: "Empty prior window yields zero, not an error",
			apps: []models.Application{
				appSubmittedAt(now.AddDate(0, 0, -1)),
				appSubmittedAt(now.AddDate(0, 0, -2)),
			},
			want: 0,
		},
		{
			name: "Doubled week over week",
			apps: []models.Application{
				appSubmittedAt(now.AddDate(0, 0, -1)),
				appSubmittedAt(now.AddDate(0, 0, -2)),
				appSubmittedAt(now.AddDate(0, 0, -10)),
			},
			want: 100,
		},
		{
			name: "Declining week",
			apps: []models.Application{
				appSubmittedAt(now.AddDate(0, 0, -1)),
				appSubmittedAt(now.AddDate(0, 0, -9)),
				appSubmittedAt(now.AddDate(0, 0, -10)),
			},
			want: -50,
		},
		{
			name: "Submissions older than two weeks are ignored",
			apps: []models.Application{
				appSubmittedAt(now.AddDate(0, 0, -20)),
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekChangePercent(tt.apps, now); got != tt.want {
				t.Errorf("WeekChangePercent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCampaignSnapshot(t *testing.T) {
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	campaign := models.Campaign{
		ID:                    "c1",
		Name:                  "Backend search",
		Keywords:              []string{"go", "grpc", "kafka", "postgres", "redis", "extra"},
		ApplicationsSubmitted: 23,
		Responses:             4,
		Interviews:            2,
	}

	snapshot := campaignSnapshot(campaign, nil, now)

	if snapshot.ApplicationsSubmitted != 23 {
		t.Errorf("ApplicationsSubmitted = %d, want 23", snapshot.ApplicationsSubmitted)
	}
	if snapshot.ResponseRate < 17.3 || snapshot.ResponseRate > 17.5 {
		t.Errorf("ResponseRate = %v, want ~17.4", snapshot.ResponseRate)
	}
	if len(snapshot.TopPerformingKeywords) != 5 {
		t.Errorf("keywords truncated to %d, want 5", len(snapshot.TopPerformingKeywords))
	}
	if len(snapshot.DailyStats) != 7 {
		t.Errorf("daily stats has %d entries, want 7", len(snapshot.DailyStats))
	}
	for i := 1; i < len(snapshot.DailyStats); i++ {
		if snapshot.DailyStats[i].Date <= snapshot.DailyStats[i-1].Date {
			t.Fatalf("daily stats out of order at %d", i)
		}
	}
}

// Zero-application users must see a clean dashboard: zero rates and a
// zero-filled histogram rather than NaN or a division panic.
func TestZeroActivityDerivations(t *testing.T) {
	if got := Rate(0, 0); got != 0 {
		t.Errorf("response rate = %v, want 0", got)
	}
	if got := AvgResponseTimeDays(nil); got != 0 {
		t.Errorf("avg response time = %v, want 0", got)
	}
	if got := WeekChangePercent(nil, time.Now().UTC()); got != 0 {
		t.Errorf("week change = %v, want 0", got)
	}
}
