package linkedin

import (
	"testing"
	"time"
)

func TestDailyQuotaLimit(t *testing.T) {
	q := NewDailyQuota(3)

	for i := 0; i < 3; i++ {
		if !q.Allow() {
			t.Fatalf("call %d denied inside limit", i+1)
		}
	}
	if q.Allow() {
		t.Error("call allowed past the daily limit")
	}

	status := q.Status()
	if status.CallsMadeToday != 3 {
		t.Errorf("CallsMadeToday = %d, want 3", status.CallsMadeToday)
	}
	if status.CallsRemaining != 0 {
		t.Errorf("CallsRemaining = %d, want 0", status.CallsRemaining)
	}
}

func TestDailyQuotaMidnightReset(t *testing.T) {
	current := time.Date(2025, 6, 1, 23, 50, 0, 0, time.UTC)

	q := NewDailyQuota(1)
	q.now = func() time.Time { return current }
	q.day = utcMidnight(current)

	if !q.Allow() {
		t.Fatal("first call denied")
	}
	if q.Allow() {
		t.Fatal("second call allowed before reset")
	}

	// Cross midnight UTC
	current = time.Date(2025, 6, 2, 0, 5, 0, 0, time.UTC)
	if !q.Allow() {
		t.Error("call denied after the UTC date advanced")
	}

	status := q.Status()
	if status.CallsMadeToday != 1 {
		t.Errorf("CallsMadeToday after reset = %d, want 1", status.CallsMadeToday)
	}
}

func TestDailyQuotaDefaultLimit(t *testing.T) {
	q := NewDailyQuota(0)
	if q.Status().DailyLimit != DefaultDailyLimit {
		t.Errorf("DailyLimit = %d, want %d", q.Status().DailyLimit, DefaultDailyLimit)
	}
}

func TestSampleListings(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	listings := SampleListings([]string{"product", "growth"}, now)

	if len(listings) != 6 {
		t.Fatalf("got %d listings, want 6", len(listings))
	}
	for i, listing := range listings {
		if listing.Title == "" || listing.Company == "" || listing.Location == "" {
			t.Errorf("listing %d has empty core fields: %+v", i, listing)
		}
		if listing.Source != "sample" {
			t.Errorf("listing %d source = %q, want sample", i, listing.Source)
		}
		if listing.PostedAt.After(now) {
			t.Errorf("listing %d posted in the future", i)
		}
	}

	// Posting times must be staggered so urgency varies downstream.
	if !listings[1].PostedAt.Before(listings[0].PostedAt) {
		t.Error("posting times are not staggered")
	}
}

func TestTitleCase(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"ascii word", "product", "Product"},
		{"two words", "growth marketing", "Growth Marketing"},
		{"accented first rune", "développement produit", "Développement Produit"},
		{"already cased", "Data Science", "Data Science"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := titleCase(tc.in); got != tc.want {
				t.Errorf("titleCase(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSampleListingsNoKeywords(t *testing.T) {
	listings := SampleListings(nil, time.Now())
	if len(listings) != 6 {
		t.Fatalf("got %d listings, want 6", len(listings))
	}
	for _, listing := range listings {
		if listing.Title == "" {
			t.Error("listing title empty without keywords")
		}
	}
}
