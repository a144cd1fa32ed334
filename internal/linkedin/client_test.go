package linkedin

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient(baseURL string, quota *DailyQuota) *Client {
	return &Client{
		http:    &http.Client{Timeout: 5 * time.Second},
		baseURL: baseURL,
		token:   "test-token",
		quota:   quota,
	}
}

func TestSearchJobs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/jobSearch" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.URL.Query().Get("keywords"); got != "golang backend" {
			t.Errorf("keywords = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"elements":[{"id":"123","title":"Backend Engineer","companyName":"Stripe","location":"Remote","description":"Build APIs","listedAt":1748750400000}]}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL, NewDailyQuota(5))
	listings, err := c.SearchJobs(context.Background(), "golang backend", "Remote")
	if err != nil {
		t.Fatalf("SearchJobs() error: %v", err)
	}
	if len(listings) != 1 {
		t.Fatalf("got %d listings, want 1", len(listings))
	}
	if listings[0].Company != "Stripe" {
		t.Errorf("company = %q, want Stripe", listings[0].Company)
	}
	if listings[0].URL != "https://www.linkedin.com/jobs/view/123" {
		t.Errorf("url = %q", listings[0].URL)
	}
	if listings[0].Source != "linkedin_api" {
		t.Errorf("source = %q", listings[0].Source)
	}
}

func TestSearchJobsQuotaExhausted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request went out despite exhausted quota")
	}))
	defer srv.Close()

	quota := NewDailyQuota(1)
	quota.Allow()

	c := testClient(srv.URL, quota)
	_, err := c.SearchJobs(context.Background(), "golang", "")
	if !errors.Is(err, ErrRateLimited) {
		t.Errorf("error = %v, want ErrRateLimited", err)
	}
}

func TestSearchJobsProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	c := testClient(srv.URL, NewDailyQuota(5))
	if _, err := c.SearchJobs(context.Background(), "golang", ""); err == nil {
		t.Error("expected error on provider failure")
	}
}

func TestSubmitApplication(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/jobApplications" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := testClient(srv.URL, NewDailyQuota(5))
	if err := c.SubmitApplication(context.Background(), "123", "Dear team"); err != nil {
		t.Errorf("SubmitApplication() error: %v", err)
	}
}

func TestSubmitApplicationRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "denied", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	c := testClient(srv.URL, NewDailyQuota(5))
	if err := c.SubmitApplication(context.Background(), "123", ""); err == nil {
		t.Error("expected error on rejected application")
	}
}
