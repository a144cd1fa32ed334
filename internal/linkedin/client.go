package linkedin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

// Listing is a raw job posting as returned by the network provider, before
// it becomes a tracked Job.
type Listing struct {
	ExternalID  string    `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Salary      string    `json:"salary,omitempty"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	PostedAt    time.Time `json:"posted_at"`
	Source      string    `json:"source"`
}

// Client talks to the professional-network job API. Calls are checked
// against the injected daily quota before they go out; there is no retry,
// failures surface to the caller immediately.
type Client struct {
	http    *http.Client
	baseURL string
	token   string
	quota   *DailyQuota
}

func NewClient(quota *DailyQuota) *Client {
	baseURL := os.Getenv("LINKEDIN_API_BASE")
	if baseURL == "" {
		baseURL = "https://api.linkedin.com/v2"
	}
	return &Client{
		http:    &http.Client{Timeout: 30 * time.Second},
		baseURL: baseURL,
		token:   os.Getenv("LINKEDIN_ACCESS_TOKEN"),
		quota:   quota,
	}
}

func (c *Client) Quota() *DailyQuota { return c.quota }

// SearchJobs queries the provider for postings matching the keywords.
func (c *Client) SearchJobs(ctx context.Context, keywords, location string) ([]Listing, error) {
	if !c.quota.Allow() {
		return nil, ErrRateLimited
	}

	params := url.Values{}
	params.Set("keywords", keywords)
	if location != "" {
		params.Set("location", location)
	}
	params.Set("count", "25")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/jobSearch?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("linkedin: job search failed: %d %s", resp.StatusCode, body)
	}

	var payload struct {
		Elements []struct {
			ID          string `json:"id"`
			Title       string `json:"title"`
			CompanyName string `json:"companyName"`
			Location    string `json:"location"`
			Description string `json:"description"`
			ListedAt    int64  `json:"listedAt"` // unix millis
		} `json:"elements"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	listings := make([]Listing, 0, len(payload.Elements))
	for _, el := range payload.Elements {
		listings = append(listings, Listing{
			ExternalID:  el.ID,
			Title:       el.Title,
			Company:     el.CompanyName,
			Location:    el.Location,
			Description: el.Description,
			URL:         "https://www.linkedin.com/jobs/view/" + el.ID,
			PostedAt:    time.UnixMilli(el.ListedAt).UTC(),
			Source:      "linkedin_api",
		})
	}
	return listings, nil
}

// SubmitApplication sends an application for an external job id.
func (c *Client) SubmitApplication(ctx context.Context, jobID, coverLetter string) error {
	if !c.quota.Allow() {
		return ErrRateLimited
	}

	body, err := json.Marshal(map[string]string{
		"job":         jobID,
		"coverLetter": coverLetter,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/jobApplications", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("linkedin: application failed: %d %s", resp.StatusCode, respBody)
	}
	return nil
}
