// Package adzuna implements the job listing fetcher against the Adzuna
// public API.
package adzuna

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/roshanpost/jobsearch-mcp/internal/snapshot"
)

const (
	defaultBaseURL = "https://api.adzuna.com/v1/api/jobs"
	httpTimeout    = 15 * time.Second
)

// Client fetches job offers from the Adzuna public API.
type Client struct {
	appID   string
	apiKey  string
	country string // "us", "gb", "fr", …
	baseURL string
	client  *http.Client
}

// NewClient constructs a Client with a shared HTTP client.
func NewClient(appID, apiKey, country string) *Client {
	return &Client{
		appID:   appID,
		apiKey:  apiKey,
		country: country,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: httpTimeout},
	}
}

// WithBaseURL overrides the API endpoint. Used by tests.
func (c *Client) WithBaseURL(base string) *Client {
	c.baseURL = base
	return c
}

// adzunaResponse mirrors the top-level Adzuna JSON response.
type adzunaResponse struct {
	Results []adzunaResult `json:"results"`
	Count   int            `json:"count"`
}

// adzunaResult mirrors a single Adzuna job listing.
type adzunaResult struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Company     adzunaCompany  `json:"company"`
	Location    adzunaLocation `json:"location"`
	SalaryMin   *float64       `json:"salary_min"`
	SalaryMax   *float64       `json:"salary_max"`
	RedirectURL string         `json:"redirect_url"`
	Created     string         `json:"created"`
}

type adzunaCompany struct {
	DisplayName string `json:"display_name"`
}

type adzunaLocation struct {
	DisplayName string `json:"display_name"`
}

// Search retrieves up to numResults offers for a given role and location
// from the first results page, normalized into snapshot records. Skill
// extraction and the remote flag are derived here so the snapshot needs no
// further interpretation downstream.
func (c *Client) Search(ctx context.Context, role, location string, numResults int) ([]snapshot.Record, error) {
	endpoint := fmt.Sprintf("%s/%s/search/1", c.baseURL, c.country)

	params := url.Values{}
	params.Set("app_id", c.appID)
	params.Set("app_key", c.apiKey)
	params.Set("results_per_page", strconv.Itoa(numResults))
	params.Set("what", role)
	params.Set("where", location)
	params.Set("content-type", "application/json")

	reqURL := endpoint + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http GET: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("adzuna returned %d: %s", resp.StatusCode, string(body))
	}

	var apiResp adzunaResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}

	records := make([]snapshot.Record, 0, len(apiResp.Results))
	for _, r := range apiResp.Results {
		records = append(records, snapshot.Record{
			Title:       r.Title,
			Company:     r.Company.DisplayName,
			Location:    r.Location.DisplayName,
			Description: r.Description,
			SalaryMin:   r.SalaryMin,
			SalaryMax:   r.SalaryMax,
			URL:         r.RedirectURL,
			Remote:      LooksRemote(r.Title, r.Description),
			Skills:      ExtractSkills(r.Description),
			PostedDate:  r.Created,
		})
	}

	return records, nil
}
