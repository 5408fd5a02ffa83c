package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/apstld/freelance-alert-bot/internal/modules/job/domain"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

const freelancerAPI = "https://www.freelancer.com/api/projects/0.1/projects/active/"

// FreelancerFetcher reads the public Freelancer.com active-projects API.
// The endpoint answers basic queries without authentication.
type FreelancerFetcher struct {
	apiURL string
	client *http.Client
	limit  int
}

// NewFreelancerFetcher creates a fetcher against the public API
func NewFreelancerFetcher() *FreelancerFetcher {
	return &FreelancerFetcher{
		apiURL: freelancerAPI,
		client: &http.Client{Timeout: 15 * time.Second},
		limit:  50,
	}
}

// NewFreelancerFetcherWithURL overrides the API endpoint, used in tests
func NewFreelancerFetcherWithURL(apiURL string) *FreelancerFetcher {
	f := NewFreelancerFetcher()
	f.apiURL = apiURL
	return f
}

func (f *FreelancerFetcher) Name() string {
	return "freelancer"
}

type freelancerResponse struct {
	Result struct {
		Projects []freelancerProject `json:"projects"`
	} `json:"result"`
}

type freelancerProject struct {
	ID                 int64  `json:"id"`
	Title              string `json:"title"`
	Description        string `json:"description"`
	PreviewDescription string `json:"preview_description"`
	SeoURL             string `json:"seo_url"`
	TimeSubmitted      int64  `json:"time_submitted"`
	Budget             struct {
		Minimum  *float64 `json:"minimum"`
		Maximum  *float64 `json:"maximum"`
		Currency struct {
			Code string `json:"code"`
		} `json:"currency"`
	} `json:"budget"`
}

func (f *FreelancerFetcher) Fetch(ctx context.Context, query string) ([]*domain.Job, error) {
	params := url.Values{}
	params.Set("limit", fmt.Sprintf("%d", f.limit))
	params.Set("compact", "true")
	params.Set("job_details", "true")
	params.Set("full_description", "true")
	if query != "" {
		params.Set("query", query)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, oops.With("source", f.Name()).Wrap(err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, oops.With("source", f.Name(), "context", "request failed").Wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, oops.With("source", f.Name(), "status", resp.StatusCode).Errorf("unexpected status from freelancer api")
	}

	var payload freelancerResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, oops.With("source", f.Name(), "context", "failed to decode response").Wrap(err)
	}

	jobs := lo.Map(payload.Result.Projects, func(p freelancerProject, _ int) *domain.Job {
		return f.jobFromProject(p)
	})
	return jobs, nil
}

func (f *FreelancerFetcher) jobFromProject(p freelancerProject) *domain.Job {
	desc := p.PreviewDescription
	if desc == "" {
		desc = p.Description
	}

	jobURL := "https://www.freelancer.com"
	if seo := strings.TrimPrefix(p.SeoURL, "/"); seo != "" {
		jobURL = "https://www.freelancer.com/projects/" + seo
	}

	currency := p.Budget.Currency.Code
	if currency == "" {
		currency = "USD"
	}

	job := &domain.Job{
		ExternalID:  fmt.Sprintf("%d", p.ID),
		Title:       p.Title,
		Description: desc,
		URL:         jobURL,
		BudgetMin:   p.Budget.Minimum,
		BudgetMax:   p.Budget.Maximum,
		Currency:    currency,
		Source:      f.Name(),
		Affiliate:   true,
	}
	if p.TimeSubmitted > 0 {
		job.CreatedAt = time.Unix(p.TimeSubmitted, 0).UTC()
	}
	return job
}
