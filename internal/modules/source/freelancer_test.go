package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const freelancerFixture = `{
  "result": {
    "projects": [
      {
        "id": 39001122,
        "title": "Build a Telegram alert bot",
        "preview_description": "Need a bot that forwards matching jobs.",
        "seo_url": "python/Build-Telegram-alert-bot",
        "time_submitted": 1749556800,
        "budget": {
          "minimum": 250,
          "maximum": 750,
          "currency": {"code": "EUR"}
        }
      },
      {
        "id": 39001123,
        "title": "Logo design",
        "description": "Full description only.",
        "seo_url": "",
        "time_submitted": 0,
        "budget": {
          "minimum": 30,
          "currency": {"code": ""}
        }
      }
    ]
  }
}`

func TestFreelancerFetch(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(freelancerFixture))
	}))
	defer server.Close()

	fetcher := NewFreelancerFetcherWithURL(server.URL)
	jobs, err := fetcher.Fetch(context.Background(), "python,logo")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if gotQuery != "python,logo" {
		t.Errorf("query param = %q, want python,logo", gotQuery)
	}
	if len(jobs) != 2 {
		t.Fatalf("got %d jobs, want 2", len(jobs))
	}

	first := jobs[0]
	if first.ExternalID != "39001122" {
		t.Errorf("ExternalID = %q", first.ExternalID)
	}
	if first.URL != "https://www.freelancer.com/projects/python/Build-Telegram-alert-bot" {
		t.Errorf("URL = %q", first.URL)
	}
	if first.Currency != "EUR" || first.BudgetMin == nil || *first.BudgetMin != 250 {
		t.Errorf("budget = %v %s", first.BudgetMin, first.Currency)
	}
	if !first.Affiliate {
		t.Error("freelancer jobs must be affiliate-capable")
	}
	wantCreated := time.Unix(1749556800, 0).UTC()
	if !first.CreatedAt.Equal(wantCreated) {
		t.Errorf("CreatedAt = %v, want %v", first.CreatedAt, wantCreated)
	}
	if first.Description != "Need a bot that forwards matching jobs." {
		t.Errorf("Description = %q", first.Description)
	}

	second := jobs[1]
	if second.Currency != "USD" {
		t.Errorf("missing currency should default to USD, got %q", second.Currency)
	}
	if second.URL != "https://www.freelancer.com" {
		t.Errorf("missing seo_url should fall back to site root, got %q", second.URL)
	}
	if !second.CreatedAt.IsZero() {
		t.Errorf("zero time_submitted should leave CreatedAt zero, got %v", second.CreatedAt)
	}
	if second.Description != "Full description only." {
		t.Errorf("Description = %q", second.Description)
	}
}

func TestFreelancerFetchBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	fetcher := NewFreelancerFetcherWithURL(server.URL)
	if _, err := fetcher.Fetch(context.Background(), ""); err == nil {
		t.Error("non-200 response should return an error")
	}
}

func TestFreelancerFetchBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	fetcher := NewFreelancerFetcherWithURL(server.URL)
	if _, err := fetcher.Fetch(context.Background(), ""); err == nil {
		t.Error("malformed body should return an error")
	}
}
