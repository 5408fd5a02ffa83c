package service

import (
	"testing"
	"time"

	"github.com/apstld/freelance-alert-bot/internal/modules/job/domain"
	"github.com/apstld/freelance-alert-bot/internal/shared/fx"
)

func float64Ptr(v float64) *float64 { return &v }

func TestMatchKeywordAnyMode(t *testing.T) {
	svc := New(fx.NewConverter(""), domain.MatchModeAny, 3, "")

	job := &domain.Job{
		Title:       "Python Telegram Bot Developer",
		Description: "We need a bot that posts alerts.",
	}

	tests := []struct {
		name     string
		keywords []string
		want     string
		wantOK   bool
	}{
		{"title match", []string{"python"}, "python", true},
		{"case insensitive", []string{"TELEGRAM"}, "telegram", true},
		{"description match", []string{"alerts"}, "alerts", true},
		{"first match wins", []string{"golang", "bot"}, "bot", true},
		{"no match", []string{"wordpress"}, "", false},
		{"empty list", nil, "", false},
		{"blank keywords ignored", []string{" ", ""}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := svc.MatchKeyword(job, tt.keywords)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("MatchKeyword(%v) = (%q, %v), want (%q, %v)", tt.keywords, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestMatchKeywordAllMode(t *testing.T) {
	svc := New(fx.NewConverter(""), domain.MatchModeAll, 3, "")

	job := &domain.Job{Title: "Python Telegram Bot", Description: "scraping project"}

	if got, ok := svc.MatchKeyword(job, []string{"python", "scraping"}); !ok || got != "python" {
		t.Errorf("all keywords present: got (%q, %v), want (python, true)", got, ok)
	}
	if _, ok := svc.MatchKeyword(job, []string{"python", "wordpress"}); ok {
		t.Error("one missing keyword must fail in all mode")
	}
}

func TestIsRecent(t *testing.T) {
	svc := New(fx.NewConverter(""), domain.MatchModeAny, 3, "")
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		createdAt time.Time
		want      bool
	}{
		{"fresh job", now.Add(-2 * time.Hour), true},
		{"edge of window", now.Add(-3 * 24 * time.Hour), true},
		{"too old", now.Add(-4 * 24 * time.Hour), false},
		{"zero date kept", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := &domain.Job{CreatedAt: tt.createdAt}
			if got := svc.IsRecent(job, now); got != tt.want {
				t.Errorf("IsRecent(created=%v) = %v, want %v", tt.createdAt, got, tt.want)
			}
		})
	}
}

func TestDeduplicate(t *testing.T) {
	svc := New(fx.NewConverter(""), domain.MatchModeAny, 3, "")

	first := &domain.Job{Title: "Build a bot", Source: "freelancer", URL: "https://example.com/1"}
	duplicate := &domain.Job{Title: "  build a BOT ", Source: "freelancer", URL: "https://example.com/1", Affiliate: true}
	other := &domain.Job{Title: "Logo design", Source: "skywalker", URL: "https://example.com/2"}

	out := svc.Deduplicate([]*domain.Job{first, other, duplicate})
	if len(out) != 2 {
		t.Fatalf("Deduplicate returned %d jobs, want 2", len(out))
	}
	if out[0] != duplicate {
		t.Error("affiliate duplicate should replace the earlier copy in place")
	}
	if out[1] != other {
		t.Error("input order of first occurrences should be preserved")
	}
}

func TestEnrichUSD(t *testing.T) {
	svc := New(fx.NewConverter(`{"EUR": 2}`), domain.MatchModeAny, 3, "")

	job := &domain.Job{Currency: "EUR", BudgetMin: float64Ptr(10), BudgetMax: float64Ptr(20)}
	svc.EnrichUSD(job)

	if job.BudgetMinUSD == nil || *job.BudgetMinUSD != 20 {
		t.Errorf("BudgetMinUSD = %v, want 20", job.BudgetMinUSD)
	}
	if job.BudgetMaxUSD == nil || *job.BudgetMaxUSD != 40 {
		t.Errorf("BudgetMaxUSD = %v, want 40", job.BudgetMaxUSD)
	}

	unknown := &domain.Job{Currency: "XYZ", BudgetMin: float64Ptr(10)}
	svc.EnrichUSD(unknown)
	if unknown.BudgetMinUSD != nil {
		t.Error("unknown currency must not set USD fields")
	}
}

func TestProposalURL(t *testing.T) {
	svc := New(fx.NewConverter(""), domain.MatchModeAny, 3, "https://aff.example.com/?l=")

	affiliate := &domain.Job{URL: "https://www.freelancer.com/projects/x", Affiliate: true}
	if got := svc.ProposalURL(affiliate); got != "https://aff.example.com/?l=https://www.freelancer.com/projects/x" {
		t.Errorf("ProposalURL(affiliate) = %q", got)
	}

	plain := &domain.Job{URL: "https://example.com/job", Affiliate: false}
	if got := svc.ProposalURL(plain); got != plain.URL {
		t.Errorf("ProposalURL(plain) = %q, want original URL", got)
	}

	noPrefix := New(fx.NewConverter(""), domain.MatchModeAny, 3, "")
	if got := noPrefix.ProposalURL(affiliate); got != affiliate.URL {
		t.Errorf("ProposalURL without prefix = %q, want original URL", got)
	}
}
