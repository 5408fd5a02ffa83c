package service

import (
	"strings"
	"time"

	"github.com/apstld/freelance-alert-bot/internal/modules/job/domain"
	"github.com/apstld/freelance-alert-bot/internal/shared/fx"
	"github.com/samber/lo"
)

// Service handles job matching, deduplication and display enrichment
type Service struct {
	converter       *fx.Converter
	matchMode       domain.MatchMode
	recencyWindow   time.Duration
	affiliatePrefix string
}

// New creates a new job service
func New(converter *fx.Converter, matchMode domain.MatchMode, recencyDays int, affiliatePrefix string) *Service {
	if recencyDays <= 0 {
		recencyDays = 7
	}
	return &Service{
		converter:       converter,
		matchMode:       matchMode,
		recencyWindow:   time.Duration(recencyDays) * 24 * time.Hour,
		affiliatePrefix: affiliatePrefix,
	}
}

// MatchKeyword returns the first keyword found in the job's title or
// description. With MatchModeAll every keyword must be present; the first one
// is reported as the match. Empty keyword lists match nothing.
func (s *Service) MatchKeyword(job *domain.Job, keywords []string) (string, bool) {
	if len(keywords) == 0 {
		return "", false
	}
	hay := strings.ToLower(job.Title + "\n" + job.Description)

	cleaned := lo.FilterMap(keywords, func(kw string, _ int) (string, bool) {
		kw = strings.ToLower(strings.TrimSpace(kw))
		return kw, kw != ""
	})
	if len(cleaned) == 0 {
		return "", false
	}

	if s.matchMode == domain.MatchModeAll {
		for _, kw := range cleaned {
			if !strings.Contains(hay, kw) {
				return "", false
			}
		}
		return cleaned[0], true
	}

	for _, kw := range cleaned {
		if strings.Contains(hay, kw) {
			return kw, true
		}
	}
	return "", false
}

// IsRecent reports whether a job falls inside the recency window. Jobs without
// a parseable date are kept rather than discarded.
func (s *Service) IsRecent(job *domain.Job, now time.Time) bool {
	if job.CreatedAt.IsZero() {
		return true
	}
	return !job.CreatedAt.Before(now.Add(-s.recencyWindow))
}

// Deduplicate collapses jobs sharing a dedup key, preferring the
// affiliate-capable copy. Input order is preserved for first occurrences.
func (s *Service) Deduplicate(jobs []*domain.Job) []*domain.Job {
	seen := make(map[string]int, len(jobs))
	out := make([]*domain.Job, 0, len(jobs))
	for _, job := range jobs {
		key := job.Key()
		if idx, ok := seen[key]; ok {
			out[idx] = domain.PreferAffiliate(out[idx], job)
			continue
		}
		seen[key] = len(out)
		out = append(out, job)
	}
	return out
}

// EnrichUSD fills the display-only USD budget fields when the currency is known.
func (s *Service) EnrichUSD(job *domain.Job) {
	if job.Currency == "" {
		return
	}
	if job.BudgetMin != nil {
		if usd, ok := s.converter.ToUSD(*job.BudgetMin, job.Currency); ok {
			job.BudgetMinUSD = &usd
		}
	}
	if job.BudgetMax != nil {
		if usd, ok := s.converter.ToUSD(*job.BudgetMax, job.Currency); ok {
			job.BudgetMaxUSD = &usd
		}
	}
}

// ProposalURL wraps an affiliate-capable job URL with the configured deep-link
// prefix. Non-affiliate jobs keep their original URL.
func (s *Service) ProposalURL(job *domain.Job) string {
	if !job.Affiliate || s.affiliatePrefix == "" {
		return job.URL
	}
	return s.affiliatePrefix + job.URL
}
