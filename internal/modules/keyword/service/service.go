package service

import (
	"context"
	"strings"

	"github.com/apstld/freelance-alert-bot/internal/modules/keyword/repository"
)

// Service handles keyword normalization and per-user keyword sets
type Service struct {
	repo repository.Repository
}

// New creates a new keyword service
func New(repo repository.Repository) *Service {
	return &Service{repo: repo}
}

// Normalize splits raw user input on commas, semicolons, pipes and newlines,
// trims and lowercases every part and drops duplicates preserving order.
func Normalize(raw string) []string {
	replacer := strings.NewReplacer("\n", ",", ";", ",", "|", ",")
	parts := strings.Split(replacer.Replace(raw), ",")

	seen := map[string]struct{}{}
	out := []string{}
	for _, part := range parts {
		kw := strings.ToLower(strings.TrimSpace(part))
		if kw == "" {
			continue
		}
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
	}
	return out
}

// Add normalizes and stores keywords, returning the accepted list
func (s *Service) Add(ctx context.Context, telegramID int64, raw string) ([]string, error) {
	keywords := Normalize(raw)
	if len(keywords) == 0 {
		return nil, nil
	}
	if err := s.repo.Add(ctx, telegramID, keywords); err != nil {
		return nil, err
	}
	return keywords, nil
}

// Delete removes the given keywords from a user's set
func (s *Service) Delete(ctx context.Context, telegramID int64, raw string) ([]string, error) {
	keywords := Normalize(raw)
	if len(keywords) == 0 {
		return nil, nil
	}
	if err := s.repo.Delete(ctx, telegramID, keywords); err != nil {
		return nil, err
	}
	return keywords, nil
}

// Clear removes all keywords of a user
func (s *Service) Clear(ctx context.Context, telegramID int64) error {
	return s.repo.Clear(ctx, telegramID)
}

// List returns a user's keywords sorted alphabetically
func (s *Service) List(ctx context.Context, telegramID int64) ([]string, error) {
	return s.repo.Get(ctx, telegramID)
}

// ListAll returns every user's keyword list
func (s *Service) ListAll(ctx context.Context) (map[int64][]string, error) {
	return s.repo.GetAll(ctx)
}
