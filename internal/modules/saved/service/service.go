package service

import (
	"context"

	"github.com/apstld/freelance-alert-bot/internal/modules/saved/domain"
	"github.com/apstld/freelance-alert-bot/internal/modules/saved/repository"
)

const defaultListLimit = 25

// Service handles saved-job bookmarks
type Service struct {
	repo repository.Repository
}

// New creates a new saved-job service
func New(repo repository.Repository) *Service {
	return &Service{repo: repo}
}

// Save bookmarks a job for a user and returns the bookmark id
func (s *Service) Save(ctx context.Context, telegramID int64, title, url, description string) (int64, error) {
	return s.repo.Save(ctx, &domain.SavedJob{
		UserID:      telegramID,
		Title:       title,
		URL:         url,
		Description: description,
	})
}

// List returns a user's bookmarks, newest first
func (s *Service) List(ctx context.Context, telegramID int64) ([]*domain.SavedJob, error) {
	return s.repo.List(ctx, telegramID, defaultListLimit)
}

// Delete removes one bookmark
func (s *Service) Delete(ctx context.Context, telegramID int64, savedID int64) error {
	return s.repo.Delete(ctx, telegramID, savedID)
}

// Clear removes all bookmarks of a user and returns the removed count
func (s *Service) Clear(ctx context.Context, telegramID int64) (int64, error) {
	return s.repo.Clear(ctx, telegramID)
}
