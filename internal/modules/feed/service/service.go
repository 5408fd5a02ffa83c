package service

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	sentDomain "github.com/apstld/freelance-alert-bot/internal/modules/sent/domain"
	sentRepo "github.com/apstld/freelance-alert-bot/internal/modules/sent/repository"
	userService "github.com/apstld/freelance-alert-bot/internal/modules/user/service"
	sharederrors "github.com/apstld/freelance-alert-bot/internal/shared/errors"
	"github.com/gorilla/feeds"
	"github.com/samber/oops"
)

const feedItemLimit = 50

// Service generates per-user RSS feeds of delivered job alerts
type Service struct {
	sentRepo sentRepo.Repository
	users    *userService.Service
}

// New creates a new feed service
func New(sentRepo sentRepo.Repository, users *userService.Service) *Service {
	return &Service{
		sentRepo: sentRepo,
		users:    users,
	}
}

// GenerateFeed builds the RSS feed of a user's recently delivered jobs
func (s *Service) GenerateFeed(ctx context.Context, telegramID int64, baseURL string) (*feeds.Feed, error) {
	user, err := s.users.Get(ctx, telegramID)
	if err != nil {
		return nil, oops.With("telegram_id", telegramID, "context", "user not found").Wrap(err)
	}
	if user.IsBlocked {
		return nil, oops.With("telegram_id", telegramID).Wrap(sharederrors.ErrUnauthorized)
	}
	if !user.HasAccess(time.Now()) {
		return nil, oops.With("telegram_id", telegramID).Wrap(sharederrors.ErrAccessExpired)
	}

	records, err := s.sentRepo.GetRecent(ctx, user.TelegramID, feedItemLimit)
	if err != nil {
		return nil, oops.With("telegram_id", telegramID, "context", "failed to get delivered jobs").Wrap(err)
	}

	feed := &feeds.Feed{
		Title:       "Freelance Alert - Delivered Jobs",
		Link:        &feeds.Link{Href: fmt.Sprintf("%s/rss/%d", baseURL, user.TelegramID)},
		Description: "Job listings recently delivered to this user",
		Created:     user.CreatedAt,
	}

	items := make([]*feeds.Item, 0, len(records))
	for _, record := range records {
		items = append(items, s.recordToFeedItem(record))
	}
	feed.Items = items

	if len(records) > 0 {
		feed.Updated = records[0].SentAt
	}
	return feed, nil
}

func (s *Service) recordToFeedItem(record *sentDomain.SentJob) *feeds.Item {
	title := record.Title
	if title == "" {
		title = "Untitled listing"
	}
	return &feeds.Item{
		Title:       truncate(title, 100),
		Link:        &feeds.Link{Href: record.URL},
		Description: fmt.Sprintf("Source: %s", record.Source),
		Created:     record.SentAt,
		Id:          record.JobKey,
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	for maxLen > 0 && !utf8.RuneStart(s[maxLen]) {
		maxLen--
	}
	return s[:maxLen] + "..."
}
