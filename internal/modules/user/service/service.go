package service

import (
	"context"
	"time"

	"github.com/apstld/freelance-alert-bot/internal/modules/user/domain"
	"github.com/apstld/freelance-alert-bot/internal/modules/user/repository"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// Service handles user registration, access windows and admin actions
type Service struct {
	repo      repository.Repository
	adminIDs  []int64
	trialDays int
	now       func() time.Time
}

// New creates a new user service
func New(repo repository.Repository, adminIDs []int64, trialDays int) *Service {
	if trialDays <= 0 {
		trialDays = 10
	}
	return &Service{
		repo:      repo,
		adminIDs:  adminIDs,
		trialDays: trialDays,
		now:       time.Now,
	}
}

// EnsureAdmins upserts every configured admin id. Idempotent: repeated runs
// leave one row per id with is_admin set.
func (s *Service) EnsureAdmins(ctx context.Context) error {
	for _, id := range s.adminIDs {
		if err := s.repo.EnsureAdmin(ctx, id, ""); err != nil {
			return oops.With("telegram_id", id, "context", "failed to ensure admin user").Wrap(err)
		}
	}
	return nil
}

// Register returns the user, starting a trial on first contact
func (s *Service) Register(ctx context.Context, telegramID int64, username string) (*domain.User, error) {
	return s.repo.GetOrCreate(ctx, telegramID, username, s.trialDays)
}

// Get retrieves a user by telegram id
func (s *Service) Get(ctx context.Context, telegramID int64) (*domain.User, error) {
	return s.repo.GetByTelegramID(ctx, telegramID)
}

// GetAll retrieves all users
func (s *Service) GetAll(ctx context.Context) ([]*domain.User, error) {
	return s.repo.GetAll(ctx)
}

// IsAdmin checks the configured admin list first, then the stored flag
func (s *Service) IsAdmin(ctx context.Context, telegramID int64) bool {
	if lo.Contains(s.adminIDs, telegramID) {
		return true
	}
	u, err := s.repo.GetByTelegramID(ctx, telegramID)
	return err == nil && u.IsAdmin
}

// HasAccess reports whether the user may receive alerts right now
func (s *Service) HasAccess(ctx context.Context, telegramID int64) bool {
	u, err := s.repo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return false
	}
	return u.HasAccess(s.now())
}

// Block disables delivery for a user
func (s *Service) Block(ctx context.Context, telegramID int64) error {
	return s.repo.SetBlocked(ctx, telegramID, true)
}

// Unblock restores delivery for a user
func (s *Service) Unblock(ctx context.Context, telegramID int64) error {
	return s.repo.SetBlocked(ctx, telegramID, false)
}

// Grant extends a user's access by the given number of days from now
func (s *Service) Grant(ctx context.Context, telegramID int64, days int) (time.Time, error) {
	until := s.now().Add(time.Duration(days) * 24 * time.Hour)
	if err := s.repo.GrantLicense(ctx, telegramID, until); err != nil {
		return time.Time{}, err
	}
	return until, nil
}

// TrialNoticeKind identifies which expiry reminder is due
type TrialNoticeKind int

const (
	TrialNoticeNone TrialNoticeKind = iota
	TrialNoticeDayBefore
	TrialNoticeOnExpiry
)

// PendingTrialNotice returns the reminder due for a user, if any. Each kind is
// sent at most once; callers must confirm delivery with MarkNoticeSent.
func (s *Service) PendingTrialNotice(ctx context.Context, u *domain.User) (TrialNoticeKind, error) {
	if u.IsAdmin || u.LicenseUntil != nil {
		return TrialNoticeNone, nil
	}

	notice, err := s.repo.GetTrialNotice(ctx, u.TelegramID)
	if err != nil {
		return TrialNoticeNone, err
	}

	now := s.now()
	switch {
	case !now.Before(u.TrialEnd) && !notice.SentOnExpiry:
		return TrialNoticeOnExpiry, nil
	case now.Before(u.TrialEnd) && u.TrialEnd.Sub(now) <= 24*time.Hour && !notice.SentDayBefore:
		return TrialNoticeDayBefore, nil
	default:
		return TrialNoticeNone, nil
	}
}

// MarkNoticeSent records a delivered reminder
func (s *Service) MarkNoticeSent(ctx context.Context, telegramID int64, kind TrialNoticeKind) error {
	switch kind {
	case TrialNoticeDayBefore:
		return s.repo.MarkDayBeforeSent(ctx, telegramID)
	case TrialNoticeOnExpiry:
		return s.repo.MarkOnExpirySent(ctx, telegramID)
	default:
		return nil
	}
}
