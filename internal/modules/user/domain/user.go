package domain

import "time"

// User represents a bot user with a trial or license window
type User struct {
	ID           int64      `json:"id"`
	TelegramID   int64      `json:"telegram_id"`
	Username     string     `json:"username"`
	IsAdmin      bool       `json:"is_admin"`
	IsActive     bool       `json:"is_active"`
	IsBlocked    bool       `json:"is_blocked"`
	TrialStart   time.Time  `json:"trial_start"`
	TrialEnd     time.Time  `json:"trial_end"`
	LicenseUntil *time.Time `json:"license_until,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// HasAccess reports whether the user may receive alerts at the given time.
// Admins always have access; blocked or deactivated users never do.
func (u *User) HasAccess(now time.Time) bool {
	if u.IsBlocked || !u.IsActive {
		return false
	}
	if u.IsAdmin {
		return true
	}
	return now.Before(u.AccessUntil())
}

// AccessUntil returns the end of the user's access window: the license end
// when granted, otherwise the trial end.
func (u *User) AccessUntil() time.Time {
	if u.LicenseUntil != nil && u.LicenseUntil.After(u.TrialEnd) {
		return *u.LicenseUntil
	}
	return u.TrialEnd
}

// TrialNotice tracks which expiry reminders a user has already received
type TrialNotice struct {
	UserID        int64     `json:"user_id"`
	SentDayBefore bool      `json:"sent_day_before"`
	SentOnExpiry  bool      `json:"sent_on_expiry"`
	UpdatedAt     time.Time `json:"updated_at"`
}
