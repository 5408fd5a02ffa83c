package errors

import "errors"

var (
	ErrMissingBotToken    = errors.New("TELEGRAM_BOT_TOKEN environment variable is required")
	ErrMissingDatabaseURL = errors.New("DATABASE_URL environment variable is required")
	ErrUnauthorized       = errors.New("unauthorized user")
	ErrUserNotFound       = errors.New("user not found")
	ErrSavedJobNotFound   = errors.New("saved job not found")
	ErrAccessExpired      = errors.New("trial or license expired")
)
