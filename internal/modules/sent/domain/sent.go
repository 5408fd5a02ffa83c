package domain

import "time"

// SentJob is the delivery record that prevents re-sending the same listing to
// the same user. Title, URL and source are kept for the per-user RSS feed.
type SentJob struct {
	ID     int64     `json:"id"`
	UserID int64     `json:"user_id"`
	JobKey string    `json:"job_key"`
	Title  string    `json:"title"`
	URL    string    `json:"url"`
	Source string    `json:"source"`
	SentAt time.Time `json:"sent_at"`
}
