package domain

import "time"

// PlatformStats summarizes a single platform's contribution to a worker cycle
type PlatformStats struct {
	Count     int    `json:"count"`
	Error     string `json:"error,omitempty"`
	Affiliate bool   `json:"affiliate"`
}

// CycleStats is the snapshot written after every worker cycle, served by the
// admin /feedstatus command.
type CycleStats struct {
	StartedAt     time.Time                `json:"started_at"`
	CycleDuration time.Duration            `json:"cycle_duration"`
	Keywords      int                      `json:"keywords"`
	Users         int                      `json:"users"`
	Fetched       int                      `json:"fetched"`
	Sent          int                      `json:"sent"`
	Pruned        int64                    `json:"pruned"`
	Platforms     map[string]PlatformStats `json:"platforms"`
}
