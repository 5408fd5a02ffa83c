package domain

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Job represents a single listing fetched from a freelance platform
type Job struct {
	ExternalID  string    `json:"external_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	BudgetMin   *float64  `json:"budget_min,omitempty"`
	BudgetMax   *float64  `json:"budget_max,omitempty"`
	Currency    string    `json:"currency"`
	Source      string    `json:"source"`
	Affiliate   bool      `json:"affiliate"`
	CreatedAt   time.Time `json:"created_at,omitzero"`

	// Display-only USD conversions, filled by the job service
	BudgetMinUSD *float64 `json:"budget_min_usd,omitempty"`
	BudgetMaxUSD *float64 `json:"budget_max_usd,omitempty"`
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// NormalizeTitle lowercases and collapses whitespace so near-identical
// cross-posts hash to the same dedup key.
func NormalizeTitle(title string) string {
	return whitespaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(title)), " ")
}

// Key returns the dedup key: sha1 over normalized title, source and URL.
func (j *Job) Key() string {
	base := fmt.Sprintf("%s|%s|%s", NormalizeTitle(j.Title), j.Source, j.URL)
	sum := sha1.Sum([]byte(base))
	return hex.EncodeToString(sum[:])
}

// PreferAffiliate resolves a dedup collision: the affiliate-capable copy wins,
// otherwise the first seen copy is kept.
func PreferAffiliate(a, b *Job) *Job {
	if b.Affiliate && !a.Affiliate {
		return b
	}
	return a
}
