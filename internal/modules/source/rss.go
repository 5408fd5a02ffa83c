package source

import (
	"context"
	"regexp"
	"strings"

	"github.com/apstld/freelance-alert-bot/internal/modules/job/domain"
	"github.com/mmcdole/gofeed"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

var tagRe = regexp.MustCompile(`<[^<]+?>`)

// RSSFetcher reads job boards that publish plain RSS/Atom feeds, such as the
// Skywalker listings feed. RSS sources carry no budget information and are
// never affiliate-capable.
type RSSFetcher struct {
	name     string
	feedURL  string
	currency string
	parser   *gofeed.Parser
}

// NewRSSFetcher creates a fetcher for a single feed URL
func NewRSSFetcher(name, feedURL, currency string) *RSSFetcher {
	parser := gofeed.NewParser()
	parser.UserAgent = "Mozilla/5.0"
	if currency == "" {
		currency = "EUR"
	}
	return &RSSFetcher{
		name:     name,
		feedURL:  feedURL,
		currency: currency,
		parser:   parser,
	}
}

func (f *RSSFetcher) Name() string {
	return f.name
}

// Fetch ignores the keyword query: RSS boards have no search endpoint, so the
// whole feed is matched downstream.
func (f *RSSFetcher) Fetch(ctx context.Context, _ string) ([]*domain.Job, error) {
	feed, err := f.parser.ParseURLWithContext(f.feedURL, ctx)
	if err != nil {
		return nil, oops.With("source", f.name, "feed_url", f.feedURL).Wrap(err)
	}

	jobs := lo.FilterMap(feed.Items, func(item *gofeed.Item, _ int) (*domain.Job, bool) {
		title := strings.TrimSpace(item.Title)
		link := strings.TrimSpace(item.Link)
		if title == "" && link == "" {
			return nil, false
		}

		externalID := link
		if externalID == "" {
			externalID = title
		}

		job := &domain.Job{
			ExternalID:  externalID,
			Title:       title,
			Description: stripTags(item.Description),
			URL:         link,
			Currency:    f.currency,
			Source:      f.name,
			Affiliate:   false,
		}
		if item.PublishedParsed != nil {
			job.CreatedAt = item.PublishedParsed.UTC()
		}
		return job, true
	})
	return jobs, nil
}

func stripTags(s string) string {
	return strings.TrimSpace(tagRe.ReplaceAllString(s, ""))
}
