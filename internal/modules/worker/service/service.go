package service

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	eventRepo "github.com/apstld/freelance-alert-bot/internal/modules/event/repository"
	jobDomain "github.com/apstld/freelance-alert-bot/internal/modules/job/domain"
	jobService "github.com/apstld/freelance-alert-bot/internal/modules/job/service"
	keywordService "github.com/apstld/freelance-alert-bot/internal/modules/keyword/service"
	sentDomain "github.com/apstld/freelance-alert-bot/internal/modules/sent/domain"
	sentRepo "github.com/apstld/freelance-alert-bot/internal/modules/sent/repository"
	"github.com/apstld/freelance-alert-bot/internal/modules/source"
	statsDomain "github.com/apstld/freelance-alert-bot/internal/modules/stats/domain"
	statsRepo "github.com/apstld/freelance-alert-bot/internal/modules/stats/repository"
	userDomain "github.com/apstld/freelance-alert-bot/internal/modules/user/domain"
	userService "github.com/apstld/freelance-alert-bot/internal/modules/user/service"
	"github.com/apstld/freelance-alert-bot/internal/shared/config"
)

const maxUnionKeywords = 50

// Delivery sends worker output to a user. The Telegram transport implements
// it; tests substitute a fake.
type Delivery interface {
	SendJob(ctx context.Context, chatID int64, job *jobDomain.Job, matchedKeyword string) error
	SendText(ctx context.Context, chatID int64, text string) error
}

// Service runs the polling worker: fetch platforms, match per-user keywords,
// dedup against the sent table and deliver.
type Service struct {
	cfg      *config.Config
	users    *userService.Service
	keywords *keywordService.Service
	jobs     *jobService.Service
	fetchers []source.Fetcher
	sent     sentRepo.Repository
	events   eventRepo.Repository
	stats    statsRepo.Repository
	delivery Delivery
	now      func() time.Time
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// New creates a new worker service
func New(
	cfg *config.Config,
	users *userService.Service,
	keywords *keywordService.Service,
	jobs *jobService.Service,
	fetchers []source.Fetcher,
	sent sentRepo.Repository,
	events eventRepo.Repository,
	stats statsRepo.Repository,
) *Service {
	ctx, cancel := context.WithCancel(context.Background())
	return &Service{
		cfg:      cfg,
		users:    users,
		keywords: keywords,
		jobs:     jobs,
		fetchers: fetchers,
		sent:     sent,
		events:   events,
		stats:    stats,
		now:      time.Now,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// SetDelivery sets the delivery transport. Must be called before Start.
func (s *Service) SetDelivery(d Delivery) {
	s.delivery = d
}

// Start begins the polling loop
func (s *Service) Start(ctx context.Context) {
	s.wg.Add(1)
	go s.loop()
}

// Stop stops the loop and waits for an in-flight cycle to finish
func (s *Service) Stop() {
	s.cancel()
	s.wg.Wait()
}

func (s *Service) loop() {
	defer s.wg.Done()

	interval := time.Duration(s.cfg.WorkerInterval) * time.Second
	if interval <= 0 {
		interval = 2 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Initial cycle
	s.runCycle(s.ctx)

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.runCycle(s.ctx)
		}
	}
}

// RunCycle executes one full worker cycle. Errors inside a cycle are logged
// and recorded in the stats snapshot; they never stop the loop.
func (s *Service) RunCycle(ctx context.Context) *statsDomain.CycleStats {
	return s.runCycle(ctx)
}

func (s *Service) runCycle(ctx context.Context) *statsDomain.CycleStats {
	started := s.now()
	cycle := &statsDomain.CycleStats{
		StartedAt: started.UTC(),
		Platforms: map[string]statsDomain.PlatformStats{},
	}

	userKeywords, err := s.keywords.ListAll(ctx)
	if err != nil {
		slog.Error("Worker cycle failed to load keywords", "error", err)
		s.finishCycle(ctx, cycle)
		return cycle
	}

	allUsers, err := s.users.GetAll(ctx)
	if err != nil {
		slog.Error("Worker cycle failed to load users", "error", err)
		s.finishCycle(ctx, cycle)
		return cycle
	}

	s.sendTrialNotices(ctx, allUsers)

	recipients := s.activeRecipients(allUsers, userKeywords)
	cycle.Users = len(recipients)
	cycle.Keywords = countKeywords(recipients, userKeywords)

	jobs := s.fetchAll(ctx, unionQuery(userKeywords), cycle)
	cycle.Fetched = len(jobs)

	now := s.now()
	fresh := make([]*jobDomain.Job, 0, len(jobs))
	for _, job := range jobs {
		if s.jobs.IsRecent(job, now) {
			fresh = append(fresh, job)
		}
	}
	deduped := s.jobs.Deduplicate(fresh)

	for _, user := range recipients {
		cycle.Sent += s.deliverToUser(ctx, user, userKeywords[user.TelegramID], deduped)
	}

	if s.cfg.SentRetentionDays > 0 {
		cutoff := now.Add(-time.Duration(s.cfg.SentRetentionDays) * 24 * time.Hour)
		pruned, err := s.sent.Prune(ctx, cutoff)
		if err != nil {
			slog.Error("Failed to prune sent jobs", "error", err)
		} else {
			cycle.Pruned = pruned
		}
	}

	s.finishCycle(ctx, cycle)
	slog.Info("Worker cycle completed",
		"users", cycle.Users,
		"keywords", cycle.Keywords,
		"fetched", cycle.Fetched,
		"sent", cycle.Sent,
		"duration", cycle.CycleDuration.Round(time.Millisecond))
	return cycle
}

func (s *Service) finishCycle(ctx context.Context, cycle *statsDomain.CycleStats) {
	cycle.CycleDuration = s.now().Sub(cycle.StartedAt)
	if err := s.stats.Write(ctx, cycle); err != nil {
		slog.Error("Failed to write cycle stats", "error", err)
	}
}

// activeRecipients filters users down to those with access and keywords
func (s *Service) activeRecipients(users []*userDomain.User, userKeywords map[int64][]string) []*userDomain.User {
	now := s.now()
	out := make([]*userDomain.User, 0, len(users))
	for _, u := range users {
		if !u.HasAccess(now) {
			continue
		}
		if len(userKeywords[u.TelegramID]) == 0 {
			continue
		}
		out = append(out, u)
	}
	return out
}

func (s *Service) sendTrialNotices(ctx context.Context, users []*userDomain.User) {
	if s.delivery == nil {
		return
	}
	for _, u := range users {
		kind, err := s.users.PendingTrialNotice(ctx, u)
		if err != nil {
			slog.Error("Failed to check trial notice", "telegram_id", u.TelegramID, "error", err)
			continue
		}
		if kind == userService.TrialNoticeNone {
			continue
		}

		text := trialNoticeText(kind)
		if err := s.delivery.SendText(ctx, u.TelegramID, text); err != nil {
			slog.Error("Failed to send trial notice", "telegram_id", u.TelegramID, "error", err)
			continue
		}
		if err := s.users.MarkNoticeSent(ctx, u.TelegramID, kind); err != nil {
			slog.Error("Failed to mark trial notice sent", "telegram_id", u.TelegramID, "error", err)
		}
	}
}

func trialNoticeText(kind userService.TrialNoticeKind) string {
	if kind == userService.TrialNoticeDayBefore {
		return "⏳ Your free trial ends tomorrow. Contact the admin to keep receiving job alerts."
	}
	return "🔒 Your free trial has ended. Contact the admin to keep receiving job alerts."
}

// fetchAll queries every enabled platform concurrently and collects results
func (s *Service) fetchAll(ctx context.Context, query string, cycle *statsDomain.CycleStats) []*jobDomain.Job {
	var mu sync.Mutex
	var all []*jobDomain.Job
	var wg sync.WaitGroup

	for _, fetcher := range s.fetchers {
		wg.Add(1)
		go func(f source.Fetcher) {
			defer wg.Done()

			jobs, err := f.Fetch(ctx, query)
			stat := statsDomain.PlatformStats{Count: len(jobs)}
			if err != nil {
				stat.Error = err.Error()
				slog.Error("Platform fetch failed", "source", f.Name(), "error", err)
			}
			for _, job := range jobs {
				if job.Affiliate {
					stat.Affiliate = true
					break
				}
			}

			mu.Lock()
			cycle.Platforms[f.Name()] = stat
			all = append(all, jobs...)
			mu.Unlock()
		}(fetcher)
	}
	wg.Wait()
	return all
}

// deliverToUser matches, dedups against the sent table and sends. Returns the
// number of jobs delivered.
func (s *Service) deliverToUser(ctx context.Context, user *userDomain.User, keywords []string, jobs []*jobDomain.Job) int {
	if s.delivery == nil {
		return 0
	}

	sent := 0
	for _, job := range jobs {
		matched, ok := s.jobs.MatchKeyword(job, keywords)
		if !ok {
			continue
		}

		isNew, err := s.sent.MarkSent(ctx, &sentDomain.SentJob{
			UserID: user.TelegramID,
			JobKey: job.Key(),
			Title:  job.Title,
			URL:    job.URL,
			Source: job.Source,
		})
		if err != nil {
			slog.Error("Failed to mark job sent", "telegram_id", user.TelegramID, "error", err)
			continue
		}
		if !isNew {
			continue
		}

		s.jobs.EnrichUSD(job)
		if err := s.delivery.SendJob(ctx, user.TelegramID, job, matched); err != nil {
			slog.Error("Failed to deliver job", "telegram_id", user.TelegramID, "job_key", job.Key(), "error", err)
			// Release the dedup slot so the job is retried next cycle.
			if err := s.sent.Unmark(ctx, user.TelegramID, job.Key()); err != nil {
				slog.Error("Failed to unmark undelivered job", "telegram_id", user.TelegramID, "job_key", job.Key(), "error", err)
			}
			continue
		}
		if err := s.events.Log(ctx, job.Source); err != nil {
			slog.Error("Failed to log feed event", "source", job.Source, "error", err)
		}
		sent++
	}
	return sent
}

// unionQuery joins the distinct keyword union into the platform search query
func unionQuery(userKeywords map[int64][]string) string {
	set := map[string]struct{}{}
	for _, kws := range userKeywords {
		for _, kw := range kws {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				set[kw] = struct{}{}
			}
		}
	}

	union := make([]string, 0, len(set))
	for kw := range set {
		union = append(union, kw)
	}
	sort.Strings(union)
	if len(union) > maxUnionKeywords {
		union = union[:maxUnionKeywords]
	}
	return strings.Join(union, ",")
}

func countKeywords(users []*userDomain.User, userKeywords map[int64][]string) int {
	total := 0
	for _, u := range users {
		total += len(userKeywords[u.TelegramID])
	}
	return total
}
