package di

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/do/v2"
	"github.com/samber/oops"

	eventRepo "github.com/apstld/freelance-alert-bot/internal/modules/event/repository"
	feedService "github.com/apstld/freelance-alert-bot/internal/modules/feed/service"
	jobService "github.com/apstld/freelance-alert-bot/internal/modules/job/service"
	keywordRepo "github.com/apstld/freelance-alert-bot/internal/modules/keyword/repository"
	keywordService "github.com/apstld/freelance-alert-bot/internal/modules/keyword/service"
	savedRepo "github.com/apstld/freelance-alert-bot/internal/modules/saved/repository"
	savedService "github.com/apstld/freelance-alert-bot/internal/modules/saved/service"
	sentRepo "github.com/apstld/freelance-alert-bot/internal/modules/sent/repository"
	"github.com/apstld/freelance-alert-bot/internal/modules/source"
	statsRepo "github.com/apstld/freelance-alert-bot/internal/modules/stats/repository"
	userRepo "github.com/apstld/freelance-alert-bot/internal/modules/user/repository"
	userService "github.com/apstld/freelance-alert-bot/internal/modules/user/service"
	workerService "github.com/apstld/freelance-alert-bot/internal/modules/worker/service"
	"github.com/apstld/freelance-alert-bot/internal/shared/config"
	"github.com/apstld/freelance-alert-bot/internal/shared/fx"
	httpServer "github.com/apstld/freelance-alert-bot/internal/transport/http"
	telegramHandler "github.com/apstld/freelance-alert-bot/internal/transport/telegram"
)

const cycleStatsTTL = time.Hour

// Setup initializes the dependency injection container
func Setup(ctx context.Context) (do.Injector, error) {
	injector := do.New()

	// Register Config
	do.Provide(injector, func(i do.Injector) (*config.Config, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, oops.With("context", "failed to load config").Wrap(err)
		}
		return cfg, nil
	})

	// Register Postgres pool
	do.Provide(injector, func(i do.Injector) (*pgxpool.Pool, error) {
		cfg := do.MustInvoke[*config.Config](i)
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, oops.With("context", "failed to create postgres pool").Wrap(err)
		}
		if err := pool.Ping(ctx); err != nil {
			return nil, oops.With("context", "failed to ping postgres").Wrap(err)
		}
		return pool, nil
	})

	// Register User Repository
	do.Provide(injector, func(i do.Injector) (userRepo.Repository, error) {
		pool := do.MustInvoke[*pgxpool.Pool](i)
		repo, err := userRepo.NewPostgresStorage(ctx, pool)
		if err != nil {
			return nil, oops.With("context", "failed to initialize user repository").Wrap(err)
		}
		return repo, nil
	})

	// Register Keyword Repository
	do.Provide(injector, func(i do.Injector) (keywordRepo.Repository, error) {
		pool := do.MustInvoke[*pgxpool.Pool](i)
		repo, err := keywordRepo.NewPostgresStorage(ctx, pool)
		if err != nil {
			return nil, oops.With("context", "failed to initialize keyword repository").Wrap(err)
		}
		return repo, nil
	})

	// Register Sent Repository
	do.Provide(injector, func(i do.Injector) (sentRepo.Repository, error) {
		pool := do.MustInvoke[*pgxpool.Pool](i)
		repo, err := sentRepo.NewPostgresStorage(ctx, pool)
		if err != nil {
			return nil, oops.With("context", "failed to initialize sent repository").Wrap(err)
		}
		return repo, nil
	})

	// Register Saved Repository
	do.Provide(injector, func(i do.Injector) (savedRepo.Repository, error) {
		pool := do.MustInvoke[*pgxpool.Pool](i)
		repo, err := savedRepo.NewPostgresStorage(ctx, pool)
		if err != nil {
			return nil, oops.With("context", "failed to initialize saved repository").Wrap(err)
		}
		return repo, nil
	})

	// Register Event Repository
	do.Provide(injector, func(i do.Injector) (eventRepo.Repository, error) {
		pool := do.MustInvoke[*pgxpool.Pool](i)
		repo, err := eventRepo.NewPostgresStorage(ctx, pool)
		if err != nil {
			return nil, oops.With("context", "failed to initialize event repository").Wrap(err)
		}
		return repo, nil
	})

	// Register Stats Repository. Redis when configured, local file otherwise.
	do.Provide(injector, func(i do.Injector) (statsRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.RedisURL != "" {
			repo, err := statsRepo.NewRedisStorage(ctx, cfg.RedisURL, cycleStatsTTL)
			if err != nil {
				return nil, oops.With("context", "failed to initialize redis stats repository").Wrap(err)
			}
			return repo, nil
		}
		repo, err := statsRepo.NewFileStorage(cfg.StatsPath)
		if err != nil {
			return nil, oops.With("stats_path", cfg.StatsPath, "context", "failed to initialize file stats repository").Wrap(err)
		}
		return repo, nil
	})

	// Register Currency Converter
	do.Provide(injector, func(i do.Injector) (*fx.Converter, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return fx.NewConverter(cfg.FXUSDRates), nil
	})

	// Register User Service
	do.Provide(injector, func(i do.Injector) (*userService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repo := do.MustInvoke[userRepo.Repository](i)
		return userService.New(repo, cfg.AdminIDs, cfg.TrialDays), nil
	})

	// Register Keyword Service
	do.Provide(injector, func(i do.Injector) (*keywordService.Service, error) {
		repo := do.MustInvoke[keywordRepo.Repository](i)
		return keywordService.New(repo), nil
	})

	// Register Job Service
	do.Provide(injector, func(i do.Injector) (*jobService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		converter := do.MustInvoke[*fx.Converter](i)
		return jobService.New(converter, cfg.KeywordFilterMode, cfg.JobRecencyDays, cfg.AffiliatePrefixFreelancer), nil
	})

	// Register Saved Service
	do.Provide(injector, func(i do.Injector) (*savedService.Service, error) {
		repo := do.MustInvoke[savedRepo.Repository](i)
		return savedService.New(repo), nil
	})

	// Register Feed Service
	do.Provide(injector, func(i do.Injector) (*feedService.Service, error) {
		sent := do.MustInvoke[sentRepo.Repository](i)
		users := do.MustInvoke[*userService.Service](i)
		return feedService.New(sent, users), nil
	})

	// Register Platform Fetchers
	do.Provide(injector, func(i do.Injector) ([]source.Fetcher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		var fetchers []source.Fetcher
		if cfg.PlatformEnabled("freelancer") {
			fetchers = append(fetchers, source.NewFreelancerFetcher())
		}
		if cfg.PlatformEnabled("skywalker") && cfg.SkywalkerRSS != "" {
			fetchers = append(fetchers, source.NewRSSFetcher("skywalker", cfg.SkywalkerRSS, "EUR"))
		}
		return fetchers, nil
	})

	// Register Worker Service
	do.Provide(injector, func(i do.Injector) (*workerService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		users := do.MustInvoke[*userService.Service](i)
		keywords := do.MustInvoke[*keywordService.Service](i)
		jobs := do.MustInvoke[*jobService.Service](i)
		fetchers := do.MustInvoke[[]source.Fetcher](i)
		sent := do.MustInvoke[sentRepo.Repository](i)
		events := do.MustInvoke[eventRepo.Repository](i)
		stats := do.MustInvoke[statsRepo.Repository](i)
		return workerService.New(cfg, users, keywords, jobs, fetchers, sent, events, stats), nil
	})

	// Register Telegram Handler
	do.Provide(injector, func(i do.Injector) (*telegramHandler.Handler, error) {
		cfg := do.MustInvoke[*config.Config](i)
		users := do.MustInvoke[*userService.Service](i)
		keywords := do.MustInvoke[*keywordService.Service](i)
		saved := do.MustInvoke[*savedService.Service](i)
		jobs := do.MustInvoke[*jobService.Service](i)
		stats := do.MustInvoke[statsRepo.Repository](i)
		events := do.MustInvoke[eventRepo.Repository](i)
		return telegramHandler.New(cfg, users, keywords, saved, jobs, stats, events), nil
	})

	// Register HTTP Server
	do.Provide(injector, func(i do.Injector) (*httpServer.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		feeds := do.MustInvoke[*feedService.Service](i)
		server := httpServer.New(cfg, feeds)
		server.SetLogger(slog.Default())
		return server, nil
	})

	// Register Bot (needs to be initialized after handlers are ready)
	do.Provide(injector, func(i do.Injector) (*bot.Bot, error) {
		cfg := do.MustInvoke[*config.Config](i)
		handler := do.MustInvoke[*telegramHandler.Handler](i)

		opts := []bot.Option{
			bot.WithDefaultHandler(handler.HandleUpdate),
		}

		b, err := bot.New(cfg.TelegramBotToken, opts...)
		if err != nil {
			return nil, oops.With("context", "failed to create telegram bot").Wrap(err)
		}

		// Register bot commands
		handler.RegisterCommands(b)
		handler.SetBot(b)

		// Wire the bot in as the worker's delivery transport
		worker := do.MustInvoke[*workerService.Service](i)
		worker.SetDelivery(handler)

		return b, nil
	})

	return injector, nil
}

// Shutdown gracefully shuts down all services
func Shutdown(injector do.Injector) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if b, err := do.Invoke[*bot.Bot](injector); err == nil && b != nil {
		b.Close(ctx)
	}

	if worker, err := do.Invoke[*workerService.Service](injector); err == nil && worker != nil {
		worker.Stop()
	}

	if server, err := do.Invoke[*httpServer.Server](injector); err == nil && server != nil {
		if err := server.Stop(ctx); err != nil {
			slog.Error("HTTP server shutdown failed", "error", err)
		}
	}

	if pool, err := do.Invoke[*pgxpool.Pool](injector); err == nil && pool != nil {
		pool.Close()
	}

	return nil
}
