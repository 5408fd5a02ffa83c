package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/joho/godotenv"
	"github.com/samber/do/v2"
	slogmulti "github.com/samber/slog-multi"

	"github.com/apstld/freelance-alert-bot/internal/di"
	userService "github.com/apstld/freelance-alert-bot/internal/modules/user/service"
	workerService "github.com/apstld/freelance-alert-bot/internal/modules/worker/service"
	"github.com/apstld/freelance-alert-bot/internal/shared/config"
	httpServer "github.com/apstld/freelance-alert-bot/internal/transport/http"
)

func main() {
	// Local development convenience, a missing .env is fine
	_ = godotenv.Load()

	// Setup structured logging with multiple handlers using slog-multi
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	jsonHandler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	})

	// Use Fanout to send logs to both handlers
	multiHandler := slogmulti.Fanout(textHandler, jsonHandler)
	logger := slog.New(multiHandler)
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Setup dependency injection
	injector, err := di.Setup(ctx)
	if err != nil {
		slog.Error("Failed to setup dependency injection", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := di.Shutdown(injector); err != nil {
			slog.Error("Error during shutdown", "error", err)
		}
	}()

	// Get services from DI container
	cfg := do.MustInvoke[*config.Config](injector)
	users := do.MustInvoke[*userService.Service](injector)
	worker := do.MustInvoke[*workerService.Service](injector)
	server := do.MustInvoke[*httpServer.Server](injector)
	b := do.MustInvoke[*bot.Bot](injector)

	if err := users.EnsureAdmins(ctx); err != nil {
		slog.Error("Failed to ensure admin users", "error", err)
		os.Exit(1)
	}

	if cfg.WebhookMode() {
		server.SetWebhookHandler(b.WebhookHandler())
		webhookURL := cfg.WebhookBaseURL + "/webhook/" + cfg.WebhookSecret
		if _, err := b.SetWebhook(ctx, &bot.SetWebhookParams{URL: webhookURL}); err != nil {
			slog.Error("Failed to set webhook", "error", err)
			os.Exit(1)
		}
		go b.StartWebhook(ctx)
		slog.Info("Bot started in webhook mode", "url", cfg.WebhookBaseURL)
	} else {
		go b.Start(ctx)
		slog.Info("Bot started in long polling mode")
	}

	// Start the polling worker
	worker.Start(ctx)

	// Start HTTP server
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Failed to start HTTP server", "error", err)
			cancel()
		}
	}()

	slog.Info("Application started", "port", cfg.HTTPPort, "platforms", cfg.Platforms, "env", cfg.AppEnv)

	<-ctx.Done()
	slog.Info("Shutting down...")
}
