package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/apstld/freelance-alert-bot/internal/modules/job/domain"
	sharederrors "github.com/apstld/freelance-alert-bot/internal/shared/errors"
)

func TestLoadRequiredFields(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("DATABASE_URL", "")
	if _, err := Load(); !errors.Is(err, sharederrors.ErrMissingBotToken) {
		t.Errorf("Load without token = %v, want ErrMissingBotToken", err)
	}

	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	if _, err := Load(); !errors.Is(err, sharederrors.ErrMissingDatabaseURL) {
		t.Errorf("Load without database url = %v, want ErrMissingDatabaseURL", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("DATABASE_URL", "postgres://localhost/alerts")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.HTTPPort != "8080" {
		t.Errorf("HTTPPort = %q, want 8080", cfg.HTTPPort)
	}
	if cfg.WorkerInterval != 120 {
		t.Errorf("WorkerInterval = %d, want 120", cfg.WorkerInterval)
	}
	if cfg.TrialDays != 10 {
		t.Errorf("TrialDays = %d, want 10", cfg.TrialDays)
	}
	if cfg.SentRetentionDays != 7 {
		t.Errorf("SentRetentionDays = %d, want 7", cfg.SentRetentionDays)
	}
	if cfg.JobRecencyDays != 7 {
		t.Errorf("JobRecencyDays = %d, want 7", cfg.JobRecencyDays)
	}
	if cfg.StatsWindowHours != 24 {
		t.Errorf("StatsWindowHours = %d, want 24", cfg.StatsWindowHours)
	}
	if !reflect.DeepEqual(cfg.Platforms, []string{"freelancer", "skywalker"}) {
		t.Errorf("Platforms = %v", cfg.Platforms)
	}
	if cfg.KeywordFilterMode != domain.MatchModeAny {
		t.Errorf("KeywordFilterMode = %v, want any", cfg.KeywordFilterMode)
	}
	if cfg.AppEnv != domain.AppEnvProduction {
		t.Errorf("AppEnv = %v, want production", cfg.AppEnv)
	}
	if cfg.WebhookMode() {
		t.Error("webhook mode should be off by default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("DATABASE_URL", "postgres://localhost/alerts")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("WORKER_INTERVAL", "60")
	t.Setenv("JOB_RECENCY_DAYS", "3")
	t.Setenv("ADMIN_IDS", "7, 42")
	t.Setenv("PLATFORMS", "Freelancer")
	t.Setenv("KEYWORD_FILTER_MODE", "all")
	t.Setenv("WEBHOOK_SECRET", "s3cret")
	t.Setenv("WEBHOOK_BASE_URL", "https://alerts.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.HTTPPort != "9000" {
		t.Errorf("HTTPPort = %q, want 9000", cfg.HTTPPort)
	}
	if cfg.WorkerInterval != 60 {
		t.Errorf("WorkerInterval = %d, want 60", cfg.WorkerInterval)
	}
	if cfg.JobRecencyDays != 3 {
		t.Errorf("JobRecencyDays = %d, want 3", cfg.JobRecencyDays)
	}
	if !reflect.DeepEqual(cfg.AdminIDs, []int64{7, 42}) {
		t.Errorf("AdminIDs = %v, want [7 42]", cfg.AdminIDs)
	}
	if !reflect.DeepEqual(cfg.Platforms, []string{"freelancer"}) {
		t.Errorf("Platforms = %v, want [freelancer]", cfg.Platforms)
	}
	if cfg.KeywordFilterMode != domain.MatchModeAll {
		t.Errorf("KeywordFilterMode = %v, want all", cfg.KeywordFilterMode)
	}
	if !cfg.WebhookMode() {
		t.Error("webhook mode should be on when secret and base url are set")
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	yaml := `telegram_bot_token: "file:token"
database_url: "postgres://localhost/fromfile"
http_port: "7070"
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TelegramBotToken != "file:token" || cfg.HTTPPort != "7070" {
		t.Errorf("file values not loaded: token=%q port=%q", cfg.TelegramBotToken, cfg.HTTPPort)
	}
}

func TestLoadEmptyEnvDoesNotOverrideFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	yaml := `telegram_bot_token: "file:token"
database_url: "postgres://localhost/fromfile"
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("DATABASE_URL", "postgres://localhost/fromenv")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TelegramBotToken != "file:token" {
		t.Errorf("empty env var should not blank the file value, got %q", cfg.TelegramBotToken)
	}
	if cfg.DatabaseURL != "postgres://localhost/fromenv" {
		t.Errorf("non-empty env var should win, got %q", cfg.DatabaseURL)
	}
}

func TestLoadInvalidModeFallsBack(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("DATABASE_URL", "postgres://localhost/alerts")
	t.Setenv("KEYWORD_FILTER_MODE", "sometimes")
	t.Setenv("APP_ENV", "staging")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.KeywordFilterMode != domain.MatchModeAny {
		t.Errorf("invalid mode should fall back to any, got %v", cfg.KeywordFilterMode)
	}
	if cfg.AppEnv != domain.AppEnvProduction {
		t.Errorf("invalid env should fall back to production, got %v", cfg.AppEnv)
	}
}

func TestParseAdminIDs(t *testing.T) {
	tests := []struct {
		in   string
		want []int64
	}{
		{"", []int64{}},
		{"42", []int64{42}},
		{"7, 42 ,99", []int64{7, 42, 99}},
		{"7,abc,42", []int64{7, 42}},
		{"12abc", []int64{}},
		{"1.5,42", []int64{42}},
		{" , ,", []int64{}},
	}

	for _, tt := range tests {
		if got := ParseAdminIDs(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseAdminIDs(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParsePlatforms(t *testing.T) {
	got := ParsePlatforms(" Freelancer , SKYWALKER ,, ")
	if !reflect.DeepEqual(got, []string{"freelancer", "skywalker"}) {
		t.Errorf("ParsePlatforms = %v", got)
	}
}

func TestPlatformEnabled(t *testing.T) {
	cfg := &Config{Platforms: []string{"freelancer"}}
	if !cfg.PlatformEnabled("Freelancer") {
		t.Error("platform check should be case insensitive")
	}
	if cfg.PlatformEnabled("skywalker") {
		t.Error("disabled platform reported enabled")
	}
}
