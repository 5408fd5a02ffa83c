package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/apstld/freelance-alert-bot/internal/modules/job/domain"
	"github.com/apstld/freelance-alert-bot/internal/shared/errors"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

type Config struct {
	TelegramBotToken          string           `koanf:"telegram_bot_token"`
	DatabaseURL               string           `koanf:"database_url"`
	HTTPPort                  string           `koanf:"http_port"`
	WorkerInterval            int              `koanf:"worker_interval"`
	AdminIDs                  []int64          `koanf:"-"`
	TrialDays                 int              `koanf:"trial_days"`
	SentRetentionDays         int              `koanf:"sent_retention_days"`
	JobRecencyDays            int              `koanf:"job_recency_days"`
	StatsWindowHours          int              `koanf:"stats_window_hours"`
	KeywordFilterMode         domain.MatchMode `koanf:"keyword_filter_mode"`
	AffiliatePrefixFreelancer string           `koanf:"affiliate_prefix_freelancer"`
	FXUSDRates                string           `koanf:"fx_usd_rates"`
	Platforms                 []string         `koanf:"-"`
	SkywalkerRSS              string           `koanf:"skywalker_rss"`
	RedisURL                  string           `koanf:"redis_url"`
	StatsPath                 string           `koanf:"stats_path"`
	WebhookSecret             string           `koanf:"webhook_secret"`
	WebhookBaseURL            string           `koanf:"webhook_base_url"`
	AppEnv                    domain.AppEnv    `koanf:"app_env"`
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try to load config file from various formats
	configFiles := []string{
		"config.yaml",
		"config.yml",
		"config.json",
		"config.toml",
	}

	// Use lo.Find to find the first existing config file
	configFile, found := lo.Find(configFiles, func(file string) bool {
		_, err := os.Stat(file)
		return err == nil
	})

	if found {
		var parser koanf.Parser
		ext := filepath.Ext(configFile)

		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		case ".toml":
			parser = toml.Parser()
		default:
			return nil, oops.Errorf("unsupported config file extension: %s", ext)
		}

		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, oops.With("config_file", configFile).Wrap(err)
		}
	}

	// Load environment variables (they override config file values).
	// Variables that are set but empty are skipped so they cannot blank
	// out a value coming from the config file.
	if err := k.Load(env.ProviderWithValue("", ".", func(key, value string) (string, interface{}) {
		if value == "" {
			return "", nil
		}
		return strings.ToLower(key), value
	}), nil); err != nil {
		return nil, oops.With("context", "loading environment variables").Wrap(err)
	}

	// Set defaults
	if !k.Exists("http_port") {
		k.Set("http_port", "8080")
	}
	if !k.Exists("worker_interval") {
		k.Set("worker_interval", 120)
	}
	if !k.Exists("trial_days") {
		k.Set("trial_days", 10)
	}
	if !k.Exists("sent_retention_days") {
		k.Set("sent_retention_days", 7)
	}
	if !k.Exists("job_recency_days") {
		k.Set("job_recency_days", 7)
	}
	if !k.Exists("stats_window_hours") {
		k.Set("stats_window_hours", 24)
	}
	if !k.Exists("platforms") {
		k.Set("platforms", "freelancer,skywalker")
	}
	if !k.Exists("skywalker_rss") {
		k.Set("skywalker_rss", "https://www.skywalker.gr/jobs/feed")
	}
	if !k.Exists("stats_path") {
		k.Set("stats_path", "./data/feedstats.json")
	}
	if !k.Exists("affiliate_prefix_freelancer") {
		k.Set("affiliate_prefix_freelancer", "https://www.freelancer.com/get/apstld?f=give&dl=")
	}
	if !k.Exists("app_env") {
		k.Set("app_env", "production")
	}

	// Unmarshal into struct
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.With("context", "unmarshaling config").Wrap(err)
	}

	// Parse AdminIDs from comma-separated string if it's a string
	if adminIDs := k.Get("admin_ids"); adminIDs != nil {
		switch v := adminIDs.(type) {
		case string:
			cfg.AdminIDs = ParseAdminIDs(v)
		case []interface{}:
			cfg.AdminIDs = lo.FilterMap(v, func(item interface{}, _ int) (int64, bool) {
				switch val := item.(type) {
				case int64:
					return val, true
				case int:
					return int64(val), true
				case float64:
					return int64(val), true
				default:
					return 0, false
				}
			})
		}
	}

	// Parse Platforms from a comma-separated string or a list
	if platforms := k.Get("platforms"); platforms != nil {
		switch v := platforms.(type) {
		case string:
			cfg.Platforms = ParsePlatforms(v)
		case []interface{}:
			cfg.Platforms = lo.FilterMap(v, func(item interface{}, _ int) (string, bool) {
				s, ok := item.(string)
				s = strings.ToLower(strings.TrimSpace(s))
				return s, ok && s != ""
			})
		}
	}

	// Parse KeywordFilterMode from string if needed
	if modeStr := k.String("keyword_filter_mode"); modeStr != "" {
		if mode, err := domain.ParseMatchMode(modeStr); err == nil {
			cfg.KeywordFilterMode = mode
		} else {
			cfg.KeywordFilterMode = domain.MatchModeAny
		}
	} else {
		cfg.KeywordFilterMode = domain.MatchModeAny
	}

	// Parse AppEnv from string if needed
	if appEnvStr := k.String("app_env"); appEnvStr != "" {
		if env, err := domain.ParseAppEnv(appEnvStr); err == nil {
			cfg.AppEnv = env
		} else {
			cfg.AppEnv = domain.AppEnvProduction
		}
	} else {
		cfg.AppEnv = domain.AppEnvProduction
	}

	// Validate required fields
	if cfg.TelegramBotToken == "" {
		return nil, errors.ErrMissingBotToken
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.ErrMissingDatabaseURL
	}

	return &cfg, nil
}

// ParseAdminIDs parses comma-separated telegram IDs string into []int64
func ParseAdminIDs(s string) []int64 {
	if s == "" {
		return []int64{}
	}
	parts := strings.Split(s, ",")
	return lo.FilterMap(parts, func(part string, _ int) (int64, bool) {
		part = strings.TrimSpace(part)
		if part == "" {
			return 0, false
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return 0, false
		}
		return id, true
	})
}

// ParsePlatforms parses a comma-separated platform list, lowercased
func ParsePlatforms(s string) []string {
	parts := strings.Split(s, ",")
	return lo.FilterMap(parts, func(part string, _ int) (string, bool) {
		part = strings.ToLower(strings.TrimSpace(part))
		return part, part != ""
	})
}

// PlatformEnabled reports whether a platform is in the enabled list
func (c *Config) PlatformEnabled(name string) bool {
	return lo.Contains(c.Platforms, strings.ToLower(name))
}

// WebhookMode reports whether the bot should receive updates over HTTP
// instead of long polling
func (c *Config) WebhookMode() bool {
	return c.WebhookSecret != "" && c.WebhookBaseURL != ""
}
