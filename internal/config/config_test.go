package config

import (
	"testing"
	"time"

	"github.com/aribowo/matchday-tracker/internal/platform/logging"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
	if !cfg.CacheEnabled || cfg.CacheTTL != 60*time.Second {
		t.Fatalf("unexpected cache defaults: enabled=%v ttl=%s", cfg.CacheEnabled, cfg.CacheTTL)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected log level: %v", cfg.LogLevel)
	}
	if cfg.DBURL != "" {
		t.Fatalf("DB_URL should default to empty (memory mode), got %q", cfg.DBURL)
	}
}

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_ProdRequiresAPIToken(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("API_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for prod without API_TOKEN")
	}
}

func TestLoad_FeedRequiresBaseURLWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CALENDAR_FEED_ENABLED", "true")
	t.Setenv("CALENDAR_FEED_BASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when CALENDAR_FEED_ENABLED=true without CALENDAR_FEED_BASE_URL")
	}
}

func TestLoad_FeedConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CALENDAR_FEED_ENABLED", "true")
	t.Setenv("CALENDAR_FEED_BASE_URL", "https://feed.example/api")
	t.Setenv("CALENDAR_FEED_TOKEN", "token-123")
	t.Setenv("CALENDAR_FEED_TIMEOUT", "4s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.FeedEnabled || cfg.FeedBaseURL != "https://feed.example/api" {
		t.Fatalf("unexpected feed config: %+v", cfg)
	}
	if cfg.FeedToken != "token-123" || cfg.FeedTimeout != 4*time.Second {
		t.Fatalf("unexpected feed token/timeout: %q %s", cfg.FeedToken, cfg.FeedTimeout)
	}
}

func TestLoad_InvalidCacheTTL(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CACHE_TTL", "-1s")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for non-positive CACHE_TTL")
	}
}
