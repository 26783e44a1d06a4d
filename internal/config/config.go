package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aribowo/matchday-tracker/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv              string
	ServiceName         string
	ServiceVersion      string
	HTTPAddr            string
	DBURL               string
	CacheEnabled        bool
	CacheTTL            time.Duration
	CORSAllowedOrigins  []string
	ReadTimeout         time.Duration
	WriteTimeout        time.Duration
	APIToken            string
	PprofEnabled        bool
	PprofAddr           string
	UptraceEnabled      bool
	UptraceDSN          string
	PyroscopeEnabled    bool
	PyroscopeServerAddr string
	PyroscopeAppName    string
	PyroscopeAuthToken  string
	PyroscopeUploadRate time.Duration
	FeedEnabled         bool
	FeedBaseURL         string
	FeedToken           string
	FeedTimeout         time.Duration
	WarmupOnStart       bool
	LogLevel            logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddr := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddr == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	feedEnabled, err := strconv.ParseBool(getEnv("CALENDAR_FEED_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CALENDAR_FEED_ENABLED: %w", err)
	}
	feedBaseURL := strings.TrimSpace(getEnv("CALENDAR_FEED_BASE_URL", ""))
	if feedEnabled && feedBaseURL == "" {
		return Config{}, fmt.Errorf("CALENDAR_FEED_BASE_URL is required when CALENDAR_FEED_ENABLED=true")
	}
	feedTimeout, err := time.ParseDuration(getEnv("CALENDAR_FEED_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CALENDAR_FEED_TIMEOUT: %w", err)
	}
	if feedTimeout <= 0 {
		return Config{}, fmt.Errorf("CALENDAR_FEED_TIMEOUT must be > 0")
	}

	warmupOnStart, err := strconv.ParseBool(getEnv("WARMUP_ON_START", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse WARMUP_ON_START: %w", err)
	}

	logLevel, err := logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_LOG_LEVEL: %w", err)
	}

	cfg := Config{
		AppEnv:              appEnv,
		ServiceName:         getEnv("APP_SERVICE_NAME", "matchday-tracker-api"),
		ServiceVersion:      getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:            getEnv("APP_HTTP_ADDR", ":8080"),
		DBURL:               strings.TrimSpace(getEnv("DB_URL", "")),
		CacheEnabled:        cacheEnabled,
		CacheTTL:            cacheTTL,
		CORSAllowedOrigins:  splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:         readTimeout,
		WriteTimeout:        writeTimeout,
		APIToken:            strings.TrimSpace(getEnv("API_TOKEN", "")),
		PprofEnabled:        pprofEnabled,
		PprofAddr:           pprofAddr,
		UptraceEnabled:      uptraceEnabled,
		UptraceDSN:          uptraceDSN,
		PyroscopeEnabled:    pyroscopeEnabled,
		PyroscopeServerAddr: pyroscopeServerAddr,
		PyroscopeAuthToken:  strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeUploadRate: pyroscopeUploadRate,
		FeedEnabled:         feedEnabled,
		FeedBaseURL:         feedBaseURL,
		FeedToken:           strings.TrimSpace(getEnv("CALENDAR_FEED_TOKEN", "")),
		FeedTimeout:         feedTimeout,
		WarmupOnStart:       warmupOnStart,
		LogLevel:            logLevel,
	}

	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if cfg.AppEnv == EnvProd && cfg.APIToken == "" {
		return Config{}, fmt.Errorf("API_TOKEN is required in prod")
	}

	return cfg, nil
}

func parseAppEnv(v string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case EnvDev:
		return EnvDev, nil
	case EnvStage:
		return EnvStage, nil
	case EnvProd:
		return EnvProd, nil
	default:
		return "", fmt.Errorf("unknown APP_ENV: %s", v)
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}
