package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"

	"github.com/aribowo/matchday-tracker/external/calendar"
	"github.com/aribowo/matchday-tracker/internal/config"
	"github.com/aribowo/matchday-tracker/internal/domain/match"
	"github.com/aribowo/matchday-tracker/internal/domain/team"
	cacherepo "github.com/aribowo/matchday-tracker/internal/infrastructure/repository/cache"
	"github.com/aribowo/matchday-tracker/internal/infrastructure/repository/memory"
	"github.com/aribowo/matchday-tracker/internal/infrastructure/repository/postgres"
	"github.com/aribowo/matchday-tracker/internal/interfaces/httpapi"
	"github.com/aribowo/matchday-tracker/internal/platform/cache"
	idgen "github.com/aribowo/matchday-tracker/internal/platform/id"
	"github.com/aribowo/matchday-tracker/internal/platform/logging"
	"github.com/aribowo/matchday-tracker/internal/usecase"
)

// NewHTTPServer assembles the repository, service, and HTTP layers from
// config. With DB_URL empty the server runs on the seeded in-memory store.
func NewHTTPServer(cfg config.Config, logger *logging.Logger, httpLogger *slog.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if httpLogger == nil {
		httpLogger = slog.Default()
	}

	teamRepo, matchRepo, err := newRepositories(cfg)
	if err != nil {
		return nil, err
	}

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
		teamRepo = cacherepo.NewTeamRepository(teamRepo, store)
		matchRepo = cacherepo.NewMatchRepository(matchRepo, store)
	}

	teamSvc := usecase.NewTeamService(teamRepo)
	statsSvc := usecase.NewStatsService(teamRepo, matchRepo, nil, store)
	matchSvc := usecase.NewMatchService(teamRepo, matchRepo, idgen.NewRandomGenerator(), statsSvc, logger)
	warmupSvc := usecase.NewWarmupService(teamRepo, statsSvc, logger)

	importSvc := usecase.NewImportService(teamRepo, matchRepo, matchSvc, nil, logger)
	if cfg.FeedEnabled {
		feed, err := calendar.NewClient(calendar.ClientConfig{
			BaseURL: cfg.FeedBaseURL,
			Token:   cfg.FeedToken,
			Timeout: cfg.FeedTimeout,
			Logger:  logger,
		})
		if err != nil {
			return nil, fmt.Errorf("build calendar feed client: %w", err)
		}
		importSvc = usecase.NewImportService(teamRepo, matchRepo, matchSvc, feed, logger)
	}

	handler := httpapi.NewHandler(teamSvc, matchSvc, statsSvc, importSvc, warmupSvc, httpLogger)
	router := httpapi.NewRouter(handler, httpLogger, cfg.CORSAllowedOrigins, cfg.APIToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	if cfg.WarmupOnStart {
		go func() {
			if warmed, err := warmupSvc.Run(context.Background()); err != nil {
				logger.Warn("startup warmup failed", "error", err)
			} else {
				logger.Info("startup warmup done", "teams", warmed)
			}
		}()
	}

	return server, nil
}

func newRepositories(cfg config.Config) (team.Repository, match.Repository, error) {
	if cfg.DBURL == "" {
		return memory.NewTeamRepository(memory.SeedTeams()), memory.NewMatchRepository(memory.SeedMatches()), nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	return postgres.NewTeamRepository(db), postgres.NewMatchRepository(db), nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dbURL := normalizeDBURL(cfg.DBURL, true)

	db, err := otelsqlx.Connect("postgres", dbURL,
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	return db, nil
}
