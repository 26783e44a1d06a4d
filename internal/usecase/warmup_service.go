package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/aribowo/matchday-tracker/internal/domain/stats"
	"github.com/aribowo/matchday-tracker/internal/domain/team"
	"github.com/aribowo/matchday-tracker/internal/platform/logging"
)

const warmupWorkers = 4

type overviewProvider interface {
	Overview(ctx context.Context, teamID string, filter stats.Filter) (Overview, error)
	Timeline(ctx context.Context, teamID string, filter stats.Filter) ([]stats.MonthGroup, error)
}

// WarmupService precomputes the all-time views for every team so first page
// loads hit the cache.
type WarmupService struct {
	teamRepo team.Repository
	stats    overviewProvider
	logger   *logging.Logger
}

func NewWarmupService(teamRepo team.Repository, stats overviewProvider, logger *logging.Logger) *WarmupService {
	if logger == nil {
		logger = logging.Default()
	}
	return &WarmupService{
		teamRepo: teamRepo,
		stats:    stats,
		logger:   logger,
	}
}

// Run computes the all-time overview and timeline per team on a bounded
// worker pool. Failures are logged and counted, never fatal: the cache just
// stays cold for that team.
func (s *WarmupService) Run(ctx context.Context) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WarmupService.Run")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list teams for warmup: %w", err)
	}

	started := time.Now()
	workers := pool.New().WithMaxGoroutines(warmupWorkers)

	warmed := 0
	results := make([]bool, len(teams))
	for i, profile := range teams {
		i, profile := i, profile
		workers.Go(func() {
			filter := stats.Filter{Window: stats.AllTime()}
			if _, err := s.stats.Overview(ctx, profile.ID, filter); err != nil {
				s.logger.WarnContext(ctx, "overview warmup failed", "team_id", profile.ID, "error", err)
				return
			}
			if _, err := s.stats.Timeline(ctx, profile.ID, filter); err != nil {
				s.logger.WarnContext(ctx, "timeline warmup failed", "team_id", profile.ID, "error", err)
				return
			}
			results[i] = true
		})
	}
	workers.Wait()

	for _, ok := range results {
		if ok {
			warmed++
		}
	}

	s.logger.InfoContext(ctx, "stats warmup finished",
		"teams", len(teams),
		"warmed", warmed,
		"duration_ms", time.Since(started).Milliseconds(),
	)

	return warmed, nil
}
