package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/aribowo/matchday-tracker/external/calendar"
	"github.com/aribowo/matchday-tracker/internal/domain/match"
	"github.com/aribowo/matchday-tracker/internal/domain/team"
	"github.com/aribowo/matchday-tracker/internal/platform/logging"
)

const importWorkers = 3

type fixtureFeed interface {
	UpcomingFixtures(ctx context.Context, teamCode string, from time.Time) ([]calendar.Fixture, error)
}

type matchCreator interface {
	Create(ctx context.Context, record match.Record) (match.Record, error)
}

// ImportResult reports one team's fixture import.
type ImportResult struct {
	TeamID   string
	Imported int
	Skipped  int
	Err      error
}

// ImportService pulls upcoming fixtures from a league calendar feed and
// creates scheduled match records for them.
type ImportService struct {
	teamRepo  team.Repository
	matchRepo match.Repository
	matches   matchCreator
	feed      fixtureFeed
	logger    *logging.Logger
	now       func() time.Time
}

func NewImportService(
	teamRepo team.Repository,
	matchRepo match.Repository,
	matches matchCreator,
	feed fixtureFeed,
	logger *logging.Logger,
) *ImportService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ImportService{
		teamRepo:  teamRepo,
		matchRepo: matchRepo,
		matches:   matches,
		feed:      feed,
		logger:    logger,
		now:       time.Now,
	}
}

// ImportTeam fetches the feed for one team and records the fixtures not
// already in the book. A fixture matches an existing record on date plus
// trimmed, case-insensitive opponent.
func (s *ImportService) ImportTeam(ctx context.Context, teamID string) (ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ImportTeam")
	defer span.End()

	result := ImportResult{TeamID: teamID}

	if s.feed == nil {
		return result, fmt.Errorf("%w: fixture feed is not configured", ErrDependencyUnavailable)
	}

	profile, exists, err := s.teamRepo.GetByID(ctx, strings.TrimSpace(teamID))
	if err != nil {
		return result, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return result, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	code := profile.Short
	if code == "" {
		code = profile.ID
	}

	fixtures, err := s.feed.UpcomingFixtures(ctx, code, s.now().UTC())
	if err != nil {
		return result, fmt.Errorf("%w: fetch fixture feed: %v", ErrDependencyUnavailable, err)
	}

	existing, err := s.matchRepo.ListByTeam(ctx, profile.ID)
	if err != nil {
		return result, fmt.Errorf("list matches by team: %w", err)
	}
	seen := make(map[string]struct{}, len(existing))
	for _, record := range existing {
		seen[fixtureKey(record.Date, record.Opponent)] = struct{}{}
	}

	for _, fixture := range fixtures {
		key := fixtureKey(fixture.Date, fixture.Opponent)
		if _, dup := seen[key]; dup {
			result.Skipped++
			continue
		}

		if _, err := s.matches.Create(ctx, match.Record{
			TeamID:   profile.ID,
			Date:     fixture.Date,
			Status:   match.StatusScheduled,
			Opponent: fixture.Opponent,
			Type:     feedCompetitionToType(fixture.Competition),
		}); err != nil {
			return result, fmt.Errorf("create imported fixture: %w", err)
		}
		seen[key] = struct{}{}
		result.Imported++
	}

	s.logger.InfoContext(ctx, "fixture import finished",
		"team_id", profile.ID,
		"imported", result.Imported,
		"skipped", result.Skipped,
	)

	return result, nil
}

// ImportAll runs ImportTeam for every team on a worker pool. Per-team
// failures land in the result rows instead of aborting the batch.
func (s *ImportService) ImportAll(ctx context.Context) ([]ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ImportAll")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams for import: %w", err)
	}
	if len(teams) == 0 {
		return nil, nil
	}

	workerCount := importWorkers
	if len(teams) < workerCount {
		workerCount = len(teams)
	}
	workerPool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create import worker pool: %w", err)
	}
	defer workerPool.Release()

	results := make([]ImportResult, len(teams))
	var workers sync.WaitGroup
	for i, profile := range teams {
		i, profile := i, profile
		workers.Add(1)
		if err := workerPool.Submit(func() {
			defer workers.Done()
			row, importErr := s.ImportTeam(ctx, profile.ID)
			row.TeamID = profile.ID
			row.Err = importErr
			results[i] = row
		}); err != nil {
			workers.Done()
			return nil, fmt.Errorf("submit import task: %w", err)
		}
	}
	workers.Wait()

	for _, row := range results {
		if row.Err != nil && !errors.Is(row.Err, ErrDependencyUnavailable) {
			s.logger.WarnContext(ctx, "team fixture import failed", "team_id", row.TeamID, "error", row.Err)
		}
	}

	return results, nil
}

func fixtureKey(date time.Time, opponent string) string {
	return date.Format("2006-01-02") + "|" + strings.ToLower(strings.TrimSpace(opponent))
}

func feedCompetitionToType(competition string) string {
	switch competition {
	case match.TypeLeague, match.TypeCup, match.TypeFriendly:
		return competition
	default:
		return match.TypeFriendly
	}
}
