package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/aribowo/matchday-tracker/internal/domain/match"
	"github.com/aribowo/matchday-tracker/internal/domain/stats"
	"github.com/aribowo/matchday-tracker/internal/domain/team"
	"github.com/aribowo/matchday-tracker/internal/platform/cache"
)

// Overview bundles everything a stats card needs for one filter selection.
type Overview struct {
	TeamID   string
	Summary  stats.Summary
	Series   []stats.SeriesPoint
	Badges   []stats.Badge
	Level    int
	MaxLevel int
}

// StatsService derives presentation-ready statistics from stored match
// records. All derivation is pure; the service only loads snapshots and
// memoizes results.
type StatsService struct {
	teamRepo  team.Repository
	matchRepo match.Repository
	tracks    []stats.Track
	cache     *cache.Store
}

func NewStatsService(teamRepo team.Repository, matchRepo match.Repository, tracks []stats.Track, store *cache.Store) *StatsService {
	if len(tracks) == 0 {
		tracks = stats.DefaultTracks()
	}
	return &StatsService{
		teamRepo:  teamRepo,
		matchRepo: matchRepo,
		tracks:    tracks,
		cache:     store,
	}
}

func (s *StatsService) Overview(ctx context.Context, teamID string, filter stats.Filter) (Overview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Overview")
	defer span.End()

	teamID, err := s.resolveTeam(ctx, teamID)
	if err != nil {
		return Overview{}, err
	}
	if err := filter.Window.Validate(); err != nil {
		return Overview{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	filter.TeamID = teamID

	key := "stats:overview:" + teamID + ":" + filterKey(filter)
	value, err := s.cached(ctx, key, func(ctx context.Context) (any, error) {
		records, err := s.loadRecords(ctx, teamID)
		if err != nil {
			return nil, err
		}

		filtered := stats.Apply(records, filter)
		summary := stats.Summarize(filtered)
		badges := stats.Badges(summary, s.tracks)

		return Overview{
			TeamID:   teamID,
			Summary:  summary,
			Series:   stats.Series(filtered, filter.Window),
			Badges:   badges,
			Level:    stats.OverallLevel(badges),
			MaxLevel: stats.MaxLevel(s.tracks),
		}, nil
	})
	if err != nil {
		return Overview{}, err
	}

	overview, _ := value.(Overview)
	return overview, nil
}

func (s *StatsService) Timeline(ctx context.Context, teamID string, filter stats.Filter) ([]stats.MonthGroup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Timeline")
	defer span.End()

	teamID, err := s.resolveTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if err := filter.Window.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	filter.TeamID = teamID

	key := "stats:timeline:" + teamID + ":" + filterKey(filter)
	value, err := s.cached(ctx, key, func(ctx context.Context) (any, error) {
		records, err := s.loadRecords(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return stats.Timeline(stats.Apply(records, filter)), nil
	})
	if err != nil {
		return nil, err
	}

	groups, _ := value.([]stats.MonthGroup)
	return groups, nil
}

func (s *StatsService) HeadToHead(ctx context.Context, teamID, opponent string) (stats.HeadToHead, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.HeadToHead")
	defer span.End()

	teamID, err := s.resolveTeam(ctx, teamID)
	if err != nil {
		return stats.HeadToHead{}, err
	}
	if strings.TrimSpace(opponent) == "" {
		return stats.HeadToHead{}, fmt.Errorf("%w: opponent name is required", ErrInvalidInput)
	}

	records, err := s.loadRecords(ctx, teamID)
	if err != nil {
		return stats.HeadToHead{}, err
	}
	filtered := stats.Apply(records, stats.Filter{TeamID: teamID, Window: stats.AllTime()})

	return stats.AgainstOpponent(filtered, opponent), nil
}

// FilterOptions derives the selectable time windows from the dates actually
// present in the team's completed matches.
func (s *StatsService) FilterOptions(ctx context.Context, teamID string) (stats.WindowOptions, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.FilterOptions")
	defer span.End()

	teamID, err := s.resolveTeam(ctx, teamID)
	if err != nil {
		return stats.WindowOptions{}, err
	}

	records, err := s.loadRecords(ctx, teamID)
	if err != nil {
		return stats.WindowOptions{}, err
	}
	if teamID != stats.FilterAll {
		records = stats.Apply(records, stats.Filter{TeamID: teamID, Window: stats.AllTime()})
	}

	return stats.OptionsFor(records), nil
}

// InvalidateTeam drops every memoized view of one team. Write paths call it
// so re-derivation sees the fresh snapshot.
func (s *StatsService) InvalidateTeam(ctx context.Context, teamID string) {
	if s.cache == nil {
		return
	}
	s.cache.DeletePrefix(ctx, "stats:overview:"+teamID+":")
	s.cache.DeletePrefix(ctx, "stats:timeline:"+teamID+":")
	s.cache.DeletePrefix(ctx, "stats:overview:"+stats.FilterAll+":")
	s.cache.DeletePrefix(ctx, "stats:timeline:"+stats.FilterAll+":")
}

func (s *StatsService) resolveTeam(ctx context.Context, teamID string) (string, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return "", fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if teamID == stats.FilterAll {
		return teamID, nil
	}

	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return "", fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return "", fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return teamID, nil
}

func (s *StatsService) loadRecords(ctx context.Context, teamID string) ([]match.Record, error) {
	if teamID == stats.FilterAll {
		records, err := s.matchRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list matches: %w", err)
		}
		return records, nil
	}

	records, err := s.matchRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list matches by team: %w", err)
	}
	return records, nil
}

func (s *StatsService) cached(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if s.cache == nil {
		return loader(ctx)
	}
	return s.cache.GetOrLoad(ctx, key, loader)
}

func filterKey(filter stats.Filter) string {
	return fmt.Sprintf("%s|%s|%d-%d-%d",
		strings.ToLower(strings.TrimSpace(filter.MatchType)),
		filter.Window.Kind,
		filter.Window.Year,
		filter.Window.Quarter,
		int(filter.Window.Month),
	)
}
