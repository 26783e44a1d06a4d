package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aribowo/matchday-tracker/internal/domain/match"
	"github.com/aribowo/matchday-tracker/internal/domain/stats"
	"github.com/aribowo/matchday-tracker/internal/domain/team"
	"github.com/aribowo/matchday-tracker/internal/platform/cache"
)

func day(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func rated(value float64) *float64 {
	return &value
}

type stubTeamRepository struct {
	teams map[string]team.Profile
	err   error
}

func (s *stubTeamRepository) List(_ context.Context) ([]team.Profile, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]team.Profile, 0, len(s.teams))
	for _, profile := range s.teams {
		out = append(out, profile)
	}
	return out, nil
}

func (s *stubTeamRepository) GetByID(_ context.Context, teamID string) (team.Profile, bool, error) {
	if s.err != nil {
		return team.Profile{}, false, s.err
	}
	profile, ok := s.teams[teamID]
	return profile, ok, nil
}

type stubMatchRepository struct {
	mu      sync.Mutex
	records []match.Record
	lists   int
	err     error
}

func (s *stubMatchRepository) List(_ context.Context) ([]match.Record, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists++
	out := make([]match.Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *stubMatchRepository) ListByTeam(ctx context.Context, teamID string) ([]match.Record, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]match.Record, 0, len(all))
	for _, record := range all {
		if record.TeamID == teamID {
			out = append(out, record)
		}
	}
	return out, nil
}

func (s *stubMatchRepository) GetByID(_ context.Context, teamID, matchID string) (match.Record, bool, error) {
	if s.err != nil {
		return match.Record{}, false, s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, record := range s.records {
		if record.TeamID == teamID && record.ID == matchID {
			return record, true, nil
		}
	}
	return match.Record{}, false, nil
}

func (s *stubMatchRepository) Create(_ context.Context, record match.Record) error {
	if s.err != nil {
		return s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
	return nil
}

func (s *stubMatchRepository) Update(_ context.Context, record match.Record) error {
	if s.err != nil {
		return s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].TeamID == record.TeamID && s.records[i].ID == record.ID {
			s.records[i] = record
			return nil
		}
	}
	return errors.New("record not found")
}

func (s *stubMatchRepository) Delete(_ context.Context, teamID, matchID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].TeamID == teamID && s.records[i].ID == matchID {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return errors.New("record not found")
}

var _ team.Repository = (*stubTeamRepository)(nil)
var _ match.Repository = (*stubMatchRepository)(nil)

func teamFixture(teamID string) *stubTeamRepository {
	return &stubTeamRepository{teams: map[string]team.Profile{
		teamID: {ID: teamID, Name: "Lions U12", Short: "LIO"},
	}}
}

func completedMatch(teamID, matchID, date string, goals, assists int) match.Record {
	return match.Record{
		ID:            matchID,
		TeamID:        teamID,
		Date:          day(date),
		Status:        match.StatusCompleted,
		Type:          match.TypeLeague,
		Opponent:      "Rovers",
		PlayerGoals:   goals,
		PlayerAssists: assists,
	}
}

func TestStatsService_Overview(t *testing.T) {
	t.Parallel()

	const teamID = "team-1"

	first := completedMatch(teamID, "m1", "2024-01-10", 2, 0)
	first.ScoreFor, first.ScoreAgainst = 3, 1
	first.Rating = rated(8)
	second := completedMatch(teamID, "m2", "2024-01-20", 0, 1)
	second.Rating = rated(6)

	matchRepo := &stubMatchRepository{records: []match.Record{first, second}}
	service := NewStatsService(teamFixture(teamID), matchRepo, nil, nil)

	got, err := service.Overview(context.Background(), teamID, stats.Filter{Window: stats.AllTime()})
	if err != nil {
		t.Fatalf("Overview error: %v", err)
	}

	if got.Summary.TotalGoals != 2 || got.Summary.TotalAssists != 1 {
		t.Fatalf("unexpected totals: goals=%d assists=%d", got.Summary.TotalGoals, got.Summary.TotalAssists)
	}
	if got.Summary.AvgRating != 7.0 {
		t.Fatalf("unexpected average rating: %v", got.Summary.AvgRating)
	}
	if len(got.Series) != 2 {
		t.Fatalf("unexpected series length: %d", len(got.Series))
	}
	if len(got.Badges) != len(stats.DefaultTracks()) {
		t.Fatalf("unexpected badge count: %d", len(got.Badges))
	}
	if got.MaxLevel != stats.MaxLevel(stats.DefaultTracks()) {
		t.Fatalf("unexpected max level: %d", got.MaxLevel)
	}
}

func TestStatsService_OverviewUnknownTeam(t *testing.T) {
	t.Parallel()

	service := NewStatsService(teamFixture("team-1"), &stubMatchRepository{}, nil, nil)

	_, err := service.Overview(context.Background(), "ghost", stats.Filter{})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStatsService_OverviewInvalidWindow(t *testing.T) {
	t.Parallel()

	service := NewStatsService(teamFixture("team-1"), &stubMatchRepository{}, nil, nil)

	_, err := service.Overview(context.Background(), "team-1", stats.Filter{
		Window: stats.TimeWindow{Kind: stats.WindowSeason, Year: 2024, Quarter: 9},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStatsService_OverviewAllTeams(t *testing.T) {
	t.Parallel()

	matchRepo := &stubMatchRepository{records: []match.Record{
		completedMatch("team-1", "m1", "2024-01-10", 1, 0),
		completedMatch("team-2", "m2", "2024-01-11", 2, 0),
	}}
	service := NewStatsService(teamFixture("team-1"), matchRepo, nil, nil)

	got, err := service.Overview(context.Background(), stats.FilterAll, stats.Filter{})
	if err != nil {
		t.Fatalf("Overview error: %v", err)
	}
	if got.Summary.TotalGoals != 3 {
		t.Fatalf("all-team overview must span teams: goals=%d", got.Summary.TotalGoals)
	}
}

func TestStatsService_OverviewMemoizedAndInvalidated(t *testing.T) {
	t.Parallel()

	const teamID = "team-1"
	ctx := context.Background()

	matchRepo := &stubMatchRepository{records: []match.Record{
		completedMatch(teamID, "m1", "2024-01-10", 1, 0),
	}}
	store := cache.NewStore(time.Minute)
	service := NewStatsService(teamFixture(teamID), matchRepo, nil, store)

	filter := stats.Filter{Window: stats.AllTime()}
	if _, err := service.Overview(ctx, teamID, filter); err != nil {
		t.Fatalf("Overview error: %v", err)
	}
	if _, err := service.Overview(ctx, teamID, filter); err != nil {
		t.Fatalf("Overview error: %v", err)
	}
	if matchRepo.lists != 1 {
		t.Fatalf("expected memoized second read, repo hit %d times", matchRepo.lists)
	}

	service.InvalidateTeam(ctx, teamID)
	if _, err := service.Overview(ctx, teamID, filter); err != nil {
		t.Fatalf("Overview error: %v", err)
	}
	if matchRepo.lists != 2 {
		t.Fatalf("expected reload after invalidation, repo hit %d times", matchRepo.lists)
	}
}

func TestStatsService_Timeline(t *testing.T) {
	t.Parallel()

	const teamID = "team-1"
	matchRepo := &stubMatchRepository{records: []match.Record{
		completedMatch(teamID, "m1", "2024-01-10", 1, 0),
		completedMatch(teamID, "m2", "2024-01-20", 0, 0),
		completedMatch(teamID, "m3", "2024-02-02", 2, 0),
	}}
	service := NewStatsService(teamFixture(teamID), matchRepo, nil, nil)

	groups, err := service.Timeline(context.Background(), teamID, stats.Filter{})
	if err != nil {
		t.Fatalf("Timeline error: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("unexpected group count: %d", len(groups))
	}
	if groups[0].Key != "2024-02" {
		t.Fatalf("groups must be newest-first: %s", groups[0].Key)
	}
}

func TestStatsService_HeadToHead(t *testing.T) {
	t.Parallel()

	const teamID = "team-1"
	record := completedMatch(teamID, "m1", "2024-01-10", 1, 0)
	record.Opponent = "Red Star"
	record.ScoreFor, record.ScoreAgainst = 2, 0
	record.ManOfTheMatch = true

	matchRepo := &stubMatchRepository{records: []match.Record{record}}
	service := NewStatsService(teamFixture(teamID), matchRepo, nil, nil)

	got, err := service.HeadToHead(context.Background(), teamID, " red star ")
	if err != nil {
		t.Fatalf("HeadToHead error: %v", err)
	}
	if got.Played != 1 || got.Wins != 1 || got.MOTMCount != 1 {
		t.Fatalf("unexpected head-to-head: %+v", got)
	}

	if _, err := service.HeadToHead(context.Background(), teamID, "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank opponent must be rejected, got %v", err)
	}
}

func TestStatsService_FilterOptions(t *testing.T) {
	t.Parallel()

	const teamID = "team-1"
	matchRepo := &stubMatchRepository{records: []match.Record{
		completedMatch(teamID, "m1", "2023-11-10", 0, 0),
		completedMatch(teamID, "m2", "2024-02-20", 0, 0),
		completedMatch("team-2", "m3", "2022-05-01", 0, 0),
	}}
	service := NewStatsService(teamFixture(teamID), matchRepo, nil, nil)

	got, err := service.FilterOptions(context.Background(), teamID)
	if err != nil {
		t.Fatalf("FilterOptions error: %v", err)
	}
	if len(got.Years) != 2 {
		t.Fatalf("options must only cover the team's matches: years=%v", got.Years)
	}
}
