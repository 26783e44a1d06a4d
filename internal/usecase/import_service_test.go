package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aribowo/matchday-tracker/external/calendar"
	"github.com/aribowo/matchday-tracker/internal/domain/match"
	"github.com/aribowo/matchday-tracker/internal/platform/logging"
)

type stubFixtureFeed struct {
	fixtures []calendar.Fixture
	err      error
	code     string
}

func (s *stubFixtureFeed) UpcomingFixtures(_ context.Context, teamCode string, _ time.Time) ([]calendar.Fixture, error) {
	s.code = teamCode
	if s.err != nil {
		return nil, s.err
	}
	return s.fixtures, nil
}

func newImportService(matchRepo *stubMatchRepository, feed fixtureFeed) *ImportService {
	teamRepo := teamFixture("team-1")
	matches := NewMatchService(teamRepo, matchRepo, &fixedIDGenerator{next: "generated-id"}, nil, logging.NewNop())
	return NewImportService(teamRepo, matchRepo, matches, feed, logging.NewNop())
}

func TestImportService_ImportTeam(t *testing.T) {
	t.Parallel()

	existing := completedMatch("team-1", "m1", "2024-09-01", 0, 0)
	existing.Opponent = "Old Boys"
	matchRepo := &stubMatchRepository{records: []match.Record{existing}}

	feed := &stubFixtureFeed{fixtures: []calendar.Fixture{
		{Date: day("2024-09-01"), Opponent: " old boys ", Competition: "league"},
		{Date: day("2024-09-14"), Opponent: "Rovers", Competition: "cup"},
		{Date: day("2024-09-21"), Opponent: "Red Star", Competition: "charity shield"},
	}}
	service := newImportService(matchRepo, feed)

	result, err := service.ImportTeam(context.Background(), "team-1")
	if err != nil {
		t.Fatalf("ImportTeam error: %v", err)
	}
	if result.Imported != 2 || result.Skipped != 1 {
		t.Fatalf("unexpected result: imported=%d skipped=%d", result.Imported, result.Skipped)
	}
	if feed.code != "LIO" {
		t.Fatalf("feed must be queried with the team short code, got %q", feed.code)
	}

	imported, err := matchRepo.ListByTeam(context.Background(), "team-1")
	if err != nil {
		t.Fatalf("ListByTeam error: %v", err)
	}
	if len(imported) != 3 {
		t.Fatalf("unexpected stored count: %d", len(imported))
	}
	for _, record := range imported[1:] {
		if record.Status != match.StatusScheduled {
			t.Fatalf("imported fixtures must be scheduled, got %s", record.Status)
		}
	}
	if imported[2].Type != match.TypeFriendly {
		t.Fatalf("unknown competitions must map to friendly, got %s", imported[2].Type)
	}
}

func TestImportService_ImportTeamFeedDown(t *testing.T) {
	t.Parallel()

	feed := &stubFixtureFeed{err: errors.New("connect refused")}
	service := newImportService(&stubMatchRepository{}, feed)

	_, err := service.ImportTeam(context.Background(), "team-1")
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestImportService_ImportTeamNoFeed(t *testing.T) {
	t.Parallel()

	service := newImportService(&stubMatchRepository{}, nil)

	_, err := service.ImportTeam(context.Background(), "team-1")
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestImportService_ImportAll(t *testing.T) {
	t.Parallel()

	feed := &stubFixtureFeed{fixtures: []calendar.Fixture{
		{Date: day("2024-09-14"), Opponent: "Rovers", Competition: "league"},
	}}
	service := newImportService(&stubMatchRepository{}, feed)

	results, err := service.ImportAll(context.Background())
	if err != nil {
		t.Fatalf("ImportAll error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("unexpected result count: %d", len(results))
	}
	if results[0].Err != nil || results[0].Imported != 1 {
		t.Fatalf("unexpected row: %+v", results[0])
	}
}

func TestWarmupService_Run(t *testing.T) {
	t.Parallel()

	matchRepo := &stubMatchRepository{records: []match.Record{
		completedMatch("team-1", "m1", "2024-01-10", 1, 0),
	}}
	teamRepo := teamFixture("team-1")
	statsService := NewStatsService(teamRepo, matchRepo, nil, nil)
	service := NewWarmupService(teamRepo, statsService, logging.NewNop())

	warmed, err := service.Run(context.Background())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if warmed != 1 {
		t.Fatalf("unexpected warmed count: %d", warmed)
	}
}
