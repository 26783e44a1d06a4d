package stats

import (
	"testing"
	"time"

	"github.com/aribowo/matchday-tracker/internal/domain/match"
)

func day(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func completed(date string, goals, assists int) match.Record {
	return match.Record{
		ID:            "m-" + date,
		TeamID:        "team-1",
		Date:          day(date),
		Status:        match.StatusCompleted,
		Type:          match.TypeLeague,
		PlayerGoals:   goals,
		PlayerAssists: assists,
	}
}

func TestQuarterOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		month time.Month
		want  int
	}{
		{time.January, 1},
		{time.March, 1},
		{time.April, 2},
		{time.June, 2},
		{time.July, 3},
		{time.October, 4},
		{time.December, 4},
	}

	for _, tt := range tests {
		if got := QuarterOf(tt.month); got != tt.want {
			t.Fatalf("QuarterOf(%s): got=%d want=%d", tt.month, got, tt.want)
		}
	}
}

func TestApply_ExcludesScheduled(t *testing.T) {
	t.Parallel()

	records := []match.Record{
		completed("2024-01-10", 1, 0),
		{ID: "m-next", TeamID: "team-1", Date: day("2024-02-01"), Status: match.StatusScheduled},
	}

	got := Apply(records, Filter{Window: AllTime()})
	if len(got) != 1 {
		t.Fatalf("unexpected filtered length: got=%d want=1", len(got))
	}
	if got[0].ID != "m-2024-01-10" {
		t.Fatalf("unexpected record kept: %s", got[0].ID)
	}
}

func TestApply_TeamAndTypeFilters(t *testing.T) {
	t.Parallel()

	untyped := completed("2024-03-01", 0, 0)
	untyped.Type = "" // legacy records count as league

	cup := completed("2024-03-08", 0, 0)
	cup.Type = match.TypeCup

	other := completed("2024-03-15", 0, 0)
	other.TeamID = "team-2"

	records := []match.Record{untyped, cup, other}

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{name: "all", filter: Filter{TeamID: FilterAll, MatchType: FilterAll}, want: 3},
		{name: "team", filter: Filter{TeamID: "team-1"}, want: 2},
		{name: "league includes untyped", filter: Filter{MatchType: match.TypeLeague}, want: 2},
		{name: "cup", filter: Filter{MatchType: match.TypeCup}, want: 1},
		{name: "friendly", filter: Filter{MatchType: match.TypeFriendly}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Apply(records, tt.filter); len(got) != tt.want {
				t.Fatalf("unexpected filtered length: got=%d want=%d", len(got), tt.want)
			}
		})
	}
}

func TestApply_TimeWindows(t *testing.T) {
	t.Parallel()

	records := []match.Record{
		completed("2023-12-30", 0, 0),
		completed("2024-01-10", 0, 0),
		completed("2024-02-20", 0, 0),
		completed("2024-04-05", 0, 0),
	}

	tests := []struct {
		name   string
		window TimeWindow
		want   int
	}{
		{name: "year", window: TimeWindow{Kind: WindowYear, Year: 2024}, want: 3},
		{name: "month", window: TimeWindow{Kind: WindowMonth, Year: 2024, Month: time.January}, want: 1},
		{name: "first quarter", window: TimeWindow{Kind: WindowSeason, Year: 2024, Quarter: 1}, want: 2},
		{name: "second quarter", window: TimeWindow{Kind: WindowSeason, Year: 2024, Quarter: 2}, want: 1},
		{name: "fourth quarter previous year", window: TimeWindow{Kind: WindowSeason, Year: 2023, Quarter: 4}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Apply(records, Filter{Window: tt.window}); len(got) != tt.want {
				t.Fatalf("unexpected filtered length: got=%d want=%d", len(got), tt.want)
			}
		})
	}
}

func TestApply_SortsAscending(t *testing.T) {
	t.Parallel()

	records := []match.Record{
		completed("2024-03-01", 0, 0),
		completed("2024-01-01", 0, 0),
		completed("2024-02-01", 0, 0),
	}

	got := Apply(records, Filter{})
	for i := 1; i < len(got); i++ {
		if got[i].Date.Before(got[i-1].Date) {
			t.Fatalf("records not sorted ascending at index %d", i)
		}
	}
}

func TestTimeWindowValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		window  TimeWindow
		wantErr bool
	}{
		{name: "all", window: AllTime()},
		{name: "empty kind", window: TimeWindow{}},
		{name: "year", window: TimeWindow{Kind: WindowYear, Year: 2024}},
		{name: "year missing", window: TimeWindow{Kind: WindowYear}, wantErr: true},
		{name: "season", window: TimeWindow{Kind: WindowSeason, Year: 2024, Quarter: 2}},
		{name: "season bad quarter", window: TimeWindow{Kind: WindowSeason, Year: 2024, Quarter: 5}, wantErr: true},
		{name: "month", window: TimeWindow{Kind: WindowMonth, Year: 2024, Month: time.May}},
		{name: "month missing", window: TimeWindow{Kind: WindowMonth, Year: 2024}, wantErr: true},
		{name: "unknown kind", window: TimeWindow{Kind: "week"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.window.Validate()
			if tt.wantErr && err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestOptionsFor(t *testing.T) {
	t.Parallel()

	records := []match.Record{
		completed("2023-11-04", 0, 0),
		completed("2024-01-10", 0, 0),
		completed("2024-01-20", 0, 0),
		completed("2024-05-02", 0, 0),
		{ID: "sched", TeamID: "team-1", Date: day("2025-01-01"), Status: match.StatusScheduled},
	}

	got := OptionsFor(records)

	if len(got.Years) != 2 || got.Years[0] != 2024 || got.Years[1] != 2023 {
		t.Fatalf("unexpected years: %v", got.Years)
	}
	if len(got.Months) != 3 {
		t.Fatalf("unexpected months length: got=%d want=3", len(got.Months))
	}
	if got.Months[0].Year != 2024 || got.Months[0].Month != time.May {
		t.Fatalf("months not newest-first: %+v", got.Months[0])
	}
	if len(got.Seasons) != 3 {
		t.Fatalf("unexpected seasons length: got=%d want=3", len(got.Seasons))
	}
	if got.Seasons[0].Year != 2024 || got.Seasons[0].Quarter != 2 {
		t.Fatalf("seasons not newest-first: %+v", got.Seasons[0])
	}
}
